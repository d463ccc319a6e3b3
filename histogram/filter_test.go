package histogram

import (
	"fmt"
	"testing"
)

// recordingView captures everything the filter pushes at its presentation
// sink so tests can assert on the rendered state.
type recordingView struct {
	fromLabel, toLabel string
	labelHidden        bool
	handleX, handleW   float64
	pageLeft           bool
	pageRight          bool
	refreshes          int
}

func (v *recordingView) SetRangeLabel(from, to string) {
	v.fromLabel, v.toLabel = from, to
	v.refreshes++
}
func (v *recordingView) SetRangeLabelHidden(hidden bool)  { v.labelHidden = hidden }
func (v *recordingView) SetHandleRegion(x, width float64) { v.handleX, v.handleW = x, width }
func (v *recordingView) SetPageLeftEnabled(enabled bool)  { v.pageLeft = enabled }
func (v *recordingView) SetPageRightEnabled(enabled bool) { v.pageRight = enabled }

// tenBars builds the canonical fixture: 10 bars, barWidth 20, totalWidth
// 200, one metadata entry per bar with bounds [i*10, (i+1)*10).
func tenBars() *Histogram {
	bins := make([][]MetadataEntry, 10)
	for i := range bins {
		bins[i] = []MetadataEntry{{
			Label:     fmt.Sprintf("L%d", i),
			ToLabel:   fmt.Sprintf("T%d", i),
			BinStart:  float64(i * 10),
			BinEnd:    float64((i + 1) * 10),
			HasBounds: true,
			Count:     i + 1,
		}}
	}
	return New(bins, 20, 10)
}

func highlighted(h *Histogram) []int {
	var out []int
	for i, b := range h.Bars() {
		if b.Highlighted() {
			out = append(out, i)
		}
	}
	return out
}

func TestInitialSelectionIsFullDomain(t *testing.T) {
	h := tenBars()
	v := &recordingView{}
	f := NewRangeFilter(h, v)

	if f.BarRange() != (BarRange{From: 0, To: 9}) {
		t.Fatalf("initial bar range = %+v, want {0 9}", f.BarRange())
	}
	if f.PixelRange() != (PixelRange{From: 0, To: 200}) {
		t.Fatalf("initial pixel range = %+v, want {0 200}", f.PixelRange())
	}
	if !v.labelHidden {
		t.Errorf("range label should be hidden at full domain")
	}
	if v.pageLeft || v.pageRight {
		t.Errorf("paging should be disabled at full domain, got left=%v right=%v", v.pageLeft, v.pageRight)
	}
	if got := highlighted(h); len(got) != 10 {
		t.Errorf("expected all bars highlighted, got %v", got)
	}
}

func TestDragLowToPixel170(t *testing.T) {
	h := tenBars()
	v := &recordingView{}
	f := NewRangeFilter(h, v)

	var committed []BarRange
	var origins []bool
	f.OnChanged(func(r BarRange, fromUser bool) {
		committed = append(committed, r)
		origins = append(origins, fromUser)
	})

	f.PointerDown(HandleLow, 0)
	f.PointerMove(170)
	if len(committed) != 0 {
		t.Fatalf("move must not commit, got %v", committed)
	}
	f.PointerUp(170)

	if len(committed) != 1 {
		t.Fatalf("expected exactly one commit, got %d", len(committed))
	}
	if committed[0] != (BarRange{From: 8, To: 9}) {
		t.Errorf("committed range = %+v, want {8 9}", committed[0])
	}
	if !origins[0] {
		t.Errorf("drag commit must carry fromUserInput=true")
	}
	if got := highlighted(h); len(got) != 2 || got[0] != 8 || got[1] != 9 {
		t.Errorf("highlighted bars = %v, want [8 9]", got)
	}
}

func TestDragLowSnapsToRightEdgeWindow(t *testing.T) {
	h := tenBars()
	f := NewRangeFilter(h, nil)

	// Overshooting past totalWidth-barWidth snaps the window to the
	// rightmost minimal-width window instead of collapsing further.
	f.PointerDown(HandleLow, 0)
	f.PointerMove(195)
	f.PointerUp(195)

	if f.BarRange() != (BarRange{From: 9, To: 9}) {
		t.Errorf("bar range = %+v, want {9 9}", f.BarRange())
	}
	if f.PixelRange() != (PixelRange{From: 180, To: 200}) {
		t.Errorf("pixel range = %+v, want {180 200}", f.PixelRange())
	}
}

func TestDragLowClampsAtZero(t *testing.T) {
	h := tenBars()
	f := NewRangeFilter(h, nil)
	f.SetFilterBarRange(BarRange{From: 2, To: 5}, false)

	f.PointerDown(HandleLow, 40)
	f.PointerMove(-100)
	f.PointerUp(-100)

	if f.BarRange() != (BarRange{From: 0, To: 5}) {
		t.Errorf("bar range = %+v, want {0 5}", f.BarRange())
	}
}

func TestDragHighMirror(t *testing.T) {
	h := tenBars()
	f := NewRangeFilter(h, nil)

	// Dragging the high handle far left pulls the low bound along, then
	// snaps to the leftmost minimal window.
	f.PointerDown(HandleHigh, 200)
	f.PointerMove(5)
	f.PointerUp(5)

	if f.BarRange() != (BarRange{From: 0, To: 0}) {
		t.Errorf("bar range = %+v, want {0 0}", f.BarRange())
	}
	if f.PixelRange() != (PixelRange{From: 0, To: 20}) {
		t.Errorf("pixel range = %+v, want {0 20}", f.PixelRange())
	}
}

func TestDragHighClampsAtTotalWidth(t *testing.T) {
	h := tenBars()
	f := NewRangeFilter(h, nil)
	f.SetFilterBarRange(BarRange{From: 2, To: 5}, false)

	f.PointerDown(HandleHigh, 120)
	f.PointerMove(500)
	f.PointerUp(500)

	if f.BarRange() != (BarRange{From: 2, To: 9}) {
		t.Errorf("bar range = %+v, want {2 9}", f.BarRange())
	}
}

func TestMinimumWidthPreservedForAllDeltas(t *testing.T) {
	h := tenBars()
	for delta := -300.0; delta <= 300.0; delta += 7.0 {
		f := NewRangeFilter(h, nil)
		f.SetFilterBarRange(BarRange{From: 3, To: 6}, false)

		f.PointerDown(HandleLow, f.PixelRange().From)
		f.PointerMove(f.PixelRange().From + delta)
		f.PointerUp(f.PixelRange().From + delta)

		r := f.BarRange()
		if r.From < 0 || r.To > 9 || r.From > r.To {
			t.Fatalf("delta %v: out-of-domain range %+v", delta, r)
		}
		if r.Width() < 1 {
			t.Fatalf("delta %v: selection collapsed to %+v", delta, r)
		}
	}
}

func TestPointerLeaveCommitsLikePointerUp(t *testing.T) {
	h := tenBars()
	f := NewRangeFilter(h, nil)

	commits := 0
	f.OnChanged(func(BarRange, bool) { commits++ })

	f.PointerDown(HandleLow, 0)
	f.PointerMove(60)
	f.PointerLeave(60)

	if commits != 1 {
		t.Fatalf("expected one commit on leave, got %d", commits)
	}
	if f.BarRange() != (BarRange{From: 3, To: 9}) {
		t.Errorf("bar range = %+v, want {3 9}", f.BarRange())
	}
	if f.Active() {
		t.Errorf("filter still active after leave")
	}
}

func TestClickWithoutDragRefreshesWithoutNotify(t *testing.T) {
	h := tenBars()
	v := &recordingView{}
	f := NewRangeFilter(h, v)
	f.SetFilterBarRange(BarRange{From: 2, To: 4}, false)

	commits := 0
	f.OnChanged(func(BarRange, bool) { commits++ })
	before := v.refreshes

	f.PointerDown(HandleLow, 40)
	f.PointerUp(40)

	if commits != 0 {
		t.Errorf("click without drag must not notify, got %d commits", commits)
	}
	if v.refreshes != before+1 {
		t.Errorf("click without drag must still refresh the UI")
	}
	if f.BarRange() != (BarRange{From: 2, To: 4}) {
		t.Errorf("range changed by a no-op click: %+v", f.BarRange())
	}
}

func TestPageRightTruncatesAtDomainEdge(t *testing.T) {
	h := tenBars()
	f := NewRangeFilter(h, nil)
	f.SetFilterBarRange(BarRange{From: 2, To: 4}, false)

	f.PageRight()
	if f.BarRange() != (BarRange{From: 5, To: 7}) {
		t.Fatalf("first page = %+v, want {5 7}", f.BarRange())
	}
	f.PageRight()
	if f.BarRange() != (BarRange{From: 7, To: 9}) {
		t.Fatalf("second page = %+v, want {7 9} (truncated offset)", f.BarRange())
	}

	commits := 0
	f.OnChanged(func(BarRange, bool) { commits++ })
	f.PageRight()
	if commits != 0 {
		t.Errorf("page right at the edge must be a no-op")
	}
}

func TestPageLeftTruncatesAtDomainEdge(t *testing.T) {
	h := tenBars()
	f := NewRangeFilter(h, nil)
	f.SetFilterBarRange(BarRange{From: 2, To: 4}, false)

	f.PageLeft()
	if f.BarRange() != (BarRange{From: 0, To: 2}) {
		t.Fatalf("page left = %+v, want {0 2} (truncated offset)", f.BarRange())
	}

	commits := 0
	f.OnChanged(func(BarRange, bool) { commits++ })
	f.PageLeft()
	if commits != 0 {
		t.Errorf("page left at the edge must be a no-op")
	}
}

func TestPageCommitsAsUserInput(t *testing.T) {
	h := tenBars()
	f := NewRangeFilter(h, nil)
	f.SetFilterBarRange(BarRange{From: 0, To: 1}, false)

	var fromUser bool
	f.OnChanged(func(_ BarRange, u bool) { fromUser = u })
	f.PageRight()
	if !fromUser {
		t.Errorf("pagination must commit with fromUserInput=true")
	}
}

func TestSetFilterBarRangeIdempotent(t *testing.T) {
	h := tenBars()
	v := &recordingView{}
	f := NewRangeFilter(h, v)

	f.SetFilterBarRange(BarRange{From: 3, To: 6}, false)
	px1 := f.PixelRange()
	hl1 := highlighted(h)

	f.SetFilterBarRange(BarRange{From: 3, To: 6}, false)
	px2 := f.PixelRange()
	hl2 := highlighted(h)

	if px1 != px2 {
		t.Errorf("pixel range not stable: %+v vs %+v", px1, px2)
	}
	if len(hl1) != len(hl2) {
		t.Fatalf("highlight set not stable: %v vs %v", hl1, hl2)
	}
	for i := range hl1 {
		if hl1[i] != hl2[i] {
			t.Errorf("highlight set not stable: %v vs %v", hl1, hl2)
		}
	}
}

func TestNotificationFiresOncePerCommit(t *testing.T) {
	h := tenBars()
	f := NewRangeFilter(h, nil)

	var origins []bool
	f.OnChanged(func(_ BarRange, u bool) { origins = append(origins, u) })

	f.SetFilterBarRange(BarRange{From: 1, To: 2}, false)
	f.SetFilterPixelRange(PixelRange{From: 40, To: 100}, true)

	if len(origins) != 2 {
		t.Fatalf("expected 2 notifications, got %d", len(origins))
	}
	if origins[0] != false || origins[1] != true {
		t.Errorf("origin flags = %v, want [false true]", origins)
	}
}

func TestCommitClampsOutOfDomainRange(t *testing.T) {
	h := tenBars()
	f := NewRangeFilter(h, nil)

	f.SetFilterBarRange(BarRange{From: -3, To: 42}, false)
	if f.BarRange() != (BarRange{From: 0, To: 9}) {
		t.Errorf("bar range = %+v, want clamped {0 9}", f.BarRange())
	}

	f.SetFilterBarRange(BarRange{From: 7, To: 2}, false)
	if f.BarRange() != (BarRange{From: 2, To: 7}) {
		t.Errorf("bar range = %+v, want normalized {2 7}", f.BarRange())
	}
}

func TestRangeLabelAggregation(t *testing.T) {
	bins := [][]MetadataEntry{
		{{Label: "A", BinStart: 0, BinEnd: 10, HasBounds: true, Count: 1}},
		{{Label: "B", BinStart: 10, BinEnd: 20, HasBounds: true, Count: 1}},
	}
	h := New(bins, 20, 10)
	v := &recordingView{}
	f := NewRangeFilter(h, v)

	f.SetFilterBarRange(BarRange{From: 0, To: 1}, false)
	if got := v.fromLabel + " - " + v.toLabel; got != "A - 20" {
		t.Errorf("range label = %q, want %q", got, "A - 20")
	}

	// An explicit to-label on the rightmost bar wins over the boundary.
	bins[1][0].ToLabel = "twenty"
	f.SetFilterBarRange(BarRange{From: 0, To: 1}, false)
	if got := v.fromLabel + " - " + v.toLabel; got != "A - twenty" {
		t.Errorf("range label = %q, want %q", got, "A - twenty")
	}
}

func TestDisplayFuncOverridesLabels(t *testing.T) {
	h := tenBars()
	v := &recordingView{}
	f := NewRangeFilter(h, v)
	f.SetDisplayFunc(func(raw float64) string { return fmt.Sprintf("<%.0f>", raw) })

	f.SetFilterBarRange(BarRange{From: 2, To: 4}, false)
	if v.fromLabel != "<20>" || v.toLabel != "<50>" {
		t.Errorf("labels = %q / %q, want <20> / <50>", v.fromLabel, v.toLabel)
	}
}

func TestUpdateUIRendersRangesAsGiven(t *testing.T) {
	h := tenBars()
	v := &recordingView{}
	f := NewRangeFilter(h, v)

	// Mid-drag the handle region tracks the continuous pixel position,
	// not the re-derived bar geometry.
	f.PointerDown(HandleLow, 0)
	f.PointerMove(33)

	if v.handleX != 33 || v.handleW != 167 {
		t.Errorf("handle region = (%v, %v), want (33, 167)", v.handleX, v.handleW)
	}
	if got := highlighted(h); len(got) == 0 || got[0] != 1 {
		t.Errorf("tentative highlight should start at bar 1, got %v", got)
	}
	f.PointerUp(33)
}

func TestPageIndicatorsAtEdges(t *testing.T) {
	h := tenBars()
	v := &recordingView{}
	f := NewRangeFilter(h, v)

	f.SetFilterBarRange(BarRange{From: 0, To: 2}, false)
	if v.pageLeft {
		t.Errorf("page left must be disabled at the low edge")
	}
	if !v.pageRight {
		t.Errorf("page right must be enabled off the high edge")
	}

	f.SetFilterBarRange(BarRange{From: 7, To: 9}, false)
	if !v.pageLeft || v.pageRight {
		t.Errorf("expected left enabled, right disabled; got left=%v right=%v", v.pageLeft, v.pageRight)
	}
}
