package histogram

import "strconv"

// BarRange is an inclusive bar-index interval. It is the authoritative
// selection; pixel ranges are derived from it, never the other way round.
type BarRange struct {
	From, To int
}

// Width is the number of bars the range covers.
func (r BarRange) Width() int { return r.To - r.From + 1 }

// PixelRange is a continuous interval in the histogram's pixel space.
type PixelRange struct {
	From, To float64
}

// Handle identifies one draggable bound of the selection.
type Handle int

const (
	HandleLow Handle = iota
	HandleHigh
)

// View is the presentation sink the filter refreshes on every UI update.
// Implementations must render the supplied values as given: during a live
// drag the bar range and the pixel range come from different sources and
// may disagree slightly, and the filter never re-derives one from the
// other for display.
type View interface {
	SetRangeLabel(from, to string)
	SetRangeLabelHidden(hidden bool)
	SetHandleRegion(x, width float64)
	SetPageLeftEnabled(enabled bool)
	SetPageRightEnabled(enabled bool)
}

// handleState tracks one handle through IDLE -> ARMED -> DRAGGING.
// armed is set on pointer-down; dragging only once a move arrives.
type handleState struct {
	armed    bool
	dragging bool
	anchorX  float64
}

// RangeFilter owns the committed selection over a chart and the drag
// state of its two handles. It reads but does not own the chart; the
// chart's bar collection and geometry constants must stay fixed for the
// filter's lifetime. All methods must be called from the UI goroutine.
type RangeFilter struct {
	chart Chart
	view  View

	barRange    BarRange
	pixelRange  PixelRange
	maxBarRange BarRange

	low  handleState
	high handleState

	// dragOrigin is the committed pixel range at pointer-down; every move
	// recomputes the tentative range from it plus the total drag delta.
	dragOrigin PixelRange

	onChanged func(BarRange, bool)
	displayFn func(float64) string
}

// NewRangeFilter binds a filter to a chart. The initial selection is the
// full domain. view may be nil for headless use; highlighting still goes
// through the chart.
func NewRangeFilter(chart Chart, view View) *RangeFilter {
	f := &RangeFilter{
		chart:       chart,
		view:        view,
		maxBarRange: BarRange{From: 0, To: len(chart.Bars()) - 1},
	}
	f.barRange = f.maxBarRange
	f.pixelRange = chart.BarRangeToPixelRange(f.barRange)
	f.updateUI(f.barRange, f.pixelRange)
	return f
}

// OnChanged replaces the commit notification handler; nil clears it. The
// handler fires exactly once per committed range change, with
// fromUserInput distinguishing drag/page commits from programmatic ones
// so subscribers can avoid feedback loops when re-applying a range.
func (f *RangeFilter) OnChanged(fn func(r BarRange, fromUserInput bool)) {
	f.onChanged = fn
}

// SetDisplayFunc overrides the range readout: when set, it is applied to
// the raw bin boundary values instead of the precomputed label strings.
// nil reverts to the default labels.
func (f *RangeFilter) SetDisplayFunc(fn func(float64) string) {
	f.displayFn = fn
}

// BarRange returns the last committed selection.
func (f *RangeFilter) BarRange() BarRange { return f.barRange }

// PixelRange returns the pixel equivalent of the last committed selection.
func (f *RangeFilter) PixelRange() PixelRange { return f.pixelRange }

// MaxBarRange is the full domain; fixed for the filter's lifetime.
func (f *RangeFilter) MaxBarRange() BarRange { return f.maxBarRange }

// Active reports whether either handle is armed or mid-drag, i.e. whether
// pointer moves should be routed to the filter.
func (f *RangeFilter) Active() bool { return f.low.armed || f.high.armed }

// SetFilterPixelRange converts the pixel range through the chart and
// commits the result.
func (f *RangeFilter) SetFilterPixelRange(p PixelRange, fromUserInput bool) {
	f.SetFilterBarRange(f.chart.PixelRangeToBarRange(p), fromUserInput)
}

// SetFilterBarRange is the authoritative commit path: clamp into the
// domain, derive the pixel equivalent, store both, refresh the UI, then
// notify exactly once.
func (f *RangeFilter) SetFilterBarRange(r BarRange, fromUserInput bool) {
	r = f.clampToDomain(r)
	f.barRange = r
	f.pixelRange = f.chart.BarRangeToPixelRange(r)
	f.updateUI(f.barRange, f.pixelRange)
	if f.onChanged != nil {
		f.onChanged(r, fromUserInput)
	}
}

// clampToDomain guards the commit entry points against out-of-domain
// ranges that would otherwise render inconsistent geometry. Bounds are
// normalized so From <= To and both lie within the full domain.
func (f *RangeFilter) clampToDomain(r BarRange) BarRange {
	if r.From > r.To {
		r.From, r.To = r.To, r.From
	}
	if r.From < f.maxBarRange.From {
		r.From = f.maxBarRange.From
	}
	if r.To > f.maxBarRange.To {
		r.To = f.maxBarRange.To
	}
	if r.From > f.maxBarRange.To {
		r.From = f.maxBarRange.To
	}
	if r.To < r.From {
		r.To = r.From
	}
	return r
}

// PointerDown arms the given handle for dragging. x is the pointer's
// pixel-space position; it becomes the drag anchor.
func (f *RangeFilter) PointerDown(h Handle, x float64) {
	st := f.handle(h)
	st.armed = true
	st.dragging = false
	st.anchorX = x
	f.dragOrigin = f.pixelRange
}

// PointerMove, while a handle is armed, recomputes the tentative range
// from the drag anchor and the latest pointer position and repaints
// without committing. Each call is a full recompute; intermediate renders
// are never partially applied.
func (f *RangeFilter) PointerMove(x float64) {
	var px PixelRange
	switch {
	case f.low.armed:
		f.low.dragging = true
		px = f.dragLow(x - f.low.anchorX)
	case f.high.armed:
		f.high.dragging = true
		px = f.dragHigh(x - f.high.anchorX)
	default:
		return
	}
	f.updateUI(f.chart.PixelRangeToBarRange(px), px)
}

// PointerUp commits an in-progress drag. A click that never moved
// re-affirms the current range: the UI is refreshed but no change
// notification fires.
func (f *RangeFilter) PointerUp(x float64) { f.finishDrag(x) }

// PointerLeave during an active drag is treated identically to
// PointerUp: the in-progress range is committed. There is no abort path
// that restores the prior range.
func (f *RangeFilter) PointerLeave(x float64) { f.finishDrag(x) }

func (f *RangeFilter) finishDrag(x float64) {
	switch {
	case f.low.armed && f.low.dragging:
		px := f.dragLow(x - f.low.anchorX)
		f.resetHandles()
		f.SetFilterBarRange(f.chart.PixelRangeToBarRange(px), true)
	case f.high.armed && f.high.dragging:
		px := f.dragHigh(x - f.high.anchorX)
		f.resetHandles()
		f.SetFilterBarRange(f.chart.PixelRangeToBarRange(px), true)
	case f.low.armed || f.high.armed:
		f.resetHandles()
		f.updateUI(f.barRange, f.pixelRange)
	}
}

func (f *RangeFilter) resetHandles() {
	f.low = handleState{}
	f.high = handleState{}
}

func (f *RangeFilter) handle(h Handle) *handleState {
	if h == HandleLow {
		return &f.low
	}
	return &f.high
}

// dragLow applies the clamp-and-push policy for the low handle: the low
// bound follows the drag clamped at zero, the high bound is pushed along
// only to preserve the one-bar minimum width, and the whole window snaps
// to the rightmost minimal window when pushing would cross the domain
// edge.
func (f *RangeFilter) dragLow(delta float64) PixelRange {
	bw := f.chart.BarWidth()
	total := f.chart.TotalWidth()

	from := f.dragOrigin.From + delta
	to := f.dragOrigin.To
	if from < 0 {
		from = 0
	}
	if to-from < bw {
		to = from + bw
		if to > total {
			to = total
			from = total - bw
		}
	}
	return PixelRange{From: from, To: to}
}

// dragHigh mirrors dragLow: the high bound clamps at the total width, the
// low bound is pulled along, and the window snaps to the leftmost minimal
// window when pulling would go negative.
func (f *RangeFilter) dragHigh(delta float64) PixelRange {
	bw := f.chart.BarWidth()
	total := f.chart.TotalWidth()

	from := f.dragOrigin.From
	to := f.dragOrigin.To + delta
	if to > total {
		to = total
	}
	if to-from < bw {
		from = to - bw
		if from < 0 {
			from = 0
			to = bw
		}
	}
	return PixelRange{From: from, To: to}
}

// PageLeft shifts the selection left by its own width in bars. If a full
// page would cross the domain edge the offset is truncated so the window
// lands exactly on the edge. No-op when already there.
func (f *RangeFilter) PageLeft() {
	offset := f.barRange.Width()
	if f.barRange.From-offset < f.maxBarRange.From {
		offset = f.barRange.From - f.maxBarRange.From
	}
	if offset <= 0 {
		return
	}
	f.SetFilterBarRange(BarRange{
		From: f.barRange.From - offset,
		To:   f.barRange.To - offset,
	}, true)
}

// PageRight is the mirror of PageLeft.
func (f *RangeFilter) PageRight() {
	offset := f.barRange.Width()
	if f.barRange.To+offset > f.maxBarRange.To {
		offset = f.maxBarRange.To - f.barRange.To
	}
	if offset <= 0 {
		return
	}
	f.SetFilterBarRange(BarRange{
		From: f.barRange.From + offset,
		To:   f.barRange.To + offset,
	}, true)
}

// updateUI is a pure presentation refresh. It renders the two ranges as
// given and never mutates committed state.
func (f *RangeFilter) updateUI(r BarRange, p PixelRange) {
	f.chart.HighlightRange(r)
	if f.view == nil {
		return
	}
	from, to := f.rangeLabels(r)
	f.view.SetRangeLabel(from, to)
	f.view.SetRangeLabelHidden(r == f.maxBarRange)
	f.view.SetHandleRegion(p.From, p.To-p.From)
	f.view.SetPageLeftEnabled(r.From != f.maxBarRange.From)
	f.view.SetPageRightEnabled(r.To != f.maxBarRange.To)
}

// rangeLabels resolves the readout: the from side comes from the first
// metadata entry of the leftmost bar in range, the to side from the last
// entry of the rightmost bar. A configured display function is applied to
// the raw boundary values instead of the precomputed strings.
func (f *RangeFilter) rangeLabels(r BarRange) (string, string) {
	bars := f.chart.Bars()
	if r.From < 0 || r.To >= len(bars) {
		return "", ""
	}
	leftMeta := bars[r.From].Metadata()
	rightMeta := bars[r.To].Metadata()
	if len(leftMeta) == 0 || len(rightMeta) == 0 {
		return "", ""
	}
	first := leftMeta[0]
	last := rightMeta[len(rightMeta)-1]

	from := first.Label
	if f.displayFn != nil && first.HasBounds {
		from = f.displayFn(first.BinStart)
	} else if from == "" && first.HasBounds {
		from = formatBoundary(first.BinStart)
	}

	to := last.ToLabel
	if f.displayFn != nil && last.HasBounds {
		to = f.displayFn(last.BinEnd)
	} else if to == "" && last.HasBounds {
		to = formatBoundary(last.BinEnd)
	}
	return from, to
}

func formatBoundary(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
