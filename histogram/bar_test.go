package histogram

import "testing"

func TestSetGeometryFansOutToAllLayers(t *testing.T) {
	b := NewBar(0, 0, 10, 40)
	b.SetGeometry(5, 2, 12, 30)

	want := LayerRect{X: 5, Y: 2, Width: 12, Height: 30}
	for _, l := range []LayerRect{b.ShadowLayer(), b.BackLayer(), b.ForegroundLayer()} {
		if l != want {
			t.Errorf("layer = %+v, want %+v", l, want)
		}
	}
}

func TestSelectedHeightSuppressesForegroundGeometry(t *testing.T) {
	b := NewBar(0, 0, 10, 40)
	b.SetSelectedHeight(15)

	// Re-applying geometry moves every layer but must not disturb the
	// active selection overlay.
	b.SetGeometry(0, 0, 10, 50)
	if got := b.ForegroundLayer().Height; got != 15 {
		t.Errorf("foreground height = %v, want 15 (selection active)", got)
	}
	if got := b.BackLayer().Height; got != 50 {
		t.Errorf("back height = %v, want 50", got)
	}

	b.ClearSelectedHeight()
	if got := b.ForegroundLayer().Height; got != 50 {
		t.Errorf("foreground height after clear = %v, want base 50", got)
	}
	if _, ok := b.SelectedHeight(); ok {
		t.Errorf("selected height still reported active after clear")
	}
}

func TestInfoRecomputesOnAccess(t *testing.T) {
	b := NewBar(0, 0, 10, 10)
	b.SetMetadata([]MetadataEntry{{Label: "a", Count: 1}})
	if got := b.Info(); len(got.Labels) != 1 || got.Labels[0] != "a" {
		t.Fatalf("info = %+v", got)
	}

	b.SetMetadata([]MetadataEntry{
		{Label: "x", Count: 2},
		{Label: "y", Count: 3},
	})
	info := b.Info()
	if len(info.Labels) != 2 || info.Labels[1] != "y" || info.Counts[0] != 2 {
		t.Errorf("info not recomputed after SetMetadata: %+v", info)
	}
}

func TestInfoBoundsOnlyWhenAllEntriesHaveThem(t *testing.T) {
	b := NewBar(0, 0, 10, 10)
	b.SetMetadata([]MetadataEntry{
		{BinStart: 0, BinEnd: 5, HasBounds: true, Count: 1},
		{Count: 1}, // no bounds
	})
	if info := b.Info(); info.BinStarts != nil || info.BinEnds != nil {
		t.Errorf("bounds must be omitted when any entry lacks them: %+v", info)
	}

	b.SetMetadata([]MetadataEntry{
		{BinStart: 0, BinEnd: 5, HasBounds: true, Count: 1},
		{BinStart: 5, BinEnd: 10, HasBounds: true, Count: 1},
	})
	info := b.Info()
	if len(info.BinStarts) != 2 || info.BinEnds[1] != 10 {
		t.Errorf("bounds missing when every entry has them: %+v", info)
	}
}

func TestCallbacksAreSingleSlot(t *testing.T) {
	b := NewBar(0, 0, 10, 10)

	first, second := 0, 0
	b.OnClick(func(*Bar, PointerEvent) { first++ })
	b.OnClick(func(*Bar, PointerEvent) { second++ })
	b.Click(PointerEvent{Kind: PointerUp})

	if first != 0 || second != 1 {
		t.Errorf("last-write-wins violated: first=%d second=%d", first, second)
	}

	b.OnClick(nil)
	b.Click(PointerEvent{Kind: PointerUp}) // must not panic
	if second != 1 {
		t.Errorf("cleared handler still invoked")
	}
}

func TestDispatchPassesBarAndEvent(t *testing.T) {
	b := NewBar(0, 0, 10, 10)
	var gotBar *Bar
	var gotEv PointerEvent
	b.OnEnter(func(bar *Bar, ev PointerEvent) { gotBar, gotEv = bar, ev })

	b.Enter(PointerEvent{X: 3, Y: 4, Kind: PointerMove})
	if gotBar != b {
		t.Errorf("handler received wrong bar")
	}
	if gotEv.X != 3 || gotEv.Kind != PointerMove {
		t.Errorf("handler received wrong event: %+v", gotEv)
	}
}

func TestHighlightedFlag(t *testing.T) {
	b := NewBar(0, 0, 10, 10)
	b.SetHighlighted(true)
	if !b.Highlighted() {
		t.Fatalf("highlight not set")
	}
	b.SetHighlighted(true) // idempotent
	b.SetHighlighted(false)
	if b.Highlighted() {
		t.Errorf("highlight not cleared")
	}
}
