package histogram

// MetadataEntry describes one source bucket aggregated into a bar. Most
// bars carry a single entry; when adjacent bins are merged for display a
// bar aggregates several. Label/ToLabel are optional display strings,
// BinStart/BinEnd are the raw boundary values (only meaningful when
// HasBounds is set).
type MetadataEntry struct {
	Label     string
	ToLabel   string
	BinStart  float64
	BinEnd    float64
	HasBounds bool
	Count     int
	Metadata  any
}

// BarInfo is the aggregated read-only view over a bar's metadata list.
// BinStarts/BinEnds are populated only when every entry defines bounds.
type BarInfo struct {
	Labels    []string
	ToLabels  []string
	Counts    []int
	Metadata  []any
	BinStarts []float64
	BinEnds   []float64
}

// The three layers of a bar share one bounding box. The foreground layer
// is the selection overlay: its height can be overridden independently so
// a filter can gray out the unselected part of a bar.
const (
	layerShadow = iota
	layerBack
	layerForeground
	layerCount
)

// LayerRect is one renderable rectangle of a bar. Rendering backends read
// these; the bar keeps them in sync through SetGeometry.
type LayerRect struct {
	X, Y, Width, Height float64
}

// BarHandler is a single-slot interaction callback. The hosting UI layer
// consumes the originating event before dispatch; the handler receives
// the bar itself plus the normalized event.
type BarHandler func(*Bar, PointerEvent)

// Bar is one rendered histogram bin: the atomic, non-subdividable unit of
// selection. It owns its geometry and callbacks; the metadata list is
// assigned, not copied.
type Bar struct {
	x, y          float64
	width, height float64

	selectedHeight    float64
	hasSelectedHeight bool

	highlighted bool
	meta        []MetadataEntry

	layers [layerCount]*LayerRect

	onEnter BarHandler
	onLeave BarHandler
	onClick BarHandler
}

func NewBar(x, y, width, height float64) *Bar {
	b := &Bar{}
	for i := range b.layers {
		b.layers[i] = &LayerRect{}
	}
	b.SetGeometry(x, y, width, height)
	return b
}

// SetGeometry repositions and resizes all three layers identically, except
// that the foreground layer keeps its selection height while one is
// active. Setting the base height never changes the selection overlay.
func (b *Bar) SetGeometry(x, y, width, height float64) {
	b.x, b.y, b.width, b.height = x, y, width, height
	for i, l := range b.layers {
		h := height
		if i == layerForeground && b.hasSelectedHeight {
			h = b.selectedHeight
		}
		l.X, l.Y, l.Width, l.Height = x, y, width, h
	}
}

func (b *Bar) X() float64      { return b.x }
func (b *Bar) Y() float64      { return b.y }
func (b *Bar) Width() float64  { return b.width }
func (b *Bar) Height() float64 { return b.height }

// SetSelectedHeight overrides the foreground layer's height independently
// of the bar's base height.
func (b *Bar) SetSelectedHeight(h float64) {
	b.selectedHeight = h
	b.hasSelectedHeight = true
	b.layers[layerForeground].Height = h
}

// ClearSelectedHeight reverts the foreground layer to the base height.
func (b *Bar) ClearSelectedHeight() {
	b.selectedHeight = 0
	b.hasSelectedHeight = false
	b.layers[layerForeground].Height = b.height
}

// SelectedHeight returns the overlay height and whether one is active.
func (b *Bar) SelectedHeight() (float64, bool) {
	return b.selectedHeight, b.hasSelectedHeight
}

// SetHighlighted toggles the render-state flag. No-op when unchanged.
func (b *Bar) SetHighlighted(v bool) {
	if b.highlighted == v {
		return
	}
	b.highlighted = v
}

func (b *Bar) Highlighted() bool { return b.highlighted }

// SetMetadata replaces the aggregated metadata list. Ownership stays with
// the caller; Info recomputes from the current list on every call.
func (b *Bar) SetMetadata(entries []MetadataEntry) { b.meta = entries }

func (b *Bar) Metadata() []MetadataEntry { return b.meta }

// Info aggregates the metadata list into parallel sequences. It is never
// cached: a SetMetadata is reflected on the next access.
func (b *Bar) Info() BarInfo {
	info := BarInfo{
		Labels:   make([]string, 0, len(b.meta)),
		ToLabels: make([]string, 0, len(b.meta)),
		Counts:   make([]int, 0, len(b.meta)),
		Metadata: make([]any, 0, len(b.meta)),
	}
	allBounds := len(b.meta) > 0
	for _, e := range b.meta {
		info.Labels = append(info.Labels, e.Label)
		info.ToLabels = append(info.ToLabels, e.ToLabel)
		info.Counts = append(info.Counts, e.Count)
		info.Metadata = append(info.Metadata, e.Metadata)
		if !e.HasBounds {
			allBounds = false
		}
	}
	if allBounds {
		info.BinStarts = make([]float64, 0, len(b.meta))
		info.BinEnds = make([]float64, 0, len(b.meta))
		for _, e := range b.meta {
			info.BinStarts = append(info.BinStarts, e.BinStart)
			info.BinEnds = append(info.BinEnds, e.BinEnd)
		}
	}
	return info
}

func (b *Bar) ShadowLayer() LayerRect     { return *b.layers[layerShadow] }
func (b *Bar) BackLayer() LayerRect       { return *b.layers[layerBack] }
func (b *Bar) ForegroundLayer() LayerRect { return *b.layers[layerForeground] }

// OnEnter replaces the hover-enter handler; nil clears it.
func (b *Bar) OnEnter(fn BarHandler) { b.onEnter = fn }

// OnLeave replaces the hover-leave handler; nil clears it.
func (b *Bar) OnLeave(fn BarHandler) { b.onLeave = fn }

// OnClick replaces the activation handler; nil clears it.
func (b *Bar) OnClick(fn BarHandler) { b.onClick = fn }

func (b *Bar) Enter(ev PointerEvent) {
	if b.onEnter != nil {
		b.onEnter(b, ev)
	}
}

func (b *Bar) Leave(ev PointerEvent) {
	if b.onLeave != nil {
		b.onLeave(b, ev)
	}
}

func (b *Bar) Click(ev PointerEvent) {
	if b.onClick != nil {
		b.onClick(b, ev)
	}
}
