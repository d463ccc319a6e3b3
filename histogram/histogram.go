package histogram

import "math"

// Chart is what a RangeFilter needs from a histogram: an ordered bar
// sequence on a fixed-width grid plus the two coordinate conversions.
// The filter only ever reads from its chart, except for HighlightRange.
type Chart interface {
	Bars() []*Bar
	BarWidth() float64
	TotalWidth() float64
	PixelRangeToBarRange(PixelRange) BarRange
	BarRangeToPixelRange(BarRange) PixelRange
	HighlightRange(BarRange)
}

// Histogram lays out one bar per display bin, left to right, each exactly
// barWidth pixels wide. Bar heights are scaled against the largest bin.
type Histogram struct {
	bars     []*Bar
	barWidth float64
	height   float64
}

// New builds the bar row for the given display bins. Each bin is an
// ordered list of metadata entries (more than one when source bins were
// merged for display). bins must not be empty.
func New(bins [][]MetadataEntry, barWidth, maxHeight float64) *Histogram {
	h := &Histogram{
		bars:     make([]*Bar, 0, len(bins)),
		barWidth: barWidth,
		height:   maxHeight,
	}

	maxCount := 0
	for _, entries := range bins {
		if c := totalCount(entries); c > maxCount {
			maxCount = c
		}
	}

	for i, entries := range bins {
		barHeight := 0.0
		if maxCount > 0 {
			barHeight = maxHeight * float64(totalCount(entries)) / float64(maxCount)
		}
		bar := NewBar(float64(i)*barWidth, maxHeight-barHeight, barWidth, barHeight)
		bar.SetMetadata(entries)
		h.bars = append(h.bars, bar)
	}
	return h
}

func totalCount(entries []MetadataEntry) int {
	c := 0
	for _, e := range entries {
		c += e.Count
	}
	return c
}

func (h *Histogram) Bars() []*Bar       { return h.bars }
func (h *Histogram) BarWidth() float64  { return h.barWidth }
func (h *Histogram) Height() float64    { return h.height }
func (h *Histogram) TotalWidth() float64 {
	return float64(len(h.bars)) * h.barWidth
}

// PixelRangeToBarRange maps continuous pixel bounds to the enclosing bar
// indices: every bar the pixel interval touches is included. Defined for
// all pixel values in [0, TotalWidth]; out-of-range inputs clamp to the
// domain.
func (h *Histogram) PixelRangeToBarRange(p PixelRange) BarRange {
	last := len(h.bars) - 1
	from := int(math.Floor(p.From / h.barWidth))
	to := int(math.Ceil(p.To/h.barWidth)) - 1
	if from < 0 {
		from = 0
	}
	if from > last {
		from = last
	}
	if to < from {
		to = from
	}
	if to > last {
		to = last
	}
	return BarRange{From: from, To: to}
}

// BarRangeToPixelRange is the display-side inverse. It is one-directional:
// converting back through PixelRangeToBarRange recovers the bar range, but
// arbitrary pixel ranges do not round-trip.
func (h *Histogram) BarRangeToPixelRange(r BarRange) PixelRange {
	return PixelRange{
		From: float64(r.From) * h.barWidth,
		To:   float64(r.To+1) * h.barWidth,
	}
}

// HighlightRange marks exactly the bars within r (inclusive) highlighted
// and clears the flag everywhere else.
func (h *Histogram) HighlightRange(r BarRange) {
	for i, b := range h.bars {
		b.SetHighlighted(i >= r.From && i <= r.To)
	}
}
