package main

import "github.com/andareed/siftly-histview/histogram"

// dataState holds everything that survives a chart rebuild. The selection
// is kept in source-bin indices so a terminal resize (which changes how
// many source bins fold into each display bar) can re-apply it.
type dataState struct {
	sourcePath string
	columnName string

	values  []float64                 // raw input, empty for precomputed bin files
	entries []histogram.MetadataEntry // source-resolution bins

	selected      histogram.BarRange // in source-bin indices
	selectedCount int
	mergeFactor   int // source bins per display bar
}

func (d *dataState) fullRange() histogram.BarRange {
	return histogram.BarRange{From: 0, To: len(d.entries) - 1}
}

func (d *dataState) countInRange(r histogram.BarRange) int {
	total := 0
	for i := r.From; i <= r.To && i < len(d.entries); i++ {
		if i < 0 {
			continue
		}
		total += d.entries[i].Count
	}
	return total
}

// selectionBounds returns the numeric bounds of the current selection,
// or ok=false when the bins carry no numeric bounds.
func (d *dataState) selectionBounds() (lo, hi float64, ok bool) {
	r := d.selected
	if r.From < 0 || r.To >= len(d.entries) {
		return 0, 0, false
	}
	first, last := d.entries[r.From], d.entries[r.To]
	if !first.HasBounds || !last.HasBounds {
		return 0, 0, false
	}
	return first.BinStart, last.BinEnd, true
}
