package main

import (
	"encoding/json"
	"fmt"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/andareed/siftly-histview/histogram"
)

const defaultBinCount = 60

// bucketValues splits values into binCount equal-width bins across the
// observed min/max. The final bin is closed on the right so the maximum
// value lands in it rather than falling off the end.
func bucketValues(values []float64, binCount int) ([]histogram.MetadataEntry, error) {
	if len(values) == 0 {
		return nil, fmt.Errorf("no values to bucket")
	}
	if binCount < 1 {
		binCount = 1
	}

	lo, hi := values[0], values[0]
	for _, v := range values[1:] {
		if v < lo {
			lo = v
		}
		if v > hi {
			hi = v
		}
	}

	width := (hi - lo) / float64(binCount)
	if width <= 0 {
		// All values identical; a single unit-wide bin keeps the bounds distinct.
		binCount = 1
		width = 1
	}

	entries := make([]histogram.MetadataEntry, binCount)
	for i := range entries {
		start := lo + width*float64(i)
		entries[i] = histogram.MetadataEntry{
			Label:     formatAxisValue(start),
			ToLabel:   formatAxisValue(start + width),
			BinStart:  start,
			BinEnd:    start + width,
			HasBounds: true,
		}
	}

	for _, v := range values {
		idx := int((v - lo) / width)
		if idx >= binCount {
			idx = binCount - 1
		}
		if idx < 0 {
			idx = 0
		}
		entries[idx].Count++
	}
	return entries, nil
}

// mergeForWidth groups adjacent source bins so at most maxBars display
// bins remain. Returns the display bins plus the merge factor k; every
// display bin aggregates k source bins except possibly the last.
func mergeForWidth(entries []histogram.MetadataEntry, maxBars int) ([][]histogram.MetadataEntry, int) {
	if maxBars < 1 {
		maxBars = 1
	}
	k := (len(entries) + maxBars - 1) / maxBars
	if k < 1 {
		k = 1
	}

	bins := make([][]histogram.MetadataEntry, 0, (len(entries)+k-1)/k)
	for i := 0; i < len(entries); i += k {
		j := i + k
		if j > len(entries) {
			j = len(entries)
		}
		bins = append(bins, entries[i:j])
	}
	return bins, k
}

// binIndexForValue locates the source bin whose interval contains v.
// Out-of-domain values clamp to the first or last bin. Bins are assumed
// equal-width, which holds for everything bucketValues produces.
func binIndexForValue(entries []histogram.MetadataEntry, v float64) int {
	last := len(entries) - 1
	if last < 0 || !entries[0].HasBounds {
		return 0
	}
	width := entries[0].BinEnd - entries[0].BinStart
	if width <= 0 {
		return 0
	}
	idx := int(math.Floor((v - entries[0].BinStart) / width))
	if idx < 0 {
		idx = 0
	}
	if idx > last {
		idx = last
	}
	return idx
}

func formatAxisValue(v float64) string {
	return strconv.FormatFloat(v, 'g', 6, 64)
}

// --- Precomputed bin files ---

type binDTO struct {
	Label   string   `json:"label,omitempty"`
	ToLabel string   `json:"toLabel,omitempty"`
	Start   *float64 `json:"start,omitempty"`
	End     *float64 `json:"end,omitempty"`
	Count   int      `json:"count"`
}

type binFileDTO struct {
	Bins []binDTO `json:"bins"`
}

// loadBinsJSON reads a precomputed bin file. Bounds are optional per bin;
// the range drawer only accepts numeric input when every bin carries them.
func loadBinsJSON(path string) ([]histogram.MetadataEntry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var dto binFileDTO
	if err := json.Unmarshal(data, &dto); err != nil {
		return nil, fmt.Errorf("parse bins %q: %w", path, err)
	}
	if len(dto.Bins) == 0 {
		return nil, fmt.Errorf("bin file %q has no bins", path)
	}

	entries := make([]histogram.MetadataEntry, 0, len(dto.Bins))
	for _, b := range dto.Bins {
		e := histogram.MetadataEntry{
			Label:   b.Label,
			ToLabel: b.ToLabel,
			Count:   b.Count,
		}
		if b.Start != nil && b.End != nil {
			e.BinStart = *b.Start
			e.BinEnd = *b.End
			e.HasBounds = true
		}
		entries = append(entries, e)
	}
	return entries, nil
}

// numericColumn picks the histogram column out of raw CSV records: the
// named column when want is set, otherwise the first column whose values
// parse as numbers. Blank cells are skipped, not treated as zero.
func numericColumn(records [][]string, want string) ([]float64, string, error) {
	if len(records) < 2 {
		return nil, "", fmt.Errorf("CSV has no data rows")
	}
	header := records[0]

	colIdx := -1
	if want != "" {
		for i, name := range header {
			name = strings.TrimPrefix(strings.TrimSpace(name), "\ufeff")
			if strings.EqualFold(name, want) {
				colIdx = i
				break
			}
		}
		if colIdx < 0 {
			return nil, "", fmt.Errorf("column %q not found", want)
		}
	} else {
		for i := range header {
			if _, ok := parseCell(records[1], i); ok {
				colIdx = i
				break
			}
		}
		if colIdx < 0 {
			return nil, "", fmt.Errorf("no numeric column found")
		}
	}

	values := make([]float64, 0, len(records)-1)
	for _, row := range records[1:] {
		if v, ok := parseCell(row, colIdx); ok {
			values = append(values, v)
		}
	}
	if len(values) == 0 {
		return nil, "", fmt.Errorf("column %q has no numeric values", header[colIdx])
	}
	return values, strings.TrimSpace(header[colIdx]), nil
}

func parseCell(row []string, idx int) (float64, bool) {
	if idx >= len(row) {
		return 0, false
	}
	s := strings.TrimSpace(row[idx])
	if s == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}
