package main

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/andareed/siftly-histview/clipboard"
	"github.com/andareed/siftly-histview/logging"
)

// exportSelection writes the selected source bins to a CSV file, one row
// per bin regardless of how the bins are currently merged on screen.
func exportSelection(m *model, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("open export file: %w", err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write([]string{"label", "bin_start", "bin_end", "count"}); err != nil {
		return fmt.Errorf("write header: %w", err)
	}

	sel := m.data.selected
	for i := sel.From; i <= sel.To && i < len(m.data.entries); i++ {
		if i < 0 {
			continue
		}
		e := m.data.entries[i]
		start, end := "", ""
		if e.HasBounds {
			start = formatAxisValue(e.BinStart)
			end = formatAxisValue(e.BinEnd)
		}
		if err := w.Write([]string{e.Label, start, end, strconv.Itoa(e.Count)}); err != nil {
			return fmt.Errorf("write bin %d: %w", i, err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("flush csv: %w", err)
	}
	logging.Infof("exported bins %d-%d to %s", sel.From, sel.To, path)
	return nil
}

func defaultExportName(m *model) string {
	base := filepath.Base(m.data.sourcePath)
	base = strings.TrimSuffix(base, filepath.Ext(base))
	if base == "" || base == "." {
		base = "histogram"
	}
	return base + "-selection.csv"
}

func (m *model) copySelectedRange() tea.Cmd {
	label := "all values"
	if !m.hud.labelHidden {
		label = m.hud.fromLabel + " - " + m.hud.toLabel
	}
	text := fmt.Sprintf("%s (%d values)", label, m.data.selectedCount)

	if err := clipboard.CopyText(text); err != nil {
		return m.startNotice("Copy failed: "+err.Error(), "error", noticeDuration)
	}
	return m.startNotice("Range copied", "success", noticeDuration)
}
