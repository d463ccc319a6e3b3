package main

import (
	"fmt"
	"log"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/andareed/siftly-histview/dialogs"
	"github.com/andareed/siftly-histview/histogram"
	"github.com/andareed/siftly-histview/logging"
)

// Layout constants. The app renders inside appstyle's margin, so mouse
// coordinates have to be shifted by the same offsets before they become
// chart pixels.
const (
	appMarginX = 2
	appMarginY = 1

	barWidthCells     = 2.0
	chartReservedRows = 12
	minChartHeight    = 5
)

type model struct {
	data dataState
	ui   uiState

	hist   *histogram.Histogram
	filter *histogram.RangeFilter
	hud    *filterHud

	keys         Keymap
	activeDialog dialogs.Dialog

	terminalWidth  int
	terminalHeight int
	chartHeight    int
	ready          bool

	hoverIdx   int
	pressedIdx int
	lastMouseX float64
}

func newModel(data dataState) *model {
	m := &model{
		data:       data,
		keys:       Keys,
		hoverIdx:   -1,
		pressedIdx: -1,
	}
	m.ui.rangeDrawer.fromInput = initRangeInput("min")
	m.ui.rangeDrawer.toInput = initRangeInput("max")
	return m
}

func (m *model) Init() tea.Cmd {
	log.Println("siftly-histview: Initialised")
	return nil
}

func (m *model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.updateKey(msg)
	case tea.MouseMsg:
		return m.updateMouse(msg)
	case tea.WindowSizeMsg:
		m.terminalWidth = msg.Width
		m.terminalHeight = msg.Height
		m.rebuildChart()
		m.ready = true
		return m, nil
	case tea.BlurMsg:
		// Losing terminal focus mid-drag commits the drag where it stands.
		if m.filter != nil && m.filter.Active() {
			m.filter.PointerLeave(m.lastMouseX)
		}
		return m, nil
	case clearNoticeMsg:
		if msg.id == m.ui.noticeSeq {
			m.ui.noticeMsg = ""
			m.ui.noticeType = ""
		}
		return m, nil
	case dialogs.ExportConfirmedMsg:
		m.activeDialog = nil
		if err := exportSelection(m, msg.Path); err != nil {
			logging.Warnf("export failed: %v", err)
			return m, m.startNotice("Export failed: "+err.Error(), "error", noticeDuration)
		}
		return m, m.startNotice("Exported "+msg.Path, "success", noticeDuration)
	case dialogs.ExportCanceledMsg:
		m.activeDialog = nil
		return m, nil
	}

	if m.activeDialog != nil && m.activeDialog.IsVisible() {
		var cmd tea.Cmd
		m.activeDialog, cmd = m.activeDialog.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m *model) updateKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.activeDialog != nil && m.activeDialog.IsVisible() {
		var cmd tea.Cmd
		m.activeDialog, cmd = m.activeDialog.Update(msg)
		return m, cmd
	}

	switch m.ui.mode {
	case modeRange:
		return m.handleRangeDrawerKey(msg)
	default:
		return m.handleViewModeKey(msg)
	}
}

func (m *model) handleViewModeKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.filter == nil {
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.PageLeft):
		m.filter.PageLeft()
	case key.Matches(msg, m.keys.PageRight):
		m.filter.PageRight()
	case key.Matches(msg, m.keys.ResetRange):
		m.filter.SetFilterBarRange(m.filter.MaxBarRange(), true)
		return m, m.startNotice("Selection reset", "info", noticeDuration)
	case key.Matches(msg, m.keys.SetRange):
		m.openRangeDrawer()
	case key.Matches(msg, m.keys.Export):
		m.activeDialog = dialogs.NewExportDialog(defaultExportName(m), "")
		return m, m.activeDialog.Focus()
	case key.Matches(msg, m.keys.CopyRange):
		return m, m.copySelectedRange()
	case key.Matches(msg, m.keys.OpenHelp):
		m.activeDialog = dialogs.NewHelpDialog(m.keys.Legend())
	}
	return m, nil
}

// rebuildChart recreates the histogram and filter for the current
// terminal size. Source bins are merged so the bar row fits, callbacks
// are re-wired, and the persisted source-space selection is re-applied
// as a programmatic commit so subscribers can tell it apart from user
// input.
func (m *model) rebuildChart() {
	innerW := m.terminalWidth - 2*appMarginX
	maxBars := innerW / int(barWidthCells)
	if maxBars < 1 {
		maxBars = 1
	}
	m.chartHeight = m.terminalHeight - chartReservedRows
	if m.chartHeight < minChartHeight {
		m.chartHeight = minChartHeight
	}

	bins, k := mergeForWidth(m.data.entries, maxBars)
	m.data.mergeFactor = k
	logging.Debugf("rebuildChart: %d source bins -> %d bars (k=%d) h=%d", len(m.data.entries), len(bins), k, m.chartHeight)

	m.hist = histogram.New(bins, barWidthCells, float64(m.chartHeight))
	m.hud = &filterHud{}
	m.filter = histogram.NewRangeFilter(m.hist, m.hud)
	if len(m.data.values) > 0 {
		m.filter.SetDisplayFunc(formatAxisValue)
	}

	for i, bar := range m.hist.Bars() {
		bar.OnEnter(func(b *histogram.Bar, _ histogram.PointerEvent) {
			m.ui.hoverLabel = hoverText(b)
		})
		bar.OnLeave(func(*histogram.Bar, histogram.PointerEvent) {
			m.ui.hoverLabel = ""
		})
		bar.OnClick(func(*histogram.Bar, histogram.PointerEvent) {
			m.filter.SetFilterBarRange(histogram.BarRange{From: i, To: i}, true)
		})
	}

	m.filter.OnChanged(func(r histogram.BarRange, fromUserInput bool) {
		m.data.selected = m.displayToSource(r)
		m.data.selectedCount = m.data.countInRange(m.data.selected)
		logging.Debugf("selection: bars %d-%d source %d-%d count=%d user=%v",
			r.From, r.To, m.data.selected.From, m.data.selected.To, m.data.selectedCount, fromUserInput)
	})

	if m.data.selected != m.data.fullRange() {
		m.filter.SetFilterBarRange(m.sourceToDisplay(m.data.selected), false)
	} else {
		m.data.selectedCount = m.data.countInRange(m.data.selected)
	}

	m.hoverIdx = -1
	m.pressedIdx = -1
	m.ui.hoverLabel = ""
}

// displayToSource widens a display-bar range to the source bins it
// covers. The last display bar may aggregate fewer than mergeFactor bins.
func (m *model) displayToSource(r histogram.BarRange) histogram.BarRange {
	k := m.data.mergeFactor
	from := r.From * k
	to := r.To*k + k - 1
	if last := len(m.data.entries) - 1; to > last {
		to = last
	}
	return histogram.BarRange{From: from, To: to}
}

func (m *model) sourceToDisplay(r histogram.BarRange) histogram.BarRange {
	k := m.data.mergeFactor
	return histogram.BarRange{From: r.From / k, To: r.To / k}
}

func hoverText(bar *histogram.Bar) string {
	info := bar.Info()
	total := 0
	for _, c := range info.Counts {
		total += c
	}
	if len(info.BinStarts) > 0 {
		return fmt.Sprintf("%s to %s: %d values",
			formatAxisValue(info.BinStarts[0]),
			formatAxisValue(info.BinEnds[len(info.BinEnds)-1]),
			total)
	}
	if len(info.Labels) > 0 && info.Labels[0] != "" {
		last := info.ToLabels[len(info.ToLabels)-1]
		if last == "" || last == info.Labels[0] {
			return fmt.Sprintf("%s: %d values", info.Labels[0], total)
		}
		return fmt.Sprintf("%s to %s: %d values", info.Labels[0], last, total)
	}
	return fmt.Sprintf("%d values", total)
}
