package main

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// filterHud is the presentation sink the range filter drives. It only
// stores what it was told; rendering happens later from these values so
// a mid-drag frame shows exactly what the filter computed.
type filterHud struct {
	fromLabel   string
	toLabel     string
	labelHidden bool

	handleX float64
	handleW float64

	pageLeft  bool
	pageRight bool
}

func (h *filterHud) SetRangeLabel(from, to string) {
	h.fromLabel = from
	h.toLabel = to
}

func (h *filterHud) SetRangeLabelHidden(hidden bool) { h.labelHidden = hidden }

func (h *filterHud) SetHandleRegion(x, width float64) {
	h.handleX = x
	h.handleW = width
}

func (h *filterHud) SetPageLeftEnabled(enabled bool)  { h.pageLeft = enabled }
func (h *filterHud) SetPageRightEnabled(enabled bool) { h.pageRight = enabled }

func (m *model) View() string {
	if !m.ready {
		return "loading..."
	}

	if m.activeDialog != nil && m.activeDialog.IsVisible() {
		return lipgloss.Place(
			m.terminalWidth, m.terminalHeight,
			lipgloss.Center, lipgloss.Center,
			m.activeDialog.View(),
			lipgloss.WithWhitespaceChars(" "),
			lipgloss.WithWhitespaceBackground(lipgloss.Color("236")),
		)
	}

	contentW := int(m.hist.TotalWidth())

	parts := []string{
		m.chartView(),
		m.handleRowView(),
		m.rangeLabelView(),
	}
	if m.ui.rangeDrawer.open {
		parts = append(parts, m.rangeDrawerView(contentW))
	}
	parts = append(parts, m.footerView(contentW))
	return appstyle.Render(lipgloss.JoinVertical(lipgloss.Left, parts...))
}

// chartView paints the bar row top-down. Each bar's back layer is the
// full scaled height in the dim shade; the foreground layer is the
// selected portion in the bright shade. shadeBars keeps the foreground
// overlays in step with the highlight flags first.
func (m *model) chartView() string {
	m.shadeBars()

	bars := m.hist.Bars()
	bw := int(m.hist.BarWidth())
	reset := termenv.CSI + "0m"
	bright := fgSeq(lipgloss.Color(barBrightFGColor))
	dim := fgSeq(lipgloss.Color(barDimFGColor))

	var b strings.Builder
	for row := 0; row < m.chartHeight; row++ {
		fromBottom := float64(m.chartHeight - row)
		for _, bar := range bars {
			back := bar.BackLayer()
			fg := bar.ForegroundLayer()
			switch {
			case fromBottom <= fg.Height:
				b.WriteString(bright + strings.Repeat("█", bw))
			case fromBottom <= back.Height:
				b.WriteString(dim + strings.Repeat("█", bw))
			default:
				b.WriteString(reset + strings.Repeat(" ", bw))
			}
		}
		b.WriteString(reset)
		if row < m.chartHeight-1 {
			b.WriteByte('\n')
		}
	}
	return b.String()
}

// shadeBars syncs every bar's selection overlay with its highlight flag:
// bars outside the selection get a zero-height foreground so only the
// dim back layer shows.
func (m *model) shadeBars() {
	for _, bar := range m.hist.Bars() {
		if bar.Highlighted() {
			bar.ClearSelectedHeight()
		} else {
			bar.SetSelectedHeight(0)
		}
	}
}

// handleRowView renders the scrubber under the chart: the selected span
// as [===] on a dashed baseline. The brackets are the drag handles.
func (m *model) handleRowView() string {
	total := int(m.hist.TotalWidth())
	if total < 1 {
		return ""
	}

	row := make([]rune, total)
	for i := range row {
		row[i] = '-'
	}

	start := int(math.Round(m.hud.handleX))
	end := int(math.Round(m.hud.handleX+m.hud.handleW)) - 1
	if start < 0 {
		start = 0
	}
	if end > total-1 {
		end = total - 1
	}
	if end < start {
		end = start
	}
	for i := start; i <= end; i++ {
		row[i] = '='
	}
	row[start] = '['
	row[end] = ']'

	return handleRowStyle.Render(string(row))
}

func (m *model) rangeLabelView() string {
	left := "◀"
	if !m.hud.pageLeft {
		left = " "
	}
	right := "▶"
	if !m.hud.pageRight {
		right = " "
	}

	label := "all values"
	if !m.hud.labelHidden {
		label = m.hud.fromLabel + " - " + m.hud.toLabel
	}
	return rangeReadoutStyle.Render(fmt.Sprintf("%s Range: %s %s", left, label, right))
}

func (m *model) footerView(width int) string {
	st := footerState{
		ModeLabel:     "NORMAL",
		FileName:      m.data.sourcePath,
		ColumnName:    m.data.columnName,
		SelectedCount: m.data.selectedCount,
		TotalCount:    m.data.countInRange(m.data.fullRange()),
		SourceBins:    len(m.data.entries),
		MergeFactor:   m.data.mergeFactor,
		Legend:        "(? help · f set range · ←/→ page · r reset · e export · y copy · q quit)",
	}
	if m.ui.mode == modeRange {
		st.ModeLabel = "RANGE"
	}
	if m.ui.noticeMsg != "" {
		st.StatusMessage = noticeText(m.ui.noticeMsg, m.ui.noticeType)
	} else if m.ui.hoverLabel != "" {
		st.StatusMessage = m.ui.hoverLabel
	}

	return renderFooter(width, st, defaultFooterStyles())
}

func fgSeq(c lipgloss.Color) string {
	return colorSeq(c, false)
}

func bgSeq(c lipgloss.Color) string {
	return colorSeq(c, true)
}

func colorSeq(c lipgloss.Color, bg bool) string {
	value := string(c)
	if value == "" {
		if bg {
			return termenv.CSI + "49m"
		}
		return termenv.CSI + "39m"
	}
	profile := lipgloss.ColorProfile()
	tc := profile.Color(value)
	if tc == nil {
		return ""
	}
	return termenv.CSI + tc.Sequence(bg) + "m"
}
