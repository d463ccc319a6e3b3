package main

import (
	"fmt"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/andareed/siftly-histview/histogram"
)

func (m *model) openRangeDrawer() {
	rd := &m.ui.rangeDrawer
	rd.open = true
	rd.errorMsg = ""

	if _, _, ok := m.data.selectionBounds(); !ok {
		rd.errorMsg = "No numeric bounds available"
		rd.fromInput.SetValue("")
		rd.toInput.SetValue("")
		m.setRangeDrawerFocus(rangeFocusFrom)
		m.ui.mode = modeRange
		return
	}

	m.updateRangeInputsFromSelection()
	m.setRangeDrawerFocus(rangeFocusFrom)
	m.ui.mode = modeRange
}

func (m *model) closeRangeDrawer() {
	m.ui.rangeDrawer.open = false
	m.ui.rangeDrawer.errorMsg = ""
	m.ui.mode = modeView
}

func (m *model) handleRangeDrawerKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	rd := &m.ui.rangeDrawer

	switch {
	case msg.Type == tea.KeyEsc:
		m.closeRangeDrawer()
		return m, nil
	case msg.Type == tea.KeyEnter:
		m.applyRangeFromInputs()
		return m, nil
	case msg.String() == "r":
		m.resetRangeDraft()
		return m, nil
	case msg.Type == tea.KeyTab || msg.Type == tea.KeyShiftTab:
		m.setRangeDrawerFocus((rd.focus + 1) % 2)
		return m, nil
	}

	var cmd tea.Cmd
	if rd.focus == rangeFocusFrom {
		rd.fromInput, cmd = rd.fromInput.Update(msg)
	} else {
		rd.toInput, cmd = rd.toInput.Update(msg)
	}
	return m, cmd
}

func (m *model) setRangeDrawerFocus(focus int) {
	rd := &m.ui.rangeDrawer
	rd.focus = focus
	if focus == rangeFocusFrom {
		rd.fromInput.Focus()
		rd.toInput.Blur()
	} else {
		rd.fromInput.Blur()
		rd.toInput.Focus()
	}
}

func (m *model) updateRangeInputsFromSelection() {
	rd := &m.ui.rangeDrawer
	if lo, hi, ok := m.data.selectionBounds(); ok {
		rd.fromInput.SetValue(formatAxisValue(lo))
		rd.toInput.SetValue(formatAxisValue(hi))
	}
}

// applyRangeFromInputs parses the two bounds, snaps each to the source
// bin containing it, and commits the covering display range as user
// input.
func (m *model) applyRangeFromInputs() {
	rd := &m.ui.rangeDrawer
	rd.errorMsg = ""

	if len(m.data.entries) == 0 || !m.data.entries[0].HasBounds {
		rd.errorMsg = "No numeric bounds available"
		return
	}

	from, err := strconv.ParseFloat(strings.TrimSpace(rd.fromInput.Value()), 64)
	if err != nil {
		rd.errorMsg = "Invalid from value"
		return
	}
	to, err := strconv.ParseFloat(strings.TrimSpace(rd.toInput.Value()), 64)
	if err != nil {
		rd.errorMsg = "Invalid to value"
		return
	}
	if from > to {
		rd.errorMsg = "From is greater than to"
		return
	}

	source := histogram.BarRange{
		From: binIndexForValue(m.data.entries, from),
		To:   binIndexForValue(m.data.entries, to),
	}
	m.filter.SetFilterBarRange(m.sourceToDisplay(source), true)
	m.closeRangeDrawer()
}

func (m *model) resetRangeDraft() {
	rd := &m.ui.rangeDrawer
	rd.errorMsg = ""
	m.filter.SetFilterBarRange(m.filter.MaxBarRange(), true)
	m.updateRangeInputsFromSelection()
}

func (m *model) rangeDrawerView(width int) string {
	rd := &m.ui.rangeDrawer
	innerWidth := width - 2
	if innerWidth < 0 {
		innerWidth = 0
	}
	lineStyle := lipgloss.NewStyle().Width(innerWidth)

	fromLine := fmt.Sprintf("From: %s", rd.fromInput.View())
	toLine := fmt.Sprintf("To:   %s", rd.toInput.View())
	helpLine := "tab: next  enter: apply  r: reset  esc: cancel"
	errorLine := ""
	if rd.errorMsg != "" {
		errorLine = "Error: " + rd.errorMsg
	}

	lines := []string{
		lineStyle.Render(fromLine),
		lineStyle.Render(toLine),
		lineStyle.Render(helpLine),
		lineStyle.Render(errorLine),
	}
	return rangeDrawerArea.Width(width).Render(strings.Join(lines, "\n"))
}
