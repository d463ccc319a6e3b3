package main

import (
	"math"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/andareed/siftly-histview/histogram"
)

// handleHitSlop is how far, in chart pixels, a press on the handle row
// may land from a handle edge and still grab it.
const handleHitSlop = barWidthCells

func (m *model) updateMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if m.filter == nil {
		return m, nil
	}
	if m.activeDialog != nil && m.activeDialog.IsVisible() {
		return m, nil
	}

	px := m.pixelX(msg.X)
	m.lastMouseX = px

	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft {
			return m, nil
		}
		m.handlePress(msg, px)
	case tea.MouseActionMotion:
		if m.filter.Active() {
			m.filter.PointerMove(px)
			return m, nil
		}
		m.updateHover(msg, px)
	case tea.MouseActionRelease:
		m.handleRelease(msg, px)
	}
	return m, nil
}

// pixelX maps an absolute terminal column to chart pixel space, clamped
// into the chart's domain so drags past the edges keep working.
func (m *model) pixelX(col int) float64 {
	px := float64(col - appMarginX)
	if px < 0 {
		px = 0
	}
	if t := m.hist.TotalWidth(); px > t {
		px = t
	}
	return px
}

func (m *model) pixelY(row int) float64 {
	return float64(row - appMarginY)
}

func (m *model) handlePress(msg tea.MouseMsg, px float64) {
	row := msg.Y - appMarginY
	if row == m.chartHeight {
		// Handle row. The nearer edge wins when both are in reach.
		lowX := m.hud.handleX
		highX := m.hud.handleX + m.hud.handleW
		dLow := math.Abs(px - lowX)
		dHigh := math.Abs(px - highX)
		switch {
		case dLow <= handleHitSlop && dLow <= dHigh:
			m.filter.PointerDown(histogram.HandleLow, px)
		case dHigh <= handleHitSlop:
			m.filter.PointerDown(histogram.HandleHigh, px)
		}
		return
	}

	if idx, ok := m.barAt(msg); ok {
		m.pressedIdx = idx
	}
}

func (m *model) handleRelease(msg tea.MouseMsg, px float64) {
	if m.filter.Active() {
		m.filter.PointerUp(px)
		m.pressedIdx = -1
		return
	}

	if idx, ok := m.barAt(msg); ok && idx == m.pressedIdx {
		bars := m.hist.Bars()
		bars[idx].Click(histogram.PointerEvent{X: px, Y: m.pixelY(msg.Y), Kind: histogram.PointerUp})
	}
	m.pressedIdx = -1
}

func (m *model) updateHover(msg tea.MouseMsg, px float64) {
	idx, ok := m.barAt(msg)
	if !ok {
		idx = -1
	}
	if idx == m.hoverIdx {
		return
	}

	bars := m.hist.Bars()
	ev := histogram.PointerEvent{X: px, Y: m.pixelY(msg.Y), Kind: histogram.PointerMove}
	if m.hoverIdx >= 0 && m.hoverIdx < len(bars) {
		bars[m.hoverIdx].Leave(ev)
	}
	if idx >= 0 {
		bars[idx].Enter(ev)
	}
	m.hoverIdx = idx
}

// barAt hit-tests the pointer against the bar column under it. Only the
// rows the bar's painted body occupies count; hovering the empty air
// above a short bar is not a hit.
func (m *model) barAt(msg tea.MouseMsg) (int, bool) {
	row := msg.Y - appMarginY
	if row < 0 || row >= m.chartHeight {
		return 0, false
	}
	px := float64(msg.X - appMarginX)
	if px < 0 {
		return 0, false
	}
	bars := m.hist.Bars()
	idx := int(px / m.hist.BarWidth())
	if idx >= len(bars) {
		return 0, false
	}
	if float64(row) < bars[idx].Y() {
		return 0, false
	}
	return idx, true
}
