package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

type footerState struct {
	ModeLabel  string
	FileName   string
	ColumnName string

	SelectedCount int
	TotalCount    int
	SourceBins    int
	MergeFactor   int

	StatusMessage string
	Legend        string
}

type footerStyles struct {
	BarBG      lipgloss.Color
	StatusBG   lipgloss.Color
	ModePillBG lipgloss.Color
	ModePillFG lipgloss.Color
	FileNameFG lipgloss.Color
	TextFG     lipgloss.Color
	DimFG      lipgloss.Color
	StatusFG   lipgloss.Color
	LegendFG   lipgloss.Color
}

func defaultFooterStyles() footerStyles {
	return footerStyles{
		BarBG:      lipgloss.Color("#2b2b2b"),
		StatusBG:   lipgloss.Color("#000000"),
		ModePillBG: lipgloss.Color("#ff9f1c"),
		ModePillFG: lipgloss.Color("#000000"),
		FileNameFG: lipgloss.Color("#e0e0e0"),
		TextFG:     lipgloss.Color("#cfcfcf"),
		DimFG:      lipgloss.Color("#a0a0a0"),
		StatusFG:   lipgloss.Color("#9a9a9a"),
		LegendFG:   lipgloss.Color("#b0b0b0"),
	}
}

// renderFooter renders the 2-line footer: a control bar with the mode
// pill, file and bin facts plus the selection tally, then a status bar
// with the transient message and key legend.
func renderFooter(width int, st footerState, styles footerStyles) string {
	if width <= 0 {
		return ""
	}
	line1 := renderControlBar(width, st, styles)
	line2 := renderStatusBar(width, st, styles)
	return line1 + "\n" + line2
}

func renderControlBar(width int, st footerState, styles footerStyles) string {
	rightPlain := fmt.Sprintf(" Selected %d/%d", st.SelectedCount, st.TotalCount)
	rightPlain = truncatePlain(rightPlain, width)
	rightW := runeWidth(rightPlain)

	leftW := width - rightW
	if leftW < 0 {
		leftW = 0
	}

	modeText := st.ModeLabel
	if modeText == "" {
		modeText = "NORMAL"
	}
	pillPlain := " " + modeText + " "
	pillPlain = truncatePlain(pillPlain, leftW)
	pill := ansiBg(styles.ModePillBG) + ansiFg(styles.ModePillFG) + pillPlain +
		ansiBg(styles.BarBG) + ansiFg(styles.TextFG)

	name := strings.TrimSpace(st.FileName)
	if name == "" {
		name = "(no file)"
	}
	if st.ColumnName != "" {
		name = fmt.Sprintf("%s (%s)", name, st.ColumnName)
	}
	binsPlain := fmt.Sprintf("[BINS: %d x%d]", st.SourceBins, st.MergeFactor)

	remaining := leftW - runeWidth(pillPlain)
	filePlain := ""
	if remaining > 0 {
		filePlain = truncatePlain(" ▸ "+name, remaining)
		remaining -= runeWidth(filePlain)
	}
	binsSeg := ""
	if remaining > runeWidth(binsPlain)+1 {
		binsSeg = " " + binsPlain
		remaining -= runeWidth(binsSeg)
	}
	pad := ""
	if remaining > 0 {
		pad = strings.Repeat(" ", remaining)
	}

	line := pill +
		applyFG(filePlain, styles.FileNameFG, styles.TextFG) +
		applyFG(binsSeg, styles.DimFG, styles.TextFG) +
		pad + rightPlain
	return applyBar(line, styles.BarBG, styles.TextFG)
}

func renderStatusBar(width int, st footerState, styles footerStyles) string {
	legendPlain := truncatePlain(st.Legend, width)
	legendW := runeWidth(legendPlain)

	leftW := width - legendW
	if leftW < 0 {
		leftW = 0
	}

	msgPlain := padRightPlain(truncatePlain(st.StatusMessage, leftW), leftW)
	line := applyFG(msgPlain, styles.StatusFG, styles.StatusFG) +
		applyFG(legendPlain, styles.LegendFG, styles.StatusFG)
	return applyBar(line, styles.StatusBG, styles.StatusFG)
}

func applyBar(s string, bg lipgloss.Color, baseFG lipgloss.Color) string {
	return ansiBg(bg) + ansiFg(baseFG) + s + termenv.CSI + "0m"
}

func applyFG(s string, fg lipgloss.Color, resetFG lipgloss.Color) string {
	if s == "" {
		return ""
	}
	return ansiFg(fg) + s + ansiFg(resetFG)
}

func ansiFg(c lipgloss.Color) string { return fgSeq(c) }
func ansiBg(c lipgloss.Color) string { return bgSeq(c) }

func padRightPlain(s string, w int) string {
	if w <= 0 {
		return ""
	}
	cur := runeWidth(s)
	if cur >= w {
		return s
	}
	return s + strings.Repeat(" ", w-cur)
}

func truncatePlain(s string, w int) string {
	if w <= 0 {
		return ""
	}
	r := []rune(s)
	if len(r) <= w {
		return s
	}
	return string(r[:w])
}

func runeWidth(s string) int {
	return len([]rune(s))
}
