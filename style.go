package main

import "github.com/charmbracelet/lipgloss"

const (
	barBrightFGColor = "#5fd7ff"
	barDimFGColor    = "#3a5f7a"
)

var (
	appstyle = lipgloss.NewStyle().Margin(1, 2)

	handleRowStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("250"))
	rangeReadoutStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))

	rangeDrawerArea = lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(lipgloss.Color("245")).
			Padding(0, 0).BorderLeft(true)
)
