package main

import "github.com/charmbracelet/bubbles/textinput"

const (
	rangeFocusFrom = iota
	rangeFocusTo
)

type rangeDrawerUI struct {
	open      bool
	focus     int
	fromInput textinput.Model
	toInput   textinput.Model
	errorMsg  string
}

func initRangeInput(placeholder string) textinput.Model {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.CharLimit = 24
	ti.Width = 16
	ti.Prompt = ""
	return ti
}
