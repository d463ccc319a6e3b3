package main

type mode int

const (
	modeView mode = iota
	modeRange
)

type uiState struct {
	mode        mode
	rangeDrawer rangeDrawerUI
	noticeMsg   string
	noticeType  string
	noticeSeq   int
	hoverLabel  string
}
