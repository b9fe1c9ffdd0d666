package tui

type state int

const (
	collectState state = iota
	loadingState
	playingState
	errorState
)
