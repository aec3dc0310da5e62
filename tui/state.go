// Package tui implements the interactive per-game settings editor.
package tui

type state int

const (
	loadingState state = iota
	errorState
	historyState
	browsingState
	infoState
)
