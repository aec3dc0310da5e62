// Package tui implements the interactive per-game settings editor.
package tui

import (
	tea "github.com/charmbracelet/bubbletea"
)

// Init starts the editor, kicking off the title load when a game was given.
func (b *statefulBubble) Init() tea.Cmd {
	if b.state == loadingState {
		return tea.Batch(b.startLoading(), b.spinnerC.Tick, b.loadTitle(b.options.Path), b.waitForTitle())
	}

	return nil
}
