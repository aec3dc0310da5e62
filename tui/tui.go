// Package tui implements the interactive per-game settings editor.
package tui

import (
	"errors"

	"github.com/dstweak-cli/dstweak/history"
	tea "github.com/charmbracelet/bubbletea"
)

// Options encapsulates the runtime configuration for the settings editor.
type Options struct {
	// Path of the game to edit. Empty opens the recent games list.
	Path string

	// Continue reopens the most recently edited game.
	Continue bool
}

// Run initializes and executes the primary Bubble Tea application loop.
func Run(options *Options) error {
	bubble := newBubble(options)

	switch {
	case options.Continue:
		latest, ok, err := history.Latest()
		if err != nil {
			return err
		}
		if !ok {
			return errors.New("no games were edited yet")
		}

		bubble.options.Path = latest.Path
		bubble.setState(loadingState)
	case options.Path != "":
		bubble.setState(loadingState)
	default:
		if _, err := bubble.loadHistory(); err != nil {
			return err
		}
		bubble.newState(historyState)
	}

	_, err := tea.NewProgram(bubble, tea.WithAltScreen()).Run()
	return err
}
