// Package tui implements the interactive per-game settings editor.
package tui

import (
	"fmt"

	"github.com/dstweak-cli/dstweak/history"
	"github.com/dstweak-cli/dstweak/internal/ui"
	"github.com/dstweak-cli/dstweak/log"
	"github.com/dstweak-cli/dstweak/settings"
	bubblesKey "github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

func (b *statefulBubble) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	// Process ephemeral UI notifications (captures `string` and `ui.ClearNotificationMsg`)
	if uiCmd := b.notifier.Update(msg); uiCmd != nil {
		cmds = append(cmds, uiCmd)
	}

	switch msg := msg.(type) {
	case error:
		b.raiseError(msg)
	case tea.WindowSizeMsg:
		b.resize(msg.Width, msg.Height)
	case tea.KeyMsg:
		switch {
		case bubblesKey.Matches(msg, b.keymap.forceQuit):
			return b, tea.Quit
		}
	}

	var cmd tea.Cmd
	var model tea.Model = b

	switch b.state {
	case loadingState:
		model, cmd = b.updateLoading(msg)
	case historyState:
		model, cmd = b.updateHistory(msg)
	case browsingState:
		model, cmd = b.updateBrowsing(msg)
	case infoState:
		model, cmd = b.updateInfo(msg)
	case errorState:
		model, cmd = b.updateError(msg)
	}

	return model, tea.Batch(append(cmds, cmd)...)
}

func (b *statefulBubble) updateLoading(msg tea.Msg) (tea.Model, tea.Cmd) {
	var (
		cmd  tea.Cmd
		cmds = make([]tea.Cmd, 0)
	)

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case bubblesKey.Matches(msg, b.keymap.back):
			if b.statesHistory.Len() > 0 {
				b.previousState()
				b.stopLoading()
			} else {
				return b, tea.Quit
			}
		}
	case loadedTitle:
		b.applyTitle(msg)
		b.stopLoading()

		if len(b.fields) == 0 {
			b.newState(infoState)
		} else {
			b.newState(browsingState)
		}
	}

	b.spinnerC, cmd = b.spinnerC.Update(msg)
	return b, tea.Batch(append(cmds, cmd)...)
}

func (b *statefulBubble) updateHistory(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case bubblesKey.Matches(msg, b.keymap.confirm):
			item, ok := b.historyC.SelectedItem().(*listItem)
			if !ok {
				break
			}
			game := item.internal.(*history.SavedGame)

			b.newState(loadingState)
			return b, tea.Batch(b.startLoading(), b.spinnerC.Tick, b.loadTitle(game.Path), b.waitForTitle())
		case bubblesKey.Matches(msg, b.keymap.remove):
			item, ok := b.historyC.SelectedItem().(*listItem)
			if !ok {
				break
			}
			game := item.internal.(*history.SavedGame)

			if err := history.Remove(game); err != nil {
				log.Error(err)
				break
			}
			b.historyC.RemoveItem(b.historyC.Index())
		case bubblesKey.Matches(msg, b.keymap.quit), bubblesKey.Matches(msg, b.keymap.back):
			return b, tea.Quit
		}
	}

	b.historyC, cmd = b.historyC.Update(msg)
	return b, cmd
}

func (b *statefulBubble) updateBrowsing(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case bubblesKey.Matches(msg, b.keymap.up):
			b.moveCursor(-1)
		case bubblesKey.Matches(msg, b.keymap.down):
			b.moveCursor(1)
		case bubblesKey.Matches(msg, b.keymap.top):
			b.cursor = 0
		case bubblesKey.Matches(msg, b.keymap.bottom):
			b.cursor = len(b.fields) - 1
		case bubblesKey.Matches(msg, b.keymap.cycle):
			field := b.selectedField()
			if b.overrides.Cycle(field, b.ctx) {
				b.dirty = true
			} else {
				return b, ui.Notify(fmt.Sprintf("%s is locked while the game runs in DSi mode", field.Label()))
			}
		case bubblesKey.Matches(msg, b.keymap.unset):
			field := b.selectedField()
			if b.overrides.Get(field).IsPresent() && !settings.Locked(field, b.overrides, b.ctx) {
				b.overrides.Unset(field)
				b.dirty = true
			}
		case bubblesKey.Matches(msg, b.keymap.quit), bubblesKey.Matches(msg, b.keymap.back):
			return b, b.finishEditing()
		}
	}

	return b, nil
}

func (b *statefulBubble) updateInfo(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case bubblesKey.Matches(msg, b.keymap.quit), bubblesKey.Matches(msg, b.keymap.back):
			if b.statesHistory.Len() > 0 {
				b.previousState()
				return b, nil
			}
			return b, tea.Quit
		}
	}

	return b, nil
}

func (b *statefulBubble) updateError(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case bubblesKey.Matches(msg, b.keymap.back):
			if b.statesHistory.Len() > 0 {
				b.previousState()
				return b, nil
			}
			return b, tea.Quit
		case bubblesKey.Matches(msg, b.keymap.quit):
			return b, tea.Quit
		}
	}

	return b, nil
}
