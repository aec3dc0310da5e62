// Package tui implements the interactive per-game settings editor.
package tui

import (
	"fmt"
	"path/filepath"
	"sort"

	"github.com/dstweak-cli/dstweak/filesystem"
	"github.com/dstweak-cli/dstweak/history"
	"github.com/dstweak-cli/dstweak/internal/ui"
	"github.com/dstweak-cli/dstweak/key"
	"github.com/dstweak-cli/dstweak/log"
	"github.com/dstweak-cli/dstweak/settings"
	"github.com/dstweak-cli/dstweak/title"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/samber/lo"
	"github.com/spf13/viper"
)

// loadedTitle carries a classified game and its stored overrides from the
// loader into the update loop.
type loadedTitle struct {
	info      title.Info
	overrides settings.Overrides
}

func (b *statefulBubble) loadHistory() (tea.Cmd, error) {
	saved, err := history.Get()
	if err != nil {
		return nil, err
	}

	games := lo.Values(saved)
	sort.Slice(games, func(i, j int) bool {
		return games[i].OpenedAt.After(games[j].OpenedAt)
	})

	var items []list.Item
	for _, g := range games {
		items = append(items, &listItem{internal: g})
	}

	return b.historyC.SetItems(items), nil
}

func (b *statefulBubble) loadTitle(path string) tea.Cmd {
	return func() tea.Msg {
		b.progressStatus = fmt.Sprintf("Reading %s", filepath.Base(path))

		exists, err := filesystem.API().Exists(path)
		if err != nil {
			b.errorChannel <- err
			return nil
		}
		if !exists {
			b.errorChannel <- fmt.Errorf("%s does not exist", path)
			return nil
		}

		log.Info("classifying " + path)
		info := title.Classify(path)
		overrides := settings.Load(info.Key)

		if viper.GetBool(key.HistorySaveOnEdit) {
			if err := history.Save(info); err != nil {
				log.Warnf("failed to remember %s: %v", info.Key, err)
			}
		}

		b.titleLoadedChannel <- loadedTitle{info: info, overrides: overrides}
		return nil
	}
}

func (b *statefulBubble) waitForTitle() tea.Cmd {
	return func() tea.Msg {
		select {
		case res := <-b.titleLoadedChannel:
			return res
		case err := <-b.errorChannel:
			b.lastError = err
			return err
		}
	}
}

// finishEditing persists pending edits and leaves the editor, either back to
// the recent games list or out of the program. A failed write keeps the
// session alive with its edits intact.
func (b *statefulBubble) finishEditing() tea.Cmd {
	if b.dirty {
		if err := settings.Save(b.info.Key, b.overrides, b.ctx); err != nil {
			log.Error(err)
			return ui.NotifySaveFailure(err)
		}
		b.dirty = false
	}

	if b.statesHistory.Len() > 0 {
		b.previousState()
		return nil
	}
	return tea.Quit
}
