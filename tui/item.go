// Package tui implements the interactive per-game settings editor.
package tui

import (
	"strings"

	"github.com/dstweak-cli/dstweak/history"
	"github.com/dstweak-cli/dstweak/title"
)

// listItem implements the list.Item interface, wrapping domain models for terminal display.
type listItem struct {
	internal interface{}
}

// Title retrieves the primary display text for the list item.
func (t *listItem) Title() (title string) {
	switch e := t.internal.(type) {
	case *history.SavedGame:
		title = e.Name
		if title == "" {
			title = e.Key
		}
	case string:
		title = e
	default:
		title = t.FilterValue()
	}

	return
}

// Description retrieves the secondary metadata for the list item.
func (t *listItem) Description() (description string) {
	switch e := t.internal.(type) {
	case *history.SavedGame:
		parts := []string{e.Key}
		if e.Class != title.Retail {
			parts = append(parts, e.Class.String())
		}
		parts = append(parts, e.OpenedAt.Format("Jan 2 15:04"))

		description = strings.Join(parts, " • ")
	case string:
		description = ""
	}

	return
}

// FilterValue returns the string used for real-time list filtering and searching.
func (t *listItem) FilterValue() string {
	switch e := t.internal.(type) {
	case *history.SavedGame:
		if e.Name != "" && e.Name != e.Key {
			return e.Name + " " + e.Key
		}
		return e.Key
	case string:
		return e
	default:
		return ""
	}
}
