package history

import (
	"fmt"
	"time"

	"github.com/dstweak-cli/dstweak/title"
)

// SavedGame represents a single game entry preserved in the user's history.
type SavedGame struct {
	Key      string      `json:"key"`
	Path     string      `json:"path"`
	Name     string      `json:"name"`
	Class    title.Class `json:"class"`
	OpenedAt time.Time   `json:"opened_at"`
}

func (s *SavedGame) String() string {
	return fmt.Sprintf("%s (%s)", s.Name, s.Key)
}

func newSavedGame(info title.Info) *SavedGame {
	return &SavedGame{
		Key:      info.Key,
		Path:     info.Path,
		Name:     info.Name,
		Class:    info.Class,
		OpenedAt: time.Now(),
	}
}
