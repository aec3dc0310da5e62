// Package history tracks the games opened for editing, so recent ones can be
// reopened by name or picked up where the user left off.
package history

import (
	"github.com/dstweak-cli/dstweak/filesystem"
	"github.com/dstweak-cli/dstweak/title"
	"github.com/dstweak-cli/dstweak/where"
	"github.com/lithammer/fuzzysearch/fuzzy"
	"github.com/metafates/gache"
	"github.com/samber/lo"
	"golang.org/x/exp/slices"
)

// cacher provides an abstracted, disk-backed registry for edited games.
var cacher = gache.New[map[string]*SavedGame](
	&gache.Options{
		Path:       where.History(),
		FileSystem: &filesystem.GacheFs{},
	},
)

// Get returns the complete collection of remembered games keyed by title key.
func Get() (map[string]*SavedGame, error) {
	cached, expired, err := cacher.Get()
	if err != nil {
		return nil, err
	}
	if expired || cached == nil {
		return make(map[string]*SavedGame), nil
	}
	return cached, nil
}

// Save remembers a game as the most recently opened one.
func Save(info title.Info) error {
	saved, err := Get()
	if err != nil {
		return err
	}

	saved[info.Key] = newSavedGame(info)
	return cacher.Set(saved)
}

// Remove permanently deletes a game from the history registry.
func Remove(game *SavedGame) error {
	saved, err := Get()
	if err != nil {
		return err
	}

	delete(saved, game.Key)
	return cacher.Set(saved)
}

// Latest returns the most recently opened game, if any is remembered.
func Latest() (*SavedGame, bool, error) {
	saved, err := Get()
	if err != nil {
		return nil, false, err
	}

	var latest *SavedGame
	for _, game := range saved {
		if latest == nil || game.OpenedAt.After(latest.OpenedAt) {
			latest = game
		}
	}
	return latest, latest != nil, nil
}

// Search finds remembered games whose name or key matches the query loosely,
// most recently opened first.
func Search(query string) ([]*SavedGame, error) {
	saved, err := Get()
	if err != nil {
		return nil, err
	}

	games := lo.Filter(lo.Values(saved), func(game *SavedGame, _ int) bool {
		return fuzzy.MatchFold(query, game.Name) || fuzzy.MatchFold(query, game.Key)
	})
	slices.SortFunc(games, func(a, b *SavedGame) int {
		return b.OpenedAt.Compare(a.OpenedAt)
	})
	return games, nil
}
