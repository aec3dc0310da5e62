// Package settings implements per-game settings: the field catalog, stored
// overrides, effective value resolution and the settings files launchers read.
package settings

import (
	"github.com/dstweak-cli/dstweak/constant"
	"github.com/dstweak-cli/dstweak/hardware"
	"github.com/dstweak-cli/dstweak/key"
	"github.com/dstweak-cli/dstweak/title"
	"github.com/spf13/viper"
)

// Context carries everything field visibility and persistence depend on.
// It is built once per session and passed by value.
type Context struct {
	Class title.Class
	Caps  hardware.Capabilities

	// SecondaryDevice reports whether the active storage root is the
	// flashcard rather than the console SD card.
	SecondaryDevice bool
}

// NewContext derives the session context for a classified game from the
// configured console and storage device.
func NewContext(info title.Info) Context {
	return Context{
		Class:           info.Class,
		Caps:            hardware.Probe(),
		SecondaryDevice: viper.GetString(key.StorageActive) == constant.StorageSecondary,
	}
}
