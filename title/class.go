// Package title identifies the games a storage medium holds.
package title

import (
	"encoding/json"
	"fmt"
)

// Class describes how a launcher treats a game, which in turn decides the
// settings that can be edited and persisted for it.
type Class int

const (
	// Retail is a cartridge dump launched through nds-bootstrap.
	Retail Class = iota
	// Homebrew is an unlicensed game booted directly.
	Homebrew
	// Digital is an installed DSiWare or system title.
	Digital
	// LaunchArgument is an argv or launcharg file pointing at the real game.
	LaunchArgument
)

var classNames = map[Class]string{
	Retail:         "retail",
	Homebrew:       "homebrew",
	Digital:        "digital",
	LaunchArgument: "launcharg",
}

func (c Class) String() string {
	if name, ok := classNames[c]; ok {
		return name
	}
	return "retail"
}

// MarshalJSON encodes the class under its stable string name.
func (c Class) MarshalJSON() ([]byte, error) {
	return json.Marshal(c.String())
}

// UnmarshalJSON decodes the class from its stable string name.
func (c *Class) UnmarshalJSON(raw []byte) error {
	var name string
	if err := json.Unmarshal(raw, &name); err != nil {
		return err
	}

	for class, known := range classNames {
		if known == name {
			*c = class
			return nil
		}
	}
	return fmt.Errorf("unknown title class %q", name)
}
