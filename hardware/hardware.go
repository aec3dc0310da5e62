// Package hardware derives the capabilities of the console a storage medium boots on.
//
// The console itself is never reachable from the PC, so everything here is a
// pure function of global configuration. The capabilities gate which game
// settings are shown and which end up persisted.
package hardware

import (
	"github.com/dstweak-cli/dstweak/constant"
	"github.com/dstweak-cli/dstweak/key"
	"github.com/dstweak-cli/dstweak/log"
	"github.com/spf13/viper"
)

// Capabilities describes what the configured console can do with a game at boot.
type Capabilities struct {
	// ExtendedConfig reports whether the SCFG registers are reachable,
	// making the CPU and VRAM boosts possible.
	ExtendedConfig bool `json:"extended_config"`

	// DsiCapable reports whether games can be started in DSi mode at all.
	DsiCapable bool `json:"dsi_capable"`

	// BootstrapActive reports whether retail dumps launch through nds-bootstrap.
	BootstrapActive bool `json:"bootstrap_active"`
}

// Probe computes the capabilities of the configured console.
func Probe() Capabilities {
	model := viper.GetString(key.ConsoleModel)

	var twl bool
	switch model {
	case constant.ModelDSi, constant.Model3DS:
		twl = true
	case constant.ModelDS:
	default:
		log.Warnf("unknown console model %q, assuming %s", model, constant.ModelDS)
	}

	return Capabilities{
		ExtendedConfig:  twl && viper.GetBool(key.ConsoleSCFGUnlocked),
		DsiCapable:      twl && viper.GetBool(key.ConsoleDSiMode),
		BootstrapActive: viper.GetBool(key.BootstrapEnabled),
	}
}
