// Package config provides centralized management for application settings, defaults, and the Viper-based configuration engine.
package config

import (
	"encoding/json"
	"fmt"
	"reflect"
	"strconv"
	"strings"
	"text/template"

	"github.com/dstweak-cli/dstweak/color"
	"github.com/dstweak-cli/dstweak/constant"
	"github.com/dstweak-cli/dstweak/key"
	"github.com/dstweak-cli/dstweak/style"
	"github.com/samber/lo"
	"github.com/spf13/viper"
)

// Field represents a configuration field definition.
type Field struct {
	Key         string
	Value       any
	Description string
}

// Pretty returns a colored string representation of the field for display.
func (f *Field) Pretty() string {
	var b strings.Builder
	lo.Must0(prettyTemplate.Execute(&b, f))
	return b.String()
}

// Env returns the environment variable name for this field.
func (f *Field) Env() string {
	env := strings.ToUpper(EnvKeyReplacer.Replace(f.Key))
	prefix := strings.ToUpper(constant.DSTweak + "_")
	if strings.HasPrefix(env, prefix) {
		return env
	}
	return prefix + env
}

// MarshalJSON customizes JSON output to include current and default values.
func (f *Field) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Key         string `json:"key"`
		Value       any    `json:"value"`
		Default     any    `json:"default"`
		Description string `json:"description"`
		Type        string `json:"type"`
	}{
		Key:         f.Key,
		Value:       viper.Get(f.Key),
		Default:     f.Value,
		Description: f.Description,
		Type:        f.typeName(),
	})
}

// typeName returns the string representation of the field's underlying value type.
func (f *Field) typeName() string {
	switch f.Value.(type) {
	case string:
		return "string"
	case int:
		return "int"
	case bool:
		return "bool"
	case []string:
		return "[]string"
	case []int:
		return "[]int"
	default:
		return "unknown"
	}
}

// Default holds the map of all configuration fields.
var Default = make(map[string]Field)

// EnvExposed holds keys that are bound to environment variables.
var EnvExposed []string

func init() {
	// register validates and adds a new configuration field to the global registry.
	register := func(k string, v any, desc string) {
		if _, exists := Default[k]; exists {
			panic("Duplicate config key: " + k)
		}
		f := Field{Key: k, Value: v, Description: desc}
		Default[k] = f
		EnvExposed = append(EnvExposed, k)
	}

	register(key.StorageSDRoot, "", "Path to the mounted SD card root.\nGame settings live under <root>/settings/gamesettings.\nWill prompt if not set")
	register(key.StorageSecondaryRoot, "", "Path to the mounted flashcard (secondary storage) root")
	register(key.StorageActive, "sd", "Storage root to read and write game settings on.\nAvailable options are: sd, secondary")
	register(key.ConsoleModel, "dsi", "Console model the storage medium boots on.\nAvailable options are: ds, dsi, 3ds")
	register(key.ConsoleDSiMode, true, "The launcher on the console runs in DSi mode (TWL hardware reachable)")
	register(key.ConsoleSCFGUnlocked, true, "Extended system configuration (SCFG) registers are unlocked on the console.\nRequired for the CPU and VRAM boost fields")
	register(key.BootstrapEnabled, true, "Retail cartridge dumps launch through nds-bootstrap")
	register(key.BootDSiMode, false, "Run games in DSi mode when no per-game override is set")
	register(key.BootBoostCPU, false, "Run the ARM9 at the 133 MHz TWL clock when no per-game override is set")
	register(key.BootBoostVRAM, false, "Enable the VRAM boost when no per-game override is set")
	register(key.BootLanguage, -1, "Game language when no per-game override is set.\n-1 resolves to the host system language.\n0: japanese, 1: english, 2: french, 3: german, 4: italian, 5: spanish")
	register(key.BootBootstrapNightly, false, "Launch through the nightly nds-bootstrap build when no per-game override is set")
	register(key.IconsVariant, "plain", "Icons variant.\nAvailable options are: emoji, kaomoji, plain, squares, nerd (nerd-font required)")
	register(key.TUIItemSpacing, 1, "Spacing between fields in the TUI")
	register(key.TUIShowKeyHelp, true, "Show the key bindings help under the field list")
	register(key.TUIShowGameInfo, true, "Show the game code and SDK line in the TUI header")
	register(key.HistorySaveOnEdit, true, "Save history when a game is opened for editing")
	register(key.SearchShowQuerySuggestions, true, "Suggest remembered game lookups when completing a name argument")
	register(key.LogsWrite, false, "Write logs")
	register(key.LogsLevel, "info", "Available options are: (from less to most verbose)\npanic, fatal, error, warn, info, debug, trace")
	register(key.LogsJson, false, "Use json format for logs")
	register(key.CliColored, true, "Enable colored CLI output")
	register(key.CliVersionCheck, true, "Enable automatic version check")
}

var prettyTemplate = lo.Must(template.New("pretty").Funcs(template.FuncMap{
	"faint":    style.Faint,
	"bold":     style.Bold,
	"purple":   style.Fg(color.Purple),
	"blue":     style.Fg(color.Blue),
	"cyan":     style.Fg(color.Cyan),
	"value":    func(k string) any { return viper.Get(k) },
	"typename": func(v any) string { return reflect.TypeOf(v).String() },
	"hl": func(v any) string {
		switch value := v.(type) {
		case bool:
			b := strconv.FormatBool(value)
			if value {
				return style.Fg(color.Green)(b)
			}
			return style.Fg(color.Red)(b)
		case string:
			return style.Fg(color.Yellow)(value)
		default:
			return fmt.Sprint(value)
		}
	},
}).Parse(`{{ faint .Description }}
{{ blue "Key:" }}     {{ purple .Key }}
{{ blue "Env:" }}     {{ .Env }}
{{ blue "Value:" }}   {{ hl (value .Key) }}
{{ blue "Default:" }} {{ hl (.Value) }}
{{ blue "Type:" }}    {{ typename .Value }}`))
