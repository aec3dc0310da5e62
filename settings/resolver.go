package settings

import (
	"os"
	"strings"

	"github.com/dstweak-cli/dstweak/key"
	"github.com/samber/lo"
	"github.com/spf13/viper"
)

// Resolved is the effective boot configuration of a game after overrides and
// global defaults are combined.
type Resolved struct {
	DirectBoot       bool `json:"direct_boot"`
	RunMode          int  `json:"run_mode"`
	Language         int  `json:"language"`
	CpuBoost         bool `json:"cpu_boost"`
	VramBoost        bool `json:"vram_boost"`
	BootstrapNightly bool `json:"bootstrap_nightly"`
}

// EffectiveValue computes the value a field takes at boot: the stored
// override where the field applies to the context, otherwise the global
// default. The boost fields are forced while the DSi mode lock holds,
// overrides notwithstanding.
func EffectiveValue(f Field, o Overrides, ctx Context) int {
	if Locked(f, o, ctx) {
		return 1
	}

	if v, ok := o.Get(f).Get(); ok && f.Visible(ctx) {
		if f == Language && v == -1 {
			return hostLanguage()
		}
		if s, ok := f.Sentinel(); !ok || v != s {
			return v
		}
	}

	return defaultValue(f, ctx)
}

// Resolve combines stored overrides and global defaults into the full
// effective boot configuration.
func Resolve(o Overrides, ctx Context) Resolved {
	return Resolved{
		DirectBoot:       EffectiveValue(DirectBoot, o, ctx) == 1,
		RunMode:          EffectiveValue(RunMode, o, ctx),
		Language:         EffectiveValue(Language, o, ctx),
		CpuBoost:         EffectiveValue(CpuBoost, o, ctx) == 1,
		VramBoost:        EffectiveValue(VramBoost, o, ctx) == 1,
		BootstrapNightly: EffectiveValue(BootstrapVariant, o, ctx) == 1,
	}
}

// defaultValue is what a field inherits when no override applies.
func defaultValue(f Field, ctx Context) int {
	switch f {
	case DirectBoot:
		return lo.Ternary(ctx.SecondaryDevice, 1, 0)
	case RunMode:
		return lo.Ternary(viper.GetBool(key.BootDSiMode), 1, 0)
	case CpuBoost:
		return lo.Ternary(viper.GetBool(key.BootBoostCPU), 1, 0)
	case VramBoost:
		return lo.Ternary(viper.GetBool(key.BootBoostVRAM), 1, 0)
	case Language:
		lang := viper.GetInt(key.BootLanguage)
		if lang < 0 || lang > 5 {
			return hostLanguage()
		}
		return lang
	case BootstrapVariant:
		return lo.Ternary(viper.GetBool(key.BootBootstrapNightly), 1, 0)
	default:
		return 0
	}
}

// languageCodes maps locale prefixes onto the language codes games understand.
var languageCodes = map[string]int{
	"ja": 0,
	"en": 1,
	"fr": 2,
	"de": 3,
	"it": 4,
	"es": 5,
}

// hostLanguage guesses the language code of the host system, falling back to
// English when the locale gives no hint.
func hostLanguage() int {
	for _, env := range []string{"LC_ALL", "LC_MESSAGES", "LANG"} {
		value := os.Getenv(env)
		if len(value) < 2 {
			continue
		}
		if code, ok := languageCodes[strings.ToLower(value[:2])]; ok {
			return code
		}
	}
	return 1
}
