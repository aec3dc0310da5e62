package settings

import (
	"bytes"
	"fmt"
	"os"
	"strconv"

	"github.com/dstweak-cli/dstweak/filesystem"
	"github.com/dstweak-cli/dstweak/log"
	"github.com/dstweak-cli/dstweak/where"
	"gopkg.in/ini.v1"
)

// section is the settings file section launchers read at boot.
const section = "GAMESETTINGS"

// Load reads the stored overrides for a title key. Missing files, missing
// keys, malformed and out of domain values all degrade to the unset state,
// never an error.
func Load(titleKey string) Overrides {
	sec := loadFile(titleKey).Section(section)

	var o Overrides
	for _, f := range All() {
		if f == SuppressAPNotice {
			continue
		}
		if !sec.HasKey(f.INIKey()) {
			continue
		}

		value, err := sec.Key(f.INIKey()).Int()
		if err != nil {
			log.Warnf("settings of %s: %s: %v", titleKey, f.INIKey(), err)
			continue
		}
		if !f.InDomain(value) {
			log.Warnf("settings of %s: %s holds %d, outside the known values", titleKey, f.INIKey(), value)
			continue
		}
		if s, ok := f.Sentinel(); ok && value == s {
			// A stored inherit sentinel is the same as no override.
			continue
		}

		o.Set(f, value)
	}
	return o
}

// Save persists the policy subset of the overrides for ctx, preserving every
// key outside the subset. An empty policy leaves the medium untouched, even
// when no settings file exists yet. The in-memory overrides are never
// modified, so a failed write loses nothing.
func Save(titleKey string, o Overrides, ctx Context) error {
	policy := SavePolicy(ctx)
	if len(policy) == 0 {
		return nil
	}

	path, err := where.SettingsFile(titleKey)
	if err != nil {
		return err
	}

	file := loadFile(titleKey)
	sec := file.Section(section)
	for _, f := range policy {
		sec.Key(f.INIKey()).SetValue(strconv.Itoa(storeValue(f, o, ctx)))
	}

	return writeFile(file, path)
}

// ShouldShowAPNotice reports whether the anti-piracy notice of a game is
// still shown before launch.
func ShouldShowAPNotice(titleKey string) bool {
	sec := loadFile(titleKey).Section(section)
	if !sec.HasKey(SuppressAPNotice.INIKey()) {
		return true
	}

	value, err := sec.Key(SuppressAPNotice.INIKey()).Int()
	if err != nil {
		return true
	}
	return value == 0
}

// MuteAPNotice stops the anti-piracy notice of a game from showing again.
func MuteAPNotice(titleKey string) error {
	return setAPNotice(titleKey, 1)
}

// RestoreAPNotice brings the anti-piracy notice of a game back.
func RestoreAPNotice(titleKey string) error {
	return setAPNotice(titleKey, 0)
}

func setAPNotice(titleKey string, value int) error {
	path, err := where.SettingsFile(titleKey)
	if err != nil {
		return err
	}

	file := loadFile(titleKey)
	file.Section(section).Key(SuppressAPNotice.INIKey()).SetValue(strconv.Itoa(value))
	return writeFile(file, path)
}

// storeValue is the integer written for a field: the override when one is
// set, the inherit sentinel otherwise. Fields without a sentinel materialize
// their effective default, the way launchers do.
func storeValue(f Field, o Overrides, ctx Context) int {
	if v, ok := o.Get(f).Get(); ok {
		return v
	}
	if s, ok := f.Sentinel(); ok {
		return s
	}
	return EffectiveValue(f, o, ctx)
}

// loadFile parses the settings file of a title key, degrading to an empty
// document when the file is missing or unreadable.
func loadFile(titleKey string) *ini.File {
	path, err := where.SettingsFile(titleKey)
	if err != nil {
		log.Warnf("settings file for %s: %v", titleKey, err)
		return ini.Empty()
	}

	contents, err := filesystem.API().ReadFile(path)
	if err != nil {
		// A game without a settings file is the normal unset state.
		return ini.Empty()
	}

	file, err := ini.Load(contents)
	if err != nil {
		log.Warnf("parse settings of %s: %v", titleKey, err)
		return ini.Empty()
	}
	return file
}

func writeFile(file *ini.File, path string) error {
	var buf bytes.Buffer
	if _, err := file.WriteTo(&buf); err != nil {
		return fmt.Errorf("encode settings: %w", err)
	}

	if err := filesystem.API().WriteFile(path, buf.Bytes(), os.ModePerm); err != nil {
		return fmt.Errorf("write settings: %w", err)
	}
	return nil
}
