// Package where implements a cross-platform resolver for application-specific filesystem paths.
package where

import (
	"errors"
	"os"
	"path/filepath"

	"github.com/dstweak-cli/dstweak/constant"
	"github.com/dstweak-cli/dstweak/filesystem"
	"github.com/dstweak-cli/dstweak/key"
	"github.com/samber/lo"
	"github.com/spf13/viper"
)

// EnvConfigPath is the environment variable identifier used to override the default configuration directory.
const EnvConfigPath = "DSTWEAK_CONFIG_PATH"

// ErrNoStorageRoot is returned when a storage path is requested while no root
// is configured for the active device.
var ErrNoStorageRoot = errors.New("no storage root configured, set storage.sd_root or storage.secondary_root")

// ensureDir guarantees the existence of a directory at the specified path, creating it if necessary.
func ensureDir(path string) string {
	lo.Must0(filesystem.API().MkdirAll(path, os.ModePerm))
	return path
}

// Config resolves the absolute path to the primary application configuration directory.
// It prioritizes the XDG_CONFIG_HOME specification on Linux and equivalent user profile paths on Darwin and Windows.
// Direct override: The path resolution can be explicitly specified via the DSTWEAK_CONFIG_PATH environment variable.
func Config() string {
	if custom, ok := os.LookupEnv(EnvConfigPath); ok {
		return ensureDir(custom)
	}

	base := lo.Must(os.UserConfigDir())
	return ensureDir(filepath.Join(base, constant.DSTweak))
}

// Cache resolves the absolute path to the application's persistent cache directory.
// Compliance: Adheres to the XDG_CACHE_HOME specification or platform-specific equivalent.
func Cache() string {
	base, err := os.UserCacheDir()
	if err != nil {
		// Fallback: Revert to a localized cache directory if the system-provided path is inaccessible.
		base = filepath.Join(".", "cache")
	}
	return ensureDir(filepath.Join(base, constant.DSTweak))
}

// Logs resolves the absolute path to the directory used for application diagnostic and audit logs.
func Logs() string {
	return ensureDir(filepath.Join(Config(), "logs"))
}

// History resolves the absolute path to the recently edited games registry.
func History() string {
	return filepath.Join(Config(), "history.json")
}

// Queries resolves the absolute path to the remembered game lookups registry.
func Queries() string {
	return filepath.Join(Cache(), "queries.json")
}

// Temp resolves a unique, volatile filesystem path for transient application artifacts.
func Temp() string {
	return ensureDir(filepath.Join(os.TempDir(), constant.DSTweak))
}

// StorageRoot resolves the root of the active storage medium from configuration.
// The boolean reports whether a root is configured for the active device.
func StorageRoot() (string, bool) {
	var root string
	switch viper.GetString(key.StorageActive) {
	case constant.StorageSecondary:
		root = viper.GetString(key.StorageSecondaryRoot)
	default:
		root = viper.GetString(key.StorageSDRoot)
	}

	if root == "" {
		return "", false
	}
	return root, true
}

// GameSettings resolves the directory holding per-game settings files on the
// active storage root, creating it when missing. Launchers on the console read
// the same directory at boot.
func GameSettings() (string, error) {
	root, ok := StorageRoot()
	if !ok {
		return "", ErrNoStorageRoot
	}

	dir := filepath.Join(root, "settings", "gamesettings")
	if err := filesystem.API().MkdirAll(dir, os.ModePerm); err != nil {
		return "", err
	}
	return dir, nil
}

// SettingsFile resolves the settings file path for a title key on the active
// storage root.
func SettingsFile(titleKey string) (string, error) {
	dir, err := GameSettings()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, titleKey+".ini"), nil
}
