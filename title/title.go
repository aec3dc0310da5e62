// Package title identifies the games a storage medium holds.
//
// A game is named by its title key (the name of its settings file) and
// classified by extension, launch indirection and ROM header contents.
package title

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/dstweak-cli/dstweak/filesystem"
	"github.com/dstweak-cli/dstweak/internal/cache"
	"github.com/dstweak-cli/dstweak/key"
	"github.com/dstweak-cli/dstweak/log"
	"github.com/dstweak-cli/dstweak/nds"
	"github.com/dstweak-cli/dstweak/util"
	"github.com/spf13/viper"
)

// Info describes a single game on the storage medium.
type Info struct {
	// Path is the file the user pointed at.
	Path string `json:"path"`

	// Target is the executable actually launched, after following argv and
	// launcharg indirection. Equal to Path for regular games.
	Target string `json:"target"`

	// Key names the settings file of the game.
	Key string `json:"key"`

	Name     string `json:"name"`
	GameCode string `json:"game_code"`
	SDK      int    `json:"sdk"`
	Class    Class  `json:"class"`
}

// Key derives the settings file base name for a game path. Launchers match
// settings files against directory entries case-sensitively except for the
// extension, so only the extension is lowercased.
func Key(path string) string {
	base := filepath.Base(path)
	ext := filepath.Ext(base)
	return strings.TrimSuffix(base, ext) + strings.ToLower(ext)
}

// Classify identifies the game at path. Results are cached on disk keyed by
// the file fingerprint; a rewritten file is classified anew.
func Classify(path string) Info {
	stat, err := filesystem.API().Stat(path)
	if err != nil {
		return classify(path)
	}

	cacheKey := cache.GenerateKey(path, stat.Size(), stat.ModTime())

	var cached Info
	if cache.Read(cacheKey, &cached) {
		return cached
	}

	info := classify(path)
	if err := cache.Write(cacheKey, info); err != nil {
		log.Warnf("cache classification of %s: %v", info.Key, err)
	}
	return info
}

// classify identifies a game without consulting the cache.
func classify(path string) Info {
	info := Info{
		Path:   path,
		Target: path,
		Key:    Key(path),
		Name:   util.FileStem(path),
	}

	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".argv", ".launcharg":
		info.Class = LaunchArgument

		target, err := resolveTarget(path, ext == ".launcharg")
		if err != nil {
			log.Warnf("resolve launch target of %s: %v", info.Key, err)
			return info
		}
		info.Target = target
		info.readTarget()

	case ".app":
		info.Class = Digital
		info.readTarget()

	case ".tad":
		// Exported titles wrap the executable in a container, the plain
		// header parser cannot look inside.
		info.Class = Digital

	default:
		header, err := nds.ReadHeader(path)
		if err != nil {
			log.Warnf("read header of %s: %v", info.Key, err)
			info.Class = Homebrew
			return info
		}

		info.apply(header)
		switch {
		case header.TWLOnly():
			info.Class = Digital
		case homebrewCode(header.GameCode):
			info.Class = Homebrew
		default:
			info.Class = Retail
		}
	}

	return info
}

// readTarget fills display fields from the header of the launch target,
// leaving the class untouched. Best effort.
func (i *Info) readTarget() {
	header, err := nds.ReadHeader(i.Target)
	if err != nil {
		log.Warnf("read header of %s: %v", i.Key, err)
		return
	}
	i.apply(header)
}

// apply fills display fields from a decoded header.
func (i *Info) apply(header nds.Header) {
	if header.Title != "" {
		i.Name = header.Title
	}
	i.GameCode = header.GameCode
	i.SDK = header.SDKGeneration()
}

// homebrewCode reports whether a game code belongs to an unlicensed game.
func homebrewCode(code string) bool {
	return code == "" || code == "####" || strings.HasPrefix(code, "H")
}

// resolveTarget follows argv and launcharg indirection to the launched
// executable.
func resolveTarget(path string, probeApp bool) (string, error) {
	contents, err := filesystem.API().ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read launch file: %w", err)
	}

	target, ok := firstToken(string(contents))
	if !ok {
		return "", errors.New("launch file holds no target")
	}
	target = resolveDevicePath(target, filepath.Dir(path))

	if probeApp {
		return probeAppFile(strings.TrimRight(target, "/"))
	}
	return target, nil
}

// firstToken extracts the first whitespace-separated token, honoring # line
// comments.
func firstToken(contents string) (string, bool) {
	for _, line := range strings.Split(contents, "\n") {
		if i := strings.IndexByte(line, '#'); i >= 0 {
			line = line[:i]
		}
		if fields := strings.Fields(line); len(fields) > 0 {
			return fields[0], true
		}
	}
	return "", false
}

// resolveDevicePath maps console device prefixes onto the configured storage
// roots and anchors relative targets next to the launch file. Unknown devices
// pass through untouched.
func resolveDevicePath(target, launchDir string) string {
	devices := []struct {
		prefix  string
		rootKey string
	}{
		{"sd:/", key.StorageSDRoot},
		{"fat:/", key.StorageSecondaryRoot},
	}

	lower := strings.ToLower(target)
	for _, device := range devices {
		if !strings.HasPrefix(lower, device.prefix) {
			continue
		}
		root := viper.GetString(device.rootKey)
		if root == "" {
			return target
		}
		return filepath.Join(root, target[len(device.prefix):])
	}

	if filepath.IsAbs(target) {
		return target
	}
	return filepath.Join(launchDir, target)
}

// probeAppFile finds the first installed content version under a title
// directory, the way launchers locate DSiWare executables.
func probeAppFile(dir string) (string, error) {
	for ver := 0; ver <= 0xFF; ver++ {
		path := fmt.Sprintf("%s/content/%08x.app", dir, ver)
		if exists, _ := filesystem.API().Exists(path); exists {
			return path, nil
		}
	}
	return "", fmt.Errorf("no title content under %s", dir)
}
