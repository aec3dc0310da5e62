// Package cache provides localized filesystem-based caching for game classification results.
package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/dstweak-cli/dstweak/filesystem"
	"github.com/dstweak-cli/dstweak/where"
)

const TTL = 7 * 24 * time.Hour

func dir() string {
	path := filepath.Join(where.Cache(), "classify")
	_ = filesystem.API().MkdirAll(path, os.ModePerm)
	return path
}

// GenerateKey derives a deterministic SHA-256 cache identifier from a game path
// and its on-disk fingerprint, so rewriting the file invalidates prior entries.
func GenerateKey(path string, size int64, modTime time.Time) string {
	fingerprint := fmt.Sprintf("%s|%d|%d", filepath.Clean(path), size, modTime.Unix())
	hash := sha256.Sum256([]byte(fingerprint))
	return hex.EncodeToString(hash[:])
}

// Read attempts to retrieve and deserialize a cached object if it exists and has not exceeded its TTL.
func Read(key string, target interface{}) bool {
	path := filepath.Join(dir(), key)

	info, err := filesystem.API().Stat(path)
	if err != nil || time.Since(info.ModTime()) > TTL {
		return false
	}

	contents, err := filesystem.API().ReadFile(path)
	if err != nil {
		return false
	}
	return json.Unmarshal(contents, target) == nil
}

// Write persists a serializable object to the cache using an atomic file swap to ensure data integrity.
func Write(key string, data interface{}) error {
	contents, err := json.Marshal(data)
	if err != nil {
		return err
	}

	path := filepath.Join(dir(), key)
	tmpPath := path + ".tmp"

	if err := filesystem.API().WriteFile(tmpPath, contents, os.ModePerm); err != nil {
		return err
	}
	return filesystem.API().Rename(tmpPath, path)
}

// CollectGarbage initializes an asynchronous background task to prune expired cache entries from the filesystem.
func CollectGarbage() {
	go func() {
		target := dir()
		entries, err := filesystem.API().ReadDir(target)
		if err != nil {
			return
		}

		for _, entry := range entries {
			if entry.IsDir() {
				continue
			}
			if time.Since(entry.ModTime()) > TTL {
				_ = filesystem.API().Remove(filepath.Join(target, entry.Name()))
			}
		}
	}()
}
