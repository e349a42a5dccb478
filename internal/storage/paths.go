// Package storage resolves the on-disk locations used by the module's
// Badger-backed components (internal/book, internal/ttstore).
package storage

import (
	"os"
	"path/filepath"
	"runtime"
)

const appName = "chesscore"

// DataDir returns the platform-specific data directory for the module.
//   - macOS: ~/Library/Application Support/chesscore/
//   - Linux: ~/.local/share/chesscore/ (respects XDG_DATA_HOME)
//   - Windows: %APPDATA%/chesscore/
func DataDir() (string, error) {
	var baseDir string

	switch runtime.GOOS {
	case "darwin":
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		baseDir = filepath.Join(homeDir, "Library", "Application Support")

	case "windows":
		baseDir = os.Getenv("APPDATA")
		if baseDir == "" {
			homeDir, err := os.UserHomeDir()
			if err != nil {
				return "", err
			}
			baseDir = filepath.Join(homeDir, "AppData", "Roaming")
		}

	default:
		baseDir = os.Getenv("XDG_DATA_HOME")
		if baseDir == "" {
			homeDir, err := os.UserHomeDir()
			if err != nil {
				return "", err
			}
			baseDir = filepath.Join(homeDir, ".local", "share")
		}
	}

	dataDir := filepath.Join(baseDir, appName)
	if err := os.MkdirAll(dataDir, 0755); err != nil {
		return "", err
	}
	return dataDir, nil
}

// SubDir returns (creating if necessary) a named subdirectory of DataDir,
// for a component that wants its own Badger database directory rather
// than sharing one.
func SubDir(name string) (string, error) {
	dataDir, err := DataDir()
	if err != nil {
		return "", err
	}
	dir := filepath.Join(dataDir, name)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", err
	}
	return dir, nil
}
