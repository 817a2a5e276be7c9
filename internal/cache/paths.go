// Package cache provides a Badger-backed memoization store for previously
// solved tsumeshogi puzzles, keyed by input SFEN, so a CLI batch run never
// re-solves a position it has already proved.
package cache

import (
	"os"
	"path/filepath"
	"runtime"
)

const appName = "tsumesolve"

// GetDataDir returns the platform-specific data directory for the
// application:
//   - macOS: ~/Library/Application Support/tsumesolve/
//   - Linux: ~/.local/share/tsumesolve/ (or $XDG_DATA_HOME)
//   - Windows: %APPDATA%/tsumesolve/
func GetDataDir() (string, error) {
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

// GetDatabaseDir returns (creating if necessary) the directory the solved-
// puzzle Badger database lives in.
func GetDatabaseDir() (string, error) {
	dataDir, err := GetDataDir()
	if err != nil {
		return "", err
	}
	dbDir := filepath.Join(dataDir, "db")
	if err := os.MkdirAll(dbDir, 0755); err != nil {
		return "", err
	}
	return dbDir, nil
}
