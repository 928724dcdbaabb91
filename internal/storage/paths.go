// Package storage persists preferences, statistics and the last position
// between launches.
package storage

import (
	"log"
	"os"
	"path/filepath"
	"runtime"
)

const appName = "chessboard"

// GetDataDir returns the per-user data directory, creating it if needed:
// ~/Library/Application Support/chessboard on macOS, %AppData%\chessboard
// on Windows and $XDG_DATA_HOME/chessboard (default ~/.local/share) elsewhere.
func GetDataDir() (string, error) {
	base, err := dataHome()
	if err != nil {
		return "", err
	}
	return ensureDir(filepath.Join(base, appName))
}

func dataHome() (string, error) {
	switch runtime.GOOS {
	case "darwin", "windows":
		return os.UserConfigDir()
	}
	if xdg := os.Getenv("XDG_DATA_HOME"); xdg != "" {
		return xdg, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".local", "share"), nil
}

// GetDatabaseDir returns the directory for storing the BadgerDB database.
func GetDatabaseDir() (string, error) {
	dataDir, err := GetDataDir()
	if err != nil {
		return "", err
	}
	return DatabaseDirIn(dataDir)
}

// DatabaseDirIn returns the database directory under a custom data
// directory, creating it if needed.
func DatabaseDirIn(dataDir string) (string, error) {
	dbDir, err := ensureDir(filepath.Join(dataDir, "db"))
	if err != nil {
		return "", err
	}
	log.Printf("Database directory: %s", dbDir)
	return dbDir, nil
}

func ensureDir(dir string) (string, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", err
	}
	return dir, nil
}
