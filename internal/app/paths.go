package app

import (
	"fmt"
	"os"
	"path/filepath"
)

const (
	appDirName     = "dietcheck"
	logFileName    = "user_data.csv"
	dbFileName     = "dietcheck.db"
	configFileName = "config.yaml"
)

func DefaultDir() (string, error) {
	base, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("resolve user config dir: %w", err)
	}
	return filepath.Join(base, appDirName), nil
}

func DefaultLogPath() (string, error) {
	return defaultFile(logFileName)
}

func DefaultDBPath() (string, error) {
	return defaultFile(dbFileName)
}

func DefaultConfigPath() (string, error) {
	return defaultFile(configFileName)
}

func defaultFile(name string) (string, error) {
	dir, err := DefaultDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, name), nil
}

// EnsureParentDir creates the directory that will hold path.
func EnsureParentDir(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create directory %s: %w", dir, err)
	}
	return nil
}
