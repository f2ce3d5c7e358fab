package config

import (
	"fmt"
	"os"
	"path/filepath"
)

// HomeEnv names the environment variable that overrides the home directory.
const HomeEnv = "UNIQYOU_HOME"

// GetHome returns the uniqyou home directory
// Priority order:
//  1. UNIQYOU_HOME environment variable (if set)
//  2. ~/.uniqyou
//  3. ./.uniqyou in the current working directory (fallback)
//
// The directory is created if it doesn't exist
func GetHome() (string, error) {
	if home := os.Getenv(HomeEnv); home != "" {
		return ensureDir(home)
	}

	if userHome, err := os.UserHomeDir(); err == nil && userHome != "" {
		return ensureDir(filepath.Join(userHome, ".uniqyou"))
	}

	cwd, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("get working directory: %w", err)
	}
	return ensureDir(filepath.Join(cwd, ".uniqyou"))
}

func ensureDir(dir string) (string, error) {
	// Screening answers live here: owner-only
	if err := os.MkdirAll(dir, 0700); err != nil {
		return "", fmt.Errorf("create uniqyou home directory: %w", err)
	}
	return dir, nil
}
