// Package logfinder locates the Quake 3 server log file.
package logfinder

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// EnvLogFile is the environment variable name for specifying the log file.
const EnvLogFile = "Q3LOG_FILE"

// ErrLogFileNotFound is returned when no games.log can be found or accessed.
var ErrLogFileNotFound = errors.New("log file not found")

// DefaultLogFiles returns candidate games.log locations in priority order.
// Dedicated servers commonly log under the engine home directory; the
// mod directory (baseq3) is the stock location.
func DefaultLogFiles() []string {
	home, err := os.UserHomeDir()
	if err != nil {
		return nil
	}

	return []string{
		filepath.Join(home, ".q3a", "baseq3", "games.log"),
		filepath.Join(home, ".quake3", "baseq3", "games.log"),
		filepath.Join(home, ".local", "share", "quake3", "baseq3", "games.log"),
	}
}

// FindLogFile returns the games.log path to use.
//
// Priority:
//  1. explicit (if non-empty)
//  2. Q3LOG_FILE environment variable
//  3. Auto-detect from DefaultLogFiles()
//
// Returns ErrLogFileNotFound if no readable file is found.
// The returned path has symlinks resolved for consistency.
func FindLogFile(explicit string) (string, error) {
	if explicit != "" {
		if resolved := resolveAndValidateLogFile(explicit); resolved != "" {
			return resolved, nil
		}
		return "", fmt.Errorf("%w: %s", ErrLogFileNotFound, explicit)
	}

	if envFile := os.Getenv(EnvLogFile); envFile != "" {
		if resolved := resolveAndValidateLogFile(envFile); resolved != "" {
			return resolved, nil
		}
		return "", fmt.Errorf("%w: %s environment variable points to an unreadable file", ErrLogFileNotFound, EnvLogFile)
	}

	for _, path := range DefaultLogFiles() {
		if resolved := resolveAndValidateLogFile(path); resolved != "" {
			return resolved, nil
		}
	}

	return "", ErrLogFileNotFound
}

// resolveAndValidateLogFile resolves symlinks and checks the path is a
// regular file. Returns the resolved path if valid, empty string otherwise.
func resolveAndValidateLogFile(path string) string {
	info, err := os.Stat(path)
	if err != nil || info.IsDir() {
		return ""
	}

	resolved, err := filepath.EvalSymlinks(path)
	if err != nil {
		// Fallback to original path if symlink resolution fails
		resolved = path
	}

	return resolved
}
