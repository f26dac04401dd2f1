// Package config loads caisse's settings from Viper and the environment.
package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// KeyLogFile is the Viper key for the log file used while the TUI runs.
const KeyLogFile = "logging.file"

// DefaultLogFile is where logs go while the TUI owns the terminal.
const DefaultLogFile = "~/.config/caisse/caisse.log"

// ExpandPath expands ~ and $VAR references in a file path.
func ExpandPath(path string) string {
	if path == "" {
		return path
	}

	if path == "~" || strings.HasPrefix(path, "~/") {
		if home, err := os.UserHomeDir(); err == nil {
			path = filepath.Join(home, strings.TrimPrefix(path[1:], "/"))
		}
	}

	return os.ExpandEnv(path)
}

// LogFilePath returns the expanded log file path.
func LogFilePath() string {
	path := viper.GetString(KeyLogFile)
	if path == "" {
		path = DefaultLogFile
	}
	return ExpandPath(path)
}
