// Package prefs exposes user preference defaults consulted by the CLI layer.
// The conversion pipeline itself works without them.
package prefs

import (
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

// DefaultOutputPath returns the configured default output directory, falling
// back to ~/Downloads.
func DefaultOutputPath() string {
	if p := viper.GetString("default_output_path"); p != "" {
		return p
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "."
	}
	return filepath.Join(home, "Downloads")
}

// AutoOpenFile reports whether converted files should open automatically.
func AutoOpenFile() bool {
	return viper.GetBool("auto_open_file")
}
