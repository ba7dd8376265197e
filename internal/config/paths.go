package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
)

// EnvConfig overrides the settings file location.
const EnvConfig = "CELLMAP_CONFIG"

// Dir returns the cellmap config directory under the user config base.
// On Linux, this typically resolves to $XDG_CONFIG_HOME/cellmap; on macOS
// to ~/Library/Application Support/cellmap; and on Windows to %AppData%/cellmap.
// Falls back to HOME when UserConfigDir is unavailable.
func Dir() (string, error) {
	base, err := os.UserConfigDir()
	if err != nil || strings.TrimSpace(base) == "" {
		if home, herr := os.UserHomeDir(); herr == nil {
			base = home
		} else {
			return "", errors.New("cannot determine config directory")
		}
	}
	return filepath.Join(base, "cellmap"), nil
}

// File returns the settings file path, honouring CELLMAP_CONFIG.
func File() (string, error) {
	if p := strings.TrimSpace(os.Getenv(EnvConfig)); p != "" {
		return p, nil
	}
	dir, err := Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "settings.json"), nil
}
