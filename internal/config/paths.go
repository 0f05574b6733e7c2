package config

import (
	"fmt"
	"os"
	"path/filepath"
)

// ConfigEnv names the environment variable that points at a settings file.
const ConfigEnv = "PGREP_CONFIG"

// SettingsPath returns the settings file to load.
// Priority order:
//  1. explicit path (from --config), if non-empty
//  2. PGREP_CONFIG environment variable, if set
//  3. $XDG_CONFIG_HOME/pgrep/config.yaml
//  4. ~/.config/pgrep/config.yaml
//
// The returned file need not exist.
func SettingsPath(explicit string, lookupEnv LookupEnv) (string, error) {
	if explicit != "" {
		return explicit, nil
	}

	if lookupEnv == nil {
		lookupEnv = os.LookupEnv
	}

	if path, ok := lookupEnv(ConfigEnv); ok && path != "" {
		return path, nil
	}

	if xdg, ok := lookupEnv("XDG_CONFIG_HOME"); ok && xdg != "" {
		return filepath.Join(xdg, "pgrep", "config.yaml"), nil
	}

	home, ok := lookupEnv("HOME")
	if !ok || home == "" {
		var err error
		home, err = os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("locate home directory: %w", err)
		}
	}
	return filepath.Join(home, ".config", "pgrep", "config.yaml"), nil
}
