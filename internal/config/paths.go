package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

const (
	appName    = "switch-craft"
	configFile = "config.json"
)

func DefaultConfigPath() string {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, _ := os.UserHomeDir()
		configHome = filepath.Join(home, ".config")
	}
	return filepath.Join(configHome, appName, configFile)
}

func ExpandPath(path string) (string, error) {
	home, err := os.UserHomeDir()
	if err != nil && (path == "~" || strings.HasPrefix(path, "~/")) {
		return "", fmt.Errorf("cannot expand ~: %w", err)
	}
	return filepath.Abs(expandHome(path, home))
}

// ShortenPath replaces a leading home directory with "~" for display.
func ShortenPath(path, home string) string {
	if home == "" {
		return path
	}
	if path == home {
		return "~"
	}
	if rest, ok := strings.CutPrefix(path, home+string(filepath.Separator)); ok {
		return "~/" + rest
	}
	return path
}

func expandHome(path, home string) string {
	if path == "~" {
		return home
	}
	if rest, ok := strings.CutPrefix(path, "~/"); ok {
		return filepath.Join(home, rest)
	}
	return path
}
