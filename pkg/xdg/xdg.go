// pkg/xdg/xdg.go

package xdg

import (
	"os"
	"path/filepath"
)

func GetEnvOrDefault(envVar, fallback string) string {
	if val := os.Getenv(envVar); val != "" {
		return val
	}
	return fallback
}

func home() string {
	if h, err := os.UserHomeDir(); err == nil {
		return h
	}
	return os.Getenv("HOME")
}

// ConfigDir is $XDG_CONFIG_HOME/app, defaulting to ~/.config/app.
func ConfigDir(app string) string {
	base := GetEnvOrDefault("XDG_CONFIG_HOME", filepath.Join(home(), ".config"))
	return filepath.Join(base, app)
}

// StateDir is $XDG_STATE_HOME/app, defaulting to ~/.local/state/app.
func StateDir(app string) string {
	base := GetEnvOrDefault("XDG_STATE_HOME", filepath.Join(home(), ".local", "state"))
	return filepath.Join(base, app)
}

func XDGConfigPath(app, file string) string {
	return filepath.Join(ConfigDir(app), file)
}

func XDGStatePath(app, file string) string {
	return filepath.Join(StateDir(app), file)
}

// EnsureDir creates the parent directory of path, private to the owner.
func EnsureDir(path string) error {
	return os.MkdirAll(filepath.Dir(path), DirPermPrivate)
}
