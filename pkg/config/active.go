package config

import (
	"sync"

	"github.com/CodeMonkeyCybersecurity/pwmeter/pkg/password"
)

var (
	activeMu sync.RWMutex
	active   *Config
)

// Defaults is the configuration used before anything has been loaded.
func Defaults() Config {
	return Config{
		LogLevel:      "INFO",
		DefaultLength: password.DefaultLength,
		Output:        OutputText,
		Color:         true,
	}
}

// SetActive publishes cfg as the process-wide configuration.
func SetActive(cfg *Config) {
	activeMu.Lock()
	active = cfg
	activeMu.Unlock()
}

// Active returns a copy of the process-wide configuration, or Defaults when
// none has been loaded.
func Active() Config {
	activeMu.RLock()
	defer activeMu.RUnlock()
	if active == nil {
		return Defaults()
	}
	return *active
}
