package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Settings are the environment-provided defaults of gh-dispatch.
type Settings struct {
	// ConfigPath is the configuration file used when --config is not given.
	ConfigPath string `env:"GH_DISPATCH_CONFIG" envDefault:"./config.yml"`
	// Verbose prints gh commands before they run.
	Verbose bool `env:"GH_DISPATCH_VERBOSE"`
}

// LoadSettings reads Settings from the environment.
func LoadSettings() (*Settings, error) {
	var s Settings
	if err := env.Parse(&s); err != nil {
		return nil, fmt.Errorf("invalid environment settings: %w", err)
	}
	return &s, nil
}

// ResolveConfigPath returns flagValue when set and the environment default otherwise.
func (s *Settings) ResolveConfigPath(flagValue string) string {
	if flagValue != "" {
		return flagValue
	}
	return s.ConfigPath
}
