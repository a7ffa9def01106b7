//go:build !integration

package config

import (
	"testing"

	"github.com/gh-dispatch/gh-dispatch/pkg/constants"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadSettings(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		t.Setenv(constants.ConfigPathEnvVar, "")
		t.Setenv("GH_DISPATCH_VERBOSE", "")

		s, err := LoadSettings()
		require.NoError(t, err, "Default settings should load")
		assert.Equal(t, constants.DefaultConfigPath, s.ConfigPath, "Config path should default to ./config.yml")
		assert.False(t, s.Verbose, "Verbose should default to false")
	})

	t.Run("environment overrides", func(t *testing.T) {
		t.Setenv(constants.ConfigPathEnvVar, "/tmp/dispatch.yml")
		t.Setenv("GH_DISPATCH_VERBOSE", "true")

		s, err := LoadSettings()
		require.NoError(t, err, "Settings should load from environment")
		assert.Equal(t, "/tmp/dispatch.yml", s.ConfigPath, "Config path should come from the environment")
		assert.True(t, s.Verbose, "Verbose should come from the environment")
	})

	t.Run("invalid boolean", func(t *testing.T) {
		t.Setenv("GH_DISPATCH_VERBOSE", "sometimes")

		_, err := LoadSettings()
		require.Error(t, err, "Invalid boolean should fail")
		assert.Contains(t, err.Error(), "invalid environment settings", "Error should be wrapped")
	})
}

func TestResolveConfigPath(t *testing.T) {
	s := &Settings{ConfigPath: "./config.yml"}

	assert.Equal(t, "custom.yml", s.ResolveConfigPath("custom.yml"), "Flag should win over the environment")
	assert.Equal(t, "./config.yml", s.ResolveConfigPath(""), "Environment default should be used without a flag")
}
