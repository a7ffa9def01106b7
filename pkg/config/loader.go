package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/gh-dispatch/gh-dispatch/pkg/logger"
	"github.com/goccy/go-yaml"
)

var loaderLog = logger.New("config:loader")

// Load reads and parses the configuration file at path. A missing file or
// malformed YAML is an error; missing fields are left at their zero value.
func Load(path string) (*RepositoryConfig, error) {
	loaderLog.Printf("Loading configuration: path=%s", path)

	content, err := os.ReadFile(filepath.Clean(path)) // #nosec G304 -- path is chosen by the user
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	cfg, err := Parse(content)
	if err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}

	loaderLog.Printf("Loaded %d repositories from %s", len(cfg.Repos), path)
	return cfg, nil
}

// Parse parses configuration YAML.
func Parse(content []byte) (*RepositoryConfig, error) {
	var cfg RepositoryConfig
	if err := yaml.Unmarshal(content, &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
