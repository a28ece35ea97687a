// Package config loads optional operator defaults for the wizard.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/imamik/vmctl/internal/cachestore"
)

// Config holds operator defaults. Every field is optional; zero values fall
// back to built-in defaults.
type Config struct {
	// Namespace is the default namespace offered by the wizard.
	Namespace string `yaml:"namespace"`

	// Region is the default region offered by the wizard.
	Region string `yaml:"region"`

	// CatalogEndpoint overrides the billing metadata endpoint.
	CatalogEndpoint string `yaml:"catalogEndpoint"`

	// CacheDir overrides the cache/template directory.
	CacheDir string `yaml:"cacheDir"`

	// Kubeconfig is the path to the orchestration API kubeconfig.
	Kubeconfig string `yaml:"kubeconfig"`
}

// Default returns the built-in defaults.
func Default() *Config {
	return &Config{Namespace: "default"}
}

// DefaultPath returns the default config file location.
func DefaultPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "vmctl", "config.yaml")
}

// Load reads the config file at path. A missing file is not an error and
// yields the defaults; an empty path loads DefaultPath.
func Load(path string) (*Config, error) {
	if path == "" {
		path = DefaultPath()
	}

	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	if cfg.Namespace == "" {
		cfg.Namespace = "default"
	}
	return cfg, nil
}

// ResolveCacheDir returns the configured cache directory, falling back to
// the environment/tempdir-derived default.
func (c *Config) ResolveCacheDir() string {
	if c.CacheDir != "" {
		return c.CacheDir
	}
	return cachestore.DefaultDir()
}
