// Package config loads the optional user configuration file that points at
// the Blender installation to relaunch under.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/Masterminds/semver/v3"
	"gopkg.in/yaml.v3"
)

const (
	// EnvConfig names an explicit config file path.
	EnvConfig = "BLENDER_CLI_CONFIG"

	// EnvBlender overrides the blender executable, beating the config file.
	EnvBlender = "BLENDER_CLI_BLENDER"

	defaultBinary = "blender"
)

// Config is the on-disk configuration.
type Config struct {
	Blender    string   `yaml:"blender"`     // blender executable name or path
	MinVersion string   `yaml:"min_version"` // oldest supported blender version
	ExtraArgs  []string `yaml:"extra_args"`  // extra host flags on relaunch
}

// Load reads the configuration. An explicit path (usually $BLENDER_CLI_CONFIG)
// must exist; the default location ~/.config/blendercli/config.yaml may be
// absent, in which case a zero Config is returned. A present but malformed
// file is an error.
func Load(explicitPath string) (Config, error) {
	path := explicitPath
	if path == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return Config{}, nil
		}
		path = filepath.Join(home, ".config", "blendercli", "config.yaml")
		if _, err := os.Stat(path); err != nil {
			return Config{}, nil
		}
	} else if _, err := os.Stat(path); err != nil {
		return Config{}, fmt.Errorf("config file not found: %w", err)
	}

	data, err := os.ReadFile(path) //nolint:gosec // intentional: reading the user's config file
	if err != nil {
		return Config{}, fmt.Errorf("read config %s: %w", path, err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}

// HostBinary resolves the blender executable: $BLENDER_CLI_BLENDER wins,
// then the config file, then plain "blender" from PATH.
func (c Config) HostBinary() string {
	if v := os.Getenv(EnvBlender); v != "" {
		return v
	}
	if c.Blender != "" {
		return c.Blender
	}
	return defaultBinary
}

// Minimum returns the parsed minimum host version, or nil when the gate is
// not configured.
func (c Config) Minimum() (*semver.Version, error) {
	if c.MinVersion == "" {
		return nil, nil
	}
	v, err := semver.NewVersion(c.MinVersion)
	if err != nil {
		return nil, fmt.Errorf("min_version %q: %w", c.MinVersion, err)
	}
	return v, nil
}
