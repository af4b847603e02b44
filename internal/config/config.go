package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds the bandlink client configuration.
type Config struct {
	Identity IdentityConfig `yaml:"identity"`
	Paths    PathsConfig    `yaml:"paths"`
}

// IdentityConfig holds the local user and the people they can message.
type IdentityConfig struct {
	User       string   `yaml:"user"`
	KnownUsers []string `yaml:"known_users"`
}

// PathsConfig holds filesystem paths for data and logs.
type PathsConfig struct {
	Data     string `yaml:"data"`
	Database string `yaml:"database"`
	Log      string `yaml:"log"`
}

// Load reads and parses a YAML config file. A missing file is not an
// error for this local client; defaults apply.
func Load(path string) (*Config, error) {
	cfg := &Config{
		Identity: IdentityConfig{
			User:       "You (demo)",
			KnownUsers: []string{"Ava", "Marcus", "Emma"},
		},
		Paths: PathsConfig{
			Data:     "./data",
			Database: "./data/bandlink.db",
			Log:      "./data/bandlink.log",
		},
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return cfg, nil
		}
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}

	if cfg.Identity.User == "" {
		return nil, fmt.Errorf("config %s: identity.user cannot be empty", path)
	}

	return cfg, nil
}
