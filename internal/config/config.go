// Package config loads tool defaults from an optional bakenamer.toml file.
//
// The config file only seeds defaults (scene path, settings, extra
// recognized suffixes). Runtime toggles mutate the in-memory settings of the
// active session and are never written back.
package config

import (
	"fmt"

	"github.com/BurntSushi/toml"

	"github.com/cgpipe/bakenamer/internal/fsops"
)

// DefaultFileName is the config file looked up in the working directory
// when no --config flag is given.
const DefaultFileName = "bakenamer.toml"

// Config holds tool defaults.
type Config struct {
	// Scene is the default scene file path.
	Scene string `toml:"scene"`

	Settings SettingsConfig `toml:"settings"`
	Suffixes SuffixesConfig `toml:"suffixes"`
}

// SettingsConfig seeds the engine settings.
type SettingsConfig struct {
	CheckConflicts  bool `toml:"check_conflicts"`
	AutoUniqueNames bool `toml:"auto_unique_names"`
	ShowMessages    bool `toml:"show_messages"`
}

// SuffixesConfig extends the recognized suffix set.
type SuffixesConfig struct {
	// Extra suffixes stripped alongside the built-in baking suffixes.
	// Entries without a leading underscore are normalized.
	Extra []string `toml:"extra"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Scene: "scene.yaml",
		Settings: SettingsConfig{
			CheckConflicts:  true,
			AutoUniqueNames: true,
			ShowMessages:    true,
		},
	}
}

// Load reads the config file at path on top of the defaults. An empty path
// falls back to DefaultFileName in the working directory; a missing default
// file is not an error.
func Load(fs fsops.FS, path string) (*Config, error) {
	cfg := Default()

	explicit := path != ""
	if !explicit {
		path = DefaultFileName
		present, err := fs.Exists(path)
		if err != nil {
			return nil, fmt.Errorf("failed to stat config file: %w", err)
		}
		if !present {
			return cfg, nil
		}
	}

	data, err := fs.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}
	return cfg, nil
}
