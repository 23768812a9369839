package config

import (
	"encoding/json"
	"os"
	"path/filepath"
)

const configFile = ".dialogwrap/config.json"

// Config holds demo settings. The zero value describes a fully featured
// host: the Disable flags exist so that absent fields mean "native".
type Config struct {
	// JournalPath enables the sqlite event journal when non-empty.
	JournalPath string `json:"journal_path,omitempty"`

	// DisableNativeCommands simulates a host without declarative command
	// events, forcing the trigger polyfill.
	DisableNativeCommands bool `json:"disable_native_commands,omitempty"`

	// DisableNativeLightDismiss simulates a host without closedby support,
	// forcing the light-dismiss polyfill.
	DisableNativeLightDismiss bool `json:"disable_native_light_dismiss,omitempty"`

	// AutoOpen opens the demo dialog immediately at startup.
	AutoOpen bool `json:"autoopen,omitempty"`
}

// Load reads the config from disk
func Load(baseDir string) (*Config, error) {
	configPath := filepath.Join(baseDir, configFile)

	data, err := os.ReadFile(configPath)
	if err != nil {
		if os.IsNotExist(err) {
			return &Config{}, nil
		}
		return nil, err
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Save writes the config to disk
func Save(baseDir string, cfg *Config) error {
	configPath := filepath.Join(baseDir, configFile)

	// Ensure directory exists
	if err := os.MkdirAll(filepath.Dir(configPath), 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(configPath, data, 0644)
}
