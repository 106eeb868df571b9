package config

import (
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

// Config holds the application configuration.
type Config struct {
	Backend      string `mapstructure:"backend"`
	DatabasePath string `mapstructure:"database_path"`
	Account      string `mapstructure:"account"`
	Debug        bool   `mapstructure:"debug"`
}

// DefaultDatabasePath returns the standard Apple Notes store location
// (~/Library/Group Containers/group.com.apple.notes/NoteStore.sqlite).
func DefaultDatabasePath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, "Library", "Group Containers", "group.com.apple.notes", "NoteStore.sqlite")
}

// DefaultConfigDir returns the config directory (~/.applenotes-mcp/).
func DefaultConfigDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", ".applenotes-mcp")
	}
	return filepath.Join(home, ".applenotes-mcp")
}

// Load reads configuration from file, environment variables, and defaults.
func Load(configPath string) (*Config, error) {
	v := viper.New()

	// Defaults
	v.SetDefault("backend", "auto")
	v.SetDefault("database_path", DefaultDatabasePath())
	v.SetDefault("account", "")
	v.SetDefault("debug", false)

	// Config file
	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		// XDG support
		if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
			v.AddConfigPath(filepath.Join(xdg, "applenotes-mcp"))
		}
		v.AddConfigPath(DefaultConfigDir())
		v.SetConfigName("config")
		v.SetConfigType("toml")
	}

	// Environment variables: APPLENOTES_BACKEND, APPLENOTES_DATABASE_PATH, etc.
	v.SetEnvPrefix("APPLENOTES")
	v.AutomaticEnv()

	// Read config file (ignore not found)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			// Only return error if it's not a "file not found" error
			if configPath != "" {
				return nil, err
			}
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}
