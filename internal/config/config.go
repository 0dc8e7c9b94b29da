// Package config loads optional CLI defaults from a YAML config file.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

// EnvConfig is the environment variable name for specifying the config file.
const EnvConfig = "Q3LOG_CONFIG"

// Config holds CLI defaults. Flags always override these values.
type Config struct {
	// LogFile is the default games.log path.
	LogFile string `mapstructure:"log_file"`

	// Format is the default event output format (jsonl or pretty).
	Format string `mapstructure:"format"`

	// TopKillers limits the player ranking report (0 = unlimited).
	TopKillers int `mapstructure:"top_killers"`
}

// Default returns the built-in defaults used when no config file exists.
func Default() Config {
	return Config{
		Format:     "jsonl",
		TopKillers: 0,
	}
}

// Load reads the config file.
//
// Priority:
//  1. explicit path (if non-empty; missing file is an error)
//  2. Q3LOG_CONFIG environment variable
//  3. <user config dir>/q3log/config.yaml
//
// An absent file in the auto-detected locations is not an error; the
// built-in defaults are returned.
func Load(explicit string) (Config, error) {
	path := explicit
	if path == "" {
		path = os.Getenv(EnvConfig)
	}
	if path == "" {
		dir, err := os.UserConfigDir()
		if err != nil {
			return Default(), nil
		}
		path = filepath.Join(dir, "q3log", "config.yaml")
		if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
			return Default(), nil
		}
	}

	v := viper.New()
	v.SetConfigFile(path)
	v.SetDefault("format", "jsonl")
	v.SetDefault("top_killers", 0)

	if err := v.ReadInConfig(); err != nil {
		return Config{}, fmt.Errorf("reading config file: %w", err)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("parsing config file: %w", err)
	}

	return cfg, nil
}
