package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Config holds process-level settings: where the app keeps its data and how
// it logs. User-visible settings (theme and the like) live in the BoltDB
// settings store instead and travel with backups; nothing here does.
type Config struct {
	// DataDir is the root of all app-private storage: databases, the
	// notebook-backgrounds directory and the backup staging directory.
	DataDir string `mapstructure:"data_dir"`

	// LogLevel is one of debug, info, warn, error.
	LogLevel string `mapstructure:"log_level"`

	// LogFile, when set, sends logs to a rotating file instead of stderr.
	LogFile string `mapstructure:"log_file"`
}

// Load reads configuration from an optional inkpad.yaml in the config
// directory and from INKPAD_* environment variables, with env taking
// precedence.
func Load() (*Config, error) {
	v := viper.New()

	v.SetDefault("data_dir", defaultDataDir())
	v.SetDefault("log_level", "info")
	v.SetDefault("log_file", "")

	v.SetConfigName("inkpad")
	v.SetConfigType("yaml")
	if dir, err := os.UserConfigDir(); err == nil {
		v.AddConfigPath(filepath.Join(dir, "inkpad"))
	}
	v.AddConfigPath(".")

	v.SetEnvPrefix("INKPAD")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		// A missing config file is fine; defaults and env cover everything
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return cfg, nil
}

// RecordDBPath returns the SQLite database location.
func (c *Config) RecordDBPath() string {
	return filepath.Join(c.DataDir, "inkpad.db")
}

// SettingsDBPath returns the BoltDB settings store location.
func (c *Config) SettingsDBPath() string {
	return filepath.Join(c.DataDir, "settings.db")
}

// BackgroundsDir returns the notebook background images directory.
func (c *Config) BackgroundsDir() string {
	return filepath.Join(c.DataDir, "notebook-backgrounds")
}

// StagingDir returns the private staging directory imported backups are
// copied into.
func (c *Config) StagingDir() string {
	return filepath.Join(c.DataDir, "backup-staging")
}

func defaultDataDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".inkpad"
	}
	return filepath.Join(home, ".inkpad")
}
