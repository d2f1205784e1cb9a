// Package config loads the urnpubid application configuration.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Config is the application configuration.
type Config struct {
	// ConfigDir holds press settings and the object store
	ConfigDir string `mapstructure:"config_dir"`

	// LogLevel is one of DEBUG, INFO, WARN, ERROR
	LogLevel string `mapstructure:"log_level"`

	// Output is the default output format for generated identifiers
	Output string `mapstructure:"output"`

	// StoreFile overrides the object store location
	StoreFile string `mapstructure:"store_file"`
}

// DefaultDir returns the default configuration directory.
func DefaultDir() string {
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".urnpubid")
}

// DefaultPath returns the default config file path.
func DefaultPath() string {
	return filepath.Join(DefaultDir(), "config.yaml")
}

// Load reads the configuration from disk and the environment. A missing
// config file is not an error.
func Load() (*Config, error) {
	v := viper.New()

	v.SetDefault("config_dir", DefaultDir())
	v.SetDefault("log_level", "INFO")
	v.SetDefault("output", "text")
	v.SetDefault("store_file", "")

	v.SetEnvPrefix("URNPUBID")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	configPath := os.Getenv("URNPUBID_CONFIG")
	if configPath == "" {
		configPath = DefaultPath()
	}
	v.SetConfigFile(configPath)

	if err := v.ReadInConfig(); err != nil {
		if !os.IsNotExist(err) {
			if _, isCfgNotFound := err.(viper.ConfigFileNotFoundError); !isCfgNotFound {
				return nil, fmt.Errorf("reading config: %w", err)
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}

	cfg.ConfigDir = ExpandHome(cfg.ConfigDir)
	cfg.StoreFile = ExpandHome(cfg.StoreFile)

	return &cfg, nil
}

// StorePath returns the object store document path.
func (c *Config) StorePath() string {
	if c.StoreFile != "" {
		return c.StoreFile
	}
	return filepath.Join(c.ConfigDir, "objects.yaml")
}

// ExpandHome expands a leading ~/ in a path.
func ExpandHome(path string) string {
	if strings.HasPrefix(path, "~/") {
		home, _ := os.UserHomeDir()
		return filepath.Join(home, path[2:])
	}
	return path
}
