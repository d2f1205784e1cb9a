// Package cmd provides CLI commands for urnpubid.
package cmd

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/lehigh-university-libraries/urnpubid/config"
	"github.com/lehigh-university-libraries/urnpubid/settings"
	"github.com/lehigh-university-libraries/urnpubid/store"
)

var (
	appConfig    *config.Config
	configDirArg string
)

func parseLevel(logLevel string) slog.Level {
	switch strings.ToUpper(logLevel) {
	case "DEBUG":
		return slog.LevelDebug
	case "INFO":
		return slog.LevelInfo
	case "WARN", "WARNING":
		return slog.LevelWarn
	case "ERROR":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func setupLogger(logLevel string) {
	if env := os.Getenv("LOG_LEVEL"); env != "" {
		logLevel = env
	}

	opts := &slog.HandlerOptions{
		Level: parseLevel(logLevel),
	}

	handler := slog.NewTextHandler(os.Stderr, opts)
	logger := slog.New(handler)

	slog.SetDefault(logger)
}

var rootCmd = &cobra.Command{
	Use:   "urnpubid",
	Short: "Assign URN persistent identifiers to monographs",
	Long: `urnpubid assigns Uniform Resource Names (URNs) to monographs and
publication formats of a press.

A URN is the configured press prefix followed by a suffix derived either
from the press path and object ids (default) or from a per-type pattern
using %p (press path), %m (monograph id) and %f (format id). Once
assigned, a URN is stored and reused.

Examples:
  urnpubid press add --id 1 --path ABC
  urnpubid settings set --press 1 --prefix urn:nbn:de:101-
  urnpubid enable --press 1
  urnpubid generate monograph --press 1 --id 42
  urnpubid generate format --press 1 --id 7 --monograph 42 --preview
  urnpubid validate urn:nbn:de:101-abc.42
  urnpubid resolve urn:nbn:de:101-abc.42`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: loadConfig,
}

func loadConfig(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if configDirArg != "" {
		cfg.ConfigDir = config.ExpandHome(configDirArg)
	}
	appConfig = cfg
	setupLogger(cfg.LogLevel)
	slog.Debug("configuration loaded", "config_dir", cfg.ConfigDir, "store", cfg.StorePath())
	return nil
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configDirArg, "config-dir", "", "Configuration directory (default: ~/.urnpubid)")
}

func repository() *settings.Repository {
	return settings.NewRepository(appConfig.ConfigDir)
}

func objectStore() (*store.File, error) {
	s, err := store.OpenFile(appConfig.StorePath())
	if err != nil {
		return nil, fmt.Errorf("opening object store: %w", err)
	}
	return s, nil
}
