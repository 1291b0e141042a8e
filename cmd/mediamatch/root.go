package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/vmunix/mediamatch/internal/config"
)

var version = "dev"

var configPath string

var rootCmd = &cobra.Command{
	Use:   "mediamatch",
	Short: "Match local media files against metadata providers",
	Long: `mediamatch - identify local media files

Pairs noisy local filenames (video, subtitle, audio) with episode,
movie, and music metadata, remembering prior decisions across runs.`,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Config file path")

	rootCmd.Version = version
	rootCmd.SetVersionTemplate("mediamatch {{.Version}}\n")
}

// loadConfig reads the configured (or default) configuration.
func loadConfig() (*config.Config, error) {
	if configPath == "" {
		return config.Default(), nil
	}
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}
	if errs := cfg.Validate(); len(errs) > 0 {
		for _, e := range errs {
			fmt.Fprintf(os.Stderr, "config: %s\n", e)
		}
		return nil, fmt.Errorf("invalid configuration: %s", configPath)
	}
	return cfg, nil
}
