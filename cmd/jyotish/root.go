package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"Jyotish/internal/config"
)

var rootCmd = &cobra.Command{
	Use:   "jyotish",
	Short: "Sidereal birth charts, Vimshottari dasha and yoga detection",
	Long: "Jyotish computes sidereal (Lahiri) birth charts with D9/D10 divisional charts, " +
		"the Vimshottari dasha tree and classical yogas, and can watch configured profiles " +
		"for dasha transitions over Telegram.",
	SilenceUsage: true,
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	cfgPath := "configs/config.yaml"
	if v := os.Getenv("CONFIG_PATH"); v != "" {
		cfgPath = v
	}
	rootCmd.PersistentFlags().String("config", cfgPath, "config file, .yaml or .toml (or CONFIG_PATH env)")
}

func loadConfig(cmd *cobra.Command) (*config.Config, string, error) {
	path, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(path)
	if err != nil {
		return nil, path, fmt.Errorf("load config: %w", err)
	}
	return cfg, path, nil
}
