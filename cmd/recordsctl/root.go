package main

import (
	"procurement-search/config"
	"procurement-search/pkg/logger"

	"github.com/spf13/cobra"
)

// cfg is loaded once per invocation, before any subcommand runs.
var cfg *config.Config

var rootCmd = &cobra.Command{
	Use:   "recordsctl",
	Short: "Manage the procurement search database",
	Long: `recordsctl applies schema migrations and loads fixture data.
It reads the same environment (or CONFIG_FILE) as the API server.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
		c, err := config.LoadConfig()
		if err != nil {
			return err
		}
		cfg = c
		logger.Init(cfg.Env, cfg.LogLevel)
		return nil
	},
}
