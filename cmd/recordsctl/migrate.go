package main

import (
	"procurement-search/internal/repository"

	"github.com/spf13/cobra"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Apply or inspect schema migrations",
	Long: `Runs the embedded migrations for the configured DB_DRIVER.
Only the postgres and sqlite drivers have a schema.`,
}

func newMigrateSubcommand(command, short string) *cobra.Command {
	return &cobra.Command{
		Use:   command,
		Short: short,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return repository.Migrate(cmd.Context(), cfg, command, cmd.OutOrStdout())
		},
	}
}

func init() {
	migrateCmd.AddCommand(
		newMigrateSubcommand(repository.MigrateUp, "Apply all pending migrations"),
		newMigrateSubcommand(repository.MigrateDown, "Roll back the most recent migration"),
		newMigrateSubcommand(repository.MigrateStatus, "Show the state of every migration"),
	)
	rootCmd.AddCommand(migrateCmd)
}
