package main

import (
	"database/sql"

	"github.com/spf13/cobra"

	"ecoandino/internal/config"
	"ecoandino/internal/infra"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Manage the database schema",
	Long: `Apply or roll back the embedded schema migrations.

Examples:
  ecoandino migrate up        # apply every pending migration
  ecoandino migrate down      # roll back the latest migration
  ecoandino migrate status    # list applied and pending migrations`,
}

func init() {
	rootCmd.AddCommand(migrateCmd)

	migrateCmd.AddCommand(
		migrationCommand("up", "Apply every pending migration", infra.MigrateUp),
		migrationCommand("down", "Roll back the latest migration", infra.MigrateDown),
		migrationCommand("status", "Show the state of every migration", infra.MigrationStatus),
	)
}

func migrationCommand(use, short string, run func(*sql.DB) error) *cobra.Command {
	return &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			db, err := infra.OpenSQL(cfg)
			if err != nil {
				return err
			}
			defer db.Close()

			return run(db)
		},
	}
}
