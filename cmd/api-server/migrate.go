package main

import (
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"homeservices/db/migrations"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Manage the database schema",
}

var migrateUpCmd = &cobra.Command{
	Use:   "up",
	Short: "Apply all pending migrations",
	RunE: func(cmd *cobra.Command, args []string) error {
		_, conn, err := setup(cmd.Context())
		if err != nil {
			return err
		}
		defer conn.Close()
		if err := migrations.Run(cmd.Context(), conn.DB, log.Logger); err != nil {
			return err
		}
		log.Info().Msg("migrations applied")
		return nil
	},
}

var migrateStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show applied and pending migrations",
	RunE: func(cmd *cobra.Command, args []string) error {
		_, conn, err := setup(cmd.Context())
		if err != nil {
			return err
		}
		defer conn.Close()
		return migrations.Status(cmd.Context(), conn.DB, log.Logger)
	},
}

func init() {
	migrateCmd.AddCommand(migrateUpCmd, migrateStatusCmd)
	rootCmd.AddCommand(migrateCmd)
}
