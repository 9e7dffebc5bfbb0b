package main

import (
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"homeservices/db"
	"homeservices/internal/seed"
)

var seedFile string

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Load services, agencies and content blocks from a YAML file",
	Long: `Seed validates every record in the file with the same rules as the API
and then inserts them. Agencies reference their services by name.

Example:
  homeservices seed --file seeds/catalog.yaml`,
	RunE: func(cmd *cobra.Command, args []string) error {
		f, err := seed.Load(seedFile)
		if err != nil {
			return err
		}

		_, conn, err := setup(cmd.Context())
		if err != nil {
			return err
		}
		defer conn.Close()

		sum, err := seed.NewSeeder(db.NewStorage(conn), log.Logger).Run(cmd.Context(), f)
		if err != nil {
			return err
		}
		log.Info().
			Int("services", sum.Services).
			Int("agencies", sum.Agencies).
			Int("content", sum.Content).
			Msg("seed complete")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(seedCmd)
	seedCmd.Flags().StringVarP(&seedFile, "file", "f", "seeds/catalog.yaml", "Seed file")
}
