package main

import (
	"fmt"

	"github.com/jeffleon2/draftea-checkout-service/config"
	"github.com/jeffleon2/draftea-checkout-service/internal/database"
	"github.com/jeffleon2/draftea-checkout-service/internal/repository/posgrest"
	"github.com/spf13/cobra"
)

func seedCmd() *cobra.Command {
	var file string

	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Load form configs and items from a YAML file",
		Long: `Load form configs and items from a YAML file.

Forms are matched by name and items by slug, so the command can be run
again after editing the file.

Examples:
  checkout seed
  checkout seed --file catalog.yaml`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.New()
			if err != nil {
				return err
			}
			if file == "" {
				file = cfg.APP.SeedFile
			}

			seed, err := database.LoadSeed(file)
			if err != nil {
				return err
			}

			db, err := cfg.DB.GormConnect()
			if err != nil {
				return fmt.Errorf("failed to connect to database: %w", err)
			}
			if err := posgrest.Migrate(db); err != nil {
				return fmt.Errorf("failed to auto migrate: %w", err)
			}

			return database.Seed(cmd.Context(), db, seed)
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "", "seed file (defaults to APP_SEED_FILE)")

	return cmd
}
