package main

import (
	"fmt"

	"github.com/jeffleon2/draftea-checkout-service/config"
	"github.com/jeffleon2/draftea-checkout-service/internal/repository/posgrest"
	"github.com/spf13/cobra"
)

func migrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Create or update the checkout tables",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.New()
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

			fmt.Println("Migration complete")
			return nil
		},
	}
}
