package main

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/jeffleon2/draftea-checkout-service/config"
	"github.com/jeffleon2/draftea-checkout-service/internal/app"
	"github.com/spf13/cobra"
)

func serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP server and the postback consumer",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.New()
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			myApp := &app.App{}
			if err := myApp.Initialize(cfg); err != nil {
				return err
			}
			return myApp.Run(ctx)
		},
	}
}
