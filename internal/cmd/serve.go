package cmd

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"appraisal_booking/internal/adapter/http/routes"

	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API",
	Long: `Start the HTTP API. Backing services that are not configured or not reachable
are logged at startup and the endpoints depending on them report it per request.`,
	RunE: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	log.Printf("[cmd] starting api addr=%s", cfg.Server.Addr)
	return routes.Run(ctx, cfg)
}
