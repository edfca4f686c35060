package cmd

import (
	"fmt"
	"os"

	"appraisal_booking/internal/config"

	"github.com/spf13/cobra"
)

var configPaths []string

var rootCmd = &cobra.Command{
	Use:   "appraisal-booking",
	Short: "Appraisal Booking - quotes, scheduling and back office API",
	Long: `Appraisal Booking serves the public quote, scheduling and booking API of an
appraisal and photography business, plus the admin back office.

Configuration is read from config.yaml (see --config) and environment variables.`,
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringSliceVar(&configPaths, "config", nil, "directories searched for config.yaml")
}

func loadConfig() (*config.Config, error) {
	cfg, err := config.LoadConfig(configPaths...)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	return cfg, nil
}
