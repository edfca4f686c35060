package cmd

import (
	"context"
	"fmt"
	"log"

	"appraisal_booking/internal/infrastructure/database"

	"github.com/spf13/cobra"
)

var withDynamo bool

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Create the Postgres schema",
	Long: `Applies the job, pricing, discount code and rate limit schema to the primary
database. Statements are idempotent and safe to re-run.

With --dynamo the idempotency and payments tables are created as well.`,
	RunE: runMigrate,
}

func init() {
	rootCmd.AddCommand(migrateCmd)

	migrateCmd.Flags().BoolVar(&withDynamo, "dynamo", false, "also create the DynamoDB tables")
}

func runMigrate(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	ctx := context.Background()

	db, err := database.ConnectPostgres(ctx, cfg.Database.DSN, 1)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer db.Close()

	if err := db.Migrate(ctx); err != nil {
		return fmt.Errorf("failed to migrate: %w", err)
	}
	log.Printf("[cmd] postgres schema applied")

	if !withDynamo {
		return nil
	}
	ddb, err := database.ConnectDynamoDB(ctx, cfg.AWS, cfg.DynamoDB)
	if err != nil {
		return fmt.Errorf("failed to connect to dynamodb: %w", err)
	}
	if err := database.EnsureDynamoTables(ctx, ddb, cfg.DynamoDB); err != nil {
		return fmt.Errorf("failed to create dynamodb tables: %w", err)
	}
	log.Printf("[cmd] dynamodb tables ready")
	return nil
}
