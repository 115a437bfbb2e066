package main

import (
	"fmt"

	"go-concurso-backend/config"
	"go-concurso-backend/migrations"
	"go-concurso-backend/pkg/database"
	"go-concurso-backend/pkg/logger"

	"github.com/spf13/cobra"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Apply the embedded SQL migrations",
	Long:  "Applies every embedded *.up.sql migration in lexical order inside one transaction. Migrations are idempotent.",
	RunE:  runMigrate,
}

func init() {
	rootCmd.AddCommand(migrateCmd)
}

func runMigrate(cmd *cobra.Command, _ []string) error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	logger.Init(cfg.LogLevel)

	if cfg.StoreDriver != config.StoreDriverPostgres {
		return fmt.Errorf("migrate requires STORE_DRIVER=%s", config.StoreDriverPostgres)
	}

	pool, err := database.NewPostgresConnection(cmd.Context(), cfg.DBUrl)
	if err != nil {
		return err
	}
	defer pool.Close()

	applied, err := database.Migrate(cmd.Context(), pool, migrations.FS)
	if err != nil {
		return fmt.Errorf("failed to apply migrations: %w", err)
	}
	logger.Log.Info("Migrations applied", "files", applied)
	return nil
}
