package main

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/redmonkez12/go-auth-api/internal/config"
	"github.com/redmonkez12/go-auth-api/internal/database"
)

// withDB adapts a database operation into a cobra RunE using the configured Postgres.
func withDB(op func(context.Context, *sql.DB) error) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}
		if cfg.Database.Driver != config.DriverPostgres {
			return fmt.Errorf("migrations need DB_DRIVER=%s, got %q", config.DriverPostgres, cfg.Database.Driver)
		}

		db, err := database.Open(cmd.Context(), cfg.Database.ConnectionString())
		if err != nil {
			return err
		}
		defer db.Close()

		return op(cmd.Context(), db)
	}
}
