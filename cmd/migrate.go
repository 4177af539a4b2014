package main

import (
	"os"

	"github.com/spf13/cobra"

	"adspend/internal/config"
	"adspend/internal/db"
)

func migrateCmd(cfg *config.Config) *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Apply the report store schema to PSQL_ADDRESS",
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := cfg.Log.NewLogger(os.Stderr)
			return db.Migrate(cfg.Psql.Addr.String(), logger)
		},
	}
}
