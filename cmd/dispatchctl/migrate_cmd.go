package main

import (
	"log/slog"
	"time"

	"dispatch/internal/infra/persistence/postgres"
	"dispatch/internal/util"

	"github.com/spf13/cobra"
	"gorm.io/gorm"
)

func newMigrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Create or update the database schema",
		RunE: func(cmd *cobra.Command, _ []string) error {
			var (
				db     *gorm.DB
				logger *slog.Logger
			)

			return runWith(cmd.Context(), func() error {
				start := time.Now()
				if err := postgres.Migrate(cmd.Context(), db); err != nil {
					return err
				}
				logger.Info("Schema migrated", slog.String("took", util.FormatDuration(time.Since(start))))

				return nil
			}, &db, &logger)
		},
	}
}
