package main

import (
	"github.com/spf13/cobra"

	"github.com/sbilibin2017/updown/internal/logger"
	"github.com/sbilibin2017/updown/internal/migrations"
)

func newMigrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Apply pending database migrations",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			defer logger.Sync()

			ctx := cmd.Context()
			db, err := openDB(ctx, cfg)
			if err != nil {
				return err
			}
			defer db.Close()

			if err := migrations.Up(ctx, db.DB); err != nil {
				return err
			}
			version, err := migrations.Version(ctx, db.DB)
			if err != nil {
				return err
			}
			logger.Log.Infow("migrations applied", "version", version)
			return nil
		},
	}
}

func newRollbackCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "rollback",
		Short: "Roll back the most recent database migration",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			defer logger.Sync()

			ctx := cmd.Context()
			db, err := openDB(ctx, cfg)
			if err != nil {
				return err
			}
			defer db.Close()

			if err := migrations.Down(ctx, db.DB); err != nil {
				return err
			}
			version, err := migrations.Version(ctx, db.DB)
			if err != nil {
				return err
			}
			logger.Log.Infow("migration rolled back", "version", version)
			return nil
		},
	}
}
