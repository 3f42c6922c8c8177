package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sbilibin2017/updown/internal/config"
	"github.com/sbilibin2017/updown/internal/logger"
	"github.com/sbilibin2017/updown/internal/metrics"
	"github.com/sbilibin2017/updown/internal/publishers"
	"github.com/sbilibin2017/updown/internal/repositories"
	"github.com/sbilibin2017/updown/internal/scheduler"
	"github.com/sbilibin2017/updown/internal/services"
)

func newWatchCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "watch",
		Short: "Probe every site without serving the API",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			defer logger.Sync()
			printBuildInfo(cmd.OutOrStdout())

			return runWatch(cmd.Context(), cfg)
		},
	}
}

// runWatch probes every stored site and records the results until ctx is
// canceled. The site list is reloaded once per probe interval.
func runWatch(ctx context.Context, cfg *config.Config) error {
	metrics.Init()

	db, err := openDB(ctx, cfg)
	if err != nil {
		return err
	}
	defer db.Close()

	exporter, closeExporter := openExporter(cfg)
	defer closeExporter()

	siteReadRepo := repositories.NewSiteReadRepository(db)
	ledgerService := services.NewLedgerService(
		repositories.NewStatusWriteRepository(db, repositories.GetTxFromContext),
		repositories.NewStatusReadRepository(db),
		publishers.NopPublisher{},
		exporter,
	)
	go ledgerService.RunExporter(ctx)

	prober := scheduler.NewHTTPProber(cfg.ProbeTimeout)
	defer prober.Close()
	sched := scheduler.New(prober, ledgerService, cfg.ProbeInterval)
	defer sched.Shutdown()

	sites, err := siteReadRepo.ListAll(ctx)
	if err != nil {
		return fmt.Errorf("failed to load sites: %w", err)
	}
	sched.Hydrate(ctx, sites)
	logger.Log.Infow("watching sites", "sites", len(sites), "interval", cfg.ProbeInterval)

	syncLoop(ctx, siteReadRepo, sched, cfg.ProbeInterval)
	logger.Log.Info("watcher stopped")
	return nil
}
