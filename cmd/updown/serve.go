package main

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "github.com/sbilibin2017/updown/docs"
	"github.com/sbilibin2017/updown/internal/broadcaster"
	"github.com/sbilibin2017/updown/internal/config"
	"github.com/sbilibin2017/updown/internal/handlers"
	"github.com/sbilibin2017/updown/internal/jwt"
	"github.com/sbilibin2017/updown/internal/logger"
	"github.com/sbilibin2017/updown/internal/metrics"
	"github.com/sbilibin2017/updown/internal/middlewares"
	"github.com/sbilibin2017/updown/internal/migrations"
	"github.com/sbilibin2017/updown/internal/publishers"
	"github.com/sbilibin2017/updown/internal/repositories"
	"github.com/sbilibin2017/updown/internal/scheduler"
	"github.com/sbilibin2017/updown/internal/services"
)

const (
	shutdownTimeout = 10 * time.Second
	eventBuffer     = 256
)

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Serve the API and live dashboard events and probe every site",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			defer logger.Sync()
			printBuildInfo(cmd.OutOrStdout())

			return runServe(cmd.Context(), cfg)
		},
	}
}

// api holds what the router needs from the wired application.
type api struct {
	auth    *services.AuthService
	sites   *services.SiteService
	events  *broadcaster.Broadcaster
	tokener *jwt.JWT
	db      handlers.Pinger
}

// runServe wires storage, services, the scheduler and the broadcaster, then
// serves HTTP until ctx is canceled.
func runServe(ctx context.Context, cfg *config.Config) error {
	metrics.Init()

	db, err := openDB(ctx, cfg)
	if err != nil {
		return err
	}
	defer db.Close()

	if err := migrations.Up(ctx, db.DB); err != nil {
		return fmt.Errorf("failed to apply migrations: %w", err)
	}

	cache, closeCache, err := openSessionCache(ctx, cfg)
	if err != nil {
		return err
	}
	defer closeCache()

	exporter, closeExporter := openExporter(cfg)
	defer closeExporter()

	tokener := jwt.New(cfg.JWTSecretKey, cfg.SessionExp)
	txGetter := repositories.GetTxFromContext

	// Initialize repositories
	userReadRepo := repositories.NewUserReadRepository(db, txGetter)
	userWriteRepo := repositories.NewUserWriteRepository(db, txGetter)
	sessionReadRepo := repositories.NewSessionReadRepository(db)
	sessionWriteRepo := repositories.NewSessionWriteRepository(db, txGetter)
	siteReadRepo := repositories.NewSiteReadRepository(db)
	siteWriteRepo := repositories.NewSiteWriteRepository(db, txGetter)
	statusReadRepo := repositories.NewStatusReadRepository(db)
	statusWriteRepo := repositories.NewStatusWriteRepository(db, txGetter)

	// Initialize services
	publisher := publishers.NewChannelPublisher(eventBuffer)
	ledgerService := services.NewLedgerService(statusWriteRepo, statusReadRepo, publisher, exporter)
	go ledgerService.RunExporter(ctx)

	prober := scheduler.NewHTTPProber(cfg.ProbeTimeout)
	defer prober.Close()
	sched := scheduler.New(prober, ledgerService, cfg.ProbeInterval)
	defer sched.Shutdown()

	siteService := services.NewSiteService(siteReadRepo, siteWriteRepo, statusReadRepo, sched, publisher)
	authService := services.NewAuthService(
		userReadRepo, userWriteRepo,
		sessionReadRepo, sessionWriteRepo, cache,
		tokener, repositories.NewTxRunner(db),
		siteWriteRepo, siteService,
	)

	events := broadcaster.New(siteService, broadcaster.DefaultBuffer)
	go events.Run(ctx, publisher.Events())

	sites, err := siteService.ListAllSites(ctx)
	if err != nil {
		return fmt.Errorf("failed to load sites: %w", err)
	}
	sched.Hydrate(ctx, sites)

	go purgeLoop(ctx, authService, cfg.SessionPurgeInterval)

	srv := &http.Server{
		Addr: cfg.Addr(),
		Handler: newRouter(cfg, api{
			auth:    authService,
			sites:   siteService,
			events:  events,
			tokener: tokener,
			db:      db,
		}),
		ReadHeaderTimeout: 10 * time.Second,
		BaseContext:       func(net.Listener) context.Context { return ctx },
	}

	return serveHTTP(ctx, srv)
}

// serveHTTP runs srv until ctx is canceled, then shuts it down gracefully.
func serveHTTP(ctx context.Context, srv *http.Server) error {
	errChan := make(chan error, 1)
	go func() {
		logger.Log.Infof("HTTP server listening on %s", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errChan <- fmt.Errorf("HTTP server failed: %w", err)
		}
	}()

	select {
	case <-ctx.Done():
		logger.Log.Info("Shutdown signal received, stopping HTTP server...")
	case serveErr := <-errChan:
		return serveErr
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Log.Errorw("HTTP server shutdown error", "error", err)
	}

	logger.Log.Info("HTTP server stopped gracefully")
	return nil
}

func newRouter(cfg *config.Config, a api) http.Handler {
	r := chi.NewRouter()
	r.Use(chimiddleware.Recoverer)
	r.Use(middlewares.LoggingMiddleware)
	r.Use(middlewares.MetricsMiddleware)

	r.Get("/healthz", handlers.NewHealthHandler(a.db))
	r.Handle("/metrics", promhttp.Handler())
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL(fmt.Sprintf("http://%s/swagger/doc.json", cfg.Addr())),
	))

	r.Route("/api", func(r chi.Router) {
		// Public routes
		r.With(middlewares.RateLimitMiddleware(cfg.LoginRatePerSecond)).
			Post("/login", handlers.NewLoginHandler(a.auth, cfg.CookieSecure))
		r.Post("/signup", handlers.NewSignupHandler(a.auth, cfg.CookieSecure))
		r.Post("/logout", handlers.NewLogoutHandler(a.tokener, a.auth, cfg.CookieSecure))

		// Protected routes
		r.Group(func(r chi.Router) {
			r.Use(middlewares.AuthMiddleware(a.tokener, a.auth))
			r.Get("/sites", handlers.NewListSitesHandler(a.sites))
			r.Post("/sites", handlers.NewAddSiteHandler(a.sites))
			r.Get("/sites/{id}", handlers.NewGetSiteHandler(a.sites))
			r.Delete("/sites/{id}", handlers.NewDeleteSiteHandler(a.sites))
			r.Post("/login-code", handlers.NewLoginCodeHandler(a.auth))
			r.Get("/events", handlers.NewEventsHandler(a.events, handlers.DefaultHeartbeat))
		})
	})

	return r
}
