package main

import (
	"context"
	"time"

	"github.com/sbilibin2017/updown/internal/logger"
	"github.com/sbilibin2017/updown/internal/models"
)

// SessionPurger deletes expired sessions.
type SessionPurger interface {
	PurgeExpiredSessions(ctx context.Context) (int64, error)
}

// purgeLoop deletes expired sessions every interval until ctx is done.
func purgeLoop(ctx context.Context, purger SessionPurger, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			n, err := purger.PurgeExpiredSessions(ctx)
			if err != nil {
				logger.Log.Errorw("failed to purge sessions", "err", err)
				continue
			}
			if n > 0 {
				logger.Log.Infow("expired sessions purged", "count", n)
			}
		}
	}
}

// SiteLister returns every monitored site.
type SiteLister interface {
	ListAll(ctx context.Context) ([]models.SiteDB, error)
}

// SiteSyncer reconciles running timers with a site list.
type SiteSyncer interface {
	Sync(ctx context.Context, sites []models.SiteDB)
}

// syncLoop reloads the site list every interval so a standalone watcher
// picks up sites added or removed through another process.
func syncLoop(ctx context.Context, sites SiteLister, syncer SiteSyncer, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			list, err := sites.ListAll(ctx)
			if err != nil {
				logger.Log.Errorw("failed to reload sites", "err", err)
				continue
			}
			syncer.Sync(ctx, list)
		}
	}
}
