package services

import (
	"context"
	"errors"
	"net/url"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/sbilibin2017/updown/internal/logger"
	"github.com/sbilibin2017/updown/internal/models"
	"github.com/sbilibin2017/updown/internal/repositories"
)

//go:generate mockgen -source=sites.go -destination=sites_mock.go -package=services

// SiteReader defines read-only operations for sites.
type SiteReader interface {
	GetByID(ctx context.Context, siteID, userID uuid.UUID) (*models.SiteDB, error)
	ListByUserID(ctx context.Context, userID uuid.UUID) ([]models.SiteDB, error)
	ListAll(ctx context.Context) ([]models.SiteDB, error)
}

// SiteWriter defines write operations for sites.
type SiteWriter interface {
	Save(ctx context.Context, site *models.SiteDB) error
	Delete(ctx context.Context, siteID, userID uuid.UUID) error
}

// StatusReader reads the status ledger.
type StatusReader interface {
	Current(ctx context.Context, siteID uuid.UUID) (*models.StatusObservation, error)
	CurrentByUserID(ctx context.Context, userID uuid.UUID) (map[uuid.UUID]models.StatusObservation, error)
	ListBySiteID(ctx context.Context, siteID uuid.UUID) ([]models.StatusObservation, error)
}

// Scheduler starts and stops per-site probe timers.
type Scheduler interface {
	Schedule(site models.SiteDB)
	Stop(siteID uuid.UUID)
}

// EventPublisher hands events to the live dashboard broadcaster.
type EventPublisher interface {
	Publish(ctx context.Context, event models.Event)
}

var validate = validator.New()

// ValidateSiteURL accepts absolute http and https URLs with a host.
func ValidateSiteURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if err := validate.Var(raw, "required,url"); err != nil {
		return "", ErrInvalidURL
	}
	u, err := url.Parse(raw)
	if err != nil || u.Host == "" || (u.Scheme != "http" && u.Scheme != "https") {
		return "", ErrInvalidURL
	}
	return raw, nil
}

// SiteService is the per-user catalog of monitored URLs.
type SiteService struct {
	reader    SiteReader
	writer    SiteWriter
	statuses  StatusReader
	scheduler Scheduler
	events    EventPublisher
}

// NewSiteService creates a new SiteService instance.
func NewSiteService(reader SiteReader, writer SiteWriter, statuses StatusReader, scheduler Scheduler, events EventPublisher) *SiteService {
	return &SiteService{
		reader:    reader,
		writer:    writer,
		statuses:  statuses,
		scheduler: scheduler,
		events:    events,
	}
}

// AddSite registers rawURL for userID and starts probing it. Registering the
// same URL twice changes nothing and returns ErrDuplicateURL.
func (svc *SiteService) AddSite(ctx context.Context, userID uuid.UUID, rawURL string, name *string) (*models.SiteDB, error) {
	siteURL, err := ValidateSiteURL(rawURL)
	if err != nil {
		return nil, err
	}
	if name != nil && strings.TrimSpace(*name) == "" {
		name = nil
	}

	site := models.SiteDB{
		SiteID: uuid.New(),
		UserID: userID,
		URL:    siteURL,
		Name:   name,
	}
	if err := svc.writer.Save(ctx, &site); err != nil {
		if errors.Is(err, repositories.ErrConflict) {
			return nil, ErrDuplicateURL
		}
		logger.Log.Errorw("failed to save site", "user_id", userID, "err", err)
		return nil, err
	}

	svc.Track(ctx, site)
	return &site, nil
}

// Track schedules probes for a persisted site and announces it.
func (svc *SiteService) Track(ctx context.Context, site models.SiteDB) {
	svc.scheduler.Schedule(site)
	svc.events.Publish(ctx, models.Event{
		Type:       models.EventSiteAdded,
		UserID:     site.UserID,
		SiteID:     site.SiteID,
		Site:       &site,
		OccurredAt: time.Now(),
	})
}

// RemoveSite deletes a site owned by userID and stops probing it. Sites that
// do not exist and sites of other users both yield ErrNotOwner.
func (svc *SiteService) RemoveSite(ctx context.Context, userID, siteID uuid.UUID) error {
	if err := svc.writer.Delete(ctx, siteID, userID); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return ErrNotOwner
		}
		logger.Log.Errorw("failed to delete site", "site_id", siteID, "err", err)
		return err
	}

	svc.scheduler.Stop(siteID)
	svc.events.Publish(ctx, models.Event{
		Type:       models.EventSiteRemoved,
		UserID:     userID,
		SiteID:     siteID,
		OccurredAt: time.Now(),
	})
	return nil
}

// GetSite returns an owned site with every distinct status observed for it.
func (svc *SiteService) GetSite(ctx context.Context, userID, siteID uuid.UUID) (*models.SiteDB, []models.StatusObservation, error) {
	site, err := svc.reader.GetByID(ctx, siteID, userID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, nil, ErrNotOwner
		}
		return nil, nil, err
	}

	observations, err := svc.statuses.ListBySiteID(ctx, siteID)
	if err != nil {
		return nil, nil, err
	}
	return site, observations, nil
}

// ListSites returns the user's sites in creation order.
func (svc *SiteService) ListSites(ctx context.Context, userID uuid.UUID) ([]models.SiteDB, error) {
	return svc.reader.ListByUserID(ctx, userID)
}

// ListAllSites returns every site, used to hydrate the scheduler.
func (svc *SiteService) ListAllSites(ctx context.Context) ([]models.SiteDB, error) {
	return svc.reader.ListAll(ctx)
}

// Snapshot returns each of the user's sites with its current status.
func (svc *SiteService) Snapshot(ctx context.Context, userID uuid.UUID) ([]models.SiteStatus, error) {
	sites, err := svc.reader.ListByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	current, err := svc.statuses.CurrentByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	snapshot := make([]models.SiteStatus, 0, len(sites))
	for _, site := range sites {
		entry := models.SiteStatus{Site: site}
		if obs, ok := current[site.SiteID]; ok {
			entry.Status = &obs
		}
		snapshot = append(snapshot, entry)
	}
	return snapshot, nil
}
