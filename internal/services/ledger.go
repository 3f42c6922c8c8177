package services

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/sbilibin2017/updown/internal/logger"
	"github.com/sbilibin2017/updown/internal/metrics"
	"github.com/sbilibin2017/updown/internal/models"
	"github.com/sbilibin2017/updown/internal/repositories"
)

//go:generate mockgen -source=ledger.go -destination=ledger_mock.go -package=services

// StatusWriter upserts status observations.
type StatusWriter interface {
	Upsert(ctx context.Context, siteID uuid.UUID, statusCode int, observedAt time.Time) (*models.StatusObservation, models.Transition, error)
}

// TransitionExporter forwards status transitions to an external consumer.
type TransitionExporter interface {
	Export(ctx context.Context, record models.TransitionRecord) error
}

const (
	// ExportQueueSize is how many transitions may wait for the exporter.
	// Transitions beyond it are dropped.
	ExportQueueSize = 256

	exportTimeout = 5 * time.Second
)

// LedgerService records probe results and announces status changes.
type LedgerService struct {
	writer   StatusWriter
	reader   StatusReader
	events   EventPublisher
	exporter TransitionExporter
	exports  chan models.TransitionRecord
}

// NewLedgerService creates a new LedgerService. exporter may be nil; when it
// is set, RunExporter must be running for transitions to leave the queue.
func NewLedgerService(writer StatusWriter, reader StatusReader, events EventPublisher, exporter TransitionExporter) *LedgerService {
	svc := &LedgerService{
		writer:   writer,
		reader:   reader,
		events:   events,
		exporter: exporter,
	}
	if exporter != nil {
		svc.exports = make(chan models.TransitionRecord, ExportQueueSize)
	}
	return svc
}

// RunExporter hands queued transitions to the exporter, one at a time and in
// order, until ctx is canceled. Each export gets its own deadline.
func (svc *LedgerService) RunExporter(ctx context.Context) {
	if svc.exporter == nil {
		return
	}
	for {
		select {
		case <-ctx.Done():
			return
		case record := <-svc.exports:
			svc.export(ctx, record)
		}
	}
}

func (svc *LedgerService) export(ctx context.Context, record models.TransitionRecord) {
	ctx, cancel := context.WithTimeout(ctx, exportTimeout)
	defer cancel()

	if err := svc.exporter.Export(ctx, record); err != nil {
		logger.Log.Warnw("failed to export transition", "site_id", record.SiteID, "err", err)
	}
}

// Record stores statusCode as observed for site at observedAt. A site deleted
// in the meantime yields TransitionNone and no error. Only transitions that
// move the current status are published and queued for export; Record never
// waits on the exporter.
func (svc *LedgerService) Record(ctx context.Context, site models.SiteDB, statusCode int, observedAt time.Time) (models.Transition, error) {
	obs, transition, err := svc.writer.Upsert(ctx, site.SiteID, statusCode, observedAt)
	if err != nil {
		if errors.Is(err, repositories.ErrSiteGone) {
			metrics.Transitions.WithLabelValues(models.TransitionNone.String()).Inc()
			return models.TransitionNone, nil
		}
		logger.Log.Errorw("failed to record status", "site_id", site.SiteID, "status_code", statusCode, "err", err)
		return models.TransitionNone, err
	}
	metrics.Transitions.WithLabelValues(transition.String()).Inc()

	if !transition.Changed() {
		return transition, nil
	}

	svc.events.Publish(ctx, models.Event{
		Type:       models.EventStatus,
		UserID:     site.UserID,
		SiteID:     site.SiteID,
		Status:     obs,
		OccurredAt: observedAt,
	})

	if svc.exporter != nil {
		record := models.TransitionRecord{
			SiteID:     site.SiteID.String(),
			UserID:     site.UserID.String(),
			URL:        site.URL,
			StatusCode: statusCode,
			Status:     models.StatusName(statusCode),
			Kind:       transition.String(),
			ObservedAt: observedAt,
		}
		select {
		case svc.exports <- record:
		default:
			metrics.ExportsDropped.Inc()
			logger.Log.Warnw("export queue full, dropping transition", "site_id", site.SiteID)
		}
	}

	return transition, nil
}

// CurrentStatus returns the site's current observation, or nil before the
// first probe.
func (svc *LedgerService) CurrentStatus(ctx context.Context, siteID uuid.UUID) (*models.StatusObservation, error) {
	obs, err := svc.reader.Current(ctx, siteID)
	if errors.Is(err, repositories.ErrNotFound) {
		return nil, nil
	}
	return obs, err
}

// Observations returns every distinct status seen for the site.
func (svc *LedgerService) Observations(ctx context.Context, siteID uuid.UUID) ([]models.StatusObservation, error) {
	return svc.reader.ListBySiteID(ctx, siteID)
}
