package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/updown/internal/logger"
	"github.com/sbilibin2017/updown/internal/models"
)

// StatusWriteRepository upserts distinct (site, status_code) observations.
type StatusWriteRepository struct {
	db       *sqlx.DB
	txGetter func(ctx context.Context) *sqlx.Tx
}

func NewStatusWriteRepository(db *sqlx.DB, txGetter func(ctx context.Context) *sqlx.Tx) *StatusWriteRepository {
	return &StatusWriteRepository{db: db, txGetter: txGetter}
}

type upsertedObservation struct {
	models.StatusObservation
	Inserted   bool `db:"inserted"`
	WasCurrent bool `db:"was_current"`
}

// Upsert records that statusCode was observed at observedAt. A new pair is
// inserted with created_at = updated_at = observedAt; a known pair only has
// updated_at moved forward. Both CTEs read the pre-statement snapshot, so
// was_current reflects the site's status before this write.
func (r *StatusWriteRepository) Upsert(ctx context.Context, siteID uuid.UUID, statusCode int, observedAt time.Time) (*models.StatusObservation, models.Transition, error) {
	const query = `
		WITH current AS (
			SELECT status_code
			FROM status_observations
			WHERE site_id = $1
			ORDER BY updated_at DESC, created_at DESC, status_code DESC
			LIMIT 1
		), upserted AS (
			INSERT INTO status_observations (site_id, status_code, created_at, updated_at)
			VALUES ($1, $2, $3, $3)
			ON CONFLICT ON CONSTRAINT status_observations_site_id_status_code_key
			DO UPDATE SET updated_at = GREATEST(status_observations.updated_at, EXCLUDED.updated_at)
			RETURNING id, site_id, status_code, created_at, updated_at, (xmax = 0) AS inserted
		)
		SELECT u.id, u.site_id, u.status_code, u.created_at, u.updated_at, u.inserted,
		       COALESCE((SELECT c.status_code FROM current c) = u.status_code, FALSE) AS was_current
		FROM upserted u
	`
	args := []any{siteID, statusCode, observedAt}

	var row upsertedObservation
	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &row, query, args...)

	transition := models.TransitionNone
	if err == nil {
		switch {
		case row.Inserted:
			transition = models.TransitionNew
		case row.WasCurrent:
			transition = models.TransitionRepeat
		default:
			transition = models.TransitionChanged
		}
	}

	// Log query, args, result, error
	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", args,
		"result", transition.String(),
		"error", err,
	)

	if err != nil {
		if pgErrorCode(err) == pgForeignKeyViolation {
			return nil, models.TransitionNone, fmt.Errorf("site %s: %w", siteID, ErrSiteGone)
		}
		return nil, models.TransitionNone, err
	}
	return &row.StatusObservation, transition, nil
}

// StatusReadRepository reads observations.
type StatusReadRepository struct {
	db *sqlx.DB
}

func NewStatusReadRepository(db *sqlx.DB) *StatusReadRepository {
	return &StatusReadRepository{db: db}
}

// Current returns the observation with the greatest updated_at, ties broken by
// created_at then status_code. ErrNotFound means the site was never probed.
func (r *StatusReadRepository) Current(ctx context.Context, siteID uuid.UUID) (*models.StatusObservation, error) {
	const query = `
		SELECT id, site_id, status_code, created_at, updated_at
		FROM status_observations
		WHERE site_id = $1
		ORDER BY updated_at DESC, created_at DESC, status_code DESC
		LIMIT 1
	`

	var o models.StatusObservation
	err := r.db.GetContext(ctx, &o, query, siteID)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{siteID},
		"result", o.StatusCode,
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &o, nil
}

// CurrentByUserID returns the current observation of each probed site of the
// user, keyed by site id.
func (r *StatusReadRepository) CurrentByUserID(ctx context.Context, userID uuid.UUID) (map[uuid.UUID]models.StatusObservation, error) {
	const query = `
		SELECT DISTINCT ON (o.site_id) o.id, o.site_id, o.status_code, o.created_at, o.updated_at
		FROM status_observations o
		JOIN sites s ON s.id = o.site_id
		WHERE s.user_id = $1
		ORDER BY o.site_id, o.updated_at DESC, o.created_at DESC, o.status_code DESC
	`

	var rows []models.StatusObservation
	err := r.db.SelectContext(ctx, &rows, query, userID)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{userID},
		"result", len(rows),
		"error", err,
	)

	if err != nil {
		return nil, err
	}

	current := make(map[uuid.UUID]models.StatusObservation, len(rows))
	for _, o := range rows {
		current[o.SiteID] = o
	}
	return current, nil
}

// ListBySiteID returns all distinct observations of a site, most recent first.
func (r *StatusReadRepository) ListBySiteID(ctx context.Context, siteID uuid.UUID) ([]models.StatusObservation, error) {
	const query = `
		SELECT id, site_id, status_code, created_at, updated_at
		FROM status_observations
		WHERE site_id = $1
		ORDER BY updated_at DESC, created_at DESC, status_code DESC
	`

	observations := []models.StatusObservation{}
	err := r.db.SelectContext(ctx, &observations, query, siteID)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{siteID},
		"result", len(observations),
		"error", err,
	)

	if err != nil {
		return nil, err
	}
	return observations, nil
}
