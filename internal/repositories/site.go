package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/updown/internal/logger"
	"github.com/sbilibin2017/updown/internal/models"
)

// SiteWriteRepository handles site write operations
type SiteWriteRepository struct {
	db       *sqlx.DB
	txGetter func(ctx context.Context) *sqlx.Tx
}

func NewSiteWriteRepository(db *sqlx.DB, txGetter func(ctx context.Context) *sqlx.Tx) *SiteWriteRepository {
	return &SiteWriteRepository{db: db, txGetter: txGetter}
}

// Save inserts a site unless the owner already registered the same URL, in
// which case nothing changes and ErrConflict is returned.
func (r *SiteWriteRepository) Save(ctx context.Context, site *models.SiteDB) error {
	const query = `
		INSERT INTO sites (id, user_id, url, name, created_at, updated_at)
		VALUES ($1, $2, $3, $4, NOW(), NOW())
		ON CONFLICT ON CONSTRAINT sites_url_user_id_key DO NOTHING
		RETURNING created_at, updated_at
	`
	args := []any{site.SiteID, site.UserID, site.URL, site.Name}

	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), site, query, args...)

	// Log query, args, result, error
	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", args,
		"result", site.CreatedAt,
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("site %s: %w", site.URL, ErrConflict)
	}
	return err
}

// Delete removes a site owned by userID. Observations go with it. A site that
// does not exist or belongs to someone else yields ErrNotFound.
func (r *SiteWriteRepository) Delete(ctx context.Context, siteID, userID uuid.UUID) error {
	const query = `
		DELETE FROM sites
		WHERE id = $1 AND user_id = $2
	`

	res, err := executor(ctx, r.db, r.txGetter).ExecContext(ctx, query, siteID, userID)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{siteID, userID},
		"result", rowsAffected,
		"error", err,
	)

	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// SiteReadRepository handles site read operations
type SiteReadRepository struct {
	db *sqlx.DB
}

func NewSiteReadRepository(db *sqlx.DB) *SiteReadRepository {
	return &SiteReadRepository{db: db}
}

const siteColumns = `id, user_id, url, name, created_at, updated_at`

// GetByID returns a site only if userID owns it.
func (r *SiteReadRepository) GetByID(ctx context.Context, siteID, userID uuid.UUID) (*models.SiteDB, error) {
	query := `
		SELECT ` + siteColumns + `
		FROM sites
		WHERE id = $1 AND user_id = $2
	`

	var site models.SiteDB
	err := r.db.GetContext(ctx, &site, query, siteID, userID)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{siteID, userID},
		"result", site.URL,
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &site, nil
}

// ListByUserID returns the user's sites ordered by creation.
func (r *SiteReadRepository) ListByUserID(ctx context.Context, userID uuid.UUID) ([]models.SiteDB, error) {
	query := `
		SELECT ` + siteColumns + `
		FROM sites
		WHERE user_id = $1
		ORDER BY created_at, id
	`

	sites := []models.SiteDB{}
	err := r.db.SelectContext(ctx, &sites, query, userID)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{userID},
		"result", len(sites),
		"error", err,
	)

	if err != nil {
		return nil, err
	}
	return sites, nil
}

// ListAll returns every site of every user.
func (r *SiteReadRepository) ListAll(ctx context.Context) ([]models.SiteDB, error) {
	query := `
		SELECT ` + siteColumns + `
		FROM sites
		ORDER BY created_at, id
	`

	sites := []models.SiteDB{}
	err := r.db.SelectContext(ctx, &sites, query)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"result", len(sites),
		"error", err,
	)

	if err != nil {
		return nil, err
	}
	return sites, nil
}
