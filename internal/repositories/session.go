package repositories

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/updown/internal/logger"
	"github.com/sbilibin2017/updown/internal/models"
)

type SessionReadRepository struct {
	db *sqlx.DB
}

func NewSessionReadRepository(db *sqlx.DB) *SessionReadRepository {
	return &SessionReadRepository{db: db}
}

// GetByTokenHash returns the session for a secret digest, expired or not.
func (r *SessionReadRepository) GetByTokenHash(ctx context.Context, hash string) (*models.SessionDB, error) {
	const query = `
		SELECT id, user_id, token_hash, created_at, expires_at
		FROM sessions
		WHERE token_hash = $1
	`

	var s models.SessionDB
	err := r.db.GetContext(ctx, &s, query, hash)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"result", s.SessionID,
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &s, nil
}

type SessionWriteRepository struct {
	db       *sqlx.DB
	txGetter func(ctx context.Context) *sqlx.Tx
}

func NewSessionWriteRepository(db *sqlx.DB, txGetter func(ctx context.Context) *sqlx.Tx) *SessionWriteRepository {
	return &SessionWriteRepository{db: db, txGetter: txGetter}
}

func (r *SessionWriteRepository) Save(ctx context.Context, s *models.SessionDB) error {
	const query = `
		INSERT INTO sessions (id, user_id, token_hash, created_at, expires_at)
		VALUES ($1, $2, $3, $4, $5)
	`
	args := []any{s.SessionID, s.UserID, s.TokenHash, s.CreatedAt, s.ExpiresAt}

	res, err := executor(ctx, r.db, r.txGetter).ExecContext(ctx, query, args...)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{s.SessionID, s.UserID, s.ExpiresAt},
		"result", rowsAffected,
		"error", err,
	)

	if pgErrorCode(err) == pgUniqueViolation {
		return ErrConflict
	}
	return err
}

// DeleteByTokenHash removes a session. Deleting an unknown session is not an error.
func (r *SessionWriteRepository) DeleteByTokenHash(ctx context.Context, hash string) error {
	const query = `DELETE FROM sessions WHERE token_hash = $1`

	res, err := executor(ctx, r.db, r.txGetter).ExecContext(ctx, query, hash)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logger.Log.Infow(
		"query", query,
		"result", rowsAffected,
		"error", err,
	)

	return err
}

// DeleteExpired removes every session whose expiry is not after now.
func (r *SessionWriteRepository) DeleteExpired(ctx context.Context, now time.Time) (int64, error) {
	const query = `DELETE FROM sessions WHERE expires_at <= $1`

	res, err := executor(ctx, r.db, r.txGetter).ExecContext(ctx, query, now)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logger.Log.Infow(
		"query", query,
		"args", []any{now},
		"result", rowsAffected,
		"error", err,
	)

	return rowsAffected, err
}
