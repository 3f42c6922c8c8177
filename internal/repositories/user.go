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

type UserReadRepository struct {
	db       *sqlx.DB
	txGetter func(ctx context.Context) *sqlx.Tx
}

func NewUserReadRepository(db *sqlx.DB, txGetter func(ctx context.Context) *sqlx.Tx) *UserReadRepository {
	return &UserReadRepository{db: db, txGetter: txGetter}
}

// GetByLoginCodeHash returns the owner of a login code digest.
func (r *UserReadRepository) GetByLoginCodeHash(ctx context.Context, hash string) (*models.UserDB, error) {
	const query = `
		SELECT id, username, login_code_hash, created_at, updated_at
		FROM users
		WHERE login_code_hash = $1
	`

	var user models.UserDB
	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &user, query, hash)

	// Digest is omitted from the log
	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"result", user.UserID,
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

type UserWriteRepository struct {
	db       *sqlx.DB
	txGetter func(ctx context.Context) *sqlx.Tx
}

func NewUserWriteRepository(db *sqlx.DB, txGetter func(ctx context.Context) *sqlx.Tx) *UserWriteRepository {
	return &UserWriteRepository{db: db, txGetter: txGetter}
}

// Save inserts a new user. A taken username or digest yields ErrConflict.
func (r *UserWriteRepository) Save(ctx context.Context, user *models.UserDB) error {
	const query = `
		INSERT INTO users (id, username, login_code_hash, created_at, updated_at)
		VALUES ($1, $2, $3, NOW(), NOW())
		RETURNING created_at, updated_at
	`

	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), user, query,
		user.UserID, user.Username, user.LoginCodeHash)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{user.UserID, user.Username},
		"result", user.CreatedAt,
		"error", err,
	)

	if pgErrorCode(err) == pgUniqueViolation {
		return fmt.Errorf("save user %s: %w", user.Username, ErrConflict)
	}
	return err
}

// SetLoginCodeHash replaces the user's only valid login code digest.
func (r *UserWriteRepository) SetLoginCodeHash(ctx context.Context, userID uuid.UUID, hash string) error {
	const query = `
		UPDATE users
		SET login_code_hash = $2, updated_at = NOW()
		WHERE id = $1
	`

	res, err := executor(ctx, r.db, r.txGetter).ExecContext(ctx, query, userID, hash)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{userID},
		"result", rowsAffected,
		"error", err,
	)

	if err != nil {
		if pgErrorCode(err) == pgUniqueViolation {
			return fmt.Errorf("set login code: %w", ErrConflict)
		}
		return err
	}
	if rowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
