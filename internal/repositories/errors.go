package repositories

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

var (
	ErrNotFound = errors.New("record not found")
	ErrConflict = errors.New("record already exists")
	// ErrSiteGone is returned when a write references a site that was deleted.
	ErrSiteGone = errors.New("site no longer exists")
	// ErrRevoked is returned by the session cache for a logged out session.
	ErrRevoked = errors.New("session revoked")
)

const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
)

func pgErrorCode(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code
	}
	return ""
}
