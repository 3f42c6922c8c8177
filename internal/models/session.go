package models

import (
	"time"

	"github.com/google/uuid"
)

// SessionDB represents a session row. The raw session secret is never stored.
type SessionDB struct {
	SessionID uuid.UUID `db:"id"`
	UserID    uuid.UUID `db:"user_id"`
	TokenHash string    `db:"token_hash"`
	CreatedAt time.Time `db:"created_at"`
	ExpiresAt time.Time `db:"expires_at"`
}

// Expired reports whether the session is no longer valid at now.
func (s *SessionDB) Expired(now time.Time) bool {
	return !now.Before(s.ExpiresAt)
}

// Session is what the session gate hands back after login or signup.
type Session struct {
	Token     string    `json:"token"`
	UserID    uuid.UUID `json:"user_id"`
	ExpiresAt time.Time `json:"expires_at"`
}
