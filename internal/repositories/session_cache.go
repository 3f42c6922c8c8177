package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/sbilibin2017/updown/internal/logger"
)

// revokedMarker replaces the cached owner of a logged out session so that a
// read-through racing with logout cannot bring the entry back.
const revokedMarker = "revoked"

// defaultRevokeTTL bounds a revocation marker when no expiration is configured.
const defaultRevokeTTL = time.Hour

// SessionCacheRepository caches resolved sessions in Redis, keyed by the
// session secret digest.
type SessionCacheRepository struct {
	client *redis.Client
	exp    time.Duration // upper bound for a cached entry's lifetime
}

// NewSessionCacheRepository creates a cache whose entries live at most expiration.
func NewSessionCacheRepository(client *redis.Client, expiration time.Duration) *SessionCacheRepository {
	return &SessionCacheRepository{
		client: client,
		exp:    expiration,
	}
}

func sessionKey(hash string) string {
	return fmt.Sprintf("session:%s", hash)
}

// Get returns the cached owner of a session, ErrNotFound on a miss and
// ErrRevoked for a session that was logged out.
func (r *SessionCacheRepository) Get(ctx context.Context, hash string) (uuid.UUID, error) {
	key := sessionKey(hash)

	val, err := r.client.Get(ctx, key).Result()
	if err != nil {
		logger.Log.Infow(
			"cache", "get",
			"result", val,
			"error", err,
		)
		if errors.Is(err, redis.Nil) {
			return uuid.Nil, ErrNotFound
		}
		return uuid.Nil, err
	}

	if val == revokedMarker {
		logger.Log.Infow(
			"cache", "get",
			"result", val,
			"error", ErrRevoked,
		)
		return uuid.Nil, ErrRevoked
	}

	userID, err := uuid.Parse(val)
	logger.Log.Infow(
		"cache", "get",
		"result", userID,
		"error", err,
	)
	if err != nil {
		return uuid.Nil, err
	}
	return userID, nil
}

// Set caches the owner until expiresAt or the configured bound, whichever
// comes first. Sessions already expired are not cached. An existing entry,
// revocation markers included, is never overwritten.
func (r *SessionCacheRepository) Set(ctx context.Context, hash string, userID uuid.UUID, expiresAt time.Time) error {
	ttl := time.Until(expiresAt)
	if ttl <= 0 {
		return nil
	}
	if r.exp > 0 && ttl > r.exp {
		ttl = r.exp
	}

	stored, err := r.client.SetNX(ctx, sessionKey(hash), userID.String(), ttl).Result()

	logger.Log.Infow(
		"cache", "set",
		"ttl", ttl,
		"stored", stored,
		"result", userID,
		"error", err,
	)

	return err
}

// Revoke replaces any cached owner with a revocation marker that outlives
// every entry Set could still write.
func (r *SessionCacheRepository) Revoke(ctx context.Context, hash string) error {
	ttl := r.exp
	if ttl <= 0 {
		ttl = defaultRevokeTTL
	}

	err := r.client.Set(ctx, sessionKey(hash), revokedMarker, ttl).Err()

	logger.Log.Infow(
		"cache", "revoke",
		"ttl", ttl,
		"error", err,
	)

	return err
}
