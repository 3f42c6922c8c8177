package repositories

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

func TestSessionCacheRepository(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping container test in short mode")
	}
	ctx := context.Background()

	// Start Redis container
	req := testcontainers.ContainerRequest{
		Image:        "redis:7.0-alpine",
		ExposedPorts: []string{"6379/tcp"},
		WaitingFor:   wait.ForListeningPort("6379/tcp"),
	}
	redisC, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	require.NoError(t, err)
	defer redisC.Terminate(ctx)

	host, err := redisC.Host(ctx)
	require.NoError(t, err)
	port, err := redisC.MappedPort(ctx, "6379")
	require.NoError(t, err)

	rdb := redis.NewClient(&redis.Options{
		Addr: fmt.Sprintf("%s:%s", host, port.Port()),
	})
	defer rdb.Close()
	require.NoError(t, rdb.Ping(ctx).Err())

	repo := NewSessionCacheRepository(rdb, 2*time.Second)

	t.Run("set and get", func(t *testing.T) {
		userID := uuid.New()
		require.NoError(t, repo.Set(ctx, "h1", userID, time.Now().Add(time.Hour)))

		got, err := repo.Get(ctx, "h1")
		require.NoError(t, err)
		assert.Equal(t, userID, got)
	})

	t.Run("miss", func(t *testing.T) {
		_, err := repo.Get(ctx, "unknown")
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("expired session is not cached", func(t *testing.T) {
		require.NoError(t, repo.Set(ctx, "h2", uuid.New(), time.Now().Add(-time.Second)))
		_, err := repo.Get(ctx, "h2")
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("entry lives no longer than the bound", func(t *testing.T) {
		require.NoError(t, repo.Set(ctx, "h3", uuid.New(), time.Now().Add(time.Hour)))
		time.Sleep(3 * time.Second)
		_, err := repo.Get(ctx, "h3")
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("revoke replaces a cached entry", func(t *testing.T) {
		require.NoError(t, repo.Set(ctx, "h4", uuid.New(), time.Now().Add(time.Hour)))
		require.NoError(t, repo.Revoke(ctx, "h4"))
		_, err := repo.Get(ctx, "h4")
		assert.ErrorIs(t, err, ErrRevoked)
	})

	t.Run("set after revoke keeps the marker", func(t *testing.T) {
		require.NoError(t, repo.Revoke(ctx, "h5"))
		require.NoError(t, repo.Set(ctx, "h5", uuid.New(), time.Now().Add(time.Hour)))
		_, err := repo.Get(ctx, "h5")
		assert.ErrorIs(t, err, ErrRevoked)
	})

	t.Run("set does not overwrite a live entry", func(t *testing.T) {
		first := uuid.New()
		require.NoError(t, repo.Set(ctx, "h6", first, time.Now().Add(time.Hour)))
		require.NoError(t, repo.Set(ctx, "h6", uuid.New(), time.Now().Add(time.Hour)))
		got, err := repo.Get(ctx, "h6")
		require.NoError(t, err)
		assert.Equal(t, first, got)
	})
}
