package repositories

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/sbilibin2017/updown/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionWriteRepository_Save(t *testing.T) {
	db, mock := newMockDB(t)
	s := &models.SessionDB{
		SessionID: uuid.New(),
		UserID:    uuid.New(),
		TokenHash: "hash",
		CreatedAt: time.Now(),
		ExpiresAt: time.Now().Add(time.Hour),
	}

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO sessions")).
		WithArgs(s.SessionID, s.UserID, s.TokenHash, s.CreatedAt, s.ExpiresAt).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := NewSessionWriteRepository(db, GetTxFromContext).Save(context.Background(), s)
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSessionWriteRepository_SaveInsideTx(t *testing.T) {
	db, mock := newMockDB(t)
	s := &models.SessionDB{SessionID: uuid.New(), UserID: uuid.New(), TokenHash: "hash"}

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO sessions")).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectRollback()

	repo := NewSessionWriteRepository(db, GetTxFromContext)
	err := NewTxRunner(db).WithinTx(context.Background(), func(ctx context.Context) error {
		if err := repo.Save(ctx, s); err != nil {
			return err
		}
		return assert.AnError
	})

	assert.ErrorIs(t, err, assert.AnError)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSessionWriteRepository_DeleteByTokenHash(t *testing.T) {
	for _, affected := range []int64{0, 1} {
		db, mock := newMockDB(t)
		mock.ExpectExec(regexp.QuoteMeta("DELETE FROM sessions WHERE token_hash = $1")).
			WithArgs("hash").
			WillReturnResult(sqlmock.NewResult(0, affected))

		err := NewSessionWriteRepository(db, nil).DeleteByTokenHash(context.Background(), "hash")
		assert.NoError(t, err, "deleting %d rows", affected)
	}
}

func TestSessionWriteRepository_DeleteExpired(t *testing.T) {
	db, mock := newMockDB(t)
	now := time.Now()
	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM sessions WHERE expires_at <= $1")).
		WithArgs(now).
		WillReturnResult(sqlmock.NewResult(0, 3))

	n, err := NewSessionWriteRepository(db, nil).DeleteExpired(context.Background(), now)
	require.NoError(t, err)
	assert.Equal(t, int64(3), n)
}

func TestSessionReadRepository_GetByTokenHash(t *testing.T) {
	cols := []string{"id", "user_id", "token_hash", "created_at", "expires_at"}
	sessionID, userID := uuid.New(), uuid.New()
	now := time.Now()

	t.Run("found", func(t *testing.T) {
		db, mock := newMockDB(t)
		mock.ExpectQuery(regexp.QuoteMeta("FROM sessions")).
			WithArgs("hash").
			WillReturnRows(sqlmock.NewRows(cols).AddRow(sessionID.String(), userID.String(), "hash", now, now.Add(time.Hour)))

		s, err := NewSessionReadRepository(db).GetByTokenHash(context.Background(), "hash")
		require.NoError(t, err)
		assert.Equal(t, userID, s.UserID)
		assert.False(t, s.Expired(now))
		assert.True(t, s.Expired(now.Add(time.Hour)))
	})

	t.Run("not found", func(t *testing.T) {
		db, mock := newMockDB(t)
		mock.ExpectQuery(regexp.QuoteMeta("FROM sessions")).
			WillReturnRows(sqlmock.NewRows(cols))

		s, err := NewSessionReadRepository(db).GetByTokenHash(context.Background(), "hash")
		assert.ErrorIs(t, err, ErrNotFound)
		assert.Nil(t, s)
	})
}
