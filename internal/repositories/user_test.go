package repositories

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/sbilibin2017/updown/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserWriteRepository_Save(t *testing.T) {
	now := time.Now()

	tests := []struct {
		name    string
		dbErr   error
		wantErr error
	}{
		{name: "inserted"},
		{name: "duplicate username", dbErr: &pgconn.PgError{Code: "23505"}, wantErr: ErrConflict},
		{name: "db error", dbErr: errors.New("db down")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock := newMockDB(t)
			user := &models.UserDB{UserID: uuid.New(), Username: "alice", LoginCodeHash: "hash"}

			exp := mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO users")).
				WithArgs(user.UserID, "alice", "hash")
			if tt.dbErr != nil {
				exp.WillReturnError(tt.dbErr)
			} else {
				exp.WillReturnRows(sqlmock.NewRows([]string{"created_at", "updated_at"}).AddRow(now, now))
			}

			err := NewUserWriteRepository(db, GetTxFromContext).Save(context.Background(), user)
			switch {
			case tt.wantErr != nil:
				assert.ErrorIs(t, err, tt.wantErr)
			case tt.dbErr != nil:
				assert.Error(t, err)
			default:
				require.NoError(t, err)
				assert.Equal(t, now, user.CreatedAt)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestUserWriteRepository_SetLoginCodeHash(t *testing.T) {
	userID := uuid.New()

	t.Run("updated", func(t *testing.T) {
		db, mock := newMockDB(t)
		mock.ExpectExec(regexp.QuoteMeta("UPDATE users")).
			WithArgs(userID, "new").
			WillReturnResult(sqlmock.NewResult(0, 1))

		err := NewUserWriteRepository(db, nil).SetLoginCodeHash(context.Background(), userID, "new")
		assert.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("unknown user", func(t *testing.T) {
		db, mock := newMockDB(t)
		mock.ExpectExec(regexp.QuoteMeta("UPDATE users")).
			WithArgs(userID, "new").
			WillReturnResult(sqlmock.NewResult(0, 0))

		err := NewUserWriteRepository(db, nil).SetLoginCodeHash(context.Background(), userID, "new")
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("digest collision", func(t *testing.T) {
		db, mock := newMockDB(t)
		mock.ExpectExec(regexp.QuoteMeta("UPDATE users")).
			WillReturnError(&pgconn.PgError{Code: "23505"})

		err := NewUserWriteRepository(db, nil).SetLoginCodeHash(context.Background(), userID, "new")
		assert.ErrorIs(t, err, ErrConflict)
	})
}

func TestUserReadRepository_GetByLoginCodeHash(t *testing.T) {
	userID := uuid.New()
	now := time.Now()
	cols := []string{"id", "username", "login_code_hash", "created_at", "updated_at"}

	t.Run("found", func(t *testing.T) {
		db, mock := newMockDB(t)
		mock.ExpectQuery(regexp.QuoteMeta("FROM users")).
			WithArgs("hash").
			WillReturnRows(sqlmock.NewRows(cols).AddRow(userID.String(), "alice", "hash", now, now))

		user, err := NewUserReadRepository(db, nil).GetByLoginCodeHash(context.Background(), "hash")
		require.NoError(t, err)
		assert.Equal(t, userID, user.UserID)
		assert.Equal(t, "alice", user.Username)
	})

	t.Run("not found", func(t *testing.T) {
		db, mock := newMockDB(t)
		mock.ExpectQuery(regexp.QuoteMeta("FROM users")).
			WithArgs("missing").
			WillReturnRows(sqlmock.NewRows(cols))

		user, err := NewUserReadRepository(db, nil).GetByLoginCodeHash(context.Background(), "missing")
		assert.ErrorIs(t, err, ErrNotFound)
		assert.Nil(t, user)
	})
}
