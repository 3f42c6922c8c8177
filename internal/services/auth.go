package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/sbilibin2017/updown/internal/logger"
	"github.com/sbilibin2017/updown/internal/models"
	"github.com/sbilibin2017/updown/internal/repositories"
)

//go:generate mockgen -source=auth.go -destination=auth_mock.go -package=services

// UserReader defines read-only operations for users.
type UserReader interface {
	GetByLoginCodeHash(ctx context.Context, hash string) (*models.UserDB, error)
}

// UserWriter defines write operations for users.
type UserWriter interface {
	Save(ctx context.Context, user *models.UserDB) error
	SetLoginCodeHash(ctx context.Context, userID uuid.UUID, hash string) error
}

// SessionReader looks sessions up by secret digest.
type SessionReader interface {
	GetByTokenHash(ctx context.Context, hash string) (*models.SessionDB, error)
}

// SessionWriter defines write operations for sessions.
type SessionWriter interface {
	Save(ctx context.Context, s *models.SessionDB) error
	DeleteByTokenHash(ctx context.Context, hash string) error
	DeleteExpired(ctx context.Context, now time.Time) (int64, error)
}

// SessionCache is an optional read-through cache of resolved sessions.
// Set must not overwrite an existing entry and Get must report a revoked
// session as repositories.ErrRevoked.
type SessionCache interface {
	Get(ctx context.Context, hash string) (uuid.UUID, error)
	Set(ctx context.Context, hash string, userID uuid.UUID, expiresAt time.Time) error
	Revoke(ctx context.Context, hash string) error
}

// Tokener wraps session ids into signed tokens and back.
type Tokener interface {
	Generate(ctx context.Context, sid string) (string, time.Time, error)
	GetSessionID(ctx context.Context, token string) (string, error)
}

// TxRunner runs fn inside one database transaction.
type TxRunner interface {
	WithinTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// SiteTracker starts monitoring a committed site.
type SiteTracker interface {
	Track(ctx context.Context, site models.SiteDB)
}

// AuthService issues login codes and sessions and resolves tokens to users.
type AuthService struct {
	users       UserReader
	userWriter  UserWriter
	sessions    SessionReader
	sessWriter  SessionWriter
	cache       SessionCache
	tokener     Tokener
	tx          TxRunner
	siteWriter  SiteWriter
	siteTracker SiteTracker
	now         func() time.Time
}

// NewAuthService creates a new AuthService instance. cache may be nil.
func NewAuthService(
	users UserReader,
	userWriter UserWriter,
	sessions SessionReader,
	sessWriter SessionWriter,
	cache SessionCache,
	tokener Tokener,
	tx TxRunner,
	siteWriter SiteWriter,
	siteTracker SiteTracker,
) *AuthService {
	return &AuthService{
		users:       users,
		userWriter:  userWriter,
		sessions:    sessions,
		sessWriter:  sessWriter,
		cache:       cache,
		tokener:     tokener,
		tx:          tx,
		siteWriter:  siteWriter,
		siteTracker: siteTracker,
		now:         time.Now,
	}
}

// IssueLoginCode replaces the user's login code and returns the new one.
// The previous code stops working.
func (svc *AuthService) IssueLoginCode(ctx context.Context, userID uuid.UUID) (string, error) {
	code, hash, err := svc.newLoginCode()
	if err != nil {
		return "", err
	}

	if err := svc.userWriter.SetLoginCodeHash(ctx, userID, hash); err != nil {
		logger.Log.Errorw("failed to store login code", "user_id", userID, "err", err)
		return "", err
	}
	return code, nil
}

// Authenticate exchanges a login code for a new session. Malformed codes are
// rejected without touching the store. The code stays valid after use.
func (svc *AuthService) Authenticate(ctx context.Context, code string) (*models.Session, error) {
	if !ValidLoginCode(code) {
		return nil, ErrUnauthorized
	}

	user, err := svc.users.GetByLoginCodeHash(ctx, digest(code))
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrUnauthorized
		}
		logger.Log.Errorw("failed to look up login code", "err", err)
		return nil, err
	}

	return svc.startSession(ctx, user.UserID)
}

// CreateAccount creates a user, their first site, a login code and a session
// in one transaction. The site is handed to the tracker after commit.
func (svc *AuthService) CreateAccount(ctx context.Context, rawURL string, username *string) (*models.Account, error) {
	siteURL, err := ValidateSiteURL(rawURL)
	if err != nil {
		return nil, err
	}

	code, hash, err := svc.newLoginCode()
	if err != nil {
		return nil, err
	}

	userID := uuid.New()
	user := models.UserDB{
		UserID:        userID,
		Username:      defaultUsername(userID),
		LoginCodeHash: hash,
	}
	if username != nil && *username != "" {
		user.Username = *username
	}
	site := models.SiteDB{
		SiteID: uuid.New(),
		UserID: userID,
		URL:    siteURL,
	}

	var session *models.Session
	err = svc.tx.WithinTx(ctx, func(ctx context.Context) error {
		if err := svc.userWriter.Save(ctx, &user); err != nil {
			if errors.Is(err, repositories.ErrConflict) {
				return ErrUsernameTaken
			}
			return fmt.Errorf("save user: %w", err)
		}
		if err := svc.siteWriter.Save(ctx, &site); err != nil {
			if errors.Is(err, repositories.ErrConflict) {
				return ErrDuplicateURL
			}
			return fmt.Errorf("save site: %w", err)
		}
		var err error
		session, err = svc.startSession(ctx, userID)
		return err
	})
	if err != nil {
		if !errors.Is(err, ErrUsernameTaken) && !errors.Is(err, ErrDuplicateURL) {
			logger.Log.Errorw("failed to create account", "err", err)
		}
		return nil, err
	}

	svc.siteTracker.Track(ctx, site)

	return &models.Account{
		User:      user,
		Site:      site,
		LoginCode: code,
		Session:   *session,
	}, nil
}

// Resolve maps a session token to its user. Malformed, unknown and expired
// tokens all yield ErrUnauthorized.
func (svc *AuthService) Resolve(ctx context.Context, token string) (uuid.UUID, error) {
	sid, err := svc.tokener.GetSessionID(ctx, token)
	if err != nil {
		return uuid.Nil, ErrUnauthorized
	}
	hash := digest(sid)

	if svc.cache != nil {
		userID, err := svc.cache.Get(ctx, hash)
		if err == nil {
			return userID, nil
		}
		if errors.Is(err, repositories.ErrRevoked) {
			return uuid.Nil, ErrUnauthorized
		}
		if !errors.Is(err, repositories.ErrNotFound) {
			logger.Log.Warnw("session cache unavailable", "err", err)
		}
	}

	s, err := svc.sessions.GetByTokenHash(ctx, hash)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return uuid.Nil, ErrUnauthorized
		}
		logger.Log.Errorw("failed to look up session", "err", err)
		return uuid.Nil, err
	}
	if s.Expired(svc.now()) {
		return uuid.Nil, ErrUnauthorized
	}

	if svc.cache != nil {
		if err := svc.cache.Set(ctx, hash, s.UserID, s.ExpiresAt); err != nil {
			logger.Log.Warnw("failed to cache session", "err", err)
		}
	}
	return s.UserID, nil
}

// EndSession revokes the session behind token. Tokens that do not parse are
// ignored. The row goes first so a concurrent Resolve that already read it
// can only cache an owner the revocation marker then replaces.
func (svc *AuthService) EndSession(ctx context.Context, token string) error {
	sid, err := svc.tokener.GetSessionID(ctx, token)
	if err != nil {
		return nil
	}
	hash := digest(sid)

	if err := svc.sessWriter.DeleteByTokenHash(ctx, hash); err != nil {
		logger.Log.Errorw("failed to delete session", "err", err)
		return err
	}
	if svc.cache != nil {
		if err := svc.cache.Revoke(ctx, hash); err != nil {
			logger.Log.Warnw("failed to revoke cached session", "err", err)
		}
	}
	return nil
}

// PurgeExpiredSessions deletes expired sessions and reports how many.
func (svc *AuthService) PurgeExpiredSessions(ctx context.Context) (int64, error) {
	n, err := svc.sessWriter.DeleteExpired(ctx, svc.now())
	if err != nil {
		logger.Log.Errorw("failed to purge sessions", "err", err)
		return 0, err
	}
	return n, nil
}

func (svc *AuthService) startSession(ctx context.Context, userID uuid.UUID) (*models.Session, error) {
	sid, err := generateSessionSecret()
	if err != nil {
		return nil, err
	}

	token, expiresAt, err := svc.tokener.Generate(ctx, sid)
	if err != nil {
		logger.Log.Errorw("failed to sign session token", "err", err)
		return nil, err
	}

	s := &models.SessionDB{
		SessionID: uuid.New(),
		UserID:    userID,
		TokenHash: digest(sid),
		CreatedAt: svc.now(),
		ExpiresAt: expiresAt,
	}
	if err := svc.sessWriter.Save(ctx, s); err != nil {
		logger.Log.Errorw("failed to save session", "user_id", userID, "err", err)
		return nil, err
	}

	return &models.Session{Token: token, UserID: userID, ExpiresAt: expiresAt}, nil
}

func (svc *AuthService) newLoginCode() (code, hash string, err error) {
	code, err = generateLoginCode()
	if err != nil {
		logger.Log.Errorw("failed to generate login code", "err", err)
		return "", "", err
	}
	return code, digest(code), nil
}

func defaultUsername(userID uuid.UUID) string {
	return "user-" + userID.String()[:8]
}
