package handlers

import (
	"context"
	"net/http"

	"github.com/sbilibin2017/updown/internal/logger"
)

//go:generate mockgen -source=logout.go -destination=logout_mock.go -package=handlers

// Tokener extracts the raw session token from a request.
type Tokener interface {
	GetTokenFromRequest(ctx context.Context, r *http.Request) (string, error)
}

// SessionEnder revokes sessions.
type SessionEnder interface {
	EndSession(ctx context.Context, token string) error
}

// NewLogoutHandler returns an HTTP handler ending the caller's session.
// @Summary Log out
// @Description Revoke the current session and clear the cookie
// @Tags auth
// @Success 204 "Logged out"
// @Router /api/logout [post]
func NewLogoutHandler(tokener Tokener, svc SessionEnder, secureCookie bool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if token, err := tokener.GetTokenFromRequest(r.Context(), r); err == nil {
			if err := svc.EndSession(r.Context(), token); err != nil {
				logger.Log.Errorw("failed to end session", "err", err)
			}
		}

		clearSessionCookie(w, secureCookie)
		w.WriteHeader(http.StatusNoContent)
	}
}
