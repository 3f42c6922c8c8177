package handlers

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/sbilibin2017/updown/internal/models"
	"github.com/sbilibin2017/updown/internal/services"
)

//go:generate mockgen -source=login.go -destination=login_mock.go -package=handlers

// Authenticator defines the interface that the login service must implement.
type Authenticator interface {
	Authenticate(ctx context.Context, code string) (*models.Session, error)
}

// LoginRequest represents the JSON body for login
// swagger:model LoginRequest
type LoginRequest struct {
	// Login code issued at signup
	// required: true
	// default: V1StGXR8_Z5jdHi6B-myT
	LoginCode string `json:"login_code" validate:"required,len=21"`
}

// SessionResponse is returned after a successful login or signup
// swagger:model SessionResponse
type SessionResponse struct {
	// Session token, also set as the session cookie
	// default: JWT_TOKEN
	Token string `json:"token"`

	// Session expiry
	ExpiresAt time.Time `json:"expires_at"`
}

// NewLoginHandler returns an HTTP handler exchanging a login code for a session.
// @Summary Log in
// @Description Exchange a login code for a session cookie
// @Tags auth
// @Accept json
// @Produce json
// @Param loginRequest body handlers.LoginRequest true "Login Request"
// @Success 200 {object} handlers.SessionResponse "Session started"
// @Failure 400 {object} handlers.ErrorResponse "Invalid request body"
// @Failure 401 {object} handlers.ErrorResponse "Unknown login code"
// @Failure 429 {object} handlers.ErrorResponse "Too many requests"
// @Router /api/login [post]
func NewLoginHandler(svc Authenticator, secureCookie bool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		req, err := decodeValid[LoginRequest](r)
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}

		session, err := svc.Authenticate(r.Context(), req.LoginCode)
		if err != nil {
			if errors.Is(err, services.ErrUnauthorized) {
				writeError(w, http.StatusUnauthorized, "Unauthorized")
				return
			}
			writeInternalError(w, err)
			return
		}

		setSessionCookie(w, session.Token, session.ExpiresAt, secureCookie)
		writeJSON(w, http.StatusOK, SessionResponse{
			Token:     session.Token,
			ExpiresAt: session.ExpiresAt,
		})
	}
}
