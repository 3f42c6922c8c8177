package handlers

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/sbilibin2017/updown/internal/models"
	"github.com/sbilibin2017/updown/internal/services"
)

//go:generate mockgen -source=signup.go -destination=signup_mock.go -package=handlers

// AccountCreator defines the interface that the signup service must implement.
type AccountCreator interface {
	CreateAccount(ctx context.Context, rawURL string, username *string) (*models.Account, error)
}

// SignupRequest represents the JSON body for signup
// swagger:model SignupRequest
type SignupRequest struct {
	// First site to monitor
	// required: true
	// default: https://example.com
	URL string `json:"url" validate:"required"`

	// Optional username, generated when omitted
	// default: john_doe
	Username *string `json:"username,omitempty" validate:"omitempty,min=1,max=64"`
}

// SignupResponse is returned after a successful signup. The login code is
// shown only here.
// swagger:model SignupResponse
type SignupResponse struct {
	User      models.UserDB `json:"user"`
	Site      models.SiteDB `json:"site"`
	LoginCode string        `json:"login_code"`
	Token     string        `json:"token"`
	ExpiresAt time.Time     `json:"expires_at"`
}

// NewSignupHandler returns an HTTP handler creating an account with its first site.
// @Summary Sign up
// @Description Create a user with a first monitored site and start a session
// @Tags auth
// @Accept json
// @Produce json
// @Param signupRequest body handlers.SignupRequest true "Signup Request"
// @Success 201 {object} handlers.SignupResponse "Account created"
// @Failure 400 {object} handlers.ErrorResponse "Invalid request body or URL"
// @Failure 409 {object} handlers.ErrorResponse "Username already exists"
// @Router /api/signup [post]
func NewSignupHandler(svc AccountCreator, secureCookie bool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		req, err := decodeValid[SignupRequest](r)
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}

		account, err := svc.CreateAccount(r.Context(), req.URL, req.Username)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrInvalidURL):
				writeError(w, http.StatusBadRequest, "Invalid URL")
			case errors.Is(err, services.ErrUsernameTaken):
				writeError(w, http.StatusConflict, "Username already exists")
			case errors.Is(err, services.ErrDuplicateURL):
				writeError(w, http.StatusConflict, "Site already registered")
			default:
				writeInternalError(w, err)
			}
			return
		}

		setSessionCookie(w, account.Session.Token, account.Session.ExpiresAt, secureCookie)
		writeJSON(w, http.StatusCreated, SignupResponse{
			User:      account.User,
			Site:      account.Site,
			LoginCode: account.LoginCode,
			Token:     account.Session.Token,
			ExpiresAt: account.Session.ExpiresAt,
		})
	}
}
