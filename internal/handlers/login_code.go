package handlers

import (
	"context"
	"net/http"

	"github.com/google/uuid"
	"github.com/sbilibin2017/updown/internal/middlewares"
)

//go:generate mockgen -source=login_code.go -destination=login_code_mock.go -package=handlers

// LoginCodeIssuer rotates a user's login code.
type LoginCodeIssuer interface {
	IssueLoginCode(ctx context.Context, userID uuid.UUID) (string, error)
}

// LoginCodeResponse carries a freshly issued login code
// swagger:model LoginCodeResponse
type LoginCodeResponse struct {
	// New login code; the previous one stops working
	// default: V1StGXR8_Z5jdHi6B-myT
	LoginCode string `json:"login_code"`
}

// NewLoginCodeHandler returns an HTTP handler issuing a fresh login code.
// @Summary Rotate login code
// @Tags auth
// @Produce json
// @Success 200 {object} handlers.LoginCodeResponse
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Security CookieAuth
// @Router /api/login-code [post]
func NewLoginCodeHandler(svc LoginCodeIssuer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := middlewares.UserIDFromContext(r.Context())
		if !ok {
			writeError(w, http.StatusUnauthorized, "Unauthorized")
			return
		}

		code, err := svc.IssueLoginCode(r.Context(), userID)
		if err != nil {
			writeInternalError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, LoginCodeResponse{LoginCode: code})
	}
}
