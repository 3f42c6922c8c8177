package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/sbilibin2017/updown/internal/middlewares"
	"github.com/sbilibin2017/updown/internal/models"
	"github.com/sbilibin2017/updown/internal/services"
)

//go:generate mockgen -source=sites.go -destination=sites_mock.go -package=handlers

// SiteLister lists a user's sites.
type SiteLister interface {
	ListSites(ctx context.Context, userID uuid.UUID) ([]models.SiteDB, error)
}

// SiteAdder registers a site for a user.
type SiteAdder interface {
	AddSite(ctx context.Context, userID uuid.UUID, rawURL string, name *string) (*models.SiteDB, error)
}

// SiteGetter returns a user's site with its status history.
type SiteGetter interface {
	GetSite(ctx context.Context, userID, siteID uuid.UUID) (*models.SiteDB, []models.StatusObservation, error)
}

// SiteRemover deletes a user's site.
type SiteRemover interface {
	RemoveSite(ctx context.Context, userID, siteID uuid.UUID) error
}

// AddSiteRequest represents the JSON body for adding a site
// swagger:model AddSiteRequest
type AddSiteRequest struct {
	// URL to monitor
	// required: true
	// default: https://example.com
	URL string `json:"url" validate:"required"`

	// Optional display name
	// default: Example
	Name *string `json:"name,omitempty" validate:"omitempty,max=255"`
}

// SitesResponse lists the user's sites
// swagger:model SitesResponse
type SitesResponse struct {
	Sites []models.SiteDB `json:"sites"`
}

// SiteResponse is a single site
// swagger:model SiteResponse
type SiteResponse struct {
	Site models.SiteDB `json:"site"`
}

// SiteDetailResponse is a site with every distinct status observed for it,
// most recent first
// swagger:model SiteDetailResponse
type SiteDetailResponse struct {
	Site         models.SiteDB              `json:"site"`
	Current      *models.StatusObservation  `json:"current"`
	Observations []models.StatusObservation `json:"observations"`
}

// NewListSitesHandler returns an HTTP handler listing the caller's sites.
// @Summary List sites
// @Tags sites
// @Produce json
// @Success 200 {object} handlers.SitesResponse
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Security CookieAuth
// @Router /api/sites [get]
func NewListSitesHandler(svc SiteLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := middlewares.UserIDFromContext(r.Context())
		if !ok {
			writeError(w, http.StatusUnauthorized, "Unauthorized")
			return
		}

		sites, err := svc.ListSites(r.Context(), userID)
		if err != nil {
			writeInternalError(w, err)
			return
		}
		if sites == nil {
			sites = []models.SiteDB{}
		}
		writeJSON(w, http.StatusOK, SitesResponse{Sites: sites})
	}
}

// NewAddSiteHandler returns an HTTP handler registering a site for the caller.
// @Summary Add site
// @Tags sites
// @Accept json
// @Produce json
// @Param addSiteRequest body handlers.AddSiteRequest true "Site"
// @Success 201 {object} handlers.SiteResponse
// @Failure 400 {object} handlers.ErrorResponse "Invalid request body or URL"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Failure 409 {object} handlers.ErrorResponse "Site already registered"
// @Security CookieAuth
// @Router /api/sites [post]
func NewAddSiteHandler(svc SiteAdder) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := middlewares.UserIDFromContext(r.Context())
		if !ok {
			writeError(w, http.StatusUnauthorized, "Unauthorized")
			return
		}

		req, err := decodeValid[AddSiteRequest](r)
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}

		site, err := svc.AddSite(r.Context(), userID, req.URL, req.Name)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrInvalidURL):
				writeError(w, http.StatusBadRequest, "Invalid URL")
			case errors.Is(err, services.ErrDuplicateURL):
				writeError(w, http.StatusConflict, "Site already registered")
			default:
				writeInternalError(w, err)
			}
			return
		}
		writeJSON(w, http.StatusCreated, SiteResponse{Site: *site})
	}
}

// NewGetSiteHandler returns an HTTP handler showing one of the caller's sites.
// @Summary Get site
// @Tags sites
// @Produce json
// @Param id path string true "Site ID"
// @Success 200 {object} handlers.SiteDetailResponse
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Failure 404 {object} handlers.ErrorResponse "Site not found"
// @Security CookieAuth
// @Router /api/sites/{id} [get]
func NewGetSiteHandler(svc SiteGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, siteID, ok := siteRequest(w, r)
		if !ok {
			return
		}

		site, observations, err := svc.GetSite(r.Context(), userID, siteID)
		if err != nil {
			if errors.Is(err, services.ErrNotOwner) {
				writeError(w, http.StatusNotFound, "Site not found")
				return
			}
			writeInternalError(w, err)
			return
		}

		// observations arrive most recent first
		resp := SiteDetailResponse{Site: *site, Observations: observations}
		if len(resp.Observations) > 0 {
			resp.Current = &resp.Observations[0]
		} else {
			resp.Observations = []models.StatusObservation{}
		}
		writeJSON(w, http.StatusOK, resp)
	}
}

// NewDeleteSiteHandler returns an HTTP handler removing one of the caller's sites.
// @Summary Remove site
// @Tags sites
// @Param id path string true "Site ID"
// @Success 204 "Removed"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Failure 404 {object} handlers.ErrorResponse "Site not found"
// @Security CookieAuth
// @Router /api/sites/{id} [delete]
func NewDeleteSiteHandler(svc SiteRemover) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, siteID, ok := siteRequest(w, r)
		if !ok {
			return
		}

		if err := svc.RemoveSite(r.Context(), userID, siteID); err != nil {
			if errors.Is(err, services.ErrNotOwner) {
				writeError(w, http.StatusNotFound, "Site not found")
				return
			}
			writeInternalError(w, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

// siteRequest extracts the caller and the {id} path parameter. Malformed ids
// are reported as not found.
func siteRequest(w http.ResponseWriter, r *http.Request) (userID, siteID uuid.UUID, ok bool) {
	userID, ok = middlewares.UserIDFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "Unauthorized")
		return uuid.Nil, uuid.Nil, false
	}

	siteID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusNotFound, "Site not found")
		return uuid.Nil, uuid.Nil, false
	}
	return userID, siteID, true
}
