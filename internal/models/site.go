package models

import (
	"time"

	"github.com/google/uuid"
)

// SiteDB represents a monitored site. (url, user_id) is unique.
type SiteDB struct {
	SiteID    uuid.UUID `json:"id" db:"id"`
	UserID    uuid.UUID `json:"user_id" db:"user_id"`
	URL       string    `json:"url" db:"url"`
	Name      *string   `json:"name,omitempty" db:"name"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}

// SiteStatus pairs a site with its current status. Status is nil until the
// first probe has been recorded.
type SiteStatus struct {
	Site   SiteDB             `json:"site"`
	Status *StatusObservation `json:"status"`
}
