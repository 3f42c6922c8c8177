package models

import (
	"time"

	"github.com/google/uuid"
)

// EventType names what a live dashboard event carries.
type EventType string

const (
	EventSnapshot    EventType = "snapshot"
	EventSiteAdded   EventType = "site_added"
	EventSiteRemoved EventType = "site_removed"
	EventStatus      EventType = "status"
)

// Event is delivered to the dashboard connections of UserID only.
type Event struct {
	Type       EventType          `json:"type"`
	UserID     uuid.UUID          `json:"-"`
	SiteID     uuid.UUID          `json:"site_id,omitempty"`
	Site       *SiteDB            `json:"site,omitempty"`
	Status     *StatusObservation `json:"status,omitempty"`
	Snapshot   []SiteStatus       `json:"snapshot,omitempty"`
	OccurredAt time.Time          `json:"occurred_at"`
}

// TransitionRecord is the record exported to the message broker when a site's
// current status moves.
type TransitionRecord struct {
	SiteID     string    `json:"site_id"`
	UserID     string    `json:"user_id"`
	URL        string    `json:"url"`
	StatusCode int       `json:"status_code"`
	Status     string    `json:"status"`
	Kind       string    `json:"kind"`
	ObservedAt time.Time `json:"observed_at"`
}
