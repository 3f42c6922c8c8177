package models

import (
	"time"

	"github.com/google/uuid"
)

// Probe failure sentinels. They share the status_code column with real HTTP
// codes (100-599), so "unreachable" is tracked and deduplicated like any status.
const (
	StatusTimeout         = -1
	StatusDNSError        = -2
	StatusTLSError        = -3
	StatusConnRefused     = -4
	StatusConnectionError = -5
	StatusInvalidRequest  = -6
)

var sentinelNames = map[int]string{
	StatusTimeout:         "timeout",
	StatusDNSError:        "dns_error",
	StatusTLSError:        "tls_error",
	StatusConnRefused:     "connection_refused",
	StatusConnectionError: "connection_error",
	StatusInvalidRequest:  "invalid_request",
}

// IsSentinel reports whether code encodes a probe failure rather than an HTTP status.
func IsSentinel(code int) bool {
	_, ok := sentinelNames[code]
	return ok
}

// StatusName returns a short label for a status code: the sentinel name,
// "up" for 1xx-3xx responses or "http_error" for 4xx/5xx.
func StatusName(code int) string {
	if name, ok := sentinelNames[code]; ok {
		return name
	}
	if code >= 100 && code < 400 {
		return "up"
	}
	return "http_error"
}

// StatusObservation is one distinct (site, status_code) pair with first and
// last seen timestamps.
type StatusObservation struct {
	ID         int64     `json:"-" db:"id"`
	SiteID     uuid.UUID `json:"site_id" db:"site_id"`
	StatusCode int       `json:"status_code" db:"status_code"`
	CreatedAt  time.Time `json:"created_at" db:"created_at"`
	UpdatedAt  time.Time `json:"updated_at" db:"updated_at"`
}

// Label is StatusName of the observation's code.
func (o StatusObservation) Label() string {
	return StatusName(o.StatusCode)
}

// Transition classifies a ledger write.
type Transition int

const (
	// TransitionNone means nothing was written because the site no longer exists.
	TransitionNone Transition = iota
	// TransitionRepeat means the status was already the current one.
	TransitionRepeat
	// TransitionNew means the status had never been seen for this site.
	TransitionNew
	// TransitionChanged means the status was seen before but was not current.
	TransitionChanged
)

// Changed reports whether the write moved the site's current status.
func (t Transition) Changed() bool {
	return t == TransitionNew || t == TransitionChanged
}

func (t Transition) String() string {
	switch t {
	case TransitionRepeat:
		return "repeat"
	case TransitionNew:
		return "new"
	case TransitionChanged:
		return "changed"
	default:
		return "none"
	}
}
