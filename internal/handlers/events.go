package handlers

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/sbilibin2017/updown/internal/broadcaster"
	"github.com/sbilibin2017/updown/internal/logger"
	"github.com/sbilibin2017/updown/internal/middlewares"
)

// DefaultHeartbeat is how often an idle event stream sends a comment line.
const DefaultHeartbeat = 15 * time.Second

// Subscriber opens and closes live event subscriptions.
type Subscriber interface {
	Subscribe(ctx context.Context, userID uuid.UUID) (*broadcaster.Subscription, error)
	Unsubscribe(sub *broadcaster.Subscription)
}

// NewEventsHandler returns an HTTP handler streaming the caller's dashboard
// events as Server-Sent Events. The first event is always a snapshot.
// @Summary Live events
// @Description Server-Sent Events stream: a snapshot, then site and status events
// @Tags sites
// @Produce text/event-stream
// @Success 200 {string} string "event stream"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Security CookieAuth
// @Router /api/events [get]
func NewEventsHandler(b Subscriber, heartbeat time.Duration) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		userID, ok := middlewares.UserIDFromContext(ctx)
		if !ok {
			writeError(w, http.StatusUnauthorized, "Unauthorized")
			return
		}

		sub, err := b.Subscribe(ctx, userID)
		if err != nil {
			writeInternalError(w, err)
			return
		}
		defer b.Unsubscribe(sub)

		rc := http.NewResponseController(w)
		w.Header().Set("Content-Type", "text/event-stream")
		w.Header().Set("Cache-Control", "no-cache")
		w.Header().Set("Connection", "keep-alive")
		w.Header().Set("X-Accel-Buffering", "no")
		w.WriteHeader(http.StatusOK)
		if err := rc.Flush(); err != nil {
			logger.Log.Warnw("event stream cannot be flushed", "user_id", userID, "err", err)
			return
		}

		ticker := time.NewTicker(heartbeat)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				if _, err := fmt.Fprint(w, ": ping\n\n"); err != nil {
					return
				}
			case event, ok := <-sub.Events():
				if !ok {
					// dropped by the broadcaster; the client reconnects for a fresh snapshot
					return
				}
				data, err := json.Marshal(event)
				if err != nil {
					logger.Log.Errorw("failed to encode event", "type", event.Type, "err", err)
					continue
				}
				if _, err := fmt.Fprintf(w, "event: %s\ndata: %s\n\n", event.Type, data); err != nil {
					return
				}
			}
			if err := rc.Flush(); err != nil {
				return
			}
		}
	}
}
