// Package publishers delivers domain events to the in-process broadcaster and
// status transitions to the message broker.
package publishers

import (
	"context"

	"github.com/sbilibin2017/updown/internal/logger"
	"github.com/sbilibin2017/updown/internal/models"
)

// ChannelPublisher hands events to a single consumer over a buffered channel.
type ChannelPublisher struct {
	ch chan models.Event
}

// NewChannelPublisher creates a publisher whose channel holds up to buffer events.
func NewChannelPublisher(buffer int) *ChannelPublisher {
	return &ChannelPublisher{ch: make(chan models.Event, buffer)}
}

// Publish blocks until the event is queued or ctx is done.
func (p *ChannelPublisher) Publish(ctx context.Context, event models.Event) {
	select {
	case p.ch <- event:
	case <-ctx.Done():
		logger.Log.Warnw("event dropped", "type", event.Type, "site_id", event.SiteID, "err", ctx.Err())
	}
}

// Events is the consumer side of the publisher.
func (p *ChannelPublisher) Events() <-chan models.Event {
	return p.ch
}

// NopPublisher discards events. Used when no dashboard is served.
type NopPublisher struct{}

func (NopPublisher) Publish(context.Context, models.Event) {}
