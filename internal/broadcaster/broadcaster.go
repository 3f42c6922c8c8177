// Package broadcaster fans dashboard events out to the live connections of
// the user they belong to.
package broadcaster

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/sbilibin2017/updown/internal/logger"
	"github.com/sbilibin2017/updown/internal/metrics"
	"github.com/sbilibin2017/updown/internal/models"
)

// DefaultBuffer is the per-subscription event buffer.
const DefaultBuffer = 64

// Snapshotter produces a user's current view.
type Snapshotter interface {
	Snapshot(ctx context.Context, userID uuid.UUID) ([]models.SiteStatus, error)
}

// Subscription is one live connection. Its channel is closed on Unsubscribe,
// when the broadcaster stops, or when the subscriber falls a full buffer behind.
type Subscription struct {
	UserID uuid.UUID

	ch chan models.Event

	mu      sync.Mutex
	ready   bool
	pending []models.Event
	closed  bool
}

// Events returns the subscription's event stream. The first event is always
// a snapshot.
func (s *Subscription) Events() <-chan models.Event {
	return s.ch
}

// deliver reports false when the subscriber could not keep up and was closed.
func (s *Subscription) deliver(e models.Event) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return true
	}
	if !s.ready {
		if len(s.pending) >= cap(s.ch)-1 {
			s.closeLocked()
			return false
		}
		s.pending = append(s.pending, e)
		return true
	}

	select {
	case s.ch <- e:
		return true
	default:
		s.closeLocked()
		return false
	}
}

// start sends the snapshot followed by whatever arrived while it was built.
func (s *Subscription) start(snapshot models.Event) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return false
	}
	s.ch <- snapshot
	for _, e := range s.pending {
		select {
		case s.ch <- e:
		default:
			s.closeLocked()
			return false
		}
	}
	s.pending = nil
	s.ready = true
	return true
}

func (s *Subscription) close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.closeLocked()
}

func (s *Subscription) closeLocked() {
	if s.closed {
		return
	}
	s.closed = true
	s.pending = nil
	close(s.ch)
}

// Broadcaster keeps the subscriptions of each user. Its mutex guards only the
// subscriber sets.
type Broadcaster struct {
	snapshots Snapshotter
	buffer    int

	mu   sync.RWMutex
	subs map[uuid.UUID]map[*Subscription]struct{}
}

// New creates a Broadcaster that gives each subscription buffer slots.
func New(snapshots Snapshotter, buffer int) *Broadcaster {
	if buffer <= 0 {
		buffer = DefaultBuffer
	}
	return &Broadcaster{
		snapshots: snapshots,
		buffer:    buffer,
		subs:      make(map[uuid.UUID]map[*Subscription]struct{}),
	}
}

// Subscribe registers a connection for userID and queues the user's snapshot
// as its first event. The subscription is registered before the snapshot is
// taken, so no change made in between is lost.
func (b *Broadcaster) Subscribe(ctx context.Context, userID uuid.UUID) (*Subscription, error) {
	// one extra slot so the snapshot always fits ahead of a full buffer
	sub := &Subscription{UserID: userID, ch: make(chan models.Event, b.buffer+1)}

	b.mu.Lock()
	set, ok := b.subs[userID]
	if !ok {
		set = make(map[*Subscription]struct{})
		b.subs[userID] = set
	}
	set[sub] = struct{}{}
	b.mu.Unlock()
	metrics.LiveConnections.Inc()

	snapshot, err := b.snapshots.Snapshot(ctx, userID)
	if err != nil {
		b.Unsubscribe(sub)
		return nil, err
	}

	ok = sub.start(models.Event{
		Type:       models.EventSnapshot,
		UserID:     userID,
		Snapshot:   snapshot,
		OccurredAt: time.Now(),
	})
	if !ok {
		b.Unsubscribe(sub)
	}
	return sub, nil
}

// Unsubscribe removes and closes sub. Safe to call more than once.
func (b *Broadcaster) Unsubscribe(sub *Subscription) {
	b.mu.Lock()
	removed := false
	if set, ok := b.subs[sub.UserID]; ok {
		if _, ok := set[sub]; ok {
			delete(set, sub)
			removed = true
			if len(set) == 0 {
				delete(b.subs, sub.UserID)
			}
		}
	}
	b.mu.Unlock()

	if removed {
		metrics.LiveConnections.Dec()
	}
	sub.close()
}

// Run delivers events until ctx is done or events is closed, then closes
// every subscription.
func (b *Broadcaster) Run(ctx context.Context, events <-chan models.Event) {
	defer b.closeAll()

	for {
		select {
		case <-ctx.Done():
			return
		case e, ok := <-events:
			if !ok {
				return
			}
			b.dispatch(e)
		}
	}
}

// Len reports the number of live subscriptions of userID.
func (b *Broadcaster) Len(userID uuid.UUID) int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.subs[userID])
}

func (b *Broadcaster) dispatch(e models.Event) {
	b.mu.RLock()
	targets := make([]*Subscription, 0, len(b.subs[e.UserID]))
	for sub := range b.subs[e.UserID] {
		targets = append(targets, sub)
	}
	b.mu.RUnlock()

	for _, sub := range targets {
		if !sub.deliver(e) {
			logger.Log.Warnw("subscriber fell behind, disconnecting", "user_id", e.UserID)
			b.Unsubscribe(sub)
		}
	}
}

func (b *Broadcaster) closeAll() {
	b.mu.Lock()
	subs := b.subs
	b.subs = make(map[uuid.UUID]map[*Subscription]struct{})
	b.mu.Unlock()

	for _, set := range subs {
		for sub := range set {
			metrics.LiveConnections.Dec()
			sub.close()
		}
	}
}
