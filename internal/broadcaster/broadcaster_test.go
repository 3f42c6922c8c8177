package broadcaster

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/sbilibin2017/updown/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type staticSnapshots struct {
	sites []models.SiteStatus
	err   error
	hook  func()
}

func (s *staticSnapshots) Snapshot(ctx context.Context, userID uuid.UUID) ([]models.SiteStatus, error) {
	if s.hook != nil {
		s.hook()
	}
	return s.sites, s.err
}

func receive(t *testing.T, sub *Subscription) models.Event {
	t.Helper()
	select {
	case e, ok := <-sub.Events():
		require.True(t, ok, "subscription closed")
		return e
	case <-time.After(2 * time.Second):
		t.Fatal("no event received")
		return models.Event{}
	}
}

func assertClosed(t *testing.T, sub *Subscription) {
	t.Helper()
	deadline := time.After(2 * time.Second)
	for {
		select {
		case _, ok := <-sub.Events():
			if !ok {
				return
			}
		case <-deadline:
			t.Fatal("subscription not closed")
		}
	}
}

func runBroadcaster(t *testing.T, b *Broadcaster) chan<- models.Event {
	t.Helper()
	events := make(chan models.Event)
	ctx, cancel := context.WithCancel(context.Background())
	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		b.Run(ctx, events)
	}()
	t.Cleanup(func() {
		cancel()
		wg.Wait()
	})
	return events
}

func TestBroadcaster_SnapshotFirst(t *testing.T) {
	site := models.SiteDB{SiteID: uuid.New()}
	b := New(&staticSnapshots{sites: []models.SiteStatus{{Site: site}}}, 4)
	events := runBroadcaster(t, b)

	userID := uuid.New()
	sub, err := b.Subscribe(context.Background(), userID)
	require.NoError(t, err)

	first := receive(t, sub)
	assert.Equal(t, models.EventSnapshot, first.Type)
	require.Len(t, first.Snapshot, 1)
	assert.Equal(t, site.SiteID, first.Snapshot[0].Site.SiteID)

	events <- models.Event{Type: models.EventStatus, UserID: userID, SiteID: site.SiteID}
	second := receive(t, sub)
	assert.Equal(t, models.EventStatus, second.Type)
}

func TestBroadcaster_EventsDuringSnapshotFollowIt(t *testing.T) {
	userID := uuid.New()
	var b *Broadcaster
	snaps := &staticSnapshots{}
	b = New(snaps, 4)
	snaps.hook = func() {
		// the subscription is already registered while the snapshot is built
		b.dispatch(models.Event{Type: models.EventSiteAdded, UserID: userID})
	}

	sub, err := b.Subscribe(context.Background(), userID)
	require.NoError(t, err)

	assert.Equal(t, models.EventSnapshot, receive(t, sub).Type)
	assert.Equal(t, models.EventSiteAdded, receive(t, sub).Type)
}

func TestBroadcaster_DeliversOnlyToOwner(t *testing.T) {
	b := New(&staticSnapshots{}, 4)
	events := runBroadcaster(t, b)

	alice, bob := uuid.New(), uuid.New()
	aliceSub, err := b.Subscribe(context.Background(), alice)
	require.NoError(t, err)
	bobSub, err := b.Subscribe(context.Background(), bob)
	require.NoError(t, err)
	receive(t, aliceSub)
	receive(t, bobSub)

	events <- models.Event{Type: models.EventStatus, UserID: alice}
	events <- models.Event{Type: models.EventSiteRemoved, UserID: bob}

	assert.Equal(t, models.EventStatus, receive(t, aliceSub).Type)
	assert.Equal(t, models.EventSiteRemoved, receive(t, bobSub).Type)

	select {
	case e := <-aliceSub.Events():
		t.Fatalf("alice received bob's event %v", e.Type)
	case <-time.After(50 * time.Millisecond):
	}
}

func TestBroadcaster_SlowSubscriberIsDisconnected(t *testing.T) {
	b := New(&staticSnapshots{}, 2)
	userID := uuid.New()

	slow, err := b.Subscribe(context.Background(), userID)
	require.NoError(t, err)
	assert.Equal(t, 1, b.Len(userID))

	// never read: snapshot + 2 buffered, the next overflows
	for i := 0; i < 4; i++ {
		b.dispatch(models.Event{Type: models.EventStatus, UserID: userID})
	}

	assert.Equal(t, 0, b.Len(userID))
	assertClosed(t, slow)
}

func TestBroadcaster_Unsubscribe(t *testing.T) {
	b := New(&staticSnapshots{}, 4)
	userID := uuid.New()

	sub, err := b.Subscribe(context.Background(), userID)
	require.NoError(t, err)

	b.Unsubscribe(sub)
	b.Unsubscribe(sub) // idempotent
	assert.Equal(t, 0, b.Len(userID))
	assertClosed(t, sub)

	// delivery to a removed subscription is a no-op
	assert.True(t, sub.deliver(models.Event{Type: models.EventStatus, UserID: userID}))
}

func TestBroadcaster_SnapshotError(t *testing.T) {
	b := New(&staticSnapshots{err: errors.New("db down")}, 4)
	userID := uuid.New()

	sub, err := b.Subscribe(context.Background(), userID)
	assert.Error(t, err)
	assert.Nil(t, sub)
	assert.Equal(t, 0, b.Len(userID))
}

func TestBroadcaster_RunClosesSubscriptionsOnExit(t *testing.T) {
	b := New(&staticSnapshots{}, 4)
	userID := uuid.New()
	sub, err := b.Subscribe(context.Background(), userID)
	require.NoError(t, err)

	events := make(chan models.Event)
	done := make(chan struct{})
	go func() {
		b.Run(context.Background(), events)
		close(done)
	}()
	close(events)

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("Run did not return")
	}
	assertClosed(t, sub)
	assert.Equal(t, 0, b.Len(userID))
}
