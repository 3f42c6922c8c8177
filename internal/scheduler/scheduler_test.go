package scheduler

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/sbilibin2017/updown/internal/metrics"
	"github.com/sbilibin2017/updown/internal/models"
	"github.com/sbilibin2017/updown/internal/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeProber struct {
	calls atomic.Int32
	fn    func(ctx context.Context, url string) int
}

func (p *fakeProber) Probe(ctx context.Context, url string) (int, time.Duration) {
	p.calls.Add(1)
	if p.fn != nil {
		return p.fn(ctx, url), time.Millisecond
	}
	return 200, time.Millisecond
}

type fakeRecorder struct {
	mu      sync.Mutex
	records []int
	sites   map[uuid.UUID]int
}

func (r *fakeRecorder) Record(ctx context.Context, site models.SiteDB, statusCode int, observedAt time.Time) (models.Transition, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.records = append(r.records, statusCode)
	if r.sites == nil {
		r.sites = make(map[uuid.UUID]int)
	}
	r.sites[site.SiteID]++
	return models.TransitionNew, nil
}

func (r *fakeRecorder) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.records)
}

func (r *fakeRecorder) countFor(id uuid.UUID) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.sites[id]
}

func newSite() models.SiteDB {
	return models.SiteDB{SiteID: uuid.New(), UserID: uuid.New(), URL: "http://example.test"}
}

func TestScheduler_ScheduleProbesImmediatelyAndRepeats(t *testing.T) {
	rec := &fakeRecorder{}
	s := New(&fakeProber{}, rec, 20*time.Millisecond)
	defer s.Shutdown()

	site := newSite()
	s.Schedule(site)
	s.Schedule(site) // idempotent
	assert.Equal(t, 1, s.Len())

	assert.Eventually(t, func() bool { return rec.count() >= 3 }, 2*time.Second, 5*time.Millisecond)
}

func TestScheduler_RecordsThroughRecorder(t *testing.T) {
	ctrl := gomock.NewController(t)
	prober := NewMockProber(ctrl)
	recorder := NewMockRecorder(ctrl)
	site := newSite()

	done := make(chan struct{})
	var once sync.Once
	prober.EXPECT().Probe(gomock.Any(), site.URL).Return(503, 5*time.Millisecond).MinTimes(1)
	recorder.EXPECT().Record(gomock.Any(), site, 503, gomock.Any()).
		DoAndReturn(func(context.Context, models.SiteDB, int, time.Time) (models.Transition, error) {
			once.Do(func() { close(done) })
			return models.TransitionNew, nil
		}).MinTimes(1)

	s := New(prober, recorder, time.Hour)
	s.Schedule(site)

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("probe was not recorded")
	}
	s.Shutdown()
}

func TestScheduler_StopHaltsTicks(t *testing.T) {
	rec := &fakeRecorder{}
	s := New(&fakeProber{}, rec, 10*time.Millisecond)
	defer s.Shutdown()

	site := newSite()
	s.Schedule(site)
	require.Eventually(t, func() bool { return rec.count() >= 1 }, 2*time.Second, 5*time.Millisecond)

	s.Stop(site.SiteID)
	assert.Equal(t, 0, s.Len())

	after := rec.count()
	time.Sleep(60 * time.Millisecond)
	assert.Equal(t, after, rec.count(), "no tick may fire after Stop returns")

	s.Stop(site.SiteID) // unknown is a no-op
}

func TestScheduler_StopDiscardsInFlightProbe(t *testing.T) {
	rec := &fakeRecorder{}
	started := make(chan struct{})
	prober := &fakeProber{fn: func(ctx context.Context, url string) int {
		close(started)
		<-ctx.Done()
		return models.StatusTimeout
	}}
	s := New(prober, rec, time.Hour)
	defer s.Shutdown()

	site := newSite()
	s.Schedule(site)
	<-started

	s.Stop(site.SiteID)
	assert.Equal(t, 0, rec.count())
}

func TestScheduler_AtMostOneProbeInFlight(t *testing.T) {
	rec := &fakeRecorder{}
	release := make(chan struct{})
	prober := &fakeProber{fn: func(ctx context.Context, url string) int {
		select {
		case <-release:
		case <-ctx.Done():
		}
		return 200
	}}
	s := New(prober, rec, 5*time.Millisecond)
	defer s.Shutdown()

	skippedBefore := testutil.ToFloat64(metrics.ProbeSkipped)

	site := newSite()
	s.Schedule(site)
	time.Sleep(80 * time.Millisecond)

	assert.Equal(t, int32(1), prober.calls.Load(), "ticks while probing must be skipped")
	assert.Greater(t, testutil.ToFloat64(metrics.ProbeSkipped), skippedBefore)

	close(release)
	assert.Eventually(t, func() bool { return prober.calls.Load() > 1 }, 2*time.Second, 5*time.Millisecond)
}

func TestScheduler_SitesAreIsolated(t *testing.T) {
	rec := &fakeRecorder{}
	slow, fast := newSite(), newSite()
	slow.URL = "http://slow.test"

	prober := &fakeProber{fn: func(ctx context.Context, url string) int {
		if url == slow.URL {
			<-ctx.Done()
			return models.StatusTimeout
		}
		return 200
	}}
	s := New(prober, rec, 10*time.Millisecond)
	defer s.Shutdown()

	s.Schedule(slow)
	s.Schedule(fast)

	assert.Eventually(t, func() bool { return rec.countFor(fast.SiteID) >= 3 }, 2*time.Second, 5*time.Millisecond)
	assert.Equal(t, 0, rec.countFor(slow.SiteID))
}

func TestScheduler_StalledExporterDoesNotStallProbing(t *testing.T) {
	ctrl := gomock.NewController(t)
	writer := services.NewMockStatusWriter(ctrl)
	events := services.NewMockEventPublisher(ctrl)
	exporter := services.NewMockTransitionExporter(ctrl)
	ledger := services.NewLedgerService(writer, services.NewMockStatusReader(ctrl), events, exporter)

	site := newSite()
	writer.EXPECT().Upsert(gomock.Any(), site.SiteID, gomock.Any(), gomock.Any()).
		Return(&models.StatusObservation{SiteID: site.SiteID}, models.TransitionChanged, nil).AnyTimes()
	events.EXPECT().Publish(gomock.Any(), gomock.Any()).AnyTimes()
	exporter.EXPECT().Export(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, _ models.TransitionRecord) error {
			<-ctx.Done()
			return ctx.Err()
		}).AnyTimes()

	ctx, cancel := context.WithCancel(context.Background())
	exporterDone := make(chan struct{})
	go func() {
		defer close(exporterDone)
		ledger.RunExporter(ctx)
	}()

	var flip atomic.Bool
	prober := &fakeProber{fn: func(ctx context.Context, url string) int {
		if flip.Load() {
			flip.Store(false)
			return 503
		}
		flip.Store(true)
		return 200
	}}
	s := New(prober, ledger, 5*time.Millisecond)

	s.Schedule(site)
	assert.Eventually(t, func() bool { return prober.calls.Load() >= 10 }, 2*time.Second, 5*time.Millisecond)

	s.Shutdown()
	cancel()
	<-exporterDone
}

func TestScheduler_RecoversFromProbePanic(t *testing.T) {
	rec := &fakeRecorder{}
	var calls atomic.Int32
	prober := &fakeProber{fn: func(ctx context.Context, url string) int {
		if calls.Add(1) == 1 {
			panic("boom")
		}
		return 200
	}}
	s := New(prober, rec, 10*time.Millisecond)
	defer s.Shutdown()

	s.Schedule(newSite())
	assert.Eventually(t, func() bool { return rec.count() >= 1 }, 2*time.Second, 5*time.Millisecond)
}

func TestScheduler_Shutdown(t *testing.T) {
	rec := &fakeRecorder{}
	s := New(&fakeProber{}, rec, 10*time.Millisecond)

	s.Schedule(newSite())
	s.Schedule(newSite())
	assert.Equal(t, 2, s.Len())

	s.Shutdown()
	assert.Equal(t, 0, s.Len())

	s.Schedule(newSite())
	assert.Equal(t, 0, s.Len(), "schedule after shutdown is ignored")

	s.Shutdown() // idempotent
}

func TestScheduler_HydrateAndSync(t *testing.T) {
	s := New(&fakeProber{}, &fakeRecorder{}, time.Hour)
	defer s.Shutdown()

	a, b, c := newSite(), newSite(), newSite()
	s.Hydrate(context.Background(), []models.SiteDB{a, b})
	assert.Equal(t, 2, s.Len())

	s.Sync(context.Background(), []models.SiteDB{b, c})
	assert.Equal(t, 2, s.Len())

	s.mu.Lock()
	_, hasA := s.timers[a.SiteID]
	_, hasC := s.timers[c.SiteID]
	s.mu.Unlock()
	assert.False(t, hasA)
	assert.True(t, hasC)
}

func TestScheduler_HydrateHonoursContext(t *testing.T) {
	s := New(&fakeProber{}, &fakeRecorder{}, time.Hour)
	defer s.Shutdown()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	s.Hydrate(ctx, []models.SiteDB{newSite()})
	assert.Equal(t, 0, s.Len())
}
