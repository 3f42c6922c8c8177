// Package scheduler runs one independent probe timer per monitored site.
package scheduler

import (
	"context"
	"fmt"
	"math/rand/v2"
	"runtime/debug"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"github.com/sbilibin2017/updown/internal/logger"
	"github.com/sbilibin2017/updown/internal/metrics"
	"github.com/sbilibin2017/updown/internal/models"
)

//go:generate mockgen -source=scheduler.go -destination=scheduler_mock.go -package=scheduler

// Prober checks a URL once.
type Prober interface {
	Probe(ctx context.Context, url string) (int, time.Duration)
}

// Recorder stores a probe result.
type Recorder interface {
	Record(ctx context.Context, site models.SiteDB, statusCode int, observedAt time.Time) (models.Transition, error)
}

type siteTimer struct {
	site     models.SiteDB
	cancel   context.CancelFunc
	inFlight atomic.Bool
	wg       sync.WaitGroup // loop goroutine plus the in-flight probe
}

// Scheduler owns the per-site timers. The mutex guards only the timer map;
// no probing or recording happens under it.
//
// Each site is Idle until scheduled, then alternates between waiting for its
// next tick and probing. A tick that arrives while the previous probe of the
// same site is still running is skipped, not queued. Stop is terminal.
type Scheduler struct {
	prober   Prober
	recorder Recorder
	interval time.Duration

	ctx    context.Context
	cancel context.CancelFunc

	mu      sync.Mutex
	timers  map[uuid.UUID]*siteTimer
	stopped bool
}

// New creates a scheduler that probes every site each interval.
func New(prober Prober, recorder Recorder, interval time.Duration) *Scheduler {
	ctx, cancel := context.WithCancel(context.Background())
	return &Scheduler{
		prober:   prober,
		recorder: recorder,
		interval: interval,
		ctx:      ctx,
		cancel:   cancel,
		timers:   make(map[uuid.UUID]*siteTimer),
	}
}

// Schedule starts probing site right away, then every interval. Scheduling a
// site that already has a timer is a no-op.
func (s *Scheduler) Schedule(site models.SiteDB) {
	s.start(site, 0)
}

// Hydrate schedules sites loaded at startup. First probes are spread over one
// interval so a restart does not probe everything at once.
func (s *Scheduler) Hydrate(ctx context.Context, sites []models.SiteDB) {
	for _, site := range sites {
		if ctx.Err() != nil {
			return
		}
		s.start(site, s.jitter())
	}
	logger.Log.Infow("scheduler hydrated", "sites", len(sites), "active", s.Len())
}

// Sync makes the set of timers match sites: unknown sites are scheduled with
// jitter and timers of sites missing from the list are stopped.
func (s *Scheduler) Sync(ctx context.Context, sites []models.SiteDB) {
	want := make(map[uuid.UUID]struct{}, len(sites))
	for _, site := range sites {
		want[site.SiteID] = struct{}{}
	}

	s.mu.Lock()
	var stale []uuid.UUID
	for id := range s.timers {
		if _, ok := want[id]; !ok {
			stale = append(stale, id)
		}
	}
	s.mu.Unlock()

	for _, id := range stale {
		s.Stop(id)
	}
	for _, site := range sites {
		if ctx.Err() != nil {
			return
		}
		s.start(site, s.jitter())
	}
}

// Stop cancels the site's timer and any in-flight probe. It returns after the
// site's goroutines have exited; a probe cancelled this way records nothing.
func (s *Scheduler) Stop(siteID uuid.UUID) {
	s.mu.Lock()
	t, ok := s.timers[siteID]
	delete(s.timers, siteID)
	n := len(s.timers)
	s.mu.Unlock()

	if !ok {
		return
	}
	t.cancel()
	t.wg.Wait()
	metrics.ScheduledSites.Set(float64(n))
}

// Shutdown stops every timer and waits for them. Later Schedule calls are ignored.
func (s *Scheduler) Shutdown() {
	s.mu.Lock()
	s.stopped = true
	timers := s.timers
	s.timers = make(map[uuid.UUID]*siteTimer)
	s.mu.Unlock()

	s.cancel()
	for _, t := range timers {
		t.wg.Wait()
	}
	metrics.ScheduledSites.Set(0)
	logger.Log.Infow("scheduler stopped", "sites", len(timers))
}

// Len reports the number of active timers.
func (s *Scheduler) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.timers)
}

func (s *Scheduler) jitter() time.Duration {
	if s.interval <= 0 {
		return 0
	}
	return rand.N(s.interval)
}

func (s *Scheduler) start(site models.SiteDB, initialDelay time.Duration) {
	s.mu.Lock()
	if s.stopped {
		s.mu.Unlock()
		return
	}
	if _, ok := s.timers[site.SiteID]; ok {
		s.mu.Unlock()
		return
	}
	ctx, cancel := context.WithCancel(s.ctx)
	t := &siteTimer{site: site, cancel: cancel}
	t.wg.Add(1)
	s.timers[site.SiteID] = t
	n := len(s.timers)
	s.mu.Unlock()

	metrics.ScheduledSites.Set(float64(n))
	go s.run(ctx, t, initialDelay)
}

func (s *Scheduler) run(ctx context.Context, t *siteTimer, initialDelay time.Duration) {
	defer t.wg.Done()

	delay := time.NewTimer(initialDelay)
	defer delay.Stop()
	select {
	case <-ctx.Done():
		return
	case <-delay.C:
	}

	s.tick(ctx, t)

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.tick(ctx, t)
		}
	}
}

// tick starts a probe unless one is already running for the site.
func (s *Scheduler) tick(ctx context.Context, t *siteTimer) {
	if !t.inFlight.CompareAndSwap(false, true) {
		metrics.ProbeSkipped.Inc()
		logger.Log.Debugw("probe skipped, previous still running", "site_id", t.site.SiteID)
		return
	}

	t.wg.Add(1)
	go func() {
		defer t.wg.Done()
		defer t.inFlight.Store(false)
		s.probe(ctx, t.site)
	}()
}

func (s *Scheduler) probe(ctx context.Context, site models.SiteDB) {
	defer func() {
		if r := recover(); r != nil {
			logger.Log.Errorw("probe panic",
				"correlation_id", uuid.NewString(),
				"site_id", site.SiteID,
				"panic", fmt.Sprintf("%v", r),
				"stack", string(debug.Stack()),
			)
		}
	}()

	code, latency := s.prober.Probe(ctx, site.URL)
	outcome := models.StatusName(code)
	metrics.ProbeTotal.WithLabelValues(outcome).Inc()
	metrics.ProbeDuration.WithLabelValues(outcome).Observe(latency.Seconds())

	if ctx.Err() != nil {
		// stopped mid-probe
		return
	}

	transition, err := s.recorder.Record(ctx, site, code, time.Now())
	if err != nil {
		logger.Log.Errorw("failed to record probe", "site_id", site.SiteID, "status_code", code, "err", err)
		return
	}
	logger.Log.Debugw("probe recorded",
		"site_id", site.SiteID,
		"status_code", code,
		"transition", transition.String(),
		"latency", latency,
	)
}
