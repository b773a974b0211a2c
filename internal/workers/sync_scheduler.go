// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/MKhiriev/go-sync-keeper/internal/adapter"
	"github.com/MKhiriev/go-sync-keeper/internal/config"
	"github.com/MKhiriev/go-sync-keeper/internal/logger"
	"github.com/MKhiriev/go-sync-keeper/internal/service"
	"github.com/MKhiriev/go-sync-keeper/internal/utils"
	"github.com/MKhiriev/go-sync-keeper/models"
)

// SchedulerConfig controls timing and retry accounting of a [SyncScheduler].
type SchedulerConfig struct {
	// Interval is the period of the timer-driven drain.
	Interval time.Duration
	// RetryBaseDelay is the wait after the first failed attempt. Every
	// further failure doubles it.
	RetryBaseDelay time.Duration
	// RetryMaxDelay caps the wait between attempts.
	RetryMaxDelay time.Duration
	// MaxRetryAttempts is the number of failed attempts after which an item
	// is dropped and its record marked as error.
	MaxRetryAttempts int
	// BatchSize is how many items are pushed concurrently.
	BatchSize int
}

// NewSchedulerConfig maps the client workers config.
func NewSchedulerConfig(cfg config.ClientWorkers) SchedulerConfig {
	return SchedulerConfig{
		Interval:         cfg.SyncInterval,
		RetryBaseDelay:   cfg.RetryBaseDelay,
		RetryMaxDelay:    cfg.RetryMaxDelay,
		MaxRetryAttempts: cfg.MaxRetryAttempts,
		BatchSize:        cfg.BatchSize,
	}
}

// RetryDelay returns min(RetryBaseDelay * 2^(n-1), RetryMaxDelay) for the
// n-th failed attempt, and zero for n < 1.
func (c SchedulerConfig) RetryDelay(n int) time.Duration {
	if n < 1 {
		return 0
	}

	delay := c.RetryBaseDelay
	for i := 1; i < n && delay < c.RetryMaxDelay; i++ {
		delay *= 2
	}

	return min(delay, c.RetryMaxDelay)
}

// SyncScheduler drains a [RetryQueue] into the remote authority through a
// [service.ClientSyncService].
//
// A drain runs on Start, on every Interval tick, when connectivity comes
// back, on every Enqueue and when the earliest backed-off item becomes
// eligible. At most one drain runs at a time; a trigger that arrives during
// a drain makes it take another pass before going idle.
type SyncScheduler struct {
	syncService  service.ClientSyncService
	connectivity adapter.Connectivity
	queue        *RetryQueue
	clock        utils.Clock
	cfg          SchedulerConfig

	mu          sync.Mutex
	runCtx      context.Context
	cancel      context.CancelFunc
	unsubscribe func()
	wake        *time.Timer
	draining    bool
	dirty       bool
	wg          sync.WaitGroup

	logger *logger.Logger
}

// NewSyncScheduler creates an idle scheduler. A nil clock means the system
// clock.
func NewSyncScheduler(
	syncService service.ClientSyncService,
	connectivity adapter.Connectivity,
	cfg SchedulerConfig,
	clock utils.Clock,
	logger *logger.Logger,
) *SyncScheduler {
	if clock == nil {
		clock = utils.SystemClock{}
	}
	if cfg.Interval <= 0 {
		cfg.Interval = config.DefaultSyncInterval
	}
	if cfg.RetryBaseDelay <= 0 {
		cfg.RetryBaseDelay = config.DefaultRetryBaseDelay
	}
	if cfg.RetryMaxDelay <= 0 {
		cfg.RetryMaxDelay = config.DefaultRetryMaxDelay
	}
	if cfg.MaxRetryAttempts < 1 {
		cfg.MaxRetryAttempts = config.DefaultMaxRetryAttempts
	}
	if cfg.BatchSize < 1 {
		cfg.BatchSize = 1
	}

	return &SyncScheduler{
		syncService:  syncService,
		connectivity: connectivity,
		queue:        NewRetryQueue(),
		clock:        clock,
		cfg:          cfg,
		logger:       logger,
	}
}

// Start subscribes to connectivity changes, starts the periodic timer,
// re-enqueues records left pending by a previous run and triggers a drain.
// A running scheduler is stopped first.
func (s *SyncScheduler) Start(ctx context.Context) {
	s.Stop()

	s.mu.Lock()
	runCtx, cancel := context.WithCancel(ctx)
	s.runCtx = runCtx
	s.cancel = cancel
	s.unsubscribe = s.connectivity.OnConnectivityChanged(s.onConnectivityChanged)
	s.wg.Add(1)
	s.mu.Unlock()

	go s.tick(runCtx)

	s.recoverPending(runCtx)
	s.Trigger()
}

// Stop cancels the timer, the pending wake-up and the connectivity
// subscription, then waits for a running drain to finish. Queued items are
// kept.
func (s *SyncScheduler) Stop() {
	s.mu.Lock()
	cancel := s.cancel
	unsubscribe := s.unsubscribe
	s.cancel = nil
	s.unsubscribe = nil
	s.runCtx = nil
	if s.wake != nil {
		s.wake.Stop()
		s.wake = nil
	}
	s.mu.Unlock()

	if unsubscribe != nil {
		unsubscribe()
	}
	if cancel != nil {
		cancel()
	}
	s.wg.Wait()
}

// Enqueue schedules key for sync and triggers a drain.
func (s *SyncScheduler) Enqueue(key string) {
	s.queue.Enqueue(key)
	s.Trigger()
}

// Remove forgets key, e.g. after it was deleted.
func (s *SyncScheduler) Remove(key string) {
	s.queue.Remove(key)
}

// Pending returns the number of queued items.
func (s *SyncScheduler) Pending() int {
	return s.queue.Len()
}

// Idle reports whether no drain is running and nothing is queued.
func (s *SyncScheduler) Idle() bool {
	s.mu.Lock()
	draining := s.draining
	s.mu.Unlock()

	return !draining && s.queue.Len() == 0
}

// Trigger starts a drain unless one is already running or the scheduler
// is stopped.
func (s *SyncScheduler) Trigger() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.runCtx == nil {
		return
	}
	if s.draining {
		s.dirty = true
		return
	}

	s.draining = true
	s.wg.Add(1)
	go s.drain(s.runCtx)
}

func (s *SyncScheduler) tick(ctx context.Context) {
	defer s.wg.Done()

	t := time.NewTicker(s.cfg.Interval)
	defer t.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-t.C:
			s.Trigger()
		}
	}
}

func (s *SyncScheduler) onConnectivityChanged(online bool) {
	s.logger.Info().Str("func", "*SyncScheduler.onConnectivityChanged").Bool("online", online).Msg("connectivity changed")
	if online {
		s.Trigger()
	}
}

func (s *SyncScheduler) recoverPending(ctx context.Context) {
	keys, err := s.syncService.PendingKeys(ctx)
	if err != nil {
		s.logger.Err(err).Str("func", "*SyncScheduler.recoverPending").Msg("cannot list pending records")
		return
	}

	for _, key := range keys {
		if !s.queue.Contains(key) {
			s.queue.Enqueue(key)
		}
	}

	if len(keys) > 0 {
		s.logger.Info().Str("func", "*SyncScheduler.recoverPending").Int("count", len(keys)).Msg("re-enqueued pending records")
	}
}

func (s *SyncScheduler) drain(ctx context.Context) {
	defer s.wg.Done()

	for {
		s.runPasses(ctx)

		s.mu.Lock()
		if s.dirty && ctx.Err() == nil && s.connectivity.IsOnline() {
			s.dirty = false
			s.mu.Unlock()
			continue
		}
		s.dirty = false
		s.draining = false
		s.mu.Unlock()
		return
	}
}

// runPasses pushes batches until the queue is empty, nothing is eligible,
// the device goes offline or ctx is cancelled.
func (s *SyncScheduler) runPasses(ctx context.Context) {
	log := s.logger.With().Str("func", "*SyncScheduler.runPasses").Logger()

	for ctx.Err() == nil {
		if !s.connectivity.IsOnline() {
			log.Debug().Int("queued", s.queue.Len()).Msg("offline, sync deferred")
			return
		}

		batch, next := s.takeBatch()
		if len(batch) == 0 {
			if !next.IsZero() {
				s.armWake(next)
			}
			return
		}

		errs := s.dispatch(ctx, batch)
		s.apply(ctx, batch, errs)
	}
}

// takeBatch pops up to BatchSize eligible items. Items still backing off go
// to the back of the queue; next is the earliest time one of them becomes
// eligible.
func (s *SyncScheduler) takeBatch() (batch []models.QueueItem, next time.Time) {
	now := s.clock.Now()

	for n := s.queue.Len(); n > 0 && len(batch) < s.cfg.BatchSize; n-- {
		item, ok := s.queue.PopFront()
		if !ok {
			break
		}

		eligibleAt := s.eligibleAt(item)
		if !now.Before(eligibleAt) {
			batch = append(batch, item)
			continue
		}

		s.queue.Requeue(item)
		if next.IsZero() || eligibleAt.Before(next) {
			next = eligibleAt
		}
	}

	return batch, next
}

func (s *SyncScheduler) eligibleAt(item models.QueueItem) time.Time {
	if item.RetryCount == 0 {
		return time.Time{}
	}
	return item.LastAttempt.Add(s.cfg.RetryDelay(item.RetryCount))
}

func (s *SyncScheduler) dispatch(ctx context.Context, batch []models.QueueItem) []error {
	errs := make([]error, len(batch))

	var g errgroup.Group
	for i, item := range batch {
		g.Go(func() error {
			errs[i] = s.syncService.SyncKey(ctx, item.Key)
			return nil
		})
	}
	_ = g.Wait()

	return errs
}

func (s *SyncScheduler) apply(ctx context.Context, batch []models.QueueItem, errs []error) {
	now := s.clock.Now()

	for i, item := range batch {
		err := errs[i]
		log := s.logger.With().Str("func", "*SyncScheduler.apply").Str("key", item.Key).Logger()

		if err == nil {
			log.Debug().Msg("synced")
			continue
		}

		// an attempt cut short by shutdown or lost connectivity is not a failure
		if ctx.Err() != nil || !s.connectivity.IsOnline() {
			s.queue.Requeue(item)
			continue
		}

		item.RetryCount++
		item.LastAttempt = now

		if item.RetryCount < s.cfg.MaxRetryAttempts {
			log.Warn().Err(err).Int("retry_count", item.RetryCount).
				Dur("retry_in", s.cfg.RetryDelay(item.RetryCount)).
				Msg("sync attempt failed")
			s.queue.Requeue(item)
			continue
		}

		if s.queue.Contains(item.Key) {
			// written again while the last attempt was in flight
			continue
		}

		log.Error().Err(err).Int("retry_count", item.RetryCount).Msg("sync attempts exhausted, giving up")
		if err = s.syncService.MarkFailed(ctx, item.Key); err != nil {
			log.Err(err).Msg("cannot mark record as failed")
		}
	}
}

func (s *SyncScheduler) armWake(at time.Time) {
	d := max(at.Sub(s.clock.Now()), 0)

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.runCtx == nil {
		return
	}
	if s.wake != nil {
		s.wake.Stop()
	}
	s.wake = time.AfterFunc(d, s.Trigger)
}
