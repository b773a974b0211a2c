// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/MKhiriev/go-sync-keeper/internal/config"
	"github.com/MKhiriev/go-sync-keeper/internal/logger"
	"github.com/MKhiriev/go-sync-keeper/internal/mock"
	"github.com/MKhiriev/go-sync-keeper/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// fakeSyncService records every call. syncFn decides the outcome of SyncKey;
// nil means success.
type fakeSyncService struct {
	mu          sync.Mutex
	syncFn      func(ctx context.Context, key string) error
	pending     []string
	attempts    map[string]int
	synced      []string
	failed      []string
	inFlight    int
	maxInFlight int
}

func newFakeSyncService(syncFn func(ctx context.Context, key string) error) *fakeSyncService {
	return &fakeSyncService{syncFn: syncFn, attempts: make(map[string]int)}
}

func (f *fakeSyncService) SyncKey(ctx context.Context, key string) error {
	f.mu.Lock()
	f.inFlight++
	f.maxInFlight = max(f.maxInFlight, f.inFlight)
	f.attempts[key]++
	fn := f.syncFn
	f.mu.Unlock()

	var err error
	if fn != nil {
		err = fn(ctx, key)
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	f.inFlight--
	if err == nil {
		f.synced = append(f.synced, key)
	}
	return err
}

func (f *fakeSyncService) MarkFailed(_ context.Context, key string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.failed = append(f.failed, key)
	return nil
}

func (f *fakeSyncService) PendingKeys(context.Context) ([]string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.pending, nil
}

func (f *fakeSyncService) syncedKeys() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.synced...)
}

func (f *fakeSyncService) failedKeys() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.failed...)
}

func (f *fakeSyncService) attemptsOf(key string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.attempts[key]
}

func testSchedulerConfig() SchedulerConfig {
	return SchedulerConfig{
		Interval:         time.Hour,
		RetryBaseDelay:   time.Millisecond,
		RetryMaxDelay:    4 * time.Millisecond,
		MaxRetryAttempts: 3,
		BatchSize:        10,
	}
}

func newTestScheduler(t *testing.T, svc *fakeSyncService, conn *testutil.FakeConnectivity, cfg SchedulerConfig) *SyncScheduler {
	t.Helper()
	s := NewSyncScheduler(svc, conn, cfg, nil, logger.Nop())
	t.Cleanup(s.Stop)
	return s
}

const waitFor = 2 * time.Second

func TestSchedulerConfig_RetryDelay(t *testing.T) {
	cfg := SchedulerConfig{RetryBaseDelay: time.Second, RetryMaxDelay: 30 * time.Second}

	tests := []struct {
		attempt int
		want    time.Duration
	}{
		{0, 0},
		{1, time.Second},
		{2, 2 * time.Second},
		{3, 4 * time.Second},
		{5, 16 * time.Second},
		{6, 30 * time.Second},
		{40, 30 * time.Second},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("attempt %d", tt.attempt), func(t *testing.T) {
			assert.Equal(t, tt.want, cfg.RetryDelay(tt.attempt))
		})
	}
}

func TestNewSyncScheduler_ZeroConfigGetsDefaults(t *testing.T) {
	s := NewSyncScheduler(newFakeSyncService(nil), testutil.NewFakeConnectivity(true), SchedulerConfig{}, nil, logger.Nop())

	assert.Equal(t, config.DefaultSyncInterval, s.cfg.Interval)
	assert.Equal(t, config.DefaultRetryBaseDelay, s.cfg.RetryBaseDelay)
	assert.Equal(t, config.DefaultRetryMaxDelay, s.cfg.RetryMaxDelay)
	assert.Equal(t, config.DefaultMaxRetryAttempts, s.cfg.MaxRetryAttempts)
	assert.Equal(t, 1, s.cfg.BatchSize)

	assert.Equal(t, config.DefaultRetryBaseDelay, s.cfg.RetryDelay(1))
	assert.Equal(t, config.DefaultRetryMaxDelay, s.cfg.RetryDelay(10))
}

func TestSyncScheduler_EnqueueSyncsWhenOnline(t *testing.T) {
	svc := newFakeSyncService(nil)
	s := newTestScheduler(t, svc, testutil.NewFakeConnectivity(true), testSchedulerConfig())
	s.Start(context.Background())

	s.Enqueue("profile")

	require.Eventually(t, func() bool { return len(svc.syncedKeys()) == 1 }, waitFor, time.Millisecond)
	assert.Equal(t, []string{"profile"}, svc.syncedKeys())
	assert.Eventually(t, s.Idle, waitFor, time.Millisecond)
}

func TestSyncScheduler_NotStartedOnlyQueues(t *testing.T) {
	svc := newFakeSyncService(nil)
	s := newTestScheduler(t, svc, testutil.NewFakeConnectivity(true), testSchedulerConfig())

	s.Enqueue("a")
	s.Trigger()

	assert.Equal(t, 1, s.Pending())
	assert.Empty(t, svc.syncedKeys())
}

func TestSyncScheduler_OfflineDefersUntilReconnect(t *testing.T) {
	svc := newFakeSyncService(nil)
	conn := testutil.NewFakeConnectivity(false)
	s := newTestScheduler(t, svc, conn, testSchedulerConfig())
	s.Start(context.Background())

	s.Enqueue("a")
	s.Enqueue("b")
	time.Sleep(20 * time.Millisecond)
	assert.Empty(t, svc.syncedKeys())
	assert.Equal(t, 2, s.Pending())

	conn.SetOnline(true)

	require.Eventually(t, func() bool { return len(svc.syncedKeys()) == 2 }, waitFor, time.Millisecond)
	assert.ElementsMatch(t, []string{"a", "b"}, svc.syncedKeys())
}

func TestSyncScheduler_StartRecoversPendingRecords(t *testing.T) {
	svc := newFakeSyncService(nil)
	svc.pending = []string{"left-1", "left-2"}
	s := newTestScheduler(t, svc, testutil.NewFakeConnectivity(true), testSchedulerConfig())

	s.Start(context.Background())

	require.Eventually(t, func() bool { return len(svc.syncedKeys()) == 2 }, waitFor, time.Millisecond)
	assert.ElementsMatch(t, []string{"left-1", "left-2"}, svc.syncedKeys())
}

func TestSyncScheduler_GivesUpAfterMaxAttempts(t *testing.T) {
	svc := newFakeSyncService(func(context.Context, string) error { return errors.New("server error") })
	s := newTestScheduler(t, svc, testutil.NewFakeConnectivity(true), testSchedulerConfig())
	s.Start(context.Background())

	s.Enqueue("k")

	require.Eventually(t, func() bool { return len(svc.failedKeys()) == 1 }, waitFor, time.Millisecond)
	assert.Equal(t, []string{"k"}, svc.failedKeys())
	assert.Equal(t, 3, svc.attemptsOf("k"))
	assert.Equal(t, 0, s.Pending())
}

func TestSyncScheduler_RecoversAfterTransientFailure(t *testing.T) {
	var calls int
	var mu sync.Mutex
	svc := newFakeSyncService(func(context.Context, string) error {
		mu.Lock()
		defer mu.Unlock()
		calls++
		if calls == 1 {
			return errors.New("timeout")
		}
		return nil
	})
	s := newTestScheduler(t, svc, testutil.NewFakeConnectivity(true), testSchedulerConfig())
	s.Start(context.Background())

	s.Enqueue("k")

	require.Eventually(t, func() bool { return len(svc.syncedKeys()) == 1 }, waitFor, time.Millisecond)
	assert.Equal(t, 2, svc.attemptsOf("k"))
	assert.Empty(t, svc.failedKeys())
}

func TestSyncScheduler_BackoffDelaysRetry(t *testing.T) {
	cfg := testSchedulerConfig()
	cfg.RetryBaseDelay = time.Hour
	cfg.RetryMaxDelay = time.Hour

	svc := newFakeSyncService(func(context.Context, string) error { return errors.New("server error") })
	s := newTestScheduler(t, svc, testutil.NewFakeConnectivity(true), cfg)
	s.Start(context.Background())

	s.Enqueue("k")
	require.Eventually(t, func() bool { return svc.attemptsOf("k") == 1 }, waitFor, time.Millisecond)

	// nothing is eligible, so further triggers end without another attempt
	s.Trigger()
	s.Trigger()
	time.Sleep(20 * time.Millisecond)

	assert.Equal(t, 1, svc.attemptsOf("k"))
	assert.Equal(t, 1, s.Pending())
	assert.Empty(t, svc.failedKeys())
}

func TestSyncScheduler_FailureWhileOfflineIsNotCounted(t *testing.T) {
	conn := testutil.NewFakeConnectivity(true)
	svc := newFakeSyncService(func(context.Context, string) error {
		conn.SetOnline(false)
		return errors.New("network unreachable")
	})
	s := newTestScheduler(t, svc, conn, testSchedulerConfig())
	s.Start(context.Background())

	s.Enqueue("k")
	require.Eventually(t, func() bool { return svc.attemptsOf("k") == 1 }, waitFor, time.Millisecond)
	s.Stop()

	item, ok := s.queue.PopFront()
	require.True(t, ok)
	assert.Equal(t, "k", item.Key)
	assert.Zero(t, item.RetryCount)
	assert.Empty(t, svc.failedKeys())
}

func TestSyncScheduler_SingleFlight(t *testing.T) {
	release := make(chan struct{})
	svc := newFakeSyncService(func(_ context.Context, key string) error {
		if key == "first" {
			<-release
		}
		return nil
	})
	cfg := testSchedulerConfig()
	cfg.BatchSize = 1
	s := newTestScheduler(t, svc, testutil.NewFakeConnectivity(true), cfg)
	s.Start(context.Background())

	s.Enqueue("first")
	require.Eventually(t, func() bool { return svc.attemptsOf("first") == 1 }, waitFor, time.Millisecond)

	// triggers during the drain must not start a second one
	s.Enqueue("second")
	s.Trigger()
	time.Sleep(10 * time.Millisecond)
	assert.Equal(t, 0, svc.attemptsOf("second"))

	close(release)

	require.Eventually(t, func() bool { return len(svc.syncedKeys()) == 2 }, waitFor, time.Millisecond)
	assert.Equal(t, []string{"first", "second"}, svc.syncedKeys())
	assert.Equal(t, 1, svc.maxInFlight)
}

func TestSyncScheduler_BatchesAreBounded(t *testing.T) {
	svc := newFakeSyncService(func(context.Context, string) error {
		time.Sleep(time.Millisecond)
		return nil
	})
	conn := testutil.NewFakeConnectivity(false)
	s := newTestScheduler(t, svc, conn, testSchedulerConfig())

	for i := 0; i < 25; i++ {
		s.Enqueue(fmt.Sprintf("key-%02d", i))
	}
	s.Start(context.Background())
	conn.SetOnline(true)

	require.Eventually(t, func() bool { return len(svc.syncedKeys()) == 25 }, waitFor, time.Millisecond)
	assert.LessOrEqual(t, svc.maxInFlight, 10)
}

func TestSyncScheduler_RemoveDropsQueuedKey(t *testing.T) {
	svc := newFakeSyncService(nil)
	s := newTestScheduler(t, svc, testutil.NewFakeConnectivity(false), testSchedulerConfig())
	s.Start(context.Background())

	s.Enqueue("a")
	s.Remove("a")

	assert.Equal(t, 0, s.Pending())
}

func TestSyncScheduler_StopUnsubscribes(t *testing.T) {
	svc := newFakeSyncService(nil)
	conn := testutil.NewFakeConnectivity(false)
	s := newTestScheduler(t, svc, conn, testSchedulerConfig())

	s.Start(context.Background())
	assert.Equal(t, 1, conn.Subscribers())

	s.Stop()
	assert.Equal(t, 0, conn.Subscribers())

	// a stopped scheduler ignores reconnects and triggers
	s.Enqueue("a")
	conn.SetOnline(true)
	s.Trigger()
	time.Sleep(10 * time.Millisecond)
	assert.Empty(t, svc.syncedKeys())
	assert.Equal(t, 1, s.Pending())
}

func TestSyncScheduler_RestartKeepsQueue(t *testing.T) {
	svc := newFakeSyncService(nil)
	conn := testutil.NewFakeConnectivity(false)
	s := newTestScheduler(t, svc, conn, testSchedulerConfig())

	s.Start(context.Background())
	s.Enqueue("a")
	s.Stop()

	conn.SetOnline(true)
	s.Start(context.Background())

	require.Eventually(t, func() bool { return len(svc.syncedKeys()) == 1 }, waitFor, time.Millisecond)
}

func TestSyncScheduler_MarksFailedThroughSyncService(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := mock.NewMockClientSyncService(ctrl)

	cfg := testSchedulerConfig()
	cfg.MaxRetryAttempts = 1

	done := make(chan struct{})
	svc.EXPECT().PendingKeys(gomock.Any()).Return(nil, nil)
	svc.EXPECT().SyncKey(gomock.Any(), "k").Return(errors.New("rejected"))
	svc.EXPECT().MarkFailed(gomock.Any(), "k").DoAndReturn(func(context.Context, string) error {
		close(done)
		return nil
	})

	s := NewSyncScheduler(svc, testutil.NewFakeConnectivity(true), cfg, nil, logger.Nop())
	defer s.Stop()
	s.Start(context.Background())
	s.Enqueue("k")

	select {
	case <-done:
	case <-time.After(waitFor):
		t.Fatal("record was not marked as failed")
	}
}
