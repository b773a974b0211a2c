package adapter

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/MKhiriev/go-sync-keeper/internal/logger"
)

// Pinger is the part of [RemoteAuthority] the monitor needs.
type Pinger interface {
	Ping(ctx context.Context) error
}

// ConnectivityMonitor implements [Connectivity] by probing the remote
// authority on a fixed interval. It starts offline and flips state only on
// the result of a probe.
type ConnectivityMonitor struct {
	pinger   Pinger
	interval time.Duration
	timeout  time.Duration

	online atomic.Bool

	subsMu sync.Mutex
	subs   map[uint64]func(online bool)
	nextID uint64

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup

	logger *logger.Logger
}

// NewConnectivityMonitor creates a monitor that probes pinger every interval.
// Each probe is bounded by timeout; a zero timeout falls back to interval.
func NewConnectivityMonitor(pinger Pinger, interval, timeout time.Duration, logger *logger.Logger) *ConnectivityMonitor {
	if timeout <= 0 {
		timeout = interval
	}
	return &ConnectivityMonitor{
		pinger:   pinger,
		interval: interval,
		timeout:  timeout,
		subs:     make(map[uint64]func(bool)),
		logger:   logger,
	}
}

// IsOnline implements [Connectivity].
func (m *ConnectivityMonitor) IsOnline() bool {
	return m.online.Load()
}

// OnConnectivityChanged implements [Connectivity].
func (m *ConnectivityMonitor) OnConnectivityChanged(fn func(online bool)) func() {
	m.subsMu.Lock()
	id := m.nextID
	m.nextID++
	m.subs[id] = fn
	m.subsMu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			m.subsMu.Lock()
			delete(m.subs, id)
			m.subsMu.Unlock()
		})
	}
}

// Start probes once synchronously, so IsOnline is meaningful as soon as Start
// returns, then keeps probing in the background until ctx is cancelled or Stop
// is called.
func (m *ConnectivityMonitor) Start(ctx context.Context) {
	m.Stop()

	m.Probe(ctx)

	m.mu.Lock()
	monitorCtx, cancel := context.WithCancel(ctx)
	m.cancel = cancel
	m.wg.Add(1)
	m.mu.Unlock()

	go func() {
		defer m.wg.Done()
		t := time.NewTicker(m.interval)
		defer t.Stop()

		for {
			select {
			case <-monitorCtx.Done():
				return
			case <-t.C:
				m.Probe(monitorCtx)
			}
		}
	}()
}

// Stop cancels the probing goroutine and waits for it to exit. Safe to call
// when the monitor is not running.
func (m *ConnectivityMonitor) Stop() {
	m.mu.Lock()
	cancel := m.cancel
	m.cancel = nil
	m.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	m.wg.Wait()
}

// Probe pings the remote authority once, records the result and notifies
// subscribers if the state changed. It returns the new state.
func (m *ConnectivityMonitor) Probe(ctx context.Context) bool {
	probeCtx, cancel := context.WithTimeout(ctx, m.timeout)
	defer cancel()

	err := m.pinger.Ping(probeCtx)
	if err != nil && ctx.Err() != nil {
		// shutting down, not a connectivity change
		return m.IsOnline()
	}

	online := err == nil
	if m.online.Swap(online) == online {
		return online
	}

	ev := m.logger.Info()
	if err != nil {
		ev = m.logger.Warn().Err(err)
	}
	ev.Str("func", "*ConnectivityMonitor.Probe").Bool("online", online).Msg("connectivity changed")

	m.notify(online)
	return online
}

func (m *ConnectivityMonitor) notify(online bool) {
	m.subsMu.Lock()
	fns := make([]func(bool), 0, len(m.subs))
	for _, fn := range m.subs {
		fns = append(fns, fn)
	}
	m.subsMu.Unlock()

	for _, fn := range fns {
		fn(online)
	}
}
