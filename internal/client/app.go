// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-sync-keeper/internal/adapter"
	"github.com/MKhiriev/go-sync-keeper/internal/cache"
	"github.com/MKhiriev/go-sync-keeper/internal/config"
	"github.com/MKhiriev/go-sync-keeper/internal/logger"
	"github.com/MKhiriev/go-sync-keeper/internal/service"
	"github.com/MKhiriev/go-sync-keeper/internal/store"
	"github.com/MKhiriev/go-sync-keeper/internal/workers"
)

const flushPollInterval = 20 * time.Millisecond

// App owns every long-lived component of the client. It is built once by
// [NewApp]; nothing in the client is process-global.
type App struct {
	storages  *store.ClientStorages
	storage   service.ClientStorageService
	monitor   *adapter.ConnectivityMonitor
	scheduler *workers.SyncScheduler
	workers   *workers.Workers

	flushTimeout time.Duration

	logger *logger.Logger
}

// NewApp opens the local store and wires the client. Background work does
// not start until [App.Start] or [App.Run].
func NewApp(ctx context.Context, cfg *config.ClientConfig, logger *logger.Logger) (*App, error) {
	storages, err := store.NewClientStorages(ctx, cfg.Storage, logger)
	if err != nil {
		return nil, fmt.Errorf("create local storage: %w", err)
	}

	remote, err := adapter.NewHTTPRemoteAuthority(cfg.Adapter, cfg.App, logger)
	if err != nil {
		return nil, errors.Join(fmt.Errorf("create remote adapter: %w", err), storages.Close())
	}

	monitor := adapter.NewConnectivityMonitor(remote, cfg.Adapter.ProbeInterval, cfg.Adapter.RequestTimeout, logger)
	recordCache := cache.NewRecordCache(cfg.Cache.Timeout, nil)

	syncService := service.NewClientSyncService(storages.RecordRepository, remote, recordCache, logger)
	scheduler := workers.NewSyncScheduler(syncService, monitor, workers.NewSchedulerConfig(cfg.Workers), nil, logger)

	storage := service.NewClientStorageService(service.ClientStorageDeps{
		Repository:   storages.RecordRepository,
		Remote:       remote,
		Connectivity: monitor,
		Cache:        recordCache,
		Queue:        scheduler,
	}, logger)

	return &App{
		storages:     storages,
		storage:      storage,
		monitor:      monitor,
		scheduler:    scheduler,
		workers:      workers.NewWorkers(monitor, scheduler),
		flushTimeout: 2 * cfg.Adapter.RequestTimeout,
		logger:       logger,
	}, nil
}

// Storage returns the local-first key/value API.
func (a *App) Storage() service.ClientStorageService {
	return a.storage
}

// Online reports the last known connectivity state.
func (a *App) Online() bool {
	return a.monitor.IsOnline()
}

// Pending returns the number of keys waiting in the retry queue.
func (a *App) Pending() int {
	return a.scheduler.Pending()
}

// Start probes connectivity and starts the sync scheduler.
func (a *App) Start(ctx context.Context) {
	a.logger.Info().Str("func", "*App.Start").Msg("starting background sync")
	a.workers.Start(ctx)
}

// Stop halts background sync. Queued keys stay pending in the local store
// and are picked up by the next Start.
func (a *App) Stop() {
	a.workers.Stop()
	a.logger.Info().Str("func", "*App.Stop").Msg("background sync stopped")
}

// Close stops background sync and closes the local store.
func (a *App) Close() error {
	a.Stop()
	return a.storages.Close()
}

// Flush waits until the retry queue is drained, the device goes offline or
// the flush timeout passes, whichever comes first.
func (a *App) Flush(ctx context.Context) {
	ctx, cancel := context.WithTimeout(ctx, a.flushTimeout)
	defer cancel()

	t := time.NewTicker(flushPollInterval)
	defer t.Stop()

	for !a.scheduler.Idle() && a.monitor.IsOnline() {
		select {
		case <-ctx.Done():
			a.logger.Warn().Str("func", "*App.Flush").Int("pending", a.scheduler.Pending()).
				Msg("flush timed out, records stay pending")
			return
		case <-t.C:
		}
	}
}
