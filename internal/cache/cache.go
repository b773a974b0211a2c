// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package cache keeps recently touched records in memory so repeated loads
// skip the local database.
package cache

import (
	"sync"
	"time"

	"github.com/MKhiriev/go-sync-keeper/internal/utils"
	"github.com/MKhiriev/go-sync-keeper/models"
)

type entry struct {
	record     models.Record
	insertedAt time.Time
}

// RecordCache is a goroutine-safe key to record map whose entries expire a
// fixed time after insertion. Expired entries are dropped lazily on lookup.
type RecordCache struct {
	mu      sync.Mutex
	entries map[string]entry
	timeout time.Duration
	clock   utils.Clock
}

// NewRecordCache creates an empty cache with the given freshness window.
// A nil clock means the system clock.
func NewRecordCache(timeout time.Duration, clock utils.Clock) *RecordCache {
	if clock == nil {
		clock = utils.SystemClock{}
	}

	return &RecordCache{
		entries: make(map[string]entry),
		timeout: timeout,
		clock:   clock,
	}
}

// Get returns the cached record if it was inserted less than the timeout ago.
func (c *RecordCache) Get(key string) (models.Record, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	e, ok := c.entries[key]
	if !ok {
		return models.Record{}, false
	}

	if c.clock.Now().Sub(e.insertedAt) >= c.timeout {
		delete(c.entries, key)
		return models.Record{}, false
	}

	return e.record, true
}

// Set stores rec under key, replacing any previous entry and restarting its
// freshness window.
func (c *RecordCache) Set(key string, rec models.Record) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries[key] = entry{record: rec, insertedAt: c.clock.Now()}
}

// Invalidate removes key. Missing keys are ignored.
func (c *RecordCache) Invalidate(key string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	delete(c.entries, key)
}

// Purge drops every entry.
func (c *RecordCache) Purge() {
	c.mu.Lock()
	defer c.mu.Unlock()

	clear(c.entries)
}

// Len returns the number of entries, fresh or not yet evicted.
func (c *RecordCache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	return len(c.entries)
}
