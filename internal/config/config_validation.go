// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"strings"
)

// validate checks the merged [StructuredConfig] for values that are wrong
// regardless of the role reading them.
func (cfg *StructuredConfig) validate() error {
	if cfg.Workers.MaxRetryAttempts < 0 || cfg.Workers.BatchSize < 0 {
		return ErrInvalidWorkerConfigs
	}

	return nil
}

func (cfg *ClientConfig) validate() error {
	if cfg.Storage.DB.DSN == "" || strings.Contains(cfg.Storage.DB.DSN, "memory") {
		return ErrInvalidStorageConfigs
	}

	if cfg.Adapter.HTTPAddress == "" || cfg.Adapter.RequestTimeout <= 0 || cfg.Adapter.ProbeInterval <= 0 {
		return ErrInvalidAdapterConfigs
	}

	w := cfg.Workers
	if w.SyncInterval <= 0 || w.RetryBaseDelay <= 0 || w.RetryMaxDelay < w.RetryBaseDelay ||
		w.MaxRetryAttempts < 1 || w.BatchSize < 1 {
		return ErrInvalidWorkerConfigs
	}

	if cfg.Cache.Timeout <= 0 {
		return ErrInvalidCacheConfigs
	}

	return nil
}

func (cfg *ServerConfig) validate() error {
	if cfg.App.TokenSignKey == "" {
		return fmt.Errorf("%w: empty token sign key", ErrInvalidAppConfigs)
	}

	if cfg.IssueTokenFor != "" {
		// token issuing needs neither storage nor listeners
		return nil
	}

	if cfg.Storage.DB.DSN == "" {
		return ErrInvalidStorageConfigs
	}

	if cfg.Server.HTTPAddress == "" {
		return fmt.Errorf("%w: empty http address", ErrInvalidServerConfigs)
	}

	return nil
}
