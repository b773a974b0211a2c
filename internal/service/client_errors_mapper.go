// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"errors"
	"fmt"

	"github.com/MKhiriev/go-sync-keeper/internal/adapter"
	"github.com/MKhiriev/go-sync-keeper/internal/store"
)

// mapAdapterError translates the adapter's transport error into a service error.
// Everything stays matchable against the original adapter sentinel as well.
func mapAdapterError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, adapter.ErrNotFound) {
		return fmt.Errorf("%w: %w", ErrValueNotFound, err)
	}

	return fmt.Errorf("%w: %w", ErrRemoteSync, err)
}

// mapStoreError wraps a local repository failure. A missing record is passed
// through unchanged so callers can branch on store.ErrRecordNotFound.
func mapStoreError(err error) error {
	if err == nil || errors.Is(err, store.ErrRecordNotFound) {
		return err
	}

	return fmt.Errorf("%w: %w", ErrLocalStorage, err)
}
