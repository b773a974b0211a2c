// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the client's view of the remote authority.
//
// [RemoteAuthority] decouples the sync engine from the transport. The package
// ships an HTTP/REST implementation ([NewHTTPRemoteAuthority]) and a
// [ConnectivityMonitor] that turns periodic health probes into online/offline
// notifications.
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] for transport-agnostic error
// handling (e.g. [ErrNotFound] for 404, [ErrUnauthorized] for 401).
package adapter

import (
	"context"

	"github.com/MKhiriev/go-sync-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/adapter_mock.go -package=mock

// RemoteAuthority is the server that holds the authoritative copy of every
// record. Implementations attach the bearer token to each request and map
// transport failures to the sentinel errors of this package.
type RemoteAuthority interface {
	// SetToken stores the bearer token attached to all subsequent requests.
	SetToken(token string)

	// Token returns the bearer token currently in use, or an empty string.
	Token() string

	// Upsert pushes one record. The server keeps whichever version has the
	// greater LastModified and returns the version it stored.
	Upsert(ctx context.Context, req models.SyncRequest) (models.RemoteRecord, error)

	// Fetch returns the server copy of key. Returns [ErrNotFound] (wrapped)
	// when the server has no such record.
	Fetch(ctx context.Context, key string) (models.RemoteRecord, error)

	// Delete removes key on the server. A record that is already gone is not
	// an error.
	Delete(ctx context.Context, key string) error

	// Ping checks that the server is reachable and healthy.
	Ping(ctx context.Context) error
}

// Connectivity reports whether the remote authority is currently reachable
// and lets interested parties react to changes.
type Connectivity interface {
	// IsOnline returns the last observed state.
	IsOnline() bool

	// OnConnectivityChanged registers fn to be called on every transition.
	// The returned function removes the subscription and is safe to call
	// more than once.
	OnConnectivityChanged(fn func(online bool)) (unsubscribe func())
}
