package service

import (
	"context"
	"encoding/json"

	"github.com/MKhiriev/go-sync-keeper/models"
)

//go:generate mockgen -source=client_interfaces.go -destination=../mock/client_service_mock.go -package=mock

// ClientStorageService is the local-first key/value API offered to the rest
// of the application. Writes only ever fail on local I/O; synchronization
// with the remote authority happens in the background.
type ClientStorageService interface {
	// Save compresses value, stores it as a pending record and schedules it
	// for sync. Returns [ErrLocalStorage] (wrapped) on I/O failure, or a
	// codec error if value is not JSON-serializable.
	Save(ctx context.Context, key string, value any) error

	// Load returns the JSON document stored under key. When online, a
	// strictly newer remote version is adopted first. Returns
	// [ErrValueNotFound] when the key exists nowhere, and a wrapped
	// codec.ErrCorruptedPayload when the stored blob cannot be decoded.
	Load(ctx context.Context, key string) (json.RawMessage, error)

	// LoadInto is Load followed by json.Unmarshal into out.
	LoadInto(ctx context.Context, key string, out any) error

	// Delete removes key locally, then remotely. Both steps always run and
	// their errors are joined; the local removal is never rolled back.
	Delete(ctx context.Context, key string) error

	// SyncStatus reports the sync state of key.
	SyncStatus(ctx context.Context, key string) (models.SyncStatus, error)

	// PendingKeys lists keys written locally and not yet acknowledged.
	PendingKeys(ctx context.Context) ([]string, error)
}

// ClientSyncService pushes single records to the remote authority. It is
// driven by the sync scheduler.
type ClientSyncService interface {
	// SyncKey pushes the current local version of key. A key that no longer
	// exists locally or is already synced is a no-op.
	SyncKey(ctx context.Context, key string) error

	// MarkFailed flags key as having exhausted its retries.
	MarkFailed(ctx context.Context, key string) error

	// PendingKeys lists keys left pending, e.g. by a previous process.
	PendingKeys(ctx context.Context) ([]string, error)
}

// SyncQueue accepts keys that need to reach the remote authority.
type SyncQueue interface {
	Enqueue(key string)
	Remove(key string)
}
