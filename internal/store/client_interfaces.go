package store

import (
	"context"

	"github.com/MKhiriev/go-sync-keeper/models"
)

//go:generate mockgen -source=client_interfaces.go -destination=../mock/client_store_mock.go -package=mock

// LocalRecordRepository is the durable key to record map on the device.
type LocalRecordRepository interface {
	// Save upserts rec. The stored LastModified never moves backwards: it is
	// max(rec.LastModified, previous+1). The stored row is returned.
	Save(ctx context.Context, rec models.Record) (models.Record, error)
	// Adopt stores rec as synced only if no local version exists or the local
	// one is strictly older, and reports whether it did. The timestamp is kept
	// as given.
	Adopt(ctx context.Context, rec models.Record) (bool, error)
	// Get returns ErrRecordNotFound when the key is absent.
	Get(ctx context.Context, key string) (models.Record, error)
	// Delete is idempotent.
	Delete(ctx context.Context, key string) error
	// MarkSynced sets the synced status only while the stored LastModified
	// equals lastModified, and reports whether it did.
	MarkSynced(ctx context.Context, key string, lastModified int64) (bool, error)
	// SetSyncStatus returns ErrRecordNotFound when the key is absent.
	SetSyncStatus(ctx context.Context, key string, status models.SyncStatus) error
	// GetKeysByStatus lists keys in the given status, oldest write first.
	GetKeysByStatus(ctx context.Context, status models.SyncStatus) ([]string, error)
}
