package store

import (
	"context"

	"github.com/MKhiriev/go-sync-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// RecordRepository is the server-side store of remote records, partitioned
// by user.
type RecordRepository interface {
	// Upsert stores rec unless the stored version is at least as new, and
	// returns whatever is stored afterwards.
	Upsert(ctx context.Context, rec models.RemoteRecord) (models.RemoteRecord, error)
	// Get returns ErrRecordNotFound when the user has no such key.
	Get(ctx context.Context, userID, key string) (models.RemoteRecord, error)
	// GetAll lists the user's records ordered by key.
	GetAll(ctx context.Context, userID string) ([]models.RemoteRecord, error)
	// Delete returns ErrRecordNotFound when nothing was removed.
	Delete(ctx context.Context, userID, key string) error
}
