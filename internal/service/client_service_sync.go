package service

import (
	"context"
	"errors"

	"github.com/MKhiriev/go-sync-keeper/internal/adapter"
	"github.com/MKhiriev/go-sync-keeper/internal/cache"
	"github.com/MKhiriev/go-sync-keeper/internal/logger"
	"github.com/MKhiriev/go-sync-keeper/internal/store"
	"github.com/MKhiriev/go-sync-keeper/models"
)

type clientSyncService struct {
	repo   store.LocalRecordRepository
	remote adapter.RemoteAuthority
	cache  *cache.RecordCache

	logger *logger.Logger
}

// NewClientSyncService returns a [ClientSyncService]. recordCache is
// invalidated whenever the server answers with a newer version than the
// one pushed.
func NewClientSyncService(repo store.LocalRecordRepository, remote adapter.RemoteAuthority, recordCache *cache.RecordCache, logger *logger.Logger) ClientSyncService {
	return &clientSyncService{
		repo:   repo,
		remote: remote,
		cache:  recordCache,
		logger: logger,
	}
}

func (s *clientSyncService) SyncKey(ctx context.Context, key string) error {
	rec, err := s.repo.Get(ctx, key)
	if errors.Is(err, store.ErrRecordNotFound) {
		// deleted after it was queued
		return nil
	}
	if err != nil {
		return mapStoreError(err)
	}
	if rec.SyncStatus == models.SyncStatusSynced {
		return nil
	}

	stored, err := s.remote.Upsert(ctx, models.SyncRequest{
		Key:          rec.Key,
		Data:         rec.Payload,
		LastModified: rec.LastModified,
	})
	if err != nil {
		return mapAdapterError(err)
	}

	log := s.logger.With().Str("func", "*clientSyncService.SyncKey").Str("key", key).Logger()

	if stored.LastModified > rec.LastModified {
		// another device wrote a newer version in the meantime
		newer := stored.ToRecord()
		newer.Key = key
		adopted, err := s.repo.Adopt(ctx, newer)
		if err != nil {
			return mapStoreError(err)
		}
		if adopted {
			s.cache.Invalidate(key)
		}
		log.Info().Bool("adopted", adopted).Int64("remote_last_modified", stored.LastModified).Msg("server kept a newer version")
		return nil
	}

	updated, err := s.repo.MarkSynced(ctx, key, rec.LastModified)
	if err != nil {
		return mapStoreError(err)
	}
	if !updated {
		log.Debug().Msg("record changed while syncing, it stays pending")
		return nil
	}

	log.Debug().Int64("last_modified", rec.LastModified).Msg("record synced")
	return nil
}

func (s *clientSyncService) MarkFailed(ctx context.Context, key string) error {
	err := s.repo.SetSyncStatus(ctx, key, models.SyncStatusError)
	if errors.Is(err, store.ErrRecordNotFound) {
		return nil
	}
	return mapStoreError(err)
}

func (s *clientSyncService) PendingKeys(ctx context.Context) ([]string, error) {
	keys, err := s.repo.GetKeysByStatus(ctx, models.SyncStatusPending)
	if err != nil {
		return nil, mapStoreError(err)
	}
	return keys, nil
}
