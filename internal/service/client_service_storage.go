package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-sync-keeper/internal/adapter"
	"github.com/MKhiriev/go-sync-keeper/internal/cache"
	"github.com/MKhiriev/go-sync-keeper/internal/codec"
	"github.com/MKhiriev/go-sync-keeper/internal/logger"
	"github.com/MKhiriev/go-sync-keeper/internal/store"
	"github.com/MKhiriev/go-sync-keeper/internal/utils"
	"github.com/MKhiriev/go-sync-keeper/internal/validators"
	"github.com/MKhiriev/go-sync-keeper/models"
)

// ClientStorageDeps lists the collaborators of [NewClientStorageService].
// Resolver and Clock fall back to [LastWriteWins] and the system clock.
type ClientStorageDeps struct {
	Repository   store.LocalRecordRepository
	Remote       adapter.RemoteAuthority
	Connectivity adapter.Connectivity
	Cache        *cache.RecordCache
	Resolver     ConflictResolver
	Queue        SyncQueue
	Clock        utils.Clock
}

type clientStorageService struct {
	repo         store.LocalRecordRepository
	remote       adapter.RemoteAuthority
	connectivity adapter.Connectivity
	cache        *cache.RecordCache
	resolver     ConflictResolver
	queue        SyncQueue
	clock        utils.Clock
	validator    validators.Validator

	logger *logger.Logger
}

func NewClientStorageService(deps ClientStorageDeps, logger *logger.Logger) ClientStorageService {
	if deps.Resolver == nil {
		deps.Resolver = NewLastWriteWins()
	}
	if deps.Clock == nil {
		deps.Clock = utils.SystemClock{}
	}

	return &clientStorageService{
		repo:         deps.Repository,
		remote:       deps.Remote,
		connectivity: deps.Connectivity,
		cache:        deps.Cache,
		resolver:     deps.Resolver,
		queue:        deps.Queue,
		clock:        deps.Clock,
		validator:    validators.NewRecordValidator(),
		logger:       logger,
	}
}

func (s *clientStorageService) Save(ctx context.Context, key string, value any) error {
	if err := s.validateKey(ctx, key); err != nil {
		return err
	}

	payload, err := codec.Compress(value)
	if err != nil {
		return err
	}

	stored, err := s.repo.Save(ctx, models.Record{
		Key:          key,
		Payload:      payload,
		LastModified: s.clock.Now().UnixMilli(),
		SyncStatus:   models.SyncStatusPending,
	})
	if err != nil {
		return mapStoreError(err)
	}

	s.cache.Set(key, stored)
	s.queue.Enqueue(key)

	s.logger.Debug().Str("func", "*clientStorageService.Save").
		Str("key", key).
		Int64("last_modified", stored.LastModified).
		Int("payload_size", len(payload)).
		Msg("record saved locally")

	return nil
}

func (s *clientStorageService) Load(ctx context.Context, key string) (json.RawMessage, error) {
	if err := s.validateKey(ctx, key); err != nil {
		return nil, err
	}

	rec, err := s.resolve(ctx, key)
	if err != nil {
		return nil, err
	}

	value, err := codec.Decompress(rec.Payload)
	if err != nil {
		s.cache.Invalidate(key)
		s.logger.Err(err).Str("func", "*clientStorageService.Load").Str("key", key).Msg("stored payload cannot be decoded")
		return nil, fmt.Errorf("key %q: %w", key, err)
	}

	return value, nil
}

func (s *clientStorageService) LoadInto(ctx context.Context, key string, out any) error {
	value, err := s.Load(ctx, key)
	if err != nil {
		return err
	}

	if err = json.Unmarshal(value, out); err != nil {
		return fmt.Errorf("error decoding value of key %q: %w", key, err)
	}

	return nil
}

// resolve walks cache, local store and remote authority in that order.
func (s *clientStorageService) resolve(ctx context.Context, key string) (models.Record, error) {
	if rec, ok := s.cache.Get(key); ok {
		return rec, nil
	}

	local, err := s.repo.Get(ctx, key)
	if err != nil && !errors.Is(err, store.ErrRecordNotFound) {
		return models.Record{}, mapStoreError(err)
	}
	found := err == nil
	if found {
		s.cache.Set(key, local)
	}

	if !s.connectivity.IsOnline() {
		if !found {
			return models.Record{}, ErrValueNotFound
		}
		return local, nil
	}

	remote, err := s.fetchRemote(ctx, key)
	if err != nil {
		s.logger.Warn().Err(err).Str("func", "*clientStorageService.resolve").
			Str("key", key).
			Bool("local_found", found).
			Msg("remote fetch failed, serving local state")
		if !found {
			return models.Record{}, ErrValueNotFound
		}
		return local, nil
	}

	if !found {
		if remote == nil {
			return models.Record{}, ErrValueNotFound
		}
		return s.adopt(ctx, *remote)
	}

	resolution := s.resolver.Resolve(local, remote)
	if !resolution.FromRemote {
		return local, nil
	}

	return s.adopt(ctx, resolution.Record)
}

// fetchRemote returns nil without error when the server has no copy.
func (s *clientStorageService) fetchRemote(ctx context.Context, key string) (*models.Record, error) {
	remote, err := s.remote.Fetch(ctx, key)
	if errors.Is(err, adapter.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, mapAdapterError(err)
	}

	rec := remote.ToRecord()
	rec.Key = key
	return &rec, nil
}

// adopt stores the remote version as synced. If a newer local write won the
// race the local version is returned instead.
func (s *clientStorageService) adopt(ctx context.Context, rec models.Record) (models.Record, error) {
	rec.SyncStatus = models.SyncStatusSynced

	adopted, err := s.repo.Adopt(ctx, rec)
	if err != nil {
		return models.Record{}, mapStoreError(err)
	}

	if !adopted {
		current, err := s.repo.Get(ctx, rec.Key)
		if err != nil {
			return models.Record{}, mapStoreError(err)
		}
		s.cache.Set(rec.Key, current)
		return current, nil
	}

	s.cache.Set(rec.Key, rec)
	s.logger.Info().Str("func", "*clientStorageService.adopt").
		Str("key", rec.Key).
		Int64("last_modified", rec.LastModified).
		Msg("adopted newer remote version")

	return rec, nil
}

func (s *clientStorageService) Delete(ctx context.Context, key string) error {
	if err := s.validateKey(ctx, key); err != nil {
		return err
	}

	var localErr, remoteErr error

	if err := s.repo.Delete(ctx, key); err != nil {
		localErr = mapStoreError(err)
	}
	s.cache.Invalidate(key)
	s.queue.Remove(key)

	if err := s.remote.Delete(ctx, key); err != nil {
		remoteErr = mapAdapterError(err)
		s.logger.Warn().Err(err).Str("func", "*clientStorageService.Delete").Str("key", key).Msg("remote delete failed")
	}

	return errors.Join(localErr, remoteErr)
}

func (s *clientStorageService) SyncStatus(ctx context.Context, key string) (models.SyncStatus, error) {
	rec, err := s.repo.Get(ctx, key)
	if errors.Is(err, store.ErrRecordNotFound) {
		return "", ErrValueNotFound
	}
	if err != nil {
		return "", mapStoreError(err)
	}

	return rec.SyncStatus, nil
}

func (s *clientStorageService) PendingKeys(ctx context.Context) ([]string, error) {
	keys, err := s.repo.GetKeysByStatus(ctx, models.SyncStatusPending)
	if err != nil {
		return nil, mapStoreError(err)
	}
	return keys, nil
}

func (s *clientStorageService) validateKey(ctx context.Context, key string) error {
	if err := s.validator.Validate(ctx, key); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidKey, err)
	}
	return nil
}
