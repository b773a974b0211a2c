package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-sync-keeper/internal/logger"
	"github.com/MKhiriev/go-sync-keeper/internal/store"
	"github.com/MKhiriev/go-sync-keeper/models"
)

type recordService struct {
	recordRepository store.RecordRepository

	logger *logger.Logger
}

func NewRecordService(recordRepository store.RecordRepository, logger *logger.Logger) RecordService {
	return &recordService{
		recordRepository: recordRepository,
		logger:           logger,
	}
}

func (r *recordService) Sync(ctx context.Context, userID string, req models.SyncRequest) (models.RemoteRecord, error) {
	stored, err := r.recordRepository.Upsert(ctx, models.RemoteRecord{
		UserID:       userID,
		Key:          req.Key,
		Data:         req.Data,
		LastModified: req.LastModified,
	})
	if err != nil {
		return models.RemoteRecord{}, fmt.Errorf("error syncing record: %w", err)
	}

	logger.FromContext(ctx).Debug().
		Str("func", "*recordService.Sync").
		Str("key", req.Key).
		Bool("accepted", stored.LastModified == req.LastModified).
		Msg("record synced")

	return stored, nil
}

func (r *recordService) Get(ctx context.Context, userID, key string) (models.RemoteRecord, error) {
	return r.recordRepository.Get(ctx, userID, key)
}

func (r *recordService) GetAll(ctx context.Context, userID string) ([]models.RemoteRecord, error) {
	return r.recordRepository.GetAll(ctx, userID)
}

func (r *recordService) Delete(ctx context.Context, userID, key string) error {
	return r.recordRepository.Delete(ctx, userID, key)
}
