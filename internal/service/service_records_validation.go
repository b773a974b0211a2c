package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-sync-keeper/internal/validators"
	"github.com/MKhiriev/go-sync-keeper/models"
)

// RecordValidationService rejects malformed input before it reaches the
// wrapped RecordService.
type RecordValidationService struct {
	inner     RecordService
	validator validators.Validator
}

func NewRecordValidationService() RecordServiceWrapper {
	return &RecordValidationService{
		validator: validators.NewRecordValidator(),
	}
}

func (v *RecordValidationService) Sync(ctx context.Context, userID string, req models.SyncRequest) (models.RemoteRecord, error) {
	if userID == "" {
		return models.RemoteRecord{}, ErrValidationNoUserID
	}
	if err := v.validator.Validate(ctx, req); err != nil {
		return models.RemoteRecord{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	return v.inner.Sync(ctx, userID, req)
}

func (v *RecordValidationService) Get(ctx context.Context, userID, key string) (models.RemoteRecord, error) {
	if err := v.validateScope(ctx, userID, key); err != nil {
		return models.RemoteRecord{}, err
	}

	return v.inner.Get(ctx, userID, key)
}

func (v *RecordValidationService) GetAll(ctx context.Context, userID string) ([]models.RemoteRecord, error) {
	if userID == "" {
		return nil, ErrValidationNoUserID
	}

	return v.inner.GetAll(ctx, userID)
}

func (v *RecordValidationService) Delete(ctx context.Context, userID, key string) error {
	if err := v.validateScope(ctx, userID, key); err != nil {
		return err
	}

	return v.inner.Delete(ctx, userID, key)
}

func (v *RecordValidationService) Wrap(wrapped RecordService) RecordService {
	v.inner = wrapped
	return v
}

func (v *RecordValidationService) validateScope(ctx context.Context, userID, key string) error {
	if userID == "" {
		return ErrValidationNoUserID
	}
	if err := v.validator.Validate(ctx, key); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}
	return nil
}
