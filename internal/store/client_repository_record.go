package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-sync-keeper/internal/logger"
	"github.com/MKhiriev/go-sync-keeper/models"
)

type localRecordRepository struct {
	*DB
	logger *logger.Logger
}

// NewLocalRecordRepository returns the SQLite-backed [LocalRecordRepository].
func NewLocalRecordRepository(db *DB, logger *logger.Logger) LocalRecordRepository {
	return &localRecordRepository{
		DB:     db,
		logger: logger,
	}
}

func (l *localRecordRepository) Save(ctx context.Context, rec models.Record) (models.Record, error) {
	log := logger.FromContext(ctx)

	var saved models.Record
	err := l.DB.QueryRowContext(ctx, saveRecord,
		rec.Key,
		rec.Payload,
		rec.LastModified,
		rec.SyncStatus,
	).Scan(&saved.Key, &saved.Payload, &saved.LastModified, &saved.SyncStatus)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Record{}, ErrRecordNotSaved
	}
	if err != nil {
		log.Err(err).
			Str("func", "localRecordRepository.Save").
			Str("key", rec.Key).
			Msg("failed to execute upsert for record")
		return models.Record{}, fmt.Errorf("failed to save record (key=%s): %w", rec.Key, l.wrapError(err))
	}

	return saved, nil
}

func (l *localRecordRepository) Adopt(ctx context.Context, rec models.Record) (bool, error) {
	res, err := l.DB.ExecContext(ctx, adoptRecord, rec.Key, rec.Payload, rec.LastModified)
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "localRecordRepository.Adopt").
			Str("key", rec.Key).
			Int64("last_modified", rec.LastModified).
			Msg("failed to adopt remote record")
		return false, fmt.Errorf("failed to adopt record (key=%s): %w", rec.Key, l.wrapError(err))
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to read affected rows: %w", err)
	}

	return affected > 0, nil
}

func (l *localRecordRepository) Get(ctx context.Context, key string) (models.Record, error) {
	log := logger.FromContext(ctx)

	var rec models.Record
	err := l.DB.QueryRowContext(ctx, getRecord, key).
		Scan(&rec.Key, &rec.Payload, &rec.LastModified, &rec.SyncStatus)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Record{}, ErrRecordNotFound
	}
	if err != nil {
		log.Err(err).
			Str("func", "localRecordRepository.Get").
			Str("key", key).
			Msg("failed to query record")
		return models.Record{}, fmt.Errorf("%w: %w", ErrScanningRow, l.wrapError(err))
	}

	return rec, nil
}

func (l *localRecordRepository) Delete(ctx context.Context, key string) error {
	if _, err := l.DB.ExecContext(ctx, deleteRecord, key); err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "localRecordRepository.Delete").
			Str("key", key).
			Msg("failed to delete record")
		return fmt.Errorf("failed to delete record (key=%s): %w", key, l.wrapError(err))
	}

	return nil
}

func (l *localRecordRepository) MarkSynced(ctx context.Context, key string, lastModified int64) (bool, error) {
	res, err := l.DB.ExecContext(ctx, markRecordSynced, key, lastModified)
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "localRecordRepository.MarkSynced").
			Str("key", key).
			Int64("last_modified", lastModified).
			Msg("failed to mark record as synced")
		return false, fmt.Errorf("failed to mark record synced (key=%s): %w", key, l.wrapError(err))
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to read affected rows: %w", err)
	}

	return affected > 0, nil
}

func (l *localRecordRepository) SetSyncStatus(ctx context.Context, key string, status models.SyncStatus) error {
	res, err := l.DB.ExecContext(ctx, setRecordSyncStatus, status, key)
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "localRecordRepository.SetSyncStatus").
			Str("key", key).
			Str("status", status.String()).
			Msg("failed to update sync status")
		return fmt.Errorf("failed to update sync status (key=%s): %w", key, l.wrapError(err))
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read affected rows: %w", err)
	}
	if affected == 0 {
		return ErrRecordNotFound
	}

	return nil
}

func (l *localRecordRepository) GetKeysByStatus(ctx context.Context, status models.SyncStatus) ([]string, error) {
	log := logger.FromContext(ctx)

	rows, err := l.DB.QueryContext(ctx, getRecordKeysByStatus, status)
	if err != nil {
		log.Err(err).
			Str("func", "localRecordRepository.GetKeysByStatus").
			Str("status", status.String()).
			Msg("failed to query keys by status")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, l.wrapError(err))
	}
	defer rows.Close()

	keys := make([]string, 0)
	for rows.Next() {
		var key string
		if err := rows.Scan(&key); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		keys = append(keys, key)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return keys, nil
}
