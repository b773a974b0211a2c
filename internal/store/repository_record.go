package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-sync-keeper/internal/logger"
	"github.com/MKhiriev/go-sync-keeper/models"
)

// recordRepository is the PostgreSQL-backed implementation of
// [RecordRepository]. Rows are unique per (user_id, record_key).
//
// Every public method obtains a context-scoped logger via
// [logger.FromContext] so that database failures carry the request's
// trace fields.
type recordRepository struct {
	*DB
	logger *logger.Logger
}

// NewRecordRepository constructs a [RecordRepository] backed by db.
func NewRecordRepository(db *DB, logger *logger.Logger) RecordRepository {
	return &recordRepository{
		DB:     db,
		logger: logger,
	}
}

// Upsert inserts rec or replaces the stored row when rec is strictly newer.
// In both cases the row that ends up stored is returned, so a stale push
// learns about the newer server copy in the same round trip.
func (r *recordRepository) Upsert(ctx context.Context, rec models.RemoteRecord) (models.RemoteRecord, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildUpsertRecordQuery(rec.UserID, rec.Key, rec.Data, rec.LastModified)
	if err != nil {
		log.Err(err).Str("func", "recordRepository.Upsert").Msg("failed to create query")
		return models.RemoteRecord{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).Str("func", "recordRepository.Upsert").Msg("failed to begin transaction")
		return models.RemoteRecord{}, fmt.Errorf("%w: %w", ErrBeginningTransaction, r.wrapError(err))
	}
	defer tx.Rollback()

	stored, err := scanRemoteRecord(tx.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		// the stored version is at least as new; hand it back unchanged
		stored, err = r.get(ctx, tx, rec.UserID, rec.Key)
	}
	if err != nil {
		log.Err(err).
			Str("func", "recordRepository.Upsert").
			Str("user_id", rec.UserID).
			Str("key", rec.Key).
			Msg("failed to upsert record")
		return models.RemoteRecord{}, fmt.Errorf("failed to upsert record (key=%s): %w", rec.Key, r.wrapError(err))
	}

	if err = tx.Commit(); err != nil {
		log.Err(err).Str("func", "recordRepository.Upsert").Msg("failed to commit transaction")
		return models.RemoteRecord{}, fmt.Errorf("%w: %w", ErrCommitingTransaction, r.wrapError(err))
	}

	return stored, nil
}

func (r *recordRepository) Get(ctx context.Context, userID, key string) (models.RemoteRecord, error) {
	rec, err := r.get(ctx, r.DB, userID, key)
	if errors.Is(err, sql.ErrNoRows) {
		return models.RemoteRecord{}, ErrRecordNotFound
	}
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "recordRepository.Get").
			Str("user_id", userID).
			Str("key", key).
			Msg("failed to get record")
		return models.RemoteRecord{}, fmt.Errorf("%w: %w", ErrScanningRow, r.wrapError(err))
	}

	return rec, nil
}

func (r *recordRepository) GetAll(ctx context.Context, userID string) ([]models.RemoteRecord, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildGetAllRecordsQuery(userID)
	if err != nil {
		log.Err(err).Str("func", "recordRepository.GetAll").Msg("failed to create query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "recordRepository.GetAll").
			Str("user_id", userID).
			Msg("failed to execute query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, r.wrapError(err))
	}
	defer rows.Close()

	records := make([]models.RemoteRecord, 0)
	for rows.Next() {
		rec, err := scanRemoteRecord(rows)
		if err != nil {
			log.Err(err).Str("func", "recordRepository.GetAll").Msg("failed to scan row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		records = append(records, rec)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, r.wrapError(err))
	}

	return records, nil
}

func (r *recordRepository) Delete(ctx context.Context, userID, key string) error {
	log := logger.FromContext(ctx)

	query, args, err := buildDeleteRecordQuery(userID, key)
	if err != nil {
		log.Err(err).Str("func", "recordRepository.Delete").Msg("failed to create query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	res, err := r.DB.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "recordRepository.Delete").
			Str("user_id", userID).
			Str("key", key).
			Msg("failed to delete record")
		return fmt.Errorf("failed to delete record (key=%s): %w", key, r.wrapError(err))
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

type queryRower interface {
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

func (r *recordRepository) get(ctx context.Context, q queryRower, userID, key string) (models.RemoteRecord, error) {
	query, args, err := buildGetRecordQuery(userID, key)
	if err != nil {
		return models.RemoteRecord{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return scanRemoteRecord(q.QueryRowContext(ctx, query, args...))
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanRemoteRecord(row rowScanner) (models.RemoteRecord, error) {
	var rec models.RemoteRecord
	err := row.Scan(
		&rec.UserID,
		&rec.Key,
		&rec.Data,
		&rec.LastModified,
		&rec.CreatedAt,
		&rec.UpdatedAt,
	)

	return rec, err
}
