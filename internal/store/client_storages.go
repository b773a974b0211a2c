package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-sync-keeper/internal/config"
	"github.com/MKhiriev/go-sync-keeper/internal/logger"
)

// ClientStorages groups the client-side repositories so they can be passed
// to the service layer as one value.
type ClientStorages struct {
	// RecordRepository is the SQLite-backed local record store.
	RecordRepository LocalRecordRepository

	db *DB
}

// NewClientStorages opens the SQLite file from cfg.DB.DSN (creating it and
// applying migrations when needed) and wires the repositories.
func NewClientStorages(ctx context.Context, cfg config.ClientStorage, logger *logger.Logger) (*ClientStorages, error) {
	logger.Info().Msg("creating new client storages...")

	db, err := NewConnectSQLite(ctx, cfg.DB, logger)
	if err != nil {
		return nil, fmt.Errorf("sqlite connection error: %w", err)
	}

	return &ClientStorages{
		RecordRepository: NewLocalRecordRepository(db, logger),
		db:               db,
	}, nil
}

// Close releases the database connection.
func (s *ClientStorages) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}
