package store

import (
	"database/sql"

	"github.com/MKhiriev/go-sync-keeper/internal/logger"
)

// DB wraps a *sql.DB with the error classification of its driver. The
// client opens it over SQLite, the server over PostgreSQL.
type DB struct {
	*sql.DB
	errorClassificator ErrorClassificator
	logger             *logger.Logger
}

// NewDB wraps an already opened connection. Intended for tests and for
// callers that manage the connection themselves.
func NewDB(conn *sql.DB, classificator ErrorClassificator, log *logger.Logger) *DB {
	if classificator == nil {
		classificator = noopClassifier{}
	}

	return &DB{DB: conn, errorClassificator: classificator, logger: log}
}

// wrapError marks err as transient when the driver says a retry may help.
func (db *DB) wrapError(err error) error {
	if db.errorClassificator != nil && db.errorClassificator.Classify(err) == Retryable {
		return joinTransient(err)
	}

	return err
}

type noopClassifier struct{}

func (noopClassifier) Classify(error) ErrorClassification {
	return NonRetryable
}
