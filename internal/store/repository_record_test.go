package store

import (
	"context"
	"database/sql/driver"
	"errors"
	"fmt"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-sync-keeper/internal/logger"
	"github.com/MKhiriev/go-sync-keeper/models"
)

func newTestRecordRepo(t *testing.T) (RecordRepository, sqlmock.Sqlmock) {
	t.Helper()
	conn, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })

	l := logger.Nop()
	return NewRecordRepository(NewDB(conn, NewPostgresErrorClassifier(), l), l), mock
}

func pgError(code string) error {
	return &pgconn.PgError{Code: code}
}

var remoteColumns = []string{"user_id", "record_key", "data", "last_modified", "created_at", "updated_at"}

func TestRecordRepository_Upsert_Newer(t *testing.T) {
	repo, mock := newTestRecordRepo(t)
	now := time.Now()
	rec := models.RemoteRecord{UserID: "u1", Key: "k", Data: []byte{9}, LastModified: 200}

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO records (user_id,record_key,data,last_modified) VALUES ($1,$2,$3,$4) ON CONFLICT")).
		WithArgs("u1", "k", []byte{9}, int64(200)).
		WillReturnRows(sqlmock.NewRows(remoteColumns).AddRow("u1", "k", []byte{9}, int64(200), now, now))
	mock.ExpectCommit()

	stored, err := repo.Upsert(context.Background(), rec)

	require.NoError(t, err)
	assert.Equal(t, int64(200), stored.LastModified)
	assert.Equal(t, []byte{9}, stored.Data)
	require.NotNil(t, stored.UpdatedAt)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRecordRepository_Upsert_StaleReturnsStored(t *testing.T) {
	repo, mock := newTestRecordRepo(t)
	now := time.Now()

	mock.ExpectBegin()
	mock.ExpectQuery("INSERT INTO records").
		WillReturnRows(sqlmock.NewRows(remoteColumns))
	mock.ExpectQuery(regexp.QuoteMeta("SELECT user_id, record_key, data, last_modified, created_at, updated_at FROM records WHERE")).
		WithArgs("k", "u1").
		WillReturnRows(sqlmock.NewRows(remoteColumns).AddRow("u1", "k", []byte{7}, int64(300), now, now))
	mock.ExpectCommit()

	stored, err := repo.Upsert(context.Background(), models.RemoteRecord{UserID: "u1", Key: "k", Data: []byte{1}, LastModified: 250})

	require.NoError(t, err)
	assert.Equal(t, int64(300), stored.LastModified)
	assert.Equal(t, []byte{7}, stored.Data)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRecordRepository_Upsert_TransientError(t *testing.T) {
	repo, mock := newTestRecordRepo(t)

	mock.ExpectBegin()
	mock.ExpectQuery("INSERT INTO records").WillReturnError(pgError(pgerrcode.SerializationFailure))
	mock.ExpectRollback()

	_, err := repo.Upsert(context.Background(), models.RemoteRecord{UserID: "u1", Key: "k", Data: []byte{1}, LastModified: 1})

	assert.ErrorIs(t, err, ErrTransient)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRecordRepository_Upsert_ConstraintErrorIsNotTransient(t *testing.T) {
	repo, mock := newTestRecordRepo(t)

	mock.ExpectBegin()
	mock.ExpectQuery("INSERT INTO records").WillReturnError(pgError(pgerrcode.NotNullViolation))
	mock.ExpectRollback()

	_, err := repo.Upsert(context.Background(), models.RemoteRecord{UserID: "u1", Key: "k"})

	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrTransient)
}

func TestRecordRepository_Upsert_BeginFails(t *testing.T) {
	repo, mock := newTestRecordRepo(t)
	mock.ExpectBegin().WillReturnError(errors.New("conn refused"))

	_, err := repo.Upsert(context.Background(), models.RemoteRecord{UserID: "u1", Key: "k"})

	assert.ErrorIs(t, err, ErrBeginningTransaction)
}

func TestRecordRepository_Get(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		repo, mock := newTestRecordRepo(t)
		now := time.Now()
		mock.ExpectQuery("SELECT user_id, record_key").
			WithArgs("k", "u1").
			WillReturnRows(sqlmock.NewRows(remoteColumns).AddRow("u1", "k", []byte{1}, int64(5), now, now))

		rec, err := repo.Get(context.Background(), "u1", "k")

		require.NoError(t, err)
		assert.Equal(t, "u1", rec.UserID)
		assert.Equal(t, int64(5), rec.LastModified)
	})

	t.Run("not found", func(t *testing.T) {
		repo, mock := newTestRecordRepo(t)
		mock.ExpectQuery("SELECT user_id, record_key").
			WillReturnRows(sqlmock.NewRows(remoteColumns))

		_, err := repo.Get(context.Background(), "u1", "k")

		assert.ErrorIs(t, err, ErrRecordNotFound)
	})
}

func TestRecordRepository_GetAll(t *testing.T) {
	repo, mock := newTestRecordRepo(t)
	now := time.Now()
	mock.ExpectQuery(regexp.QuoteMeta("FROM records WHERE user_id = $1 ORDER BY record_key")).
		WithArgs("u1").
		WillReturnRows(sqlmock.NewRows(remoteColumns).
			AddRow("u1", "a", []byte{1}, int64(1), now, now).
			AddRow("u1", "b", []byte{2}, int64(2), now, now))

	records, err := repo.GetAll(context.Background(), "u1")

	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, "a", records[0].Key)
	assert.Equal(t, "b", records[1].Key)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRecordRepository_GetAll_QueryError(t *testing.T) {
	repo, mock := newTestRecordRepo(t)
	mock.ExpectQuery("SELECT").WillReturnError(pgError(pgerrcode.ConnectionFailure))

	_, err := repo.GetAll(context.Background(), "u1")

	assert.ErrorIs(t, err, ErrExecutingQuery)
	assert.ErrorIs(t, err, ErrTransient)
}

func TestRecordRepository_Delete(t *testing.T) {
	t.Run("deleted", func(t *testing.T) {
		repo, mock := newTestRecordRepo(t)
		mock.ExpectExec(regexp.QuoteMeta("DELETE FROM records WHERE record_key = $1 AND user_id = $2")).
			WithArgs("k", "u1").
			WillReturnResult(sqlmock.NewResult(0, 1))

		assert.NoError(t, repo.Delete(context.Background(), "u1", "k"))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("missing", func(t *testing.T) {
		repo, mock := newTestRecordRepo(t)
		mock.ExpectExec("DELETE FROM records").WillReturnResult(sqlmock.NewResult(0, 0))

		assert.ErrorIs(t, repo.Delete(context.Background(), "u1", "k"), ErrRecordNotFound)
	})
}

func TestPostgresErrorClassifier_Classify(t *testing.T) {
	c := NewPostgresErrorClassifier()

	assert.Equal(t, NonRetryable, c.Classify(nil))
	assert.Equal(t, NonRetryable, c.Classify(errors.New("plain")))
	assert.Equal(t, Retryable, c.Classify(pgError(pgerrcode.DeadlockDetected)))
	assert.Equal(t, Retryable, c.Classify(pgError(pgerrcode.CannotConnectNow)))
	assert.Equal(t, NonRetryable, c.Classify(pgError(pgerrcode.UniqueViolation)))
	assert.Equal(t, NonRetryable, c.Classify(pgError(pgerrcode.UndefinedTable)))
	assert.Equal(t, Retryable, c.Classify(pgError(pgerrcode.ConnectionFailure)))
	assert.Equal(t, Retryable, c.Classify(pgError(pgerrcode.TooManyConnections)))
	assert.Equal(t, Retryable, c.Classify(fmt.Errorf("exec: %w", driver.ErrBadConn)))
}
