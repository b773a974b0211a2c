package store

import (
	"github.com/Masterminds/squirrel"
)

const recordsTable = "records"

var recordColumns = []string{"user_id", "record_key", "data", "last_modified", "created_at", "updated_at"}

var psql = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

// upsertIfNewerSuffix replaces the stored row only when the incoming
// last_modified is strictly greater. No row is returned otherwise.
const upsertIfNewerSuffix = `ON CONFLICT (user_id, record_key) DO UPDATE SET
		data = EXCLUDED.data,
		last_modified = EXCLUDED.last_modified,
		updated_at = NOW()
	WHERE records.last_modified < EXCLUDED.last_modified
	RETURNING user_id, record_key, data, last_modified, created_at, updated_at`

func buildUpsertRecordQuery(userID, key string, data []byte, lastModified int64) (string, []any, error) {
	return psql.Insert(recordsTable).
		Columns("user_id", "record_key", "data", "last_modified").
		Values(userID, key, data, lastModified).
		Suffix(upsertIfNewerSuffix).
		ToSql()
}

func buildGetRecordQuery(userID, key string) (string, []any, error) {
	return psql.Select(recordColumns...).
		From(recordsTable).
		Where(squirrel.Eq{"user_id": userID, "record_key": key}).
		ToSql()
}

func buildGetAllRecordsQuery(userID string) (string, []any, error) {
	return psql.Select(recordColumns...).
		From(recordsTable).
		Where(squirrel.Eq{"user_id": userID}).
		OrderBy("record_key").
		ToSql()
}

func buildDeleteRecordQuery(userID, key string) (string, []any, error) {
	return psql.Delete(recordsTable).
		Where(squirrel.Eq{"user_id": userID, "record_key": key}).
		ToSql()
}
