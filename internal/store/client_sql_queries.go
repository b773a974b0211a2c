package store

const (
	saveRecord = `INSERT INTO records (record_key, payload, last_modified, sync_status)
		VALUES (?, ?, ?, ?)
		ON CONFLICT (record_key) DO UPDATE SET
			payload = excluded.payload,
			last_modified = MAX(excluded.last_modified, records.last_modified + 1),
			sync_status = excluded.sync_status
		RETURNING record_key, payload, last_modified, sync_status;`

	adoptRecord = `INSERT INTO records (record_key, payload, last_modified, sync_status)
		VALUES (?, ?, ?, 'synced')
		ON CONFLICT (record_key) DO UPDATE SET
			payload = excluded.payload,
			last_modified = excluded.last_modified,
			sync_status = 'synced'
		WHERE excluded.last_modified > records.last_modified;`

	getRecord = `SELECT record_key, payload, last_modified, sync_status
		FROM records
		WHERE record_key = ?;`

	deleteRecord = `DELETE FROM records WHERE record_key = ?;`

	markRecordSynced = `UPDATE records
		SET sync_status = 'synced'
		WHERE record_key = ? AND last_modified = ?;`

	setRecordSyncStatus = `UPDATE records
		SET sync_status = ?
		WHERE record_key = ?;`

	getRecordKeysByStatus = `SELECT record_key
		FROM records
		WHERE sync_status = ?
		ORDER BY last_modified, record_key;`
)
