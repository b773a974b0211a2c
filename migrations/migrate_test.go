// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package migrations

import (
	"database/sql"
	"io/fs"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMigrate_DBError(t *testing.T) {
	tests := []struct {
		name    string
		migrate func(db *sql.DB) error
	}{
		{name: "client", migrate: MigrateClient},
		{name: "server", migrate: MigrateServer},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, _, err := sqlmock.New()
			require.NoError(t, err)
			defer db.Close()

			// goose talks to the db itself; with no expectations every call fails
			err = tt.migrate(db)

			require.Error(t, err)
			assert.Contains(t, err.Error(), "migration error")
		})
	}
}

func TestMigrate_NilDB(t *testing.T) {
	err := MigrateClient(nil)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "db is nil")
}

func TestEmbeddedMigrations_Present(t *testing.T) {
	for _, dir := range []string{"client", "server"} {
		entries, err := fs.ReadDir(embedMigrations, dir)
		require.NoError(t, err)
		assert.NotEmpty(t, entries, dir)
	}
}
