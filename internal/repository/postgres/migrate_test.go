package postgres

import (
	"io/fs"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMigrationURL(t *testing.T) {
	tests := []struct {
		in       string
		expected string
	}{
		{"postgres://user:pw@localhost:5432/fortuna?sslmode=disable", "pgx5://user:pw@localhost:5432/fortuna?sslmode=disable"},
		{"postgresql://localhost/fortuna", "pgx5://localhost/fortuna"},
		{"pgx5://localhost/fortuna", "pgx5://localhost/fortuna"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, migrationURL(tt.in))
	}
}

func TestMigrationsEmbedded(t *testing.T) {
	entries, err := fs.ReadDir(migrationsFS, "migrations")
	require.NoError(t, err)

	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, e.Name())
	}
	assert.Contains(t, names, "000001_init.up.sql")
	assert.Contains(t, names, "000001_init.down.sql")
}
