package commands

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMigrationSource(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.Mkdir(filepath.Join(dir, "postgresql"), 0o755))

	t.Run("Postgres", func(t *testing.T) {
		source, err := MigrationSource(dir, "postgres")
		require.NoError(t, err)
		assert.True(t, strings.HasPrefix(source, "file://"))
		assert.True(t, strings.HasSuffix(source, "/postgresql"))
	})

	t.Run("MissingDirectory", func(t *testing.T) {
		_, err := MigrationSource(dir, "mysql")
		assert.ErrorContains(t, err, "not found")
	})

	t.Run("UnknownDriver", func(t *testing.T) {
		_, err := MigrationSource(dir, "sqlite")
		assert.EqualError(t, err, `no migrations for driver "sqlite"`)
	})

	t.Run("RepositoryMigrations", func(t *testing.T) {
		for _, driver := range []string{"postgres", "mysql"} {
			_, err := MigrationSource(filepath.Join("..", "..", "..", "migrations"), driver)
			assert.NoError(t, err, driver)
		}
	})
}

func TestRunMigrations(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	source, err := MigrationSource(filepath.Join("..", "..", "..", "migrations"), "postgres")
	require.NoError(t, err)

	t.Run("InvalidDatabaseURL", func(t *testing.T) {
		err := RunMigrations(logger, source, "invalid-connection-string")
		assert.ErrorContains(t, err, "failed to create migrate instance")
	})

	t.Run("UnknownSourceScheme", func(t *testing.T) {
		err := RunMigrations(logger, "nope://migrations", "postgres://localhost:1/db?sslmode=disable")
		assert.ErrorContains(t, err, "failed to create migrate instance")
	})
}
