package commands

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/mysql"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
)

// migrationSets maps DB_DRIVER to the subdirectory holding its migrations.
var migrationSets = map[string]string{
	"postgres": "postgresql",
	"mysql":    "mysql",
}

// MigrationSource returns the file:// source URL of driver's migration set under dir.
func MigrationSource(dir, driver string) (string, error) {
	set, ok := migrationSets[driver]
	if !ok {
		return "", fmt.Errorf("no migrations for driver %q", driver)
	}

	path, err := filepath.Abs(filepath.Join(dir, set))
	if err != nil {
		return "", fmt.Errorf("resolve migrations path: %w", err)
	}
	if info, err := os.Stat(path); err != nil || !info.IsDir() {
		return "", fmt.Errorf("migrations directory %s not found", path)
	}

	return "file://" + filepath.ToSlash(path), nil
}

// RunMigrations applies every pending migration from source to databaseURL.
// databaseURL must be in the form golang-migrate expects (see config.MigrationURL).
// An already migrated database is not an error.
func RunMigrations(logger *slog.Logger, source, databaseURL string) error {
	logger.Info("running database migrations", slog.String("source", source))

	m, err := migrate.New(source, databaseURL)
	if err != nil {
		return fmt.Errorf("failed to create migrate instance: %w", err)
	}
	defer closeMigrate(m, logger)

	before, _, _ := m.Version()

	if err := m.Up(); err != nil {
		if errors.Is(err, migrate.ErrNoChange) {
			logger.Info("database already up to date", slog.Uint64("version", uint64(before)))
			return nil
		}
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	after, _, _ := m.Version()
	logger.Info("migrations applied",
		slog.Uint64("from_version", uint64(before)),
		slog.Uint64("to_version", uint64(after)),
	)
	return nil
}
