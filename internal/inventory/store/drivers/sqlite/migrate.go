package sqlite

import (
	"errors"
	"fmt"

	"github.com/aussiebroadwan/inventory/internal/inventory/store"
	"github.com/aussiebroadwan/inventory/internal/inventory/store/drivers/sqlite/migrations"

	"github.com/golang-migrate/migrate/v4"
	migratesqlite "github.com/golang-migrate/migrate/v4/database/sqlite"
	"github.com/golang-migrate/migrate/v4/source/iofs"
)

// ApplyMigrations brings the schema up to date from the embedded migration
// files. golang-migrate wraps each migration in a transaction, so the
// tables of one migration are created together or not at all.
func (s *Store) ApplyMigrations() error {
	driver, err := migratesqlite.WithInstance(s.db, &migratesqlite.Config{})
	if err != nil {
		return fmt.Errorf("%w: migrate driver: %w", store.ErrUnavailable, err)
	}

	src, err := iofs.New(migrations.Migrations, ".")
	if err != nil {
		return fmt.Errorf("migrate source: %w", err)
	}

	instance, err := migrate.NewWithInstance("iofs", src, "", driver)
	if err != nil {
		return fmt.Errorf("%w: migrate: %w", store.ErrUnavailable, err)
	}

	if err := instance.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("%w: migrate up: %w", store.ErrUnavailable, err)
	}
	return nil
}
