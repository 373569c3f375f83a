package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/aussiebroadwan/inventory/internal/inventory/domain"
	"github.com/aussiebroadwan/inventory/internal/inventory/store"
	msqlite "modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"
)

type Store struct {
	db *sql.DB
	q  *queries
}

// NewStore opens the SQLite database named by dsn and checks that it is
// reachable. Failures wrap store.ErrUnavailable.
func NewStore(dsn string) (*Store, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("%w: open %q: %w", store.ErrUnavailable, dsn, err)
	}

	// One connection for the life of the process. This also keeps
	// ":memory:" databases alive across calls.
	db.SetMaxOpenConns(1)

	if err := db.PingContext(context.Background()); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("%w: ping %q: %w", store.ErrUnavailable, dsn, err)
	}

	return NewStoreFromDB(db), nil
}

// NewStoreFromDB wraps an already opened handle.
func NewStoreFromDB(db *sql.DB) *Store {
	return &Store{db: db, q: newQueries(db)}
}

func (s *Store) Close() error { return s.db.Close() }

// Ping verifies the database connection is still alive.
func (s *Store) Ping(ctx context.Context) error {
	if err := s.db.PingContext(ctx); err != nil {
		return mapErr(err)
	}
	return nil
}

// WithTx executes fn within a transaction, automatically handling commit/rollback.
func (s *Store) WithTx(ctx context.Context, fn func(tx store.Tx) error) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return mapErr(err)
	}

	defer func() {
		_ = tx.Rollback() // no-op after commit
	}()

	if err := fn(newTx(tx)); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return mapErr(err)
	}
	return nil
}

func (s *Store) Users() store.Users         { return &usersRepo{q: s.q} }
func (s *Store) Materials() store.Materials { return &materialsRepo{q: s.q} }

// mapErr translates driver errors into store sentinels.
func mapErr(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, sql.ErrNoRows):
		return store.ErrNotFound
	case isUniqueViolation(err):
		return fmt.Errorf("%w: %w", store.ErrAlreadyExists, err)
	default:
		return fmt.Errorf("%w: %w", store.ErrUnavailable, err)
	}
}

func isUniqueViolation(err error) bool {
	var se *msqlite.Error
	if !errors.As(err, &se) {
		return false
	}
	switch se.Code() {
	case sqlite3.SQLITE_CONSTRAINT_UNIQUE:
		return true
	case sqlite3.SQLITE_CONSTRAINT:
		// connection without extended result codes
		return strings.Contains(se.Error(), "UNIQUE constraint failed")
	}
	return false
}

// affectedOne turns a zero rows-affected count into store.ErrNotFound.
func affectedOne(n int64, err error) error {
	if err != nil {
		return mapErr(err)
	}
	if n == 0 {
		return store.ErrNotFound
	}
	return nil
}

func mapUser(row userRow) domain.User {
	return domain.User{
		ID:       row.ID,
		Username: row.Username,
		Password: row.Password,
	}
}

func mapMaterial(row materialRow) domain.Material {
	return domain.Material{
		ID:       row.ID,
		Name:     row.Name,
		Barcode:  row.Barcode,
		Quantity: row.Quantity,
		Unit:     row.Unit,
	}
}
