package store

import (
	"context"
	"errors"

	"github.com/aussiebroadwan/inventory/internal/inventory/domain"
)

var (
	ErrNotFound      = errors.New("store: not found")
	ErrAlreadyExists = errors.New("store: already exists")
	ErrUnavailable   = errors.New("store: unavailable")
)

// Store is the root data access interface implemented by the sqlite driver.
// Sub-repositories are exposed as methods so a Tx-scoped store can hand out
// the same repos bound to the transaction.
type Store interface {
	Users() Users
	Materials() Materials

	// ApplyMigrations creates the users and materials tables if they are
	// missing. Safe to call on every start.
	ApplyMigrations() error

	// WithTx executes fn within a transaction. A nil return commits, an
	// error rolls back.
	WithTx(ctx context.Context, fn func(tx Tx) error) error

	Close() error
	Ping(ctx context.Context) error
}

// Tx is a transactional store.
type Tx interface {
	Users() Users
	Materials() Materials
}

type Users interface {
	// GetUserByUsername matches the username exactly, case included.
	GetUserByUsername(ctx context.Context, username string) (domain.User, error)

	// CreateUser inserts a user and returns it with the assigned id.
	// A duplicate username returns ErrAlreadyExists.
	CreateUser(ctx context.Context, username, passwordHash string) (domain.User, error)

	// UpdatePassword replaces the stored password value.
	UpdatePassword(ctx context.Context, userID int64, passwordHash string) error

	// Count returns the number of registered users.
	Count(ctx context.Context) (int64, error)
}

type Materials interface {
	// ListMaterials returns every material ordered by id ascending.
	ListMaterials(ctx context.Context) ([]domain.Material, error)

	GetMaterialByID(ctx context.Context, id int64) (domain.Material, error)
	GetMaterialByBarcode(ctx context.Context, barcode string) (domain.Material, error)

	// CreateMaterial inserts a row; a duplicate barcode returns ErrAlreadyExists.
	CreateMaterial(ctx context.Context, in domain.MaterialInput) (domain.Material, error)

	// UpdateMaterial rewrites all editable fields. ErrNotFound when no row has
	// the id, ErrAlreadyExists when the barcode belongs to another row.
	UpdateMaterial(ctx context.Context, id int64, in domain.MaterialInput) error

	// DeleteMaterial removes the row, ErrNotFound when it does not exist.
	DeleteMaterial(ctx context.Context, id int64) error

	Count(ctx context.Context) (int64, error)
}
