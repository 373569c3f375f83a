package sqlite

import (
	"database/sql"

	"github.com/aussiebroadwan/inventory/internal/inventory/store"
)

type txStore struct {
	q *queries
}

func newTx(tx *sql.Tx) *txStore {
	return &txStore{q: newQueries(tx)}
}

func (t *txStore) Users() store.Users         { return &usersRepo{q: t.q} }
func (t *txStore) Materials() store.Materials { return &materialsRepo{q: t.q} }
