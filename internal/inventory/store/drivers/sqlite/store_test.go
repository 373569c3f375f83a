package sqlite_test

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/aussiebroadwan/inventory/internal/inventory/domain"
	"github.com/aussiebroadwan/inventory/internal/inventory/store"
	"github.com/aussiebroadwan/inventory/internal/inventory/store/drivers/sqlite"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *sqlite.Store {
	t.Helper()

	s, err := sqlite.NewStore(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })

	require.NoError(t, s.ApplyMigrations())
	return s
}

func bolt() domain.MaterialInput {
	return domain.MaterialInput{Name: "Bolt", Barcode: "123456", Quantity: 10, Unit: "pcs"}
}

func TestApplyMigrationsIsIdempotent(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "materials.sqlite")

	s, err := sqlite.NewStore(path)
	require.NoError(t, err)
	require.NoError(t, s.ApplyMigrations())
	_, err = s.Materials().CreateMaterial(ctx, bolt())
	require.NoError(t, err)
	require.NoError(t, s.Close())

	// Reopen and migrate again, data must survive.
	s, err = sqlite.NewStore(path)
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	require.NoError(t, s.ApplyMigrations())
	require.NoError(t, s.ApplyMigrations())

	n, err := s.Materials().Count(ctx)
	require.NoError(t, err)
	require.EqualValues(t, 1, n)
}

func TestNewStoreUnavailable(t *testing.T) {
	// The parent directory does not exist, so sqlite cannot create the file.
	_, err := sqlite.NewStore(filepath.Join(t.TempDir(), "missing", "materials.sqlite"))
	require.ErrorIs(t, err, store.ErrUnavailable)
}

func TestUsers(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	u, err := s.Users().CreateUser(ctx, "admin", "secret")
	require.NoError(t, err)
	require.NotZero(t, u.ID)
	require.Equal(t, "admin", u.Username)

	t.Run("duplicate username", func(t *testing.T) {
		_, err := s.Users().CreateUser(ctx, "admin", "other")
		require.ErrorIs(t, err, store.ErrAlreadyExists)

		n, err := s.Users().Count(ctx)
		require.NoError(t, err)
		require.EqualValues(t, 1, n)
	})

	t.Run("lookup is case sensitive", func(t *testing.T) {
		got, err := s.Users().GetUserByUsername(ctx, "admin")
		require.NoError(t, err)
		require.Equal(t, u, got)

		_, err = s.Users().GetUserByUsername(ctx, "Admin")
		require.ErrorIs(t, err, store.ErrNotFound)
	})

	t.Run("update password", func(t *testing.T) {
		require.NoError(t, s.Users().UpdatePassword(ctx, u.ID, "new"))
		got, err := s.Users().GetUserByUsername(ctx, "admin")
		require.NoError(t, err)
		require.Equal(t, "new", got.Password)

		require.ErrorIs(t, s.Users().UpdatePassword(ctx, 9999, "x"), store.ErrNotFound)
	})
}

func TestMaterialsCRUD(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)
	repo := s.Materials()

	m, err := repo.CreateMaterial(ctx, bolt())
	require.NoError(t, err)
	require.Equal(t, domain.Material{ID: m.ID, Name: "Bolt", Barcode: "123456", Quantity: 10, Unit: "pcs"}, m)

	_, err = repo.CreateMaterial(ctx, bolt())
	require.ErrorIs(t, err, store.ErrAlreadyExists)

	nut, err := repo.CreateMaterial(ctx, domain.MaterialInput{Name: "Nut", Barcode: "654321", Quantity: -3, Unit: "pcs"})
	require.NoError(t, err)
	require.EqualValues(t, -3, nut.Quantity)

	byCode, err := repo.GetMaterialByBarcode(ctx, "654321")
	require.NoError(t, err)
	require.Equal(t, nut, byCode)

	// Barcode taken by another row.
	err = repo.UpdateMaterial(ctx, nut.ID, domain.MaterialInput{Name: "Nut", Barcode: "123456", Quantity: 1, Unit: "pcs"})
	require.ErrorIs(t, err, store.ErrAlreadyExists)

	require.NoError(t, repo.UpdateMaterial(ctx, m.ID, domain.MaterialInput{Name: "Hex Bolt", Barcode: "111", Quantity: 20, Unit: "box"}))
	got, err := repo.GetMaterialByID(ctx, m.ID)
	require.NoError(t, err)
	require.Equal(t, domain.Material{ID: m.ID, Name: "Hex Bolt", Barcode: "111", Quantity: 20, Unit: "box"}, got)

	require.ErrorIs(t, repo.UpdateMaterial(ctx, 9999, bolt()), store.ErrNotFound)

	require.NoError(t, repo.DeleteMaterial(ctx, m.ID))
	require.ErrorIs(t, repo.DeleteMaterial(ctx, m.ID), store.ErrNotFound)
	_, err = repo.GetMaterialByID(ctx, m.ID)
	require.ErrorIs(t, err, store.ErrNotFound)

	items, err := repo.ListMaterials(ctx)
	require.NoError(t, err)
	require.Equal(t, []domain.Material{nut}, items)
}

func TestListOrderedAndIDsNotReused(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)
	repo := s.Materials()

	var ids []int64
	for _, code := range []string{"a", "b", "c"} {
		m, err := repo.CreateMaterial(ctx, domain.MaterialInput{Name: code, Barcode: code, Quantity: 1, Unit: "pcs"})
		require.NoError(t, err)
		ids = append(ids, m.ID)
	}

	require.NoError(t, repo.DeleteMaterial(ctx, ids[2]))
	d, err := repo.CreateMaterial(ctx, domain.MaterialInput{Name: "d", Barcode: "d", Quantity: 1, Unit: "pcs"})
	require.NoError(t, err)
	require.Greater(t, d.ID, ids[2], "AUTOINCREMENT must not hand out a deleted id")

	items, err := repo.ListMaterials(ctx)
	require.NoError(t, err)
	require.Len(t, items, 3)
	for i := 1; i < len(items); i++ {
		require.Less(t, items[i-1].ID, items[i].ID)
	}
}

func TestWithTx(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	t.Run("commit", func(t *testing.T) {
		err := s.WithTx(ctx, func(tx store.Tx) error {
			_, err := tx.Materials().CreateMaterial(ctx, bolt())
			return err
		})
		require.NoError(t, err)

		n, err := s.Materials().Count(ctx)
		require.NoError(t, err)
		require.EqualValues(t, 1, n)
	})

	t.Run("rollback on error", func(t *testing.T) {
		boom := errors.New("boom")
		err := s.WithTx(ctx, func(tx store.Tx) error {
			if _, err := tx.Materials().CreateMaterial(ctx, domain.MaterialInput{Name: "x", Barcode: "x", Quantity: 1, Unit: "pcs"}); err != nil {
				return err
			}
			return boom
		})
		require.ErrorIs(t, err, boom)

		_, err = s.Materials().GetMaterialByBarcode(ctx, "x")
		require.ErrorIs(t, err, store.ErrNotFound)
	})
}
