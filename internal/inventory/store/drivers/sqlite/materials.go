package sqlite

import (
	"context"

	"github.com/aussiebroadwan/inventory/internal/inventory/domain"
)

type materialsRepo struct {
	q *queries
}

func (r *materialsRepo) ListMaterials(ctx context.Context) ([]domain.Material, error) {
	rows, err := r.q.ListMaterials(ctx)
	if err != nil {
		return nil, mapErr(err)
	}

	items := make([]domain.Material, 0, len(rows))
	for _, row := range rows {
		items = append(items, mapMaterial(row))
	}
	return items, nil
}

func (r *materialsRepo) GetMaterialByID(ctx context.Context, id int64) (domain.Material, error) {
	row, err := r.q.GetMaterialByID(ctx, id)
	if err != nil {
		return domain.Material{}, mapErr(err)
	}
	return mapMaterial(row), nil
}

func (r *materialsRepo) GetMaterialByBarcode(ctx context.Context, barcode string) (domain.Material, error) {
	row, err := r.q.GetMaterialByBarcode(ctx, barcode)
	if err != nil {
		return domain.Material{}, mapErr(err)
	}
	return mapMaterial(row), nil
}

func (r *materialsRepo) CreateMaterial(ctx context.Context, in domain.MaterialInput) (domain.Material, error) {
	row, err := r.q.CreateMaterial(ctx, createMaterialParams{
		Name:     in.Name,
		Barcode:  in.Barcode,
		Quantity: in.Quantity,
		Unit:     in.Unit,
	})
	if err != nil {
		return domain.Material{}, mapErr(err)
	}
	return mapMaterial(row), nil
}

func (r *materialsRepo) UpdateMaterial(ctx context.Context, id int64, in domain.MaterialInput) error {
	return affectedOne(r.q.UpdateMaterial(ctx, updateMaterialParams{
		Name:     in.Name,
		Barcode:  in.Barcode,
		Quantity: in.Quantity,
		Unit:     in.Unit,
		ID:       id,
	}))
}

func (r *materialsRepo) DeleteMaterial(ctx context.Context, id int64) error {
	return affectedOne(r.q.DeleteMaterial(ctx, id))
}

func (r *materialsRepo) Count(ctx context.Context) (int64, error) {
	n, err := r.q.CountMaterials(ctx)
	if err != nil {
		return 0, mapErr(err)
	}
	return n, nil
}
