package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/aussiebroadwan/inventory/internal/inventory/domain"
	"github.com/aussiebroadwan/inventory/internal/inventory/store"
	"github.com/aussiebroadwan/inventory/pkg/slogx"
)

// MaterialService is the create/read/update/delete surface over the
// materials table.
type MaterialService struct {
	Store store.Store
}

// List returns every material in id order.
func (s *MaterialService) List(ctx context.Context) ([]domain.Material, error) {
	items, err := s.Store.Materials().ListMaterials(ctx)
	if err != nil {
		slogx.FromContext(ctx).Error("failed to list materials", slog.Any("error", err))
		return nil, translate("list materials", err)
	}
	return items, nil
}

func (s *MaterialService) Get(ctx context.Context, id int64) (domain.Material, error) {
	m, err := s.Store.Materials().GetMaterialByID(ctx, id)
	if err != nil {
		return domain.Material{}, translate(fmt.Sprintf("get material %d", id), err)
	}
	return m, nil
}

func (s *MaterialService) FindByBarcode(ctx context.Context, barcode string) (domain.Material, error) {
	barcode = strings.TrimSpace(barcode)
	if barcode == "" {
		return domain.Material{}, fmt.Errorf("find material: barcode is required: %w", ErrValidationFailed)
	}

	m, err := s.Store.Materials().GetMaterialByBarcode(ctx, barcode)
	if err != nil {
		return domain.Material{}, translate(fmt.Sprintf("find material %q", barcode), err)
	}
	return m, nil
}

// Add inserts a material. A barcode already in use returns ErrAlreadyExists
// and leaves the table unchanged.
func (s *MaterialService) Add(ctx context.Context, in domain.MaterialInput) (domain.Material, error) {
	l := slogx.FromContext(ctx)

	in, err := normalize(in)
	if err != nil {
		return domain.Material{}, fmt.Errorf("add material: %w", err)
	}

	m, err := s.Store.Materials().CreateMaterial(ctx, in)
	if err != nil {
		logWriteErr(l, "add", in.Barcode, err)
		return domain.Material{}, translate("add material", err)
	}

	l.Info("material added", slog.Int64("material_id", m.ID), slog.String("barcode", m.Barcode))
	return m, nil
}

// Update rewrites name, barcode, quantity and unit of the material with id.
func (s *MaterialService) Update(ctx context.Context, id int64, in domain.MaterialInput) (domain.Material, error) {
	l := slogx.FromContext(ctx).With(slog.Int64("material_id", id))

	in, err := normalize(in)
	if err != nil {
		return domain.Material{}, fmt.Errorf("update material %d: %w", id, err)
	}

	if err := s.Store.Materials().UpdateMaterial(ctx, id, in); err != nil {
		logWriteErr(l, "update", in.Barcode, err)
		return domain.Material{}, translate(fmt.Sprintf("update material %d", id), err)
	}

	l.Info("material updated", slog.String("barcode", in.Barcode))
	return domain.Material{
		ID:       id,
		Name:     in.Name,
		Barcode:  in.Barcode,
		Quantity: in.Quantity,
		Unit:     in.Unit,
	}, nil
}

// Delete removes the material with id; ErrNotFound when there is none.
func (s *MaterialService) Delete(ctx context.Context, id int64) error {
	l := slogx.FromContext(ctx).With(slog.Int64("material_id", id))

	if err := s.Store.Materials().DeleteMaterial(ctx, id); err != nil {
		logWriteErr(l, "delete", "", err)
		return translate(fmt.Sprintf("delete material %d", id), err)
	}

	l.Info("material deleted")
	return nil
}

// normalize trims the text fields and rejects blank ones. Quantity is not
// checked.
func normalize(in domain.MaterialInput) (domain.MaterialInput, error) {
	in.Name = strings.TrimSpace(in.Name)
	in.Barcode = strings.TrimSpace(in.Barcode)
	in.Unit = strings.TrimSpace(in.Unit)

	var missing []string
	if in.Name == "" {
		missing = append(missing, "name")
	}
	if in.Barcode == "" {
		missing = append(missing, "barcode")
	}
	if in.Unit == "" {
		missing = append(missing, "unit")
	}
	if len(missing) > 0 {
		return in, fmt.Errorf("%w: missing %s", ErrValidationFailed, strings.Join(missing, ", "))
	}
	return in, nil
}

func logWriteErr(l *slog.Logger, op, barcode string, err error) {
	switch {
	case errors.Is(err, store.ErrAlreadyExists):
		l.Info("material "+op+" rejected: barcode in use", slog.String("barcode", barcode))
	case errors.Is(err, store.ErrNotFound):
		l.Info("material " + op + " rejected: not found")
	default:
		l.Error("material "+op+" failed", slog.Any("error", err))
	}
}
