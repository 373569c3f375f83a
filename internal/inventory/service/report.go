package service

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/aussiebroadwan/inventory/internal/inventory/domain"
	"github.com/aussiebroadwan/inventory/internal/inventory/report"
	"github.com/aussiebroadwan/inventory/internal/inventory/store"
	"github.com/aussiebroadwan/inventory/pkg/slogx"
)

// DestinationChooser plays the save dialog. It receives a suggested path
// and returns the chosen one, or ok=false when the user cancels.
type DestinationChooser func(ctx context.Context, suggested string) (path string, ok bool, err error)

// Opener opens an exported file with the host's default application.
type Opener func(path string) error

// ReportService produces the inventory report on screen and as a file.
type ReportService struct {
	Store  store.Store
	Dir    string // directory of the suggested file name
	Format string // "xlsx" or "csv"
	Open   Opener // optional, called after a successful export
	Now    func() time.Time

	// WriterFor is swapped in tests; nil uses report.WriterFor.
	WriterFor func(path string) (report.Writer, error)
}

// Render writes the on-screen report. An empty inventory returns
// ErrExportEmpty and writes nothing.
func (s *ReportService) Render(ctx context.Context, w io.Writer) error {
	items, err := s.load(ctx)
	if err != nil {
		return err
	}
	return report.RenderText(w, items)
}

// SuggestedPath is the destination offered to the chooser.
func (s *ReportService) SuggestedPath() string {
	now := time.Now
	if s.Now != nil {
		now = s.Now
	}
	return filepath.Join(s.Dir, report.DefaultFilename(now(), s.format()))
}

func (s *ReportService) format() string {
	if s.Format == "" {
		return "xlsx"
	}
	return s.Format
}

// Export writes the current inventory to a file picked by choose and
// returns its path. ErrExportEmpty and ErrExportCancelled mean no file was
// written.
func (s *ReportService) Export(ctx context.Context, choose DestinationChooser) (string, error) {
	l := slogx.FromContext(ctx)

	items, err := s.load(ctx)
	if err != nil {
		return "", err
	}

	path, ok, err := choose(ctx, s.SuggestedPath())
	if err != nil {
		return "", fmt.Errorf("export: choose destination: %w", err)
	}
	if !ok || path == "" {
		l.Info("export cancelled")
		return "", ErrExportCancelled
	}
	if filepath.Ext(path) == "" {
		path += "." + s.format()
	}

	return path, s.write(ctx, path, items)
}

// ExportItems writes items to path without touching the store.
func (s *ReportService) ExportItems(ctx context.Context, items []domain.Material, path string) error {
	if len(items) == 0 {
		return ErrExportEmpty
	}
	return s.write(ctx, path, items)
}

func (s *ReportService) write(ctx context.Context, path string, items []domain.Material) error {
	l := slogx.FromContext(ctx).With(slog.String("path", path))

	writerFor := s.WriterFor
	if writerFor == nil {
		writerFor = report.WriterFor
	}

	w, err := writerFor(path)
	if err != nil {
		l.Error("export failed", slog.Any("error", err))
		return fmt.Errorf("export: %w: %w", ErrWriteFailed, err)
	}
	if err := w.Write(path, items); err != nil {
		l.Error("export failed", slog.Any("error", err))
		return fmt.Errorf("export: %w: %w", ErrWriteFailed, err)
	}
	l.Info("inventory exported", slog.Int("rows", len(items)))

	if s.Open != nil {
		if err := s.Open(path); err != nil {
			l.Warn("could not open exported file", slog.Any("error", err))
		}
	}
	return nil
}

func (s *ReportService) load(ctx context.Context) ([]domain.Material, error) {
	items, err := s.Store.Materials().ListMaterials(ctx)
	if err != nil {
		slogx.FromContext(ctx).Error("failed to load materials for report", slog.Any("error", err))
		return nil, translate("report", err)
	}
	if len(items) == 0 {
		return nil, ErrExportEmpty
	}
	return items, nil
}
