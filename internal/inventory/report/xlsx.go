package report

import (
	"fmt"

	"github.com/aussiebroadwan/inventory/internal/inventory/domain"
	"github.com/xuri/excelize/v2"
)

// SheetName is the single sheet of an exported workbook.
const SheetName = "Sheet1"

// XLSXWriter writes an Excel workbook. ID and Quantity are stored as
// numbers, the other columns as text.
type XLSXWriter struct{}

func (XLSXWriter) Write(path string, items []domain.Material) error {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	header := make([]any, len(Columns))
	for i, c := range Columns {
		header[i] = c
	}
	if err := f.SetSheetRow(SheetName, "A1", &header); err != nil {
		return fmt.Errorf("xlsx: header: %w", err)
	}

	for i, m := range items {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return fmt.Errorf("xlsx: row %d: %w", i+2, err)
		}
		row := []any{m.ID, m.Name, m.Barcode, m.Quantity, m.Unit}
		if err := f.SetSheetRow(SheetName, cell, &row); err != nil {
			return fmt.Errorf("xlsx: row %d: %w", i+2, err)
		}
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("xlsx: save %s: %w", path, err)
	}
	return nil
}
