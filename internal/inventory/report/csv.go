package report

import (
	"encoding/csv"
	"fmt"
	"os"

	"github.com/aussiebroadwan/inventory/internal/inventory/domain"
)

// CSVWriter writes a comma separated file with the same header and column
// order as the workbook.
type CSVWriter struct{}

func (CSVWriter) Write(path string, items []domain.Material) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("csv: create %s: %w", path, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("csv: close %s: %w", path, cerr)
		}
	}()

	w := csv.NewWriter(f)
	if err := w.Write(Columns); err != nil {
		return fmt.Errorf("csv: header: %w", err)
	}
	for _, m := range items {
		if err := w.Write(Record(m)); err != nil {
			return fmt.Errorf("csv: row %d: %w", m.ID, err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("csv: flush: %w", err)
	}
	return nil
}
