// Package report renders the material inventory for the screen and for
// spreadsheet files.
package report

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/aussiebroadwan/inventory/internal/inventory/domain"
)

// Columns is the header row shared by every output format.
var Columns = []string{"ID", "Name", "Barcode", "Quantity", "Unit"}

const filenameLayout = "20060102_150405"

// DefaultFilename returns materials_report_<YYYYMMDD>_<HHMMSS>.<ext>.
func DefaultFilename(now time.Time, ext string) string {
	ext = strings.TrimPrefix(ext, ".")
	return fmt.Sprintf("materials_report_%s.%s", now.Format(filenameLayout), ext)
}

// Record returns m as text cells in column order.
func Record(m domain.Material) []string {
	return []string{
		strconv.FormatInt(m.ID, 10),
		m.Name,
		m.Barcode,
		strconv.FormatInt(m.Quantity, 10),
		m.Unit,
	}
}

// RenderText writes the on-screen inventory report: a tab separated header,
// a rule, then one line per material.
func RenderText(w io.Writer, items []domain.Material) error {
	if _, err := fmt.Fprintln(w, strings.Join(Columns, "\t")); err != nil {
		return err
	}
	if _, err := fmt.Fprintln(w, strings.Repeat("-", 60)); err != nil {
		return err
	}
	for _, m := range items {
		if _, err := fmt.Fprintln(w, strings.Join(Record(m), "\t")); err != nil {
			return err
		}
	}
	return nil
}
