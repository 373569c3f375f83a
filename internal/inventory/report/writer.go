package report

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/aussiebroadwan/inventory/internal/inventory/domain"
)

var ErrUnsupportedFormat = errors.New("report: unsupported export format")

// Writer writes the header row and one row per material, in the order
// given, to the file at path.
type Writer interface {
	Write(path string, items []domain.Material) error
}

// WriterFunc adapts a function to Writer.
type WriterFunc func(path string, items []domain.Material) error

func (f WriterFunc) Write(path string, items []domain.Material) error { return f(path, items) }

// WriterFor picks a writer from the file extension of path.
func WriterFor(path string) (Writer, error) {
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".xlsx":
		return XLSXWriter{}, nil
	case ".csv":
		return CSVWriter{}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}
}
