package service

import (
	"errors"
	"fmt"

	"github.com/aussiebroadwan/inventory/internal/inventory/store"
)

var (
	ErrValidationFailed   = errors.New("validation failed")
	ErrAlreadyExists      = errors.New("already exists")
	ErrNotFound           = errors.New("not found")
	ErrStorageUnavailable = errors.New("storage unavailable")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrTooManyAttempts    = errors.New("too many attempts")

	// Export outcomes that are not failures.
	ErrExportEmpty     = errors.New("nothing to export")
	ErrExportCancelled = errors.New("export cancelled")

	ErrWriteFailed = errors.New("export write failed")
)

// translate maps store sentinels onto the service ones, keeping the store
// error in the chain for logging.
func translate(op string, err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, store.ErrNotFound):
		return fmt.Errorf("%s: %w", op, ErrNotFound)
	case errors.Is(err, store.ErrAlreadyExists):
		return fmt.Errorf("%s: %w: %w", op, ErrAlreadyExists, err)
	default:
		return fmt.Errorf("%s: %w: %w", op, ErrStorageUnavailable, err)
	}
}
