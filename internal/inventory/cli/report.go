package cli

import (
	"context"
	"errors"

	"github.com/aussiebroadwan/inventory/internal/inventory/service"
)

func (a *App) Report(ctx context.Context) error {
	err := a.svc.Reports.Render(ctx, a.out)
	if errors.Is(err, service.ErrExportEmpty) {
		a.notify("Inventory Report", "No materials found.")
		return nil
	}
	if err != nil {
		a.fail("Error", err)
	}
	return err
}

func (a *App) Export(ctx context.Context) error {
	path, err := a.svc.Reports.Export(ctx, a.chooseDestination)
	switch {
	case err == nil:
		a.notify("Export to Excel", "Report exported to "+path)
	case errors.Is(err, service.ErrExportEmpty):
		a.notify("Export to Excel", "No materials found.")
		return nil
	case errors.Is(err, service.ErrExportCancelled):
		a.notify("Export to Excel", "Export cancelled")
		return nil
	case errors.Is(err, service.ErrWriteFailed):
		a.notify("Export to Excel", "Could not write "+path)
	default:
		a.fail("Error", err)
	}
	return err
}

// chooseDestination is the save dialog: Enter accepts the suggestion and
// "-" cancels.
func (a *App) chooseDestination(_ context.Context, suggested string) (string, bool, error) {
	s, err := promptText(a.in, a.out, "Save as ("+suggested+", - to cancel)")
	if err != nil {
		return "", false, err
	}
	switch s {
	case "-":
		return "", false, nil
	case "":
		return suggested, true, nil
	default:
		return s, true, nil
	}
}
