package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"sync/atomic"

	"github.com/aussiebroadwan/inventory/internal/inventory/domain"
	"github.com/aussiebroadwan/inventory/internal/inventory/service"
)

// Services bundles what the front end calls into.
type Services struct {
	Credentials *service.CredentialService
	Materials   *service.MaterialService
	Reports     *service.ReportService
}

type App struct {
	svc  Services
	in   *bufio.Reader
	out  io.Writer
	user *domain.User

	// busy is set while a command runs.
	busy atomic.Bool

	// readPassword is a test seam; the default hides input on a terminal.
	readPassword func() (string, error)
}

func New(svc Services, in io.Reader, out io.Writer) *App {
	r := bufio.NewReader(in)
	return &App{
		svc:          svc,
		in:           r,
		out:          out,
		readPassword: passwordReader(r, out),
	}
}

// Busy reports whether a command is running. Once the context given to Run
// is cancelled, no new command starts.
func (a *App) Busy() bool { return a.busy.Load() }

func (a *App) isLoggedIn() bool { return a.user != nil }

// notify prints a notification the way the desktop build showed message
// boxes: a short title and a message.
func (a *App) notify(title, msg string) {
	fmt.Fprintf(a.out, "%s: %s\n", title, msg)
}

// fail reports err under title, picking the message from its kind.
// Anything unexpected is shown generically; details are in the log.
func (a *App) fail(title string, err error) {
	switch {
	case errors.Is(err, service.ErrValidationFailed):
		a.notify("Warning", "All fields are required")
	case errors.Is(err, service.ErrNotFound):
		a.notify("Error", "Material not found")
	case errors.Is(err, service.ErrStorageUnavailable):
		a.notify("Error", "Database is unavailable, see the log for details")
	case errors.Is(err, context.Canceled):
		// shutting down
	default:
		a.notify(title, err.Error())
	}
}
