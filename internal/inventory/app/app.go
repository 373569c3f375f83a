package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/aussiebroadwan/inventory/internal/inventory/cli"
	"github.com/aussiebroadwan/inventory/internal/inventory/report"
	"github.com/aussiebroadwan/inventory/internal/inventory/service"
	"github.com/aussiebroadwan/inventory/internal/inventory/store"
	"github.com/aussiebroadwan/inventory/internal/inventory/store/drivers/sqlite"
	"github.com/aussiebroadwan/inventory/pkg/cryptox"
	"github.com/aussiebroadwan/inventory/pkg/slogx"
)

const (
	// BuildVersion should be set at build time via ldflags.
	BuildVersion = "v0.1.0"
)

// Application holds the inventory manager and everything it depends on.
type Application struct {
	cfg     Config
	logger  *slog.Logger
	logFile *os.File

	db store.Store

	credentials *service.CredentialService
	materials   *service.MaterialService
	reports     *service.ReportService

	// Terminal the REPL talks to.
	in  io.Reader
	out io.Writer
}

// New creates an Application with the database opened and migrated.
func New(cfg Config) (*Application, error) {
	app := &Application{
		cfg: cfg,
		in:  os.Stdin,
		out: os.Stdout,
	}

	if err := app.initLogger(); err != nil {
		return nil, err
	}

	cryptox.SetPepperPath(app.cfg.PepperFile)

	if err := app.initDatabase(); err != nil {
		app.closeLog()
		return nil, err
	}

	app.initServices()
	return app, nil
}

// Run drives the REPL until the user exits or a shutdown signal arrives,
// then shuts the application down.
func (app *Application) Run() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	ctx = slogx.WithContext(ctx, app.logger)

	app.logger.Info("inventory starting", "database", app.cfg.DatabaseFile, "version", BuildVersion)

	repl := cli.New(cli.Services{
		Credentials: app.credentials,
		Materials:   app.materials,
		Reports:     app.reports,
	}, app.in, app.out)

	// The REPL blocks on terminal reads, so it runs apart from the signal
	// wait.
	replErrors := make(chan error, 1)
	go func() {
		replErrors <- repl.Run(ctx)
	}()

	var runErr error
	select {
	case err := <-replErrors:
		if err != nil {
			runErr = fmt.Errorf("terminal failed: %w", err)
		}
	case <-ctx.Done():
		app.logger.Info("shutdown signal received")
		app.awaitCommand(repl.Busy, replErrors)
	}

	if err := app.Shutdown(); err != nil {
		return fmt.Errorf("shutdown failed: %w", err)
	}
	return runErr
}

// awaitCommand gives a running command up to ShutdownGracePeriod to finish
// before the database is closed. An idle REPL is waiting on the terminal
// and is not waited for.
func (app *Application) awaitCommand(busy func() bool, done <-chan error) {
	if !busy() {
		return
	}

	timer := time.NewTimer(app.cfg.ShutdownGracePeriod)
	defer timer.Stop()

	select {
	case <-done:
	case <-timer.C:
		app.logger.Warn("command still running at shutdown", "grace_period", app.cfg.ShutdownGracePeriod)
	}
}

// Shutdown closes the database and the log file.
func (app *Application) Shutdown() error {
	app.logger.Info("shutting down inventory...")
	defer app.closeLog()

	if err := app.db.Close(); err != nil {
		app.logger.Error("error closing database", "error", err)
		return err
	}

	app.logger.Info("inventory stopped")
	return nil
}

// initLogger sends logs to LogFile when set so they stay out of the REPL.
func (app *Application) initLogger() error {
	var out io.Writer = os.Stderr
	if app.cfg.LogFile != "" {
		if err := os.MkdirAll(filepath.Dir(app.cfg.LogFile), 0o750); err != nil {
			return fmt.Errorf("failed to create log directory: %w", err)
		}
		f, err := os.OpenFile(app.cfg.LogFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o640)
		if err != nil {
			return fmt.Errorf("failed to open log file: %w", err)
		}
		app.logFile = f
		out = f
	}

	app.logger = slogx.New(slogx.Config{
		Service: "inventory",
		Version: BuildVersion,
		Env:     app.cfg.Env,
		Level:   app.cfg.LogLevel,
		Format:  app.cfg.LogFormat,
		Output:  out,
	})
	return nil
}

func (app *Application) closeLog() {
	if app.logFile != nil {
		_ = app.logFile.Close()
		app.logFile = nil
	}
}

// initDatabase opens the database file, creating its directory, and
// applies migrations.
func (app *Application) initDatabase() error {
	if err := os.MkdirAll(filepath.Dir(app.cfg.DatabaseFile), 0o750); err != nil {
		app.logger.Error("database directory unavailable", "error", err)
		return fmt.Errorf("failed to create database directory: %w", err)
	}

	dsn := fmt.Sprintf("file:%s?_pragma=busy_timeout(5000)", app.cfg.DatabaseFile)
	db, err := sqlite.NewStore(dsn)
	if err != nil {
		app.logger.Error("database unavailable", "error", err)
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	app.db = db

	if err := db.ApplyMigrations(); err != nil {
		_ = db.Close()
		return fmt.Errorf("failed to apply database migrations: %w", err)
	}

	app.logger.Info("database migrations applied successfully")
	return nil
}

// initServices initializes the services the REPL calls into.
func (app *Application) initServices() {
	app.credentials = service.NewCredentialService(app.db, service.LoginLimit{
		Attempts: app.cfg.LoginAttempts,
		Window:   app.cfg.LoginWindow,
	}, nil)

	app.materials = &service.MaterialService{Store: app.db}

	app.reports = &service.ReportService{
		Store:  app.db,
		Dir:    app.cfg.ExportDir,
		Format: app.cfg.ExportFormat,
	}
	if app.cfg.OpenAfterExport {
		app.reports.Open = report.OpenWithSystem
	}
}
