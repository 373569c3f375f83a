package cli

import (
	"context"
	"errors"

	"github.com/aussiebroadwan/inventory/internal/inventory/service"
)

func (a *App) credentials() (string, string, error) {
	username, err := promptText(a.in, a.out, "Username")
	if err != nil {
		return "", "", err
	}
	password, err := a.readPassword()
	if err != nil {
		return "", "", err
	}
	return username, password, nil
}

func (a *App) Login(ctx context.Context) error {
	username, password, err := a.credentials()
	if err != nil {
		return err
	}

	u, err := a.svc.Credentials.Authenticate(ctx, username, password)
	switch {
	case err == nil:
		a.user = &u
		a.notify("Success", "Logged in as "+u.Username)
	case errors.Is(err, service.ErrInvalidCredentials):
		a.notify("Error", "Invalid credentials")
	case errors.Is(err, service.ErrTooManyAttempts):
		a.notify("Error", "Too many failed attempts, try again later")
	default:
		a.fail("Error", err)
	}
	return err
}

func (a *App) Register(ctx context.Context) error {
	username, password, err := a.credentials()
	if err != nil {
		return err
	}

	_, err = a.svc.Credentials.Register(ctx, username, password)
	switch {
	case err == nil:
		a.notify("Success", "User registered successfully")
	case errors.Is(err, service.ErrAlreadyExists):
		a.notify("Error", "Username already exists")
	case errors.Is(err, service.ErrValidationFailed):
		a.notify("Warning", "Username and password are required")
	default:
		a.fail("Error", err)
	}
	return err
}

func (a *App) Logout(context.Context) error {
	a.user = nil
	a.notify("Info", "Logged out")
	return nil
}
