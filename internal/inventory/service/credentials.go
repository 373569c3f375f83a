package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/aussiebroadwan/inventory/internal/inventory/domain"
	"github.com/aussiebroadwan/inventory/internal/inventory/store"
	"github.com/aussiebroadwan/inventory/pkg/cryptox"
	"github.com/aussiebroadwan/inventory/pkg/slogx"
)

// CredentialService validates logins and registers accounts.
type CredentialService struct {
	Store store.Store

	limiter *attemptLimiter
}

// NewCredentialService builds a CredentialService. now may be nil.
func NewCredentialService(s store.Store, limit LoginLimit, now func() time.Time) *CredentialService {
	return &CredentialService{
		Store:   s,
		limiter: newAttemptLimiter(limit, now),
	}
}

// Authenticate returns the user whose username and password match exactly.
// An unknown username and a wrong password are indistinguishable to the
// caller: both return ErrInvalidCredentials.
func (s *CredentialService) Authenticate(ctx context.Context, username, password string) (domain.User, error) {
	l := slogx.FromContext(ctx).With(slog.String("username", username))

	if s.limiter.blocked(username) {
		l.Warn("login throttled")
		return domain.User{}, ErrTooManyAttempts
	}

	u, err := s.Store.Users().GetUserByUsername(ctx, username)
	if errors.Is(err, store.ErrNotFound) {
		s.limiter.fail(username)
		l.Info("login failed: unknown user")
		return domain.User{}, ErrInvalidCredentials
	}
	if err != nil {
		l.Error("login lookup failed", slog.Any("error", err))
		return domain.User{}, translate("authenticate", err)
	}

	if !cryptox.IsHashed(u.Password) {
		return s.authenticateLegacy(ctx, l, u, password)
	}

	if err := cryptox.VerifyPassword(password, u.Password); err != nil {
		s.limiter.fail(username)
		if !errors.Is(err, cryptox.ErrMismatch) {
			l.Error("stored password hash is unreadable", slog.Any("error", err))
		} else {
			l.Info("login failed: wrong password")
		}
		return domain.User{}, ErrInvalidCredentials
	}

	s.limiter.reset(username)
	l.Info("login succeeded", slog.Int64("user_id", u.ID))
	return u, nil
}

// authenticateLegacy checks a plain-text password written by the old
// desktop build and upgrades it to a hash on success.
func (s *CredentialService) authenticateLegacy(ctx context.Context, l *slog.Logger, u domain.User, password string) (domain.User, error) {
	if !cryptox.EqualPlain(password, u.Password) {
		s.limiter.fail(u.Username)
		l.Info("login failed: wrong password")
		return domain.User{}, ErrInvalidCredentials
	}

	hash, err := cryptox.HashPassword(password)
	if err != nil {
		l.Error("failed to hash legacy password", slog.Any("error", err))
	} else if err := s.Store.Users().UpdatePassword(ctx, u.ID, hash); err != nil {
		l.Error("failed to upgrade legacy password", slog.Any("error", err))
	} else {
		u.Password = hash
		l.Info("legacy password upgraded to argon2id", slog.Int64("user_id", u.ID))
	}

	s.limiter.reset(u.Username)
	l.Info("login succeeded", slog.Int64("user_id", u.ID))
	return u, nil
}

// Register creates a new account. A taken username returns ErrAlreadyExists.
func (s *CredentialService) Register(ctx context.Context, username, password string) (domain.User, error) {
	l := slogx.FromContext(ctx).With(slog.String("username", username))

	if strings.TrimSpace(username) == "" || password == "" {
		return domain.User{}, fmt.Errorf("register: username and password are required: %w", ErrValidationFailed)
	}

	hash, err := cryptox.HashPassword(password)
	if err != nil {
		l.Error("failed to hash password", slog.Any("error", err))
		return domain.User{}, fmt.Errorf("register: hash password: %w", err)
	}

	u, err := s.Store.Users().CreateUser(ctx, username, hash)
	if err != nil {
		if errors.Is(err, store.ErrAlreadyExists) {
			l.Info("registration rejected: username taken")
		} else {
			l.Error("failed to create user", slog.Any("error", err))
		}
		return domain.User{}, translate("register", err)
	}

	l.Info("user registered", slog.Int64("user_id", u.ID))
	return u, nil
}
