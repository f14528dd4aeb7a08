package service

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/aussiebroadwan/bankgate/internal/bank/domain"
	"github.com/aussiebroadwan/bankgate/internal/bank/store"
	"github.com/aussiebroadwan/bankgate/pkg/cryptox"
	"github.com/aussiebroadwan/bankgate/pkg/slogx"
)

// LoginResult is what a successful login hands back.
type LoginResult struct {
	Token     string
	ExpiresAt time.Time
	ExpiresIn time.Duration
}

type AuthService struct {
	Store     store.Store
	Tokens    *TokenService
	Passwords *cryptox.PasswordHasher

	dummyOnce sync.Once
	dummyHash string
}

// Login checks email and password and issues a token. Unknown emails and
// wrong passwords are indistinguishable to the caller.
func (s *AuthService) Login(ctx context.Context, email, password string) (LoginResult, error) {
	l := slogx.FromContext(ctx)
	email = strings.TrimSpace(email)

	user, err := s.Store.Users().GetUserByEmail(ctx, email)
	if err != nil {
		if !errors.Is(err, store.ErrNotFound) {
			return LoginResult{}, err
		}
		// Burn the same hashing time as a real check so response timing
		// does not reveal whether the email exists.
		_ = s.Passwords.Verify(password, s.dummy())
		l.Info("login failed", slog.String("reason", "unknown_email"))
		return LoginResult{}, ErrInvalidCredentials
	}

	if err := s.Passwords.Verify(password, user.PasswordHash); err != nil {
		l.Info("login failed", slog.String("reason", "bad_password"), slog.String("user_id", user.ID.String()))
		return LoginResult{}, ErrInvalidCredentials
	}

	token, exp, err := s.Tokens.Issue(user.Email)
	if err != nil {
		return LoginResult{}, err
	}

	l.Info("login succeeded", slog.String("user_id", user.ID.String()), slog.String("role", user.Role.String()))
	return LoginResult{Token: token, ExpiresAt: exp, ExpiresIn: s.Tokens.TTL()}, nil
}

// Logout revokes token for the rest of its lifetime.
func (s *AuthService) Logout(ctx context.Context, token string) error {
	return s.Tokens.Revoke(ctx, token)
}

// ExtractBearer pulls the token out of an Authorization header value.
func (s *AuthService) ExtractBearer(header string) (string, bool) {
	return s.Tokens.ExtractBearer(header)
}

// Authenticate resolves a bearer token to an identity. Every failure, from a
// bad signature to an unknown subject, is ErrInvalidToken so callers cannot
// probe which check failed.
func (s *AuthService) Authenticate(ctx context.Context, token string) (domain.Identity, error) {
	subject, err := s.Tokens.Subject(token)
	if err != nil {
		return domain.Identity{}, ErrInvalidToken
	}

	user, err := s.Store.Users().GetUserByEmail(ctx, subject)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.Identity{}, ErrInvalidToken
		}
		return domain.Identity{}, err
	}

	if !s.Tokens.Validate(ctx, token, user.Email) {
		return domain.Identity{}, ErrInvalidToken
	}

	return domain.Identity{Subject: user.Email, Role: user.Role}, nil
}

// Me returns the user behind id.
func (s *AuthService) Me(ctx context.Context, id domain.Identity) (domain.User, error) {
	user, err := s.Store.Users().GetUserByEmail(ctx, id.Subject)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.User{}, ErrNotFound
		}
		return domain.User{}, err
	}
	return user, nil
}

func (s *AuthService) dummy() string {
	s.dummyOnce.Do(func() {
		s.dummyHash, _ = s.Passwords.Hash("timing-equaliser")
	})
	return s.dummyHash
}
