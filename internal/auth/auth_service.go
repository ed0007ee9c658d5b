// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 MemberDash Contributors

package auth

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/samber/oops"

	"github.com/memberdash/memberdash/pkg/errutil"
)

// dummyPasswordHash is verified when an email is unknown and concealment is
// enabled, so that response time does not reveal whether the account exists.
// It is not a credential and never matches any password.
//
//nolint:gosec // G101: intentionally fake hash for timing attack prevention, not a credential.
const dummyPasswordHash = "$argon2id$v=19$m=65536,t=1,p=4$AAAAAAAAAAAAAAAAAAAAAA$AAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAA"

// Session is the result of a successful login.
type Session struct {
	Email     Email
	Token     string
	TTL       time.Duration
	ExpiresAt time.Time
}

// ServiceOption configures a Service.
type ServiceOption func(*Service)

// WithClock overrides the clock used to compute token expiry.
func WithClock(now func() time.Time) ServiceOption {
	return func(s *Service) { s.now = now }
}

// WithTokenTTL sets the lifetime of issued session tokens.
func WithTokenTTL(ttl time.Duration) ServiceOption {
	return func(s *Service) { s.ttl = ttl }
}

// WithLogger sets the service logger.
func WithLogger(logger *slog.Logger) ServiceOption {
	return func(s *Service) { s.logger = logger }
}

// WithConcealUnknownEmail makes Login answer ErrBadCredentials for unknown
// emails instead of ErrNotFound, after verifying against a dummy hash.
func WithConcealUnknownEmail(conceal bool) ServiceOption {
	return func(s *Service) { s.conceal = conceal }
}

// Service provides registration and login.
type Service struct {
	users   CredentialRepository
	hasher  PasswordHasher
	issuer  *TokenIssuer
	now     func() time.Time
	ttl     time.Duration
	logger  *slog.Logger
	conceal bool
}

// NewAuthService creates a new Service.
func NewAuthService(users CredentialRepository, hasher PasswordHasher, issuer *TokenIssuer, opts ...ServiceOption) (*Service, error) {
	if users == nil {
		return nil, oops.Code("AUTH_INVALID_CONFIG").Errorf("credential repository is required")
	}
	if hasher == nil {
		return nil, oops.Code("AUTH_INVALID_CONFIG").Errorf("password hasher is required")
	}
	if issuer == nil {
		return nil, oops.Code("AUTH_INVALID_CONFIG").Errorf("token issuer is required")
	}

	s := &Service{
		users:  users,
		hasher: hasher,
		issuer: issuer,
		now:    time.Now,
		ttl:    DefaultTokenTTL,
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}

	if s.logger == nil {
		return nil, oops.Code("AUTH_INVALID_CONFIG").Errorf("logger cannot be nil")
	}
	if s.ttl <= 0 {
		return nil, oops.Code("AUTH_INVALID_CONFIG").With("ttl", s.ttl.String()).Errorf("token TTL must be positive")
	}
	return s, nil
}

// TokenTTL returns the lifetime of tokens issued by Login.
func (s *Service) TokenTTL() time.Duration {
	return s.ttl
}

// Register creates a credential for emailRaw. No session is issued; the
// caller must log in afterwards.
func (s *Service) Register(ctx context.Context, emailRaw, password string) (*Identity, error) {
	email, err := NewEmail(emailRaw)
	if err != nil {
		return nil, err
	}

	hash, err := s.hasher.Hash(password)
	if err != nil {
		return nil, oops.Code("AUTH_REGISTER_FAILED").
			With("operation", "hash password").
			Wrap(err)
	}

	rows, err := s.users.Insert(ctx, email, hash)
	if err != nil {
		if errors.Is(err, ErrEmailTaken) {
			return nil, oops.Code("AUTH_EMAIL_TAKEN").
				With("email", email.String()).
				Wrap(err)
		}
		return nil, oops.Code("AUTH_REGISTER_FAILED").
			With("operation", "insert credential").
			Wrap(err)
	}
	if rows == 0 {
		return nil, oops.Code("AUTH_NOT_ACCEPTED").
			With("email", email.String()).
			Wrap(ErrNotAccepted)
	}

	return &Identity{Email: email}, nil
}

// Login verifies the password for emailRaw and issues a session token.
func (s *Service) Login(ctx context.Context, emailRaw, password string) (*Session, error) {
	email, err := NewEmail(emailRaw)
	if err != nil {
		return nil, err
	}

	hash, err := s.users.FindPasswordHash(ctx, email)
	if err != nil {
		if !errors.Is(err, ErrNotFound) {
			return nil, oops.Code("AUTH_LOGIN_FAILED").
				With("operation", "find credential").
				Wrap(err)
		}
		if !s.conceal {
			return nil, oops.Code("AUTH_UNKNOWN_EMAIL").
				With("email", email.String()).
				Wrap(err)
		}
		_, _ = s.hasher.Verify(password, dummyPasswordHash) //nolint:errcheck // timing only
		return nil, oops.Code("AUTH_INVALID_CREDENTIALS").Wrap(ErrBadCredentials)
	}

	valid, err := s.hasher.Verify(password, hash)
	if err != nil {
		errutil.LogErrorContext(ctx, s.logger, "stored password hash is unusable", err)
		return nil, oops.Code("AUTH_INVALID_CREDENTIALS").
			With("email", email.String()).
			Wrap(ErrBadCredentials)
	}
	if !valid {
		return nil, oops.Code("AUTH_INVALID_CREDENTIALS").
			With("email", email.String()).
			Wrap(ErrBadCredentials)
	}

	now := s.now()
	token, err := s.issuer.Issue(email.String(), now, s.ttl)
	if err != nil {
		return nil, oops.Code("AUTH_LOGIN_FAILED").
			With("operation", "issue session token").
			Wrap(err)
	}

	return &Session{
		Email:     email,
		Token:     token,
		TTL:       s.ttl,
		ExpiresAt: now.Add(s.ttl),
	}, nil
}
