// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 MemberDash Contributors

package auth

import (
	"context"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/samber/oops"

	"github.com/memberdash/memberdash/pkg/errutil"
)

// BearerPrefix is the literal prefix required on the Authorization header.
const BearerPrefix = "Bearer "

// Gate rejection reasons. They are the only detail exposed to clients.
const (
	ReasonMissingHeader   = "missing header"
	ReasonMalformedHeader = "malformed header"
	ReasonBadScheme       = "bad scheme"
	ReasonInvalidToken    = "invalid token"
)

// TokenValidator verifies a compact session token at a point in time.
type TokenValidator interface {
	Verify(token string, now time.Time) (*Claims, error)
}

// GateObserver is notified of every rejected request. kind is the verifier
// error kind for ReasonInvalidToken and empty otherwise.
type GateObserver func(reason, kind string)

// GateOption configures a Gate.
type GateOption func(*Gate)

// WithGateClock overrides the clock used to check token expiry.
func WithGateClock(now func() time.Time) GateOption {
	return func(g *Gate) { g.now = now }
}

// WithGateLogger sets the logger used for rejected requests.
func WithGateLogger(logger *slog.Logger) GateOption {
	return func(g *Gate) { g.logger = logger }
}

// WithGateObserver registers a callback for rejected requests.
func WithGateObserver(observer GateObserver) GateOption {
	return func(g *Gate) { g.observer = observer }
}

// Gate authorizes requests to protected routes from their headers.
type Gate struct {
	verifier TokenValidator
	now      func() time.Time
	logger   *slog.Logger
	observer GateObserver
}

// NewGate creates a Gate backed by verifier.
func NewGate(verifier TokenValidator, opts ...GateOption) (*Gate, error) {
	if verifier == nil {
		return nil, oops.Code("GATE_INVALID_CONFIG").Errorf("token verifier is required")
	}
	g := &Gate{
		verifier: verifier,
		now:      time.Now,
		logger:   slog.Default(),
	}
	for _, opt := range opts {
		opt(g)
	}
	if g.logger == nil {
		return nil, oops.Code("GATE_INVALID_CONFIG").Errorf("logger cannot be nil")
	}
	return g, nil
}

// Authorize extracts the bearer token from header and verifies it.
//
// All verifier failures collapse to ErrUnauthorized with ReasonInvalidToken;
// the verifier's error kind is kept in the error context under "token_error"
// and passed to the observer. A header that is not valid text yields
// ErrMalformedHeader.
func (g *Gate) Authorize(ctx context.Context, header http.Header) (*Identity, error) {
	values := header.Values("Authorization")
	if len(values) == 0 {
		return nil, g.reject(ctx, "GATE_MISSING_HEADER", ReasonMissingHeader, ErrUnauthorized, nil)
	}

	value := values[0]
	if !isHeaderText(value) {
		return nil, g.reject(ctx, "GATE_MALFORMED_HEADER", ReasonMalformedHeader, ErrMalformedHeader, nil)
	}

	token, ok := strings.CutPrefix(value, BearerPrefix)
	if !ok {
		return nil, g.reject(ctx, "GATE_BAD_SCHEME", ReasonBadScheme, ErrUnauthorized, nil)
	}

	claims, err := g.verifier.Verify(token, g.now())
	if err != nil {
		return nil, g.reject(ctx, "GATE_INVALID_TOKEN", ReasonInvalidToken, ErrUnauthorized, err)
	}

	email, err := NewEmail(claims.Email)
	if err != nil {
		return nil, g.reject(ctx, "GATE_INVALID_TOKEN", ReasonInvalidToken, ErrUnauthorized, err)
	}

	return &Identity{Email: email, ExpiresAt: claims.Expiry()}, nil
}

func (g *Gate) reject(ctx context.Context, code, reason string, sentinel, cause error) error {
	kind := ""
	builder := oops.Code(code).With("reason", reason)
	attrs := []any{"reason", reason}
	if cause != nil {
		kind = TokenErrorKind(cause)
		builder = builder.With("token_error", kind)
		attrs = append(attrs, "token_error", kind)
		attrs = append(attrs, errutil.Attrs(cause)...)
	}
	g.logger.WarnContext(ctx, "request rejected", attrs...)

	if g.observer != nil {
		g.observer(reason, kind)
	}

	return builder.Wrapf(sentinel, "%s", reason)
}

// isHeaderText reports whether s only contains visible ASCII, space or tab.
func isHeaderText(s string) bool {
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c == '\t' {
			continue
		}
		if c < 0x20 || c > 0x7e {
			return false
		}
	}
	return true
}
