// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 MemberDash Contributors

package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/samber/oops"
)

// DefaultTokenTTL is the lifetime of a session token issued by login.
const DefaultTokenTTL = 60 * time.Second

// Token error kinds reported by TokenErrorKind.
const (
	TokenErrorExpired      = "expired"
	TokenErrorBadSignature = "bad_signature"
	TokenErrorMalformed    = "malformed"
	TokenErrorUnknown      = "unknown"
)

// Claims is the payload carried by a session token.
// Only the exp registered claim is populated.
type Claims struct {
	Email string `json:"email"`
	jwt.RegisteredClaims
}

// Expiry returns the expiry timestamp, or the zero time if absent.
func (c *Claims) Expiry() time.Time {
	if c.ExpiresAt == nil {
		return time.Time{}
	}
	return c.ExpiresAt.Time
}

// TokenIssuer signs session tokens with a shared HMAC secret.
type TokenIssuer struct {
	secret []byte
}

// NewTokenIssuer creates a TokenIssuer. The secret is copied.
func NewTokenIssuer(secret []byte) (*TokenIssuer, error) {
	if len(secret) == 0 {
		return nil, oops.Code("TOKEN_INVALID_SECRET").Errorf("signing secret cannot be empty")
	}
	return &TokenIssuer{secret: append([]byte(nil), secret...)}, nil
}

// Issue returns a compact HS256 token for identity that expires at now+ttl.
// identity must be a valid email address, the same check Verify applies to
// the email claim, so every issued token round-trips.
func (i *TokenIssuer) Issue(identity string, now time.Time, ttl time.Duration) (string, error) {
	if _, err := NewEmail(identity); err != nil {
		return "", oops.With("operation", "issue token").Wrap(err)
	}

	claims := Claims{
		Email: identity,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(i.secret)
	if err != nil {
		return "", oops.Code("TOKEN_SIGNING_FAILED").
			With("cause", err.Error()).
			Wrap(ErrSigning)
	}
	return token, nil
}

// TokenVerifier validates session tokens signed by a TokenIssuer sharing the
// same secret.
type TokenVerifier struct {
	secret []byte
}

// NewTokenVerifier creates a TokenVerifier. The secret is copied.
func NewTokenVerifier(secret []byte) (*TokenVerifier, error) {
	if len(secret) == 0 {
		return nil, oops.Code("TOKEN_INVALID_SECRET").Errorf("verification secret cannot be empty")
	}
	return &TokenVerifier{secret: append([]byte(nil), secret...)}, nil
}

// Verify checks the token signature and expiry at now and returns its claims.
// A token is expired when now >= exp; there is no clock-skew leeway.
func (v *TokenVerifier) Verify(token string, now time.Time) (*Claims, error) {
	claims := &Claims{}
	parser := jwt.NewParser(
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(func() time.Time { return now }),
		jwt.WithStrictDecoding(),
	)

	_, err := parser.ParseWithClaims(token, claims, func(*jwt.Token) (any, error) {
		return v.secret, nil
	})
	if err != nil {
		return nil, classifyTokenError(err)
	}

	if _, err := NewEmail(claims.Email); err != nil {
		return nil, oops.Code("TOKEN_MALFORMED").
			With("claim", "email").
			Wrap(ErrTokenMalformed)
	}

	return claims, nil
}

// classifyTokenError maps jwt parser failures onto the package sentinels.
func classifyTokenError(err error) error {
	switch {
	case errors.Is(err, jwt.ErrTokenExpired):
		return oops.Code("TOKEN_EXPIRED").With("cause", err.Error()).Wrap(ErrTokenExpired)
	case errors.Is(err, jwt.ErrTokenSignatureInvalid):
		return oops.Code("TOKEN_BAD_SIGNATURE").With("cause", err.Error()).Wrap(ErrTokenBadSignature)
	default:
		return oops.Code("TOKEN_MALFORMED").With("cause", err.Error()).Wrap(ErrTokenMalformed)
	}
}

// TokenErrorKind names the verifier failure carried by err for logs and
// metrics.
func TokenErrorKind(err error) string {
	switch {
	case errors.Is(err, ErrTokenExpired):
		return TokenErrorExpired
	case errors.Is(err, ErrTokenBadSignature):
		return TokenErrorBadSignature
	case errors.Is(err, ErrTokenMalformed):
		return TokenErrorMalformed
	default:
		return TokenErrorUnknown
	}
}
