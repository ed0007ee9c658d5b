// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 MemberDash Contributors

package auth

import "errors"

// Sentinel errors used to classify failures with errors.Is. They are always
// returned wrapped in an oops error carrying a code and context.
var (
	// ErrNotFound is returned when a requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrInvalidEmail is returned when input does not match the email pattern.
	ErrInvalidEmail = errors.New("email is invalid")

	// ErrEmailTaken is returned when registering an email that already exists.
	ErrEmailTaken = errors.New("email already registered")

	// ErrNotAccepted is returned when the store accepted an insert without
	// error but reported zero affected rows.
	ErrNotAccepted = errors.New("not accepted")

	// ErrBadCredentials is returned when a password does not match.
	ErrBadCredentials = errors.New("bad credentials")

	// ErrMalformedHash is returned when a stored password hash cannot be parsed.
	ErrMalformedHash = errors.New("malformed password hash")

	// ErrSigning is returned when a session token cannot be signed.
	ErrSigning = errors.New("token signing failed")

	// ErrTokenExpired is returned when a token's expiry is not after now.
	ErrTokenExpired = errors.New("token expired")

	// ErrTokenBadSignature is returned when a token's signature does not verify.
	ErrTokenBadSignature = errors.New("token signature invalid")

	// ErrTokenMalformed is returned when a token cannot be decoded.
	ErrTokenMalformed = errors.New("token malformed")

	// ErrUnauthorized is returned by the Gate for requests without a usable
	// bearer token.
	ErrUnauthorized = errors.New("unauthorized")

	// ErrMalformedHeader is returned by the Gate when the Authorization header
	// is not valid header text.
	ErrMalformedHeader = errors.New("malformed authorization header")
)
