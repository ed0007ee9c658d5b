// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 MemberDash Contributors

package auth

import "context"

// CredentialRepository stores email/password-hash pairs.
type CredentialRepository interface {
	// FindPasswordHash returns the stored hash for email.
	// Returns an error wrapping ErrNotFound if no credential exists.
	FindPasswordHash(ctx context.Context, email Email) (string, error)

	// Insert stores a new credential and returns the number of rows written.
	// Returns an error wrapping ErrEmailTaken on a uniqueness violation.
	Insert(ctx context.Context, email Email, passwordHash string) (int64, error)
}
