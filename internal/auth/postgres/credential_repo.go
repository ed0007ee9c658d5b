// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 MemberDash Contributors

// Package postgres implements auth.CredentialRepository on PostgreSQL.
package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/samber/oops"

	"github.com/memberdash/memberdash/internal/auth"
)

// poolIface is satisfied by *pgxpool.Pool and pgxmock.PgxPoolIface.
type poolIface interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// CredentialRepository implements auth.CredentialRepository using the users table.
type CredentialRepository struct {
	pool poolIface
}

// NewCredentialRepository creates a new CredentialRepository.
func NewCredentialRepository(pool poolIface) *CredentialRepository {
	return &CredentialRepository{pool: pool}
}

var _ auth.CredentialRepository = (*CredentialRepository)(nil)

// FindPasswordHash returns the stored password hash for email.
func (r *CredentialRepository) FindPasswordHash(ctx context.Context, email auth.Email) (string, error) {
	var hash string
	err := r.pool.QueryRow(ctx, `SELECT password FROM users WHERE email = $1`, email.String()).Scan(&hash)
	if errors.Is(err, pgx.ErrNoRows) {
		return "", oops.Code("CREDENTIAL_NOT_FOUND").
			With("email", email.String()).
			Wrap(auth.ErrNotFound)
	}
	if err != nil {
		return "", oops.Code("CREDENTIAL_GET_FAILED").
			With("operation", "select password hash").
			Wrap(err)
	}
	return hash, nil
}

// Insert stores a new credential. A duplicate email wraps auth.ErrEmailTaken.
func (r *CredentialRepository) Insert(ctx context.Context, email auth.Email, passwordHash string) (int64, error) {
	tag, err := r.pool.Exec(ctx,
		`INSERT INTO users (email, password) VALUES ($1, $2)`,
		email.String(), passwordHash)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
			return 0, oops.Code("CREDENTIAL_EMAIL_TAKEN").
				With("email", email.String()).
				With("constraint", pgErr.ConstraintName).
				Wrap(auth.ErrEmailTaken)
		}
		return 0, oops.Code("CREDENTIAL_CREATE_FAILED").
			With("operation", "insert credential").
			Wrap(err)
	}
	return tag.RowsAffected(), nil
}
