// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 MemberDash Contributors

// Package postgres implements member.Repository on PostgreSQL.
package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/samber/oops"

	"github.com/memberdash/memberdash/internal/member"
)

// poolIface is satisfied by *pgxpool.Pool and pgxmock.PgxPoolIface.
type poolIface interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

const selectColumns = `id, nik, nama, umur, tanggal_lahir, tempat_lahir, status::text, gender::text`

// MemberRepository implements member.Repository using the members table.
type MemberRepository struct {
	pool poolIface
}

// NewMemberRepository creates a new MemberRepository.
func NewMemberRepository(pool poolIface) *MemberRepository {
	return &MemberRepository{pool: pool}
}

var _ member.Repository = (*MemberRepository)(nil)

// List returns up to limit members ordered by id.
func (r *MemberRepository) List(ctx context.Context, limit, offset int) ([]member.Member, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+selectColumns+` FROM members ORDER BY id LIMIT $1 OFFSET $2`,
		limit, offset)
	if err != nil {
		return nil, oops.With("operation", "list members").Wrap(err)
	}
	defer rows.Close()

	members := []member.Member{}
	for rows.Next() {
		m, err := scanMember(rows)
		if err != nil {
			return nil, oops.With("operation", "scan member row").Wrap(err)
		}
		members = append(members, *m)
	}
	if err := rows.Err(); err != nil {
		return nil, oops.With("operation", "iterate members").Wrap(err)
	}
	return members, nil
}

// Get returns the member with id.
func (r *MemberRepository) Get(ctx context.Context, id int32) (*member.Member, error) {
	row := r.pool.QueryRow(ctx, `SELECT `+selectColumns+` FROM members WHERE id = $1`, id)

	m, err := scanMember(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, oops.Code("MEMBER_NOT_FOUND").With("id", id).Wrap(member.ErrNotFound)
	}
	if err != nil {
		return nil, oops.Code("MEMBER_GET_FAILED").
			With("operation", "get member").
			With("id", id).
			Wrap(err)
	}
	return m, nil
}

// Insert stores m and returns it with the id assigned by the database.
func (r *MemberRepository) Insert(ctx context.Context, m member.Member, createdBy string) (*member.Member, error) {
	err := r.pool.QueryRow(ctx, `
		INSERT INTO members
			(nik, nama, umur, tanggal_lahir, tempat_lahir, status, gender, created_by)
		VALUES
			($1, $2, $3, $4, $5, $6::status_member, $7::gender_member, $8)
		RETURNING id
	`,
		m.NIK,
		m.Name,
		m.Age,
		m.BirthDate.Time,
		m.BirthPlace,
		string(m.Status),
		string(m.Gender),
		createdBy,
	).Scan(&m.ID)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, oops.Code("MEMBER_NOT_ACCEPTED").With("nik", m.NIK).Wrap(member.ErrNotAccepted)
	}
	if err != nil {
		return nil, wrapWriteError("MEMBER_CREATE_FAILED", "insert member", err)
	}
	return &m, nil
}

// Update replaces every column of the member with id.
func (r *MemberRepository) Update(ctx context.Context, id int32, m member.Member) (int64, error) {
	tag, err := r.pool.Exec(ctx, `
		UPDATE members SET
			nik = $1, nama = $2, umur = $3, tanggal_lahir = $4, tempat_lahir = $5,
			status = $6::status_member, gender = $7::gender_member, updated_at = now()
		WHERE id = $8
	`,
		m.NIK,
		m.Name,
		m.Age,
		m.BirthDate.Time,
		m.BirthPlace,
		string(m.Status),
		string(m.Gender),
		id,
	)
	if err != nil {
		return 0, wrapWriteError("MEMBER_UPDATE_FAILED", "update member", err)
	}
	return tag.RowsAffected(), nil
}

// Delete removes the member with id.
func (r *MemberRepository) Delete(ctx context.Context, id int32) (int64, error) {
	tag, err := r.pool.Exec(ctx, `DELETE FROM members WHERE id = $1`, id)
	if err != nil {
		return 0, oops.Code("MEMBER_DELETE_FAILED").
			With("operation", "delete member").
			With("id", id).
			Wrap(err)
	}
	return tag.RowsAffected(), nil
}

// wrapWriteError maps data errors the database caught (bad enum label,
// out-of-range number) onto member.ErrInvalid.
func wrapWriteError(code, operation string, err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgerrcode.InvalidTextRepresentation,
			pgerrcode.NumericValueOutOfRange,
			pgerrcode.NotNullViolation,
			pgerrcode.CheckViolation:
			return oops.Code("MEMBER_REJECTED_BY_DATABASE").
				With("operation", operation).
				With("pg_code", pgErr.Code).
				With("column", pgErr.ColumnName).
				Wrap(member.ErrInvalid)
		}
	}
	return oops.Code(code).With("operation", operation).Wrap(err)
}

func scanMember(row pgx.Row) (*member.Member, error) {
	var (
		m         member.Member
		birthDate time.Time
		status    string
		gender    string
	)
	if err := row.Scan(&m.ID, &m.NIK, &m.Name, &m.Age, &birthDate, &m.BirthPlace, &status, &gender); err != nil {
		return nil, err //nolint:wrapcheck // callers wrap with operation context
	}
	m.BirthDate = member.DateOf(birthDate)
	m.Status = member.Status(status)
	m.Gender = member.Gender(gender)
	return &m, nil
}
