// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 MemberDash Contributors

package member

import (
	"context"
	"log/slog"

	"github.com/samber/oops"

	"github.com/memberdash/memberdash/internal/auth"
)

// Paging limits for List.
const (
	DefaultListLimit = 10
	MaxListLimit     = 100
)

// Repository persists members.
type Repository interface {
	// List returns up to limit members ordered by id, skipping offset.
	List(ctx context.Context, limit, offset int) ([]Member, error)

	// Get returns the member with id, or an error wrapping ErrNotFound.
	Get(ctx context.Context, id int32) (*Member, error)

	// Insert stores m and returns it with its assigned id. createdBy is the
	// acting identity's email.
	Insert(ctx context.Context, m Member, createdBy string) (*Member, error)

	// Update replaces the member with id and returns the rows affected.
	Update(ctx context.Context, id int32, m Member) (int64, error)

	// Delete removes the member with id and returns the rows affected.
	Delete(ctx context.Context, id int32) (int64, error)
}

// Service validates and audits member operations.
type Service struct {
	repo   Repository
	logger *slog.Logger
}

// NewService creates a new Service.
func NewService(repo Repository, logger *slog.Logger) (*Service, error) {
	if repo == nil {
		return nil, oops.Code("MEMBER_INVALID_CONFIG").Errorf("member repository is required")
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{repo: repo, logger: logger}, nil
}

// List returns a page of members. A non-positive limit selects
// DefaultListLimit; limits above MaxListLimit are capped.
func (s *Service) List(ctx context.Context, who *auth.Identity, limit, offset int) ([]Member, error) {
	if err := requireIdentity(who); err != nil {
		return nil, err
	}
	if offset < 0 {
		return nil, oops.Code("MEMBER_INVALID_OFFSET").With("offset", offset).Wrapf(ErrInvalid, "offset must not be negative")
	}
	switch {
	case limit <= 0:
		limit = DefaultListLimit
	case limit > MaxListLimit:
		limit = MaxListLimit
	}

	members, err := s.repo.List(ctx, limit, offset)
	if err != nil {
		return nil, oops.Code("MEMBER_LIST_FAILED").With("limit", limit).With("offset", offset).Wrap(err)
	}
	if members == nil {
		members = []Member{}
	}
	return members, nil
}

// Get returns one member.
func (s *Service) Get(ctx context.Context, who *auth.Identity, id int32) (*Member, error) {
	if err := requireIdentity(who); err != nil {
		return nil, err
	}
	if err := validateID(id); err != nil {
		return nil, err
	}
	m, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, oops.Code("MEMBER_GET_FAILED").With("id", id).Wrap(err)
	}
	return m, nil
}

// Create validates and stores m. Any ID on m is ignored.
func (s *Service) Create(ctx context.Context, who *auth.Identity, m Member) (*Member, error) {
	if err := requireIdentity(who); err != nil {
		return nil, err
	}
	if err := m.Validate(); err != nil {
		return nil, err
	}
	m.ID = 0

	created, err := s.repo.Insert(ctx, m, who.Email.String())
	if err != nil {
		return nil, oops.Code("MEMBER_CREATE_FAILED").With("nik", m.NIK).Wrap(err)
	}

	s.logger.InfoContext(ctx, "member created", "member_id", created.ID, "actor", who.Email.String())
	return created, nil
}

// Update replaces the member with id by m.
func (s *Service) Update(ctx context.Context, who *auth.Identity, id int32, m Member) error {
	if err := requireIdentity(who); err != nil {
		return err
	}
	if err := validateID(id); err != nil {
		return err
	}
	if err := m.Validate(); err != nil {
		return err
	}

	rows, err := s.repo.Update(ctx, id, m)
	if err != nil {
		return oops.Code("MEMBER_UPDATE_FAILED").With("id", id).Wrap(err)
	}
	if rows == 0 {
		return oops.Code("MEMBER_NOT_FOUND").With("id", id).Wrap(ErrNotFound)
	}

	s.logger.InfoContext(ctx, "member updated", "member_id", id, "actor", who.Email.String())
	return nil
}

// Delete removes the member with id.
func (s *Service) Delete(ctx context.Context, who *auth.Identity, id int32) error {
	if err := requireIdentity(who); err != nil {
		return err
	}
	if err := validateID(id); err != nil {
		return err
	}

	rows, err := s.repo.Delete(ctx, id)
	if err != nil {
		return oops.Code("MEMBER_DELETE_FAILED").With("id", id).Wrap(err)
	}
	if rows == 0 {
		return oops.Code("MEMBER_NOT_FOUND").With("id", id).Wrap(ErrNotFound)
	}

	s.logger.InfoContext(ctx, "member deleted", "member_id", id, "actor", who.Email.String())
	return nil
}

func requireIdentity(who *auth.Identity) error {
	if who == nil || who.Email.IsZero() {
		return oops.Code("MEMBER_UNAUTHENTICATED").Wrap(auth.ErrUnauthorized)
	}
	return nil
}

func validateID(id int32) error {
	if id < 1 {
		return oops.Code("MEMBER_INVALID_ID").With("id", id).Wrapf(ErrInvalid, "id must be positive")
	}
	return nil
}
