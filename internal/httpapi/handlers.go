// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 MemberDash Contributors

package httpapi

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/samber/oops"

	"github.com/memberdash/memberdash/internal/member"
)

// Auth operation outcomes reported to metrics.
const (
	outcomeSuccess = "success"
	outcomeFailure = "failure"
)

// parseCredentials decodes a Credentials body. A missing or null field is
// malformed.
func parseCredentials(c *fiber.Ctx) (email, password string, err error) {
	var req Credentials
	if err := c.BodyParser(&req); err != nil {
		return "", "", malformed("HTTP_MALFORMED_BODY", err)
	}
	if err := req.Validate(); err != nil {
		return "", "", malformed("HTTP_MALFORMED_BODY", err)
	}
	return *req.Email, *req.Password, nil
}

func (s *Server) handleRegister(c *fiber.Ctx) error {
	email, password, err := parseCredentials(c)
	if err != nil {
		s.metrics.RecordAuthOperation("register", outcomeFailure)
		return err
	}

	identity, err := s.auth.Register(c.UserContext(), email, password)
	if err != nil {
		s.metrics.RecordAuthOperation("register", outcomeFailure)
		return err
	}
	s.metrics.RecordAuthOperation("register", outcomeSuccess)

	return c.Status(http.StatusCreated).JSON(AuthResponse{
		Status:  statusSuccess,
		Message: MessageRegistered,
		Content: SessionContent{Email: identity.Email.String()},
	})
}

func (s *Server) handleLogin(c *fiber.Ctx) error {
	email, password, err := parseCredentials(c)
	if err != nil {
		s.metrics.RecordAuthOperation("login", outcomeFailure)
		return err
	}

	session, err := s.auth.Login(c.UserContext(), email, password)
	if err != nil {
		s.metrics.RecordAuthOperation("login", outcomeFailure)
		return err
	}
	s.metrics.RecordAuthOperation("login", outcomeSuccess)

	return c.JSON(AuthResponse{
		Status:  statusSuccess,
		Message: MessageLoggedIn,
		Content: SessionContent{
			Email:   session.Email.String(),
			Token:   session.Token,
			Expired: int64(session.TTL / time.Second),
		},
	})
}

func (s *Server) handleMe(c *fiber.Ctx) error {
	identity, err := identityFrom(c)
	if err != nil {
		return err
	}
	return c.JSON(IdentityResponse{
		Email:     identity.Email.String(),
		ExpiresAt: identity.ExpiresAt.UTC().Format(time.RFC3339),
	})
}

func (s *Server) handleListMembers(c *fiber.Ctx) error {
	identity, err := identityFrom(c)
	if err != nil {
		return err
	}

	limit, err := queryInt(c, "limit")
	if err != nil {
		return err
	}
	offset, err := queryInt(c, "offset")
	if err != nil {
		return err
	}

	members, err := s.members.List(c.UserContext(), identity, limit, offset)
	if err != nil {
		return err
	}
	return c.JSON(members)
}

func (s *Server) handleGetMember(c *fiber.Ctx) error {
	identity, err := identityFrom(c)
	if err != nil {
		return err
	}
	id, err := memberID(c)
	if err != nil {
		return err
	}

	m, err := s.members.Get(c.UserContext(), identity, id)
	if err != nil {
		return err
	}
	return c.JSON(m)
}

func (s *Server) handleCreateMember(c *fiber.Ctx) error {
	identity, err := identityFrom(c)
	if err != nil {
		return err
	}

	var m member.Member
	if err := c.BodyParser(&m); err != nil {
		return malformed("HTTP_MALFORMED_BODY", err)
	}

	if _, err := s.members.Create(c.UserContext(), identity, m); err != nil {
		return err
	}
	return c.JSON(MessageResponse{Status: statusSuccess, Message: MessageMemberCreated})
}

func (s *Server) handleUpdateMember(c *fiber.Ctx) error {
	identity, err := identityFrom(c)
	if err != nil {
		return err
	}
	id, err := memberID(c)
	if err != nil {
		return err
	}

	var m member.Member
	if err := c.BodyParser(&m); err != nil {
		return malformed("HTTP_MALFORMED_BODY", err)
	}

	if err := s.members.Update(c.UserContext(), identity, id, m); err != nil {
		return err
	}
	return c.JSON(MessageResponse{Status: statusSuccess, Message: MessageMemberUpdated})
}

func (s *Server) handleDeleteMember(c *fiber.Ctx) error {
	identity, err := identityFrom(c)
	if err != nil {
		return err
	}
	id, err := memberID(c)
	if err != nil {
		return err
	}

	if err := s.members.Delete(c.UserContext(), identity, id); err != nil {
		return err
	}
	return c.JSON(MessageResponse{Status: statusSuccess, Message: MessageMemberDeleted})
}

// memberID parses the :id path parameter as a 32-bit integer.
func memberID(c *fiber.Ctx) (int32, error) {
	raw := c.Params("id")
	id, err := strconv.ParseInt(raw, 10, 32)
	if err != nil {
		return 0, oops.With("param", "id").With("value", raw).Wrap(malformed("HTTP_MALFORMED_ID", err))
	}
	return int32(id), nil
}

// queryInt parses an optional integer query parameter; absent means zero.
func queryInt(c *fiber.Ctx, key string) (int, error) {
	raw := c.Query(key)
	if raw == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, oops.With("param", key).With("value", raw).Wrap(malformed("HTTP_MALFORMED_QUERY", err))
	}
	return n, nil
}
