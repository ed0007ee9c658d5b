// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 MemberDash Contributors

package httpapi

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/oklog/ulid/v2"
	"github.com/samber/oops"

	"github.com/memberdash/memberdash/internal/auth"
	"github.com/memberdash/memberdash/internal/logging"
)

// HeaderRequestID carries the request ID on requests and responses.
const HeaderRequestID = "X-Request-ID"

// identityLocal is the fiber Locals key holding the verified *auth.Identity.
const identityLocal = "identity"

// requestID assigns each request a ULID, reusing a well-formed incoming one.
func (s *Server) requestID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Get(HeaderRequestID)
		if _, err := ulid.ParseStrict(id); err != nil {
			id = ulid.Make().String()
		}
		c.Set(HeaderRequestID, id)
		c.SetUserContext(logging.WithRequestID(c.UserContext(), id))
		return c.Next()
	}
}

// accessLog logs and measures every request. Chain errors are resolved here
// through the error handler so the final status is known.
func (s *Server) accessLog() fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()

		if chainErr := c.Next(); chainErr != nil {
			if err := c.App().ErrorHandler(c, chainErr); err != nil {
				_ = c.SendStatus(http.StatusInternalServerError)
			}
		}

		elapsed := time.Since(start)
		status := c.Response().StatusCode()
		route := c.Route().Path

		s.metrics.RecordHTTPRequest(c.Method(), route, status, elapsed)
		s.logger.InfoContext(c.UserContext(), "request",
			"method", c.Method(),
			"path", c.Path(),
			"route", route,
			"status", status,
			"duration", elapsed,
		)
		return nil
	}
}

func (s *Server) logPanic(c *fiber.Ctx, recovered any) {
	s.logger.ErrorContext(c.UserContext(), "panic recovered",
		"panic", fmt.Sprint(recovered),
		"method", c.Method(),
		"path", c.Path(),
	)
}

// RequireAuth rejects requests without a valid bearer token. On success the
// verified identity is stored in Locals and in the user context.
func (s *Server) RequireAuth() fiber.Handler {
	return func(c *fiber.Ctx) error {
		ctx := c.UserContext()
		identity, err := s.gate.Authorize(ctx, http.Header(c.GetReqHeaders()))
		if err != nil {
			return err
		}

		c.Locals(identityLocal, identity)
		ctx = auth.WithIdentity(ctx, identity)
		c.SetUserContext(logging.WithSubject(ctx, identity.Email.String()))
		return c.Next()
	}
}

// identityFrom returns the identity stored by RequireAuth.
func identityFrom(c *fiber.Ctx) (*auth.Identity, error) {
	if identity, ok := c.Locals(identityLocal).(*auth.Identity); ok && identity != nil {
		return identity, nil
	}
	if identity, ok := auth.IdentityFromContext(c.UserContext()); ok {
		return identity, nil
	}
	return nil, oops.Code("HTTP_UNAUTHENTICATED").With("reason", auth.ReasonMissingHeader).Wrap(auth.ErrUnauthorized)
}
