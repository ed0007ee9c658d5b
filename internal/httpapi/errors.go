// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 MemberDash Contributors

package httpapi

import (
	"errors"
	"net/http"

	"github.com/gofiber/fiber/v2"
	"github.com/samber/oops"

	"github.com/memberdash/memberdash/internal/auth"
	"github.com/memberdash/memberdash/internal/member"
	"github.com/memberdash/memberdash/pkg/errutil"
)

// ErrMalformedRequest is returned when a request body or path parameter
// cannot be decoded.
var ErrMalformedRequest = errors.New("malformed request")

// errorMapping ties a sentinel to the status and client message it maps to.
type errorMapping struct {
	sentinel error
	status   int
	message  string
}

// errorMappings is checked in order; the first sentinel matched wins.
var errorMappings = []errorMapping{
	{ErrMalformedRequest, http.StatusBadRequest, "malformed request"},
	{auth.ErrInvalidEmail, http.StatusBadRequest, "email is invalid"},
	{auth.ErrBadCredentials, http.StatusBadRequest, "wrong password"},
	{auth.ErrMalformedHeader, http.StatusBadRequest, auth.ReasonMalformedHeader},
	{member.ErrInvalid, http.StatusBadRequest, "invalid member data"},
	{auth.ErrUnauthorized, http.StatusUnauthorized, "unauthorized"},
	{auth.ErrNotFound, http.StatusNotFound, "account not found"},
	{member.ErrNotFound, http.StatusNotFound, "member not found"},
	{auth.ErrEmailTaken, http.StatusConflict, "email already registered"},
	{auth.ErrNotAccepted, http.StatusNotAcceptable, "request not accepted"},
	{member.ErrNotAccepted, http.StatusNotAcceptable, "request not accepted"},
}

// malformed wraps a decode failure so it maps to 400.
func malformed(code string, err error) error {
	return oops.Code(code).Wrap(errors.Join(ErrMalformedRequest, err))
}

// statusFor returns the HTTP status and client-safe message for err.
func statusFor(err error) (int, string) {
	for _, m := range errorMappings {
		if errors.Is(err, m.sentinel) {
			return m.status, m.message
		}
	}

	var fe *fiber.Error
	if errors.As(err, &fe) {
		return fe.Code, fe.Message
	}

	return http.StatusInternalServerError, "internal server error"
}

// handleError is the fiber ErrorHandler. Internal errors are logged in full
// and surfaced as an opaque 500.
func (s *Server) handleError(c *fiber.Ctx, err error) error {
	status, message := statusFor(err)

	body := ErrorResponse{Status: statusError, Message: message}
	if errors.Is(err, auth.ErrUnauthorized) || errors.Is(err, auth.ErrMalformedHeader) {
		if reason, ok := oopsContext(err)["reason"].(string); ok {
			body.Message = reason
		}
	}
	if errors.Is(err, member.ErrInvalid) {
		body.Fields = member.FieldErrors(err)
	}

	ctx := c.UserContext()
	if status >= http.StatusInternalServerError {
		errutil.LogErrorContext(ctx, s.logger, "request failed", err)
	} else {
		s.logger.DebugContext(ctx, "request rejected",
			append([]any{"status", status}, errutil.Attrs(err)...)...)
	}

	return c.Status(status).JSON(body)
}

func oopsContext(err error) map[string]any {
	if oopsErr, ok := oops.AsOops(err); ok {
		return oopsErr.Context()
	}
	return nil
}
