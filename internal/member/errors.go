// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 MemberDash Contributors

package member

import (
	"errors"

	validation "github.com/go-ozzo/ozzo-validation"
)

var (
	// ErrNotFound is returned when no member has the requested id.
	ErrNotFound = errors.New("member not found")

	// ErrInvalid is returned when a member record or request parameter
	// fails validation.
	ErrInvalid = errors.New("invalid member data")

	// ErrNotAccepted is returned when the store reported success but did
	// not write the row.
	ErrNotAccepted = errors.New("member not accepted")
)

// FieldErrors returns the per-field validation messages carried by err,
// keyed by JSON field name, or nil if err carries none.
func FieldErrors(err error) map[string]string {
	var verrs validation.Errors
	if !errors.As(err, &verrs) {
		return nil
	}
	fields := make(map[string]string, len(verrs))
	for name, fieldErr := range verrs {
		fields[name] = fieldErr.Error()
	}
	return fields
}
