// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 MemberDash Contributors

package auth

import (
	"encoding/json"
	"regexp"

	"github.com/samber/oops"
)

// emailRegex matches local-part@domain.tld where the final label is at least
// two letters.
var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

// Email is a validated email address.
type Email struct {
	value string
}

// NewEmail validates raw and wraps it in an Email.
func NewEmail(raw string) (Email, error) {
	if !emailRegex.MatchString(raw) {
		return Email{}, oops.Code("AUTH_INVALID_EMAIL").
			With("length", len(raw)).
			Wrap(ErrInvalidEmail)
	}
	return Email{value: raw}, nil
}

// String returns the address exactly as it was given to NewEmail.
func (e Email) String() string {
	return e.value
}

// IsZero reports whether e was not produced by NewEmail.
func (e Email) IsZero() bool {
	return e.value == ""
}

// MarshalJSON encodes the email as a JSON string.
func (e Email) MarshalJSON() ([]byte, error) {
	return json.Marshal(e.value)
}

// UnmarshalJSON decodes a JSON string and validates it with NewEmail.
func (e *Email) UnmarshalJSON(data []byte) error {
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return oops.Code("AUTH_INVALID_EMAIL").Wrap(err)
	}
	parsed, err := NewEmail(raw)
	if err != nil {
		return err
	}
	*e = parsed
	return nil
}
