// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 MemberDash Contributors

package httpapi

import validation "github.com/go-ozzo/ozzo-validation"

const (
	statusSuccess = "success"
	statusError   = "error"
)

// Response messages returned to clients.
const (
	MessageRegistered    = "Berhasil membuat akun"
	MessageLoggedIn      = "Berhasil login"
	MessageMemberCreated = "Berhasil manambah data"
	MessageMemberUpdated = "Berhasil update data"
	MessageMemberDeleted = "Berhasil menghapus data"
)

// Credentials is the body of POST /register and POST /login. Both keys
// must be present and non-null; an empty password is allowed.
type Credentials struct {
	Email    *string `json:"email"`
	Password *string `json:"password"`
}

// Validate reports an absent or null field.
func (c Credentials) Validate() error {
	return validation.ValidateStruct(&c,
		validation.Field(&c.Email, validation.NotNil),
		validation.Field(&c.Password, validation.NotNil),
	)
}

// SessionContent describes the account or session created by an auth call.
// Expired is the token lifetime in seconds.
type SessionContent struct {
	Email   string `json:"email"`
	Token   string `json:"token"`
	Expired int64  `json:"expired"`
}

// AuthResponse is returned by POST /register and POST /login.
type AuthResponse struct {
	Status  string         `json:"status"`
	Message string         `json:"message"`
	Content SessionContent `json:"content"`
}

// MessageResponse is returned by member writes.
type MessageResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

// ErrorResponse is returned for every failed request. Fields is set only for
// member validation failures.
type ErrorResponse struct {
	Status  string            `json:"status"`
	Message string            `json:"message"`
	Fields  map[string]string `json:"fields,omitempty"`
}

// IdentityResponse is returned by GET /me.
type IdentityResponse struct {
	Email     string `json:"email"`
	ExpiresAt string `json:"expires_at"`
}
