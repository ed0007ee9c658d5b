// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 MemberDash Contributors

package auth

import (
	"context"
	"time"
)

// Identity is the verified subject of a request or a freshly registered
// account. A non-nil Identity obtained from the Gate proves the bearer token
// was valid at the time of the request.
type Identity struct {
	Email     Email
	ExpiresAt time.Time
}

type identityKey struct{}

// WithIdentity returns a context carrying id.
func WithIdentity(ctx context.Context, id *Identity) context.Context {
	return context.WithValue(ctx, identityKey{}, id)
}

// IdentityFromContext returns the identity stored by WithIdentity.
func IdentityFromContext(ctx context.Context) (*Identity, bool) {
	id, ok := ctx.Value(identityKey{}).(*Identity)
	return id, ok && id != nil
}
