// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 MemberDash Contributors

// Package auth provides the authentication core for memberdash.
//
// # Value Types
//
// Values that cross the trust boundary are created through validating
// constructors:
//   - NewEmail - validates and wraps an email address
//   - NewTokenIssuer / NewTokenVerifier - bind an immutable signing secret
//
// An Email obtained any other way is the zero value and is rejected by every
// consumer in this package.
//
// # Services
//
//   - Service - registration and login against a CredentialRepository
//   - Gate - per-request bearer token authorization returning an Identity
//
// Services are created with New* constructors that validate dependencies.
package auth
