// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 MemberDash Contributors

// Package member manages the member registry behind the protected /data
// routes.
//
// Member records are validated with ozzo-validation before they reach the
// Repository. Every Service call requires the caller's verified
// *auth.Identity, which is recorded in the audit log.
package member
