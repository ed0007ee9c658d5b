// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 MemberDash Contributors

// Package store owns the PostgreSQL connection pool and the embedded schema
// migrations shared by the credential and member repositories.
package store
