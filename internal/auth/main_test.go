// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 MemberDash Contributors

package auth_test

import (
	"testing"

	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}
