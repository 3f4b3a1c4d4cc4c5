// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package authorization

import "errors"

var (
	// ErrUnauthenticated means no valid session was presented.
	ErrUnauthenticated = errors.New("unauthenticated")
	// ErrUnverified means the session is valid but the email address is not confirmed.
	ErrUnverified = errors.New("email address not verified")
	// ErrForbidden means the caller is authenticated but its role or tenant does not match.
	ErrForbidden = errors.New("forbidden")
	// ErrNotFound is returned for absent resources and for resources owned by
	// another tenant, the two are never distinguished.
	ErrNotFound = errors.New("not found")
)
