// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package authentication

import (
	"context"

	"github.com/canonical/event-crm/internal/types"
)

type TokenVerifierInterface interface {
	// VerifyToken verifies a raw session token locally and returns the
	// identity snapshot it carries, otherwise an error
	VerifyToken(ctx context.Context, rawToken string) (*types.Principal, error)
}
