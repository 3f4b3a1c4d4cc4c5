// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package authentication

import (
	"context"
	"fmt"

	"github.com/canonical/event-crm/internal/authorization"
	"github.com/canonical/event-crm/internal/types"
)

// DenyVerifier rejects every token. It stands in for the JWT verifier when
// no session secret is configured.
type DenyVerifier struct{}

func NewDenyVerifier() *DenyVerifier {
	return &DenyVerifier{}
}

func (d *DenyVerifier) VerifyToken(ctx context.Context, rawToken string) (*types.Principal, error) {
	return nil, fmt.Errorf("%w: session secret not configured", authorization.ErrUnauthenticated)
}
