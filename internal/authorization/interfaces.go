// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package authorization

import (
	"context"

	"github.com/canonical/event-crm/internal/types"
)

type AuthorizerInterface interface {
	// CheckRole fails unless the principal is at least as privileged as the given role.
	CheckRole(context.Context, *types.Principal, string) error
	// CheckTenantAccess fails unless the principal may act on a resource owned by the given tenant.
	CheckTenantAccess(context.Context, *types.Principal, string) error
	// ScopeTenant resolves the tenant a collection operation runs against.
	ScopeTenant(context.Context, *types.Principal, string) (string, error)
	// CheckRoleGrant fails unless the principal may hand out the given role.
	CheckRoleGrant(context.Context, *types.Principal, string) error
}
