// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package authorization

import (
	"context"
	"fmt"

	"github.com/canonical/event-crm/internal/logging"
	"github.com/canonical/event-crm/internal/monitoring"
	"github.com/canonical/event-crm/internal/roles"
	"github.com/canonical/event-crm/internal/tracing"
	"github.com/canonical/event-crm/internal/types"
)

var _ AuthorizerInterface = (*Authorizer)(nil)

// Authorizer is the single authority for role and tenant checks, handlers
// must go through it instead of comparing role strings themselves.
type Authorizer struct {
	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func (a *Authorizer) CheckRole(ctx context.Context, principal *types.Principal, required string) error {
	_, span := a.tracer.Start(ctx, "authorization.Authorizer.CheckRole")
	defer span.End()

	if principal == nil {
		return ErrUnauthenticated
	}

	if !roles.IsAtLeast(principal.Role, required) {
		a.logger.Security().AuthzFailure(principal.ID, "role:"+required)
		return fmt.Errorf("%w: role %s required", ErrForbidden, required)
	}

	return nil
}

// CheckTenantAccess lets SUPER_ADMIN through unconditionally, any other
// role needs a non empty tenant equal to the resource one.
func (a *Authorizer) CheckTenantAccess(ctx context.Context, principal *types.Principal, resourceTenantID string) error {
	_, span := a.tracer.Start(ctx, "authorization.Authorizer.CheckTenantAccess")
	defer span.End()

	if principal == nil {
		return ErrUnauthenticated
	}

	if principal.Role == roles.SuperAdmin {
		return nil
	}

	if principal.TenantID != "" && principal.TenantID == resourceTenantID {
		return nil
	}

	a.logger.Security().AuthzFailure(principal.ID, "tenant:"+resourceTenantID)
	return fmt.Errorf("%w: tenant mismatch", ErrForbidden)
}

// ScopeTenant returns the tenant a list or create call must run against.
// SUPER_ADMIN gets the requested tenant, possibly empty meaning all of
// them; everyone else is pinned to their own tenant.
func (a *Authorizer) ScopeTenant(ctx context.Context, principal *types.Principal, requestedTenantID string) (string, error) {
	_, span := a.tracer.Start(ctx, "authorization.Authorizer.ScopeTenant")
	defer span.End()

	if principal == nil {
		return "", ErrUnauthenticated
	}

	if principal.Role == roles.SuperAdmin {
		return requestedTenantID, nil
	}

	if principal.TenantID == "" {
		a.logger.Security().AuthzFailure(principal.ID, "tenant:none")
		return "", fmt.Errorf("%w: no tenant bound to identity", ErrForbidden)
	}

	if requestedTenantID != "" && requestedTenantID != principal.TenantID {
		a.logger.Security().AuthzFailure(principal.ID, "tenant:"+requestedTenantID)
		return "", fmt.Errorf("%w: tenant mismatch", ErrForbidden)
	}

	return principal.TenantID, nil
}

// CheckRoleGrant fails when role is unknown or above the principal's own.
func (a *Authorizer) CheckRoleGrant(ctx context.Context, principal *types.Principal, role string) error {
	_, span := a.tracer.Start(ctx, "authorization.Authorizer.CheckRoleGrant")
	defer span.End()

	if principal == nil {
		return ErrUnauthenticated
	}

	if _, err := roles.Parse(role); err != nil {
		return err
	}

	if !roles.IsAtLeast(principal.Role, role) {
		a.logger.Security().AuthzFailure(principal.ID, "grant:"+role)
		return fmt.Errorf("%w: cannot grant %s", ErrForbidden, role)
	}

	return nil
}

func NewAuthorizer(tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *Authorizer {
	authorizer := new(Authorizer)
	authorizer.tracer = tracer
	authorizer.monitor = monitor
	authorizer.logger = logger

	return authorizer
}
