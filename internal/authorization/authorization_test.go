// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package authorization

import (
	"context"
	"errors"
	"testing"

	"github.com/canonical/event-crm/internal/logging"
	"github.com/canonical/event-crm/internal/monitoring"
	"github.com/canonical/event-crm/internal/roles"
	"github.com/canonical/event-crm/internal/tracing"
	"github.com/canonical/event-crm/internal/types"
)

func newTestAuthorizer() *Authorizer {
	return NewAuthorizer(tracing.NewNoopTracer(), monitoring.NewNoopMonitor("test"), logging.NewNoopLogger())
}

func TestAuthorizer_CheckTenantAccess(t *testing.T) {
	testCases := []struct {
		name           string
		principal      *types.Principal
		resourceTenant string
		expectedErr    error
	}{
		{
			name:           "super admin without tenant reaches any tenant",
			principal:      &types.Principal{ID: "root", Role: roles.SuperAdmin},
			resourceTenant: "t1",
		},
		{
			name:           "super admin with a tenant reaches another tenant",
			principal:      &types.Principal{ID: "root", Role: roles.SuperAdmin, TenantID: "t9"},
			resourceTenant: "t1",
		},
		{
			name:           "tenant admin on own tenant",
			principal:      &types.Principal{ID: "u1", Role: roles.TenantAdmin, TenantID: "t1"},
			resourceTenant: "t1",
		},
		{
			name:           "tenant admin on another tenant",
			principal:      &types.Principal{ID: "u1", Role: roles.TenantAdmin, TenantID: "t1"},
			resourceTenant: "t2",
			expectedErr:    ErrForbidden,
		},
		{
			name:           "empty tenants never match",
			principal:      &types.Principal{ID: "u2", Role: roles.Manager},
			resourceTenant: "",
			expectedErr:    ErrForbidden,
		},
		{
			name:           "client external on own tenant",
			principal:      &types.Principal{ID: "c1", Role: roles.ClientExternal, TenantID: "t1"},
			resourceTenant: "t1",
		},
		{
			name:           "unknown role on own tenant is still scoped",
			principal:      &types.Principal{ID: "x", Role: "GUEST", TenantID: "t1"},
			resourceTenant: "t2",
			expectedErr:    ErrForbidden,
		},
		{
			name:           "missing principal",
			principal:      nil,
			resourceTenant: "t1",
			expectedErr:    ErrUnauthenticated,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			a := newTestAuthorizer()

			err := a.CheckTenantAccess(context.Background(), tc.principal, tc.resourceTenant)

			if tc.expectedErr == nil && err != nil {
				t.Errorf("unexpected error: %v", err)
			}

			if tc.expectedErr != nil && !errors.Is(err, tc.expectedErr) {
				t.Errorf("expected error %v, got %v", tc.expectedErr, err)
			}
		})
	}
}

func TestAuthorizer_CheckRole(t *testing.T) {
	testCases := []struct {
		name        string
		principal   *types.Principal
		required    string
		expectedErr error
	}{
		{
			name:      "same role",
			principal: &types.Principal{ID: "u1", Role: roles.Manager},
			required:  roles.Manager,
		},
		{
			name:      "higher role",
			principal: &types.Principal{ID: "u1", Role: roles.TenantAdmin},
			required:  roles.User,
		},
		{
			name:        "lower role",
			principal:   &types.Principal{ID: "u1", Role: roles.User},
			required:    roles.Manager,
			expectedErr: ErrForbidden,
		},
		{
			name:        "empty role",
			principal:   &types.Principal{ID: "u1"},
			required:    roles.ClientExternal,
			expectedErr: ErrForbidden,
		},
		{
			name:        "unknown requirement",
			principal:   &types.Principal{ID: "root", Role: roles.SuperAdmin},
			required:    "UNKNOWN_ROLE",
			expectedErr: ErrForbidden,
		},
		{
			name:        "missing principal",
			required:    roles.User,
			expectedErr: ErrUnauthenticated,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			a := newTestAuthorizer()

			err := a.CheckRole(context.Background(), tc.principal, tc.required)

			if tc.expectedErr == nil && err != nil {
				t.Errorf("unexpected error: %v", err)
			}

			if tc.expectedErr != nil && !errors.Is(err, tc.expectedErr) {
				t.Errorf("expected error %v, got %v", tc.expectedErr, err)
			}
		})
	}
}

func TestAuthorizer_ScopeTenant(t *testing.T) {
	testCases := []struct {
		name           string
		principal      *types.Principal
		requested      string
		expectedTenant string
		expectedErr    error
	}{
		{
			name:           "super admin lists everything",
			principal:      &types.Principal{ID: "root", Role: roles.SuperAdmin},
			expectedTenant: "",
		},
		{
			name:           "super admin picks a tenant",
			principal:      &types.Principal{ID: "root", Role: roles.SuperAdmin},
			requested:      "t2",
			expectedTenant: "t2",
		},
		{
			name:           "manager defaults to own tenant",
			principal:      &types.Principal{ID: "u1", Role: roles.Manager, TenantID: "t1"},
			expectedTenant: "t1",
		},
		{
			name:           "manager asks for own tenant",
			principal:      &types.Principal{ID: "u1", Role: roles.Manager, TenantID: "t1"},
			requested:      "t1",
			expectedTenant: "t1",
		},
		{
			name:        "manager asks for another tenant",
			principal:   &types.Principal{ID: "u1", Role: roles.Manager, TenantID: "t1"},
			requested:   "t2",
			expectedErr: ErrForbidden,
		},
		{
			name:        "identity without tenant",
			principal:   &types.Principal{ID: "u1", Role: roles.TenantAdmin},
			expectedErr: ErrForbidden,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			a := newTestAuthorizer()

			tenant, err := a.ScopeTenant(context.Background(), tc.principal, tc.requested)

			if tc.expectedErr != nil {
				if !errors.Is(err, tc.expectedErr) {
					t.Errorf("expected error %v, got %v", tc.expectedErr, err)
				}
				return
			}

			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			if tenant != tc.expectedTenant {
				t.Errorf("expected tenant %q, got %q", tc.expectedTenant, tenant)
			}
		})
	}
}

func TestAuthorizer_CheckRoleGrant(t *testing.T) {
	a := newTestAuthorizer()
	ctx := context.Background()

	admin := &types.Principal{ID: "u1", Role: roles.TenantAdmin, TenantID: "t1"}
	root := &types.Principal{ID: "root", Role: roles.SuperAdmin}

	if err := a.CheckRoleGrant(ctx, admin, roles.Manager); err != nil {
		t.Errorf("unexpected error: %v", err)
	}

	if err := a.CheckRoleGrant(ctx, admin, roles.TenantAdmin); err != nil {
		t.Errorf("unexpected error: %v", err)
	}

	if err := a.CheckRoleGrant(ctx, admin, roles.SuperAdmin); !errors.Is(err, ErrForbidden) {
		t.Errorf("expected forbidden, got %v", err)
	}

	if err := a.CheckRoleGrant(ctx, root, roles.SuperAdmin); err != nil {
		t.Errorf("unexpected error: %v", err)
	}

	if err := a.CheckRoleGrant(ctx, root, "OWNER"); err == nil {
		t.Error("expected error for unknown role")
	}
}
