// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package storage

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/google/uuid"

	"github.com/canonical/event-crm/internal/roles"
	"github.com/canonical/event-crm/internal/types"
)

func TestStorage_ListUsersScopesTenant(t *testing.T) {
	s := newTestStorage(t)
	ctx := context.Background()

	tenantA := createTestTenant(t, s)
	tenantB := createTestTenant(t, s)

	admin := createTestUser(t, s, roles.TenantAdmin, tenantA.ID)
	member := createTestUser(t, s, roles.User, tenantA.ID)
	createTestUser(t, s, roles.User, tenantB.ID)

	users, err := s.ListUsers(ctx, tenantA.ID, Page{Number: 1, Size: 50})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(users) != 2 {
		t.Fatalf("expected 2 users, got %d", len(users))
	}

	seen := map[string]bool{}
	for _, u := range users {
		if u.TenantID != tenantA.ID {
			t.Errorf("user %s belongs to tenant %s", u.ID, u.TenantID)
		}
		seen[u.ID] = true
	}

	if !seen[admin.ID] || !seen[member.ID] {
		t.Errorf("expected %s and %s, got %v", admin.ID, member.ID, seen)
	}

	page, err := s.ListUsers(ctx, tenantA.ID, Page{Number: 2, Size: 1})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(page) != 1 {
		t.Errorf("expected one user on the second page, got %d", len(page))
	}
}

func TestStorage_UserEmailIsCaseInsensitive(t *testing.T) {
	s := newTestStorage(t)
	ctx := context.Background()

	tenant := createTestTenant(t, s)
	email := "Mixed." + uuid.NewString() + "@Example.com"

	created, err := s.CreateUser(ctx, &types.User{ID: uuid.NewString(), Email: email, Role: roles.User, TenantID: tenant.ID, Active: true})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if created.Email != strings.ToLower(email) {
		t.Errorf("expected lowercased email, got %q", created.Email)
	}

	found, err := s.GetUserByEmail(ctx, strings.ToUpper(email))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if found.ID != created.ID {
		t.Errorf("expected user %s, got %s", created.ID, found.ID)
	}

	_, err = s.CreateUser(ctx, &types.User{ID: uuid.NewString(), Email: strings.ToUpper(email), Role: roles.User, TenantID: tenant.ID})
	if !errors.Is(err, ErrDuplicateKey) {
		t.Errorf("expected duplicate key, got %v", err)
	}
}

func TestStorage_UpdateUserRole(t *testing.T) {
	s := newTestStorage(t)
	ctx := context.Background()

	tenant := createTestTenant(t, s)

	t.Run("promotion to super admin clears the tenant", func(t *testing.T) {
		user := createTestUser(t, s, roles.Manager, tenant.ID)

		if err := s.UpdateUserRole(ctx, user.ID, roles.SuperAdmin, ""); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		got, err := s.GetUserByID(ctx, user.ID)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if got.Role != roles.SuperAdmin || got.TenantID != "" {
			t.Errorf("expected tenantless super admin, got role %s tenant %q", got.Role, got.TenantID)
		}
	})

	t.Run("tenant roles keep their tenant", func(t *testing.T) {
		user := createTestUser(t, s, roles.User, tenant.ID)

		if err := s.UpdateUserRole(ctx, user.ID, roles.Manager, tenant.ID); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		got, err := s.GetUserByID(ctx, user.ID)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if got.Role != roles.Manager || got.TenantID != tenant.ID {
			t.Errorf("expected manager of %s, got role %s tenant %q", tenant.ID, got.Role, got.TenantID)
		}
	})

	t.Run("tenant roles need a tenant", func(t *testing.T) {
		user := createTestUser(t, s, roles.User, tenant.ID)

		if err := s.UpdateUserRole(ctx, user.ID, roles.Manager, ""); err == nil {
			t.Error("expected the tenant constraint to reject the update")
		}
	})

	t.Run("unknown user", func(t *testing.T) {
		if err := s.UpdateUserRole(ctx, uuid.NewString(), roles.User, tenant.ID); !errors.Is(err, ErrNotFound) {
			t.Errorf("expected not found, got %v", err)
		}
	})
}

func TestStorage_SetUserActive(t *testing.T) {
	s := newTestStorage(t)
	ctx := context.Background()

	user := createTestUser(t, s, roles.User, createTestTenant(t, s).ID)

	if err := s.SetUserActive(ctx, user.ID, false); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got, err := s.GetUserByID(ctx, user.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if got.Active {
		t.Error("expected user to be inactive")
	}

	if _, err := s.GetUserByID(ctx, uuid.NewString()); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected not found, got %v", err)
	}
}
