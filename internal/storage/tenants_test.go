// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package storage

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"

	"github.com/canonical/event-crm/internal/roles"
	"github.com/canonical/event-crm/internal/types"
)

func TestStorage_TenantLifecycle(t *testing.T) {
	s := newTestStorage(t)
	ctx := context.Background()

	tenant := createTestTenant(t, s)

	if !tenant.Enabled || tenant.CreatedAt.IsZero() {
		t.Errorf("unexpected tenant %+v", tenant)
	}

	updated, err := s.UpdateTenant(ctx, &types.Tenant{ID: tenant.ID, Name: "Renamed", Enabled: false}, []string{"name"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if updated.Name != "Renamed" || !updated.Enabled {
		t.Errorf("expected only the name to change, got %+v", updated)
	}

	client := createTestClient(t, s, tenant.ID, uuid.NewString()+"@example.com")

	if err := s.DeleteTenant(ctx, tenant.ID); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if _, err := s.GetTenantByID(ctx, tenant.ID); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected not found after delete, got %v", err)
	}

	if _, err := s.GetClientByID(ctx, client.ID); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected clients to go with their tenant, got %v", err)
	}
}

func TestStorage_DeleteTenantWithUsers(t *testing.T) {
	s := newTestStorage(t)
	ctx := context.Background()

	tenant := createTestTenant(t, s)
	createTestUser(t, s, roles.TenantAdmin, tenant.ID)

	if err := s.DeleteTenant(ctx, tenant.ID); !errors.Is(err, ErrForeignKeyViolation) {
		t.Errorf("expected foreign key violation, got %v", err)
	}

	if _, err := s.GetTenantByID(ctx, tenant.ID); err != nil {
		t.Errorf("expected tenant to survive, got %v", err)
	}
}
