// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package tenant

import (
	"context"

	"github.com/canonical/event-crm/internal/storage"
	"github.com/canonical/event-crm/internal/types"
)

type ServiceInterface interface {
	ListTenants(ctx context.Context, principal *types.Principal, page storage.Page) ([]*types.Tenant, error)
	GetTenant(ctx context.Context, principal *types.Principal, id string) (*types.Tenant, error)
	CreateTenant(ctx context.Context, principal *types.Principal, name string) (*types.Tenant, error)
	UpdateTenant(ctx context.Context, principal *types.Principal, id string, req *UpdateTenantRequest) (*types.Tenant, error)
	DeleteTenant(ctx context.Context, principal *types.Principal, id string) error
}

type StorageInterface interface {
	CreateTenant(ctx context.Context, t *types.Tenant) (*types.Tenant, error)
	GetTenantByID(ctx context.Context, id string) (*types.Tenant, error)
	ListTenants(ctx context.Context, page storage.Page) ([]*types.Tenant, error)
	UpdateTenant(ctx context.Context, t *types.Tenant, paths []string) (*types.Tenant, error)
	DeleteTenant(ctx context.Context, id string) error
}

type AuthorizerInterface interface {
	CheckRole(ctx context.Context, principal *types.Principal, required string) error
	CheckTenantAccess(ctx context.Context, principal *types.Principal, resourceTenantID string) error
}
