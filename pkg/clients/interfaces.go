// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package clients

import (
	"context"

	"github.com/canonical/event-crm/internal/storage"
	"github.com/canonical/event-crm/internal/types"
)

type ServiceInterface interface {
	ListClients(ctx context.Context, principal *types.Principal, tenantID string, page storage.Page) ([]*types.Client, error)
	GetClient(ctx context.Context, principal *types.Principal, id string) (*types.Client, error)
	CreateClient(ctx context.Context, principal *types.Principal, req *CreateClientRequest) (*types.Client, error)
	UpdateClient(ctx context.Context, principal *types.Principal, id string, req *UpdateClientRequest) (*types.Client, error)
	DeleteClient(ctx context.Context, principal *types.Principal, id string) error
}

type StorageInterface interface {
	CreateClient(ctx context.Context, c *types.Client) (*types.Client, error)
	GetClientByID(ctx context.Context, id string) (*types.Client, error)
	ListClients(ctx context.Context, tenantID string, page storage.Page) ([]*types.Client, error)
	UpdateClient(ctx context.Context, c *types.Client, paths []string) (*types.Client, error)
	DeleteClient(ctx context.Context, id string) error
}

type AuthorizerInterface interface {
	CheckRole(ctx context.Context, principal *types.Principal, required string) error
	CheckTenantAccess(ctx context.Context, principal *types.Principal, resourceTenantID string) error
	ScopeTenant(ctx context.Context, principal *types.Principal, requestedTenantID string) (string, error)
}
