// Copyright 2025 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package storage

import (
	"context"

	"github.com/canonical/event-crm/internal/types"
)

// Page selects a window of a listing, Number is 1-based.
type Page struct {
	Number int64
	Size   int64
}

type EventFilter struct {
	TenantID string
	ClientID string
	Status   string
}

type StorageInterface interface {
	CreateTenant(ctx context.Context, t *types.Tenant) (*types.Tenant, error)
	GetTenantByID(ctx context.Context, id string) (*types.Tenant, error)
	ListTenants(ctx context.Context, page Page) ([]*types.Tenant, error)
	UpdateTenant(ctx context.Context, t *types.Tenant, paths []string) (*types.Tenant, error)
	DeleteTenant(ctx context.Context, id string) error

	CreateUser(ctx context.Context, u *types.User) (*types.User, error)
	GetUserByID(ctx context.Context, id string) (*types.User, error)
	GetUserByEmail(ctx context.Context, email string) (*types.User, error)
	ListUsers(ctx context.Context, tenantID string, page Page) ([]*types.User, error)
	UpdateUserRole(ctx context.Context, id, role, tenantID string) error
	SetUserActive(ctx context.Context, id string, active bool) error

	CreateClient(ctx context.Context, c *types.Client) (*types.Client, error)
	GetClientByID(ctx context.Context, id string) (*types.Client, error)
	ListClients(ctx context.Context, tenantID string, page Page) ([]*types.Client, error)
	UpdateClient(ctx context.Context, c *types.Client, paths []string) (*types.Client, error)
	DeleteClient(ctx context.Context, id string) error

	CreateEvent(ctx context.Context, e *types.Event) (*types.Event, error)
	GetEventByID(ctx context.Context, id string) (*types.Event, error)
	ListEvents(ctx context.Context, filter EventFilter, page Page) ([]*types.Event, error)
	ListEventsByClientEmail(ctx context.Context, tenantID, email string) ([]*types.Event, error)
	UpdateEvent(ctx context.Context, e *types.Event, paths []string) (*types.Event, error)
	DeleteEvent(ctx context.Context, id string) error
}
