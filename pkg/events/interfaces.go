// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package events

import (
	"context"

	"github.com/canonical/event-crm/internal/storage"
	"github.com/canonical/event-crm/internal/types"
)

type ServiceInterface interface {
	ListEvents(ctx context.Context, principal *types.Principal, filter storage.EventFilter, page storage.Page) ([]*types.Event, error)
	GetEvent(ctx context.Context, principal *types.Principal, id string) (*types.Event, error)
	CreateEvent(ctx context.Context, principal *types.Principal, req *CreateEventRequest) (*types.Event, error)
	UpdateEvent(ctx context.Context, principal *types.Principal, id string, req *UpdateEventRequest) (*types.Event, error)
	DeleteEvent(ctx context.Context, principal *types.Principal, id string) error
	ListPortalEvents(ctx context.Context, principal *types.Principal) ([]*types.Event, error)
}

type StorageInterface interface {
	GetClientByID(ctx context.Context, id string) (*types.Client, error)
	CreateEvent(ctx context.Context, e *types.Event) (*types.Event, error)
	GetEventByID(ctx context.Context, id string) (*types.Event, error)
	ListEvents(ctx context.Context, filter storage.EventFilter, page storage.Page) ([]*types.Event, error)
	ListEventsByClientEmail(ctx context.Context, tenantID, email string) ([]*types.Event, error)
	UpdateEvent(ctx context.Context, e *types.Event, paths []string) (*types.Event, error)
	DeleteEvent(ctx context.Context, id string) error
}

type AuthorizerInterface interface {
	CheckRole(ctx context.Context, principal *types.Principal, required string) error
	CheckTenantAccess(ctx context.Context, principal *types.Principal, resourceTenantID string) error
	ScopeTenant(ctx context.Context, principal *types.Principal, requestedTenantID string) (string, error)
}
