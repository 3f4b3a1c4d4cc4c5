// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package users

import (
	"context"

	"github.com/canonical/event-crm/internal/storage"
	"github.com/canonical/event-crm/internal/types"
)

type ServiceInterface interface {
	ListUsers(ctx context.Context, principal *types.Principal, tenantID string, page storage.Page) ([]*types.User, error)
	CreateUser(ctx context.Context, principal *types.Principal, req *CreateUserRequest) (*CreatedUser, error)
	UpdateRole(ctx context.Context, principal *types.Principal, userID, role string) (*types.User, error)
	SetActive(ctx context.Context, principal *types.Principal, userID string, active bool) (*types.User, error)
	ResetPassword(ctx context.Context, principal *types.Principal, userID string) (string, error)
}

// StorageInterface is the subset of internal/storage used by this package.
type StorageInterface interface {
	CreateUser(ctx context.Context, u *types.User) (*types.User, error)
	GetUserByID(ctx context.Context, id string) (*types.User, error)
	GetUserByEmail(ctx context.Context, email string) (*types.User, error)
	ListUsers(ctx context.Context, tenantID string, page storage.Page) ([]*types.User, error)
	UpdateUserRole(ctx context.Context, id, role, tenantID string) error
	SetUserActive(ctx context.Context, id string, active bool) error
}

type AuthorizerInterface interface {
	CheckRole(ctx context.Context, principal *types.Principal, required string) error
	CheckTenantAccess(ctx context.Context, principal *types.Principal, resourceTenantID string) error
	ScopeTenant(ctx context.Context, principal *types.Principal, requestedTenantID string) (string, error)
	CheckRoleGrant(ctx context.Context, principal *types.Principal, role string) error
}

type KratosClientInterface interface {
	GetIdentityIDByEmail(ctx context.Context, email string) (string, error)
	CreateIdentity(ctx context.Context, email string) (string, error)
	DeleteIdentity(ctx context.Context, id string) error
	CreateRecoveryLink(ctx context.Context, identityID string, expiresIn string) (string, string, error)
}
