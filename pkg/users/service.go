// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package users

import (
	"context"
	"errors"
	"fmt"

	"github.com/canonical/event-crm/internal/authorization"
	httptypes "github.com/canonical/event-crm/internal/http/types"
	"github.com/canonical/event-crm/internal/logging"
	"github.com/canonical/event-crm/internal/monitoring"
	"github.com/canonical/event-crm/internal/roles"
	"github.com/canonical/event-crm/internal/storage"
	"github.com/canonical/event-crm/internal/tracing"
	"github.com/canonical/event-crm/internal/types"
)

var _ ServiceInterface = (*Service)(nil)

type Service struct {
	storage          StorageInterface
	authz            AuthorizerInterface
	kratos           KratosClientInterface
	recoveryLifetime string

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func NewService(
	storage StorageInterface,
	authz AuthorizerInterface,
	kratos KratosClientInterface,
	recoveryLifetime string,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) *Service {
	return &Service{
		storage:          storage,
		authz:            authz,
		kratos:           kratos,
		recoveryLifetime: recoveryLifetime,
		tracer:           tracer,
		monitor:          monitor,
		logger:           logger,
	}
}

func (s *Service) ListUsers(ctx context.Context, principal *types.Principal, tenantID string, page storage.Page) ([]*types.User, error) {
	ctx, span := s.tracer.Start(ctx, "users.Service.ListUsers")
	defer span.End()

	if err := s.authz.CheckRole(ctx, principal, roles.Manager); err != nil {
		return nil, err
	}

	scope, err := s.authz.ScopeTenant(ctx, principal, tenantID)
	if err != nil {
		return nil, err
	}

	return s.storage.ListUsers(ctx, scope, page)
}

// CreateUser provisions the identity in Kratos, stores it and hands back
// a recovery link. An identity created here is removed again when the
// user cannot be stored.
func (s *Service) CreateUser(ctx context.Context, principal *types.Principal, req *CreateUserRequest) (*CreatedUser, error) {
	ctx, span := s.tracer.Start(ctx, "users.Service.CreateUser")
	defer span.End()

	if err := s.authz.CheckRole(ctx, principal, roles.TenantAdmin); err != nil {
		return nil, err
	}

	if err := s.authz.CheckRoleGrant(ctx, principal, req.Role); err != nil {
		return nil, err
	}

	tenantID, err := s.authz.ScopeTenant(ctx, principal, req.TenantID)
	if err != nil {
		return nil, err
	}

	switch {
	case req.Role == roles.SuperAdmin:
		tenantID = ""
	case tenantID == "":
		return nil, fmt.Errorf("%w: tenant_id is required for role %s", httptypes.ErrInvalidRequest, req.Role)
	}

	if _, err := s.storage.GetUserByEmail(ctx, req.Email); err == nil {
		return nil, fmt.Errorf("user %s: %w", req.Email, storage.ErrDuplicateKey)
	} else if !errors.Is(err, storage.ErrNotFound) {
		return nil, err
	}

	identityID, err := s.kratos.GetIdentityIDByEmail(ctx, req.Email)
	if err != nil {
		return nil, err
	}

	created := false
	if identityID == "" {
		identityID, err = s.kratos.CreateIdentity(ctx, req.Email)
		if err != nil {
			return nil, err
		}
		created = true
	}

	user, err := s.storage.CreateUser(ctx, &types.User{
		ID:       identityID,
		Email:    req.Email,
		Role:     req.Role,
		TenantID: tenantID,
		Active:   true,
	})
	if err != nil {
		if created {
			if derr := s.kratos.DeleteIdentity(ctx, identityID); derr != nil {
				s.logger.Errorf("failed to remove orphan identity %s: %v", identityID, derr)
			}
		}
		return nil, err
	}

	s.logger.Security().AdminAction(principal.ID, "user.create", user.ID)

	link, _, err := s.kratos.CreateRecoveryLink(ctx, user.ID, s.recoveryLifetime)
	if err != nil {
		// the user exists, a reset can be requested later
		s.logger.Errorf("failed to create recovery link for %s: %v", user.ID, err)
		return &CreatedUser{User: user}, nil
	}

	return &CreatedUser{User: user, RecoveryLink: link}, nil
}

// UpdateRole changes the role of another user. The caller must be able to
// grant both the current and the new role, and never targets itself.
func (s *Service) UpdateRole(ctx context.Context, principal *types.Principal, userID, role string) (*types.User, error) {
	ctx, span := s.tracer.Start(ctx, "users.Service.UpdateRole")
	defer span.End()

	target, err := s.manageable(ctx, principal, userID)
	if err != nil {
		return nil, err
	}

	if err := s.authz.CheckRoleGrant(ctx, principal, role); err != nil {
		return nil, err
	}

	if role != roles.SuperAdmin && target.TenantID == "" {
		return nil, fmt.Errorf("%w: user has no tenant, role %s needs one", httptypes.ErrInvalidRequest, role)
	}

	// super admins live outside every tenant
	tenantID := target.TenantID
	if role == roles.SuperAdmin {
		tenantID = ""
	}

	if err := s.storage.UpdateUserRole(ctx, target.ID, role, tenantID); err != nil {
		return nil, err
	}

	s.logger.Security().AdminAction(principal.ID, "user.role."+role, target.ID)

	target.Role = role
	target.TenantID = tenantID
	return target, nil
}

func (s *Service) SetActive(ctx context.Context, principal *types.Principal, userID string, active bool) (*types.User, error) {
	ctx, span := s.tracer.Start(ctx, "users.Service.SetActive")
	defer span.End()

	target, err := s.manageable(ctx, principal, userID)
	if err != nil {
		return nil, err
	}

	if err := s.storage.SetUserActive(ctx, target.ID, active); err != nil {
		return nil, err
	}

	action := "user.deactivate"
	if active {
		action = "user.activate"
	}
	s.logger.Security().AdminAction(principal.ID, action, target.ID)

	target.Active = active
	return target, nil
}

// ResetPassword returns a Kratos recovery link for the user. Apart from its
// own account, the caller only reaches users holding a role it could grant.
func (s *Service) ResetPassword(ctx context.Context, principal *types.Principal, userID string) (string, error) {
	ctx, span := s.tracer.Start(ctx, "users.Service.ResetPassword")
	defer span.End()

	if err := s.authz.CheckRole(ctx, principal, roles.TenantAdmin); err != nil {
		return "", err
	}

	target, err := s.visible(ctx, principal, userID)
	if err != nil {
		return "", err
	}

	if target.ID != principal.ID {
		if err := s.authz.CheckRoleGrant(ctx, principal, target.Role); err != nil {
			return "", err
		}
	}

	link, _, err := s.kratos.CreateRecoveryLink(ctx, target.ID, s.recoveryLifetime)
	if err != nil {
		return "", err
	}

	s.logger.Security().AdminAction(principal.ID, "user.password_reset", target.ID)

	return link, nil
}

// manageable loads a user the principal may modify: a TENANT_ADMIN or
// above, another identity, in reach of the tenant guard, holding a role
// the principal could grant.
func (s *Service) manageable(ctx context.Context, principal *types.Principal, userID string) (*types.User, error) {
	if err := s.authz.CheckRole(ctx, principal, roles.TenantAdmin); err != nil {
		return nil, err
	}

	if principal.ID == userID {
		s.logger.Security().AuthzFailure(principal.ID, "user:"+userID)
		return nil, fmt.Errorf("%w: cannot modify own account", authorization.ErrForbidden)
	}

	target, err := s.visible(ctx, principal, userID)
	if err != nil {
		return nil, err
	}

	if err := s.authz.CheckRoleGrant(ctx, principal, target.Role); err != nil {
		return nil, err
	}

	return target, nil
}

// visible hides users of other tenants behind a not found error.
func (s *Service) visible(ctx context.Context, principal *types.Principal, userID string) (*types.User, error) {
	target, err := s.storage.GetUserByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if err := s.authz.CheckTenantAccess(ctx, principal, target.TenantID); err != nil {
		return nil, fmt.Errorf("user %s: %w", userID, authorization.ErrNotFound)
	}

	return target, nil
}
