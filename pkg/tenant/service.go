// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package tenant

import (
	"context"
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
	storage StorageInterface
	authz   AuthorizerInterface

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func NewService(
	storage StorageInterface,
	authz AuthorizerInterface,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) *Service {
	return &Service{
		storage: storage,
		authz:   authz,
		tracer:  tracer,
		monitor: monitor,
		logger:  logger,
	}
}

func (s *Service) ListTenants(ctx context.Context, principal *types.Principal, page storage.Page) ([]*types.Tenant, error) {
	ctx, span := s.tracer.Start(ctx, "tenant.Service.ListTenants")
	defer span.End()

	if err := s.authz.CheckRole(ctx, principal, roles.SuperAdmin); err != nil {
		return nil, err
	}

	return s.storage.ListTenants(ctx, page)
}

// GetTenant lets any member read its own organization, SUPER_ADMIN reads all.
func (s *Service) GetTenant(ctx context.Context, principal *types.Principal, id string) (*types.Tenant, error) {
	ctx, span := s.tracer.Start(ctx, "tenant.Service.GetTenant")
	defer span.End()

	if err := s.authz.CheckRole(ctx, principal, roles.User); err != nil {
		return nil, err
	}

	if err := s.authz.CheckTenantAccess(ctx, principal, id); err != nil {
		return nil, fmt.Errorf("tenant %s: %w", id, authorization.ErrNotFound)
	}

	return s.storage.GetTenantByID(ctx, id)
}

func (s *Service) CreateTenant(ctx context.Context, principal *types.Principal, name string) (*types.Tenant, error) {
	ctx, span := s.tracer.Start(ctx, "tenant.Service.CreateTenant")
	defer span.End()

	if err := s.authz.CheckRole(ctx, principal, roles.SuperAdmin); err != nil {
		return nil, err
	}

	created, err := s.storage.CreateTenant(ctx, &types.Tenant{Name: name, Enabled: true})
	if err != nil {
		return nil, fmt.Errorf("failed to create tenant: %w", err)
	}

	s.logger.Security().AdminAction(principal.ID, "tenant.create", created.ID)

	return created, nil
}

func (s *Service) UpdateTenant(ctx context.Context, principal *types.Principal, id string, req *UpdateTenantRequest) (*types.Tenant, error) {
	ctx, span := s.tracer.Start(ctx, "tenant.Service.UpdateTenant")
	defer span.End()

	if err := s.authz.CheckRole(ctx, principal, roles.SuperAdmin); err != nil {
		return nil, err
	}

	t := &types.Tenant{ID: id}

	var paths []string
	if req.Name != nil {
		t.Name = *req.Name
		paths = append(paths, "name")
	}
	if req.Enabled != nil {
		t.Enabled = *req.Enabled
		paths = append(paths, "enabled")
	}

	if len(paths) == 0 {
		return nil, fmt.Errorf("%w: nothing to update", httptypes.ErrInvalidRequest)
	}

	updated, err := s.storage.UpdateTenant(ctx, t, paths)
	if err != nil {
		return nil, fmt.Errorf("failed to update tenant: %w", err)
	}

	s.logger.Security().AdminAction(principal.ID, "tenant.update", id)

	return updated, nil
}

// DeleteTenant removes the tenant with its clients and events. Tenants that
// still have users are refused by the store.
func (s *Service) DeleteTenant(ctx context.Context, principal *types.Principal, id string) error {
	ctx, span := s.tracer.Start(ctx, "tenant.Service.DeleteTenant")
	defer span.End()

	if err := s.authz.CheckRole(ctx, principal, roles.SuperAdmin); err != nil {
		return err
	}

	if err := s.storage.DeleteTenant(ctx, id); err != nil {
		return fmt.Errorf("failed to delete tenant: %w", err)
	}

	s.logger.Security().AdminAction(principal.ID, "tenant.delete", id)

	return nil
}
