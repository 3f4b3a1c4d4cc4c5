// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package clients

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

func (s *Service) ListClients(ctx context.Context, principal *types.Principal, tenantID string, page storage.Page) ([]*types.Client, error) {
	ctx, span := s.tracer.Start(ctx, "clients.Service.ListClients")
	defer span.End()

	if err := s.authz.CheckRole(ctx, principal, roles.User); err != nil {
		return nil, err
	}

	scope, err := s.authz.ScopeTenant(ctx, principal, tenantID)
	if err != nil {
		return nil, err
	}

	return s.storage.ListClients(ctx, scope, page)
}

func (s *Service) GetClient(ctx context.Context, principal *types.Principal, id string) (*types.Client, error) {
	ctx, span := s.tracer.Start(ctx, "clients.Service.GetClient")
	defer span.End()

	if err := s.authz.CheckRole(ctx, principal, roles.User); err != nil {
		return nil, err
	}

	return s.visible(ctx, principal, id)
}

func (s *Service) CreateClient(ctx context.Context, principal *types.Principal, req *CreateClientRequest) (*types.Client, error) {
	ctx, span := s.tracer.Start(ctx, "clients.Service.CreateClient")
	defer span.End()

	if err := s.authz.CheckRole(ctx, principal, roles.User); err != nil {
		return nil, err
	}

	tenantID, err := s.authz.ScopeTenant(ctx, principal, req.TenantID)
	if err != nil {
		return nil, err
	}

	if tenantID == "" {
		return nil, fmt.Errorf("%w: tenant_id is required", httptypes.ErrInvalidRequest)
	}

	return s.storage.CreateClient(ctx, &types.Client{
		TenantID: tenantID,
		Name:     req.Name,
		Email:    req.Email,
		Phone:    req.Phone,
	})
}

func (s *Service) UpdateClient(ctx context.Context, principal *types.Principal, id string, req *UpdateClientRequest) (*types.Client, error) {
	ctx, span := s.tracer.Start(ctx, "clients.Service.UpdateClient")
	defer span.End()

	if err := s.authz.CheckRole(ctx, principal, roles.User); err != nil {
		return nil, err
	}

	client, err := s.visible(ctx, principal, id)
	if err != nil {
		return nil, err
	}

	var paths []string
	if req.Name != nil {
		client.Name = *req.Name
		paths = append(paths, "name")
	}
	if req.Email != nil {
		client.Email = *req.Email
		paths = append(paths, "email")
	}
	if req.Phone != nil {
		client.Phone = *req.Phone
		paths = append(paths, "phone")
	}

	return s.storage.UpdateClient(ctx, client, paths)
}

// DeleteClient needs MANAGER, the client's events go with it.
func (s *Service) DeleteClient(ctx context.Context, principal *types.Principal, id string) error {
	ctx, span := s.tracer.Start(ctx, "clients.Service.DeleteClient")
	defer span.End()

	if err := s.authz.CheckRole(ctx, principal, roles.Manager); err != nil {
		return err
	}

	if _, err := s.visible(ctx, principal, id); err != nil {
		return err
	}

	if err := s.storage.DeleteClient(ctx, id); err != nil {
		return err
	}

	s.logger.Security().AdminAction(principal.ID, "client.delete", id)

	return nil
}

func (s *Service) visible(ctx context.Context, principal *types.Principal, id string) (*types.Client, error) {
	client, err := s.storage.GetClientByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := s.authz.CheckTenantAccess(ctx, principal, client.TenantID); err != nil {
		return nil, fmt.Errorf("client %s: %w", id, authorization.ErrNotFound)
	}

	return client, nil
}
