// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package events

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

func (s *Service) ListEvents(ctx context.Context, principal *types.Principal, filter storage.EventFilter, page storage.Page) ([]*types.Event, error) {
	ctx, span := s.tracer.Start(ctx, "events.Service.ListEvents")
	defer span.End()

	if err := s.authz.CheckRole(ctx, principal, roles.User); err != nil {
		return nil, err
	}

	scope, err := s.authz.ScopeTenant(ctx, principal, filter.TenantID)
	if err != nil {
		return nil, err
	}

	filter.TenantID = scope

	return s.storage.ListEvents(ctx, filter, page)
}

func (s *Service) GetEvent(ctx context.Context, principal *types.Principal, id string) (*types.Event, error) {
	ctx, span := s.tracer.Start(ctx, "events.Service.GetEvent")
	defer span.End()

	if err := s.authz.CheckRole(ctx, principal, roles.User); err != nil {
		return nil, err
	}

	return s.visible(ctx, principal, id)
}

func (s *Service) CreateEvent(ctx context.Context, principal *types.Principal, req *CreateEventRequest) (*types.Event, error) {
	ctx, span := s.tracer.Start(ctx, "events.Service.CreateEvent")
	defer span.End()

	if err := s.authz.CheckRole(ctx, principal, roles.User); err != nil {
		return nil, err
	}

	client, err := s.storage.GetClientByID(ctx, req.ClientID)
	if errors.Is(err, storage.ErrNotFound) {
		return nil, fmt.Errorf("%w: unknown client %s", httptypes.ErrInvalidRequest, req.ClientID)
	}

	if err != nil {
		return nil, err
	}

	if err := s.authz.CheckTenantAccess(ctx, principal, client.TenantID); err != nil {
		return nil, fmt.Errorf("%w: unknown client %s", httptypes.ErrInvalidRequest, req.ClientID)
	}

	status := req.Status
	if status == "" {
		status = types.EventStatusPlanned
	}

	return s.storage.CreateEvent(ctx, &types.Event{
		TenantID: client.TenantID,
		ClientID: client.ID,
		Name:     req.Name,
		Venue:    req.Venue,
		StartsAt: req.StartsAt,
		Status:   status,
	})
}

func (s *Service) UpdateEvent(ctx context.Context, principal *types.Principal, id string, req *UpdateEventRequest) (*types.Event, error) {
	ctx, span := s.tracer.Start(ctx, "events.Service.UpdateEvent")
	defer span.End()

	if err := s.authz.CheckRole(ctx, principal, roles.User); err != nil {
		return nil, err
	}

	event, err := s.visible(ctx, principal, id)
	if err != nil {
		return nil, err
	}

	var paths []string
	if req.Name != nil {
		event.Name = *req.Name
		paths = append(paths, "name")
	}
	if req.Venue != nil {
		event.Venue = *req.Venue
		paths = append(paths, "venue")
	}
	if req.StartsAt != nil {
		event.StartsAt = *req.StartsAt
		paths = append(paths, "starts_at")
	}
	if req.Status != nil {
		event.Status = *req.Status
		paths = append(paths, "status")
	}

	return s.storage.UpdateEvent(ctx, event, paths)
}

func (s *Service) DeleteEvent(ctx context.Context, principal *types.Principal, id string) error {
	ctx, span := s.tracer.Start(ctx, "events.Service.DeleteEvent")
	defer span.End()

	if err := s.authz.CheckRole(ctx, principal, roles.Manager); err != nil {
		return err
	}

	if _, err := s.visible(ctx, principal, id); err != nil {
		return err
	}

	if err := s.storage.DeleteEvent(ctx, id); err != nil {
		return err
	}

	s.logger.Security().AdminAction(principal.ID, "event.delete", id)

	return nil
}

// ListPortalEvents returns the events of the clients in the caller's tenant
// whose email matches the caller's. Only CLIENT_EXTERNAL identities have a
// portal, administrative roles use ListEvents.
func (s *Service) ListPortalEvents(ctx context.Context, principal *types.Principal) ([]*types.Event, error) {
	ctx, span := s.tracer.Start(ctx, "events.Service.ListPortalEvents")
	defer span.End()

	if principal == nil {
		return nil, authorization.ErrUnauthenticated
	}

	if !roles.IsValid(principal.Role) || roles.IsAdministrative(principal.Role) {
		return nil, fmt.Errorf("%w: client portal is reserved to %s", authorization.ErrForbidden, roles.ClientExternal)
	}

	if principal.TenantID == "" || principal.Email == "" {
		return nil, fmt.Errorf("%w: identity has no tenant or email", authorization.ErrForbidden)
	}

	return s.storage.ListEventsByClientEmail(ctx, principal.TenantID, principal.Email)
}

func (s *Service) visible(ctx context.Context, principal *types.Principal, id string) (*types.Event, error) {
	event, err := s.storage.GetEventByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := s.authz.CheckTenantAccess(ctx, principal, event.TenantID); err != nil {
		return nil, fmt.Errorf("event %s: %w", id, authorization.ErrNotFound)
	}

	return event, nil
}
