// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package webhooks

import (
	"context"
	"errors"
	"fmt"
	"strings"

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
	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func NewService(
	storage StorageInterface,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) *Service {
	return &Service{
		storage: storage,
		tracer:  tracer,
		monitor: monitor,
		logger:  logger,
	}
}

// HandleRegistration provisions a self-registered identity: a new tenant
// named "<email>'s Org" with the identity as its TENANT_ADMIN. Replayed
// hooks for a known identity return the existing user.
func (s *Service) HandleRegistration(ctx context.Context, identity *KratosIdentity) (*types.User, error) {
	ctx, span := s.tracer.Start(ctx, "webhooks.Service.HandleRegistration")
	defer span.End()

	if identity == nil || identity.ID == "" || identity.Traits.Email == "" {
		return nil, fmt.Errorf("%w: identity ID or email is empty", httptypes.ErrInvalidRequest)
	}

	email := strings.ToLower(strings.TrimSpace(identity.Traits.Email))

	s.logger.Debugf("Handling registration for identity %s with email %s", identity.ID, email)

	existing, err := s.storage.GetUserByID(ctx, identity.ID)
	if err == nil {
		return existing, nil
	}

	if !errors.Is(err, storage.ErrNotFound) {
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}

	tenant, err := s.storage.CreateTenant(ctx, &types.Tenant{
		Name:    fmt.Sprintf("%s's Org", email),
		Enabled: true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create tenant: %w", err)
	}

	user, err := s.storage.CreateUser(ctx, &types.User{
		ID:            identity.ID,
		Email:         email,
		Role:          roles.TenantAdmin,
		TenantID:      tenant.ID,
		EmailVerified: identity.emailVerified(),
		Active:        true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	s.logger.Infof("Successfully provisioned tenant %s for user %s", tenant.ID, identity.ID)
	s.logger.Security().AdminAction(identity.ID, "tenant.register", tenant.ID)

	return user, nil
}
