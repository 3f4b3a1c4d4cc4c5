// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package events

import (
	"context"
	"errors"
	"testing"
	"time"

	"go.uber.org/mock/gomock"

	"github.com/canonical/event-crm/internal/authorization"
	httptypes "github.com/canonical/event-crm/internal/http/types"
	"github.com/canonical/event-crm/internal/logging"
	"github.com/canonical/event-crm/internal/monitoring"
	"github.com/canonical/event-crm/internal/roles"
	"github.com/canonical/event-crm/internal/storage"
	"github.com/canonical/event-crm/internal/tracing"
	"github.com/canonical/event-crm/internal/types"
)

//go:generate mockgen -build_flags=--mod=mod -package events -destination ./mock_events.go -source=./interfaces.go

const (
	tenantA = "0195b2a0-0000-7000-8000-00000000000a"
	tenantB = "0195b2a0-0000-7000-8000-00000000000b"
)

var (
	superAdmin = &types.Principal{ID: "root", Role: roles.SuperAdmin}
	managerA   = &types.Principal{ID: "manager-a", Role: roles.Manager, TenantID: tenantA}
	userA      = &types.Principal{ID: "user-a", Role: roles.User, TenantID: tenantA}
	userB      = &types.Principal{ID: "user-b", Role: roles.User, TenantID: tenantB}
	externalA  = &types.Principal{ID: "ext-a", Email: "events@acme.test", Role: roles.ClientExternal, TenantID: tenantA}
)

func newTestService(ctrl *gomock.Controller) (*Service, *MockStorageInterface) {
	mockStorage := NewMockStorageInterface(ctrl)

	tracer := tracing.NewNoopTracer()
	monitor := monitoring.NewNoopMonitor("test")
	logger := logging.NewNoopLogger()

	return NewService(mockStorage, authorization.NewAuthorizer(tracer, monitor, logger), tracer, monitor, logger), mockStorage
}

func TestService_ListEvents(t *testing.T) {
	tests := []struct {
		name          string
		principal     *types.Principal
		filter        storage.EventFilter
		expectedScope string
		expectedError error
	}{
		{name: "defaults to own tenant", principal: userA, filter: storage.EventFilter{Status: types.EventStatusPlanned}, expectedScope: tenantA},
		{name: "other tenant forbidden", principal: userA, filter: storage.EventFilter{TenantID: tenantB}, expectedError: authorization.ErrForbidden},
		{name: "super admin lists everything", principal: superAdmin, expectedScope: ""},
		{name: "super admin narrows to a tenant", principal: superAdmin, filter: storage.EventFilter{TenantID: tenantB}, expectedScope: tenantB},
		{name: "client external", principal: externalA, expectedError: authorization.ErrForbidden},
		{name: "anonymous", principal: nil, expectedError: authorization.ErrUnauthenticated},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			s, mockStorage := newTestService(ctrl)

			if tt.expectedError == nil {
				expected := tt.filter
				expected.TenantID = tt.expectedScope
				mockStorage.EXPECT().ListEvents(gomock.Any(), expected, storage.Page{}).Return([]*types.Event{}, nil)
			}

			_, err := s.ListEvents(context.Background(), tt.principal, tt.filter, storage.Page{})

			if tt.expectedError == nil && err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			if tt.expectedError != nil && !errors.Is(err, tt.expectedError) {
				t.Errorf("expected error %v, got %v", tt.expectedError, err)
			}
		})
	}
}

func TestService_CreateEvent(t *testing.T) {
	startsAt := time.Date(2026, 11, 20, 18, 0, 0, 0, time.UTC)
	clientA := &types.Client{ID: "client-a", TenantID: tenantA, Name: "Acme"}

	tests := []struct {
		name           string
		principal      *types.Principal
		req            *CreateEventRequest
		setupMocks     func(*MockStorageInterface)
		expectedStatus string
		expectedError  error
	}{
		{
			name:      "defaults to planned",
			principal: userA,
			req:       &CreateEventRequest{ClientID: "client-a", Name: "Gala", StartsAt: startsAt},
			setupMocks: func(s *MockStorageInterface) {
				s.EXPECT().GetClientByID(gomock.Any(), "client-a").Return(clientA, nil)
				s.EXPECT().CreateEvent(gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, e *types.Event) (*types.Event, error) {
						return e, nil
					},
				)
			},
			expectedStatus: types.EventStatusPlanned,
		},
		{
			name:      "explicit status",
			principal: superAdmin,
			req:       &CreateEventRequest{ClientID: "client-a", Name: "Gala", StartsAt: startsAt, Status: types.EventStatusConfirmed},
			setupMocks: func(s *MockStorageInterface) {
				s.EXPECT().GetClientByID(gomock.Any(), "client-a").Return(clientA, nil)
				s.EXPECT().CreateEvent(gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, e *types.Event) (*types.Event, error) {
						return e, nil
					},
				)
			},
			expectedStatus: types.EventStatusConfirmed,
		},
		{
			name:      "client of another tenant",
			principal: userB,
			req:       &CreateEventRequest{ClientID: "client-a", Name: "Gala", StartsAt: startsAt},
			setupMocks: func(s *MockStorageInterface) {
				s.EXPECT().GetClientByID(gomock.Any(), "client-a").Return(clientA, nil)
			},
			expectedError: httptypes.ErrInvalidRequest,
		},
		{
			name:      "unknown client",
			principal: userA,
			req:       &CreateEventRequest{ClientID: "missing", Name: "Gala", StartsAt: startsAt},
			setupMocks: func(s *MockStorageInterface) {
				s.EXPECT().GetClientByID(gomock.Any(), "missing").Return(nil, storage.ErrNotFound)
			},
			expectedError: httptypes.ErrInvalidRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			s, mockStorage := newTestService(ctrl)
			tt.setupMocks(mockStorage)

			event, err := s.CreateEvent(context.Background(), tt.principal, tt.req)

			if tt.expectedError != nil {
				if !errors.Is(err, tt.expectedError) {
					t.Errorf("expected error %v, got %v", tt.expectedError, err)
				}
				return
			}

			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			if event.TenantID != tenantA {
				t.Errorf("expected tenant from client %s, got %s", tenantA, event.TenantID)
			}

			if event.Status != tt.expectedStatus {
				t.Errorf("expected status %s, got %s", tt.expectedStatus, event.Status)
			}
		})
	}
}

func TestService_UpdateEvent(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	s, mockStorage := newTestService(ctrl)

	status := types.EventStatusCancelled

	mockStorage.EXPECT().GetEventByID(gomock.Any(), "event-a").Return(&types.Event{ID: "event-a", TenantID: tenantA, Status: types.EventStatusPlanned}, nil)
	mockStorage.EXPECT().UpdateEvent(gomock.Any(), gomock.Any(), []string{"status"}).DoAndReturn(
		func(_ context.Context, e *types.Event, _ []string) (*types.Event, error) {
			return e, nil
		},
	)

	event, err := s.UpdateEvent(context.Background(), userA, "event-a", &UpdateEventRequest{Status: &status})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if event.Status != status {
		t.Errorf("expected status %s, got %s", status, event.Status)
	}
}

func TestService_GetEventOtherTenant(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	s, mockStorage := newTestService(ctrl)

	mockStorage.EXPECT().GetEventByID(gomock.Any(), "event-a").Return(&types.Event{ID: "event-a", TenantID: tenantA}, nil)

	if _, err := s.GetEvent(context.Background(), userB, "event-a"); !errors.Is(err, authorization.ErrNotFound) {
		t.Errorf("expected not found, got %v", err)
	}
}

func TestService_DeleteEvent(t *testing.T) {
	tests := []struct {
		name          string
		principal     *types.Principal
		setupMocks    func(*MockStorageInterface)
		expectedError error
	}{
		{
			name:      "manager deletes",
			principal: managerA,
			setupMocks: func(s *MockStorageInterface) {
				s.EXPECT().GetEventByID(gomock.Any(), "event-a").Return(&types.Event{ID: "event-a", TenantID: tenantA}, nil)
				s.EXPECT().DeleteEvent(gomock.Any(), "event-a").Return(nil)
			},
		},
		{
			name:          "user cannot delete",
			principal:     userA,
			setupMocks:    func(*MockStorageInterface) {},
			expectedError: authorization.ErrForbidden,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			s, mockStorage := newTestService(ctrl)
			tt.setupMocks(mockStorage)

			err := s.DeleteEvent(context.Background(), tt.principal, "event-a")

			if tt.expectedError == nil && err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			if tt.expectedError != nil && !errors.Is(err, tt.expectedError) {
				t.Errorf("expected error %v, got %v", tt.expectedError, err)
			}
		})
	}
}

func TestService_ListPortalEvents(t *testing.T) {
	tests := []struct {
		name          string
		principal     *types.Principal
		expectedError error
	}{
		{name: "client external", principal: externalA},
		{name: "anonymous", principal: nil, expectedError: authorization.ErrUnauthenticated},
		{name: "administrative role", principal: managerA, expectedError: authorization.ErrForbidden},
		{name: "super admin", principal: superAdmin, expectedError: authorization.ErrForbidden},
		{name: "unknown role", principal: &types.Principal{ID: "x", Role: "GUEST", TenantID: tenantA, Email: "x@acme.test"}, expectedError: authorization.ErrForbidden},
		{name: "no tenant", principal: &types.Principal{ID: "ext", Email: "x@acme.test", Role: roles.ClientExternal}, expectedError: authorization.ErrForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			s, mockStorage := newTestService(ctrl)

			if tt.expectedError == nil {
				mockStorage.EXPECT().ListEventsByClientEmail(gomock.Any(), tenantA, "events@acme.test").
					Return([]*types.Event{{ID: "event-a", TenantID: tenantA}}, nil)
			}

			events, err := s.ListPortalEvents(context.Background(), tt.principal)

			if tt.expectedError != nil {
				if !errors.Is(err, tt.expectedError) {
					t.Errorf("expected error %v, got %v", tt.expectedError, err)
				}
				return
			}

			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			if len(events) != 1 {
				t.Errorf("expected 1 event, got %d", len(events))
			}
		})
	}
}
