// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package events

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"go.uber.org/mock/gomock"

	"github.com/canonical/event-crm/internal/authorization"
	"github.com/canonical/event-crm/internal/logging"
	"github.com/canonical/event-crm/internal/monitoring"
	"github.com/canonical/event-crm/internal/storage"
	"github.com/canonical/event-crm/internal/tracing"
	"github.com/canonical/event-crm/internal/types"
	"github.com/canonical/event-crm/internal/validation"
	"github.com/canonical/event-crm/pkg/authentication"
)

func TestAPI(t *testing.T) {
	tests := []struct {
		name           string
		principal      *types.Principal
		method         string
		path           string
		body           string
		setupMocks     func(*MockServiceInterface)
		expectedStatus int
	}{
		{
			name:      "list with filters",
			principal: userA,
			method:    http.MethodGet,
			path:      "/events?client_id=client-a&status=PLANNED&page=2&size=10",
			setupMocks: func(svc *MockServiceInterface) {
				svc.EXPECT().ListEvents(gomock.Any(), userA, storage.EventFilter{ClientID: "client-a", Status: "PLANNED"}, storage.Page{Number: 2, Size: 10}).
					Return([]*types.Event{}, nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:      "create",
			principal: userA,
			method:    http.MethodPost,
			path:      "/events",
			body:      `{"client_id":"client-a","name":"Gala","starts_at":"2026-11-20T18:00:00Z"}`,
			setupMocks: func(svc *MockServiceInterface) {
				svc.EXPECT().CreateEvent(gomock.Any(), userA, gomock.Any()).Return(&types.Event{ID: "event-1"}, nil)
			},
			expectedStatus: http.StatusCreated,
		},
		{
			name:           "create with bad status",
			principal:      userA,
			method:         http.MethodPost,
			path:           "/events",
			body:           `{"client_id":"client-a","name":"Gala","starts_at":"2026-11-20T18:00:00Z","status":"MAYBE"}`,
			setupMocks:     func(*MockServiceInterface) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "create without start",
			principal:      userA,
			method:         http.MethodPost,
			path:           "/events",
			body:           `{"client_id":"client-a","name":"Gala"}`,
			setupMocks:     func(*MockServiceInterface) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:      "get hidden",
			principal: userB,
			method:    http.MethodGet,
			path:      "/events/event-a",
			setupMocks: func(svc *MockServiceInterface) {
				svc.EXPECT().GetEvent(gomock.Any(), userB, "event-a").Return(nil, authorization.ErrNotFound)
			},
			expectedStatus: http.StatusNotFound,
		},
		{
			name:      "delete",
			principal: managerA,
			method:    http.MethodDelete,
			path:      "/events/event-a",
			setupMocks: func(svc *MockServiceInterface) {
				svc.EXPECT().DeleteEvent(gomock.Any(), managerA, "event-a").Return(nil)
			},
			expectedStatus: http.StatusNoContent,
		},
		{
			name:      "portal events",
			principal: externalA,
			method:    http.MethodGet,
			path:      "/client-portal/events",
			setupMocks: func(svc *MockServiceInterface) {
				svc.EXPECT().ListPortalEvents(gomock.Any(), externalA).Return([]*types.Event{}, nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "portal me",
			principal:      externalA,
			method:         http.MethodGet,
			path:           "/client-portal/me",
			setupMocks:     func(*MockServiceInterface) {},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "portal me anonymous",
			method:         http.MethodGet,
			path:           "/client-portal/me",
			setupMocks:     func(*MockServiceInterface) {},
			expectedStatus: http.StatusUnauthorized,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			svc := NewMockServiceInterface(ctrl)
			tt.setupMocks(svc)

			mux := chi.NewMux()
			NewAPI(svc, validation.NewValidator(), tracing.NewNoopTracer(), monitoring.NewNoopMonitor("test"), logging.NewNoopLogger()).RegisterEndpoints(mux)

			req := httptest.NewRequest(tt.method, tt.path, bytes.NewBufferString(tt.body))
			if tt.principal != nil {
				req = req.WithContext(authentication.WithPrincipal(req.Context(), tt.principal))
			}
			rr := httptest.NewRecorder()

			mux.ServeHTTP(rr, req)

			if rr.Code != tt.expectedStatus {
				t.Errorf("expected status %d, got %d: %s", tt.expectedStatus, rr.Code, rr.Body.String())
			}
		})
	}
}
