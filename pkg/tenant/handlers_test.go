// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package tenant

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"go.uber.org/mock/gomock"

	"github.com/canonical/event-crm/internal/authorization"
	httptypes "github.com/canonical/event-crm/internal/http/types"
	"github.com/canonical/event-crm/internal/logging"
	"github.com/canonical/event-crm/internal/monitoring"
	"github.com/canonical/event-crm/internal/storage"
	"github.com/canonical/event-crm/internal/tracing"
	"github.com/canonical/event-crm/internal/types"
	"github.com/canonical/event-crm/internal/validation"
	"github.com/canonical/event-crm/pkg/authentication"
)

func TestAPI(t *testing.T) {
	enabled := false

	tests := []struct {
		name           string
		method         string
		path           string
		body           string
		setupMocks     func(*MockServiceInterface)
		expectedStatus int
	}{
		{
			name:   "list",
			method: http.MethodGet,
			path:   "/tenants?page=1&size=20",
			setupMocks: func(svc *MockServiceInterface) {
				svc.EXPECT().ListTenants(gomock.Any(), superAdmin, storage.Page{Number: 1, Size: 20}).
					Return([]*types.Tenant{{ID: tenantA, Name: "Tenant A", Enabled: true}}, nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:   "list forbidden",
			method: http.MethodGet,
			path:   "/tenants",
			setupMocks: func(svc *MockServiceInterface) {
				svc.EXPECT().ListTenants(gomock.Any(), superAdmin, storage.Page{}).Return(nil, authorization.ErrForbidden)
			},
			expectedStatus: http.StatusForbidden,
		},
		{
			name:   "create",
			method: http.MethodPost,
			path:   "/tenants",
			body:   `{"name":"Acme Events"}`,
			setupMocks: func(svc *MockServiceInterface) {
				svc.EXPECT().CreateTenant(gomock.Any(), superAdmin, "Acme Events").Return(&types.Tenant{ID: tenantA, Name: "Acme Events"}, nil)
			},
			expectedStatus: http.StatusCreated,
		},
		{
			name:           "create without name",
			method:         http.MethodPost,
			path:           "/tenants",
			body:           `{}`,
			setupMocks:     func(*MockServiceInterface) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:   "disable",
			method: http.MethodPatch,
			path:   "/tenants/" + tenantA,
			body:   `{"enabled":false}`,
			setupMocks: func(svc *MockServiceInterface) {
				svc.EXPECT().UpdateTenant(gomock.Any(), superAdmin, tenantA, &UpdateTenantRequest{Enabled: &enabled}).
					Return(&types.Tenant{ID: tenantA}, nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:   "delete with users",
			method: http.MethodDelete,
			path:   "/tenants/" + tenantA,
			setupMocks: func(svc *MockServiceInterface) {
				svc.EXPECT().DeleteTenant(gomock.Any(), superAdmin, tenantA).Return(storage.ErrForeignKeyViolation)
			},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:   "delete",
			method: http.MethodDelete,
			path:   "/tenants/" + tenantA,
			setupMocks: func(svc *MockServiceInterface) {
				svc.EXPECT().DeleteTenant(gomock.Any(), superAdmin, tenantA).Return(nil)
			},
			expectedStatus: http.StatusNoContent,
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
			req = req.WithContext(authentication.WithPrincipal(req.Context(), superAdmin))
			rr := httptest.NewRecorder()

			mux.ServeHTTP(rr, req)

			if rr.Code != tt.expectedStatus {
				t.Fatalf("expected status %d, got %d: %s", tt.expectedStatus, rr.Code, rr.Body.String())
			}

			if rr.Code >= http.StatusBadRequest {
				var body httptypes.ErrorResponse
				if err := json.NewDecoder(rr.Body).Decode(&body); err != nil {
					t.Fatalf("failed to decode error body: %v", err)
				}

				if body.Status != tt.expectedStatus {
					t.Errorf("expected body status %d, got %d", tt.expectedStatus, body.Status)
				}
			}
		})
	}
}
