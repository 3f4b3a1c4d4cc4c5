// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package web

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"go.uber.org/mock/gomock"

	"github.com/canonical/event-crm/internal/db"
	"github.com/canonical/event-crm/internal/logging"
	"github.com/canonical/event-crm/internal/monitoring"
	"github.com/canonical/event-crm/internal/roles"
	"github.com/canonical/event-crm/internal/tracing"
	"github.com/canonical/event-crm/internal/types"
	"github.com/canonical/event-crm/pkg/authentication"
	"github.com/canonical/event-crm/pkg/gate"
	"github.com/canonical/event-crm/pkg/webhooks"
)

const (
	testSecret = "router-test-secret-which-is-at-least-32-bytes"
	tenantA    = "0195b2a0-0000-7000-8000-00000000000a"
)

type fakeKratos struct {
	pingErr error
}

func (f *fakeKratos) GetIdentityIDByEmail(context.Context, string) (string, error) { return "", nil }
func (f *fakeKratos) CreateIdentity(context.Context, string) (string, error)       { return "", nil }
func (f *fakeKratos) DeleteIdentity(context.Context, string) error                 { return nil }
func (f *fakeKratos) CreateRecoveryLink(context.Context, string, string) (string, string, error) {
	return "", "", nil
}
func (f *fakeKratos) Ping(context.Context) error { return f.pingErr }

func newTestRouter(dbClient db.DBClientInterface, kratosClient KratosClientInterface) http.Handler {
	tracer := tracing.NewNoopTracer()
	monitor := monitoring.NewNoopMonitor("test")
	logger := logging.NewNoopLogger()

	cfg := Config{
		Gate: gate.NewConfig(
			[]string{"/auth", "/api/v0/status", "/api/v0/ready", "/api/v0/metrics", "/api/v0/webhooks"},
			false,
		),
		Verifier:             authentication.NewTokenVerifier(testSecret, "", tracer, monitor, logger),
		SessionCookieNames:   []string{"session-token"},
		CORSAllowedOrigins:   []string{"*"},
		WebhookAPIKey:        "hook-key",
		RecoveryLinkLifetime: "1h",
	}

	return NewRouter(cfg, nil, dbClient, kratosClient, tracer, monitor, logger)
}

func session(t *testing.T, role, tenantID string) *http.Cookie {
	t.Helper()

	token, err := authentication.NewIssuer(testSecret, "", time.Hour).Issue(&types.Principal{
		ID:            "user-" + strings.ToLower(role),
		Email:         strings.ToLower(role) + "@acme.test",
		Role:          role,
		TenantID:      tenantID,
		EmailVerified: true,
	})
	if err != nil {
		t.Fatalf("failed to issue token: %v", err)
	}

	return &http.Cookie{Name: "session-token", Value: token}
}

func TestRouterGating(t *testing.T) {
	tests := []struct {
		name             string
		path             string
		role             string
		tenantID         string
		expectedStatus   int
		expectedLocation string
	}{
		{name: "status is public", path: "/api/v0/status", expectedStatus: http.StatusOK},
		{name: "sign in page is public", path: "/auth/signin", expectedStatus: http.StatusOK},
		{name: "dashboard needs a session", path: "/dashboard", expectedStatus: http.StatusFound, expectedLocation: "/auth/signin?callbackUrl=%2Fdashboard"},
		{name: "api needs a session", path: "/api/v0/clients", expectedStatus: http.StatusUnauthorized},
		{name: "me with a session", path: "/api/v0/me", role: roles.User, tenantID: tenantA, expectedStatus: http.StatusOK},
		{name: "client external kept out of the api", path: "/api/v0/clients", role: roles.ClientExternal, tenantID: tenantA, expectedStatus: http.StatusForbidden},
		{name: "client external kept out of the dashboard", path: "/dashboard", role: roles.ClientExternal, tenantID: tenantA, expectedStatus: http.StatusFound, expectedLocation: "/client-portal"},
		{name: "client external portal me", path: "/api/v0/client-portal/me", role: roles.ClientExternal, tenantID: tenantA, expectedStatus: http.StatusOK},
		{name: "client external portal page", path: "/client-portal", role: roles.ClientExternal, tenantID: tenantA, expectedStatus: http.StatusOK},
		{name: "manager sent back to the dashboard", path: "/client-portal", role: roles.Manager, tenantID: tenantA, expectedStatus: http.StatusFound, expectedLocation: "/dashboard"},
		{name: "super admin home", path: "/dashboard", role: roles.SuperAdmin, expectedStatus: http.StatusFound, expectedLocation: "/dashboard/users"},
		{name: "super admin events page", path: "/dashboard/events", role: roles.SuperAdmin, expectedStatus: http.StatusOK},
	}

	router := newTestRouter(nil, &fakeKratos{})

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, tt.path, nil)
			if tt.role != "" {
				req.AddCookie(session(t, tt.role, tt.tenantID))
			}
			rr := httptest.NewRecorder()

			router.ServeHTTP(rr, req)

			if rr.Code != tt.expectedStatus {
				t.Fatalf("expected status %d, got %d: %s", tt.expectedStatus, rr.Code, rr.Body.String())
			}

			if tt.expectedLocation != "" && rr.Header().Get("Location") != tt.expectedLocation {
				t.Errorf("expected location %s, got %s", tt.expectedLocation, rr.Header().Get("Location"))
			}
		})
	}
}

func TestRouterReady(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockDB := db.NewMockDBClientInterface(ctrl)
	mockDB.EXPECT().Ping(gomock.Any()).Return(nil)

	router := newTestRouter(mockDB, &fakeKratos{pingErr: errors.New("connection refused")})

	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/v0/ready", nil))

	if rr.Code != http.StatusServiceUnavailable {
		t.Errorf("expected status 503, got %d: %s", rr.Code, rr.Body.String())
	}
}

func TestRouterWebhookKey(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockDB := db.NewMockDBClientInterface(ctrl)
	mockDB.EXPECT().WithTx(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, fn func(context.Context) error) error {
			return fn(ctx)
		},
	)

	router := newTestRouter(mockDB, &fakeKratos{})

	req := httptest.NewRequest(http.MethodPost, "/api/v0/webhooks/registration", strings.NewReader(`{"id":"x","traits":{"email":"a@acme.test"}}`))
	req.Header.Set(webhooks.APIKeyHeader, "wrong")
	rr := httptest.NewRecorder()

	router.ServeHTTP(rr, req)

	if rr.Code != http.StatusUnauthorized {
		t.Errorf("expected status 401, got %d: %s", rr.Code, rr.Body.String())
	}
}

func TestRouterCORSPreflight(t *testing.T) {
	router := newTestRouter(nil, &fakeKratos{})

	req := httptest.NewRequest(http.MethodOptions, "/api/v0/clients", nil)
	req.Header.Set("Origin", "https://crm.acme.test")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	rr := httptest.NewRecorder()

	router.ServeHTTP(rr, req)

	if rr.Header().Get("Access-Control-Allow-Origin") == "" {
		t.Errorf("expected CORS headers on preflight, got %v", rr.Header())
	}
}
