// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package authentication

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"go.uber.org/mock/gomock"

	httptypes "github.com/canonical/event-crm/internal/http/types"
	"github.com/canonical/event-crm/internal/logging"
	"github.com/canonical/event-crm/internal/monitoring"
	"github.com/canonical/event-crm/internal/roles"
	"github.com/canonical/event-crm/internal/tracing"
	"github.com/canonical/event-crm/internal/types"
)

//go:generate mockgen -build_flags=--mod=mod -package authentication -destination ./mock_verifier.go -source=./interfaces.go

var testCookieNames = []string{"session-token", "__Secure-session-token"}

func TestMiddleware_Authenticate(t *testing.T) {
	tests := []struct {
		name               string
		authHeader         string
		cookie             *http.Cookie
		setupMocks         func(*gomock.Controller) TokenVerifierInterface
		expectedStatusCode int
		expectedBody       string
	}{
		{
			name:       "Missing token - rejects request",
			authHeader: "",
			setupMocks: func(ctrl *gomock.Controller) TokenVerifierInterface {
				return NewMockTokenVerifierInterface(ctrl)
			},
			expectedStatusCode: http.StatusUnauthorized,
		},
		{
			name:       "Invalid token format - rejects request",
			authHeader: "InvalidToken",
			setupMocks: func(ctrl *gomock.Controller) TokenVerifierInterface {
				return NewMockTokenVerifierInterface(ctrl)
			},
			expectedStatusCode: http.StatusUnauthorized,
		},
		{
			name:       "Token verification fails - rejects request",
			authHeader: "Bearer invalid-token",
			setupMocks: func(ctrl *gomock.Controller) TokenVerifierInterface {
				mockVerifier := NewMockTokenVerifierInterface(ctrl)
				mockVerifier.EXPECT().VerifyToken(gomock.Any(), "invalid-token").Return(nil, fmt.Errorf("invalid token"))
				return mockVerifier
			},
			expectedStatusCode: http.StatusUnauthorized,
		},
		{
			name:       "Valid bearer token",
			authHeader: "Bearer valid-token",
			setupMocks: func(ctrl *gomock.Controller) TokenVerifierInterface {
				mockVerifier := NewMockTokenVerifierInterface(ctrl)
				mockVerifier.EXPECT().VerifyToken(gomock.Any(), "valid-token").Return(&types.Principal{ID: "user-123", Role: roles.User, TenantID: "t1"}, nil)
				return mockVerifier
			},
			expectedStatusCode: http.StatusOK,
			expectedBody:       "user-123",
		},
		{
			name:   "Valid session cookie wins over header",
			cookie: &http.Cookie{Name: "__Secure-session-token", Value: "cookie-token"},
			setupMocks: func(ctrl *gomock.Controller) TokenVerifierInterface {
				mockVerifier := NewMockTokenVerifierInterface(ctrl)
				mockVerifier.EXPECT().VerifyToken(gomock.Any(), "cookie-token").Return(&types.Principal{ID: "user-456", Role: roles.Manager, TenantID: "t1"}, nil)
				return mockVerifier
			},
			authHeader:         "Bearer header-token",
			expectedStatusCode: http.StatusOK,
			expectedBody:       "user-456",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			tracer := tracing.NewNoopTracer()
			logger := logging.NewNoopLogger()

			resolver := NewResolver(tt.setupMocks(ctrl), testCookieNames, tracer, logger)
			middleware := NewMiddleware(resolver, tracer, monitoring.NewNoopMonitor("test"), logger)

			handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				id, _ := GetUserID(r.Context())
				w.WriteHeader(http.StatusOK)
				w.Write([]byte(id))
			})

			req := httptest.NewRequest(http.MethodGet, "/api/v0/me", nil)
			if tt.authHeader != "" {
				req.Header.Set("Authorization", tt.authHeader)
			}
			if tt.cookie != nil {
				req.AddCookie(tt.cookie)
			}
			rr := httptest.NewRecorder()

			middleware.Authenticate()(handler).ServeHTTP(rr, req)

			if rr.Code != tt.expectedStatusCode {
				t.Errorf("expected status %d, got %d", tt.expectedStatusCode, rr.Code)
			}

			if tt.expectedBody != "" && rr.Body.String() != tt.expectedBody {
				t.Errorf("expected body %q, got %q", tt.expectedBody, rr.Body.String())
			}

			if rr.Code == http.StatusUnauthorized {
				var body httptypes.ErrorResponse
				if err := json.NewDecoder(rr.Body).Decode(&body); err != nil {
					t.Fatalf("failed to decode error body: %v", err)
				}
				if body.Status != http.StatusUnauthorized {
					t.Errorf("expected body status 401, got %d", body.Status)
				}
			}
		})
	}
}

func TestMiddleware_AuthenticateReusesPrincipal(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tracer := tracing.NewNoopTracer()
	logger := logging.NewNoopLogger()

	// no VerifyToken expectation: the verifier must not be called
	resolver := NewResolver(NewMockTokenVerifierInterface(ctrl), testCookieNames, tracer, logger)
	middleware := NewMiddleware(resolver, tracer, monitoring.NewNoopMonitor("test"), logger)

	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		p, _ := GetPrincipal(r.Context())
		w.Write([]byte(p.Role))
	})

	req := httptest.NewRequest(http.MethodGet, "/api/v0/me", nil)
	req = req.WithContext(WithPrincipal(req.Context(), &types.Principal{ID: "root", Role: roles.SuperAdmin}))
	rr := httptest.NewRecorder()

	middleware.Authenticate()(handler).ServeHTTP(rr, req)

	if rr.Code != http.StatusOK || rr.Body.String() != roles.SuperAdmin {
		t.Errorf("expected 200 %s, got %d %q", roles.SuperAdmin, rr.Code, rr.Body.String())
	}
}

func TestGetBearerToken(t *testing.T) {
	tests := []struct {
		name          string
		authHeader    string
		expectedToken string
		expectedFound bool
	}{
		{
			name:          "No Authorization header",
			authHeader:    "",
			expectedToken: "",
			expectedFound: false,
		},
		{
			name:          "Bearer token",
			authHeader:    "Bearer my-token-123",
			expectedToken: "my-token-123",
			expectedFound: true,
		},
		{
			name:          "Bearer without token",
			authHeader:    "Bearer  ",
			expectedToken: "",
			expectedFound: false,
		},
		{
			name:          "Raw token without Bearer prefix",
			authHeader:    "my-token-123",
			expectedToken: "",
			expectedFound: false,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			headers := http.Header{}
			if test.authHeader != "" {
				headers.Set("Authorization", test.authHeader)
			}

			token, found := getBearerToken(headers)

			if token != test.expectedToken {
				t.Errorf("expected token %q, got %q", test.expectedToken, token)
			}
			if found != test.expectedFound {
				t.Errorf("expected found %v, got %v", test.expectedFound, found)
			}
		})
	}
}
