// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package gate

import (
	"testing"

	"github.com/canonical/event-crm/internal/roles"
	"github.com/canonical/event-crm/internal/types"
)

var testPublicPaths = []string{"/auth", "/api/auth", "/api/v0/status", "/_next", "/favicon.ico"}

func principal(role, tenantID string) *types.Principal {
	return &types.Principal{ID: "user-" + role, Role: role, TenantID: tenantID, EmailVerified: true}
}

func TestGateDecide(t *testing.T) {
	tests := []struct {
		name      string
		path      string
		principal *types.Principal
		expected  Decision
	}{
		{
			name:     "sign in page is public",
			path:     "/auth/signin",
			expected: Decision{Outcome: Allow},
		},
		{
			name:     "public prefix with trailing slash",
			path:     "/auth/",
			expected: Decision{Outcome: Allow},
		},
		{
			name:     "public prefix does not leak to sibling segments",
			path:     "/authors",
			expected: Decision{Outcome: Redirect, Target: "/auth/signin"},
		},
		{
			name:     "dashboard without session",
			path:     "/dashboard",
			expected: Decision{Outcome: Redirect, Target: "/auth/signin"},
		},
		{
			name:     "api without session",
			path:     "/api/v0/clients",
			expected: Decision{Outcome: Redirect, Target: "/auth/signin"},
		},
		{
			name:      "client external on dashboard",
			path:      "/dashboard",
			principal: principal(roles.ClientExternal, "t1"),
			expected:  Decision{Outcome: Redirect, Target: "/client-portal"},
		},
		{
			name:      "client external inside the portal",
			path:      "/client-portal/events",
			principal: principal(roles.ClientExternal, "t1"),
			expected:  Decision{Outcome: Allow},
		},
		{
			name:      "client external on a public path",
			path:      "/auth/signout",
			principal: principal(roles.ClientExternal, "t1"),
			expected:  Decision{Outcome: Allow},
		},
		{
			name:      "client external on the portal api",
			path:      "/api/v0/client-portal/events",
			principal: principal(roles.ClientExternal, "t1"),
			expected:  Decision{Outcome: Allow},
		},
		{
			name:      "manager on the portal api",
			path:      "/api/v0/client-portal/events",
			principal: principal(roles.Manager, "t1"),
			expected:  Decision{Outcome: Redirect, Target: "/dashboard"},
		},
		{
			name:      "manager on the portal",
			path:      "/client-portal",
			principal: principal(roles.Manager, "t1"),
			expected:  Decision{Outcome: Redirect, Target: "/dashboard"},
		},
		{
			name:      "super admin on the dashboard root",
			path:      "/dashboard",
			principal: principal(roles.SuperAdmin, ""),
			expected:  Decision{Outcome: Redirect, Target: "/dashboard/users"},
		},
		{
			name:      "super admin on the dashboard root with trailing slash",
			path:      "/dashboard/",
			principal: principal(roles.SuperAdmin, ""),
			expected:  Decision{Outcome: Redirect, Target: "/dashboard/users"},
		},
		{
			name:      "super admin on dashboard events",
			path:      "/dashboard/events",
			principal: principal(roles.SuperAdmin, ""),
			expected:  Decision{Outcome: Allow},
		},
		{
			name:      "user on the dashboard",
			path:      "/dashboard",
			principal: principal(roles.User, "t1"),
			expected:  Decision{Outcome: Allow},
		},
		{
			name:      "unknown role",
			path:      "/dashboard/events",
			principal: principal("GUEST", "t1"),
			expected:  Decision{Outcome: Redirect, Target: "/auth/signin"},
		},
		{
			name:      "empty role",
			path:      "/dashboard/events",
			principal: principal("", "t1"),
			expected:  Decision{Outcome: Redirect, Target: "/auth/signin"},
		},
		{
			name:      "unverified email is ignored by default",
			path:      "/dashboard/events",
			principal: &types.Principal{ID: "u", Role: roles.User, TenantID: "t1"},
			expected:  Decision{Outcome: Allow},
		},
	}

	g := NewGate(NewConfig(testPublicPaths, false))

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := g.Decide(tt.path, tt.principal)

			if got != tt.expected {
				t.Errorf("expected %+v, got %+v", tt.expected, got)
			}
		})
	}
}

func TestGateDecideRequireVerifiedEmail(t *testing.T) {
	g := NewGate(NewConfig(testPublicPaths, true))

	unverified := &types.Principal{ID: "u", Role: roles.Manager, TenantID: "t1"}

	if got := g.Decide("/dashboard/clients", unverified); got.Target != "/auth/verify-request" {
		t.Errorf("expected verify request redirect, got %+v", got)
	}

	if got := g.Decide("/auth/verify-request", unverified); got.Outcome != Allow {
		t.Errorf("expected verify request page to be reachable, got %+v", got)
	}

	if got := g.Decide("/dashboard/clients", principal(roles.Manager, "t1")); got.Outcome != Allow {
		t.Errorf("expected verified manager to pass, got %+v", got)
	}

	portal := &types.Principal{ID: "c", Role: roles.ClientExternal, TenantID: "t1"}
	if got := g.Decide("/client-portal", portal); got.Outcome != Allow {
		t.Errorf("expected client portal to ignore verification, got %+v", got)
	}
}

func TestGateDecideIsDeterministic(t *testing.T) {
	g := NewGate(NewConfig(testPublicPaths, false))
	p := principal(roles.TenantAdmin, "t1")

	first := g.Decide("/client-portal/events", p)

	for i := 0; i < 10; i++ {
		if got := g.Decide("/client-portal/events", p); got != first {
			t.Fatalf("decision changed between calls: %+v then %+v", first, got)
		}
	}
}

func TestMatchPrefix(t *testing.T) {
	tests := []struct {
		path     string
		prefix   string
		expected bool
	}{
		{"/api", "/api", true},
		{"/api/v0/me", "/api", true},
		{"/apis", "/api", false},
		{"/favicon.ico", "/favicon.ico", true},
		{"/dashboard", "/dashboard/", true},
		{"/anything", "/", true},
	}

	for _, tt := range tests {
		t.Run(tt.path+"_"+tt.prefix, func(t *testing.T) {
			if got := matchPrefix(normalize(tt.path), tt.prefix); got != tt.expected {
				t.Errorf("matchPrefix(%q, %q) = %v, expected %v", tt.path, tt.prefix, got, tt.expected)
			}
		})
	}
}

func TestIsPublicSkipsEmptyEntries(t *testing.T) {
	g := NewGate(NewConfig([]string{"", " ", "/auth"}, false))

	if g.IsPublic("/dashboard") {
		t.Error("empty public path entries must not open every route")
	}

	if !g.IsPublic("/auth/signin") {
		t.Error("expected /auth/signin to be public")
	}
}
