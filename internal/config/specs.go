// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package config

import (
	"time"
)

// EnvSpec is the basic environment configuration setup needed for the app to start
type EnvSpec struct {
	OtelGRPCEndpoint string `envconfig:"otel_grpc_endpoint"`
	OtelHTTPEndpoint string `envconfig:"otel_http_endpoint"`
	TracingEnabled   bool   `envconfig:"tracing_enabled" default:"true"`

	// SessionSecret verifies session tokens, when empty every request is
	// treated as unauthenticated
	SessionSecret        string        `envconfig:"session_secret"`
	SessionIssuer        string        `envconfig:"session_issuer"`
	SessionCookieNames   []string      `envconfig:"session_cookie_names" default:"session-token,__Secure-session-token"`
	SessionLifetime      time.Duration `envconfig:"session_lifetime" default:"720h"`
	RequireVerifiedEmail bool          `envconfig:"require_verified_email" default:"false"`
	PublicPaths          []string      `envconfig:"public_paths" default:"/auth,/api/auth,/api/v0/status,/api/v0/ready,/api/v0/metrics,/api/v0/webhooks,/_next,/favicon.ico"`

	WebhookAPIKey string `envconfig:"webhook_api_key"`

	KratosAdminURL string `envconfig:"kratos_admin_url" required:"true"`

	RecoveryLinkLifetime string `envconfig:"recovery_link_lifetime" default:"24h"`

	CORSAllowedOrigins []string `envconfig:"cors_allowed_origins" default:"*"`

	LogLevel string `envconfig:"log_level" default:"error"`
	Debug    bool   `envconfig:"debug" default:"false"`

	Port int `envconfig:"port" default:"8080"`

	DSN string `envconfig:"DSN" required:"true"`

	DBMaxConns        int32         `envconfig:"db_max_conns" default:"25"`
	DBMinConns        int32         `envconfig:"db_min_conns" default:"2"`
	DBMaxConnLifetime time.Duration `envconfig:"db_max_conn_lifetime" default:"1h"`
	DBMaxConnIdleTime time.Duration `envconfig:"db_max_conn_idle_time" default:"30m"`
}
