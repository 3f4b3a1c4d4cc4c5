// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package gate

const (
	DefaultSignInPath        = "/auth/signin"
	DefaultVerifyRequestPath = "/auth/verify-request"
	DefaultClientPortalPath  = "/client-portal"
	DefaultDashboardPath     = "/dashboard"
	DefaultSuperAdminHome    = "/dashboard/users"
	DefaultAPIPrefix         = "/api"
	DefaultClientPortalAPI   = "/api/v0/client-portal"

	callbackParam = "callbackUrl"
)

// Config holds the partitions of the path space the gate reasons about.
type Config struct {
	// PublicPaths are prefixes reachable without a session.
	PublicPaths []string

	SignInPath        string
	VerifyRequestPath string
	// ClientPortalPath is both the portal landing page and the first
	// prefix of the portal partition.
	ClientPortalPath string
	// ClientPortalPrefixes extend the portal partition, typically with
	// the portal API.
	ClientPortalPrefixes []string
	DashboardPath        string
	SuperAdminHome       string
	APIPrefix            string

	// RequireVerifiedEmail sends administrative identities with an
	// unverified email to VerifyRequestPath.
	RequireVerifiedEmail bool
}

// NewConfig fills the well known paths with their defaults.
func NewConfig(publicPaths []string, requireVerifiedEmail bool) *Config {
	c := new(Config)

	c.PublicPaths = publicPaths
	c.RequireVerifiedEmail = requireVerifiedEmail
	c.SignInPath = DefaultSignInPath
	c.VerifyRequestPath = DefaultVerifyRequestPath
	c.ClientPortalPath = DefaultClientPortalPath
	c.ClientPortalPrefixes = []string{DefaultClientPortalAPI}
	c.DashboardPath = DefaultDashboardPath
	c.SuperAdminHome = DefaultSuperAdminHome
	c.APIPrefix = DefaultAPIPrefix

	return c
}
