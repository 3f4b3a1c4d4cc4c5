// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package authentication

import (
	"github.com/golang-jwt/jwt/v5"

	"github.com/canonical/event-crm/internal/types"
)

// sessionClaims is the wire shape of a session token. tenantId is null for
// identities not bound to a tenant.
type sessionClaims struct {
	Email         string  `json:"email,omitempty"`
	Role          string  `json:"role"`
	TenantID      *string `json:"tenantId"`
	TenantName    string  `json:"tenantName,omitempty"`
	EmailVerified bool    `json:"emailVerified"`
	jwt.RegisteredClaims
}

func (c *sessionClaims) principal() *types.Principal {
	p := &types.Principal{
		ID:            c.Subject,
		Email:         c.Email,
		Role:          c.Role,
		TenantName:    c.TenantName,
		EmailVerified: c.EmailVerified,
	}

	if c.TenantID != nil {
		p.TenantID = *c.TenantID
	}

	return p
}

func claimsFromPrincipal(p *types.Principal) sessionClaims {
	c := sessionClaims{
		Email:         p.Email,
		Role:          p.Role,
		TenantName:    p.TenantName,
		EmailVerified: p.EmailVerified,
	}

	if p.TenantID != "" {
		tenantID := p.TenantID
		c.TenantID = &tenantID
	}

	c.Subject = p.ID

	return c
}
