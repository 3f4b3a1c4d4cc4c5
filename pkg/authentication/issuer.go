// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package authentication

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/canonical/event-crm/internal/types"
)

// Issuer mints session tokens compatible with JWTVerifier.
type Issuer struct {
	secret []byte
	issuer string
	ttl    time.Duration
}

func (i *Issuer) Issue(principal *types.Principal) (string, error) {
	if len(i.secret) == 0 {
		return "", fmt.Errorf("session secret not configured")
	}

	if principal == nil || principal.ID == "" {
		return "", fmt.Errorf("principal without subject")
	}

	now := time.Now()

	claims := claimsFromPrincipal(principal)
	claims.Issuer = i.issuer
	claims.IssuedAt = jwt.NewNumericDate(now)
	claims.NotBefore = jwt.NewNumericDate(now)
	claims.ExpiresAt = jwt.NewNumericDate(now.Add(i.ttl))

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(i.secret)
}

func NewIssuer(secret, issuer string, ttl time.Duration) *Issuer {
	return &Issuer{
		secret: []byte(secret),
		issuer: issuer,
		ttl:    ttl,
	}
}
