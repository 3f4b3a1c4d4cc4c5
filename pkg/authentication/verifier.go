// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package authentication

import (
	"context"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/canonical/event-crm/internal/authorization"
	"github.com/canonical/event-crm/internal/logging"
	"github.com/canonical/event-crm/internal/monitoring"
	"github.com/canonical/event-crm/internal/tracing"
	"github.com/canonical/event-crm/internal/types"
)

const (
	minSecretLength = 32
	defaultLeeway   = 30 * time.Second
)

// JWTVerifier verifies HS256 session tokens signed with a shared secret.
type JWTVerifier struct {
	secret []byte
	parser *jwt.Parser

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func (v *JWTVerifier) VerifyToken(ctx context.Context, rawToken string) (*types.Principal, error) {
	_, span := v.tracer.Start(ctx, "authentication.JWTVerifier.VerifyToken")
	defer span.End()

	claims := new(sessionClaims)

	_, err := v.parser.ParseWithClaims(rawToken, claims, func(token *jwt.Token) (any, error) {
		return v.secret, nil
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", authorization.ErrUnauthenticated, err)
	}

	if claims.Subject == "" {
		return nil, fmt.Errorf("%w: token has no subject", authorization.ErrUnauthenticated)
	}

	return claims.principal(), nil
}

// NewJWTVerifier builds a verifier for the given secret. An empty issuer
// disables the issuer check.
func NewJWTVerifier(
	secret string,
	issuer string,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) *JWTVerifier {
	if len(secret) < minSecretLength {
		logger.Warnf("session secret is shorter than %d bytes", minSecretLength)
	}

	opts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithLeeway(defaultLeeway),
	}

	if issuer != "" {
		opts = append(opts, jwt.WithIssuer(issuer))
	}

	return &JWTVerifier{
		secret:  []byte(secret),
		parser:  jwt.NewParser(opts...),
		tracer:  tracer,
		monitor: monitor,
		logger:  logger,
	}
}

// NewTokenVerifier picks the JWT verifier when a secret is available and
// the deny verifier otherwise.
func NewTokenVerifier(
	secret string,
	issuer string,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) TokenVerifierInterface {
	if secret == "" {
		logger.Error("session secret is not set, all sessions will be rejected")
		return NewDenyVerifier()
	}

	return NewJWTVerifier(secret, issuer, tracer, monitor, logger)
}
