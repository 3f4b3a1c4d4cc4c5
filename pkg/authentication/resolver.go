// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package authentication

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/canonical/event-crm/internal/authorization"
	"github.com/canonical/event-crm/internal/logging"
	"github.com/canonical/event-crm/internal/tracing"
	"github.com/canonical/event-crm/internal/types"
)

// Resolver turns an incoming request into a principal. Cookies are looked
// up in order, the Authorization header is the fallback.
type Resolver struct {
	verifier    TokenVerifierInterface
	cookieNames []string

	tracer tracing.TracingInterface
	logger logging.LoggerInterface
}

func (r *Resolver) Resolve(req *http.Request) (*types.Principal, error) {
	ctx, span := r.tracer.Start(req.Context(), "authentication.Resolver.Resolve")
	defer span.End()

	raw, found := r.sessionToken(req)
	if !found {
		return nil, fmt.Errorf("%w: no session token", authorization.ErrUnauthenticated)
	}

	principal, err := r.verifier.VerifyToken(ctx, raw)
	if err != nil {
		r.logger.Debugf("session verification failed: %v", err)
		r.logger.Security().AuthnFailure("invalid session token", "path", req.URL.Path)
		return nil, err
	}

	return principal, nil
}

func (r *Resolver) sessionToken(req *http.Request) (string, bool) {
	for _, name := range r.cookieNames {
		if c, err := req.Cookie(name); err == nil && c.Value != "" {
			return c.Value, true
		}
	}

	return getBearerToken(req.Header)
}

func getBearerToken(headers http.Header) (string, bool) {
	bearer := headers.Get("Authorization")
	if bearer == "" {
		return "", false
	}

	// Only support "Bearer <token>" format (RFC 6750)
	if !strings.HasPrefix(bearer, "Bearer ") {
		return "", false
	}

	token := strings.TrimSpace(strings.TrimPrefix(bearer, "Bearer "))
	return token, token != ""
}

func NewResolver(verifier TokenVerifierInterface, cookieNames []string, tracer tracing.TracingInterface, logger logging.LoggerInterface) *Resolver {
	return &Resolver{
		verifier:    verifier,
		cookieNames: cookieNames,
		tracer:      tracer,
		logger:      logger,
	}
}
