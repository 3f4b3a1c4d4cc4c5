// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package gate

import (
	"fmt"
	"net/http"
	"net/url"

	"github.com/canonical/event-crm/internal/authorization"
	httptypes "github.com/canonical/event-crm/internal/http/types"
	"github.com/canonical/event-crm/internal/logging"
	"github.com/canonical/event-crm/internal/monitoring"
	"github.com/canonical/event-crm/internal/tracing"
	"github.com/canonical/event-crm/pkg/authentication"
)

// Middleware applies gate decisions at the HTTP edge.
type Middleware struct {
	gate     *Gate
	resolver *authentication.Resolver

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

// Handler resolves the session, asks the gate for a decision and either
// forwards the request with the principal in its context or turns it away.
// Pages are redirected, API calls get a JSON error instead.
func (m *Middleware) Handler() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx, span := m.tracer.Start(r.Context(), "gate.Middleware.Handler")
			defer span.End()

			r = r.WithContext(ctx)
			path := r.URL.Path

			if m.gate.IsPublic(path) {
				next.ServeHTTP(w, r)
				return
			}

			principal, err := m.resolver.Resolve(r)
			if err != nil {
				m.logger.Debugf("no valid session for %s: %v", path, err)
				principal = nil
			}

			decision := m.gate.Decide(path, principal)

			if decision.Outcome == Allow {
				next.ServeHTTP(w, r.WithContext(authentication.WithPrincipal(ctx, principal)))
				return
			}

			signIn := decision.Target == m.gate.SignInPath()

			if principal != nil && !signIn {
				m.logger.Security().AuthzFailure(principal.ID, path)
			}

			if m.gate.IsAPI(path) {
				m.apiResponse(w, m.denial(decision))
				return
			}

			target := decision.Target
			if signIn {
				target = signInURL(target, r.URL.RequestURI())
			}

			http.Redirect(w, r, target, http.StatusFound)
		})
	}
}

// denial translates a redirect into the error an API caller receives.
func (m *Middleware) denial(decision Decision) error {
	switch decision.Target {
	case m.gate.SignInPath():
		return fmt.Errorf("%w: authentication required", authorization.ErrUnauthenticated)
	case m.gate.VerifyRequestPath():
		return fmt.Errorf("%w: confirm your email address first", authorization.ErrUnverified)
	default:
		return fmt.Errorf("%w: insufficient permissions", authorization.ErrForbidden)
	}
}

func (m *Middleware) apiResponse(w http.ResponseWriter, err error) {
	if err := httptypes.WriteFromError(w, err); err != nil {
		m.logger.Errorf("failed to encode gate response: %v", err)
	}
}

func signInURL(target, callback string) string {
	q := url.Values{}
	q.Set(callbackParam, callback)

	return target + "?" + q.Encode()
}

func NewMiddleware(gate *Gate, resolver *authentication.Resolver, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *Middleware {
	m := new(Middleware)
	m.gate = gate
	m.resolver = resolver
	m.tracer = tracer
	m.monitor = monitor
	m.logger = logger

	return m
}
