// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package tracing

import (
	"net/http"
	"strings"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/canonical/event-crm/internal/logging"
	"github.com/canonical/event-crm/internal/monitoring"
)

// Middleware wraps the router with OpenTelemetry instrumentation
type Middleware struct {
	skipPrefixes []string

	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func (mdw *Middleware) OpenTelemetry(handler http.Handler) http.Handler {
	return otelhttp.NewHandler(
		handler,
		"server",
		otelhttp.WithSpanNameFormatter(func(_ string, r *http.Request) string {
			return r.Method + " " + r.URL.Path
		}),
		otelhttp.WithFilter(func(r *http.Request) bool {
			for _, p := range mdw.skipPrefixes {
				if strings.HasPrefix(r.URL.Path, p) {
					return false
				}
			}
			return true
		}),
	)
}

// NewMiddleware returns a Middleware, requests whose path starts with one of
// skipPrefixes (scrapes, probes) are not traced
func NewMiddleware(monitor monitoring.MonitorInterface, logger logging.LoggerInterface, skipPrefixes ...string) *Middleware {
	mdw := new(Middleware)

	mdw.skipPrefixes = skipPrefixes
	mdw.monitor = monitor
	mdw.logger = logger

	return mdw
}
