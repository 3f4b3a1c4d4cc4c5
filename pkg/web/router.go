// Copyright 2025 Canonical Ltd
// SPDX-License-Identifier: AGPL-3.0

package web

import (
	"context"
	"net/http"

	chi "github.com/go-chi/chi/v5"
	middleware "github.com/go-chi/chi/v5/middleware"

	"github.com/canonical/event-crm/internal/authorization"
	"github.com/canonical/event-crm/internal/db"
	"github.com/canonical/event-crm/internal/kratos"
	"github.com/canonical/event-crm/internal/logging"
	"github.com/canonical/event-crm/internal/monitoring"
	"github.com/canonical/event-crm/internal/storage"
	"github.com/canonical/event-crm/internal/tracing"
	"github.com/canonical/event-crm/internal/validation"
	"github.com/canonical/event-crm/pkg/authentication"
	"github.com/canonical/event-crm/pkg/clients"
	"github.com/canonical/event-crm/pkg/events"
	"github.com/canonical/event-crm/pkg/gate"
	"github.com/canonical/event-crm/pkg/metrics"
	"github.com/canonical/event-crm/pkg/status"
	"github.com/canonical/event-crm/pkg/tenant"
	"github.com/canonical/event-crm/pkg/users"
	"github.com/canonical/event-crm/pkg/webhooks"
)

const apiV0 = "/api/v0"

// KratosClientInterface is what the router needs from the identity
// provider: user provisioning and a readiness probe.
type KratosClientInterface interface {
	users.KratosClientInterface
	Ping(ctx context.Context) error
}

type Config struct {
	Gate                 *gate.Config
	Verifier             authentication.TokenVerifierInterface
	SessionCookieNames   []string
	CORSAllowedOrigins   []string
	WebhookAPIKey        string
	RecoveryLinkLifetime string
}

func NewRouter(
	cfg Config,
	s storage.StorageInterface,
	dbClient db.DBClientInterface,
	kratosClient KratosClientInterface,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) http.Handler {
	router := chi.NewMux()

	resolver := authentication.NewResolver(cfg.Verifier, cfg.SessionCookieNames, tracer, logger)
	gateMiddleware := gate.NewMiddleware(gate.NewGate(cfg.Gate), resolver, tracer, monitor, logger)
	authMiddleware := authentication.NewMiddleware(resolver, tracer, monitor, logger)

	middlewares := make(chi.Middlewares, 0)
	middlewares = append(
		middlewares,
		middleware.RequestID,
		monitoring.NewMiddleware(monitor, logger).ResponseTime(),
		middlewareCORS(cfg.CORSAllowedOrigins),
		gateMiddleware.Handler(),
	)

	router.Use(middlewares...)

	authorizer := authorization.NewAuthorizer(tracer, monitor, logger)
	validator := validation.NewValidator()

	router.Route(apiV0, func(r chi.Router) {
		metrics.NewAPI(logger).RegisterEndpoints(r)
		status.NewAPI(
			map[string]status.HealthChecker{
				db.DependencyName:     dbClient,
				kratos.DependencyName: kratosClient,
			},
			tracer, monitor, logger,
		).RegisterEndpoints(r)

		r.Group(func(r chi.Router) {
			r.Use(db.TransactionMiddleware(dbClient, logger))

			webhooks.NewAPI(
				webhooks.NewService(s, tracer, monitor, logger),
				cfg.WebhookAPIKey,
				tracer, monitor, logger,
			).RegisterEndpoints(r)

			r.Group(func(r chi.Router) {
				r.Use(authMiddleware.Authenticate())

				users.NewAPI(
					users.NewService(s, authorizer, kratosClient, cfg.RecoveryLinkLifetime, tracer, monitor, logger),
					validator, tracer, monitor, logger,
				).RegisterEndpoints(r)
				tenant.NewAPI(
					tenant.NewService(s, authorizer, tracer, monitor, logger),
					validator, tracer, monitor, logger,
				).RegisterEndpoints(r)
				clients.NewAPI(
					clients.NewService(s, authorizer, tracer, monitor, logger),
					validator, tracer, monitor, logger,
				).RegisterEndpoints(r)
				events.NewAPI(
					events.NewService(s, authorizer, tracer, monitor, logger),
					validator, tracer, monitor, logger,
				).RegisterEndpoints(r)
			})
		})
	})

	router.Get("/*", pageHandler(logger))

	return tracing.NewMiddleware(monitor, logger, apiV0+"/metrics", apiV0+"/status", apiV0+"/ready").OpenTelemetry(router)
}
