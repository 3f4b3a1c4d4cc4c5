// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package webhooks

import (
	"crypto/subtle"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	httptypes "github.com/canonical/event-crm/internal/http/types"
	"github.com/canonical/event-crm/internal/logging"
	"github.com/canonical/event-crm/internal/monitoring"
	"github.com/canonical/event-crm/internal/tracing"
)

const maxPayloadBytes = 1 << 20

type API struct {
	service ServiceInterface
	apiKey  string

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

// NewAPI builds the web hook endpoints, an empty apiKey disables the
// header check.
func NewAPI(
	service ServiceInterface,
	apiKey string,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) *API {
	return &API{
		service: service,
		apiKey:  apiKey,
		tracer:  tracer,
		monitor: monitor,
		logger:  logger,
	}
}

func (a *API) RegisterEndpoints(mux chi.Router) {
	mux.Post("/webhooks/registration", a.registration)
}

func (a *API) registration(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "webhooks.API.registration")
	defer span.End()

	if !a.authorized(r) {
		a.logger.Security().AuthzFailure("webhook", r.URL.Path)
		_ = httptypes.WriteError(w, http.StatusUnauthorized, "invalid webhook api key")
		return
	}

	// Kratos sends the whole identity, unknown fields are expected.
	identity := new(KratosIdentity)
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxPayloadBytes)).Decode(identity); err != nil {
		a.logger.Errorf("invalid registration payload: %v", err)
		_ = httptypes.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	user, err := a.service.HandleRegistration(ctx, identity)
	if err != nil {
		a.logger.Errorf("registration hook failed: %v", err)
		_ = httptypes.WriteFromError(w, err)
		return
	}

	if err := httptypes.WriteData(w, http.StatusOK, user); err != nil {
		a.logger.Errorf("failed to encode response: %v", err)
	}
}

func (a *API) authorized(r *http.Request) bool {
	if a.apiKey == "" {
		return true
	}

	return subtle.ConstantTimeCompare([]byte(r.Header.Get(APIKeyHeader)), []byte(a.apiKey)) == 1
}
