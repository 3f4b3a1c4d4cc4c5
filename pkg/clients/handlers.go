// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package clients

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	httptypes "github.com/canonical/event-crm/internal/http/types"
	"github.com/canonical/event-crm/internal/logging"
	"github.com/canonical/event-crm/internal/monitoring"
	"github.com/canonical/event-crm/internal/tracing"
	"github.com/canonical/event-crm/pkg/authentication"
)

type API struct {
	service   ServiceInterface
	validator httptypes.StructValidator

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func NewAPI(
	service ServiceInterface,
	validator httptypes.StructValidator,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) *API {
	return &API{
		service:   service,
		validator: validator,
		tracer:    tracer,
		monitor:   monitor,
		logger:    logger,
	}
}

func (a *API) RegisterEndpoints(mux chi.Router) {
	mux.Get("/clients", a.list)
	mux.Post("/clients", a.create)
	mux.Get("/clients/{id}", a.get)
	mux.Patch("/clients/{id}", a.update)
	mux.Delete("/clients/{id}", a.delete)
}

func (a *API) list(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "clients.API.list")
	defer span.End()

	principal, _ := authentication.GetPrincipal(ctx)

	clients, err := a.service.ListClients(ctx, principal, r.URL.Query().Get("tenant_id"), httptypes.PageFromQuery(r))
	if err != nil {
		a.writeError(w, err)
		return
	}

	a.writeData(w, http.StatusOK, clients)
}

func (a *API) get(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "clients.API.get")
	defer span.End()

	principal, _ := authentication.GetPrincipal(ctx)

	client, err := a.service.GetClient(ctx, principal, chi.URLParam(r, "id"))
	if err != nil {
		a.writeError(w, err)
		return
	}

	a.writeData(w, http.StatusOK, client)
}

func (a *API) create(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "clients.API.create")
	defer span.End()

	principal, _ := authentication.GetPrincipal(ctx)

	req := new(CreateClientRequest)
	if err := httptypes.Decode(w, r, req, a.validator); err != nil {
		a.writeError(w, err)
		return
	}

	client, err := a.service.CreateClient(ctx, principal, req)
	if err != nil {
		a.writeError(w, err)
		return
	}

	a.writeData(w, http.StatusCreated, client)
}

func (a *API) update(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "clients.API.update")
	defer span.End()

	principal, _ := authentication.GetPrincipal(ctx)

	req := new(UpdateClientRequest)
	if err := httptypes.Decode(w, r, req, a.validator); err != nil {
		a.writeError(w, err)
		return
	}

	client, err := a.service.UpdateClient(ctx, principal, chi.URLParam(r, "id"), req)
	if err != nil {
		a.writeError(w, err)
		return
	}

	a.writeData(w, http.StatusOK, client)
}

func (a *API) delete(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "clients.API.delete")
	defer span.End()

	principal, _ := authentication.GetPrincipal(ctx)

	if err := a.service.DeleteClient(ctx, principal, chi.URLParam(r, "id")); err != nil {
		a.writeError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (a *API) writeData(w http.ResponseWriter, status int, data any) {
	if err := httptypes.WriteData(w, status, data); err != nil {
		a.logger.Errorf("failed to encode response: %v", err)
	}
}

func (a *API) writeError(w http.ResponseWriter, err error) {
	if httptypes.StatusFromError(err) >= http.StatusInternalServerError {
		a.logger.Errorf("clients request failed: %v", err)
	}

	if werr := httptypes.WriteFromError(w, err); werr != nil {
		a.logger.Errorf("failed to encode error response: %v", werr)
	}
}
