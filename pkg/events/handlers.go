// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package events

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/canonical/event-crm/internal/authorization"
	httptypes "github.com/canonical/event-crm/internal/http/types"
	"github.com/canonical/event-crm/internal/logging"
	"github.com/canonical/event-crm/internal/monitoring"
	"github.com/canonical/event-crm/internal/storage"
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
	mux.Get("/events", a.list)
	mux.Post("/events", a.create)
	mux.Get("/events/{id}", a.get)
	mux.Patch("/events/{id}", a.update)
	mux.Delete("/events/{id}", a.delete)

	mux.Get("/client-portal/me", a.portalMe)
	mux.Get("/client-portal/events", a.portalEvents)
}

func (a *API) list(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "events.API.list")
	defer span.End()

	principal, _ := authentication.GetPrincipal(ctx)

	q := r.URL.Query()
	filter := storage.EventFilter{
		TenantID: q.Get("tenant_id"),
		ClientID: q.Get("client_id"),
		Status:   q.Get("status"),
	}

	events, err := a.service.ListEvents(ctx, principal, filter, httptypes.PageFromQuery(r))
	if err != nil {
		a.writeError(w, err)
		return
	}

	a.writeData(w, http.StatusOK, events)
}

func (a *API) get(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "events.API.get")
	defer span.End()

	principal, _ := authentication.GetPrincipal(ctx)

	event, err := a.service.GetEvent(ctx, principal, chi.URLParam(r, "id"))
	if err != nil {
		a.writeError(w, err)
		return
	}

	a.writeData(w, http.StatusOK, event)
}

func (a *API) create(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "events.API.create")
	defer span.End()

	principal, _ := authentication.GetPrincipal(ctx)

	req := new(CreateEventRequest)
	if err := httptypes.Decode(w, r, req, a.validator); err != nil {
		a.writeError(w, err)
		return
	}

	event, err := a.service.CreateEvent(ctx, principal, req)
	if err != nil {
		a.writeError(w, err)
		return
	}

	a.writeData(w, http.StatusCreated, event)
}

func (a *API) update(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "events.API.update")
	defer span.End()

	principal, _ := authentication.GetPrincipal(ctx)

	req := new(UpdateEventRequest)
	if err := httptypes.Decode(w, r, req, a.validator); err != nil {
		a.writeError(w, err)
		return
	}

	event, err := a.service.UpdateEvent(ctx, principal, chi.URLParam(r, "id"), req)
	if err != nil {
		a.writeError(w, err)
		return
	}

	a.writeData(w, http.StatusOK, event)
}

func (a *API) delete(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "events.API.delete")
	defer span.End()

	principal, _ := authentication.GetPrincipal(ctx)

	if err := a.service.DeleteEvent(ctx, principal, chi.URLParam(r, "id")); err != nil {
		a.writeError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// portalMe mirrors /me inside the client-portal partition, the only API
// area a CLIENT_EXTERNAL identity may reach.
func (a *API) portalMe(w http.ResponseWriter, r *http.Request) {
	principal, ok := authentication.GetPrincipal(r.Context())
	if !ok {
		a.writeError(w, authorization.ErrUnauthenticated)
		return
	}

	a.writeData(w, http.StatusOK, principal)
}

func (a *API) portalEvents(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "events.API.portalEvents")
	defer span.End()

	principal, _ := authentication.GetPrincipal(ctx)

	events, err := a.service.ListPortalEvents(ctx, principal)
	if err != nil {
		a.writeError(w, err)
		return
	}

	a.writeData(w, http.StatusOK, events)
}

func (a *API) writeData(w http.ResponseWriter, status int, data any) {
	if err := httptypes.WriteData(w, status, data); err != nil {
		a.logger.Errorf("failed to encode response: %v", err)
	}
}

func (a *API) writeError(w http.ResponseWriter, err error) {
	if httptypes.StatusFromError(err) >= http.StatusInternalServerError {
		a.logger.Errorf("events request failed: %v", err)
	}

	if werr := httptypes.WriteFromError(w, err); werr != nil {
		a.logger.Errorf("failed to encode error response: %v", werr)
	}
}
