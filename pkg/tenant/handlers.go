// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package tenant

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
	mux.Get("/tenants", a.listTenants)
	mux.Post("/tenants", a.createTenant)
	mux.Get("/tenants/{id}", a.getTenant)
	mux.Patch("/tenants/{id}", a.updateTenant)
	mux.Delete("/tenants/{id}", a.deleteTenant)
}

func (a *API) listTenants(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "tenant.API.listTenants")
	defer span.End()

	principal, _ := authentication.GetPrincipal(ctx)

	tenants, err := a.service.ListTenants(ctx, principal, httptypes.PageFromQuery(r))
	if err != nil {
		a.writeError(w, err)
		return
	}

	a.writeData(w, http.StatusOK, tenants)
}

func (a *API) getTenant(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "tenant.API.getTenant")
	defer span.End()

	principal, _ := authentication.GetPrincipal(ctx)

	tenant, err := a.service.GetTenant(ctx, principal, chi.URLParam(r, "id"))
	if err != nil {
		a.writeError(w, err)
		return
	}

	a.writeData(w, http.StatusOK, tenant)
}

func (a *API) createTenant(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "tenant.API.createTenant")
	defer span.End()

	principal, _ := authentication.GetPrincipal(ctx)

	req := new(CreateTenantRequest)
	if err := httptypes.Decode(w, r, req, a.validator); err != nil {
		a.writeError(w, err)
		return
	}

	tenant, err := a.service.CreateTenant(ctx, principal, req.Name)
	if err != nil {
		a.writeError(w, err)
		return
	}

	a.writeData(w, http.StatusCreated, tenant)
}

func (a *API) updateTenant(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "tenant.API.updateTenant")
	defer span.End()

	principal, _ := authentication.GetPrincipal(ctx)

	req := new(UpdateTenantRequest)
	if err := httptypes.Decode(w, r, req, a.validator); err != nil {
		a.writeError(w, err)
		return
	}

	tenant, err := a.service.UpdateTenant(ctx, principal, chi.URLParam(r, "id"), req)
	if err != nil {
		a.writeError(w, err)
		return
	}

	a.writeData(w, http.StatusOK, tenant)
}

func (a *API) deleteTenant(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "tenant.API.deleteTenant")
	defer span.End()

	principal, _ := authentication.GetPrincipal(ctx)

	if err := a.service.DeleteTenant(ctx, principal, chi.URLParam(r, "id")); err != nil {
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
		a.logger.Errorf("tenant request failed: %v", err)
	}

	if werr := httptypes.WriteFromError(w, err); werr != nil {
		a.logger.Errorf("failed to encode error response: %v", werr)
	}
}
