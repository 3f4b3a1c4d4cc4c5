// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package users

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/canonical/event-crm/internal/authorization"
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
	mux.Get("/me", a.me)
	mux.Get("/users", a.listUsers)
	mux.Post("/users", a.createUser)
	mux.Patch("/users/{id}/role", a.updateRole)
	mux.Patch("/users/{id}/active", a.setActive)
	mux.Post("/users/{id}/password-reset", a.resetPassword)
}

func (a *API) me(w http.ResponseWriter, r *http.Request) {
	principal, ok := authentication.GetPrincipal(r.Context())
	if !ok {
		a.writeError(w, authorization.ErrUnauthenticated)
		return
	}

	a.writeData(w, http.StatusOK, principal)
}

func (a *API) listUsers(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "users.API.listUsers")
	defer span.End()

	principal, _ := authentication.GetPrincipal(ctx)

	users, err := a.service.ListUsers(ctx, principal, r.URL.Query().Get("tenant_id"), httptypes.PageFromQuery(r))
	if err != nil {
		a.writeError(w, err)
		return
	}

	a.writeData(w, http.StatusOK, users)
}

func (a *API) createUser(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "users.API.createUser")
	defer span.End()

	principal, _ := authentication.GetPrincipal(ctx)

	req := new(CreateUserRequest)
	if err := httptypes.Decode(w, r, req, a.validator); err != nil {
		a.writeError(w, err)
		return
	}

	created, err := a.service.CreateUser(ctx, principal, req)
	if err != nil {
		a.writeError(w, err)
		return
	}

	a.writeData(w, http.StatusCreated, created)
}

func (a *API) updateRole(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "users.API.updateRole")
	defer span.End()

	principal, _ := authentication.GetPrincipal(ctx)

	req := new(UpdateRoleRequest)
	if err := httptypes.Decode(w, r, req, a.validator); err != nil {
		a.writeError(w, err)
		return
	}

	user, err := a.service.UpdateRole(ctx, principal, chi.URLParam(r, "id"), req.Role)
	if err != nil {
		a.writeError(w, err)
		return
	}

	a.writeData(w, http.StatusOK, user)
}

func (a *API) setActive(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "users.API.setActive")
	defer span.End()

	principal, _ := authentication.GetPrincipal(ctx)

	req := new(SetActiveRequest)
	if err := httptypes.Decode(w, r, req, a.validator); err != nil {
		a.writeError(w, err)
		return
	}

	user, err := a.service.SetActive(ctx, principal, chi.URLParam(r, "id"), *req.Active)
	if err != nil {
		a.writeError(w, err)
		return
	}

	a.writeData(w, http.StatusOK, user)
}

func (a *API) resetPassword(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "users.API.resetPassword")
	defer span.End()

	principal, _ := authentication.GetPrincipal(ctx)

	link, err := a.service.ResetPassword(ctx, principal, chi.URLParam(r, "id"))
	if err != nil {
		a.writeError(w, err)
		return
	}

	a.writeData(w, http.StatusOK, PasswordResetResponse{RecoveryLink: link})
}

func (a *API) writeData(w http.ResponseWriter, status int, data any) {
	if err := httptypes.WriteData(w, status, data); err != nil {
		a.logger.Errorf("failed to encode response: %v", err)
	}
}

func (a *API) writeError(w http.ResponseWriter, err error) {
	if httptypes.StatusFromError(err) >= http.StatusInternalServerError {
		a.logger.Errorf("users request failed: %v", err)
	}

	if werr := httptypes.WriteFromError(w, err); werr != nil {
		a.logger.Errorf("failed to encode error response: %v", werr)
	}
}
