// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package types

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/canonical/event-crm/internal/authorization"
	"github.com/canonical/event-crm/internal/roles"
	"github.com/canonical/event-crm/internal/storage"
)

// ErrorResponse is the JSON body of every API error, status mirrors the
// HTTP status code.
type ErrorResponse struct {
	Status  int    `json:"status"`
	Message string `json:"message"`
}

// Response wraps successful API payloads.
type Response struct {
	Status  int    `json:"status"`
	Message string `json:"message,omitempty"`
	Data    any    `json:"data,omitempty"`
}

// StatusFromError maps the error taxonomy onto HTTP status codes, anything
// unknown is an internal error.
func StatusFromError(err error) int {
	switch {
	case err == nil:
		return http.StatusOK
	case errors.Is(err, authorization.ErrUnauthenticated):
		return http.StatusUnauthorized
	case errors.Is(err, authorization.ErrUnverified), errors.Is(err, authorization.ErrForbidden):
		return http.StatusForbidden
	case errors.Is(err, authorization.ErrNotFound), errors.Is(err, storage.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, storage.ErrDuplicateKey):
		return http.StatusConflict
	case errors.Is(err, storage.ErrForeignKeyViolation), errors.Is(err, ErrInvalidRequest), errors.Is(err, roles.ErrUnknownRole):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// ErrInvalidRequest marks malformed or semantically invalid payloads.
var ErrInvalidRequest = errors.New("invalid request")

func WriteJSON(w http.ResponseWriter, status int, body any) error {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	return json.NewEncoder(w).Encode(body)
}

// WriteError writes an ErrorResponse. Internal errors never expose the
// underlying message.
func WriteError(w http.ResponseWriter, status int, message string) error {
	if status >= http.StatusInternalServerError {
		message = http.StatusText(status)
	}

	return WriteJSON(w, status, ErrorResponse{Status: status, Message: message})
}

// WriteFromError derives status and message from err.
func WriteFromError(w http.ResponseWriter, err error) error {
	status := StatusFromError(err)

	message := err.Error()
	if status == http.StatusNotFound {
		message = "resource not found"
	}

	return WriteError(w, status, message)
}

func WriteData(w http.ResponseWriter, status int, data any) error {
	return WriteJSON(w, status, Response{Status: status, Data: data})
}
