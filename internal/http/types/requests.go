// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package types

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/canonical/event-crm/internal/storage"
)

const maxBodyBytes = 1 << 20

// StructValidator is satisfied by validation.Validator.
type StructValidator interface {
	Struct(any) error
}

// Decode reads a JSON body into v and validates it. Every failure is an
// ErrInvalidRequest.
func Decode(w http.ResponseWriter, r *http.Request, v any, validator StructValidator) error {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()

	if err := dec.Decode(v); err != nil {
		return fmt.Errorf("%w: malformed body: %v", ErrInvalidRequest, err)
	}

	if validator == nil {
		return nil
	}

	if err := validator.Struct(v); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidRequest, err)
	}

	return nil
}

// PageFromQuery reads the page and size query parameters, ignoring values
// that are not numbers.
func PageFromQuery(r *http.Request) storage.Page {
	q := r.URL.Query()

	page, _ := strconv.ParseInt(q.Get("page"), 10, 64)
	size, _ := strconv.ParseInt(q.Get("size"), 10, 64)

	return storage.Page{Number: page, Size: size}
}
