// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package validation

import (
	"errors"
	"testing"

	"github.com/canonical/event-crm/internal/roles"
	"github.com/canonical/event-crm/internal/types"
)

type sample struct {
	Email  string `json:"email" validate:"required,email"`
	Role   string `json:"role" validate:"required,role"`
	Status string `json:"status,omitempty" validate:"omitempty,event_status"`
}

func TestValidator(t *testing.T) {
	tests := []struct {
		name           string
		input          sample
		expectedFields []string
	}{
		{
			name:  "valid",
			input: sample{Email: "a@example.com", Role: roles.Manager, Status: types.EventStatusConfirmed},
		},
		{
			name:           "missing email",
			input:          sample{Role: roles.User},
			expectedFields: []string{"email"},
		},
		{
			name:           "unknown role and status",
			input:          sample{Email: "a@example.com", Role: "OWNER", Status: "POSTPONED"},
			expectedFields: []string{"role", "status"},
		},
	}

	v := NewValidator()

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Struct(tt.input)

			if len(tt.expectedFields) == 0 {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}

			var verr *ValidationError
			if !errors.As(err, &verr) {
				t.Fatalf("expected validation error, got %v", err)
			}

			for _, f := range tt.expectedFields {
				if _, ok := verr.Fields[f]; !ok {
					t.Errorf("expected field %q in %v", f, verr.Fields)
				}
			}

			if len(verr.Fields) != len(tt.expectedFields) {
				t.Errorf("expected %d fields, got %v", len(tt.expectedFields), verr.Fields)
			}
		})
	}
}
