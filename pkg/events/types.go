// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package events

import "time"

// CreateEventRequest takes its tenant from the referenced client.
type CreateEventRequest struct {
	ClientID string    `json:"client_id" validate:"required"`
	Name     string    `json:"name" validate:"required,max=200"`
	Venue    string    `json:"venue,omitempty" validate:"omitempty,max=200"`
	StartsAt time.Time `json:"starts_at" validate:"required"`
	Status   string    `json:"status,omitempty" validate:"omitempty,event_status"`
}

type UpdateEventRequest struct {
	Name     *string    `json:"name,omitempty" validate:"omitempty,min=1,max=200"`
	Venue    *string    `json:"venue,omitempty" validate:"omitempty,max=200"`
	StartsAt *time.Time `json:"starts_at,omitempty"`
	Status   *string    `json:"status,omitempty" validate:"omitempty,event_status"`
}
