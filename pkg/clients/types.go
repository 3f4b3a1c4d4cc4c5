// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package clients

type CreateClientRequest struct {
	Name     string `json:"name" validate:"required,max=200"`
	Email    string `json:"email,omitempty" validate:"omitempty,email,max=254"`
	Phone    string `json:"phone,omitempty" validate:"omitempty,max=50"`
	TenantID string `json:"tenant_id,omitempty" validate:"omitempty,uuid"`
}

// UpdateClientRequest only touches the fields that are present.
type UpdateClientRequest struct {
	Name  *string `json:"name,omitempty" validate:"omitempty,min=1,max=200"`
	Email *string `json:"email,omitempty" validate:"omitempty,email,max=254"`
	Phone *string `json:"phone,omitempty" validate:"omitempty,max=50"`
}
