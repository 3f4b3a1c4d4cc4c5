// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package tenant

type CreateTenantRequest struct {
	Name string `json:"name" validate:"required,max=200"`
}

type UpdateTenantRequest struct {
	Name    *string `json:"name,omitempty" validate:"omitempty,min=1,max=200"`
	Enabled *bool   `json:"enabled,omitempty"`
}
