// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package users

import (
	"github.com/canonical/event-crm/internal/types"
)

type CreateUserRequest struct {
	Email    string `json:"email" validate:"required,email,max=254"`
	Role     string `json:"role" validate:"required,role"`
	TenantID string `json:"tenant_id,omitempty" validate:"omitempty,uuid"`
}

type UpdateRoleRequest struct {
	Role string `json:"role" validate:"required,role"`
}

type SetActiveRequest struct {
	Active *bool `json:"active" validate:"required"`
}

// CreatedUser carries the recovery link the new user sets a password with.
type CreatedUser struct {
	User         *types.User `json:"user"`
	RecoveryLink string      `json:"recovery_link,omitempty"`
}

type PasswordResetResponse struct {
	RecoveryLink string `json:"recovery_link"`
}
