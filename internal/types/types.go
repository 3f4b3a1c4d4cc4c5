// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package types

import (
	"time"
)

type Tenant struct {
	ID        string    `db:"id" json:"id"`
	Name      string    `db:"name" json:"name"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
	Enabled   bool      `db:"enabled" json:"enabled"`
}

// User is an identity known to the CRM. Its ID is the identity ID issued
// by Kratos, TenantID is empty only for SUPER_ADMIN.
type User struct {
	ID            string    `db:"id" json:"id"`
	Email         string    `db:"email" json:"email"`
	Role          string    `db:"role" json:"role"`
	TenantID      string    `db:"tenant_id" json:"tenant_id,omitempty"`
	EmailVerified bool      `db:"email_verified" json:"email_verified"`
	Active        bool      `db:"is_active" json:"is_active"`
	CreatedAt     time.Time `db:"created_at" json:"created_at"`
}

type Client struct {
	ID        string    `db:"id" json:"id"`
	TenantID  string    `db:"tenant_id" json:"tenant_id"`
	Name      string    `db:"name" json:"name"`
	Email     string    `db:"email" json:"email,omitempty"`
	Phone     string    `db:"phone" json:"phone,omitempty"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}

type Event struct {
	ID        string    `db:"id" json:"id"`
	TenantID  string    `db:"tenant_id" json:"tenant_id"`
	ClientID  string    `db:"client_id" json:"client_id"`
	Name      string    `db:"name" json:"name"`
	Venue     string    `db:"venue" json:"venue,omitempty"`
	StartsAt  time.Time `db:"starts_at" json:"starts_at"`
	Status    string    `db:"status" json:"status"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}

const (
	EventStatusPlanned   = "PLANNED"
	EventStatusConfirmed = "CONFIRMED"
	EventStatusCancelled = "CANCELLED"
	EventStatusCompleted = "COMPLETED"
)

// Principal is the identity snapshot carried by a verified session token.
type Principal struct {
	ID            string `json:"id"`
	Email         string `json:"email,omitempty"`
	Role          string `json:"role"`
	TenantID      string `json:"tenant_id,omitempty"`
	TenantName    string `json:"tenant_name,omitempty"`
	EmailVerified bool   `json:"email_verified"`
}
