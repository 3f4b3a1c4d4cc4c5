// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

// Package roles holds the fixed privilege ordering shared by every
// authorization decision in the service.
package roles

import (
	"errors"
	"fmt"
)

var ErrUnknownRole = errors.New("unknown role")

const (
	ClientExternal = "CLIENT_EXTERNAL"
	User           = "USER"
	Manager        = "MANAGER"
	TenantAdmin    = "TENANT_ADMIN"
	SuperAdmin     = "SUPER_ADMIN"
)

const (
	// absentRank is the rank of a missing or unknown caller role
	absentRank = -1
	// unsatisfiableRank is the rank of an unknown threshold role
	unsatisfiableRank = 999
)

var hierarchy = map[string]int{
	ClientExternal: 0,
	User:           1,
	Manager:        2,
	TenantAdmin:    3,
	SuperAdmin:     4,
}

// IsAtLeast reports whether caller is at least as privileged as required.
// An absent or unknown caller never passes, an unknown requirement can
// never be met.
func IsAtLeast(caller, required string) bool {
	return callerRank(caller) >= requiredRank(required)
}

// Rank returns the position of role in the hierarchy and false when the
// role is not recognized.
func Rank(role string) (int, bool) {
	r, ok := hierarchy[role]
	return r, ok
}

func IsValid(role string) bool {
	_, ok := hierarchy[role]
	return ok
}

// IsAdministrative reports whether role may reach the dashboard, that is
// any recognized role but CLIENT_EXTERNAL.
func IsAdministrative(role string) bool {
	return IsValid(role) && role != ClientExternal
}

// Parse validates a role name, matching is case sensitive.
func Parse(role string) (string, error) {
	if !IsValid(role) {
		return "", fmt.Errorf("%w %q", ErrUnknownRole, role)
	}
	return role, nil
}

// All returns the roles from least to most privileged.
func All() []string {
	return []string{ClientExternal, User, Manager, TenantAdmin, SuperAdmin}
}

func callerRank(role string) int {
	if r, ok := hierarchy[role]; ok {
		return r
	}
	return absentRank
}

func requiredRank(role string) int {
	if r, ok := hierarchy[role]; ok {
		return r
	}
	return unsatisfiableRank
}
