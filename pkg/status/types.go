// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package status

const (
	StatusOK      = "ok"
	StatusFailing = "failing"
)

type BuildInfo struct {
	Version    string `json:"version"`
	CommitHash string `json:"commit_hash,omitempty"`
	Name       string `json:"name"`
}

type Status struct {
	Status    string     `json:"status"`
	BuildInfo *BuildInfo `json:"buildInfo"`
}

// Readiness reports every registered dependency by name.
type Readiness struct {
	Status string            `json:"status"`
	Checks map[string]string `json:"checks"`
}
