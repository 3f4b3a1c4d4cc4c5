// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package prometheus

import (
	"testing"

	"github.com/canonical/event-crm/internal/logging"
)

func TestMonitorRegistersOnce(t *testing.T) {
	logger := logging.NewNoopLogger()

	first := NewMonitor("event-crm", logger)
	second := NewMonitor("event-crm", logger)

	if first.GetService() != "event-crm" {
		t.Fatalf("expected service event-crm, got %s", first.GetService())
	}

	if err := second.SetResponseTimeMetric(map[string]string{"route": "GET/api/v0/status", "status": "200"}, 0.1); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if err := second.SetDependencyAvailability(map[string]string{"component": "database"}, 1); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestMonitorUninstantiatedMetric(t *testing.T) {
	m := new(Monitor)

	if err := m.SetResponseTimeMetric(map[string]string{}, 1); err == nil {
		t.Fatal("expected error for missing histogram")
	}

	if err := m.SetDependencyAvailability(map[string]string{}, 1); err == nil {
		t.Fatal("expected error for missing gauge")
	}
}
