// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package status

import "context"

// HealthChecker is a dependency the service needs to be ready.
type HealthChecker interface {
	Ping(context.Context) error
}
