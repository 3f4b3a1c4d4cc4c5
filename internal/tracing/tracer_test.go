// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package tracing

import (
	"context"
	"testing"

	"github.com/canonical/event-crm/internal/logging"
)

func TestNewTracerDisabled(t *testing.T) {
	tracer := NewTracer(NewConfig(false, "", "", logging.NewNoopLogger()))

	ctx, span := tracer.Start(context.Background(), "tracing.TestNewTracerDisabled")
	defer span.End()

	if ctx == nil {
		t.Fatal("expected a context")
	}
}

func TestNoopTracer(t *testing.T) {
	tracer := NewNoopTracer()

	_, span := tracer.Start(context.Background(), "tracing.TestNoopTracer")
	defer span.End()

	if span.SpanContext().IsValid() {
		t.Fatal("expected noop span to carry an invalid span context")
	}
}
