// Copyright 2025 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package storage

import (
	"database/sql"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/canonical/event-crm/internal/db"
	"github.com/canonical/event-crm/internal/logging"
	"github.com/canonical/event-crm/internal/monitoring"
	"github.com/canonical/event-crm/internal/tracing"
)

var _ StorageInterface = (*Storage)(nil)

type Storage struct {
	db db.DBClientInterface

	logger  logging.LoggerInterface
	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
}

func NewStorage(c db.DBClientInterface, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *Storage {
	s := new(Storage)

	s.db = c

	s.logger = logger
	s.tracer = tracer
	s.monitor = monitor

	return s
}

func newID() (string, error) {
	id, err := uuid.NewV7()
	if err != nil {
		return "", fmt.Errorf("failed to generate ID: %w", err)
	}
	return id.String(), nil
}

func paginate(q sq.SelectBuilder, page Page) sq.SelectBuilder {
	size := db.PageSize(page.Size)
	return q.Limit(size).Offset(db.Offset(page.Number, size))
}

// updateMap keeps the columns named in paths, in PATCH fashion.
func updateMap(paths []string, columns map[string]any) map[string]any {
	m := make(map[string]any)
	for _, p := range paths {
		if v, ok := columns[p]; ok {
			m[p] = v
		}
	}
	return m
}

// affectedOne checks that a mutation touched a row.
func affectedOne(res sql.Result, err error, op string) error {
	if err != nil {
		return classify(err, op)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check rows affected: %w", err)
	}

	if n == 0 {
		return fmt.Errorf("%s: %w", op, ErrNotFound)
	}

	return nil
}
