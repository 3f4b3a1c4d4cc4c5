// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package storage

import (
	"context"
	"strings"

	sq "github.com/Masterminds/squirrel"

	"github.com/canonical/event-crm/internal/types"
)

var eventColumns = []string{"id", "tenant_id", "client_id", "name", "venue", "starts_at", "status", "created_at"}

func scanEvent(row scanner) (*types.Event, error) {
	var e types.Event
	if err := row.Scan(&e.ID, &e.TenantID, &e.ClientID, &e.Name, &e.Venue, &e.StartsAt, &e.Status, &e.CreatedAt); err != nil {
		return nil, err
	}
	return &e, nil
}

func prefixed(alias string, columns []string) []string {
	out := make([]string, len(columns))
	for i, c := range columns {
		out[i] = alias + "." + c
	}
	return out
}

func (s *Storage) CreateEvent(ctx context.Context, e *types.Event) (*types.Event, error) {
	ctx, span := s.tracer.Start(ctx, "storage.CreateEvent")
	defer span.End()

	id, err := newID()
	if err != nil {
		return nil, err
	}

	row := s.db.Statement(ctx).
		Insert("events").
		Columns("id", "tenant_id", "client_id", "name", "venue", "starts_at", "status").
		Values(id, e.TenantID, e.ClientID, e.Name, e.Venue, e.StartsAt, e.Status).
		Suffix("RETURNING " + strings.Join(eventColumns, ", ")).
		QueryRowContext(ctx)

	event, err := scanEvent(row)
	if err != nil {
		return nil, classify(err, "insert event")
	}

	return event, nil
}

func (s *Storage) GetEventByID(ctx context.Context, id string) (*types.Event, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetEventByID")
	defer span.End()

	row := s.db.Statement(ctx).
		Select(eventColumns...).
		From("events").
		Where(sq.Eq{"id": id}).
		QueryRowContext(ctx)

	e, err := scanEvent(row)
	if err != nil {
		return nil, classify(err, "get event")
	}

	return e, nil
}

func (s *Storage) ListEvents(ctx context.Context, filter EventFilter, page Page) ([]*types.Event, error) {
	ctx, span := s.tracer.Start(ctx, "storage.ListEvents")
	defer span.End()

	where := sq.Eq{}
	if filter.TenantID != "" {
		where["tenant_id"] = filter.TenantID
	}
	if filter.ClientID != "" {
		where["client_id"] = filter.ClientID
	}
	if filter.Status != "" {
		where["status"] = filter.Status
	}

	query := s.db.Statement(ctx).
		Select(eventColumns...).
		From("events").
		OrderBy("starts_at ASC")

	if len(where) > 0 {
		query = query.Where(where)
	}

	return s.queryEvents(ctx, paginate(query, page), "list events")
}

// ListEventsByClientEmail returns the events of the tenant's clients whose
// contact email matches.
func (s *Storage) ListEventsByClientEmail(ctx context.Context, tenantID, email string) ([]*types.Event, error) {
	ctx, span := s.tracer.Start(ctx, "storage.ListEventsByClientEmail")
	defer span.End()

	query := s.db.Statement(ctx).
		Select(prefixed("e", eventColumns)...).
		From("events e").
		Join("clients c ON c.id = e.client_id").
		Where(sq.Eq{
			"e.tenant_id": tenantID,
			"c.email":     strings.ToLower(email),
		}).
		OrderBy("e.starts_at ASC")

	return s.queryEvents(ctx, query, "list client events")
}

func (s *Storage) queryEvents(ctx context.Context, query sq.SelectBuilder, op string) ([]*types.Event, error) {
	rows, err := query.QueryContext(ctx)
	if err != nil {
		return nil, classify(err, op)
	}
	defer rows.Close()

	events := make([]*types.Event, 0)
	for rows.Next() {
		e, err := scanEvent(rows)
		if err != nil {
			return nil, classify(err, "scan event")
		}
		events = append(events, e)
	}

	if err := rows.Err(); err != nil {
		return nil, classify(err, "iterate event rows")
	}

	return events, nil
}

// UpdateEvent writes the fields named in paths ("name", "venue",
// "starts_at", "status").
func (s *Storage) UpdateEvent(ctx context.Context, e *types.Event, paths []string) (*types.Event, error) {
	ctx, span := s.tracer.Start(ctx, "storage.UpdateEvent")
	defer span.End()

	values := updateMap(paths, map[string]any{
		"name":      e.Name,
		"venue":     e.Venue,
		"starts_at": e.StartsAt,
		"status":    e.Status,
	})

	if len(values) == 0 {
		return s.GetEventByID(ctx, e.ID)
	}

	row := s.db.Statement(ctx).
		Update("events").
		SetMap(values).
		Where(sq.Eq{"id": e.ID}).
		Suffix("RETURNING " + strings.Join(eventColumns, ", ")).
		QueryRowContext(ctx)

	event, err := scanEvent(row)
	if err != nil {
		return nil, classify(err, "update event")
	}

	return event, nil
}

func (s *Storage) DeleteEvent(ctx context.Context, id string) error {
	ctx, span := s.tracer.Start(ctx, "storage.DeleteEvent")
	defer span.End()

	res, err := s.db.Statement(ctx).
		Delete("events").
		Where(sq.Eq{"id": id}).
		ExecContext(ctx)

	return affectedOne(res, err, "delete event")
}
