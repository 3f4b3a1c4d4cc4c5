// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package storage

import (
	"context"
	"strings"

	sq "github.com/Masterminds/squirrel"

	"github.com/canonical/event-crm/internal/types"
)

var clientColumns = []string{"id", "tenant_id", "name", "email", "phone", "created_at"}

func scanClient(row scanner) (*types.Client, error) {
	var c types.Client
	if err := row.Scan(&c.ID, &c.TenantID, &c.Name, &c.Email, &c.Phone, &c.CreatedAt); err != nil {
		return nil, err
	}
	return &c, nil
}

func (s *Storage) CreateClient(ctx context.Context, c *types.Client) (*types.Client, error) {
	ctx, span := s.tracer.Start(ctx, "storage.CreateClient")
	defer span.End()

	id, err := newID()
	if err != nil {
		return nil, err
	}

	row := s.db.Statement(ctx).
		Insert("clients").
		Columns("id", "tenant_id", "name", "email", "phone").
		Values(id, c.TenantID, c.Name, strings.ToLower(c.Email), c.Phone).
		Suffix("RETURNING " + strings.Join(clientColumns, ", ")).
		QueryRowContext(ctx)

	client, err := scanClient(row)
	if err != nil {
		return nil, classify(err, "insert client")
	}

	return client, nil
}

func (s *Storage) GetClientByID(ctx context.Context, id string) (*types.Client, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetClientByID")
	defer span.End()

	row := s.db.Statement(ctx).
		Select(clientColumns...).
		From("clients").
		Where(sq.Eq{"id": id}).
		QueryRowContext(ctx)

	c, err := scanClient(row)
	if err != nil {
		return nil, classify(err, "get client")
	}

	return c, nil
}

func (s *Storage) ListClients(ctx context.Context, tenantID string, page Page) ([]*types.Client, error) {
	ctx, span := s.tracer.Start(ctx, "storage.ListClients")
	defer span.End()

	query := s.db.Statement(ctx).
		Select(clientColumns...).
		From("clients").
		OrderBy("name ASC")

	if tenantID != "" {
		query = query.Where(sq.Eq{"tenant_id": tenantID})
	}

	rows, err := paginate(query, page).QueryContext(ctx)
	if err != nil {
		return nil, classify(err, "list clients")
	}
	defer rows.Close()

	clients := make([]*types.Client, 0)
	for rows.Next() {
		c, err := scanClient(rows)
		if err != nil {
			return nil, classify(err, "scan client")
		}
		clients = append(clients, c)
	}

	if err := rows.Err(); err != nil {
		return nil, classify(err, "iterate client rows")
	}

	return clients, nil
}

// UpdateClient writes the fields named in paths ("name", "email", "phone").
func (s *Storage) UpdateClient(ctx context.Context, c *types.Client, paths []string) (*types.Client, error) {
	ctx, span := s.tracer.Start(ctx, "storage.UpdateClient")
	defer span.End()

	values := updateMap(paths, map[string]any{
		"name":  c.Name,
		"email": strings.ToLower(c.Email),
		"phone": c.Phone,
	})

	if len(values) == 0 {
		return s.GetClientByID(ctx, c.ID)
	}

	row := s.db.Statement(ctx).
		Update("clients").
		SetMap(values).
		Where(sq.Eq{"id": c.ID}).
		Suffix("RETURNING " + strings.Join(clientColumns, ", ")).
		QueryRowContext(ctx)

	client, err := scanClient(row)
	if err != nil {
		return nil, classify(err, "update client")
	}

	return client, nil
}

func (s *Storage) DeleteClient(ctx context.Context, id string) error {
	ctx, span := s.tracer.Start(ctx, "storage.DeleteClient")
	defer span.End()

	res, err := s.db.Statement(ctx).
		Delete("clients").
		Where(sq.Eq{"id": id}).
		ExecContext(ctx)

	return affectedOne(res, err, "delete client")
}
