// Copyright 2025 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package storage

import (
	"context"

	sq "github.com/Masterminds/squirrel"

	"github.com/canonical/event-crm/internal/types"
)

var tenantColumns = []string{"id", "name", "created_at", "enabled"}

type scanner interface {
	Scan(dest ...any) error
}

func scanTenant(row scanner) (*types.Tenant, error) {
	var t types.Tenant
	if err := row.Scan(&t.ID, &t.Name, &t.CreatedAt, &t.Enabled); err != nil {
		return nil, err
	}
	return &t, nil
}

func (s *Storage) CreateTenant(ctx context.Context, t *types.Tenant) (*types.Tenant, error) {
	ctx, span := s.tracer.Start(ctx, "storage.CreateTenant")
	defer span.End()

	id, err := newID()
	if err != nil {
		return nil, err
	}

	row := s.db.Statement(ctx).
		Insert("tenants").
		Columns("id", "name", "enabled").
		Values(id, t.Name, t.Enabled).
		Suffix("RETURNING id, name, created_at, enabled").
		QueryRowContext(ctx)

	tenant, err := scanTenant(row)
	if err != nil {
		return nil, classify(err, "insert tenant")
	}

	return tenant, nil
}

func (s *Storage) GetTenantByID(ctx context.Context, id string) (*types.Tenant, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetTenantByID")
	defer span.End()

	row := s.db.Statement(ctx).
		Select(tenantColumns...).
		From("tenants").
		Where(sq.Eq{"id": id}).
		QueryRowContext(ctx)

	t, err := scanTenant(row)
	if err != nil {
		return nil, classify(err, "get tenant")
	}

	return t, nil
}

func (s *Storage) ListTenants(ctx context.Context, page Page) ([]*types.Tenant, error) {
	ctx, span := s.tracer.Start(ctx, "storage.ListTenants")
	defer span.End()

	query := s.db.Statement(ctx).
		Select(tenantColumns...).
		From("tenants").
		OrderBy("created_at DESC")

	rows, err := paginate(query, page).QueryContext(ctx)
	if err != nil {
		return nil, classify(err, "list tenants")
	}
	defer rows.Close()

	tenants := make([]*types.Tenant, 0)
	for rows.Next() {
		t, err := scanTenant(rows)
		if err != nil {
			return nil, classify(err, "scan tenant")
		}
		tenants = append(tenants, t)
	}

	if err := rows.Err(); err != nil {
		return nil, classify(err, "iterate tenant rows")
	}

	return tenants, nil
}

// UpdateTenant follows PATCH semantics: only the fields named in paths
// ("name", "enabled") are written.
func (s *Storage) UpdateTenant(ctx context.Context, t *types.Tenant, paths []string) (*types.Tenant, error) {
	ctx, span := s.tracer.Start(ctx, "storage.UpdateTenant")
	defer span.End()

	values := updateMap(paths, map[string]any{
		"name":    t.Name,
		"enabled": t.Enabled,
	})

	if len(values) == 0 {
		return s.GetTenantByID(ctx, t.ID)
	}

	row := s.db.Statement(ctx).
		Update("tenants").
		SetMap(values).
		Where(sq.Eq{"id": t.ID}).
		Suffix("RETURNING id, name, created_at, enabled").
		QueryRowContext(ctx)

	tenant, err := scanTenant(row)
	if err != nil {
		return nil, classify(err, "update tenant")
	}

	return tenant, nil
}

// DeleteTenant fails with ErrForeignKeyViolation while users still belong
// to the tenant. Clients and events are removed with it.
func (s *Storage) DeleteTenant(ctx context.Context, id string) error {
	ctx, span := s.tracer.Start(ctx, "storage.DeleteTenant")
	defer span.End()

	res, err := s.db.Statement(ctx).
		Delete("tenants").
		Where(sq.Eq{"id": id}).
		ExecContext(ctx)

	return affectedOne(res, err, "delete tenant")
}
