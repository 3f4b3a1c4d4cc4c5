// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package storage

import (
	"context"
	"database/sql"
	"strings"

	sq "github.com/Masterminds/squirrel"

	"github.com/canonical/event-crm/internal/types"
)

var userColumns = []string{"id", "email", "role", "tenant_id", "email_verified", "is_active", "created_at"}

func scanUser(row scanner) (*types.User, error) {
	var (
		u        types.User
		tenantID sql.NullString
	)

	if err := row.Scan(&u.ID, &u.Email, &u.Role, &tenantID, &u.EmailVerified, &u.Active, &u.CreatedAt); err != nil {
		return nil, err
	}

	u.TenantID = tenantID.String

	return &u, nil
}

func nullable(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}

// CreateUser stores an identity whose ID was issued by the identity
// provider. Emails are stored lowercased.
func (s *Storage) CreateUser(ctx context.Context, u *types.User) (*types.User, error) {
	ctx, span := s.tracer.Start(ctx, "storage.CreateUser")
	defer span.End()

	row := s.db.Statement(ctx).
		Insert("users").
		Columns("id", "email", "role", "tenant_id", "email_verified", "is_active").
		Values(u.ID, strings.ToLower(u.Email), u.Role, nullable(u.TenantID), u.EmailVerified, u.Active).
		Suffix("RETURNING " + strings.Join(userColumns, ", ")).
		QueryRowContext(ctx)

	user, err := scanUser(row)
	if err != nil {
		return nil, classify(err, "insert user")
	}

	return user, nil
}

func (s *Storage) GetUserByID(ctx context.Context, id string) (*types.User, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetUserByID")
	defer span.End()

	return s.getUser(ctx, sq.Eq{"id": id})
}

func (s *Storage) GetUserByEmail(ctx context.Context, email string) (*types.User, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetUserByEmail")
	defer span.End()

	return s.getUser(ctx, sq.Eq{"email": strings.ToLower(email)})
}

func (s *Storage) getUser(ctx context.Context, where sq.Eq) (*types.User, error) {
	row := s.db.Statement(ctx).
		Select(userColumns...).
		From("users").
		Where(where).
		QueryRowContext(ctx)

	u, err := scanUser(row)
	if err != nil {
		return nil, classify(err, "get user")
	}

	return u, nil
}

// ListUsers lists the users of a tenant, or every user when tenantID is
// empty.
func (s *Storage) ListUsers(ctx context.Context, tenantID string, page Page) ([]*types.User, error) {
	ctx, span := s.tracer.Start(ctx, "storage.ListUsers")
	defer span.End()

	query := s.db.Statement(ctx).
		Select(userColumns...).
		From("users").
		OrderBy("created_at DESC")

	if tenantID != "" {
		query = query.Where(sq.Eq{"tenant_id": tenantID})
	}

	rows, err := paginate(query, page).QueryContext(ctx)
	if err != nil {
		return nil, classify(err, "list users")
	}
	defer rows.Close()

	users := make([]*types.User, 0)
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, classify(err, "scan user")
		}
		users = append(users, u)
	}

	if err := rows.Err(); err != nil {
		return nil, classify(err, "iterate user rows")
	}

	return users, nil
}

// UpdateUserRole sets the role and tenant of a user together, an empty
// tenantID stores NULL.
func (s *Storage) UpdateUserRole(ctx context.Context, id, role, tenantID string) error {
	ctx, span := s.tracer.Start(ctx, "storage.UpdateUserRole")
	defer span.End()

	res, err := s.db.Statement(ctx).
		Update("users").
		Set("role", role).
		Set("tenant_id", nullable(tenantID)).
		Where(sq.Eq{"id": id}).
		ExecContext(ctx)

	return affectedOne(res, err, "update user role")
}

func (s *Storage) SetUserActive(ctx context.Context, id string, active bool) error {
	ctx, span := s.tracer.Start(ctx, "storage.SetUserActive")
	defer span.End()

	res, err := s.db.Statement(ctx).
		Update("users").
		Set("is_active", active).
		Where(sq.Eq{"id": id}).
		ExecContext(ctx)

	return affectedOne(res, err, "set user active")
}
