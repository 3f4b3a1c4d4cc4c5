// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package storage

import (
	"context"
	"fmt"
	"os"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/pressly/goose/v3"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"

	"github.com/canonical/event-crm/internal/db"
	"github.com/canonical/event-crm/internal/logging"
	"github.com/canonical/event-crm/internal/monitoring"
	"github.com/canonical/event-crm/internal/tracing"
	"github.com/canonical/event-crm/internal/types"
	"github.com/canonical/event-crm/migrations"
)

// testDSNEnv points the suite at an existing database instead of starting
// a container.
const testDSNEnv = "EVENT_CRM_TEST_DSN"

var (
	setupOnce   sync.Once
	setupErr    error
	pgContainer *postgres.PostgresContainer
	dbClient    *db.DBClient
)

func TestMain(m *testing.M) {
	code := m.Run()

	if dbClient != nil {
		dbClient.Close()
	}

	if pgContainer != nil {
		if err := pgContainer.Terminate(context.Background()); err != nil {
			fmt.Printf("failed to terminate postgres container: %v\n", err)
		}
	}

	os.Exit(code)
}

func setupDatabase(ctx context.Context) error {
	dsn := os.Getenv(testDSNEnv)

	if dsn == "" {
		ctr, err := postgres.Run(
			ctx,
			"postgres:16-alpine",
			postgres.WithDatabase("crm"),
			postgres.WithUsername("crm"),
			postgres.WithPassword("crm"),
			postgres.BasicWaitStrategies(),
		)
		if err != nil {
			return fmt.Errorf("failed to start postgres: %w", err)
		}
		pgContainer = ctr

		if dsn, err = ctr.ConnectionString(ctx, "sslmode=disable"); err != nil {
			return fmt.Errorf("failed to read connection string: %w", err)
		}
	}

	client, err := db.NewDBClient(
		db.Config{
			DSN:             dsn,
			MaxConns:        4,
			MaxConnLifetime: time.Minute,
			MaxConnIdleTime: time.Minute,
		},
		tracing.NewNoopTracer(),
		monitoring.NewNoopMonitor("test"),
		logging.NewNoopLogger(),
	)
	if err != nil {
		return err
	}
	dbClient = client

	provider, err := goose.NewProvider(goose.DialectPostgres, client.DB(), migrations.EmbedMigrations, goose.WithLogger(goose.NopLogger()))
	if err != nil {
		return fmt.Errorf("failed to create goose provider: %w", err)
	}

	if _, err := provider.Up(ctx); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	return nil
}

// newTestStorage returns a Storage on the shared test database. Tests only
// assert on rows they created themselves, under fresh tenants.
func newTestStorage(t *testing.T) *Storage {
	t.Helper()

	if testing.Short() {
		t.Skip("database tests are skipped in short mode")
	}

	if os.Getenv(testDSNEnv) == "" {
		testcontainers.SkipIfProviderIsNotHealthy(t)
	}

	setupOnce.Do(func() {
		setupErr = setupDatabase(context.Background())
	})

	if setupErr != nil {
		t.Fatalf("failed to set up database: %v", setupErr)
	}

	return NewStorage(dbClient, tracing.NewNoopTracer(), monitoring.NewNoopMonitor("test"), logging.NewNoopLogger())
}

func createTestTenant(t *testing.T, s *Storage) *types.Tenant {
	t.Helper()

	tenant, err := s.CreateTenant(context.Background(), &types.Tenant{Name: "tenant " + uuid.NewString(), Enabled: true})
	if err != nil {
		t.Fatalf("failed to create tenant: %v", err)
	}

	return tenant
}

func createTestUser(t *testing.T, s *Storage, role, tenantID string) *types.User {
	t.Helper()

	id := uuid.NewString()
	user, err := s.CreateUser(context.Background(), &types.User{
		ID:       id,
		Email:    id + "@example.com",
		Role:     role,
		TenantID: tenantID,
		Active:   true,
	})
	if err != nil {
		t.Fatalf("failed to create user: %v", err)
	}

	return user
}

func createTestClient(t *testing.T, s *Storage, tenantID, email string) *types.Client {
	t.Helper()

	client, err := s.CreateClient(context.Background(), &types.Client{TenantID: tenantID, Name: "client " + email, Email: email})
	if err != nil {
		t.Fatalf("failed to create client: %v", err)
	}

	return client
}

func createTestEvent(t *testing.T, s *Storage, client *types.Client, name string, startsAt time.Time, status string) *types.Event {
	t.Helper()

	event, err := s.CreateEvent(context.Background(), &types.Event{
		TenantID: client.TenantID,
		ClientID: client.ID,
		Name:     name,
		StartsAt: startsAt,
		Status:   status,
	})
	if err != nil {
		t.Fatalf("failed to create event: %v", err)
	}

	return event
}

func eventIDs(events []*types.Event) []string {
	ids := make([]string, 0, len(events))
	for _, e := range events {
		ids = append(ids, e.ID)
	}
	return ids
}
