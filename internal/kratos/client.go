// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package kratos

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	ory "github.com/ory/client-go"

	"github.com/canonical/event-crm/internal/logging"
	"github.com/canonical/event-crm/internal/monitoring"
	"github.com/canonical/event-crm/internal/tracing"
)

const (
	defaultSchemaID = "default"

	// DependencyName labels Kratos in health and availability reports.
	DependencyName = "kratos"
)

// Client talks to the Kratos admin API. Identity IDs issued by Kratos are
// the user IDs of the CRM.
type Client struct {
	client *ory.APIClient

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

// GetIdentityIDByEmail returns an empty ID when no identity uses email.
func (c *Client) GetIdentityIDByEmail(ctx context.Context, email string) (string, error) {
	ctx, span := c.tracer.Start(ctx, "kratos.Client.GetIdentityIDByEmail")
	defer span.End()

	// NOTE: empty page token because of https://github.com/ory/sdk/issues/461
	ids, r, err := c.client.IdentityAPI.ListIdentities(ctx).
		CredentialsIdentifier(strings.ToLower(email)).
		PageToken("").
		Execute()
	if err != nil {
		if r != nil && r.StatusCode == http.StatusNotFound {
			return "", nil
		}
		return "", fmt.Errorf("failed to list identities: %w", err)
	}

	if len(ids) == 0 {
		return "", nil
	}

	return ids[0].Id, nil
}

// CreateIdentity creates a password-less identity, the user sets a
// password through a recovery link.
func (c *Client) CreateIdentity(ctx context.Context, email string) (string, error) {
	ctx, span := c.tracer.Start(ctx, "kratos.Client.CreateIdentity")
	defer span.End()

	body := ory.CreateIdentityBody{
		SchemaId: defaultSchemaID,
		Traits: map[string]interface{}{
			"email": strings.ToLower(email),
		},
	}

	identity, _, err := c.client.IdentityAPI.CreateIdentity(ctx).CreateIdentityBody(body).Execute()
	if err != nil {
		return "", fmt.Errorf("failed to create identity: %w", err)
	}

	return identity.Id, nil
}

func (c *Client) DeleteIdentity(ctx context.Context, id string) error {
	ctx, span := c.tracer.Start(ctx, "kratos.Client.DeleteIdentity")
	defer span.End()

	r, err := c.client.IdentityAPI.DeleteIdentity(ctx, id).Execute()
	if err != nil {
		if r != nil && r.StatusCode == http.StatusNotFound {
			return nil
		}
		return fmt.Errorf("failed to delete identity: %w", err)
	}

	return nil
}

// CreateRecoveryLink returns a one-time recovery link and code valid for
// expiresIn (a Go duration string such as "24h").
func (c *Client) CreateRecoveryLink(ctx context.Context, identityID string, expiresIn string) (string, string, error) {
	ctx, span := c.tracer.Start(ctx, "kratos.Client.CreateRecoveryLink")
	defer span.End()

	body := ory.CreateRecoveryCodeForIdentityBody{
		IdentityId: identityID,
		ExpiresIn:  &expiresIn,
	}

	recoveryCode, _, err := c.client.IdentityAPI.CreateRecoveryCodeForIdentity(ctx).CreateRecoveryCodeForIdentityBody(body).Execute()
	if err != nil {
		return "", "", fmt.Errorf("failed to create recovery code: %w", err)
	}

	return recoveryCode.RecoveryLink, recoveryCode.RecoveryCode, nil
}

// Ping lists a single identity to prove the admin API answers.
func (c *Client) Ping(ctx context.Context) error {
	ctx, span := c.tracer.Start(ctx, "kratos.Client.Ping")
	defer span.End()

	_, _, err := c.client.IdentityAPI.ListIdentities(ctx).PageSize(1).PageToken("").Execute()

	available := 1.0
	if err != nil {
		available = 0
	}

	if merr := c.monitor.SetDependencyAvailability(map[string]string{"component": DependencyName}, available); merr != nil {
		c.logger.Debugf("failed to record kratos availability: %v", merr)
	}

	if err != nil {
		return fmt.Errorf("kratos admin API unreachable: %w", err)
	}

	return nil
}

func NewClient(kratosAdminURL string, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *Client {
	conf := ory.NewConfiguration()
	conf.Servers = ory.ServerConfigurations{{URL: kratosAdminURL}}

	c := new(Client)
	c.client = ory.NewAPIClient(conf)
	c.tracer = tracer
	c.monitor = monitor
	c.logger = logger

	return c
}
