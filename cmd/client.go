// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package cmd

import (
	"fmt"
)

// getClient returns an API client for the configured endpoint. Every admin
// command needs a session token.
func getClient() (*httpAPIClient, error) {
	if sessionToken == "" {
		return nil, fmt.Errorf("a session token is required, pass --token or set EVENT_CRM_TOKEN")
	}

	return newHTTPAPIClient(httpEndpoint, sessionToken), nil
}
