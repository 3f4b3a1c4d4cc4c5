// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/canonical/event-crm/internal/roles"
	"github.com/canonical/event-crm/internal/types"
	"github.com/canonical/event-crm/pkg/gate"
)

var gateCmd = &cobra.Command{
	Use:   "gate [path]",
	Short: "Show the route gate decision for a path",
	Long: `Evaluate the route gate offline. Without --role the request is
treated as unauthenticated.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		role, _ := cmd.Flags().GetString("role")
		tenantID, _ := cmd.Flags().GetString("tenant")
		verified, _ := cmd.Flags().GetBool("verified")
		requireVerified, _ := cmd.Flags().GetBool("require-verified-email")
		publicPaths, _ := cmd.Flags().GetStringSlice("public-paths")

		var principal *types.Principal
		if role != "" {
			parsed, err := roles.Parse(role)
			if err != nil {
				return err
			}

			principal = &types.Principal{ID: "cli", Role: parsed, TenantID: tenantID, EmailVerified: verified}
		}

		decision := gate.NewGate(gate.NewConfig(publicPaths, requireVerified)).Decide(args[0], principal)

		out, err := json.Marshal(decision)
		if err != nil {
			return fmt.Errorf("failed to encode decision: %w", err)
		}

		fmt.Fprintln(cmd.OutOrStdout(), string(out))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(gateCmd)

	gateCmd.Flags().String("role", "", "Role of the caller")
	gateCmd.Flags().String("tenant", "", "Tenant of the caller")
	gateCmd.Flags().Bool("verified", true, "Whether the caller's email is verified")
	gateCmd.Flags().Bool("require-verified-email", false, "Send unverified administrative users to the verify page")
	gateCmd.Flags().StringSlice("public-paths", []string{"/auth", "/api/auth", "/api/v0/status", "/api/v0/ready", "/api/v0/metrics", "/api/v0/webhooks"}, "Paths reachable without a session")
}
