// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package cmd

import (
	"fmt"
	"net/http"
	"os"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/canonical/event-crm/internal/types"
	"github.com/canonical/event-crm/pkg/tenant"
)

var tenantCmd = &cobra.Command{
	Use:   "tenant",
	Short: "Manage tenants",
}

var createTenantCmd = &cobra.Command{
	Use:   "create [name]",
	Short: "Create a new tenant",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := getClient()
		if err != nil {
			return err
		}

		created := new(types.Tenant)
		if err := client.do(cmd.Context(), http.MethodPost, "/tenants", tenant.CreateTenantRequest{Name: args[0]}, created); err != nil {
			return fmt.Errorf("failed to create tenant: %w", err)
		}

		fmt.Printf("Tenant created: %s (ID: %s)\n", created.Name, created.ID)
		return nil
	},
}

var deleteTenantCmd = &cobra.Command{
	Use:   "delete [id]",
	Short: "Delete a tenant",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := getClient()
		if err != nil {
			return err
		}

		if err := client.do(cmd.Context(), http.MethodDelete, "/tenants/"+args[0], nil, nil); err != nil {
			return fmt.Errorf("failed to delete tenant: %w", err)
		}

		fmt.Printf("Tenant deleted: %s\n", args[0])
		return nil
	},
}

var listTenantsCmd = &cobra.Command{
	Use:   "list",
	Short: "List all tenants",
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := getClient()
		if err != nil {
			return err
		}

		var tenants []*types.Tenant
		if err := client.do(cmd.Context(), http.MethodGet, pageQuery("/tenants", cmd), nil, &tenants); err != nil {
			return fmt.Errorf("failed to list tenants: %w", err)
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 0, 3, ' ', 0)
		fmt.Fprintln(w, "ID\tNAME\tENABLED\tCREATED_AT")
		for _, t := range tenants {
			fmt.Fprintf(w, "%s\t%s\t%v\t%s\n", t.ID, t.Name, t.Enabled, t.CreatedAt.Format(time.RFC3339))
		}
		w.Flush()
		return nil
	},
}

func setTenantEnabled(enabled bool) func(cmd *cobra.Command, args []string) error {
	return func(cmd *cobra.Command, args []string) error {
		client, err := getClient()
		if err != nil {
			return err
		}

		if err := client.do(cmd.Context(), http.MethodPatch, "/tenants/"+args[0], tenant.UpdateTenantRequest{Enabled: &enabled}, nil); err != nil {
			return fmt.Errorf("failed to update tenant: %w", err)
		}

		state := "deactivated"
		if enabled {
			state = "activated"
		}

		fmt.Printf("Tenant %s: %s\n", state, args[0])
		return nil
	}
}

var activateTenantCmd = &cobra.Command{
	Use:   "activate [id]",
	Short: "Activate a tenant",
	Args:  cobra.ExactArgs(1),
	RunE:  setTenantEnabled(true),
}

var deactivateTenantCmd = &cobra.Command{
	Use:   "deactivate [id]",
	Short: "Deactivate a tenant",
	Args:  cobra.ExactArgs(1),
	RunE:  setTenantEnabled(false),
}

var updateTenantCmd = &cobra.Command{
	Use:   "update [id] [name]",
	Short: "Rename a tenant",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := getClient()
		if err != nil {
			return err
		}

		if err := client.do(cmd.Context(), http.MethodPatch, "/tenants/"+args[0], tenant.UpdateTenantRequest{Name: &args[1]}, nil); err != nil {
			return fmt.Errorf("failed to update tenant: %w", err)
		}

		fmt.Printf("Tenant updated: %s\n", args[0])
		return nil
	},
}

func pageQuery(path string, cmd *cobra.Command) string {
	page, _ := cmd.Flags().GetInt64("page")
	size, _ := cmd.Flags().GetInt64("size")

	if page == 0 && size == 0 {
		return path
	}

	sep := "?"
	if strings.Contains(path, "?") {
		sep = "&"
	}

	return fmt.Sprintf("%s%spage=%d&size=%d", path, sep, page, size)
}

func init() {
	rootCmd.AddCommand(tenantCmd)
	tenantCmd.AddCommand(createTenantCmd)
	tenantCmd.AddCommand(deleteTenantCmd)
	tenantCmd.AddCommand(listTenantsCmd)
	tenantCmd.AddCommand(activateTenantCmd)
	tenantCmd.AddCommand(deactivateTenantCmd)
	tenantCmd.AddCommand(updateTenantCmd)

	listTenantsCmd.Flags().Int64("page", 0, "Page number, starting at 1")
	listTenantsCmd.Flags().Int64("size", 0, "Page size")
}
