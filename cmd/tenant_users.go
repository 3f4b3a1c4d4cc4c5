// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package cmd

import (
	"fmt"
	"net/http"
	"net/url"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/canonical/event-crm/internal/roles"
	"github.com/canonical/event-crm/internal/types"
	"github.com/canonical/event-crm/pkg/users"
)

var usersCmd = &cobra.Command{
	Use:   "users",
	Short: "Manage tenant users",
}

var listUsersCmd = &cobra.Command{
	Use:   "list",
	Short: "List users, scoped to the caller's tenant unless --tenant is given",
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := getClient()
		if err != nil {
			return err
		}

		path := "/users"
		if tenantID, _ := cmd.Flags().GetString("tenant"); tenantID != "" {
			path += "?tenant_id=" + url.QueryEscape(tenantID)
		}

		var list []*types.User
		if err := client.do(cmd.Context(), http.MethodGet, pageQuery(path, cmd), nil, &list); err != nil {
			return fmt.Errorf("failed to list users: %w", err)
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 0, 3, ' ', 0)
		fmt.Fprintln(w, "USER_ID\tEMAIL\tROLE\tTENANT_ID\tACTIVE")
		for _, u := range list {
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%v\n", u.ID, u.Email, u.Role, u.TenantID, u.Active)
		}
		w.Flush()
		return nil
	},
}

var createUserCmd = &cobra.Command{
	Use:   "create [email] [role]",
	Short: "Create a user and print its recovery link",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		role, err := roles.Parse(args[1])
		if err != nil {
			return err
		}

		client, err := getClient()
		if err != nil {
			return err
		}

		tenantID, _ := cmd.Flags().GetString("tenant")

		created := new(users.CreatedUser)
		req := users.CreateUserRequest{Email: args[0], Role: role, TenantID: tenantID}
		if err := client.do(cmd.Context(), http.MethodPost, "/users", req, created); err != nil {
			return fmt.Errorf("failed to create user: %w", err)
		}

		fmt.Printf("User created: %s (ID: %s)\n", created.User.Email, created.User.ID)
		if created.RecoveryLink != "" {
			fmt.Printf("Recovery link: %s\n", created.RecoveryLink)
		}
		return nil
	},
}

var updateUserRoleCmd = &cobra.Command{
	Use:   "role [user-id] [role]",
	Short: "Change the role of a user",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		role, err := roles.Parse(args[1])
		if err != nil {
			return err
		}

		client, err := getClient()
		if err != nil {
			return err
		}

		updated := new(types.User)
		if err := client.do(cmd.Context(), http.MethodPatch, "/users/"+args[0]+"/role", users.UpdateRoleRequest{Role: role}, updated); err != nil {
			return fmt.Errorf("failed to update user: %w", err)
		}

		fmt.Printf("User %s is now %s\n", updated.ID, updated.Role)
		return nil
	},
}

func setUserActive(active bool) func(cmd *cobra.Command, args []string) error {
	return func(cmd *cobra.Command, args []string) error {
		client, err := getClient()
		if err != nil {
			return err
		}

		if err := client.do(cmd.Context(), http.MethodPatch, "/users/"+args[0]+"/active", users.SetActiveRequest{Active: &active}, nil); err != nil {
			return fmt.Errorf("failed to update user: %w", err)
		}

		fmt.Printf("User %s active: %v\n", args[0], active)
		return nil
	}
}

var activateUserCmd = &cobra.Command{
	Use:   "activate [user-id]",
	Short: "Re-activate a user",
	Args:  cobra.ExactArgs(1),
	RunE:  setUserActive(true),
}

var deactivateUserCmd = &cobra.Command{
	Use:   "deactivate [user-id]",
	Short: "Deactivate a user",
	Args:  cobra.ExactArgs(1),
	RunE:  setUserActive(false),
}

var resetPasswordCmd = &cobra.Command{
	Use:   "reset-password [user-id]",
	Short: "Issue a recovery link for a user",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := getClient()
		if err != nil {
			return err
		}

		resp := new(users.PasswordResetResponse)
		if err := client.do(cmd.Context(), http.MethodPost, "/users/"+args[0]+"/password-reset", nil, resp); err != nil {
			return fmt.Errorf("failed to reset password: %w", err)
		}

		fmt.Printf("Recovery link: %s\n", resp.RecoveryLink)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(usersCmd)
	usersCmd.AddCommand(listUsersCmd)
	usersCmd.AddCommand(createUserCmd)
	usersCmd.AddCommand(updateUserRoleCmd)
	usersCmd.AddCommand(activateUserCmd)
	usersCmd.AddCommand(deactivateUserCmd)
	usersCmd.AddCommand(resetPasswordCmd)

	listUsersCmd.Flags().String("tenant", "", "Tenant ID, SUPER_ADMIN only")
	listUsersCmd.Flags().Int64("page", 0, "Page number, starting at 1")
	listUsersCmd.Flags().Int64("size", 0, "Page size")
	createUserCmd.Flags().String("tenant", "", "Tenant ID, defaults to the caller's tenant")
}
