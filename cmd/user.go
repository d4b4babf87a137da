// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package cmd

import (
	"fmt"
	"net/url"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/canonical/inventory-service/internal/types"
	"github.com/canonical/inventory-service/pkg/users"
)

var userCmd = &cobra.Command{
	Use:   "user",
	Short: "Administer user accounts",
}

var listUsersCmd = &cobra.Command{
	Use:   "list",
	Short: "List every user of the directory",
	RunE: func(cmd *cobra.Command, args []string) error {
		var list []*types.UserSummary
		if err := getClient().get(cmd.Context(), "/api/v0/users", nil, &list); err != nil {
			return fmt.Errorf("failed to list users: %w", err)
		}

		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 3, ' ', 0)
		fmt.Fprintln(w, "ID\tEMAIL\tLOCKED\tROLES")
		for _, u := range list {
			fmt.Fprintf(w, "%s\t%s\t%v\t%s\n", u.ID, u.Email, u.LockedOut, strings.Join(u.Roles, ","))
		}
		return w.Flush()
	},
}

var createUserCmd = &cobra.Command{
	Use:   "create [email]",
	Short: "Create a user with a password",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		password, _ := cmd.Flags().GetString("password")

		req := &users.CreateUserRequest{Email: args[0], Password: password, ConfirmPassword: password}

		var id string
		if err := getClient().post(cmd.Context(), "/api/v0/users", req, &id); err != nil {
			return fmt.Errorf("failed to create user: %w", err)
		}

		cmd.Printf("User created: %s (ID: %s)\n", args[0], id)
		return nil
	},
}

var grantRoleCmd = &cobra.Command{
	Use:   "grant [user-id] [role]",
	Short: "Add a user to a role",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := getClient().post(cmd.Context(), "/api/v0/users/"+url.PathEscape(args[0])+"/roles", &users.RoleRequest{Role: args[1]}, nil); err != nil {
			return fmt.Errorf("failed to grant role: %w", err)
		}

		cmd.Printf("Role %s granted to %s\n", args[1], args[0])
		return nil
	},
}

var revokeRoleCmd = &cobra.Command{
	Use:   "revoke [user-id] [role]",
	Short: "Remove a user from a role",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := getClient().delete(cmd.Context(), "/api/v0/users/"+url.PathEscape(args[0])+"/roles/"+url.PathEscape(args[1])); err != nil {
			return fmt.Errorf("failed to revoke role: %w", err)
		}

		cmd.Printf("Role %s revoked from %s\n", args[1], args[0])
		return nil
	},
}

func userStatusCmd(use, short string, enabled bool) *cobra.Command {
	return &cobra.Command{
		Use:   use + " [user-id]",
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := getClient().put(cmd.Context(), "/api/v0/users/"+url.PathEscape(args[0])+"/status", &users.StatusRequest{Enabled: &enabled}); err != nil {
				return fmt.Errorf("failed to %s user: %w", use, err)
			}

			cmd.Printf("User %sd: %s\n", use, args[0])
			return nil
		},
	}
}

var setPasswordCmd = &cobra.Command{
	Use:   "set-password [user-id]",
	Short: "Replace the password of a user",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		password, _ := cmd.Flags().GetString("password")

		req := &users.ChangePasswordRequest{Password: password, ConfirmPassword: password}
		if err := getClient().put(cmd.Context(), "/api/v0/users/"+url.PathEscape(args[0])+"/password", req); err != nil {
			return fmt.Errorf("failed to change password: %w", err)
		}

		cmd.Printf("Password changed for %s\n", args[0])
		return nil
	},
}

var resetTokenCmd = &cobra.Command{
	Use:   "reset-token [user-id]",
	Short: "Generate a password reset token for a user",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		token := new(users.ResetToken)
		if err := getClient().post(cmd.Context(), "/api/v0/users/"+url.PathEscape(args[0])+"/recovery", nil, token); err != nil {
			return fmt.Errorf("failed to generate reset token: %w", err)
		}

		cmd.Println(token.Token)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(userCmd)
	userCmd.AddCommand(listUsersCmd)
	userCmd.AddCommand(createUserCmd)
	userCmd.AddCommand(grantRoleCmd)
	userCmd.AddCommand(revokeRoleCmd)
	userCmd.AddCommand(userStatusCmd("enable", "Lift the lockout of a user", true))
	userCmd.AddCommand(userStatusCmd("disable", "Lock a user out", false))
	userCmd.AddCommand(setPasswordCmd)
	userCmd.AddCommand(resetTokenCmd)

	createUserCmd.Flags().String("password", "", "Initial password")
	_ = createUserCmd.MarkFlagRequired("password")

	setPasswordCmd.Flags().String("password", "", "New password")
	_ = setPasswordCmd.MarkFlagRequired("password")
}
