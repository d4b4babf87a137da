// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package cmd

import (
	"fmt"
	"net/url"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/canonical/inventory-service/internal/types"
	"github.com/canonical/inventory-service/pkg/organizations"
)

var organizationCmd = &cobra.Command{
	Use:     "organization",
	Aliases: []string{"org"},
	Short:   "Manage organizations",
}

var listOrganizationsCmd = &cobra.Command{
	Use:   "list",
	Short: "List organizations visible to the requester",
	RunE: func(cmd *cobra.Command, args []string) error {
		available, _ := cmd.Flags().GetBool("available")

		path := "/api/v0/organizations"
		if available {
			path += "/available"
		}

		var orgs []*types.OrganizationSummary
		if err := getClient().get(cmd.Context(), path, nil, &orgs); err != nil {
			return fmt.Errorf("failed to list organizations: %w", err)
		}

		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 3, ' ', 0)
		fmt.Fprintln(w, "ID\tNAME\tACTIVE\tMEMBERS")
		for _, o := range orgs {
			fmt.Fprintf(w, "%s\t%s\t%v\t%d\n", o.ID, o.Name, o.IsActive, o.MemberCount)
		}
		return w.Flush()
	},
}

var createOrganizationCmd = &cobra.Command{
	Use:   "create [name]",
	Short: "Create a new organization",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var id string
		if err := getClient().post(cmd.Context(), "/api/v0/organizations", &organizations.CreateOrganizationRequest{Name: args[0]}, &id); err != nil {
			return fmt.Errorf("failed to create organization: %w", err)
		}

		cmd.Printf("Organization created: %s (ID: %s)\n", args[0], id)
		return nil
	},
}

var renameOrganizationCmd = &cobra.Command{
	Use:   "rename [id] [name]",
	Short: "Rename an organization",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := getClient().patch(cmd.Context(), "/api/v0/organizations/"+url.PathEscape(args[0]), &organizations.RenameOrganizationRequest{Name: args[1]}); err != nil {
			return fmt.Errorf("failed to rename organization: %w", err)
		}

		cmd.Printf("Organization renamed: %s\n", args[0])
		return nil
	},
}

func organizationStatusCmd(use, short string, enabled bool) *cobra.Command {
	return &cobra.Command{
		Use:   use + " [id]",
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			req := &organizations.OrganizationStatusRequest{Enabled: &enabled}
			if err := getClient().put(cmd.Context(), "/api/v0/organizations/"+url.PathEscape(args[0])+"/status", req); err != nil {
				return fmt.Errorf("failed to %s organization: %w", use, err)
			}

			cmd.Printf("Organization %sd: %s\n", use, args[0])
			return nil
		},
	}
}

var membersCmd = &cobra.Command{
	Use:   "members",
	Short: "Manage organization members",
}

var listMembersCmd = &cobra.Command{
	Use:   "list [organization-id]",
	Short: "List the members of an organization",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var members []*types.UserSummary
		if err := getClient().get(cmd.Context(), "/api/v0/organizations/"+url.PathEscape(args[0])+"/members", nil, &members); err != nil {
			return fmt.Errorf("failed to list members: %w", err)
		}

		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 3, ' ', 0)
		fmt.Fprintln(w, "USER_ID\tEMAIL\tLOCKED")
		for _, m := range members {
			fmt.Fprintf(w, "%s\t%s\t%v\n", m.ID, m.Email, m.LockedOut)
		}
		return w.Flush()
	},
}

var addMemberCmd = &cobra.Command{
	Use:   "add [organization-id] [user-id]",
	Short: "Add a user to an organization",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		req := &organizations.MemberRequest{UserID: args[1]}
		if err := getClient().post(cmd.Context(), "/api/v0/organizations/"+url.PathEscape(args[0])+"/members", req, nil); err != nil {
			return fmt.Errorf("failed to add member: %w", err)
		}

		cmd.Printf("User %s added to %s\n", args[1], args[0])
		return nil
	},
}

var removeMemberCmd = &cobra.Command{
	Use:   "remove [organization-id] [user-id]",
	Short: "Remove a user from an organization",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := getClient().delete(cmd.Context(), "/api/v0/organizations/"+url.PathEscape(args[0])+"/members/"+url.PathEscape(args[1])); err != nil {
			return fmt.Errorf("failed to remove member: %w", err)
		}

		cmd.Printf("User %s removed from %s\n", args[1], args[0])
		return nil
	},
}

var selectOrganizationCmd = &cobra.Command{
	Use:   "select [id]",
	Short: "Select the current organization of the requester",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := getClient().put(cmd.Context(), "/api/v0/session/organization", &organizations.SelectOrganizationRequest{OrganizationID: args[0]}); err != nil {
			return fmt.Errorf("failed to select organization: %w", err)
		}

		cmd.Printf("Current organization: %s\n", args[0])
		return nil
	},
}

var currentOrganizationCmd = &cobra.Command{
	Use:   "current",
	Short: "Show the current organization of the requester",
	RunE: func(cmd *cobra.Command, args []string) error {
		var selection organizations.Selection
		if err := getClient().get(cmd.Context(), "/api/v0/session/organization", nil, &selection); err != nil {
			return fmt.Errorf("failed to load the current organization: %w", err)
		}

		if selection.Current == nil {
			cmd.Println("No organization selected")
			return nil
		}

		cmd.Printf("%s (ID: %s)\n", selection.Current.Name, selection.Current.ID)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(organizationCmd)
	organizationCmd.AddCommand(listOrganizationsCmd)
	organizationCmd.AddCommand(createOrganizationCmd)
	organizationCmd.AddCommand(renameOrganizationCmd)
	organizationCmd.AddCommand(organizationStatusCmd("activate", "Activate an organization", true))
	organizationCmd.AddCommand(organizationStatusCmd("deactivate", "Deactivate an organization", false))
	organizationCmd.AddCommand(selectOrganizationCmd)
	organizationCmd.AddCommand(currentOrganizationCmd)

	organizationCmd.AddCommand(membersCmd)
	membersCmd.AddCommand(listMembersCmd)
	membersCmd.AddCommand(addMemberCmd)
	membersCmd.AddCommand(removeMemberCmd)

	listOrganizationsCmd.Flags().Bool("available", false, "Only organizations the requester can work in")
}
