// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package cmd

import (
	"fmt"
	"net/url"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/canonical/inventory-service/internal/types"
	"github.com/canonical/inventory-service/pkg/inventory"
)

var connectionCmd = &cobra.Command{
	Use:   "connection",
	Short: "Manage connections between devices",
}

var listConnectionsCmd = &cobra.Command{
	Use:   "list",
	Short: "List connections, optionally of a single organization",
	RunE: func(cmd *cobra.Command, args []string) error {
		var connections []*types.ConnectionSummary
		if err := getClient().get(cmd.Context(), "/api/v0/connections", organizationFilter(cmd), &connections); err != nil {
			return fmt.Errorf("failed to list connections: %w", err)
		}

		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 3, ' ', 0)
		fmt.Fprintln(w, "ID\tSOURCE\tDESTINATION\tTYPE\tSPEED")
		for _, c := range connections {
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
				c.ID,
				endpoint(c.SourceDeviceName, c.SourceInterface),
				endpoint(c.DestinationDeviceName, c.DestinationInterface),
				c.Type,
				types.ResolveSpeed(valueOr(c.Speed, "-")),
			)
		}
		return w.Flush()
	},
}

var createConnectionCmd = &cobra.Command{
	Use:   "create [source-device-id] [destination-device-id]",
	Short: "Connect two devices of the same organization",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		orgID, _ := cmd.Flags().GetString("organization-id")
		connectionType, _ := cmd.Flags().GetString("type")

		req := &inventory.CreateConnectionRequest{
			SourceDeviceID:       args[0],
			SourceInterface:      optionalFlag(cmd, "source-interface"),
			DestinationDeviceID:  args[1],
			DestinationInterface: optionalFlag(cmd, "destination-interface"),
			Type:                 types.ConnectionType(connectionType),
			Speed:                optionalFlag(cmd, "speed"),
			OrganizationID:       orgID,
		}

		var id string
		if err := getClient().post(cmd.Context(), "/api/v0/connections", req, &id); err != nil {
			return fmt.Errorf("failed to create connection: %w", err)
		}

		cmd.Printf("Connection created: %s\n", id)
		return nil
	},
}

var updateConnectionCmd = &cobra.Command{
	Use:   "update [id]",
	Short: "Change the endpoints or properties of a connection",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		req := &inventory.UpdateConnectionRequest{
			SourceDeviceID:       optionalFlag(cmd, "source"),
			DestinationDeviceID:  optionalFlag(cmd, "destination"),
			SourceInterface:      optionalFlag(cmd, "source-interface"),
			DestinationInterface: optionalFlag(cmd, "destination-interface"),
			Speed:                optionalFlag(cmd, "speed"),
		}
		if t := optionalFlag(cmd, "type"); t != nil {
			ct := types.ConnectionType(*t)
			req.Type = &ct
		}

		if err := getClient().patch(cmd.Context(), "/api/v0/connections/"+url.PathEscape(args[0]), req); err != nil {
			return fmt.Errorf("failed to update connection: %w", err)
		}

		cmd.Printf("Connection updated: %s\n", args[0])
		return nil
	},
}

var deleteConnectionCmd = &cobra.Command{
	Use:   "delete [id]",
	Short: "Remove a connection",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := getClient().delete(cmd.Context(), "/api/v0/connections/"+url.PathEscape(args[0])); err != nil {
			return fmt.Errorf("failed to delete connection: %w", err)
		}

		cmd.Printf("Connection deleted: %s\n", args[0])
		return nil
	},
}

func endpoint(device string, iface *string) string {
	if iface == nil || *iface == "" {
		return device
	}

	return device + ":" + *iface
}

func init() {
	rootCmd.AddCommand(connectionCmd)
	connectionCmd.AddCommand(listConnectionsCmd)
	connectionCmd.AddCommand(createConnectionCmd)
	connectionCmd.AddCommand(updateConnectionCmd)
	connectionCmd.AddCommand(deleteConnectionCmd)

	listConnectionsCmd.Flags().String("organization-id", "", "Only connections of this organization")

	createConnectionCmd.Flags().String("organization-id", "", "Organization owning both devices")
	createConnectionCmd.Flags().String("type", "", "Connection type, e.g. Ethernet, Fiber, Wireless")
	createConnectionCmd.Flags().String("speed", "", "Speed preset such as Gigabit1G, or free text")
	createConnectionCmd.Flags().String("source-interface", "", "Port on the source device")
	createConnectionCmd.Flags().String("destination-interface", "", "Port on the destination device")
	_ = createConnectionCmd.MarkFlagRequired("organization-id")
	_ = createConnectionCmd.MarkFlagRequired("type")

	updateConnectionCmd.Flags().String("source", "", "New source device id")
	updateConnectionCmd.Flags().String("destination", "", "New destination device id")
	updateConnectionCmd.Flags().String("type", "", "New connection type")
	updateConnectionCmd.Flags().String("speed", "", "New speed")
	updateConnectionCmd.Flags().String("source-interface", "", "New source port, empty to clear")
	updateConnectionCmd.Flags().String("destination-interface", "", "New destination port, empty to clear")
}
