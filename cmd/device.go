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

var deviceCmd = &cobra.Command{
	Use:   "device",
	Short: "Manage network devices",
}

var listDevicesCmd = &cobra.Command{
	Use:   "list",
	Short: "List devices, optionally of a single organization",
	RunE: func(cmd *cobra.Command, args []string) error {
		devices, err := listDevices(cmd, organizationFilter(cmd))
		if err != nil {
			return fmt.Errorf("failed to list devices: %w", err)
		}

		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 3, ' ', 0)
		fmt.Fprintln(w, "ID\tNAME\tTYPE\tIP\tORGANIZATION")
		for _, d := range devices {
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n", d.ID, d.Name, d.Type, valueOr(d.IPAddress, "-"), d.OrganizationName)
		}
		return w.Flush()
	},
}

var createDeviceCmd = &cobra.Command{
	Use:   "create [name]",
	Short: "Add a device to an organization",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		orgID, _ := cmd.Flags().GetString("organization-id")
		deviceType, _ := cmd.Flags().GetString("type")

		req := &inventory.CreateDeviceRequest{
			Name:           args[0],
			IPAddress:      optionalFlag(cmd, "ip"),
			Type:           types.DeviceType(deviceType),
			OrganizationID: orgID,
		}

		var id string
		if err := getClient().post(cmd.Context(), "/api/v0/devices", req, &id); err != nil {
			return fmt.Errorf("failed to create device: %w", err)
		}

		cmd.Printf("Device created: %s (ID: %s)\n", args[0], id)
		return nil
	},
}

var updateDeviceCmd = &cobra.Command{
	Use:   "update [id]",
	Short: "Change the name, type or address of a device",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		req := &inventory.UpdateDeviceRequest{
			Name:      optionalFlag(cmd, "name"),
			IPAddress: optionalFlag(cmd, "ip"),
		}
		if t := optionalFlag(cmd, "type"); t != nil {
			dt := types.DeviceType(*t)
			req.Type = &dt
		}

		if err := getClient().patch(cmd.Context(), "/api/v0/devices/"+url.PathEscape(args[0]), req); err != nil {
			return fmt.Errorf("failed to update device: %w", err)
		}

		cmd.Printf("Device updated: %s\n", args[0])
		return nil
	},
}

var deleteDeviceCmd = &cobra.Command{
	Use:   "delete [id]",
	Short: "Remove a device without connections",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := getClient().delete(cmd.Context(), "/api/v0/devices/"+url.PathEscape(args[0])); err != nil {
			return fmt.Errorf("failed to delete device: %w", err)
		}

		cmd.Printf("Device deleted: %s\n", args[0])
		return nil
	},
}

func listDevices(cmd *cobra.Command, query url.Values) ([]*types.DeviceSummary, error) {
	var devices []*types.DeviceSummary
	err := getClient().get(cmd.Context(), "/api/v0/devices", query, &devices)

	return devices, err
}

func organizationFilter(cmd *cobra.Command) url.Values {
	orgID, _ := cmd.Flags().GetString("organization-id")
	if orgID == "" {
		return nil
	}

	return url.Values{"organization_id": []string{orgID}}
}

// optionalFlag returns nil unless the flag was given on the command line.
func optionalFlag(cmd *cobra.Command, name string) *string {
	if !cmd.Flags().Changed(name) {
		return nil
	}

	v, _ := cmd.Flags().GetString(name)
	return &v
}

func valueOr(v *string, fallback string) string {
	if v == nil || *v == "" {
		return fallback
	}

	return *v
}

func init() {
	rootCmd.AddCommand(deviceCmd)
	deviceCmd.AddCommand(listDevicesCmd)
	deviceCmd.AddCommand(createDeviceCmd)
	deviceCmd.AddCommand(updateDeviceCmd)
	deviceCmd.AddCommand(deleteDeviceCmd)

	listDevicesCmd.Flags().String("organization-id", "", "Only devices of this organization")

	createDeviceCmd.Flags().String("organization-id", "", "Organization owning the device")
	createDeviceCmd.Flags().String("type", "", "Device type, e.g. Router, Switch, AccessPoint")
	createDeviceCmd.Flags().String("ip", "", "IP address")
	_ = createDeviceCmd.MarkFlagRequired("organization-id")
	_ = createDeviceCmd.MarkFlagRequired("type")

	updateDeviceCmd.Flags().String("name", "", "New name")
	updateDeviceCmd.Flags().String("type", "", "New device type")
	updateDeviceCmd.Flags().String("ip", "", "New IP address, empty to clear")
}
