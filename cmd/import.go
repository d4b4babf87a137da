// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package cmd

import (
	"context"
	"fmt"
	"io"
	"net/url"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/canonical/inventory-service/internal/types"
	"github.com/canonical/inventory-service/pkg/inventory"
	"github.com/canonical/inventory-service/pkg/organizations"
)

// inventoryFile describes one organization and its network. Connections
// reference devices by name.
type inventoryFile struct {
	Organization   string            `yaml:"organization"`
	OrganizationID string            `yaml:"organization_id"`
	Devices        []deviceEntry     `yaml:"devices"`
	Connections    []connectionEntry `yaml:"connections"`
}

type deviceEntry struct {
	Name string `yaml:"name"`
	Type string `yaml:"type"`
	IP   string `yaml:"ip"`
}

type connectionEntry struct {
	Source               string `yaml:"source"`
	SourceInterface      string `yaml:"source_interface"`
	Destination          string `yaml:"destination"`
	DestinationInterface string `yaml:"destination_interface"`
	Type                 string `yaml:"type"`
	Speed                string `yaml:"speed"`
}

type importReport struct {
	OrganizationID      string
	OrganizationCreated bool
	DevicesCreated      int
	DevicesSkipped      int
	ConnectionsCreated  int
}

var importCmd = &cobra.Command{
	Use:   "import",
	Short: "Create an organization's devices and connections from a YAML file",
	RunE: func(cmd *cobra.Command, args []string) error {
		path, _ := cmd.Flags().GetString("file")

		var r io.Reader = cmd.InOrStdin()
		if path != "-" {
			f, err := os.Open(path)
			if err != nil {
				return err
			}
			defer f.Close()
			r = f
		}

		file, err := decodeInventoryFile(r)
		if err != nil {
			return err
		}

		report, err := importInventory(cmd.Context(), getClient(), file)
		if err != nil {
			return err
		}

		cmd.Printf("Organization %s: %d devices created, %d already present, %d connections created\n",
			report.OrganizationID, report.DevicesCreated, report.DevicesSkipped, report.ConnectionsCreated)
		return nil
	},
}

func decodeInventoryFile(r io.Reader) (*inventoryFile, error) {
	file := new(inventoryFile)

	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(file); err != nil {
		return nil, fmt.Errorf("invalid inventory file: %w", err)
	}

	if file.OrganizationID == "" && strings.TrimSpace(file.Organization) == "" {
		return nil, fmt.Errorf("invalid inventory file: organization or organization_id is required")
	}

	return file, nil
}

// importInventory is additive: devices already present by name are reused, the
// rest of the file is created through the API in order.
func importInventory(ctx context.Context, c *apiClient, file *inventoryFile) (*importReport, error) {
	report := new(importReport)

	orgID, created, err := resolveOrganization(ctx, c, file)
	if err != nil {
		return nil, err
	}
	report.OrganizationID = orgID
	report.OrganizationCreated = created

	var existing []*types.DeviceSummary
	if err := c.get(ctx, "/api/v0/devices", url.Values{"organization_id": []string{orgID}}, &existing); err != nil {
		return nil, fmt.Errorf("failed to list devices: %w", err)
	}

	ids := make(map[string]string, len(existing)+len(file.Devices))
	for _, d := range existing {
		ids[deviceKey(d.Name)] = d.ID
	}

	for _, d := range file.Devices {
		if _, ok := ids[deviceKey(d.Name)]; ok {
			report.DevicesSkipped++
			continue
		}

		req := &inventory.CreateDeviceRequest{
			Name:           d.Name,
			IPAddress:      nonEmpty(d.IP),
			Type:           types.DeviceType(d.Type),
			OrganizationID: orgID,
		}

		var id string
		if err := c.post(ctx, "/api/v0/devices", req, &id); err != nil {
			return report, fmt.Errorf("failed to create device %s: %w", d.Name, err)
		}

		ids[deviceKey(d.Name)] = id
		report.DevicesCreated++
	}

	for _, e := range file.Connections {
		source, ok := ids[deviceKey(e.Source)]
		if !ok {
			return report, fmt.Errorf("connection references unknown device %s", e.Source)
		}

		destination, ok := ids[deviceKey(e.Destination)]
		if !ok {
			return report, fmt.Errorf("connection references unknown device %s", e.Destination)
		}

		req := &inventory.CreateConnectionRequest{
			SourceDeviceID:       source,
			SourceInterface:      nonEmpty(e.SourceInterface),
			DestinationDeviceID:  destination,
			DestinationInterface: nonEmpty(e.DestinationInterface),
			Type:                 types.ConnectionType(e.Type),
			Speed:                nonEmpty(e.Speed),
			OrganizationID:       orgID,
		}

		if err := c.post(ctx, "/api/v0/connections", req, nil); err != nil {
			return report, fmt.Errorf("failed to connect %s to %s: %w", e.Source, e.Destination, err)
		}

		report.ConnectionsCreated++
	}

	return report, nil
}

func resolveOrganization(ctx context.Context, c *apiClient, file *inventoryFile) (string, bool, error) {
	if file.OrganizationID != "" {
		return file.OrganizationID, false, nil
	}

	name := strings.TrimSpace(file.Organization)

	var orgs []*types.OrganizationSummary
	if err := c.get(ctx, "/api/v0/organizations", nil, &orgs); err != nil {
		return "", false, fmt.Errorf("failed to list organizations: %w", err)
	}

	for _, o := range orgs {
		if strings.EqualFold(o.Name, name) {
			return o.ID, false, nil
		}
	}

	var id string
	if err := c.post(ctx, "/api/v0/organizations", &organizations.CreateOrganizationRequest{Name: name}, &id); err != nil {
		return "", false, fmt.Errorf("failed to create organization %s: %w", name, err)
	}

	return id, true, nil
}

func deviceKey(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

func nonEmpty(s string) *string {
	if s = strings.TrimSpace(s); s == "" {
		return nil
	}

	return &s
}

func init() {
	rootCmd.AddCommand(importCmd)

	importCmd.Flags().StringP("file", "f", "", "Inventory YAML file, - for stdin")
	_ = importCmd.MarkFlagRequired("file")
}
