// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package topology

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/canonical/inventory-service/internal/types"
)

func strPtr(s string) *string {
	return &s
}

func TestBuildGraph(t *testing.T) {
	devices := []*types.DeviceSummary{
		{ID: "r1", Name: "core", Type: types.DeviceTypeRouter, IPAddress: strPtr("10.0.0.1")},
		{ID: "s1", Name: "access", Type: types.DeviceTypeSwitch},
		{ID: "p1", Name: "printer", Type: types.DeviceTypePrinter},
	}
	connections := []*types.ConnectionSummary{
		{
			ID:                   "c1",
			SourceDeviceID:       "r1",
			DestinationDeviceID:  "s1",
			Type:                 types.ConnectionTypeFiber,
			Speed:                strPtr(string(types.SpeedTenGigabit10G)),
			SourceInterface:      strPtr("xe-0/0/0"),
			DestinationInterface: strPtr("Te1/0/1"),
		},
		{ID: "c2", SourceDeviceID: "s1", DestinationDeviceID: "p1", Type: types.ConnectionTypeVPN, Speed: strPtr("custom")},
		{ID: "c3", SourceDeviceID: "s1", DestinationDeviceID: "elsewhere", Type: types.ConnectionTypeEthernet},
	}

	g := BuildGraph(devices, connections)

	require.Len(t, g.Nodes, 3)
	require.Len(t, g.Edges, 2, "edges to devices outside the set are dropped")

	require.Equal(t, Node{ID: "r1", Label: "core", IP: "10.0.0.1", Icon: "icon:Router", Color: ColorPrimary, SortWeight: g.Nodes[0].SortWeight}, g.Nodes[0])
	require.Equal(t, 1, *g.Nodes[0].SortWeight)
	require.Equal(t, ColorSecondary, g.Nodes[1].Color)
	require.Equal(t, ColorDefault, g.Nodes[2].Color, "printers have no dedicated color")

	require.Equal(t, Edge{
		ID:         "c1",
		Source:     "r1",
		Target:     "s1",
		Color:      ColorInfo,
		Label:      "10 Gbps (10 Gigabit)",
		SourcePort: "xe-0/0/0",
		TargetPort: "Te1/0/1",
	}, g.Edges[0])
	require.Equal(t, "custom", g.Edges[1].Label)
	require.Equal(t, ColorError, g.Edges[1].Color)
}

func TestPalette(t *testing.T) {
	tests := []struct {
		device types.DeviceType
		color  Color
	}{
		{types.DeviceTypeRouter, ColorPrimary},
		{types.DeviceTypeSwitch, ColorSecondary},
		{types.DeviceTypeModem, ColorInfo},
		{types.DeviceTypeServer, ColorError},
		{types.DeviceTypePC, ColorSuccess},
		{types.DeviceTypeNotebook, ColorWarning},
		{types.DeviceTypeAccessPoint, ColorTertiary},
		{types.DeviceTypeWifiRouter, ColorPrimary},
		{types.DeviceTypeSpecs, ColorDefault},
	}

	for _, test := range tests {
		t.Run(string(test.device), func(t *testing.T) {
			require.Equal(t, test.color, DeviceColor(test.device))
		})
	}

	require.Equal(t, ColorSuccess, ConnectionColor(types.ConnectionTypeWireless))
	require.Equal(t, ColorWarning, ConnectionColor(types.ConnectionTypeRadio))
	require.Equal(t, ColorSecondary, ConnectionColor(types.ConnectionTypeSerial))
	require.Equal(t, ColorDefault, ConnectionColor("Carrier pigeon"))

	require.Equal(t, palette[ColorDefault], Color("unknown").Hex())
}
