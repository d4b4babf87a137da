// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package topology

import (
	"github.com/canonical/inventory-service/internal/types"
)

// Color is a named palette entry, Hex resolves it for renderers that need a value.
type Color string

const (
	ColorPrimary   Color = "primary"
	ColorSecondary Color = "secondary"
	ColorTertiary  Color = "tertiary"
	ColorInfo      Color = "info"
	ColorSuccess   Color = "success"
	ColorWarning   Color = "warning"
	ColorError     Color = "error"
	ColorDefault   Color = "default"
)

var palette = map[Color]string{
	ColorPrimary:   "#594AE2",
	ColorSecondary: "#FF4081",
	ColorTertiary:  "#1EC8A5",
	ColorInfo:      "#2196F3",
	ColorSuccess:   "#00C853",
	ColorWarning:   "#FF9800",
	ColorError:     "#F44336",
	ColorDefault:   "#9E9E9E",
}

func (c Color) Hex() string {
	if h, ok := palette[c]; ok {
		return h
	}

	return palette[ColorDefault]
}

var deviceColors = map[types.DeviceType]Color{
	types.DeviceTypeRouter:      ColorPrimary,
	types.DeviceTypeSwitch:      ColorSecondary,
	types.DeviceTypeModem:       ColorInfo,
	types.DeviceTypeServer:      ColorError,
	types.DeviceTypePC:          ColorSuccess,
	types.DeviceTypeNotebook:    ColorWarning,
	types.DeviceTypeAccessPoint: ColorTertiary,
	types.DeviceTypeWifiRouter:  ColorPrimary,
}

var connectionColors = map[types.ConnectionType]Color{
	types.ConnectionTypeEthernet: ColorPrimary,
	types.ConnectionTypeFiber:    ColorInfo,
	types.ConnectionTypeWireless: ColorSuccess,
	types.ConnectionTypeRadio:    ColorWarning,
	types.ConnectionTypeVPN:      ColorError,
	types.ConnectionTypeSerial:   ColorSecondary,
	types.ConnectionTypeOther:    ColorDefault,
}

// upstream devices sort before the equipment hanging off them
var typeWeights = map[types.DeviceType]int{
	types.DeviceTypeModem:       0,
	types.DeviceTypeRouter:      1,
	types.DeviceTypeWifiRouter:  1,
	types.DeviceTypeSwitch:      2,
	types.DeviceTypeAccessPoint: 3,
	types.DeviceTypeServer:      4,
	types.DeviceTypePC:          5,
	types.DeviceTypeNotebook:    5,
	types.DeviceTypePrinter:     5,
	types.DeviceTypeSpecs:       6,
}

func DeviceColor(t types.DeviceType) Color {
	if c, ok := deviceColors[t]; ok {
		return c
	}

	return ColorDefault
}

func ConnectionColor(t types.ConnectionType) Color {
	if c, ok := connectionColors[t]; ok {
		return c
	}

	return ColorDefault
}

// Icon returns the icon reference of a device type, renderers resolve it.
func Icon(t types.DeviceType) string {
	return "icon:" + string(t)
}

type Node struct {
	ID         string `json:"id"`
	Label      string `json:"label"`
	IP         string `json:"ip,omitempty"`
	Icon       string `json:"icon"`
	Color      Color  `json:"color"`
	SortWeight *int   `json:"sortWeight,omitempty"`
}

type Edge struct {
	ID         string `json:"id"`
	Source     string `json:"source"`
	Target     string `json:"target"`
	Color      Color  `json:"color"`
	Label      string `json:"label,omitempty"`
	SourcePort string `json:"sourcePort,omitempty"`
	TargetPort string `json:"targetPort,omitempty"`
}

type Graph struct {
	Nodes []Node `json:"nodes"`
	Edges []Edge `json:"edges"`
}

func (g *Graph) node(id string) (Node, bool) {
	for _, n := range g.Nodes {
		if n.ID == id {
			return n, true
		}
	}

	return Node{}, false
}

func (g *Graph) edge(id string) (Edge, bool) {
	for _, e := range g.Edges {
		if e.ID == id {
			return e, true
		}
	}

	return Edge{}, false
}

// BuildGraph turns an organization's devices and connections into the graph model.
// Connections whose endpoints are not part of devices are dropped.
func BuildGraph(devices []*types.DeviceSummary, connections []*types.ConnectionSummary) *Graph {
	g := &Graph{
		Nodes: make([]Node, 0, len(devices)),
		Edges: make([]Edge, 0, len(connections)),
	}

	known := make(map[string]bool, len(devices))
	for _, d := range devices {
		known[d.ID] = true

		n := Node{
			ID:    d.ID,
			Label: d.Name,
			IP:    deref(d.IPAddress),
			Icon:  Icon(d.Type),
			Color: DeviceColor(d.Type),
		}
		if w, ok := typeWeights[d.Type]; ok {
			n.SortWeight = &w
		}

		g.Nodes = append(g.Nodes, n)
	}

	for _, c := range connections {
		if !known[c.SourceDeviceID] || !known[c.DestinationDeviceID] {
			continue
		}

		e := Edge{
			ID:         c.ID,
			Source:     c.SourceDeviceID,
			Target:     c.DestinationDeviceID,
			Color:      ConnectionColor(c.Type),
			SourcePort: deref(c.SourceInterface),
			TargetPort: deref(c.DestinationInterface),
		}
		if c.Speed != nil && *c.Speed != "" {
			e.Label = types.ResolveSpeed(*c.Speed)
		}

		g.Edges = append(g.Edges, e)
	}

	return g
}

func deref(s *string) string {
	if s == nil {
		return ""
	}

	return *s
}
