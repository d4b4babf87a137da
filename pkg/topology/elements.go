// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package topology

type nodeData struct {
	ID         string `json:"id"`
	Label      string `json:"label"`
	IP         string `json:"ip,omitempty"`
	Icon       string `json:"icon"`
	Color      string `json:"color"`
	SortWeight *int   `json:"sortWeight,omitempty"`
}

type edgeData struct {
	ID         string `json:"id"`
	Source     string `json:"source"`
	Target     string `json:"target"`
	Color      string `json:"color"`
	Label      string `json:"label,omitempty"`
	SourcePort string `json:"sourcePort,omitempty"`
	TargetPort string `json:"targetPort,omitempty"`
}

// Element follows the Cytoscape elements JSON format.
type Element struct {
	Group    string `json:"group"`
	Data     any    `json:"data"`
	Position *Point `json:"position,omitempty"`
}

type Export struct {
	Elements []Element `json:"elements"`
	Width    float64   `json:"width"`
	Height   float64   `json:"height"`
}

// NewExport flattens a laid out graph into preset-positioned elements.
func NewExport(scene *Scene) *Export {
	g, l := scene.Graph, scene.Layout

	x := &Export{
		Elements: make([]Element, 0, len(g.Nodes)+len(g.Edges)),
		Width:    l.Width,
		Height:   l.Height,
	}

	for _, n := range g.Nodes {
		p := l.Positions[n.ID]
		x.Elements = append(x.Elements, Element{
			Group: "nodes",
			Data: nodeData{
				ID:         n.ID,
				Label:      n.Label,
				IP:         n.IP,
				Icon:       n.Icon,
				Color:      n.Color.Hex(),
				SortWeight: n.SortWeight,
			},
			Position: &p,
		})
	}

	for _, e := range g.Edges {
		x.Elements = append(x.Elements, Element{
			Group: "edges",
			Data: edgeData{
				ID:         e.ID,
				Source:     e.Source,
				Target:     e.Target,
				Color:      e.Color.Hex(),
				Label:      e.Label,
				SourcePort: e.SourcePort,
				TargetPort: e.TargetPort,
			},
		})
	}

	return x
}
