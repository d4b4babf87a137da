// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package topology

import (
	"encoding/xml"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSVGRenderer(t *testing.T) {
	g := &Graph{
		Nodes: []Node{
			{ID: "n1", Label: "core <1>", IP: "10.0.0.1", Icon: "icon:Router", Color: ColorPrimary},
			{ID: "n2", Label: "edge", Icon: "icon:Switch", Color: ColorSecondary},
		},
		Edges: []Edge{{ID: "e1", Source: "n1", Target: "n2", Color: ColorInfo, Label: "1 Gbps", SourcePort: "eth0", TargetPort: "eth1"}},
	}

	r := new(SVGRenderer)
	require.NoError(t, r.Mount(&Scene{ContainerID: "export", Graph: g, Layout: BreadthFirst(g)}))
	r.Select(KindNode, "n1")

	out := new(strings.Builder)
	_, err := r.WriteTo(out)
	require.NoError(t, err)

	doc := out.String()
	require.NoError(t, xml.Unmarshal([]byte(doc), new(struct{})), "the document is well formed")

	require.Contains(t, doc, `id="node-n1"`)
	require.Contains(t, doc, `id="edge-e1"`)
	require.Contains(t, doc, "core &lt;1&gt;")
	require.Contains(t, doc, "10.0.0.1")
	require.Contains(t, doc, "eth0")
	require.Contains(t, doc, "eth1")
	require.Contains(t, doc, ColorInfo.Hex())
	require.Equal(t, 1, strings.Count(doc, selectionColor), "only the selected node is highlighted")

	r.Unmount()
	_, err = r.WriteTo(out)
	require.Error(t, err)
}

func TestSVGRendererViewport(t *testing.T) {
	g := &Graph{Nodes: []Node{{ID: "n1", Label: "a"}}}
	l := BreadthFirst(g)

	r := new(SVGRenderer)
	require.NoError(t, r.Mount(&Scene{Graph: g, Layout: l}))
	r.Viewport(Viewport{Center: l.Positions["n1"], Zoom: 2})

	out := new(strings.Builder)
	_, err := r.WriteTo(out)
	require.NoError(t, err)

	require.Contains(t, out.String(), "viewBox=\""+num(l.Positions["n1"].X-l.Width/4))
}

func TestSVGRendererRejectsIncompleteScene(t *testing.T) {
	require.Error(t, new(SVGRenderer).Mount(&Scene{}))
}
