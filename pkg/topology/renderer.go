// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package topology

import (
	"fmt"
	"html"
	"io"
	"math"
	"strings"
	"sync"
)

const (
	selectionColor = "#7E6FFF"
	canvasColor    = "#1A1A1A"
	portOffset     = 60.0
)

// Scene is what a renderer draws: the graph of one container and its layout.
type Scene struct {
	ContainerID string
	Graph       *Graph
	Layout      *Layout
}

type Viewport struct {
	Center Point   `json:"center"`
	Zoom   float64 `json:"zoom"`
}

// Renderer draws a scene. The controller calls it from its event loop only.
type Renderer interface {
	Mount(*Scene) error
	Select(kind Kind, id string)
	Viewport(Viewport)
	Unmount()
}

// RendererFactory returns the renderer bound to a container, an unknown
// container is an error.
type RendererFactory func(containerID string) (Renderer, error)

type NoopRenderer struct{}

func (NoopRenderer) Mount(*Scene) error  { return nil }
func (NoopRenderer) Select(Kind, string) {}
func (NoopRenderer) Viewport(Viewport)   {}
func (NoopRenderer) Unmount()            {}

func NoopRendererFactory(string) (Renderer, error) {
	return NoopRenderer{}, nil
}

// SVGRenderer keeps the mounted scene and writes it as a standalone SVG document.
type SVGRenderer struct {
	mu       sync.Mutex
	scene    *Scene
	kind     Kind
	selected string
	viewport *Viewport
}

func (r *SVGRenderer) Mount(scene *Scene) error {
	if scene == nil || scene.Graph == nil || scene.Layout == nil {
		return fmt.Errorf("incomplete scene")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.scene = scene
	r.kind = KindNone
	r.selected = ""
	r.viewport = nil

	return nil
}

func (r *SVGRenderer) Select(kind Kind, id string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.kind = kind
	r.selected = id
}

func (r *SVGRenderer) Viewport(v Viewport) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.viewport = &v
}

func (r *SVGRenderer) Unmount() {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.scene = nil
}

// WriteTo renders the mounted scene, the viewport narrows the viewBox when set.
func (r *SVGRenderer) WriteTo(w io.Writer) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.scene == nil {
		return 0, fmt.Errorf("no scene mounted")
	}

	g, l := r.scene.Graph, r.scene.Layout
	b := new(strings.Builder)

	vx, vy, vw, vh := 0.0, 0.0, l.Width, l.Height
	if r.viewport != nil && r.viewport.Zoom > 0 {
		vw, vh = l.Width/r.viewport.Zoom, l.Height/r.viewport.Zoom
		vx, vy = r.viewport.Center.X-vw/2, r.viewport.Center.Y-vh/2
	}

	fmt.Fprintf(b, `<svg xmlns="http://www.w3.org/2000/svg" width="%s" height="%s" viewBox="%s %s %s %s">`+"\n",
		num(l.Width), num(l.Height), num(vx), num(vy), num(vw), num(vh))
	b.WriteString(`<defs><marker id="arrow" viewBox="0 0 10 10" refX="10" refY="5" markerWidth="6" markerHeight="6" orient="auto-start-reverse"><path d="M0,0 L10,5 L0,10 z" fill="context-stroke"/></marker></defs>` + "\n")
	fmt.Fprintf(b, `<rect x="%s" y="%s" width="%s" height="%s" fill="%s"/>`+"\n", num(vx), num(vy), num(vw), num(vh), canvasColor)

	for _, e := range g.Edges {
		r.writeEdge(b, e, l)
	}

	for _, n := range g.Nodes {
		r.writeNode(b, n, l)
	}

	b.WriteString("</svg>\n")

	written, err := io.WriteString(w, b.String())

	return int64(written), err
}

func (r *SVGRenderer) writeEdge(b *strings.Builder, e Edge, l *Layout) {
	s, t := l.Positions[e.Source], l.Positions[e.Target]

	// stop the line at the node border so the arrow head stays visible
	from := along(s, t, nodeSize/2)
	to := along(t, s, nodeSize/2)

	color, width := e.Color.Hex(), 3
	if r.kind == KindEdge && r.selected == e.ID {
		color, width = selectionColor, 6
	}

	fmt.Fprintf(b, `<g class="edge" id="edge-%s">`, esc(e.ID))
	fmt.Fprintf(b, `<line x1="%s" y1="%s" x2="%s" y2="%s" stroke="%s" stroke-width="%d" marker-end="url(#arrow)"/>`,
		num(from.X), num(from.Y), num(to.X), num(to.Y), color, width)

	if e.Label != "" {
		mid := Point{X: (s.X + t.X) / 2, Y: (s.Y + t.Y) / 2}
		writeText(b, mid, e.Label, 9)
	}
	if e.SourcePort != "" {
		writeText(b, along(s, t, portOffset), e.SourcePort, 9)
	}
	if e.TargetPort != "" {
		writeText(b, along(t, s, portOffset), e.TargetPort, 9)
	}

	b.WriteString("</g>\n")
}

func (r *SVGRenderer) writeNode(b *strings.Builder, n Node, l *Layout) {
	p := l.Positions[n.ID]

	stroke, width, opacity := "#FFFFFF", 2, "0.5"
	if r.kind == KindNode && r.selected == n.ID {
		stroke, width, opacity = selectionColor, 4, "1"
	}

	fmt.Fprintf(b, `<g class="node" id="node-%s" data-icon="%s">`, esc(n.ID), esc(n.Icon))
	fmt.Fprintf(b, `<circle cx="%s" cy="%s" r="%s" fill="%s" stroke="%s" stroke-width="%d" stroke-opacity="%s"/>`,
		num(p.X), num(p.Y), num(nodeSize/2), n.Color.Hex(), stroke, width, opacity)

	y := p.Y + nodeSize/2 + labelMarginTop
	writeText(b, Point{X: p.X, Y: y}, n.Label, 12)
	if n.IP != "" {
		writeText(b, Point{X: p.X, Y: y + labelLineSize}, n.IP, 12)
	}

	b.WriteString("</g>\n")
}

func writeText(b *strings.Builder, p Point, text string, size int) {
	fmt.Fprintf(b, `<text x="%s" y="%s" font-size="%d" font-weight="bold" text-anchor="middle" fill="#FFFFFF" stroke="%s" stroke-width="2" paint-order="stroke">%s</text>`,
		num(p.X), num(p.Y), size, canvasColor, esc(text))
}

// along returns the point at distance d from a towards b.
func along(a, b Point, d float64) Point {
	dx, dy := b.X-a.X, b.Y-a.Y
	length := math.Hypot(dx, dy)
	if length == 0 {
		return a
	}

	return Point{X: a.X + dx*d/length, Y: a.Y + dy*d/length}
}

func num(f float64) string {
	return fmt.Sprintf("%.1f", f)
}

func esc(s string) string {
	return html.EscapeString(s)
}
