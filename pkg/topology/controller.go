// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package topology

import (
	"errors"
	"fmt"
	"sync"

	"github.com/canonical/inventory-service/internal/logging"
)

// FocusZoom is the zoom level Focus settles on.
const FocusZoom = 1.5

type Kind string

const (
	KindNone Kind = ""
	KindNode Kind = "node"
	KindEdge Kind = "edge"
)

// Selection is the normalized payload handed to the selection callback.
type Selection struct {
	Kind            Kind   `json:"kind"`
	ID              string `json:"id"`
	Label           string `json:"label"`
	IP              string `json:"ip,omitempty"`
	SourceInterface string `json:"sourceInterface,omitempty"`
	TargetInterface string `json:"targetInterface,omitempty"`
}

// SelectionFunc receives every click. Nothing selected is reported as (KindNone, nil).
// It runs on the event loop and must not call back into the controller.
type SelectionFunc func(kind Kind, sel *Selection)

var (
	ErrNoContainer      = errors.New("container id is required")
	ErrDuplicateElement = errors.New("duplicate element id")
	ErrDanglingEdge     = errors.New("edge references an unknown node")
)

// Controller drives one interactive view at a time. Every input event and
// callback is serialized through the event loop of the current instance.
type Controller struct {
	renderers RendererFactory

	mu       sync.Mutex
	instance *instance

	logger logging.LoggerInterface
}

type instance struct {
	scene    *Scene
	renderer Renderer
	callback SelectionFunc

	selected *Selection
	viewport Viewport

	events chan func()
	stopCh chan struct{}
	doneCh chan struct{}
}

// Init tears down any running view and builds a new one for the given elements.
func (c *Controller) Init(containerID string, nodes []Node, edges []Edge, callback SelectionFunc) error {
	if containerID == "" {
		return ErrNoContainer
	}

	graph, err := newGraph(nodes, edges)
	if err != nil {
		return err
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if c.instance != nil {
		c.instance.stop()
		c.instance = nil
	}

	renderer, err := c.renderers(containerID)
	if err != nil {
		return fmt.Errorf("container %s: %w", containerID, err)
	}

	layout := BreadthFirst(graph)
	scene := &Scene{ContainerID: containerID, Graph: graph, Layout: layout}

	if err := renderer.Mount(scene); err != nil {
		return fmt.Errorf("failed to mount %s: %w", containerID, err)
	}

	i := &instance{
		scene:    scene,
		renderer: renderer,
		callback: callback,
		viewport: Viewport{Center: Point{X: layout.Width / 2, Y: layout.Height / 2}, Zoom: 1},
		events:   make(chan func()),
		stopCh:   make(chan struct{}),
		doneCh:   make(chan struct{}),
	}

	go i.loop()

	c.instance = i
	c.logger.Debugf("topology %s mounted with %d nodes and %d edges", containerID, len(graph.Nodes), len(graph.Edges))

	return nil
}

// Destroy stops the event loop and unmounts the renderer, it is a no-op when nothing runs.
func (c *Controller) Destroy() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.instance != nil {
		c.instance.stop()
		c.instance = nil
	}
}

// Focus selects id exclusively and centers the viewport on it at FocusZoom.
// No selection event is emitted. It reports whether the element exists.
func (c *Controller) Focus(id string) bool {
	found := false

	c.dispatch(func(i *instance) {
		center, ok := i.scene.Layout.Center(i.scene.Graph, id)
		if !ok {
			return
		}

		sel := i.selection(id)
		i.selected = sel
		i.renderer.Select(sel.Kind, id)

		i.viewport = Viewport{Center: center, Zoom: FocusZoom}
		i.renderer.Viewport(i.viewport)

		found = true
	})

	return found
}

// TapNode simulates a click on a node.
func (c *Controller) TapNode(id string) bool {
	return c.tap(KindNode, id)
}

// TapEdge simulates a click on an edge.
func (c *Controller) TapEdge(id string) bool {
	return c.tap(KindEdge, id)
}

// TapCanvas simulates a click on the empty canvas, clearing the selection.
func (c *Controller) TapCanvas() bool {
	return c.dispatch(func(i *instance) {
		i.selected = nil
		i.renderer.Select(KindNone, "")
		i.emit(KindNone, nil)
	})
}

func (c *Controller) Selected() *Selection {
	var sel *Selection

	c.dispatch(func(i *instance) {
		if i.selected != nil {
			s := *i.selected
			sel = &s
		}
	})

	return sel
}

func (c *Controller) Viewport() Viewport {
	var v Viewport

	c.dispatch(func(i *instance) {
		v = i.viewport
	})

	return v
}

// Scene returns the mounted scene, nil when nothing runs.
func (c *Controller) Scene() *Scene {
	var s *Scene

	c.dispatch(func(i *instance) {
		s = i.scene
	})

	return s
}

func (c *Controller) tap(kind Kind, id string) bool {
	found := false

	c.dispatch(func(i *instance) {
		sel := i.selection(id)
		if sel == nil || sel.Kind != kind {
			return
		}

		i.selected = sel
		i.renderer.Select(kind, id)

		s := *sel
		i.emit(kind, &s)

		found = true
	})

	return found
}

// dispatch runs fn on the event loop of the current instance and waits for it.
func (c *Controller) dispatch(fn func(*instance)) bool {
	c.mu.Lock()
	i := c.instance
	c.mu.Unlock()

	if i == nil {
		return false
	}

	done := make(chan struct{})
	event := func() {
		defer close(done)
		fn(i)
	}

	select {
	case i.events <- event:
	case <-i.doneCh:
		return false
	}

	<-done

	return true
}

func (i *instance) loop() {
	defer close(i.doneCh)

	for {
		select {
		case event := <-i.events:
			event()
		case <-i.stopCh:
			i.renderer.Unmount()
			return
		}
	}
}

func (i *instance) stop() {
	close(i.stopCh)
	<-i.doneCh
}

func (i *instance) emit(kind Kind, sel *Selection) {
	if i.callback != nil {
		i.callback(kind, sel)
	}
}

func (i *instance) selection(id string) *Selection {
	g := i.scene.Graph

	if n, ok := g.node(id); ok {
		return &Selection{Kind: KindNode, ID: n.ID, Label: n.Label, IP: n.IP}
	}

	if e, ok := g.edge(id); ok {
		return &Selection{
			Kind:            KindEdge,
			ID:              e.ID,
			Label:           e.Label,
			SourceInterface: e.SourcePort,
			TargetInterface: e.TargetPort,
		}
	}

	return nil
}

func newGraph(nodes []Node, edges []Edge) (*Graph, error) {
	ids := make(map[string]bool, len(nodes)+len(edges))
	nodeIDs := make(map[string]bool, len(nodes))

	for _, n := range nodes {
		if ids[n.ID] {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateElement, n.ID)
		}
		ids[n.ID] = true
		nodeIDs[n.ID] = true
	}

	for _, e := range edges {
		if ids[e.ID] {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateElement, e.ID)
		}
		ids[e.ID] = true

		if !nodeIDs[e.Source] || !nodeIDs[e.Target] {
			return nil, fmt.Errorf("%w: %s", ErrDanglingEdge, e.ID)
		}
	}

	return &Graph{
		Nodes: append([]Node{}, nodes...),
		Edges: append([]Edge{}, edges...),
	}, nil
}

func NewController(renderers RendererFactory, logger logging.LoggerInterface) *Controller {
	c := new(Controller)

	c.renderers = renderers
	if c.renderers == nil {
		c.renderers = NoopRendererFactory
	}
	c.logger = logger

	return c
}
