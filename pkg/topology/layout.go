// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package topology

import (
	"sort"
)

const (
	LayoutPadding       = 100.0
	LayoutSpacingFactor = 2.6

	nodeSize       = 55.0
	labelMaxWidth  = 80.0
	labelLineSize  = 14.0
	labelMarginTop = 15.0
)

type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Layout holds the position of every node and the size of the drawing.
type Layout struct {
	Positions map[string]Point `json:"positions"`
	Width     float64          `json:"width"`
	Height    float64          `json:"height"`
}

// Center returns the position of a node, or the midpoint of an edge's endpoints.
func (l *Layout) Center(g *Graph, id string) (Point, bool) {
	if p, ok := l.Positions[id]; ok {
		return p, true
	}

	e, ok := g.edge(id)
	if !ok {
		return Point{}, false
	}

	s, t := l.Positions[e.Source], l.Positions[e.Target]

	return Point{X: (s.X + t.X) / 2, Y: (s.Y + t.Y) / 2}, true
}

// BreadthFirst lays the graph out in levels following edge direction.
// Roots are the nodes without incoming edges in input order, a component where
// every node has one is rooted at its first node. Components are placed side by
// side and siblings are ordered by SortWeight when every one of them carries it.
func BreadthFirst(g *Graph) *Layout {
	index := make(map[string]int, len(g.Nodes))
	for i, n := range g.Nodes {
		index[n.ID] = i
	}

	out := make([][]int, len(g.Nodes))
	in := make([]int, len(g.Nodes))
	adj := make([][]int, len(g.Nodes))
	for _, e := range g.Edges {
		s, okS := index[e.Source]
		t, okT := index[e.Target]
		if !okS || !okT || s == t {
			continue
		}

		out[s] = append(out[s], t)
		in[t]++
		adj[s] = append(adj[s], t)
		adj[t] = append(adj[t], s)
	}

	cell := cellSize(g)
	l := &Layout{Positions: make(map[string]Point, len(g.Nodes))}

	offset := 0.0
	depth := 0
	for _, component := range components(len(g.Nodes), adj) {
		levels := levelsOf(g, component, out, in)

		columns := 0
		for _, level := range levels {
			columns = max(columns, len(level))
		}

		for d, level := range levels {
			shift := float64(columns-len(level)) / 2
			for i, n := range level {
				l.Positions[g.Nodes[n].ID] = Point{
					X: LayoutPadding + offset + (shift+float64(i)+0.5)*cell.X,
					Y: LayoutPadding + (float64(d)+0.5)*cell.Y,
				}
			}
		}

		offset += float64(columns) * cell.X
		depth = max(depth, len(levels))
	}

	l.Width = 2*LayoutPadding + offset
	l.Height = 2*LayoutPadding + float64(depth)*cell.Y

	return l
}

func cellSize(g *Graph) Point {
	lines := 1
	for _, n := range g.Nodes {
		if n.IP != "" {
			lines = 2
			break
		}
	}

	w := max(nodeSize, labelMaxWidth)
	h := nodeSize + labelMarginTop + float64(lines)*labelLineSize

	return Point{X: w * LayoutSpacingFactor, Y: h * LayoutSpacingFactor}
}

// components groups node indexes by undirected connectivity, in input order.
func components(n int, adj [][]int) [][]int {
	seen := make([]bool, n)
	var groups [][]int

	for i := 0; i < n; i++ {
		if seen[i] {
			continue
		}

		group := []int{}
		queue := []int{i}
		seen[i] = true
		for len(queue) > 0 {
			cur := queue[0]
			queue = queue[1:]
			group = append(group, cur)

			for _, next := range adj[cur] {
				if !seen[next] {
					seen[next] = true
					queue = append(queue, next)
				}
			}
		}

		sort.Ints(group)
		groups = append(groups, group)
	}

	return groups
}

func levelsOf(g *Graph, component []int, out [][]int, in []int) [][]int {
	var roots []int
	for _, n := range component {
		if in[n] == 0 {
			roots = append(roots, n)
		}
	}
	if len(roots) == 0 {
		roots = []int{component[0]}
	}

	depth := make(map[int]int, len(component))
	var order []int

	visit := func(starts []int) {
		queue := make([]int, 0, len(starts))
		for _, r := range starts {
			if _, ok := depth[r]; ok {
				continue
			}
			depth[r] = 0
			order = append(order, r)
			queue = append(queue, r)
		}

		for len(queue) > 0 {
			cur := queue[0]
			queue = queue[1:]

			for _, next := range out[cur] {
				if _, ok := depth[next]; ok {
					continue
				}
				depth[next] = depth[cur] + 1
				order = append(order, next)
				queue = append(queue, next)
			}
		}
	}

	visit(roots)

	// nodes only reachable against edge direction start their own tree
	for _, n := range component {
		if _, ok := depth[n]; !ok {
			visit([]int{n})
		}
	}

	var levels [][]int
	for _, n := range order {
		d := depth[n]
		for len(levels) <= d {
			levels = append(levels, nil)
		}
		levels[d] = append(levels[d], n)
	}

	for _, level := range levels {
		if !weighted(g, level) {
			continue
		}

		sort.SliceStable(level, func(i, j int) bool {
			return *g.Nodes[level[i]].SortWeight < *g.Nodes[level[j]].SortWeight
		})
	}

	return levels
}

func weighted(g *Graph, level []int) bool {
	for _, n := range level {
		if g.Nodes[n].SortWeight == nil {
			return false
		}
	}

	return true
}
