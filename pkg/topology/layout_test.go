// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package topology

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func weight(w int) *int {
	return &w
}

func nodes(ids ...string) []Node {
	ns := make([]Node, 0, len(ids))
	for _, id := range ids {
		ns = append(ns, Node{ID: id, Label: id})
	}

	return ns
}

func edge(id, source, target string) Edge {
	return Edge{ID: id, Source: source, Target: target}
}

func TestBreadthFirstLevels(t *testing.T) {
	g := &Graph{
		Nodes: nodes("leaf", "root", "mid"),
		Edges: []Edge{edge("e1", "root", "mid"), edge("e2", "mid", "leaf")},
	}

	l := BreadthFirst(g)

	require.Less(t, l.Positions["root"].Y, l.Positions["mid"].Y)
	require.Less(t, l.Positions["mid"].Y, l.Positions["leaf"].Y)
	require.Equal(t, l.Positions["root"].X, l.Positions["leaf"].X, "a chain is a single column")

	for _, p := range l.Positions {
		require.GreaterOrEqual(t, p.X, LayoutPadding)
		require.GreaterOrEqual(t, p.Y, LayoutPadding)
		require.LessOrEqual(t, p.X, l.Width-LayoutPadding)
		require.LessOrEqual(t, p.Y, l.Height-LayoutPadding)
	}
}

func TestBreadthFirstCycleUsesFirstNode(t *testing.T) {
	g := &Graph{
		Nodes: nodes("a", "b", "c"),
		Edges: []Edge{edge("e1", "a", "b"), edge("e2", "b", "c"), edge("e3", "c", "a")},
	}

	l := BreadthFirst(g)

	require.Less(t, l.Positions["a"].Y, l.Positions["b"].Y)
	require.Less(t, l.Positions["b"].Y, l.Positions["c"].Y)
}

func TestBreadthFirstSiblingsDoNotOverlap(t *testing.T) {
	g := &Graph{
		Nodes: nodes("root", "x", "y", "z"),
		Edges: []Edge{edge("e1", "root", "x"), edge("e2", "root", "y"), edge("e3", "root", "z")},
	}

	l := BreadthFirst(g)

	xs := []float64{l.Positions["x"].X, l.Positions["y"].X, l.Positions["z"].X}
	require.Less(t, xs[0], xs[1])
	require.Less(t, xs[1], xs[2])
	require.InDelta(t, (xs[0]+xs[2])/2, l.Positions["root"].X, 0.001, "the root sits above the middle child")

	spacing := xs[1] - xs[0]
	require.Greater(t, spacing, nodeSize*2, "siblings keep generous spacing")
}

func TestBreadthFirstSortWeight(t *testing.T) {
	ns := nodes("root", "heavy", "light")
	ns[1].SortWeight = weight(5)
	ns[2].SortWeight = weight(1)

	g := &Graph{
		Nodes: ns,
		Edges: []Edge{edge("e1", "root", "heavy"), edge("e2", "root", "light")},
	}

	l := BreadthFirst(g)
	require.Less(t, l.Positions["light"].X, l.Positions["heavy"].X)

	ns[2].SortWeight = nil
	l = BreadthFirst(g)
	require.Less(t, l.Positions["heavy"].X, l.Positions["light"].X, "without weights discovery order is kept")
}

func TestBreadthFirstComponentsSideBySide(t *testing.T) {
	g := &Graph{
		Nodes: nodes("a1", "b1", "a2", "b2", "lonely"),
		Edges: []Edge{edge("e1", "a1", "a2"), edge("e2", "b1", "b2")},
	}

	l := BreadthFirst(g)

	require.Less(t, l.Positions["a1"].X, l.Positions["b1"].X)
	require.Less(t, l.Positions["b1"].X, l.Positions["lonely"].X)
	require.Equal(t, l.Positions["a1"].Y, l.Positions["lonely"].Y)
	require.Len(t, l.Positions, 5)
}

func TestLayoutCenter(t *testing.T) {
	g := &Graph{Nodes: nodes("a", "b"), Edges: []Edge{edge("e1", "a", "b")}}
	l := BreadthFirst(g)

	c, ok := l.Center(g, "e1")
	require.True(t, ok)
	require.Equal(t, (l.Positions["a"].Y+l.Positions["b"].Y)/2, c.Y)

	_, ok = l.Center(g, "missing")
	require.False(t, ok)
}
