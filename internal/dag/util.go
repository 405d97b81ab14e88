// Copyright 2024 rg0now. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dag

import (
	"fmt"
	"strings"
)

// New creates an empty graph.
func New() *Graph {
	return &Graph{index: map[string]int{}, succ: map[string][]string{}}
}

// Roots returns a roots of the DAG, i.e., the nodes without an incoming edge.
func (g *Graph) Roots() []string {
	roots := make([]string, 0, len(g.Nodes))

	for _, j := range g.Nodes {
		isRoot := true
		for _, i := range g.Nodes {
			if g.HasEdge(i, j) {
				isRoot = false
				break
			}
		}
		if isRoot {
			roots = append(roots, j)
		}
	}
	return roots
}

// TopologicalSort returns the nodes so that every node comes after all nodes with an edge to
// it. Nodes with no ordering constraint between them keep their insertion order. Returns an
// error if the graph has a cycle.
func (g *Graph) TopologicalSort() ([]string, error) {
	indeg := make(map[string]int, len(g.Nodes))
	for _, from := range g.Nodes {
		for _, to := range g.succ[from] {
			indeg[to]++
		}
	}

	queue := g.Roots()
	ret := make([]string, 0, len(g.Nodes))
	for len(queue) > 0 {
		n := queue[0]
		queue = queue[1:]
		ret = append(ret, n)

		for _, to := range g.Edges(n) {
			indeg[to]--
			if indeg[to] == 0 {
				queue = append(queue, to)
			}
		}
	}

	if len(ret) != len(g.Nodes) {
		cycle := []string{}
		for _, n := range g.Nodes {
			if indeg[n] > 0 {
				cycle = append(cycle, n)
			}
		}
		return nil, fmt.Errorf("cycle detected among nodes %s", strings.Join(cycle, ", "))
	}

	return ret, nil
}
