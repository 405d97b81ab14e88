// Copyright 2022 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package dag implements a small directed graph with a deterministic topological order. Nodes
// keep their insertion order, which is used to break ties.
package dag

import (
	"slices"
)

// Graph is a directed graph over string labels. Plan views and the collections they read are
// the nodes, an edge points from a collection to a view reading it.
type Graph struct {
	Nodes []string
	index map[string]int
	succ  map[string][]string
}

// AddNode adds a node. Returns false if the label is already present.
func (g *Graph) AddNode(label string) bool {
	if _, ok := g.index[label]; ok {
		return false
	}
	g.index[label] = len(g.Nodes)
	g.Nodes = append(g.Nodes, label)
	g.succ[label] = []string{}
	return true
}

// HasNode reports whether the label is a node.
func (g *Graph) HasNode(label string) bool {
	_, ok := g.index[label]
	return ok
}

// AddEdge adds an edge between two existing nodes. Returns false if a node is missing or the
// edge is already present.
func (g *Graph) AddEdge(from, to string) bool {
	if !g.HasNode(from) || !g.HasNode(to) || g.HasEdge(from, to) {
		return false
	}

	// successors are kept in node insertion order
	succ := g.succ[from]
	i, _ := slices.BinarySearchFunc(succ, g.index[to], func(n string, idx int) int {
		return g.index[n] - idx
	})
	g.succ[from] = slices.Insert(succ, i, to)
	return true
}

func (g *Graph) HasEdge(from, to string) bool {
	return slices.Contains(g.succ[from], to)
}

// Edges returns the successors of a node in insertion order.
func (g *Graph) Edges(from string) []string {
	return slices.Clone(g.succ[from])
}
