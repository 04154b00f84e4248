// Package core implements the native edge store backing foldgraph programs.
package core

import (
	"errors"
	"fmt"
)

// Sentinel errors for graph construction.
var (
	// ErrNoNodes is returned when a graph is created with zero nodes.
	ErrNoNodes = errors.New("core: graph must have at least one node")

	// ErrNodeOutOfRange is returned when an edge endpoint is not < NodeCount.
	ErrNodeOutOfRange = errors.New("core: node index out of range")
)

// initialEdgeCapacity sizes the edge slice of a fresh graph.
const initialEdgeCapacity = 16

// Edge is a directed weighted edge. Weights are small positive integers;
// the generated programs treat 999999 as the unreachable sentinel, so
// meaningful weights must stay well below it.
type Edge struct {
	Src    uint32
	Dst    uint32
	Weight uint32
}

// Graph is a growable multiset of directed weighted edges over nodes
// 0..n-1. The zero value is not usable; construct with NewGraph.
type Graph struct {
	nodes uint32
	edges []Edge
}

// NewGraph creates a graph with n nodes (indexed 0..n-1) and no edges.
// Returns ErrNoNodes if n == 0.
func NewGraph(n uint32) (*Graph, error) {
	if n == 0 {
		return nil, ErrNoNodes
	}

	return &Graph{
		nodes: n,
		edges: make([]Edge, 0, initialEdgeCapacity),
	}, nil
}

// NodeCount returns n, the number of nodes.
func (g *Graph) NodeCount() uint32 { return g.nodes }

// EdgeCount returns the number of directed edges added so far.
func (g *Graph) EdgeCount() int { return len(g.edges) }

// AddEdge appends the directed edge src→dst with the given weight.
// Parallel edges and self-loops are permitted (the store is a multiset).
// Returns ErrNodeOutOfRange if either endpoint is >= NodeCount.
func (g *Graph) AddEdge(src, dst, weight uint32) error {
	if src >= g.nodes || dst >= g.nodes {
		return fmt.Errorf("%w: edge (%d,%d) on %d-node graph", ErrNodeOutOfRange, src, dst, g.nodes)
	}
	g.edges = append(g.edges, Edge{Src: src, Dst: dst, Weight: weight})

	return nil
}

// AddBiedge adds both directions a→b and b→a with the same weight.
// If the second insertion fails the first remains in place; it is not
// rolled back (both endpoints are validated identically, so in practice
// the two insertions fail or succeed together).
func (g *Graph) AddBiedge(a, b, weight uint32) error {
	if err := g.AddEdge(a, b, weight); err != nil {
		return err
	}

	return g.AddEdge(b, a, weight)
}

// Edges returns a copy of the edge multiset in insertion order.
func (g *Graph) Edges() []Edge {
	out := make([]Edge, len(g.edges))
	copy(out, g.edges)

	return out
}
