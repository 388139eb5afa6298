// SPDX-License-Identifier: MIT
//
// File: conversion.go
// Role: Fold per-vertex (component) capacity into a pure edge-capacitated
// graph via the classic vertex-splitting transform, so that standard
// max-flow algorithms (see package maxflow) can be reused unmodified.
package system

import "github.com/mikiurbi/net-flow-opt/maxflow"

// Unconstrained is the capacity assigned to an active component's split
// edge and to every structural edge whose capacity was not explicitly
// bounded. It stands in for "+infinity" in floating-point max-flow.
const Unconstrained = 1e18

// inName returns the vertex name used as the destination of edges that
// terminate at id within the edge-capacitated graph.
func (s *System) inName(id string) string {
	if id == s.source || id == s.sink {
		return id
	}

	return id + "_in"
}

// outName returns the vertex name used as the origin of edges that
// originate at id within the edge-capacitated graph.
func (s *System) outName(id string) string {
	if id == s.source || id == s.sink {
		return id
	}

	return id + "_out"
}

// EdgeCapacitated converts the System's node-capacitated topology into an
// edge-capacitated *maxflow.Graph: every component vertex c is split into
// c_in -> c_out carrying Unconstrained capacity (the component is active by
// default), and every structural edge u->v is rewritten as
// outName(u) -> inName(v). Callers that need to evaluate the network with
// some components offline should mutate the returned graph's split edges
// directly via MaskInactive rather than rebuilding it, per the package's
// performance contract.
//
// Complexity: O(V+E).
func (s *System) EdgeCapacitated() (*maxflow.Graph, error) {
	s.muVert.RLock()
	s.muEdge.RLock()
	defer s.muVert.RUnlock()
	defer s.muEdge.RUnlock()

	g := maxflow.NewGraph()
	g.AddVertex(s.source)
	g.AddVertex(s.sink)

	for id := range s.components {
		g.AddEdge(s.inName(id), s.outName(id), Unconstrained)
	}

	for from, edges := range s.adjacency {
		for _, e := range edges {
			cap := e.capacity
			if cap <= 0 {
				cap = Unconstrained
			}
			g.AddEdge(s.outName(from), s.inName(e.to), cap)
		}
	}

	return g, nil
}

// MaskInactive sets the split capacity of every component in inactive to 0
// and every other component back to Unconstrained, reusing the same graph
// object across calls. This is the O(N) alternative to rebuilding the
// edge-capacitated graph per timeline event.
func (s *System) MaskInactive(g *maxflow.Graph, inactive map[string]bool) {
	s.muVert.RLock()
	defer s.muVert.RUnlock()

	for id := range s.components {
		cap := Unconstrained
		if inactive[id] {
			cap = 0
		}
		g.SetCapacity(s.inName(id), s.outName(id), cap)
	}
}
