// SPDX-License-Identifier: MIT
//
// File: flow.go
// Role: Nominal max-flow and reachability queries used during System
// assembly and by the NSGA-II plan evaluator.
package system

import "github.com/mikiurbi/net-flow-opt/maxflow"

// RegularFlow computes the maximum flow from source to sink with every
// component active — the baseline throughput against which lost flow is
// measured.
//
// Complexity: one Dinic max-flow over the edge-capacitated graph; see
// package maxflow.
func (s *System) RegularFlow() (float64, error) {
	g, err := s.EdgeCapacitated()
	if err != nil {
		return 0, err
	}

	return maxflow.Dinic(g, s.source, s.sink, maxflow.DefaultOptions())
}

// Reachable reports whether sink is reachable from source in the nominal
// (all-components-active) topology, via a plain BFS over the
// edge-capacitated graph's positive-capacity arcs. System construction
// should call this once to fail fast on a disconnected topology rather
// than silently returning zero flow for every generation.
//
// Complexity: O(V+E).
func (s *System) Reachable() (bool, error) {
	g, err := s.EdgeCapacitated()
	if err != nil {
		return false, err
	}

	visited := map[string]bool{s.source: true}
	queue := []string{s.source}
	for i := 0; i < len(queue); i++ {
		u := queue[i]
		if u == s.sink {
			return true, nil
		}
		for _, v := range g.NeighborsWithCapacity(u) {
			if !visited[v] {
				visited[v] = true
				queue = append(queue, v)
			}
		}
	}

	return visited[s.sink], nil
}

// Validate checks that source and sink are distinct and that the sink is
// reachable from the source in the nominal topology. Callers should invoke
// this once after assembling a System and before handing it to the
// optimizer.
func (s *System) Validate() error {
	if s.source == s.sink {
		return ErrSourceEqualsSink
	}
	ok, err := s.Reachable()
	if err != nil {
		return err
	}
	if !ok {
		return ErrSinkUnreachable
	}

	return nil
}
