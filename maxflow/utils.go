package maxflow

// buildCapMap snapshots g's adjacency into a residual capacity map that the
// algorithms mutate in place, so that repeated calls against the same
// Graph never observe each other's residual state.
//
// Complexity: O(V+E).
func buildCapMap(g *Graph, opts Options) (map[string]map[string]float64, error) {
	cap := make(map[string]map[string]float64, len(g.adjacency))
	for u, nbrs := range g.adjacency {
		if _, ok := cap[u]; !ok {
			cap[u] = make(map[string]float64, len(nbrs))
		}
		for v, c := range nbrs {
			if c < -opts.Epsilon {
				return nil, EdgeError{From: u, To: v, Capacity: c}
			}
			if c <= opts.Epsilon {
				continue
			}
			cap[u][v] += c
			if _, ok := cap[v]; !ok {
				cap[v] = make(map[string]float64)
			}
			if _, ok := cap[v][u]; !ok {
				cap[v][u] = 0 // ensure reverse arc exists for augmentation
			}
		}
	}

	return cap, nil
}
