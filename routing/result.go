// Package routing implements the pruning policy and the bidirectional
// shortest-path search engine: classic, pruned, and multi-endpoint query
// variants sharing one meet-in-the-middle Dijkstra core over edge-to-edge
// shortcuts, with direction-dependent admissibility.
package routing

// Result is the outcome of a shortest-path query.
type Result struct {
	Distance  float64
	Path      []uint32
	Reachable bool
}

// unreachable is the canonical failure result: distance -1, empty path.
func unreachable() Result {
	return Result{Distance: -1, Path: nil, Reachable: false}
}
