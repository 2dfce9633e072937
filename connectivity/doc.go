// Package connectivity computes unweighted shortest-path distances over the
// door-connection graph of an accepted dungeon layout.
//
// What
//
//   - Link: an undirected edge between two door cells (one per accepted
//     connection, plus intra-piece links supplied by the caller).
//   - Distance: breadth-first edge-count distance between two cells.
//
// Why
//
//	The search engine's leaf check requires the origin→exit distance to meet
//	a configured minimum. That check must be a pure, restartable query over
//	the current placement stack: Distance builds a transient adjacency view
//	and mutates nothing the caller owns.
//
// Complexity (V = distinct cells, E = links)
//
//   - Time:   O(V + E)
//   - Memory: O(V + E) for the adjacency view and visited set
//
// Errors
//
//   - ErrNoPath  the goal cell is unreachable from the start cell.
package connectivity
