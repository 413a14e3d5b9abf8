// Package astar finds shortest paths through a carved maze with the A*
// algorithm over the open-wall adjacency.
//
// Graph model:
//
//   - Nodes are maze positions. A directed edge current→neighbor exists iff
//     the neighbor tile is present and current's wall set has no wall
//     toward the neighbor's direction. Every edge costs 1.
//   - The heuristic is hexgrid.Distance, the cube-metric hex distance.
//     It is admissible and consistent for unit-cost edges, so the returned
//     path is always cost-optimal.
//
// Determinism:
//
//   - Ties among equal f-scores break FIFO: every heap push carries a
//     monotonically increasing sequence number, and neighbors are expanded
//     in direction index order. Repeated queries against an unchanged maze
//     therefore return the same path.
//
// Result semantics:
//
//   - FindPath(m, p, p) returns [p] — the zero-length path.
//   - No path (the goal is outside the start's reachable component, or
//     either endpoint has no tile) returns a nil path and a nil error;
//     absence of a path is a normal outcome, not a failure. The only error
//     is ErrNilMaze.
//   - A non-nil path starts with from, ends with to, and every consecutive
//     pair is hex-adjacent with the wall between them open.
//
// Concurrency: FindPath only reads the maze; any number of concurrent
// queries against an unchanging maze are safe.
//
// Complexity: O(n log n) time and O(n) space in the number of tiles
// explored, with the lazy-decrease-key heap strategy (stale entries are
// pushed and skipped rather than re-keyed in place).
package astar
