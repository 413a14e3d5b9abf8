// Package generator carves perfect mazes into a fully walled maze.Maze
// using randomized depth-first search (the "recursive backtracker").
//
// Algorithm:
//
//   - Starting from the configured start tile, mark it visited, shuffle the
//     six edge directions (Fisher–Yates via the run's RNG — the sole source
//     of maze variety), and walk them in shuffled order. For each direction
//     whose neighbor tile exists and is unvisited, open the wall on both
//     sides and descend into the neighbor; when every neighbor is exhausted,
//     backtrack one level.
//   - The implementation keeps an explicit stack of (position, shuffled
//     directions, cursor) frames instead of recursing, so memory is bounded
//     by the longest carved branch and large radii cannot exhaust the
//     goroutine stack.
//
// Post-conditions (for a maze whose tiles are fully connected before
// carving, as the builder's hexagon shaper guarantees):
//
//   - Every tile reachable from the start is visited exactly once.
//   - The open-wall graph is a spanning tree of the reachable tiles:
//     tile count − 1 open undirected edges, no cycles, wall symmetry on
//     every opened edge.
//
// Determinism:
//
//   - Same maze shape, same start, same seed ⇒ bit-identical wall sets.
//     WithSeed(s) derives the RNG as rand.New(rand.NewSource(s)); WithRand
//     lets several runs share one stream. Without either, the RNG is
//     time-seeded and successive runs differ.
//
// Error semantics:
//
//   - Generation itself cannot fail: carving a non-empty maze always
//     terminates and always succeeds, and an empty maze is a no-op.
//     The only errors are ErrNilMaze and ErrUnknownAlgorithm, both caller
//     mistakes. A start position outside the maze is the caller's to
//     reject (builder.Build does); Generate assumes a valid start and
//     simply carves nothing when the start has no tile.
//
// Complexity: O(n) time and O(n) space in the tile count — each tile is
// pushed and popped at most once and each of its six directions is
// examined at most once.
package generator
