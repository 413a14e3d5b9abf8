// Package hexmaze generates hexagonal-grid perfect mazes and answers
// shortest-path queries over them.
//
// 🚀 What is hexmaze?
//
//	A small, deterministic library that brings together:
//		• hexgrid/   — axial hex coordinates, the six edge directions, distance
//		• maze/      — bit-flag wall sets, tiles, the position→tile container
//		• generator/ — randomized depth-first carving (seeded, reproducible)
//		• astar/     — A* shortest paths over the open-wall adjacency
//		• builder/   — fluent radius/seed/start configuration + hexagon shaper
//		• layout/    — world-position conversion and an R-tree tile index
//
// ✨ Why choose hexmaze?
//
//   - Perfect mazes – the carved open-wall graph is always a spanning tree:
//     exactly one simple path between any two reachable tiles
//   - Deterministic – same radius, start and seed ⇒ bit-identical mazes
//     and byte-identical shortest paths, run after run
//   - Strict contracts – wall edits at absent coordinates return
//     maze.ErrInvalidCoordinate instead of silently doing nothing
//   - Pure algorithms – no goroutines, no I/O, no hidden state; concurrent
//     read-only queries against a finished maze are safe
//
// Quick example:
//
//	m, err := builder.New().
//		WithRadius(5).
//		WithSeed(12345).
//		Build()
//	if err != nil {
//		log.Fatal(err)
//	}
//	path, _ := astar.FindPath(m, hexgrid.At(0, 0), hexgrid.At(2, 0))
//	fmt.Println(path)
//
// See each subpackage's doc.go for contracts, complexity and error
// semantics.
package hexmaze
