// Package builder turns a configuration — radius, optional seed, optional
// start position, optional algorithm — into a finished, carved maze.
//
// It has two responsibilities:
//
//   - Shaping: ShapeHexagon lays out the fully walled hexagonal tile grid
//     for a radius, 3r²+3r+1 tiles with every wall closed.
//   - Orchestration: MazeBuilder validates the configuration, shapes the
//     grid, and invokes the generator, surfacing configuration problems as
//     sentinel errors before any carving happens.
//
// Usage:
//
//	m, err := builder.New().
//		WithRadius(5).
//		WithSeed(12345).
//		WithStart(hexgrid.At(1, -1)).
//		Build()
//
// Contract (strict):
//
//   - Build without WithRadius fails with ErrNoRadius; a negative radius
//     fails with ErrNegativeRadius.
//   - A start position supplied via WithStart must exist in the shaped
//     grid, otherwise Build fails with ErrInvalidStartPosition. The
//     generator itself never re-checks this; rejecting bad configuration
//     is the builder's job.
//   - Configuration errors are terminal to the build attempt — there are
//     no retry semantics; fix the configuration and build again.
//   - Determinism: the same radius, start and seed always build the same
//     maze, bit for bit.
//
// Complexity: shaping and carving are both O(n) in the tile count, so
// Build is O(r²) for radius r.
package builder
