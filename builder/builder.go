package builder

import (
	"fmt"

	"github.com/katalvlaran/hexmaze/generator"
	"github.com/katalvlaran/hexmaze/hexgrid"
	"github.com/katalvlaran/hexmaze/maze"
)

// MazeBuilder is a fluent configuration object for building carved mazes.
// The zero value is ready to use; every WithX method returns the builder
// for chaining. Radius is the only required setting.
type MazeBuilder struct {
	radius    int
	hasRadius bool
	seed      uint64
	hasSeed   bool
	start     hexgrid.Hex
	hasStart  bool
	algorithm generator.Algorithm
}

// New returns a MazeBuilder with default settings: no radius, no seed
// (non-reproducible generation), start at the origin, RecursiveBacktrack.
func New() *MazeBuilder {
	return &MazeBuilder{}
}

// WithRadius sets the maze radius: the number of tiles from the center to
// the edge of the hexagon, not counting the center tile. Required.
func (b *MazeBuilder) WithRadius(radius int) *MazeBuilder {
	b.radius = radius
	b.hasRadius = true

	return b
}

// WithSeed sets the random seed. The same radius, start and seed always
// build the same maze; without a seed, successive builds differ.
func (b *MazeBuilder) WithSeed(seed uint64) *MazeBuilder {
	b.seed = seed
	b.hasSeed = true

	return b
}

// WithStart sets the tile the carving starts from. It must exist in the
// shaped grid or Build fails with ErrInvalidStartPosition.
func (b *MazeBuilder) WithStart(start hexgrid.Hex) *MazeBuilder {
	b.start = start
	b.hasStart = true

	return b
}

// WithAlgorithm selects the carving algorithm. Defaults to
// generator.RecursiveBacktrack, currently the sole variant.
func (b *MazeBuilder) WithAlgorithm(a generator.Algorithm) *MazeBuilder {
	b.algorithm = a

	return b
}

// Build shapes the hexagonal grid, validates the configuration and carves
// the maze.
//
// Errors: ErrNoRadius when no radius was set, ErrNegativeRadius for a
// negative radius, ErrInvalidStartPosition when the start tile is outside
// the shaped grid, and generator errors wrapped with build context.
func (b *MazeBuilder) Build() (*maze.Maze, error) {
	if !b.hasRadius {
		return nil, ErrNoRadius
	}
	if b.radius < 0 {
		return nil, fmt.Errorf("%w: %d", ErrNegativeRadius, b.radius)
	}

	m := ShapeHexagon(b.radius)

	if b.hasStart && !m.Contains(b.start) {
		return nil, fmt.Errorf("%w: %v", ErrInvalidStartPosition, b.start)
	}

	opts := []generator.Option{
		generator.WithStart(b.start),
		generator.WithAlgorithm(b.algorithm),
	}
	if b.hasSeed {
		opts = append(opts, generator.WithSeed(b.seed))
	}
	if err := generator.Generate(m, opts...); err != nil {
		return nil, fmt.Errorf("builder: %w", err)
	}

	return m, nil
}
