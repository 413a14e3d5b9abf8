package builder

import (
	"github.com/katalvlaran/hexmaze/hexgrid"
	"github.com/katalvlaran/hexmaze/maze"
)

// ShapeHexagon returns the fully walled hexagonal tile layout of the given
// radius, centered on the origin: every hex at distance ≤ radius, each
// with all six walls closed. Radius 0 yields the single origin tile;
// radius r yields 3r²+3r+1 tiles. A negative radius yields an empty maze.
//
// Complexity: O(r²) time and space.
func ShapeHexagon(radius int) *maze.Maze {
	if radius < 0 {
		return maze.New()
	}

	m := maze.NewWithCapacity(3*radius*radius + 3*radius + 1)
	for q := -radius; q <= radius; q++ {
		r1 := max(-radius, -q-radius)
		r2 := min(radius, -q+radius)
		for r := r1; r <= r2; r++ {
			m.Insert(hexgrid.At(q, r))
		}
	}

	return m
}
