package astar_test

import (
	"fmt"

	"github.com/katalvlaran/hexmaze/astar"
	"github.com/katalvlaran/hexmaze/builder"
	"github.com/katalvlaran/hexmaze/hexgrid"
)

// A perfect maze connects every pair of tiles, so a query between two
// tiles always finds a path; it starts at from and ends at to.
func ExampleFindPath() {
	m, _ := builder.New().WithRadius(5).WithSeed(12345).Build()

	from := hexgrid.At(0, 0)
	to := hexgrid.At(2, 0)
	path, _ := astar.FindPath(m, from, to)

	fmt.Println(path[0] == from)
	fmt.Println(path[len(path)-1] == to)
	// Output:
	// true
	// true
}

// The path from a tile to itself is the zero-length path.
func ExampleFindPath_self() {
	m, _ := builder.New().WithRadius(3).WithSeed(7).Build()

	path, _ := astar.FindPath(m, hexgrid.At(1, -1), hexgrid.At(1, -1))
	fmt.Println(path)
	// Output:
	// [{1 -1}]
}

// Absence of a path is a nil result, not an error.
func ExampleFindPath_unreachable() {
	m, _ := builder.New().WithRadius(2).WithSeed(7).Build()

	path, err := astar.FindPath(m, hexgrid.At(0, 0), hexgrid.At(50, 50))
	fmt.Println(path, err)
	// Output:
	// [] <nil>
}
