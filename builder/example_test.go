package builder_test

import (
	"fmt"

	"github.com/katalvlaran/hexmaze/builder"
	"github.com/katalvlaran/hexmaze/hexgrid"
)

// Build a seeded maze and show its size: radius 5 always yields 91 tiles.
func ExampleMazeBuilder_Build() {
	m, err := builder.New().
		WithRadius(5).
		WithSeed(12345).
		Build()
	if err != nil {
		fmt.Println("build failed:", err)
		return
	}

	fmt.Println(m.Len())
	fmt.Println(m.IsEmpty())
	// Output:
	// 91
	// false
}

// Configuration errors are sentinel values, surfaced before any carving.
func ExampleMazeBuilder_Build_noRadius() {
	_, err := builder.New().Build()
	fmt.Println(err)
	// Output:
	// builder: radius must be specified to build a maze
}

// The same radius and seed always rebuild the identical maze.
func ExampleMazeBuilder_Build_deterministic() {
	m1, _ := builder.New().WithRadius(3).WithSeed(12345).Build()
	m2, _ := builder.New().WithRadius(3).WithSeed(12345).Build()

	fmt.Println(m1.Equal(m2))
	// Output:
	// true
}

// ShapeHexagon lays out the uncarved grid: every tile fully enclosed.
func ExampleShapeHexagon() {
	m := builder.ShapeHexagon(1)
	w, _ := m.Walls(hexgrid.At(0, 0))

	fmt.Println(m.Len())
	fmt.Println(w.IsEnclosed())
	// Output:
	// 7
	// true
}
