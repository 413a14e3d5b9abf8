package maze_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/hexmaze/hexgrid"
	"github.com/katalvlaran/hexmaze/maze"
)

func TestWalls_Constructors(t *testing.T) {
	assert.True(t, maze.AllWalls().IsEnclosed())
	assert.Equal(t, 6, maze.AllWalls().Count())
	assert.Equal(t, uint8(0b11_1111), maze.AllWalls().Bits())

	assert.True(t, maze.NoWalls().IsEmpty())
	assert.Equal(t, uint8(0), maze.NoWalls().Bits())

	var zero maze.Walls
	assert.True(t, zero.IsEmpty(), "zero value has no walls")
}

func TestWallsOf(t *testing.T) {
	w := maze.WallsOf(hexgrid.East, hexgrid.West)
	assert.Equal(t, 2, w.Count())
	assert.True(t, w.Contains(hexgrid.East))
	assert.True(t, w.Contains(hexgrid.West))
	assert.False(t, w.Contains(hexgrid.NorthEast))

	// Bit i corresponds to direction index i.
	assert.Equal(t, uint8(1<<hexgrid.East.Index()|1<<hexgrid.West.Index()), w.Bits())

	// Duplicates collapse.
	assert.Equal(t, maze.WallsOf(hexgrid.East), maze.WallsOf(hexgrid.East, hexgrid.East))

	// All six directions reproduce the closed box.
	assert.Equal(t, maze.AllWalls(), maze.WallsOf(hexgrid.Directions[:]...))
}

func TestWalls_InsertRemove(t *testing.T) {
	w := maze.NoWalls()

	assert.False(t, w.Insert(hexgrid.East), "insert into empty reports absent")
	assert.True(t, w.Insert(hexgrid.East), "second insert reports present")
	assert.Equal(t, 1, w.Count(), "insert is idempotent")

	assert.True(t, w.Remove(hexgrid.East))
	assert.False(t, w.Remove(hexgrid.East), "removing an absent wall is a no-op")
	assert.Equal(t, 0, w.Count())
}

func TestWalls_Toggle(t *testing.T) {
	w := maze.NoWalls()
	assert.False(t, w.Toggle(hexgrid.NorthWest))
	assert.True(t, w.Contains(hexgrid.NorthWest))
	assert.True(t, w.Toggle(hexgrid.NorthWest))
	assert.False(t, w.Contains(hexgrid.NorthWest))
}

func TestWalls_Fill(t *testing.T) {
	w := maze.WallsOf(hexgrid.East)
	w.Fill(maze.WallsOf(hexgrid.West, hexgrid.SouthEast))

	assert.Equal(t, 3, w.Count())
	assert.True(t, w.Contains(hexgrid.East), "fill preserves existing walls")
	assert.True(t, w.Contains(hexgrid.West))
	assert.True(t, w.Contains(hexgrid.SouthEast))
}

func TestWalls_EnclosedTransitions(t *testing.T) {
	w := maze.AllWalls()
	assert.True(t, w.IsEnclosed())

	w.Remove(hexgrid.East)
	assert.False(t, w.IsEnclosed())
	assert.Equal(t, 5, w.Count())

	w.Insert(hexgrid.East)
	assert.True(t, w.IsEnclosed())
}
