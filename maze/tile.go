package maze

import "github.com/katalvlaran/hexmaze/hexgrid"

// Tile is one grid cell: its hex position plus its wall set.
// Tiles are created fully enclosed and live for the lifetime of the maze;
// only their walls change after construction.
type Tile struct {
	pos   hexgrid.Hex
	walls Walls
}

// newTile returns a fully enclosed tile at pos.
func newTile(pos hexgrid.Hex) *Tile {
	return &Tile{pos: pos, walls: AllWalls()}
}

// Position returns the tile's hex position. It always equals the key the
// tile is indexed under in its maze.
func (t *Tile) Position() hexgrid.Hex { return t.pos }

// Walls returns a copy of the tile's wall set. Mutate walls through the
// owning Maze (AddWall/RemoveWall/ToggleWall) so both sides of an edge
// stay in step.
func (t *Tile) Walls() Walls { return t.walls }
