package maze

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/hexmaze/hexgrid"
)

// Maze maps hex positions to tiles. It is the graph substrate the
// generator carves and the pathfinder queries: positions are nodes, and an
// edge current→neighbor is open iff the neighbor tile exists and current's
// wall toward it is absent.
//
// Maze is not safe for concurrent mutation; see the package documentation.
type Maze struct {
	tiles map[hexgrid.Hex]*Tile
}

// New returns an empty maze.
func New() *Maze {
	return &Maze{tiles: make(map[hexgrid.Hex]*Tile)}
}

// NewWithCapacity returns an empty maze pre-sized for n tiles.
func NewWithCapacity(n int) *Maze {
	return &Maze{tiles: make(map[hexgrid.Hex]*Tile, n)}
}

// Insert creates a fully enclosed tile at pos. If a tile already existed
// there it is evicted and returned (replace semantics); otherwise Insert
// returns nil.
func (m *Maze) Insert(pos hexgrid.Hex) *Tile {
	prev := m.tiles[pos]
	m.tiles[pos] = newTile(pos)

	return prev
}

// Get returns the tile at pos, or nil if no tile exists there.
func (m *Maze) Get(pos hexgrid.Hex) *Tile {
	return m.tiles[pos]
}

// Contains reports whether a tile exists at pos.
func (m *Maze) Contains(pos hexgrid.Hex) bool {
	_, ok := m.tiles[pos]

	return ok
}

// Walls returns the wall set of the tile at pos. The second result is
// false when no tile exists there.
func (m *Maze) Walls(pos hexgrid.Hex) (Walls, bool) {
	t, ok := m.tiles[pos]
	if !ok {
		return 0, false
	}

	return t.walls, true
}

// AddWall sets the wall of the tile at pos toward d and reports whether it
// was already present. Returns ErrInvalidCoordinate when pos has no tile.
func (m *Maze) AddWall(pos hexgrid.Hex, d hexgrid.Direction) (bool, error) {
	t, ok := m.tiles[pos]
	if !ok {
		return false, fmt.Errorf("%w: %v", ErrInvalidCoordinate, pos)
	}

	return t.walls.Insert(d), nil
}

// RemoveWall clears the wall of the tile at pos toward d and reports
// whether it was present. Returns ErrInvalidCoordinate when pos has no
// tile; removing an absent wall from an existing tile is a no-op that
// returns false.
func (m *Maze) RemoveWall(pos hexgrid.Hex, d hexgrid.Direction) (bool, error) {
	t, ok := m.tiles[pos]
	if !ok {
		return false, fmt.Errorf("%w: %v", ErrInvalidCoordinate, pos)
	}

	return t.walls.Remove(d), nil
}

// ToggleWall flips the wall of the tile at pos toward d and reports
// whether it was present before. Returns ErrInvalidCoordinate when pos has
// no tile.
func (m *Maze) ToggleWall(pos hexgrid.Hex, d hexgrid.Direction) (bool, error) {
	t, ok := m.tiles[pos]
	if !ok {
		return false, fmt.Errorf("%w: %v", ErrInvalidCoordinate, pos)
	}

	return t.walls.Toggle(d), nil
}

// Open reports whether the edge from pos along d is traversable: the
// neighbor tile exists and pos's wall toward d is absent.
func (m *Maze) Open(pos hexgrid.Hex, d hexgrid.Direction) bool {
	t, ok := m.tiles[pos]
	if !ok || t.walls.Contains(d) {
		return false
	}

	return m.Contains(pos.Neighbor(d))
}

// Len returns the number of tiles in the maze.
func (m *Maze) Len() int { return len(m.tiles) }

// IsEmpty reports whether the maze has no tiles.
func (m *Maze) IsEmpty() bool { return len(m.tiles) == 0 }

// Tiles returns the internal position→tile map for read-only iteration.
// Iteration order is unspecified. Callers must not insert into or delete
// from the returned map; mutate walls through AddWall/RemoveWall instead.
func (m *Maze) Tiles() map[hexgrid.Hex]*Tile { return m.tiles }

// Positions returns every tile position sorted by (Q, R). The stable order
// makes range-based tests and serialization deterministic.
func (m *Maze) Positions() []hexgrid.Hex {
	out := make([]hexgrid.Hex, 0, len(m.tiles))
	for pos := range m.tiles {
		out = append(out, pos)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Q != out[j].Q {
			return out[i].Q < out[j].Q
		}

		return out[i].R < out[j].R
	})

	return out
}

// Clone returns a deep copy of the maze. The copy shares nothing with the
// original; carving one leaves the other untouched.
func (m *Maze) Clone() *Maze {
	c := NewWithCapacity(len(m.tiles))
	for pos, t := range m.tiles {
		c.tiles[pos] = &Tile{pos: pos, walls: t.walls}
	}

	return c
}

// Equal reports whether m and o contain the same positions with
// bit-identical wall sets.
func (m *Maze) Equal(o *Maze) bool {
	if o == nil || len(m.tiles) != len(o.tiles) {
		return false
	}
	for pos, t := range m.tiles {
		ot, ok := o.tiles[pos]
		if !ok || ot.walls != t.walls {
			return false
		}
	}

	return true
}
