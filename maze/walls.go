package maze

import (
	"math/bits"

	"github.com/katalvlaran/hexmaze/hexgrid"
)

// wallsAll is the mask with all six wall bits set.
const wallsAll = 0b11_1111

// Walls is the set of boundary walls of one hexagonal tile, packed as the
// low 6 bits of a byte (bit i = wall toward hexgrid direction index i).
// Only the low 6 bits are ever meaningful. The zero value has no walls;
// use AllWalls for a fully enclosed tile.
//
// Walls doubles as the wall-mask value for bulk operations: build one with
// WallsOf and apply it with Fill.
type Walls uint8

// AllWalls returns a wall set with all six walls present (a closed box).
func AllWalls() Walls { return wallsAll }

// NoWalls returns a wall set with no walls present.
func NoWalls() Walls { return 0 }

// WallsOf returns a wall set containing exactly the given directions.
// Duplicates are harmless.
func WallsOf(dirs ...hexgrid.Direction) Walls {
	var w Walls
	for _, d := range dirs {
		w |= bit(d)
	}

	return w
}

// bit returns the single-bit mask for direction d.
func bit(d hexgrid.Direction) Walls { return 1 << uint(d.Index()) }

// Insert sets the wall toward d and reports whether it was already present.
func (w *Walls) Insert(d hexgrid.Direction) bool {
	was := w.Contains(d)
	*w |= bit(d)

	return was
}

// Remove clears the wall toward d and reports whether it was present.
// Removing an absent wall is a no-op that returns false.
func (w *Walls) Remove(d hexgrid.Direction) bool {
	was := w.Contains(d)
	*w &^= bit(d)

	return was
}

// Toggle flips the wall toward d and reports whether it was present before.
func (w *Walls) Toggle(d hexgrid.Direction) bool {
	was := w.Contains(d)
	*w ^= bit(d)

	return was
}

// Fill ORs every wall of mask into w, preserving existing walls.
func (w *Walls) Fill(mask Walls) {
	*w |= mask & wallsAll
}

// Contains reports whether the wall toward d is present.
func (w Walls) Contains(d hexgrid.Direction) bool { return w&bit(d) != 0 }

// Count returns the number of walls present (0–6).
func (w Walls) Count() int { return bits.OnesCount8(uint8(w)) }

// IsEmpty reports whether no walls are present.
func (w Walls) IsEmpty() bool { return w == 0 }

// IsEnclosed reports whether all six walls are present.
func (w Walls) IsEnclosed() bool { return w&wallsAll == wallsAll }

// Bits returns the raw bit representation (low 6 bits meaningful).
func (w Walls) Bits() uint8 { return uint8(w) }
