package hexgrid_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/hexmaze/hexgrid"
)

func TestHex_S(t *testing.T) {
	cases := []struct {
		h    hexgrid.Hex
		want int
	}{
		{hexgrid.At(0, 0), 0},
		{hexgrid.At(1, -1), 0},
		{hexgrid.At(2, 0), -2},
		{hexgrid.At(-3, 1), 2},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, tc.h.S(), "S() of %v", tc.h)
		assert.Zero(t, tc.h.Q+tc.h.R+tc.h.S(), "cube invariant of %v", tc.h)
	}
}

func TestHex_AddSub(t *testing.T) {
	a := hexgrid.At(2, -1)
	b := hexgrid.At(-1, 3)
	assert.Equal(t, hexgrid.At(1, 2), a.Add(b))
	assert.Equal(t, a, a.Add(b).Sub(b))
}

// TestDirection_Offsets pins the direction table: index order and axial
// deltas are load-bearing for wall bits and carving determinism.
func TestDirection_Offsets(t *testing.T) {
	want := map[hexgrid.Direction]hexgrid.Hex{
		hexgrid.East:      hexgrid.At(1, 0),
		hexgrid.NorthEast: hexgrid.At(1, -1),
		hexgrid.NorthWest: hexgrid.At(0, -1),
		hexgrid.West:      hexgrid.At(-1, 0),
		hexgrid.SouthWest: hexgrid.At(-1, 1),
		hexgrid.SouthEast: hexgrid.At(0, 1),
	}
	for i, d := range hexgrid.Directions {
		assert.Equal(t, i, d.Index())
		assert.Equal(t, want[d], d.Offset(), "offset of %v", d)
	}
}

func TestDirection_Opposite(t *testing.T) {
	origin := hexgrid.At(0, 0)
	for _, d := range hexgrid.Directions {
		assert.Equal(t, d, d.Opposite().Opposite(), "%v: opposite is an involution", d)
		assert.NotEqual(t, d, d.Opposite())
		// Stepping out and back along the opposite edge returns home.
		assert.Equal(t, origin, origin.Neighbor(d).Neighbor(d.Opposite()))
	}
}

func TestHex_Neighbors(t *testing.T) {
	h := hexgrid.At(2, -3)
	nbs := h.Neighbors()
	for i, d := range hexgrid.Directions {
		assert.Equal(t, h.Neighbor(d), nbs[i])
		assert.Equal(t, 1, hexgrid.Distance(h, nbs[i]), "neighbor along %v is one step away", d)
	}
}

func TestDistance(t *testing.T) {
	cases := []struct {
		name string
		a, b hexgrid.Hex
		want int
	}{
		{"Self", hexgrid.At(0, 0), hexgrid.At(0, 0), 0},
		{"Adjacent", hexgrid.At(0, 0), hexgrid.At(1, 0), 1},
		{"SameAxis", hexgrid.At(0, 0), hexgrid.At(3, 0), 3},
		{"Diagonalish", hexgrid.At(0, 0), hexgrid.At(2, -1), 2},
		{"Mixed", hexgrid.At(-2, 1), hexgrid.At(3, -1), 5},
		{"Symmetric", hexgrid.At(3, -1), hexgrid.At(-2, 1), 5},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, hexgrid.Distance(tc.a, tc.b))
		})
	}
}

// TestDistance_TriangleInequality spot-checks metric consistency, which the
// A* heuristic relies on.
func TestDistance_TriangleInequality(t *testing.T) {
	a := hexgrid.At(-2, 3)
	c := hexgrid.At(4, -1)
	for _, d := range hexgrid.Directions {
		b := a.Neighbor(d)
		assert.LessOrEqual(t, hexgrid.Distance(a, c), 1+hexgrid.Distance(b, c))
	}
}

func TestDirection_String(t *testing.T) {
	assert.Equal(t, "East", hexgrid.East.String())
	assert.Equal(t, "SouthWest", hexgrid.SouthWest.String())
}
