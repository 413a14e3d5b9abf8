package hexgrid

// Direction identifies one of the six edges of a pointy-top hexagon.
// Values carry stable indices 0–5, counter-clockwise starting East.
type Direction uint8

// The six edge directions in index order.
const (
	// East is direction 0, axial offset (+1, 0).
	East Direction = iota
	// NorthEast is direction 1, axial offset (+1, -1).
	NorthEast
	// NorthWest is direction 2, axial offset (0, -1).
	NorthWest
	// West is direction 3, axial offset (-1, 0).
	West
	// SouthWest is direction 4, axial offset (-1, +1).
	SouthWest
	// SouthEast is direction 5, axial offset (0, +1).
	SouthEast
)

// NumDirections is the number of edges of a hexagon.
const NumDirections = 6

// Directions lists all six edge directions in index order.
// Iterating this array yields a stable, deterministic neighbor order.
var Directions = [NumDirections]Direction{East, NorthEast, NorthWest, West, SouthWest, SouthEast}

// offsets maps a direction index to its axial coordinate delta.
var offsets = [NumDirections]Hex{
	{Q: +1, R: 0},  // East
	{Q: +1, R: -1}, // NorthEast
	{Q: 0, R: -1},  // NorthWest
	{Q: -1, R: 0},  // West
	{Q: -1, R: +1}, // SouthWest
	{Q: 0, R: +1},  // SouthEast
}

// names maps a direction index to its display name.
var names = [NumDirections]string{"East", "NorthEast", "NorthWest", "West", "SouthWest", "SouthEast"}

// Index returns the stable index 0–5 of d.
func (d Direction) Index() int { return int(d) }

// Offset returns the axial coordinate delta of one step along d.
func (d Direction) Offset() Hex { return offsets[d%NumDirections] }

// Opposite returns the direction pointing the other way across the same
// edge: East↔West, NorthEast↔SouthWest, NorthWest↔SouthEast.
func (d Direction) Opposite() Direction { return (d + 3) % NumDirections }

// String returns the direction's display name.
func (d Direction) String() string { return names[d%NumDirections] }
