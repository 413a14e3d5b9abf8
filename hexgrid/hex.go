package hexgrid

// Hex is an axial hexagonal coordinate (Q, R) with the derived third cube
// coordinate S = -Q-R. It is a plain comparable value type: copy it,
// compare with ==, use it as a map key.
type Hex struct {
	Q int
	R int
}

// At returns the hex at axial coordinates (q, r).
func At(q, r int) Hex { return Hex{Q: q, R: r} }

// S returns the derived third cube coordinate, -Q-R.
func (h Hex) S() int { return -h.Q - h.R }

// Add returns h + o in axial space.
func (h Hex) Add(o Hex) Hex { return Hex{Q: h.Q + o.Q, R: h.R + o.R} }

// Sub returns h - o in axial space.
func (h Hex) Sub(o Hex) Hex { return Hex{Q: h.Q - o.Q, R: h.R - o.R} }

// Neighbor returns the adjacent hex one step along direction d.
func (h Hex) Neighbor(d Direction) Hex { return h.Add(d.Offset()) }

// Neighbors returns the six adjacent hexes in direction index order.
func (h Hex) Neighbors() [NumDirections]Hex {
	var out [NumDirections]Hex
	for i, d := range Directions {
		out[i] = h.Neighbor(d)
	}

	return out
}

// Distance returns the hex distance between a and b: the minimum number of
// neighbor steps from a to b, computed as max(|ΔQ|, |ΔR|, |ΔS|).
func Distance(a, b Hex) int {
	dq := abs(a.Q - b.Q)
	dr := abs(a.R - b.R)
	ds := abs(a.S() - b.S())
	if dq >= dr && dq >= ds {
		return dq
	}
	if dr >= ds {
		return dr
	}

	return ds
}

// abs returns |v| without touching floating point.
func abs(v int) int {
	if v < 0 {
		return -v
	}

	return v
}
