package layout

import (
	"math"

	"github.com/paulmach/orb"

	"github.com/katalvlaran/hexmaze/hexgrid"
)

// sqrt3 is √3, the width factor of a pointy-top hexagon.
var sqrt3 = math.Sqrt(3)

// Layout fixes the world-space embedding of the hex grid: the hex size
// (center-to-corner distance) and the world position of the origin hex.
// Layout is an immutable value; methods never mutate it.
type Layout struct {
	Size   float64
	Origin orb.Point
}

// New returns a pointy-top layout with the given hex size, origin at
// world (0, 0).
func New(size float64) Layout {
	return Layout{Size: size}
}

// Center returns the world position of h's center.
func (l Layout) Center(h hexgrid.Hex) orb.Point {
	x := l.Origin[0] + l.Size*sqrt3*(float64(h.Q)+float64(h.R)/2)
	y := l.Origin[1] + l.Size*1.5*float64(h.R)

	return orb.Point{x, y}
}

// Corner returns the world position of corner i (0–5) of h. Corner 0 sits
// at −30° from the center; corners proceed counter-clockwise.
func (l Layout) Corner(h hexgrid.Hex, i int) orb.Point {
	c := l.Center(h)
	angle := math.Pi / 180 * (60*float64(i%6) - 30)

	return orb.Point{c[0] + l.Size*math.Cos(angle), c[1] + l.Size*math.Sin(angle)}
}

// Polygon returns h's outline as a single-ring orb.Polygon, closed
// (first point repeated last) as orb expects.
func (l Layout) Polygon(h hexgrid.Hex) orb.Polygon {
	ring := make(orb.Ring, 0, 7)
	for i := 0; i < 6; i++ {
		ring = append(ring, l.Corner(h, i))
	}
	ring = append(ring, ring[0])

	return orb.Polygon{ring}
}

// Bound returns the axis-aligned world bounding box of h.
func (l Layout) Bound(h hexgrid.Hex) orb.Bound {
	return l.Polygon(h).Bound()
}

// HexAt returns the hex whose cell contains world point p, by inverting
// Center to fractional axial coordinates and rounding in cube space.
func (l Layout) HexAt(p orb.Point) hexgrid.Hex {
	x := (p[0] - l.Origin[0]) / l.Size
	y := (p[1] - l.Origin[1]) / l.Size
	q := sqrt3/3*x - y/3
	r := 2.0 / 3 * y

	return roundAxial(q, r)
}

// roundAxial rounds fractional axial coordinates to the nearest hex:
// round all three cube coordinates, then fix the one with the largest
// rounding error so Q+R+S stays zero.
func roundAxial(q, r float64) hexgrid.Hex {
	s := -q - r
	rq, rr, rs := math.Round(q), math.Round(r), math.Round(s)
	dq, dr, ds := math.Abs(rq-q), math.Abs(rr-r), math.Abs(rs-s)

	switch {
	case dq > dr && dq > ds:
		rq = -rr - rs
	case dr > ds:
		rr = -rq - rs
	}

	return hexgrid.At(int(rq), int(rr))
}
