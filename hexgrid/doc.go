// Package hexgrid provides the hexagonal-coordinate primitive the rest of
// hexmaze is built on: axial coordinates, the six edge directions, neighbor
// arithmetic and the hex distance metric.
//
// Coordinate system:
//
//   - Axial coordinates (Q, R) with the derived third cube coordinate
//     S = -Q-R, so Q+R+S == 0 always holds.
//   - Pointy-top orientation. The six edge directions carry stable indices
//     0–5 and are laid out counter-clockwise starting East:
//
//     2:NW  1:NE
//     3:W  (Q,R)  0:E
//     4:SW  5:SE
//
// Contracts:
//
//   - Hex is a plain comparable value type: copy it, compare it with ==,
//     use it as a map key. There is no hidden state and no error channel —
//     every operation is a total function.
//   - Opposite() is an involution: d.Opposite().Opposite() == d, and
//     stepping Neighbor(d) then Neighbor(d.Opposite()) returns to the
//     starting hex.
//   - Distance is the cube metric max(|ΔQ|,|ΔR|,|ΔS|): the minimum number
//     of neighbor steps between two hexes, and therefore an admissible,
//     consistent heuristic for unit-cost searches over hex adjacency.
//
// Complexity: every function in this package is O(1) time, zero
// allocations.
package hexgrid
