// Package layout converts between hex positions and world (pixel)
// positions, and offers spatial lookup over a finished maze — the adapter
// surface a renderer or picking layer consumes.
//
// It deliberately reads the maze only through its public accessors
// (Positions, Contains); nothing here is embedded in the core types.
//
// Geometry:
//
//   - Pointy-top orientation, matching hexgrid. For a Layout with hex size
//     s (center-to-corner distance) and origin O:
//     x = O.x + s·√3·(Q + R/2),  y = O.y + s·3/2·R
//   - Corners sit at angles 60°·i − 30° from the center; Polygon returns
//     the six corners as a closed orb.Ring, Bound the axis-aligned box.
//   - HexAt inverts Center via fractional axial coordinates and cube
//     rounding, so HexAt(Center(h)) == h for every h.
//
// Spatial index:
//
//   - Index wraps an R-tree over the bounding boxes of a maze's tiles.
//     Within returns the tiles whose boxes intersect a world-space bound
//     (viewport culling), sorted by (Q, R) for deterministic output; At
//     resolves a world point to the tile containing it, if any.
//   - The index is a read-only snapshot: build it after the maze's tile
//     set is final. Wall edits do not affect it; tile positions do.
package layout
