// Package maze provides the maze substrate: per-tile bit-flag wall sets,
// tiles, and the position→tile container the generator carves and the
// pathfinder queries.
//
// Types:
//
//   - Walls — the six boundary flags of one tile, packed as the low 6 bits
//     of a single byte. The zero value has no walls; tiles are created
//     fully enclosed (AllWalls). Every operation is a total function with
//     no allocation: Insert/Remove/Toggle report the previous presence of
//     the wall, Fill ORs a whole mask in at once.
//   - Tile — one grid cell: its position plus its wall set. A tile's stored
//     position always equals the key it is indexed under in the Maze.
//   - Maze — an unordered map from hex position to tile. Insert has replace
//     semantics (the evicted tile, if any, is returned). Wall edits at a
//     position with no tile fail with ErrInvalidCoordinate — a silent no-op
//     would mask stale or out-of-range coordinates in the caller, so the
//     strict contract is deliberate.
//
// Invariants:
//
//   - Wall symmetry: for neighboring tiles A and B along direction d, A has
//     no wall toward d iff B has no wall toward d.Opposite(). The container
//     itself does not enforce this — the generator and any well-behaved
//     wall editor maintain it by always editing both sides of an edge.
//   - After generation, the open-wall graph is a spanning tree of the tiles
//     reachable from the generation start: tile count − 1 open undirected
//     edges, no cycles (the "perfect maze" property).
//
// Concurrency:
//
//   - No internal locking. A Maze must have exactly one writer at a time;
//     any number of readers may query a maze that is no longer mutated.
//
// Complexity: all container operations are O(1) expected; Clone and Equal
// are O(n) in the tile count.
package maze
