package maze

import "errors"

// ErrInvalidCoordinate indicates a wall operation targeted a position with
// no tile in the maze. This is always caller error (a stale or out-of-range
// coordinate) and is never retried internally.
// Usage: if errors.Is(err, maze.ErrInvalidCoordinate) { /* fix the caller */ }.
var ErrInvalidCoordinate = errors.New("maze: invalid coordinate")
