package generator

import (
	"math/rand"
	"time"

	"github.com/katalvlaran/hexmaze/hexgrid"
	"github.com/katalvlaran/hexmaze/maze"
)

// Generate carves m in place according to the supplied options.
// Carving an empty maze is a no-op. Returns ErrNilMaze for a nil maze and
// ErrUnknownAlgorithm for an unsupported Options.Algorithm; generation
// itself always succeeds.
func Generate(m *maze.Maze, opts ...Option) error {
	if m == nil {
		return ErrNilMaze
	}

	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.Algorithm != RecursiveBacktrack {
		return ErrUnknownAlgorithm
	}
	if m.IsEmpty() {
		return nil
	}

	rng := o.Rng
	if rng == nil {
		// No seed supplied: non-reproducible stream, runs differ.
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	backtrack(m, o.Start, rng)

	return nil
}

// frame is one level of the depth-first carving walk: a position, the
// shuffled direction order chosen on entry, and a cursor into it.
type frame struct {
	pos  hexgrid.Hex
	dirs [hexgrid.NumDirections]hexgrid.Direction
	next int
}

// enter returns a fresh frame for pos with a Fisher–Yates shuffled
// direction order drawn from rng.
func enter(pos hexgrid.Hex, rng *rand.Rand) frame {
	f := frame{pos: pos, dirs: hexgrid.Directions}
	rng.Shuffle(len(f.dirs), func(i, j int) {
		f.dirs[i], f.dirs[j] = f.dirs[j], f.dirs[i]
	})

	return f
}

// backtrack runs randomized depth-first carving from start using an
// explicit frame stack. Stack depth is bounded by the longest carved
// branch, never the goroutine stack.
//
// The shuffle-on-entry order matches the recursive formulation exactly, so
// a given RNG stream produces the same maze either way.
func backtrack(m *maze.Maze, start hexgrid.Hex, rng *rand.Rand) {
	if !m.Contains(start) {
		return
	}

	visited := make(map[hexgrid.Hex]bool, m.Len())
	visited[start] = true

	stack := make([]frame, 0, m.Len())
	stack = append(stack, enter(start, rng))

	for len(stack) > 0 {
		top := &stack[len(stack)-1]

		descended := false
		for top.next < len(top.dirs) {
			d := top.dirs[top.next]
			top.next++

			neighbor := top.pos.Neighbor(d)
			if !m.Contains(neighbor) || visited[neighbor] {
				continue
			}

			// Open the shared edge from both sides, keeping wall symmetry.
			// Both tiles exist, so neither edit can fail.
			_, _ = m.RemoveWall(top.pos, d)
			_, _ = m.RemoveWall(neighbor, d.Opposite())

			visited[neighbor] = true
			stack = append(stack, enter(neighbor, rng))
			descended = true

			break
		}

		if !descended {
			// Every direction exhausted: backtrack one level.
			stack = stack[:len(stack)-1]
		}
	}
}
