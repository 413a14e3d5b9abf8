package astar

import (
	"container/heap"
	"errors"

	"github.com/katalvlaran/hexmaze/hexgrid"
	"github.com/katalvlaran/hexmaze/maze"
)

// ErrNilMaze is returned when a nil *maze.Maze is passed to FindPath.
var ErrNilMaze = errors.New("astar: maze is nil")

// FindPath returns a cost-optimal path from from to to through the open
// walls of m, or nil when no path exists. See the package documentation
// for the exact graph model and determinism guarantees.
func FindPath(m *maze.Maze, from, to hexgrid.Hex) ([]hexgrid.Hex, error) {
	if m == nil {
		return nil, ErrNilMaze
	}

	// Zero-length path: the start is its own goal.
	if from == to {
		return []hexgrid.Hex{from}, nil
	}

	s := &search{
		m:      m,
		goal:   to,
		gScore: map[hexgrid.Hex]int{from: 0},
		came:   make(map[hexgrid.Hex]hexgrid.Hex),
		closed: make(map[hexgrid.Hex]bool),
	}
	heap.Init(&s.open)
	s.push(from, hexgrid.Distance(from, to))

	for s.open.Len() > 0 {
		cur := heap.Pop(&s.open).(*node).pos
		if s.closed[cur] {
			continue // stale lazy-decrease-key entry
		}
		s.closed[cur] = true

		if cur == to {
			return s.reconstruct(from), nil
		}

		s.expand(cur)
	}

	return nil, nil
}

// search holds the mutable state of one FindPath run.
type search struct {
	m      *maze.Maze
	goal   hexgrid.Hex
	gScore map[hexgrid.Hex]int
	came   map[hexgrid.Hex]hexgrid.Hex
	closed map[hexgrid.Hex]bool
	open   nodePQ
	seq    uint64
}

// push adds pos to the open heap with f-score f, tagging it with the next
// sequence number so equal f-scores pop in FIFO order.
func (s *search) push(pos hexgrid.Hex, f int) {
	s.seq++
	heap.Push(&s.open, &node{pos: pos, f: f, seq: s.seq})
}

// expand relaxes the edges out of cur. Directions are walked in index
// order; an edge exists only when the wall toward the neighbor is open and
// the neighbor tile is present.
func (s *search) expand(cur hexgrid.Hex) {
	walls, ok := s.m.Walls(cur)
	if !ok {
		return // endpoint outside the maze: no successors
	}

	for _, d := range hexgrid.Directions {
		if walls.Contains(d) {
			continue
		}
		neighbor := cur.Neighbor(d)
		if !s.m.Contains(neighbor) || s.closed[neighbor] {
			continue
		}

		tentative := s.gScore[cur] + 1
		if old, seen := s.gScore[neighbor]; seen && tentative >= old {
			continue
		}

		s.gScore[neighbor] = tentative
		s.came[neighbor] = cur
		s.push(neighbor, tentative+hexgrid.Distance(neighbor, s.goal))
	}
}

// reconstruct walks the predecessor links back from the goal and reverses
// the result in place.
func (s *search) reconstruct(from hexgrid.Hex) []hexgrid.Hex {
	path := []hexgrid.Hex{s.goal}
	for cur := s.goal; cur != from; {
		cur = s.came[cur]
		path = append(path, cur)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path
}

// node is one open-set entry: a position, its f-score, and the push
// sequence number used as the FIFO tie-break.
type node struct {
	pos hexgrid.Hex
	f   int
	seq uint64
}

// nodePQ is a min-heap of *node ordered by (f, seq) ascending, operated
// with the lazy-decrease-key strategy: improved entries are pushed anew
// and stale ones skipped on pop via the closed set.
type nodePQ []*node

func (pq nodePQ) Len() int { return len(pq) }

func (pq nodePQ) Less(i, j int) bool {
	if pq[i].f != pq[j].f {
		return pq[i].f < pq[j].f
	}

	return pq[i].seq < pq[j].seq
}

func (pq nodePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

func (pq *nodePQ) Push(x any) { *pq = append(*pq, x.(*node)) }

func (pq *nodePQ) Pop() any {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
