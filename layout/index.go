package layout

import (
	"sort"

	"github.com/dhconnelly/rtreego"
	"github.com/paulmach/orb"

	"github.com/katalvlaran/hexmaze/hexgrid"
	"github.com/katalvlaran/hexmaze/maze"
)

// R-tree node fan-out bounds.
const (
	treeMinBranch = 25
	treeMaxBranch = 50
)

// tileEntry is one R-tree leaf: a tile position and its world bounding box.
type tileEntry struct {
	pos  hexgrid.Hex
	rect rtreego.Rect
}

// Bounds implements rtreego.Spatial.
func (e *tileEntry) Bounds() rtreego.Rect { return e.rect }

// Index is a read-only spatial index over the tiles of a maze: an R-tree
// of tile bounding boxes in world space. Build it once the maze's tile set
// is final; wall edits do not invalidate it.
type Index struct {
	layout  Layout
	tree    *rtreego.Rtree
	present map[hexgrid.Hex]bool
}

// NewIndex builds an index over every tile of m under layout l.
// Complexity: O(n log n) in the tile count.
func NewIndex(m *maze.Maze, l Layout) *Index {
	ix := &Index{
		layout:  l,
		tree:    rtreego.NewTree(2, treeMinBranch, treeMaxBranch),
		present: make(map[hexgrid.Hex]bool, m.Len()),
	}
	for _, pos := range m.Positions() {
		ix.present[pos] = true
		ix.tree.Insert(&tileEntry{pos: pos, rect: toRect(l.Bound(pos))})
	}

	return ix
}

// Within returns the positions of all tiles whose bounding boxes intersect
// the world-space bound b, sorted by (Q, R). Typical use: viewport culling.
func (ix *Index) Within(b orb.Bound) []hexgrid.Hex {
	found := ix.tree.SearchIntersect(toRect(b))
	out := make([]hexgrid.Hex, 0, len(found))
	for _, item := range found {
		out = append(out, item.(*tileEntry).pos)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Q != out[j].Q {
			return out[i].Q < out[j].Q
		}

		return out[i].R < out[j].R
	})

	return out
}

// At resolves a world point to the tile containing it. The second result
// is false when the point falls outside every tile.
func (ix *Index) At(p orb.Point) (hexgrid.Hex, bool) {
	h := ix.layout.HexAt(p)
	if !ix.present[h] {
		return hexgrid.Hex{}, false
	}

	return h, true
}

// Len returns the number of indexed tiles.
func (ix *Index) Len() int { return ix.tree.Size() }

// toRect converts an orb bound to an rtreego rect. Degenerate bounds get a
// minimal positive extent, which rtreego requires.
func toRect(b orb.Bound) rtreego.Rect {
	const minExtent = 1e-9
	w := b.Max[0] - b.Min[0]
	h := b.Max[1] - b.Min[1]
	if w < minExtent {
		w = minExtent
	}
	if h < minExtent {
		h = minExtent
	}
	rect, err := rtreego.NewRect(rtreego.Point{b.Min[0], b.Min[1]}, []float64{w, h})
	if err != nil {
		// Unreachable: extents are forced positive above.
		panic(err)
	}

	return rect
}
