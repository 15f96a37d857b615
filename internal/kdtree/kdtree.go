// Package kdtree implements a static 2-D k-d tree over a fixed coordinate
// set, specialized for the one query the TSP construction heuristics need:
// "which unvisited city is nearest to this point?"
//
// The tree is built once from the coordinate set. Each node carries a
// visited flag that the nearest-neighbor solver toggles as it consumes
// cities; a fresh Tree is built per solve.
//
// Design:
//   - Alternating-axis median splits (x at even depth, y at odd depth),
//     the classic balanced k-d tree construction.
//   - Bounding-box pruning during search: a subtree is skipped once the
//     current best distance cannot be beaten by anything inside it.
//   - No logging, no panics on well-formed input.
package kdtree

import (
	"errors"
	"math"
	"sort"

	"github.com/mgrzywacz/eutsp/internal/geom"
)

// ErrEmpty is returned when Build is called with no points.
var ErrEmpty = errors.New("kdtree: cannot build from zero points")

// node is one k-d tree vertex. index refers back into the original
// coordinate slice so callers can recover the city index from a query.
type node struct {
	index   int
	point   geom.City
	axis    int // 0 = split on X, 1 = split on Y
	left    *node
	right   *node
	visited bool
}

// Tree is a static k-d tree over a fixed coordinate set.
type Tree struct {
	root *node
	n    int
}

// Build constructs a balanced k-d tree from cities in O(n log² n) time (a
// full sort at each level).
func Build(cities []geom.City) (*Tree, error) {
	if len(cities) == 0 {
		return nil, ErrEmpty
	}
	idx := make([]int, len(cities))
	for i := range idx {
		idx[i] = i
	}
	root := buildSubtree(cities, idx, 0)
	return &Tree{root: root, n: len(cities)}, nil
}

// buildSubtree recursively partitions idx on the median of the alternating
// axis, producing a balanced tree regardless of input order.
func buildSubtree(cities []geom.City, idx []int, depth int) *node {
	if len(idx) == 0 {
		return nil
	}
	axis := depth % 2
	sort.Slice(idx, func(i, j int) bool {
		return axisValue(cities[idx[i]], axis) < axisValue(cities[idx[j]], axis)
	})
	mid := len(idx) / 2
	n := &node{
		index: idx[mid],
		point: cities[idx[mid]],
		axis:  axis,
	}
	n.left = buildSubtree(cities, idx[:mid], depth+1)
	n.right = buildSubtree(cities, idx[mid+1:], depth+1)
	return n
}

func axisValue(c geom.City, axis int) float64 {
	if axis == 0 {
		return c.X
	}
	return c.Y
}

// MarkVisited flags the city at the given coordinate index as consumed, so
// subsequent NearestUnvisited calls skip it. It finds the node by a
// depth-first search over the whole tree, O(n) time; the city's
// coordinates are not used to narrow the walk.
func (t *Tree) MarkVisited(cityIndex int) {
	markSubtree(t.root, cityIndex)
}

func markSubtree(n *node, cityIndex int) bool {
	if n == nil {
		return false
	}
	if n.index == cityIndex {
		n.visited = true
		return true
	}
	return markSubtree(n.left, cityIndex) || markSubtree(n.right, cityIndex)
}

// NearestUnvisited returns the index of the unvisited city closest to q, or
// (-1, false) if every city has been visited. Visited cities are excluded
// from candidacy but still used as interior pivots during the search.
//
// Complexity: O(log n) expected, O(n) worst case (degenerate collinear
// input defeats the bounding-box pruning).
func (t *Tree) NearestUnvisited(q geom.City) (int, bool) {
	if t.root == nil {
		return -1, false
	}
	best := -1
	bestDist := math.Inf(1)
	best, bestDist = searchNearest(t.root, q, best, bestDist)
	if best < 0 {
		return -1, false
	}
	return best, true
}

// searchNearest descends into the child containing q first (tightening
// bestDist as early as possible), then visits the sibling subtree only if
// the splitting hyperplane is closer than the current best — the standard
// k-d tree bounding-box prune.
func searchNearest(n *node, q geom.City, best int, bestDist float64) (int, float64) {
	if n == nil {
		return best, bestDist
	}

	if !n.visited {
		d := geom.Distance(n.point, q)
		if d < bestDist {
			best, bestDist = n.index, d
		}
	}

	qv := axisValue(q, n.axis)
	nv := axisValue(n.point, n.axis)

	near, far := n.left, n.right
	if qv > nv {
		near, far = n.right, n.left
	}

	best, bestDist = searchNearest(near, q, best, bestDist)

	// Distance from q to the splitting hyperplane; only descend into the far
	// side if it could possibly contain something closer than bestDist.
	planeDist := qv - nv
	if planeDist < 0 {
		planeDist = -planeDist
	}
	if planeDist < bestDist {
		best, bestDist = searchNearest(far, q, best, bestDist)
	}

	return best, bestDist
}

// KNearestUnvisited returns up to k unvisited cities nearest to q, ordered
// nearest-first. It is a brute-force scan: every unvisited city is
// collected, sorted by distance to q, and the first k are returned. It is
// kept here — unused by the default dispatch — so
// a future candidate-list nearest-neighbor variant can be added without
// reshaping the tree's API.
func (t *Tree) KNearestUnvisited(q geom.City, k int) []int {
	if k <= 0 || t.root == nil {
		return nil
	}
	type cand struct {
		idx int
		d   float64
	}
	var cands []cand
	collectUnvisited(t.root, func(n *node) {
		cands = append(cands, cand{idx: n.index, d: geom.Distance(n.point, q)})
	})
	sort.Slice(cands, func(i, j int) bool { return cands[i].d < cands[j].d })
	if k > len(cands) {
		k = len(cands)
	}
	out := make([]int, k)
	for i := 0; i < k; i++ {
		out[i] = cands[i].idx
	}
	return out
}

func collectUnvisited(n *node, visit func(*node)) {
	if n == nil {
		return
	}
	if !n.visited {
		visit(n)
	}
	collectUnvisited(n.left, visit)
	collectUnvisited(n.right, visit)
}
