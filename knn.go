package psptree

import (
	"math"
	"sort"
)

// Neighbor describes a candidate returned by a kNN search.
type Neighbor[V any] struct {
	Point    []float32
	Value    V
	Distance float32
}

// candidate is a tree node retained during a search, together with its
// metric distance to the query and its pruning bound |distance - radius|,
// the smallest distance the query can have to any point on the far side of
// the node's boundary.
type candidate[V any] struct {
	node  *node[V]
	dist  float32
	bound float32
}

// candidateSet is a bounded set of the best candidates found so far.
// Admission and eviction are keyed on the pruning bound: a candidate is
// admitted while the set is not full or its bound beats tau, and the member
// with the largest bound is discarded when the set overflows. tau is the
// largest metric distance among retained members once the set is full, and
// unbounded before that.
type candidateSet[V any] struct {
	items []candidate[V]
	limit int
	tau   float32
}

func newCandidateSet[V any](limit int) *candidateSet[V] {
	return &candidateSet[V]{
		items: make([]candidate[V], 0, limit),
		limit: limit,
		tau:   float32(math.Inf(1)),
	}
}

func (cs *candidateSet[V]) add(c candidate[V]) {
	cs.items = append(cs.items, c)

	if len(cs.items) > cs.limit {
		worst := 0
		for i := 1; i < len(cs.items); i++ {
			if cs.items[i].bound > cs.items[worst].bound {
				worst = i
			}
		}

		cs.items[worst] = cs.items[len(cs.items)-1]
		cs.items = cs.items[:len(cs.items)-1]
	}

	if len(cs.items) == cs.limit {
		cs.tau = cs.items[0].dist
		for _, item := range cs.items[1:] {
			if item.dist > cs.tau {
				cs.tau = item.dist
			}
		}
	}
}

// searchKNN collects the min(k, size) best candidates for point, sorted
// ascending by metric distance.
func (m *Map[V]) searchKNN(point []float32, k int) []candidate[V] {
	if k > m.size {
		k = m.size
	}

	if k == 0 {
		return nil
	}

	cs := newCandidateSet[V](k)
	m.searchNode(m.root(), point, cs)

	sort.Slice(cs.items, func(i, j int) bool { return cs.items[i].dist < cs.items[j].dist })

	return cs.items
}

// searchNode is the branch-and-bound descent. At each node it admits the
// node if its pruning bound beats the current worst, then recurses into the
// side of the boundary the query falls on first, skipping any side the
// bound and tau together rule out.
func (m *Map[V]) searchNode(n *node[V], point []float32, cs *candidateSet[V]) {
	if n == nil {
		return
	}

	dist := m.distanceFunc(n.point, point)

	bound := dist - n.radius
	if bound < 0 {
		bound = -bound
	}

	if len(cs.items) < cs.limit || bound < cs.tau {
		cs.add(candidate[V]{node: n, dist: dist, bound: bound})
	}

	if n.isLeaf() {
		return
	}

	if sideOf(dist, n.radius) == sideInner {
		if bound-cs.tau <= n.radius {
			m.searchNode(n.inner, point, cs)
		}

		if bound+cs.tau >= n.radius {
			m.searchNode(n.outer, point, cs)
		}
	} else {
		if bound+cs.tau >= n.radius {
			m.searchNode(n.outer, point, cs)
		}

		if bound-cs.tau <= n.radius {
			m.searchNode(n.inner, point, cs)
		}
	}
}

// nearestNode returns the best candidate for point, or nil on an empty tree.
func (m *Map[V]) nearestNode(point []float32) *node[V] {
	candidates := m.searchKNN(point, 1)
	if len(candidates) == 0 {
		return nil
	}

	return candidates[0].node
}

// KNearestNeighbor returns the min(k, Len()) stored entries closest to
// point, sorted ascending by distance.
func (m *Map[V]) KNearestNeighbor(point []float32, k int) ([]Neighbor[V], error) {
	if err := m.checkDimension(point); err != nil {
		return nil, err
	}

	if k < 0 {
		return nil, ErrInvalidK
	}

	candidates := m.searchKNN(point, k)

	neighbors := make([]Neighbor[V], 0, len(candidates))
	for _, c := range candidates {
		neighbors = append(neighbors, Neighbor[V]{
			Point:    c.node.point,
			Value:    c.node.value,
			Distance: c.dist,
		})
	}

	return neighbors, nil
}
