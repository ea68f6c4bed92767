package psptree

import (
	"math/rand"
	"reflect"
	"slices"
)

// Entry is a (point, value) pair stored in the map.
type Entry[V any] struct {
	Point []float32
	Value V
}

// Map is a metric-space map from fixed-dimension points to values of type V.
//
// Points are partitioned by a space-partitioning tree that separates space
// into inner and outer regions with hyperspheres, a close cousin of a
// vantage-point tree. The tree is maintained incrementally: every insertion
// splices a single node next to its nearest stored neighbor, and deletions
// relocate at most two subtree roots.
//
// Map is not safe for concurrent use; callers needing concurrent access
// must serialize externally.
type Map[V any] struct {
	// sentinel is a permanent radius-0 node at a random point inside the
	// unit hypercube. It never holds a value and is never a search result;
	// the externally visible tree root is sentinel.outer.
	sentinel     *node[V]
	size         int
	dimension    int
	distanceFunc DistanceFunc
	opts         Options
}

// New creates a new empty map.
// Dimension is required and must be set at creation time.
func New[V any](optFns ...func(o *Options)) (*Map[V], error) {
	opts := DefaultOptions

	for _, fn := range optFns {
		fn(&opts)
	}

	if opts.Dimension <= 0 {
		return nil, &ErrInvalidDimension{Dimension: opts.Dimension}
	}

	distanceFunc := opts.DistanceFunc
	if distanceFunc == nil {
		distanceFunc = NewDistanceFunc(opts.DistanceType)
		if distanceFunc == nil {
			return nil, &ErrInvalidDistanceType{DistanceType: opts.DistanceType}
		}
	}

	m := &Map[V]{
		dimension:    opts.Dimension,
		distanceFunc: distanceFunc,
		opts:         opts,
	}
	m.sentinel = m.newSentinel()

	return m, nil
}

// newSentinel creates the sentinel node, a node with a radius of 0 centered
// at a random point within the unit hypercube [0,1)^dimension. Insertion and
// descent code splice under it unconditionally, so an empty tree needs no
// special casing.
func (m *Map[V]) newSentinel() *node[V] {
	point := make([]float32, m.dimension)
	for i := range point {
		point[i] = rand.Float32() // nolint gosec
	}

	return &node[V]{point: point}
}

// root returns the externally visible tree root, or nil if the map is empty.
func (m *Map[V]) root() *node[V] {
	return m.sentinel.outer
}

func (m *Map[V]) checkDimension(point []float32) error {
	if len(point) != m.dimension {
		return &ErrDimensionMismatch{Expected: m.dimension, Actual: len(point)}
	}

	return nil
}

// lookup returns the node located exactly at point, if it exists. It
// descends from the root, at each node following the side of the boundary
// the point falls on.
func (m *Map[V]) lookup(point []float32) *node[V] {
	n := m.root()
	for n != nil {
		if pointsEqual(n.point, point) {
			return n
		}

		n = n.child(sideOf(m.distanceFunc(n.point, point), n.radius))
	}

	return nil
}

// attach inserts n into the tree. The parent is the nearest stored neighbor
// (the sentinel for an empty tree); n's radius becomes its distance to that
// parent, and n takes over the parent's child slot on its own side,
// inheriting whatever subtree previously occupied it.
//
// n may carry an existing subtree (deletion relocates whole subtree roots),
// so the inherited slot on n can already be taken. In that case the prior
// occupant keeps the slot and n's own child is evicted onto a worklist to be
// re-attached. Every loop iteration places one root permanently and an
// evicted child is a strict subtree of the root just placed, so the pending
// node count shrinks on every iteration and the relocation always
// terminates.
func (m *Map[V]) attach(root *node[V]) {
	pending := []*node[V]{root}

	for len(pending) > 0 {
		n := pending[len(pending)-1]
		pending = pending[:len(pending)-1]

		parent := m.nearestNode(n.point)
		if parent == nil {
			parent = m.sentinel
		}

		d := m.distanceFunc(parent.point, n.point)
		n.radius = d
		s := sideOf(d, parent.radius)

		displaced := parent.child(s)
		parent.setChild(s, n)
		n.parent = parent

		if displaced == nil {
			continue
		}

		if evicted := n.child(s); evicted != nil {
			evicted.parent = nil
			pending = append(pending, evicted)
		}

		n.setChild(s, displaced)
		displaced.parent = n
	}
}

// detach removes n from the tree. A leaf is unlinked, a node with one child
// is replaced by that child, and a node with two children is unlinked with
// both subtree roots re-attached (inner first) through the regular
// insertion procedure against the tree as it stands at that moment.
func (m *Map[V]) detach(n *node[V]) {
	parent := n.parent
	s := sideOf(m.distanceFunc(parent.point, n.point), parent.radius)

	switch {
	case n.isLeaf():
		parent.setChild(s, nil)
	case n.inner == nil || n.outer == nil:
		child := n.inner
		if child == nil {
			child = n.outer
		}

		parent.setChild(s, child)
		child.parent = parent
	default:
		parent.setChild(s, nil)

		inner, outer := n.inner, n.outer
		n.inner, n.outer = nil, nil
		inner.parent, outer.parent = nil, nil

		m.attach(inner)
		m.attach(outer)
	}

	n.parent = nil
	n.inner, n.outer = nil, nil
	m.size--
}

// Put associates value with point, returning the previous value and whether
// one was replaced. Replacing the value of an existing point leaves the
// tree structure untouched; a new point is spliced next to its nearest
// stored neighbor. The point is copied; the caller keeps ownership of the
// argument slice.
//
// The presence check is a boundary descent and approximate: on dense data
// it can miss a stored point, in which case Put inserts a second entry for
// that point and Len grows.
func (m *Map[V]) Put(point []float32, value V) (V, bool, error) {
	var zero V

	if err := m.checkDimension(point); err != nil {
		return zero, false, err
	}

	if n := m.lookup(point); n != nil {
		previous := n.value
		n.value = value

		return previous, true, nil
	}

	m.attach(&node[V]{point: slices.Clone(point), value: value})
	m.size++

	return zero, false, nil
}

// PutAll applies Put to every entry, stopping at the first error.
func (m *Map[V]) PutAll(entries ...Entry[V]) error {
	for _, entry := range entries {
		if _, _, err := m.Put(entry.Point, entry.Value); err != nil {
			return err
		}
	}

	return nil
}

// Get returns the value stored at point, reporting whether the point is
// present.
func (m *Map[V]) Get(point []float32) (V, bool, error) {
	var zero V

	if err := m.checkDimension(point); err != nil {
		return zero, false, err
	}

	n := m.lookup(point)
	if n == nil {
		return zero, false, nil
	}

	return n.value, true, nil
}

// Remove deletes the entry at point, returning the removed value and
// whether an entry was present. Removing an absent point makes no
// structural change.
func (m *Map[V]) Remove(point []float32) (V, bool, error) {
	var zero V

	if err := m.checkDimension(point); err != nil {
		return zero, false, err
	}

	n := m.lookup(point)
	if n == nil {
		return zero, false, nil
	}

	m.detach(n)

	return n.value, true, nil
}

// ContainsKey reports whether an entry is stored at point.
func (m *Map[V]) ContainsKey(point []float32) (bool, error) {
	if err := m.checkDimension(point); err != nil {
		return false, err
	}

	return m.lookup(point) != nil, nil
}

// ContainsValue reports whether any entry holds a value equal to value.
// It scans all entries; equality is structural (reflect.DeepEqual).
func (m *Map[V]) ContainsValue(value V) bool {
	for _, v := range m.All() {
		if reflect.DeepEqual(v, value) {
			return true
		}
	}

	return false
}

// Len returns the number of entries in the map.
func (m *Map[V]) Len() int {
	return m.size
}

// IsEmpty reports whether the map holds no entries.
func (m *Map[V]) IsEmpty() bool {
	return m.size == 0
}

// Clear drops all entries and re-seeds the sentinel at a fresh random point.
func (m *Map[V]) Clear() {
	m.sentinel = m.newSentinel()
	m.size = 0
}
