package psptree

// side identifies which child slot of a node a point falls into,
// relative to the node's boundary radius.
type side int

const (
	sideInner side = iota
	sideOuter
)

// sideOf reports the side of a boundary with the given radius that a point
// at distance d falls on. The boundary itself belongs to the inner side.
func sideOf(d, radius float32) side {
	if d > radius {
		return sideOuter
	}
	return sideInner
}

// node is the building block of the tree. It owns its inner and outer
// children; parent is a lookup-only back-reference and never implies
// ownership. The radius is assigned when the node is attached and separates
// the inner region (within radius) from the outer region.
type node[V any] struct {
	point  []float32
	radius float32
	value  V

	parent *node[V]
	inner  *node[V]
	outer  *node[V]
}

func (n *node[V]) isLeaf() bool {
	return n.inner == nil && n.outer == nil
}

func (n *node[V]) child(s side) *node[V] {
	if s == sideOuter {
		return n.outer
	}
	return n.inner
}

func (n *node[V]) setChild(s side, c *node[V]) {
	if s == sideOuter {
		n.outer = c
	} else {
		n.inner = c
	}
}

// pointsEqual compares two points coordinate by coordinate for exact equality.
func pointsEqual(a, b []float32) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
