package psptree

import "sort"

// RangeSearch returns all entries within radius of point (boundary
// inclusive), sorted ascending by distance.
func (m *Map[V]) RangeSearch(point []float32, radius float32) ([]Neighbor[V], error) {
	if err := m.checkDimension(point); err != nil {
		return nil, err
	}

	if radius < 0 {
		return nil, ErrInvalidRadius
	}

	var neighbors []Neighbor[V]
	m.searchRange(m.root(), point, radius, &neighbors)

	sort.Slice(neighbors, func(i, j int) bool { return neighbors[i].Distance < neighbors[j].Distance })

	return neighbors, nil
}

// searchRange descends the tree, skipping any side of a node's boundary
// that cannot intersect the query sphere: the inner region is reachable
// only if dist - radius <= node radius, the outer region only if
// dist + radius >= node radius.
func (m *Map[V]) searchRange(n *node[V], point []float32, radius float32, neighbors *[]Neighbor[V]) {
	if n == nil {
		return
	}

	dist := m.distanceFunc(n.point, point)
	if dist <= radius {
		*neighbors = append(*neighbors, Neighbor[V]{
			Point:    n.point,
			Value:    n.value,
			Distance: dist,
		})
	}

	if n.isLeaf() {
		return
	}

	if dist-radius <= n.radius {
		m.searchRange(n.inner, point, radius, neighbors)
	}

	if dist+radius >= n.radius {
		m.searchRange(n.outer, point, radius, neighbors)
	}
}
