package psptree

import "fmt"

// depth returns the number of nodes on the longest root-to-leaf path.
func (m *Map[V]) depth() int {
	type frame[V any] struct {
		node  *node[V]
		depth int
	}

	root := m.root()
	if root == nil {
		return 0
	}

	max := 0

	stack := []frame[V]{{node: root, depth: 1}}
	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if f.depth > max {
			max = f.depth
		}

		if f.node.outer != nil {
			stack = append(stack, frame[V]{node: f.node.outer, depth: f.depth + 1})
		}

		if f.node.inner != nil {
			stack = append(stack, frame[V]{node: f.node.inner, depth: f.depth + 1})
		}
	}

	return max
}

// Stats prints statistics about the map
func (m *Map[V]) Stats() {
	fmt.Println("Options:")
	fmt.Printf("\tDistanceType = %s\n", m.opts.DistanceType)

	fmt.Println("Parameters:")
	fmt.Printf("\tdimension = %d\n", m.dimension)
	fmt.Printf("\tsize = %d\n", m.size)
	fmt.Printf("\tdepth = %d\n", m.depth())
}
