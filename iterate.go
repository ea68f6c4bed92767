package psptree

import (
	"fmt"
	"iter"
	"strings"
)

// All returns an iterator over all (point, value) entries. The tree defines
// no natural order; traversal is pre-order (node, inner subtree, outer
// subtree) with an explicit stack, so deep unbalanced trees cannot exhaust
// the call stack. Yielded points are the stored slices and must not be
// mutated.
func (m *Map[V]) All() iter.Seq2[[]float32, V] {
	return func(yield func([]float32, V) bool) {
		root := m.root()
		if root == nil {
			return
		}

		stack := []*node[V]{root}
		for len(stack) > 0 {
			n := stack[len(stack)-1]
			stack = stack[:len(stack)-1]

			if !yield(n.point, n.value) {
				return
			}

			if n.outer != nil {
				stack = append(stack, n.outer)
			}

			if n.inner != nil {
				stack = append(stack, n.inner)
			}
		}
	}
}

// Keys returns an unordered snapshot of all stored points.
func (m *Map[V]) Keys() [][]float32 {
	keys := make([][]float32, 0, m.size)
	for point := range m.All() {
		keys = append(keys, point)
	}

	return keys
}

// Values returns an unordered snapshot of all stored values.
func (m *Map[V]) Values() []V {
	values := make([]V, 0, m.size)
	for _, value := range m.All() {
		values = append(values, value)
	}

	return values
}

// Entries returns an unordered snapshot of all stored entries.
func (m *Map[V]) Entries() []Entry[V] {
	entries := make([]Entry[V], 0, m.size)
	for point, value := range m.All() {
		entries = append(entries, Entry[V]{Point: point, Value: value})
	}

	return entries
}

// String renders the entries in traversal order.
func (m *Map[V]) String() string {
	var sb strings.Builder

	sb.WriteString("{")

	first := true
	for point, value := range m.All() {
		if !first {
			sb.WriteString(", ")
		}
		first = false

		fmt.Fprintf(&sb, "%v=%v", point, value)
	}

	sb.WriteString("}")

	return sb.String()
}
