// Package psptree provides a metric-space map keyed by fixed-dimension
// points with exact lookup and k-nearest-neighbor search.
//
// The map is backed by a space-partitioning tree that uses hyperspheres to
// separate space into inner and outer regions, a very close cousin of a
// vantage-point tree. The partition is maintained incrementally: each
// insertion splices the new node next to its nearest stored neighbor and
// deletions relocate at most two subtree roots, so there is no global
// rebuild or background maintenance.
//
// # Quick Start
//
//	m, _ := psptree.New[string](func(o *psptree.Options) {
//		o.Dimension = 2
//	})
//
//	m.Put([]float32{0, 0}, "a")
//	m.Put([]float32{3, 4}, "b")
//
//	value, ok, _ := m.Get([]float32{3, 4})        // "b", true
//	nearest, _ := m.KNearestNeighbor([]float32{1, 0}, 1)
//
// The distance metric is fixed at construction via Options.DistanceType or
// a custom Options.DistanceFunc. Pruning during search relies on the metric
// satisfying the triangle inequality; this is the caller's responsibility
// and is not verified at runtime.
//
// The partition is approximate: lookups locate a point by boundary descent,
// and on dense data the descent can miss a stored point. Get, Remove and
// ContainsKey may then report an existing key as absent, and Put may insert
// a duplicate entry for it. Searches with k >= Len() or a dominating radius
// always see every entry.
//
// Map is not safe for concurrent use.
package psptree
