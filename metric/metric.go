// Package metric provides distance functions for psptree.
//
// All functions assume both vectors have the same length; dimension
// checks are the caller's responsibility and happen at the map boundary.
package metric

import "github.com/viant/vec/search"

// Euclidean returns the L2 (Euclidean) distance between two vectors.
// Uses SIMD acceleration when available.
func Euclidean(a, b []float32) float32 {
	return search.Float32s(a).EuclideanDistance(b)
}

// SquaredEuclidean returns the squared L2 distance between two vectors.
//
// It is monotonic with Euclidean and therefore yields the same
// nearest-neighbor ordering while skipping the square root. It is not a
// substitute wherever absolute distances matter (e.g. distances reported
// in search results), since it does not satisfy the triangle inequality.
func SquaredEuclidean(a, b []float32) float32 {
	var sum float32
	for i := range a {
		d := a[i] - b[i]
		sum += d * d
	}
	return sum
}
