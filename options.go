package psptree

import "github.com/hupe1980/psptree/metric"

// DistanceFunc represents a function for calculating the distance between two vectors.
// It must be deterministic and non-negative. Pruning during search assumes the
// triangle inequality holds; this is not verified at runtime.
type DistanceFunc func(v1, v2 []float32) float32

// DistanceType represents the type of distance function used for calculating distances between vectors.
type DistanceType int

// Constants representing different types of distance functions.
const (
	DistanceTypeEuclidean DistanceType = iota
	DistanceTypeSquaredEuclidean
)

// NewDistanceFunc returns a distance function based on the specified distance type.
func NewDistanceFunc(distanceType DistanceType) DistanceFunc {
	switch distanceType {
	case DistanceTypeEuclidean:
		return metric.Euclidean
	case DistanceTypeSquaredEuclidean:
		return metric.SquaredEuclidean
	default:
		return nil
	}
}

// String returns a string representation of the DistanceType.
func (dt DistanceType) String() string {
	switch dt {
	case DistanceTypeEuclidean:
		return "Euclidean"
	case DistanceTypeSquaredEuclidean:
		return "SquaredEuclidean"
	default:
		return "Unknown"
	}
}

// Options contains configuration options for the map.
type Options struct {
	// Dimension is the fixed point dimensionality for this map.
	// It must be > 0 and is enforced for all operations taking a point.
	Dimension int

	// DistanceType represents the type of distance function used for
	// calculating distances between points.
	DistanceType DistanceType

	// DistanceFunc overrides DistanceType with a custom metric.
	// If nil, the function derived from DistanceType is used.
	DistanceFunc DistanceFunc
}

// DefaultOptions contains the default configuration options for the map.
var DefaultOptions = Options{
	Dimension:    0,
	DistanceType: DistanceTypeEuclidean,
}
