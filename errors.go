package psptree

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidK is returned when k is negative.
	ErrInvalidK = errors.New("k must be non-negative")

	// ErrInvalidRadius is returned when a search radius is negative.
	ErrInvalidRadius = errors.New("radius must be non-negative")
)

// ErrDimensionMismatch is a named error type for dimension mismatch
type ErrDimensionMismatch struct {
	Expected int // Expected dimensions
	Actual   int // Actual dimensions
}

// Error returns the error message for dimension mismatch
func (e *ErrDimensionMismatch) Error() string {
	return fmt.Sprintf("dimension mismatch: expected %d, got %d", e.Expected, e.Actual)
}

// ErrInvalidDimension indicates an invalid configured dimension.
type ErrInvalidDimension struct {
	Dimension int
}

// Error returns the error message for an invalid dimension
func (e *ErrInvalidDimension) Error() string {
	return fmt.Sprintf("invalid dimension: %d", e.Dimension)
}

// ErrInvalidDistanceType indicates an unsupported distance type.
type ErrInvalidDistanceType struct {
	DistanceType DistanceType
}

// Error returns the error message for an unsupported distance type
func (e *ErrInvalidDistanceType) Error() string {
	return fmt.Sprintf("invalid distance type: %d", e.DistanceType)
}
