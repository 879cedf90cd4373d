package rangeset

import (
	"fmt"

	"golang.org/x/exp/constraints"
)

// Number is any integer or floating point type a Range can be built from.
type Number interface {
	constraints.Integer | constraints.Float
}

// Range is the closed interval [Start, End]. A range with Start == End
// holds a single point.
type Range[T Number] struct {
	Start T
	End   T
}

func New[T Number](start, end T) Range[T] {
	return Range[T]{Start: start, End: end}
}

func (r Range[T]) String() string {
	return fmt.Sprintf("%v-%v", r.Start, r.End)
}

// IsValid reports whether Start <= End. NaN bounds are never valid.
func (r Range[T]) IsValid() bool {
	return r.Start <= r.End
}

func (r Range[T]) Validate() error {
	if !r.IsValid() {
		return fmt.Errorf("%w %s: start must not be bigger than end", ErrInvalidRange, r)
	}
	return nil
}

// Contains returns whether v lies within r, bounds included.
func (r Range[T]) Contains(v T) bool {
	return r.Start <= v && v <= r.End
}

// Overlaps returns whether r and other share at least one point.
func (r Range[T]) Overlaps(other Range[T]) bool {
	return r.Start <= other.End && other.Start <= r.End
}

// EntirelyBefore returns whether r ends before other starts.
func (r Range[T]) EntirelyBefore(other Range[T]) bool {
	return r.End < other.Start
}

// CoveredBy returns whether r is entirely contained within other.
func (r Range[T]) CoveredBy(other Range[T]) bool {
	return other.Start <= r.Start && r.End <= other.End
}

// Less orders ranges by start, then by end.
func (r Range[T]) Less(other Range[T]) bool {
	if r.Start != other.Start {
		return r.Start < other.Start
	}
	return r.End < other.End
}
