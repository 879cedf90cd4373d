package rangeset

import (
	"cmp"
	"slices"
)

// Sort returns a copy of rr ordered by start, then by end. Equal ranges keep
// their input order.
func Sort[T Number](rr []Range[T]) []Range[T] {
	out := make([]Range[T], len(rr))
	copy(out, rr)
	slices.SortStableFunc(out, compare[T])
	return out
}

func compare[T Number](a, b Range[T]) int {
	if c := cmp.Compare(a.Start, b.Start); c != 0 {
		return c
	}
	return cmp.Compare(a.End, b.End)
}
