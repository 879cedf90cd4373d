package rangeset

import (
	"errors"
	"slices"
	"sort"
	"strings"
)

// Builder collects ranges and produces a Set. The zero value is ready for
// use.
type Builder[T Number] struct {
	in   []Range[T]
	errs error
}

func (s *Builder[T]) Add(start, end T) {
	s.AddRange(Range[T]{Start: start, End: end})
}

// AddRange adds r to s. Invalid ranges are not added; the error is reported
// by Set.
func (s *Builder[T]) AddRange(r Range[T]) {
	if err := r.Validate(); err != nil {
		s.errs = errors.Join(s.errs, err)
		return
	}
	s.in = append(s.in, r)
}

// AddSet adds all ranges in b to s.
func (s *Builder[T]) AddSet(b *Set[T]) {
	if b == nil {
		return
	}
	s.in = append(s.in, b.rr...)
}

// Set returns the normalized set of all valid ranges added so far, together
// with the errors of the rejected ones. The errors are reset once returned.
func (s *Builder[T]) Set() (*Set[T], error) {
	s.in = normalize(Sort(s.in))
	set := &Set[T]{
		rr: slices.Clone(s.in),
	}
	errs := s.errs
	s.errs = nil
	return set, errs
}

type Set[T Number] struct {
	// rr is normalized: sorted, with no two ranges overlapping or touching.
	// The methods below rely on this.
	rr []Range[T]
}

// Ranges returns a copy of the normalized ranges in s.
func (s *Set[T]) Ranges() []Range[T] {
	if s == nil {
		return []Range[T]{}
	}
	return append([]Range[T]{}, s.rr...)
}

// Len returns the number of disjoint ranges in s.
func (s *Set[T]) Len() int {
	if s == nil {
		return 0
	}
	return len(s.rr)
}

func (s *Set[T]) IsEmpty() bool { return s.Len() == 0 }

// rangeFor returns the index of the first range that ends at or after v.
func (s *Set[T]) rangeFor(v T) int {
	return sort.Search(len(s.rr), func(i int) bool {
		return s.rr[i].End >= v
	})
}

// Contains returns whether v lies in one of the ranges of s.
func (s *Set[T]) Contains(v T) bool {
	if s == nil {
		return false
	}
	i := s.rangeFor(v)
	return i < len(s.rr) && s.rr[i].Contains(v)
}

// ContainsRange returns whether all points of r are covered by s.
func (s *Set[T]) ContainsRange(r Range[T]) bool {
	if s == nil || !r.IsValid() {
		return false
	}
	i := s.rangeFor(r.Start)
	return i < len(s.rr) && r.CoveredBy(s.rr[i])
}

// Overlaps returns whether r shares at least one point with s.
func (s *Set[T]) Overlaps(r Range[T]) bool {
	if s == nil || !r.IsValid() {
		return false
	}
	i := s.rangeFor(r.Start)
	return i < len(s.rr) && s.rr[i].Overlaps(r)
}

// Union returns a new set holding the points of s and other.
func (s *Set[T]) Union(other *Set[T]) *Set[T] {
	return &Set[T]{rr: normalize(Sort(combine(ModeUnion, s.Ranges(), other.Ranges())))}
}

// Intersect returns a new set holding the points both in s and other.
func (s *Set[T]) Intersect(other *Set[T]) *Set[T] {
	return &Set[T]{rr: normalize(Sort(combine(ModeIntersect, s.Ranges(), other.Ranges())))}
}

func (s *Set[T]) Equal(other *Set[T]) bool {
	return slices.Equal(s.Ranges(), other.Ranges())
}

// String returns s as a comma separated list, e.g. "1-5,8-9".
func (s *Set[T]) String() string {
	parts := make([]string, 0, s.Len())
	for _, r := range s.Ranges() {
		parts = append(parts, r.String())
	}
	return strings.Join(parts, ",")
}
