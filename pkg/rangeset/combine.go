package rangeset

import (
	"errors"
	"fmt"
)

// Mode selects how Combine joins two sets of ranges.
type Mode int

const (
	ModeUnion Mode = iota
	ModeIntersect
)

func (m Mode) String() string {
	switch m {
	case ModeUnion:
		return "union"
	case ModeIntersect:
		return "intersect"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

// overlap classifies how the earlier and the later head range relate.
type overlap int

const (
	disjoint overlap = iota
	contained
	partial
)

// emitFunc returns the range to emit for a classified pair, if any.
type emitFunc[T Number] func(o overlap, earlier, later Range[T]) (Range[T], bool)

func unionEmit[T Number](o overlap, earlier, later Range[T]) (Range[T], bool) {
	switch o {
	case contained:
		return Range[T]{Start: earlier.Start, End: later.End}, true
	default:
		return earlier, true
	}
}

func intersectEmit[T Number](o overlap, earlier, later Range[T]) (Range[T], bool) {
	switch o {
	case contained:
		return later, true
	case partial:
		return Range[T]{Start: later.Start, End: earlier.End}, true
	default:
		return Range[T]{}, false
	}
}

func emitter[T Number](m Mode) emitFunc[T] {
	switch m {
	case ModeUnion:
		return unionEmit[T]
	case ModeIntersect:
		return intersectEmit[T]
	default:
		panic("unsupported combine mode")
	}
}

// Union returns the normalized set of points covered by a or b.
func Union[T Number](a, b []Range[T]) ([]Range[T], error) {
	return Combine(ModeUnion, a, b)
}

// Intersect returns the normalized set of points covered by both a and b.
func Intersect[T Number](a, b []Range[T]) ([]Range[T], error) {
	return Combine(ModeIntersect, a, b)
}

// Combine normalizes a and b, joins them according to m and returns the
// normalized result. Neither a nor b is modified.
func Combine[T Number](m Mode, a, b []Range[T]) ([]Range[T], error) {
	if err := errors.Join(validate(a), validate(b)); err != nil {
		return nil, err
	}
	return normalize(Sort(combine(m, normalize(Sort(a)), normalize(Sort(b))))), nil
}

// combine walks two normalized lists in lockstep. The head of either list
// is overwritten with the unmatched remainder of a split range, so both
// slices must be owned by the caller.
func combine[T Number](m Mode, a, b []Range[T]) []Range[T] {
	emit := emitter[T](m)
	out := make([]Range[T], 0, len(a)+len(b))

	for len(a) > 0 && len(b) > 0 {
		earlier, later := &a, &b
		if b[0].Start < a[0].Start {
			earlier, later = &b, &a
		}
		e, l := (*earlier)[0], (*later)[0]

		var o overlap
		switch {
		case e.EntirelyBefore(l):
			// e cannot overlap anything left in the other list.
			//
			//   e         l
			// s----e   s-----e
			o = disjoint
			*earlier = (*earlier)[1:]
		case l.End < e.End:
			// l is contained, keep the tail of e for the next round.
			//
			//        e
			// s-------------e
			//    s------e
			//       l
			o = contained
			(*earlier)[0] = Range[T]{Start: l.End, End: e.End}
			*later = (*later)[1:]
		default:
			// e ends inside l, keep the tail of l for the next round.
			//
			//   e
			// s------e
			//    s------e
			//       l
			o = partial
			(*later)[0] = Range[T]{Start: e.End, End: l.End}
			*earlier = (*earlier)[1:]
		}
		if r, ok := emit(o, e, l); ok {
			out = append(out, r)
		}
	}

	if m == ModeUnion {
		// Only one of them has ranges left.
		out = append(out, a...)
		out = append(out, b...)
	}
	return out
}
