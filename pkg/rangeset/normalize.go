package rangeset

// Normalize returns the minimal sorted set of ranges that covers exactly the
// points covered by rr. Overlapping ranges and ranges that share a bound are
// merged. rr is not modified.
func Normalize[T Number](rr []Range[T]) ([]Range[T], error) {
	if err := validate(rr); err != nil {
		return nil, err
	}
	return normalize(Sort(rr)), nil
}

// normalize merges a sorted list of valid ranges in a single sweep.
func normalize[T Number](sorted []Range[T]) []Range[T] {
	out := make([]Range[T], 0, len(sorted))
	for _, r := range sorted {
		if len(out) == 0 {
			out = append(out, r)
			continue
		}
		prev := &out[len(out)-1]
		switch {
		case prev.EntirelyBefore(r):
			// No overlap, r starts a new range.
			//
			//   prev       r
			// s------e  s-----e
			out = append(out, r)
		case prev.End < r.End:
			// Partial overlap or touching, extend prev.
			//
			//   prev
			// s------e
			//     s-----e
			//        r
			prev.End = r.End
		default:
			// r entirely contained in prev, nothing to do.
			//
			//    prev
			// s--------e
			//  s-----e
			//     r
		}
	}
	return out
}
