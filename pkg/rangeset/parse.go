package rangeset

import (
	"fmt"
	"strconv"
	"strings"
)

// ParseFunc parses a single bound.
type ParseFunc[T Number] func(s string) (T, error)

func ParseInt(s string) (Range[int64], error) {
	return parseRange(s, func(s string) (int64, error) {
		return strconv.ParseInt(s, 10, 64)
	})
}

func ParseUint(s string) (Range[uint64], error) {
	return parseRange(s, func(s string) (uint64, error) {
		return strconv.ParseUint(s, 10, 64)
	})
}

func ParseFloat(s string) (Range[float64], error) {
	return parseRange(s, func(s string) (float64, error) {
		return strconv.ParseFloat(s, 64)
	})
}

// ParseList parses a comma separated list of ranges such as "1-3, 5, 8-9".
// A single value is a point range. The ranges are returned as written,
// without normalization.
func ParseList[T Number](s string, parse func(string) (Range[T], error)) ([]Range[T], error) {
	var rr []Range[T]
	for _, p := range strings.Split(s, ",") {
		if strings.TrimSpace(p) == "" {
			continue
		}
		r, err := parse(p)
		if err != nil {
			return nil, err
		}
		rr = append(rr, r)
	}
	return rr, nil
}

// parseRange parses "from-to" or a single value "v". A leading '-' is taken
// as the sign of from, so "-5--1" is the range from -5 to -1.
func parseRange[T Number](s string, parse ParseFunc[T]) (Range[T], error) {
	var r Range[T]
	t := strings.TrimSpace(s)
	if t == "" {
		return r, fmt.Errorf("empty range %q", s)
	}
	h := strings.IndexByte(t[1:], '-')
	if h == -1 {
		v, err := parse(t)
		if err != nil {
			return r, fmt.Errorf("invalid value %q in range %q", t, s)
		}
		r = Range[T]{Start: v, End: v}
	} else {
		from, to := strings.TrimSpace(t[:h+1]), strings.TrimSpace(t[h+2:])
		start, err := parse(from)
		if err != nil {
			return r, fmt.Errorf("invalid from %q in range %q", from, s)
		}
		end, err := parse(to)
		if err != nil {
			return r, fmt.Errorf("invalid to %q in range %q", to, s)
		}
		r = Range[T]{Start: start, End: end}
	}
	if err := r.Validate(); err != nil {
		return Range[T]{}, err
	}
	return r, nil
}
