package rangeset

import (
	"errors"
	"fmt"
)

// ErrInvalidRange is returned when a range starts after it ends.
var ErrInvalidRange = errors.New("invalid range")

// validate checks every range and joins one error per invalid range.
func validate[T Number](rr []Range[T]) error {
	var errs error
	for i, r := range rr {
		if err := r.Validate(); err != nil {
			errs = errors.Join(errs, fmt.Errorf("range %d: %w", i, err))
		}
	}
	return errs
}
