package distance

import (
	"errors"
	"fmt"
)

var OutOfRange = errors.New("range out of bounds")

// Range is the half-open index interval [Start, End) over a buffer pair.
type Range struct {
	Start int
	End   int
}

// Validate checks 0 <= Start <= End <= length.
func (r Range) Validate(length int) error {
	if r.Start < 0 || r.Start > r.End || r.End > length {
		return fmt.Errorf("%w: %v for length %d", OutOfRange, r, length)
	}
	return nil
}

func (r Range) String() string {
	return fmt.Sprintf("[%d, %d)", r.Start, r.End)
}
