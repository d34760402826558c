package hamming

import (
	"errors"

	"github.com/thomasjungblut/go-hamming/partition"
)

// InvalidArgument matches every error returned by BitsDistance and
// StringsDistance.
var InvalidArgument = errors.New("invalid argument")

var UnequalBlobs = errors.New("hamming distance is undefined for blobs of unequal length")
var UnequalStrings = errors.New("hamming distance is undefined for strings of unequal length")

var InvalidThreadCount = partition.InvalidThreadCount

// ArgumentError carries the reason a call was rejected. Its message is the
// message of the cause.
type ArgumentError struct {
	Err error
}

func (e *ArgumentError) Error() string {
	return e.Err.Error()
}

func (e *ArgumentError) Unwrap() error {
	return e.Err
}

func (e *ArgumentError) Is(target error) bool {
	return target == InvalidArgument
}

func invalid(err error) error {
	return &ArgumentError{Err: err}
}
