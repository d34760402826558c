// Package hamming computes the Hamming distance of two equal length inputs,
// either bit by bit (BitsDistance) or character by character
// (StringsDistance), optionally spread over several goroutines:
//
//	d, err := hamming.BitsDistance("123A", "123Z")                    // 4
//	d, err = hamming.StringsDistance("123A", "123Z", hamming.Threads(-1)) // 1
package hamming

import (
	"unsafe"

	"github.com/thomasjungblut/go-hamming/distance"
	"github.com/thomasjungblut/go-hamming/partition"
)

// Input is anything that can be viewed as a byte sequence.
type Input interface {
	~string | ~[]byte
}

// BitsDistance returns the number of differing bits between blob1 and blob2.
// Returns an error matching UnequalBlobs if the lengths differ, and one
// matching InvalidThreadCount if Threads was given a value <= 0 other than -1.
func BitsDistance[T Input](blob1, blob2 T, opts ...Option) (int, error) {
	o := newOptions(opts)
	if len(blob1) != len(blob2) {
		return 0, invalid(UnequalBlobs)
	}
	fn, err := distance.ForWidth(o.wordBits)
	if err != nil {
		return 0, invalid(err)
	}
	return run(fn, o, bytesOf(blob1), bytesOf(blob2))
}

// StringsDistance returns the number of positions at which str1 and str2
// hold different bytes. Errors are the same as for BitsDistance, with
// UnequalStrings on a length mismatch.
func StringsDistance[T Input](str1, str2 T, opts ...Option) (int, error) {
	o := newOptions(opts)
	if len(str1) != len(str2) {
		return 0, invalid(UnequalStrings)
	}
	return run(distance.Chars, o, bytesOf(str1), bytesOf(str2))
}

func run(fn distance.RangeFunc, o *Options, a, b []byte) (int, error) {
	driver := partition.NewDriver(fn, o.driverOptions...)
	d, err := driver.Distance(a, b, o.threads)
	if err != nil {
		return 0, invalid(err)
	}
	return d, nil
}

// bytesOf views strings without copying, they are never written to.
func bytesOf[T Input](v T) []byte {
	switch x := any(v).(type) {
	case []byte:
		return x
	case string:
		return unsafe.Slice(unsafe.StringData(x), len(x))
	}
	return []byte(v)
}
