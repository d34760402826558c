// Package distance holds the Hamming distance strategies. Each strategy
// computes the distance of a buffer pair over a sub-range [start, end), so
// that disjoint ranges can be summed to the distance of the whole buffers.
package distance

import (
	"errors"
	"fmt"

	"github.com/thomasjungblut/go-hamming/popcount"
	"golang.org/x/exp/constraints"
)

var UnsupportedWidth = errors.New("unsupported word width")

// RangeFunc returns the distance between a[start:end] and b[start:end]. Both
// buffers must be at least end bytes long. Implementations are read-only and
// safe to call concurrently on the same buffers.
type RangeFunc func(a, b []byte, start, end int) int

// Bits64 is the bit distance processing eight bytes per step.
func Bits64(a, b []byte, start, end int) int {
	return bitsRange(view64, popcount.Uint64, a, b, start, end)
}

// Bits32 is the bit distance processing four bytes per step.
func Bits32(a, b []byte, start, end int) int {
	return bitsRange(view32, popcount.Uint32, a, b, start, end)
}

// Bits8 is the byte-wise bit distance, the reference the word based
// strategies must agree with.
func Bits8(a, b []byte, start, end int) int {
	return bitsTail(a, b, start, end)
}

// Bits returns the bit distance for the widest word of the target.
func Bits() RangeFunc {
	if popcount.WordBits() == 64 {
		return Bits64
	}
	return Bits32
}

// ForWidth returns the bit distance working on words of the given number of
// bits: 8, 32 or 64.
func ForWidth(bits int) (RangeFunc, error) {
	switch bits {
	case 64:
		return Bits64, nil
	case 32:
		return Bits32, nil
	case 8:
		return Bits8, nil
	}
	return nil, fmt.Errorf("%w: %d bits, expected 8, 32 or 64", UnsupportedWidth, bits)
}

// Chars counts the positions in [start, end) at which a and b hold different
// bytes.
func Chars(a, b []byte, start, end int) int {
	a, b = a[start:end], b[start:end]
	d := 0
	for i := range a {
		if a[i] != b[i] {
			d++
		}
	}
	return d
}

func bitsRange[W constraints.Unsigned](v wordView[W], count func(W) int, a, b []byte, start, end int) int {
	// bounds check both buffers once up front
	_, _ = a[start:end], b[start:end]

	n, tail := v.split(start, end)
	d := 0
	for i := 0; i < n; i++ {
		d += count(v.at(a, start, i) ^ v.at(b, start, i))
	}
	return d + bitsTail(a, b, tail, end)
}

func bitsTail(a, b []byte, start, end int) int {
	a, b = a[start:end], b[start:end]
	d := 0
	for i := range a {
		d += popcount.Byte(a[i] ^ b[i])
	}
	return d
}
