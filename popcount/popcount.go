// Package popcount counts set bits in fixed-width integers. A portable
// implementation is always available; a hardware backed one is selected at
// init when the CPU reports a population count instruction.
package popcount

import (
	"math/bits"

	"github.com/steakknife/hamming"
)

type Implementation struct {
	Name   string
	Uint64 func(x uint64) int
	Uint32 func(x uint32) int
	Byte   func(x byte) int

	// Hardware is true when the counts compile down to a CPU instruction.
	Hardware bool
}

// Portable uses SWAR arithmetic for words and a lookup table for bytes.
var Portable = Implementation{
	Name:   "portable",
	Uint64: hamming.CountBitsUint64,
	Uint32: hamming.CountBitsUint32,
	Byte:   hamming.CountBitsByte,
}

// Intrinsic relies on math/bits, which the compiler lowers to POPCNT on amd64
// and VCNT on arm64.
var Intrinsic = Implementation{
	Name:     "intrinsic",
	Uint64:   bits.OnesCount64,
	Uint32:   bits.OnesCount32,
	Byte:     bits.OnesCount8,
	Hardware: true,
}

var best = Portable

func init() {
	if hardwareSupported() {
		best = Intrinsic
	}
}

// Best returns the fastest implementation available on this machine.
func Best() Implementation {
	return best
}

// All lists every implementation together with whether it can run here.
func All() []Scenario {
	return []Scenario{
		{Implementation: Portable, Available: true},
		{Implementation: Intrinsic, Available: hardwareSupported()},
	}
}

type Scenario struct {
	Implementation
	Available bool
}

func Uint64(x uint64) int {
	return best.Uint64(x)
}

func Uint32(x uint32) int {
	return best.Uint32(x)
}

func Byte(x byte) int {
	return best.Byte(x)
}

// WordBits is the widest word the target handles natively: 64 on 64-bit
// platforms, 32 everywhere else.
func WordBits() int {
	if bits.UintSize == 64 {
		return 64
	}
	return 32
}
