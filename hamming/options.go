package hamming

import (
	"github.com/thomasjungblut/go-hamming/partition"
	"github.com/thomasjungblut/go-hamming/popcount"
)

const DefaultThreads = 1

type Options struct {
	threads       int
	wordBits      int
	driverOptions []partition.Option
}

type Option func(*Options)

// Threads sets the number of goroutines the distance is computed with: 1 runs
// on the caller only, -1 uses one per logical CPU.
func Threads(n int) Option {
	return func(args *Options) {
		args.threads = n
	}
}

// WordBits forces the word width of BitsDistance to 8, 32 or 64 bits. The
// default is the widest native word of the platform.
func WordBits(n int) Option {
	return func(args *Options) {
		args.wordBits = n
	}
}

// HardwareConcurrency replaces the logical CPU detection used by Threads(-1).
func HardwareConcurrency(detect func() int) Option {
	return func(args *Options) {
		args.driverOptions = append(args.driverOptions, partition.HardwareConcurrency(detect))
	}
}

func newOptions(opts []Option) *Options {
	o := &Options{
		threads:  DefaultThreads,
		wordBits: popcount.WordBits(),
	}
	for _, opt := range opts {
		opt(o)
	}
	return o
}
