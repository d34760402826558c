// Package partition splits a distance computation over a buffer pair into
// contiguous chunks, runs all but the last chunk on their own goroutines and
// sums the partial distances. Strategies cannot fail, so the errgroup only
// serves as the join barrier; its error is still passed on.
package partition

import (
	"errors"
	"fmt"
	"runtime"

	"github.com/thomasjungblut/go-hamming/distance"
	"golang.org/x/sync/errgroup"
)

// AutoDetect resolves to the number of logical CPUs.
const AutoDetect = -1

var InvalidThreadCount = errors.New("invalid thread count")

type Driver struct {
	fn     distance.RangeFunc
	detect func() int
}

// NewDriver creates a driver for the given strategy, for example:
// partition.NewDriver(distance.Bits(), partition.HardwareConcurrency(runtime.NumCPU))
func NewDriver(fn distance.RangeFunc, opts ...Option) *Driver {
	o := &Options{detect: runtime.NumCPU}
	for _, opt := range opts {
		opt(o)
	}
	return &Driver{fn: fn, detect: o.detect}
}

// Distance returns the strategy's distance over the whole of a and b using
// the given number of threads. The caller guarantees len(a) == len(b); a
// shorter b is reported as distance.OutOfRange before any work starts.
// threads is 1 for a sequential run, AutoDetect for one thread per logical
// CPU, or any larger positive count. The result is the same for every valid
// thread count.
func (d *Driver) Distance(a, b []byte, threads int) (int, error) {
	n := 1
	if threads != 1 {
		var err error
		n, err = ResolveThreads(threads, len(a), d.detect)
		if err != nil {
			return 0, err
		}
	}

	chunks := Plan(len(a), n)
	// chunks are cut from a, checking against b covers both buffers
	for _, c := range chunks {
		if err := c.Validate(len(b)); err != nil {
			return 0, err
		}
	}

	if n == 1 {
		return d.fn(a, b, 0, len(a)), nil
	}

	last := len(chunks) - 1
	partials := make([]int, last)

	var group errgroup.Group
	for i, c := range chunks[:last] {
		i, c := i, c
		group.Go(func() error {
			partials[i] = d.fn(a, b, c.Start, c.End)
			return nil
		})
	}

	// the calling goroutine takes the trailing chunk while the workers run
	total := d.fn(a, b, chunks[last].Start, chunks[last].End)

	if err := group.Wait(); err != nil {
		return 0, err
	}
	for _, p := range partials {
		total += p
	}
	return total, nil
}

// ResolveThreads validates a requested thread count and normalizes it for a
// buffer of the given length: AutoDetect becomes detect() (or 1 if detection
// yields nothing), and the result is clamped to [1, length].
func ResolveThreads(threads int, length int, detect func() int) (int, error) {
	if threads != AutoDetect && threads <= 0 {
		return 0, fmt.Errorf("%w: threads must be >= 1 or -1; %d given", InvalidThreadCount, threads)
	}

	if threads == AutoDetect {
		threads = 1
		if detect != nil {
			if n := detect(); n > 0 {
				threads = n
			}
		}
	}

	// never more workers than bytes
	if threads > length {
		threads = length
	}
	if threads < 1 {
		threads = 1
	}
	return threads, nil
}

// Plan splits [0, length) into threads contiguous chunks. All but the last
// chunk are length/threads wide, the last one absorbs the remainder. threads
// must be in [1, max(1, length)].
func Plan(length int, threads int) []distance.Range {
	stride := length / threads
	chunks := make([]distance.Range, threads)
	for i := 0; i < threads-1; i++ {
		chunks[i] = distance.Range{Start: i * stride, End: (i + 1) * stride}
	}
	chunks[threads-1] = distance.Range{Start: (threads - 1) * stride, End: length}
	return chunks
}

type Options struct {
	detect func() int
}

type Option func(*Options)

// HardwareConcurrency replaces the logical CPU detection used for AutoDetect.
func HardwareConcurrency(detect func() int) Option {
	return func(args *Options) {
		args.detect = detect
	}
}
