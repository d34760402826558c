package distance

import (
	"encoding/binary"

	"golang.org/x/exp/constraints"
)

// wordView reads the whole-word prefix of a byte range as fixed width
// unsigned integers. Every load goes through a bounds checked sub-slice, so a
// range that does not fit the buffer panics instead of reading past it.
type wordView[W constraints.Unsigned] struct {
	size int
	load func(b []byte) W
}

var view64 = wordView[uint64]{size: 8, load: binary.LittleEndian.Uint64}
var view32 = wordView[uint32]{size: 4, load: binary.LittleEndian.Uint32}

// split returns the number of whole words in [start, end) and the index at
// which the trailing bytes begin.
func (v wordView[W]) split(start, end int) (int, int) {
	n := (end - start) / v.size
	return n, start + n*v.size
}

func (v wordView[W]) at(buf []byte, start, i int) W {
	off := start + i*v.size
	return v.load(buf[off : off+v.size])
}
