package popcount

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// naive Kernighan loop as the reference count
func kernighan(x uint64) int {
	c := 0
	for x != 0 {
		x &= x - 1
		c++
	}
	return c
}

func TestPopCountKnownValues(t *testing.T) {
	for _, scenario := range All() {
		t.Run(scenario.Name, func(t *testing.T) {
			if !scenario.Available {
				t.Skip("cpu instruction not available")
			}
			assert.Equal(t, 0, scenario.Uint64(0))
			assert.Equal(t, 64, scenario.Uint64(math.MaxUint64))
			assert.Equal(t, 1, scenario.Uint64(1<<63))
			assert.Equal(t, 32, scenario.Uint64(0xAAAAAAAAAAAAAAAA))

			assert.Equal(t, 0, scenario.Uint32(0))
			assert.Equal(t, 32, scenario.Uint32(math.MaxUint32))
			assert.Equal(t, 16, scenario.Uint32(0x0F0F0F0F))
			assert.Equal(t, 4, scenario.Byte('A'^'Z'))
		})
	}
}

func TestPopCountAllBytes(t *testing.T) {
	for _, scenario := range All() {
		t.Run(scenario.Name, func(t *testing.T) {
			if !scenario.Available {
				t.Skip("cpu instruction not available")
			}
			for i := 0; i < 256; i++ {
				require.Equalf(t, kernighan(uint64(i)), scenario.Byte(byte(i)), "unexpected count for byte %d", i)
			}
		})
	}
}

func TestPopCountRandomWords(t *testing.T) {
	r := rand.New(rand.NewSource(42))
	for _, scenario := range All() {
		t.Run(scenario.Name, func(t *testing.T) {
			if !scenario.Available {
				t.Skip("cpu instruction not available")
			}
			for i := 0; i < 10000; i++ {
				x := r.Uint64()
				require.Equalf(t, kernighan(x), scenario.Uint64(x), "unexpected count for %x", x)
				require.Equalf(t, kernighan(uint64(uint32(x))), scenario.Uint32(uint32(x)), "unexpected count for %x", uint32(x))
			}
		})
	}
}

func TestBestIsAvailable(t *testing.T) {
	best := Best()
	found := false
	for _, scenario := range All() {
		if scenario.Name == best.Name {
			assert.True(t, scenario.Available)
			found = true
		}
	}
	assert.True(t, found)
	assert.Equal(t, 8, Byte(0xFF))
	assert.Equal(t, 3, Uint32(7))
	assert.Equal(t, 64, Uint64(math.MaxUint64))
}

func TestWordBits(t *testing.T) {
	w := WordBits()
	assert.Contains(t, []int{32, 64}, w)
}
