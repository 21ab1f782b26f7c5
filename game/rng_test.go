package game

import (
	"math"
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var _ rand.Source = (*LCG)(nil)

func TestLCGKnownSequence(t *testing.T) {
	r := NewLCG(1)
	assert.Equal(t, uint64(7806831264735756412), r.Uint64())
	assert.Equal(t, uint64(9396908728118811419), r.Uint64())
	assert.Equal(t, uint64(11960119808228829710), r.Uint64())

	// zero seed yields the increment
	assert.Equal(t, lcgIncrement, NewLCG(0).Uint64())
}

func TestLCGWrapsAround(t *testing.T) {
	// (2^64-1)*a + c wraps to c-a mod 2^64
	assert.Equal(t, uint64(13525302890751722018), NewLCG(math.MaxUint64).Uint64())
}

func TestLCGDeterministic(t *testing.T) {
	a, b := NewLCG(42), NewLCG(42)
	for i := 0; i < 100; i++ {
		require.Equal(t, a.Uint64(), b.Uint64(), "draw %d", i)
	}
}

func TestIntRange(t *testing.T) {
	// 7806831264735756412 mod 8 = 4
	assert.Equal(t, uint64(4), NewLCG(1).IntRange(0, 7))
	assert.Equal(t, uint64(14), NewLCG(1).IntRange(10, 17))

	// single value range always returns it
	r := NewLCG(99)
	for i := 0; i < 10; i++ {
		assert.Equal(t, uint64(3), r.IntRange(3, 3))
	}

	// full span must not divide by zero
	assert.Equal(t, uint64(7806831264735756412), NewLCG(1).IntRange(0, math.MaxUint64))

	assert.Panics(t, func() { NewLCG(1).IntRange(5, 4) })
}

func TestPickFirstOpponentMove(t *testing.T) {
	var b Board
	require.True(t, b.Apply(0, Human))

	c, ok := b.Candidates()
	require.True(t, ok)
	require.Equal(t, 8, c.Len())

	assert.Equal(t, uint8(5), NewLCG(1).Pick(c))
}
