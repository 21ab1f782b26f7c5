package game

// LCG constants (Knuth's MMIX multiplier and increment).
const (
	lcgMultiplier uint64 = 6364136223846793005
	lcgIncrement  uint64 = 1442695040888963407
)

// LCG is a 64-bit linear congruential generator. Every opponent move is
// derived from it, so the update must stay bit-exact across the guest and
// the host: uint64 multiply and add, wrapping modulo 2^64.
//
// LCG satisfies math/rand/v2.Source.
type LCG struct {
	state uint64
}

// NewLCG returns a generator whose state is seed.
func NewLCG(seed uint64) *LCG {
	return &LCG{state: seed}
}

// Uint64 advances the state and returns the new value.
func (r *LCG) Uint64() uint64 {
	r.state = r.state*lcgMultiplier + lcgIncrement
	return r.state
}

// IntRange returns lo + (draw mod (hi-lo+1)). Bounds are inclusive and
// lo must not exceed hi. When the range spans every uint64 the raw draw
// is returned, since the modulus would wrap to zero.
func (r *LCG) IntRange(lo, hi uint64) uint64 {
	if lo > hi {
		panic("game: IntRange called with lo > hi")
	}
	span := hi - lo + 1
	if span == 0 {
		return r.Uint64()
	}
	return lo + r.Uint64()%span
}

// Pick draws one cell from c. c is never empty, so Pick always has a
// valid modulus.
func (r *LCG) Pick(c Candidates) uint8 {
	return c.At(int(r.IntRange(0, uint64(c.last))))
}
