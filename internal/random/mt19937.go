// Package random provides the seeded generator used for quiz sampling.
//
// MT19937 is the standard 32-bit Mersenne Twister. Its output for a given
// seed is fixed by the reference algorithm, so a quiz generated from a seed
// can be reproduced by any conforming implementation.
package random

const (
	stateSize  = 624
	shiftSize  = 397
	matrixA    = 0x9908b0df
	upperMask  = 0x80000000
	lowerMask  = 0x7fffffff
	initFactor = 1812433253
)

// MT19937 is a 32-bit Mersenne Twister. It is not safe for concurrent use.
type MT19937 struct {
	state [stateSize]uint32
	index int
}

// NewMT19937 returns a generator initialized with init_genrand(seed)
func NewMT19937(seed uint32) *MT19937 {
	g := &MT19937{}
	g.Seed(seed)
	return g
}

// Seed resets the generator state from a single integer
func (g *MT19937) Seed(seed uint32) {
	g.state[0] = seed
	for i := 1; i < stateSize; i++ {
		prev := g.state[i-1]
		g.state[i] = initFactor*(prev^(prev>>30)) + uint32(i)
	}
	g.index = stateSize
}

// Uint32 returns the next tempered 32-bit output
func (g *MT19937) Uint32() uint32 {
	if g.index >= stateSize {
		g.twist()
	}

	y := g.state[g.index]
	g.index++

	y ^= y >> 11
	y ^= (y << 7) & 0x9d2c5680
	y ^= (y << 15) & 0xefc60000
	y ^= y >> 18

	return y
}

// Float64 returns a uniform value in [0, 1) with 32-bit resolution
func (g *MT19937) Float64() float64 {
	return float64(g.Uint32()) * (1.0 / 4294967296.0)
}

func (g *MT19937) twist() {
	for i := 0; i < stateSize; i++ {
		y := (g.state[i] & upperMask) | (g.state[(i+1)%stateSize] & lowerMask)
		next := g.state[(i+shiftSize)%stateSize] ^ (y >> 1)
		if y&1 != 0 {
			next ^= matrixA
		}
		g.state[i] = next
	}
	g.index = 0
}
