package rlnc

import "math"

// MersenneTwister is an implementation of the MT19937 PRNG of Matsumoto and
// Nishimura (32-bit version). It satisfies math/rand.Source and is used by
// this package's property tests to drive reproducible synthetic payload
// generation independently of the package's own Generator (component C),
// so that tests exercising Generator's determinism aren't themselves
// seeded by Generator.
type MersenneTwister struct {
	mt          [624]uint32
	index       int
	initialized bool
}

// NewMersenneTwister creates a new MT19937 PRNG with the given seed. The
// seed is folded to 32 bits by XORing its high and low halves.
func NewMersenneTwister(seed int64) *MersenneTwister {
	t := &MersenneTwister{}
	t.Seed(seed)
	return t
}

// Seed reinitializes the twister's state from seed.
func (t *MersenneTwister) Seed(seed int64) {
	t.initialize(uint32(((seed >> 32) ^ seed) & math.MaxUint32))
}

// Int63 produces a value in [0, 2^63) by combining two Uint32 draws, so
// MersenneTwister satisfies math/rand.Source.
func (t *MersenneTwister) Int63() int64 {
	a := t.Uint32()
	b := t.Uint32()
	return (int64(a) << 31) ^ int64(b)
}

// Uint32 returns the next 32-bit output of the twister.
func (t *MersenneTwister) Uint32() uint32 {
	if !t.initialized {
		t.initialize(4357) // value from the original paper
	}

	if t.index == 0 {
		t.generateUntempered()
	}

	y := t.mt[t.index]
	t.index++
	if t.index >= len(t.mt) {
		t.index = 0
	}
	y ^= y >> 11
	y ^= (y << 7) & 0x9d2c5680
	y ^= (y << 15) & 0xefc60000
	y ^= y >> 18

	return y
}

func (t *MersenneTwister) initialize(seed uint32) {
	t.index = 0
	t.mt[0] = seed

	for i := 1; i < len(t.mt); i++ {
		t.mt[i] = (1812433253*(t.mt[i-1]^(t.mt[i-1]>>30)) + uint32(i)) & math.MaxUint32
	}
	t.initialized = true
}

func (t *MersenneTwister) generateUntempered() {
	mag01 := [2]uint32{0x0, 0x9908b0df}
	for i := 0; i < len(t.mt); i++ {
		y := (t.mt[i] & 0x80000000) | (t.mt[(i+1)%len(t.mt)] & 0x7fffffff)
		t.mt[i] = (t.mt[(i+397)%len(t.mt)] ^ (y >> 1)) ^ mag01[y&0x01]
	}
}
