// Package rand provides the deterministic random number generation used by
// the sampler. It implements the Mersenne Twister (MT19937) algorithm with
// the same seeding, uniform and gaussian constructions as Python's
// numpy.random.RandomState, so seeded runs are reproducible across both.
//
// Generator state is explicit and caller-owned: there is no package-level
// generator, and a single instance must not be shared across goroutines.
package rand

import "math"

const (
	mtN        = 624
	mtM        = 397
	matrixA    = 0x9908b0df
	upperMask  = 0x80000000
	lowerMask  = 0x7fffffff
	temperingB = 0x9d2c5680
	temperingC = 0xefc60000
)

// MT19937 is a Mersenne Twister random number generator compatible with
// NumPy's RandomState. mti indexes the next untempered word; when it reaches
// 624 the whole state array is regenerated before the next word is returned.
type MT19937 struct {
	mt  [mtN]uint32
	mti int

	// Second variate of the last polar-transform pair, consumed by the
	// next Gauss call before a new pair is generated.
	gauss    float64
	hasGauss bool
}

// NewMT19937 creates a new Mersenne Twister with the given seed.
// This matches numpy.random.RandomState(seed).
func NewMT19937(seed uint32) *MT19937 {
	mt := &MT19937{}
	mt.Seed(seed)
	return mt
}

// Seed initializes the generator state from a seed and discards any cached
// gaussian variate. Any seed value is valid.
// This matches numpy.random.RandomState(seed) initialization.
func (mt *MT19937) Seed(seed uint32) {
	mt.mt[0] = seed
	for i := 1; i < mtN; i++ {
		mt.mt[i] = 1812433253*(mt.mt[i-1]^(mt.mt[i-1]>>30)) + uint32(i)
	}
	mt.mti = mtN
	mt.gauss = 0
	mt.hasGauss = false
}

// Uint32 generates a random uint32.
func (mt *MT19937) Uint32() uint32 {
	var y uint32
	mag01 := [2]uint32{0, matrixA}

	if mt.mti >= mtN {
		// Generate N words at a time
		var kk int
		for kk = 0; kk < mtN-mtM; kk++ {
			y = (mt.mt[kk] & upperMask) | (mt.mt[kk+1] & lowerMask)
			mt.mt[kk] = mt.mt[kk+mtM] ^ (y >> 1) ^ mag01[y&1]
		}
		for ; kk < mtN-1; kk++ {
			y = (mt.mt[kk] & upperMask) | (mt.mt[kk+1] & lowerMask)
			mt.mt[kk] = mt.mt[kk+(mtM-mtN)] ^ (y >> 1) ^ mag01[y&1]
		}
		y = (mt.mt[mtN-1] & upperMask) | (mt.mt[0] & lowerMask)
		mt.mt[mtN-1] = mt.mt[mtM-1] ^ (y >> 1) ^ mag01[y&1]
		mt.mti = 0
	}

	y = mt.mt[mt.mti]
	mt.mti++

	// Tempering
	y ^= y >> 11
	y ^= (y << 7) & temperingB
	y ^= (y << 15) & temperingC
	y ^= y >> 18

	return y
}

// Float64 generates a random float64 in [0, 1). The upper bound is never
// returned. This matches numpy's random_sample() / uniform(0, 1).
func (mt *MT19937) Float64() float64 {
	// NumPy combines two words into a 53-bit mantissa:
	// (Uint32() >> 5) * 2^26 + (Uint32() >> 6), divided by 2^53.
	a := mt.Uint32() >> 5
	b := mt.Uint32() >> 6
	return (float64(a)*67108864.0 + float64(b)) * (1.0 / 9007199254740992.0)
}

// Uniform generates a random float64 in [low, high).
// This matches numpy.random.uniform(low, high).
func (mt *MT19937) Uniform(low, high float64) float64 {
	return low + (high-low)*mt.Float64()
}

// RandInt32 generates a random int32 in the full int32 range.
// This matches numpy.random.RandomState.randint(INT32_MIN, INT32_MAX+1).
// NumPy generates a uint32 and subtracts 2^31 to shift the range.
func (mt *MT19937) RandInt32() int32 {
	// Generate a uint32 and shift to signed range
	// NumPy does: raw_uint32 + INT32_MIN = raw_uint32 - 2^31
	return int32(mt.Uint32() - 0x80000000)
}

// Gauss generates a standard normal variate using the polar (Marsaglia)
// transform, matching numpy's RandomState gaussian draw exactly: each
// transform produces a pair, one value is returned and the other is cached
// for the following call.
func (mt *MT19937) Gauss() float64 {
	if mt.hasGauss {
		g := mt.gauss
		mt.gauss = 0
		mt.hasGauss = false
		return g
	}

	var x1, x2, r2 float64
	for {
		x1 = 2.0*mt.Float64() - 1.0
		x2 = 2.0*mt.Float64() - 1.0
		r2 = x1*x1 + x2*x2
		if r2 < 1.0 && r2 != 0.0 {
			break
		}
	}

	f := math.Sqrt(-2.0 * math.Log(r2) / r2)
	mt.gauss = f * x1
	mt.hasGauss = true
	return f * x2
}

// Normal generates a normal variate with the given mean and standard
// deviation. This matches numpy.random.normal(mean, std).
func (mt *MT19937) Normal(mean, std float64) float64 {
	return mean + std*mt.Gauss()
}
