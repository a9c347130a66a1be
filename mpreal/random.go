// SPDX-License-Identifier: MIT

package mpreal

import (
	"math/big"
	"math/rand"
	"sync"
)

// defaultRandomSeed seeds the shared stream used whenever a caller passes a
// nil *rand.Rand. The value is arbitrary but stable to keep reproducible defaults.
const defaultRandomSeed int64 = 1

// defaultRandom is the process-wide stream behind nil-rng draws. It advances
// on every draw and is guarded because math/rand.Rand is NOT goroutine-safe.
var defaultRandom = struct {
	sync.Mutex
	rng *rand.Rand
}{rng: rand.New(rand.NewSource(defaultRandomSeed))}

// randomMantissa returns a uniform integer in [0, 2^bits) drawn from rng, or
// from the shared default stream when rng is nil.
func randomMantissa(rng *rand.Rand, bits uint) *big.Int {
	limit := new(big.Int).Lsh(big.NewInt(1), bits)
	if rng != nil {
		return new(big.Int).Rand(rng, limit)
	}

	defaultRandom.Lock()
	defer defaultRandom.Unlock()

	return new(big.Int).Rand(defaultRandom.rng, limit)
}

// Random returns a value uniform on [0, 1) with exactly Prec() random
// mantissa bits, at the context precision and mode.
// A nil rng draws from a shared stream seeded with defaultRandomSeed: values
// advance from call to call, and a fresh process replays the same sequence.
// Callers needing isolation or parallel reproducibility pass their own rng.
func (c *Context) Random(rng *rand.Rand) *big.Float {
	m := randomMantissa(rng, c.prec) // m in [0, 2^prec)

	z := c.New().SetInt(m)

	return z.SetMantExp(z, -int(c.prec))
}

// RandomRange returns low + (high − low)·Random(rng), rounded at the context
// precision and mode. No ordering of low and high is required.
func (c *Context) RandomRange(rng *rand.Rand, low, high *big.Float) *big.Float {
	z := c.Random(rng)
	span := c.New().Sub(high, low)
	z.Mul(span, z)

	return z.Add(low, z)
}
