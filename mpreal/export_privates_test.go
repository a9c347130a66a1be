// SPDX-License-Identifier: MIT

package mpreal

import "math/rand"

// Test bridge (white-box): exposes hooks over unexported state to mpreal_test
// only, without widening the production API.

// ResetDefaultRandom rewinds the shared nil-rng stream to its initial seed.
func ResetDefaultRandom() {
	defaultRandom.Lock()
	defer defaultRandom.Unlock()
	defaultRandom.rng = rand.New(rand.NewSource(defaultRandomSeed))
}
