// SPDX-License-Identifier: MIT

package universe

import "math/rand"

// defaultSeed is used when Config.Seed is 0.
const defaultSeed int64 = 1

// streamRNG returns the deterministic stream of universe u.
// Policy: seed==0 ⇒ defaultSeed.
func streamRNG(seed int64, u int) *rand.Rand {
	if seed == 0 {
		seed = defaultSeed
	}
	return rand.New(rand.NewSource(deriveSeed(seed, uint64(u))))
}

// deriveSeed mixes a parent seed and a stream id with a SplitMix64 finalizer,
// so neighbouring stream ids yield uncorrelated seeds.
func deriveSeed(parent int64, stream uint64) int64 {
	x := uint64(parent) ^ (stream + 0x9e3779b97f4a7c15)
	x += 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	x ^= x >> 31
	return int64(x)
}
