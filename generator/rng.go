// Package generator - random source and sampling primitives.
//
// Goals:
//   - Determinism: same seed ⇒ identical draws, hence identical tables.
//   - Encapsulation: every draw goes through Rand; no global source.
//   - Bounded memory: sampling k of n values costs O(k), not O(n), so wide
//     ranges such as [1, 1e12] are fine.
//
// Concurrency:
//   - math/rand.Rand is NOT goroutine-safe. Do not share one across runs
//     executing in parallel; build one per run with NewRand.
package generator

import "math/rand"

// defaultSeed is used when callers pass seed==0.
const defaultSeed int64 = 1

// Rand is the random capability consumed by the generator.
// *math/rand.Rand satisfies it.
type Rand interface {
	// Intn returns a uniform integer in [0,n). n > 0.
	Intn(n int) int
}

// NewRand returns a deterministic *rand.Rand.
// Policy: seed==0 ⇒ defaultSeed; otherwise the seed is used verbatim.
func NewRand(seed int64) *rand.Rand {
	if seed == 0 {
		seed = defaultSeed
	}

	return rand.New(rand.NewSource(seed))
}

// sampleDistinct draws k distinct values uniformly from [start, start+n)
// in random order: a partial Fisher–Yates shuffle over the virtual array
// 0..n-1 whose displaced slots live in a map.
//
// Preconditions (checked by callers): 0 ≤ k ≤ n.
// Complexity: O(k) time, O(k) space.
func sampleDistinct(rng Rand, start, n, k int) []int {
	out := make([]int, k)
	displaced := make(map[int]int, k)

	var i, j, vi, vj int
	var ok bool
	for i = 0; i < k; i++ {
		j = i + rng.Intn(n-i)
		if vj, ok = displaced[j]; !ok {
			vj = j
		}
		if vi, ok = displaced[i]; !ok {
			vi = i
		}
		displaced[j] = vi
		out[i] = start + vj
	}

	return out
}
