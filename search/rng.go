// Package search - RNG utilities for the placement engine.
//
// Centralizes deterministic random generation: same seed ⇒ identical
// layouts across platforms, no time-based sources hidden anywhere.
// math/rand.Rand is not goroutine-safe; each run owns its stream.
package search

import (
	"math/rand"

	"github.com/dungenlab/dungen/grid"
)

// defaultRNGSeed is the fixed "zero" seed used when callers pass seed==0.
// Arbitrary but stable to keep reproducible defaults.
const defaultRNGSeed int64 = 1

// rngFromSeed returns a deterministic *rand.Rand.
// Policy: seed==0 ⇒ defaultRNGSeed; otherwise the provided seed verbatim.
// Complexity: O(1).
func rngFromSeed(seed int64) *rand.Rand {
	s := seed
	if s == 0 {
		s = defaultRNGSeed
	}

	return rand.New(rand.NewSource(s))
}

// shuffleDoors performs an in-place Fisher–Yates shuffle of ds using rng.
// Shuffling affects only the order candidates and doors are tried, never
// which layouts are reachable.
// Complexity: O(n) time, O(1) extra space.
func shuffleDoors(ds []grid.Door, rng *rand.Rand) {
	for i := len(ds) - 1; i > 0; i-- {
		j := rng.Intn(i + 1)
		ds[i], ds[j] = ds[j], ds[i]
	}
}
