package nn

import (
	"math/rand"

	"github.com/born-ml/micrograd/internal/autodiff"
)

// Uniform draws a leaf value from U(low, high).
//
// The caller owns rng; seeding it makes initialization reproducible.
func Uniform(rng *rand.Rand, low, high float64) *autodiff.Value {
	//nolint:gosec // Using math/rand for weight initialization (not security-critical)
	return autodiff.NewValue(low + rng.Float64()*(high-low))
}

// requireRNG panics with a descriptive message when rng is nil.
func requireRNG(rng *rand.Rand, who string) {
	if rng == nil {
		panic(who + ": nil random source")
	}
}
