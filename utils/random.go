package utils

import (
	"math/rand/v2"
	"time"
)

// NewRandomSource returns a deterministic PCG generator for seed. A zero seed
// is replaced by the current time so unseeded runs differ.
func NewRandomSource(seed int64) *rand.Rand {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewPCG(uint64(seed), 0))
}
