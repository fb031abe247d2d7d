package service

import (
	"math/rand"
	"sync"
)

// Source is the randomness provider for all games. It is injected so
// outcomes are reproducible in tests.
//
// Implementations must be safe for concurrent use.
type Source interface {
	// Intn returns a non-negative random int in [0, n).
	Intn(n int) int

	// Float64 returns a random float in [0, 1).
	Float64() float64
}

type lockedSource struct {
	mu sync.Mutex
	r  *rand.Rand
}

// NewSource creates a seeded Source backed by math/rand.
func NewSource(seed int64) Source {
	return &lockedSource{r: rand.New(rand.NewSource(seed))}
}

func (s *lockedSource) Intn(n int) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.r.Intn(n)
}

func (s *lockedSource) Float64() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.r.Float64()
}

// weightedIndex picks an index proportionally to the given weights.
// Weights are relative and normalized by their sum; they need not sum
// to 1. Zero-weight entries are never picked.
func weightedIndex(src Source, weights []float64) int {
	var total float64
	for _, w := range weights {
		total += w
	}
	target := src.Float64() * total
	for i, w := range weights {
		target -= w
		if target < 0 {
			return i
		}
	}
	// Float rounding can leave target at exactly zero after the last
	// positive weight; fall back to the last entry with weight.
	for i := len(weights) - 1; i >= 0; i-- {
		if weights[i] > 0 {
			return i
		}
	}
	return len(weights) - 1
}
