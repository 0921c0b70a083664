// Package rng provides the random sources used by problem and distractor
// generation. Every generator takes a Source so tests can script outcomes.
package rng

import (
	"math/rand"
	"time"
)

// Source produces uniform integers and shuffles slices.
type Source interface {
	// IntRange returns a uniform integer in [lo, hi]. If hi < lo, lo is returned.
	IntRange(lo, hi int) int

	// Shuffle permutes n elements using swap (Fisher-Yates).
	Shuffle(n int, swap func(i, j int))
}

// Seeded is a deterministic Source backed by math/rand.
// Position counts draws so a run can be described as (seed, position).
type Seeded struct {
	seed int64
	src  *rand.Rand
	pos  int64
}

// New creates a seeded source. A zero seed means "seed from the clock".
func New(seed int64) *Seeded {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &Seeded{
		seed: seed,
		src:  rand.New(rand.NewSource(seed)),
	}
}

// IntRange implements Source.
func (r *Seeded) IntRange(lo, hi int) int {
	if hi <= lo {
		return lo
	}
	r.pos++
	return lo + r.src.Intn(hi-lo+1)
}

// Shuffle implements Source.
func (r *Seeded) Shuffle(n int, swap func(i, j int)) {
	for i := n - 1; i > 0; i-- {
		r.pos++
		j := r.src.Intn(i + 1)
		swap(i, j)
	}
}

// Seed returns the seed the source was created with.
func (r *Seeded) Seed() int64 {
	return r.seed
}

// Position returns the number of draws made so far.
func (r *Seeded) Position() int64 {
	return r.pos
}

// Restore recreates a source and advances it to the given position.
func Restore(seed int64, position int64) *Seeded {
	r := New(seed)
	for i := int64(0); i < position; i++ {
		r.src.Int63()
	}
	r.pos = position
	return r
}
