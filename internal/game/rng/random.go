// Package rng provides the deterministic pseudo-random source every
// probabilistic part of the progression core draws from.
//
// A Random is a Mulberry32 generator: 32 bits of state, fast, and fully
// reproducible from its seed. Identical seeds and identical call sequences
// always produce identical values.
package rng

import (
	"encoding/binary"
	"math"
)

// golden is the Mulberry32 state increment.
const golden uint32 = 0x6d2b79f5

// forkRange bounds the seeds handed to forked children.
const forkRange = 2147483647

// Random is a seeded Mulberry32 generator.
//
// Invariant: every method is a pure function of the current state, and every
// draw advances the state exactly once.
// Random is NOT safe for concurrent use; give each goroutine its own instance
// via Fork.
type Random struct {
	state uint32
	seed  int64
}

// New returns a generator seeded with seed. Only the low 32 bits of seed feed
// the state; Seed reports the full value.
//
// Postcondition: two generators built from the same seed produce identical sequences.
func New(seed int64) *Random {
	return &Random{state: uint32(seed), seed: seed}
}

// Seed returns the value the generator was constructed with.
func (r *Random) Seed() int64 {
	return r.seed
}

// Next returns a float in [0, 1).
func (r *Random) Next() float64 {
	r.state += golden
	t := (r.state ^ (r.state >> 15)) * (1 | r.state)
	t = (t + (t^(t>>7))*(61|t)) ^ t
	return float64(t^(t>>14)) / 4294967296
}

// NextInt returns an integer in [min, max] inclusive.
//
// Precondition: min <= max.
// Postcondition: returns min without consuming a draw when min == max.
func (r *Random) NextInt(min, max int) int {
	if min == max {
		return min
	}
	return int(math.Floor(r.Next()*float64(max-min+1))) + min
}

// NextFloat returns a float in [min, max).
func (r *Random) NextFloat(min, max float64) float64 {
	return r.Next()*(max-min) + min
}

// Chance reports true with probability p.
//
// Postcondition: p <= 0 always returns false and p >= 1 always returns true,
// neither consuming a draw.
func (r *Random) Chance(p float64) bool {
	if p <= 0 {
		return false
	}
	if p >= 1 {
		return true
	}
	return r.Next() < p
}

// Fork returns a child generator seeded from the next draw of r.
// The child is reproducible only together with the exact parent call
// sequence that preceded the fork.
func (r *Random) Fork() *Random {
	return New(int64(math.Floor(r.Next() * forkRange)))
}

// Shuffle permutes n elements in place with a Fisher-Yates pass, calling
// swap for each exchange. It draws n-1 values.
func (r *Random) Shuffle(n int, swap func(i, j int)) {
	for i := n - 1; i > 0; i-- {
		j := r.NextInt(0, i)
		swap(i, j)
	}
}

// Read fills p with bytes taken from successive draws, four bytes per draw.
// It lets a Random serve as the io.Reader behind deterministic UUIDs.
//
// Postcondition: n == len(p) and err == nil.
func (r *Random) Read(p []byte) (int, error) {
	var buf [4]byte
	for i := 0; i < len(p); i += 4 {
		binary.LittleEndian.PutUint32(buf[:], uint32(r.Next()*4294967296))
		copy(p[i:], buf[:])
	}
	return len(p), nil
}
