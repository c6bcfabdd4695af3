// Package bitset provides a flat, word-packed bit vector used by the
// coverage index (C3) and the transaction graph (C4) to store
// per-vertex adjacency and tuple membership in O(1) words per 64 bits,
// the packed-representation style the spec calls for in place of a
// map-of-maps. Grounded on the teacher's matrix.Dense: a single flat
// backing slice indexed arithmetically rather than nested containers.
package bitset

import "math/bits"

// Set is a fixed-size bit vector over [0, n).
type Set struct {
	n     int
	words []uint64
}

// New allocates a zeroed Set over n bits.
func New(n int) *Set {
	return &Set{n: n, words: make([]uint64, (n+63)/64)}
}

// Len returns the number of addressable bits.
func (s *Set) Len() int { return s.n }

// Set turns bit i on.
func (s *Set) Set(i int) { s.words[i>>6] |= 1 << uint(i&63) }

// Clear turns bit i off.
func (s *Set) Clear(i int) { s.words[i>>6] &^= 1 << uint(i&63) }

// Test reports whether bit i is on.
func (s *Set) Test(i int) bool { return s.words[i>>6]&(1<<uint(i&63)) != 0 }

// ClearAll zeroes every bit.
func (s *Set) ClearAll() {
	for i := range s.words {
		s.words[i] = 0
	}
}

// CopyFrom overwrites the receiver's bits with other's. Both must have
// the same length.
func (s *Set) CopyFrom(other *Set) { copy(s.words, other.words) }

// Count returns the number of set bits.
func (s *Set) Count() int {
	c := 0
	for _, w := range s.words {
		c += bits.OnesCount64(w)
	}

	return c
}

// AndNotCount returns |s \ other| without allocating, i.e. the number
// of bits set in s but not in other.
func (s *Set) AndNotCount(other *Set) int {
	c := 0
	for i, w := range s.words {
		c += bits.OnesCount64(w &^ other.words[i])
	}

	return c
}

// Each calls fn for every set bit, in ascending order, stopping early
// if fn returns false.
func (s *Set) Each(fn func(i int) bool) {
	for wi, w := range s.words {
		for w != 0 {
			b := bits.TrailingZeros64(w)
			idx := wi*64 + b
			if idx >= s.n {
				return
			}
			if !fn(idx) {
				return
			}
			w &= w - 1
		}
	}
}
