// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - visitedSet: the visited-index tracker behind the in-place rectangular
//     transpose. One abstraction, two backing strategies selected purely by
//     element count, so the cycle-following loop exists exactly once.

package matrix

import "github.com/bits-and-blooms/bitset"

// wordBits is the capacity of the inline word backing: matrices with at most
// this many elements track visited cells in a single uint64, allocating
// nothing on the heap.
const wordBits = 64

// visitedSet records which flat indices of the transpose permutation have
// already been relocated. Indices handed to set/has are always below the
// capacity requested from newVisitedSet.
type visitedSet interface {
	set(i int)
	has(i int) bool
}

// wordSet is the inline fixed-width backing for element counts <= wordBits.
type wordSet uint64

func (s *wordSet) set(i int)      { *s |= 1 << uint(i) }
func (s *wordSet) has(i int) bool { return *s&(1<<uint(i)) != 0 }

// heapSet is the dynamically sized backing for arbitrary element counts,
// one bit per element.
type heapSet struct {
	bits *bitset.BitSet
}

func (s *heapSet) set(i int)      { s.bits.Set(uint(i)) }
func (s *heapSet) has(i int) bool { return s.bits.Test(uint(i)) }

// newVisitedSet returns the cheapest backing able to track n indices:
// the inline word up to wordBits, a heap-allocated bitset beyond that.
// Both backings behave identically; callers never observe the difference.
func newVisitedSet(n int) visitedSet {
	if n <= wordBits {
		return new(wordSet)
	}

	return &heapSet{bits: bitset.New(uint(n))}
}
