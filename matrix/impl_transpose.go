// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - The transpose engine: out-of-place Transposed for any Matrix, and
//     in-place Transpose for *Dense with shape-dependent dispatch between
//     three strategies (vector shape swap, square pairwise swap, and the
//     follow-the-cycles permutation for rectangles).
//
// Follow-the-cycles (rectangle strategy):
//   - Transposing an H×W row-major buffer in place is the permutation that
//     sends flat index i to (i*H) mod (H*W - 1) for 0 < i < H*W - 1; indices
//     0 and H*W-1 are fixed points and never move.
//   - The permutation decomposes into disjoint cycles. Each cycle is rotated
//     with a single held value: jump to the destination, swap the held value
//     with the cell, repeat until the cycle closes, then scan forward for
//     the next unvisited index.
//   - Visited indices are tracked one bit per element via visitedSet
//     (bitset.go): an inline uint64 word for <= 64 elements, a heap bitset
//     beyond that. In-place transpose is therefore supported for ANY size;
//     the backing choice is invisible to callers.
//   - Cost: O(1) extra value storage plus one bit per element, at the price
//     of strided, cache-unfriendly jumps. For throughput on large matrices
//     prefer the sequential out-of-place Transposed.

package matrix

import "fmt"

// Transposed returns a freshly allocated Dense of shape (Cols × Rows) with
// out[j, i] = m[i, j]. Valid for every shape; m is never mutated.
//
// Errors: ErrNilMatrix, ErrReleased.
// Complexity: Time O(r*c), Space O(r*c).
func Transposed(m Matrix) (*Dense, error) {
	if err := ValidateLive(m); err != nil {
		return nil, matrixErrorf(opTransposed, err)
	}
	rows, cols := m.Rows(), m.Cols()
	res, err := NewDense(cols, rows) // dims flipped
	if err != nil {
		return nil, matrixErrorf(opTransposed, err)
	}

	var i, j int
	// Fast path: data[i*cols + j] → res.data[j*rows + i].
	if d, ok := m.(*Dense); ok {
		var baseSrc int
		for i = 0; i < rows; i++ {
			baseSrc = i * cols
			for j = 0; j < cols; j++ {
				res.data[j*rows+i] = d.data[baseSrc+j]
			}
		}

		return res, nil
	}

	// Fallback: generic interface loop.
	var v float64
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			v, err = m.At(i, j)
			if err != nil {
				return nil, matrixErrorf(opTransposed, fmt.Errorf("At(%d,%d): %w", i, j, err))
			}
			res.data[j*rows+i] = v
		}
	}

	return res, nil
}

// Transpose transposes m in place: the buffer is permuted and the row/column
// counts are swapped before the call returns, with no observable
// intermediate state. Strategy is picked by shape:
//
//  1. Vector (Rows==1 or Cols==1): row-major order is unchanged, so only the
//     shape fields swap; no data movement.
//  2. Square: pairwise swap over the strict upper triangle.
//  3. Rectangle: follow-the-cycles permutation (any element count; see the
//     file header for the algorithm and its storage trade-off).
//
// Errors: ErrNilMatrix, ErrReleased.
// Complexity: Time O(r*c); Space O(1) values plus one visited bit per
// element on the rectangle path (zero heap allocation up to 64 elements).
func Transpose(m *Dense) error {
	if err := ValidateLive(m); err != nil {
		return matrixErrorf(opTranspose, err)
	}

	switch {
	case m.r == 1 || m.c == 1:
		// A 1×n or n×1 buffer already reads correctly after the flip.
		m.r, m.c = m.c, m.r
	case m.r == m.c:
		transposeSquare(m)
	default:
		transposeRectangle(m)
	}

	return nil
}

// transposeSquare swaps m[i,j] with m[j,i] for all i < j. Shape fields are
// untouched: an n×n transpose keeps its n×n header.
func transposeSquare(m *Dense) {
	n := m.r
	var i, j int
	var tmp float64
	for i = 0; i < n-1; i++ {
		for j = i + 1; j < n; j++ {
			tmp = m.data[i*n+j]
			m.data[i*n+j] = m.data[j*n+i]
			m.data[j*n+i] = tmp
		}
	}
}

// transposeRectangle permutes a non-square, non-vector buffer in place by
// following the cycles of i → (i*rows) mod (len-1) over the interior
// indices, then swaps the shape fields.
func transposeRectangle(m *Dense) {
	size := m.Len() - 1 // modulus; index 0 and index size are fixed points
	visited := newVisitedSet(m.Len())

	var (
		cycleBegin, next int     // current cycle anchor and jump target
		held, tmp        float64 // value being relocated and swap scratch
	)
	i := 1 // first interior index
	for i < size {
		cycleBegin = i
		held = m.data[i]

		// Rotate one full cycle: write the held value into its destination,
		// pick up what was there, and mark the index we are leaving.
		for {
			next = (i * m.r) % size
			tmp = m.data[next]
			m.data[next] = held
			held = tmp
			visited.set(i)
			i = next
			if i == cycleBegin {
				break
			}
		}

		// Scan forward for the start of the next unvisited cycle.
		for i = 1; i < size && visited.has(i); i++ {
		}
	}

	// Swap the shape fields; buffer and header flip within the same call.
	m.r, m.c = m.c, m.r
}
