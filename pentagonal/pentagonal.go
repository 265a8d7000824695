// Package pentagonal implements the numeric core of the pentagonal
// series: closed-form generation, inverse membership testing, and
// vectorized range generation.
package pentagonal

import (
	"fmt"
	"math"
)

// MaxIndex is the largest n for which P_n = n·(3n−1)/2 fits in int64.
// Reaching it requires a 64-bit int; on 32-bit platforms valid indices
// stop at math.MaxInt32 anyway.
const MaxIndex = 2479700524

// Ith returns the n-th pentagonal number P_n = n·(3n−1)/2 using integer
// arithmetic only.
//
// Errors:
//   - ErrNonPositiveIndex — n < 1.
//   - ErrIndexOverflow    — n > MaxIndex.
//
// Complexity: O(1).
func Ith(n int) (int64, error) {
	if n < 1 {
		return 0, fmt.Errorf("pentagonal: Ith(%d): %w", n, ErrNonPositiveIndex)
	}
	if int64(n) > MaxIndex {
		return 0, fmt.Errorf("pentagonal: Ith(%d): %w", n, ErrIndexOverflow)
	}

	return value(int64(n)), nil
}

// value computes P_n without bounds checking; callers validate n.
// Exactly one of n and 3n−1 is even; halving it before multiplying
// keeps the intermediate product within int64 up to MaxIndex.
func value(n int64) int64 {
	if n%2 == 0 {
		return n / 2 * (3*n - 1)
	}

	return n * ((3*n - 1) / 2)
}

// IsPentagonal reports whether v is a pentagonal number.
//
// The inverse closed form n = (1+√(24v+1))/6 yields a floating-point
// candidate; the rounded candidate and its two integer neighbors are
// re-substituted into the exact formula, so rounding error at large
// magnitudes can never flip the answer. Non-positive v is simply not a
// member — a valid outcome, never an error.
//
// Complexity: O(1).
func IsPentagonal(v int64) bool {
	if v < 1 {
		return false
	}
	n := int64(math.Round((math.Sqrt(24*float64(v)+1) + 1) / 6))
	for k := n - 1; k <= n+1; k++ {
		if k >= 1 && k <= MaxIndex && value(k) == v {
			return true
		}
	}

	return false
}

// IsPentagonalAll is the vectorized form of IsPentagonal: it returns a
// boolean slice of the same length, element i reporting membership of
// vs[i]. Complexity: O(len(vs)).
func IsPentagonalAll(vs []int64) []bool {
	out := make([]bool, len(vs))
	for i, v := range vs {
		out[i] = IsPentagonal(v)
	}

	return out
}

// Arange returns the first n pentagonal numbers [P_1 … P_n].
//
// The sequence is produced by a single cumulative-sum pass over the
// gnomon sequence 1, 4, 7, … (P_k = P_(k−1) + 3k−2) with one allocation
// and no per-element function calls.
//
// Errors: ErrNonPositiveIndex (n < 1), ErrIndexOverflow (n > MaxIndex).
// Complexity: O(n) time, O(n) memory.
func Arange(n int) ([]int64, error) {
	if n < 1 {
		return nil, fmt.Errorf("pentagonal: Arange(%d): %w", n, ErrNonPositiveIndex)
	}
	if int64(n) > MaxIndex {
		return nil, fmt.Errorf("pentagonal: Arange(%d): %w", n, ErrIndexOverflow)
	}
	out := make([]int64, n)
	var acc int64
	for i := 0; i < n; i++ {
		acc += int64(3*i + 1)
		out[i] = acc
	}

	return out, nil
}
