// Package triangular implements the numeric core of the triangular
// series: closed-form generation, inverse membership testing, and
// vectorized range generation.
package triangular

import (
	"fmt"
	"math"
)

// MaxIndex is the largest n for which T_n = n·(n+1)/2 fits in int64.
// Reaching it requires a 64-bit int; on 32-bit platforms valid indices
// stop at math.MaxInt32 anyway.
const MaxIndex = 4294967295

// Ith returns the n-th triangular number T_n = n·(n+1)/2 using integer
// arithmetic only.
//
// Errors:
//   - ErrNonPositiveIndex — n < 1.
//   - ErrIndexOverflow    — n > MaxIndex.
//
// Complexity: O(1).
func Ith(n int) (int64, error) {
	if n < 1 {
		return 0, fmt.Errorf("triangular: Ith(%d): %w", n, ErrNonPositiveIndex)
	}
	if int64(n) > MaxIndex {
		return 0, fmt.Errorf("triangular: Ith(%d): %w", n, ErrIndexOverflow)
	}

	return value(int64(n)), nil
}

// value computes T_n without bounds checking; callers validate n.
// The even factor is halved before multiplying so the intermediate
// product stays within int64 all the way up to MaxIndex.
func value(n int64) int64 {
	if n%2 == 0 {
		return n / 2 * (n + 1)
	}

	return n * ((n + 1) / 2)
}

// IsTriangular reports whether v is a triangular number.
//
// The inverse closed form n = (−1+√(8v+1))/2 yields a floating-point
// candidate; the rounded candidate and its two integer neighbors are
// re-substituted into the exact formula, so rounding error at large
// magnitudes can never flip the answer. Non-positive v is simply not a
// member — a valid outcome, never an error.
//
// Complexity: O(1).
func IsTriangular(v int64) bool {
	if v < 1 {
		return false
	}
	n := int64(math.Round((math.Sqrt(8*float64(v)+1) - 1) / 2))
	for k := n - 1; k <= n+1; k++ {
		if k >= 1 && k <= MaxIndex && value(k) == v {
			return true
		}
	}

	return false
}

// IsTriangularAll is the vectorized form of IsTriangular: it returns a
// boolean slice of the same length, element i reporting membership of
// vs[i]. Complexity: O(len(vs)).
func IsTriangularAll(vs []int64) []bool {
	out := make([]bool, len(vs))
	for i, v := range vs {
		out[i] = IsTriangular(v)
	}

	return out
}

// Arange returns the first n triangular numbers [T_1 … T_n].
//
// The sequence is produced by a single cumulative-sum pass — the
// closed-form gnomon T_k = T_(k−1) + k — with one allocation and no
// per-element function calls, so n in the 10⁸ range stays cheap.
//
// Errors: ErrNonPositiveIndex (n < 1), ErrIndexOverflow (n > MaxIndex).
// Complexity: O(n) time, O(n) memory.
func Arange(n int) ([]int64, error) {
	if n < 1 {
		return nil, fmt.Errorf("triangular: Arange(%d): %w", n, ErrNonPositiveIndex)
	}
	if int64(n) > MaxIndex {
		return nil, fmt.Errorf("triangular: Arange(%d): %w", n, ErrIndexOverflow)
	}
	out := make([]int64, n)
	var acc int64
	for i := 0; i < n; i++ {
		acc += int64(i + 1)
		out[i] = acc
	}

	return out, nil
}
