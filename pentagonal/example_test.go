package pentagonal_test

import (
	"fmt"

	"github.com/katalvlaran/figural/pentagonal"
)

////////////////////////////////////////////////////////////////////////////////
// Example: Ith
////////////////////////////////////////////////////////////////////////////////

// ExampleIth computes the 5th pentagonal number: the apex plus the
// gnomons 4, 7, 10 and 13 of rings two to five (1+4+7+10+13).
func ExampleIth() {
	v, _ := pentagonal.Ith(5)
	fmt.Println(v)

	// Output:
	// 35
}

////////////////////////////////////////////////////////////////////////////////
// Example: IsPentagonal
////////////////////////////////////////////////////////////////////////////////

// ExampleIsPentagonal tests membership: 22 is P_4, 6 falls between
// P_2 = 5 and P_3 = 12.
func ExampleIsPentagonal() {
	fmt.Println(pentagonal.IsPentagonal(22))
	fmt.Println(pentagonal.IsPentagonal(6))

	// Output:
	// true
	// false
}

////////////////////////////////////////////////////////////////////////////////
// Example: Arange
////////////////////////////////////////////////////////////////////////////////

// ExampleArange generates the first ten terms in one cumulative pass
// over the 1, 4, 7, … gnomon sequence.
func ExampleArange() {
	vs, _ := pentagonal.Arange(10)
	fmt.Println(vs)

	// Output:
	// [1 5 12 22 35 51 70 92 117 145]
}

////////////////////////////////////////////////////////////////////////////////
// Example: IsPentagonalAll
////////////////////////////////////////////////////////////////////////////////

// ExampleIsPentagonalAll vectorizes membership over a mixed slice.
func ExampleIsPentagonalAll() {
	fmt.Println(pentagonal.IsPentagonalAll([]int64{1, 2, 5, 12, 13}))

	// Output:
	// [true false true true false]
}
