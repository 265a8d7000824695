// Package pentagonal generates, tests and draws pentagonal numbers:
// the series 1, 5, 12, 22, 35, … of points arranged in nested pentagons.
//
// 🚀 What is a pentagonal number?
//
//	P_n counts the points in n nested pentagons sharing one vertex:
//	ring k adds the 3k−2 points of its three outward-facing sides.
//	Closed form: P_n = n·(3n−1)/2. They appear in:
//	  • Euler's pentagonal number theorem and partition identities
//	  • Generating-function manipulations
//	  • Project-Euler-style number problems
//
// ✨ Key features:
//   - Ith — the n-th term in O(1) integer arithmetic, overflow-checked
//   - IsPentagonal / IsPentagonalAll — membership via the inverse
//     formula n = (1+√(24V+1))/6, verified by re-substitution so large
//     magnitudes never produce floating-point false answers
//   - Arange — the first n terms in one cumulative pass over the
//     1, 4, 7, … gnomon sequence
//   - FigureIth / DrawIth / DrawRange — the nested-pentagon arrangement
//     as a render.Figure, a PDF page, or TikZ text
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/figural/pentagonal"
//
//	v, err := pentagonal.Ith(5)          // 35
//	ok := pentagonal.IsPentagonal(22)    // true
//	vs, err := pentagonal.Arange(10)     // 1 5 12 22 35 51 70 92 117 145
//
// The drawing contract (options, labels, grid layout, TikZ export) is
// identical to package triangular; only the point geometry differs.
//
// Complexity: Ith and IsPentagonal are O(1); Arange and the drawing
// functions are O(n) in points produced.
package pentagonal
