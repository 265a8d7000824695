// Package triangular generates, tests and draws triangular numbers:
// the series 1, 3, 6, 10, 15, … of points stacked into triangles.
//
// 🚀 What is a triangular number?
//
//	T_n counts the points in a triangle with n rows: the bottom row has
//	n points, the next n−1, up to a single apex. Closed form:
//	T_n = n·(n+1)/2. They appear in:
//	  • Handshake and pairing counts
//	  • Summation identities and proofs
//	  • Project-Euler-style number problems
//	  • Recreational mathematics and teaching material
//
// ✨ Key features:
//   - Ith — the n-th term in O(1) integer arithmetic, overflow-checked
//   - IsTriangular / IsTriangularAll — membership via the inverse
//     formula n = (−1+√(8V+1))/2, verified by re-substitution so large
//     magnitudes never produce floating-point false answers
//   - Arange — the first n terms in one cumulative pass (no per-element
//     call overhead; n up to 10⁸ stays a tight loop)
//   - FigureIth / DrawIth / DrawRange — the point arrangement as a
//     render.Figure, a PDF page, or TikZ text
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/figural/triangular"
//
//	v, err := triangular.Ith(5)          // 15
//	ok := triangular.IsTriangular(15)    // true
//	vs, err := triangular.Arange(10)     // 1 3 6 10 15 21 28 36 45 55
//
//	opts := render.DefaultOptions()
//	opts.WithLabel = true
//	err = triangular.DrawIth(f, 3, opts) // writes a one-page PDF to f
//
// Every operation is a pure, stateless function of its inputs; drawing
// writes to the supplied io.Writer and keeps no state between calls.
//
// Complexity: Ith and IsTriangular are O(1); Arange and the drawing
// functions are O(n) in points produced.
package triangular
