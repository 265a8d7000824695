// Package figural computes, tests and draws figurate numbers — the
// integers you get by arranging points into regular geometric shapes.
//
// 🚀 What is figural?
//
//	A small, pure library that brings together:
//		• Closed-form generation: the n-th triangular or pentagonal number in O(1)
//		• Membership tests: "is V triangular?" via the inverse formula, scalar or vectorized
//		• Range generation: the first n terms of a series in one cumulative pass
//		• Drawing: render a number as its point arrangement — one figure or a
//		  grid of subplots — to PDF, or export it as TikZ text for typesetting
//
// ✨ Why choose figural?
//
//   - Beginner-friendly – minimal API, clear, intuitive naming
//   - Exact – integer arithmetic for generation, re-substitution checks for
//     membership (no floating-point false positives at large magnitudes)
//   - Stateless – every call is an independent, referentially transparent computation
//
// Everything is organized under three subpackages:
//
//	triangular/ — the series 1, 3, 6, 10, 15, … (points stacked in rows)
//	pentagonal/ — the series 1, 5, 12, 22, 35, … (points in nested pentagons)
//	render/     — shared point-set model, display options, TikZ & PDF output
//
// Quick ASCII example:
//
//	      •
//	     • •
//	    • • •
//
//	three rows of 3, 2 and 1 points represent T_3 = 6,
//	the 3rd triangular number.
//
// Dive into README.md for full examples and the drawing-option reference.
//
//	go get github.com/katalvlaran/figural
package figural
