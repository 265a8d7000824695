// Package render turns precomputed point arrangements into visual
// artifacts: a single-page PDF or a TikZ text document.
//
// 🚀 What is render?
//
//	The shared drawing layer behind figural's triangular and pentagonal
//	packages. Series packages compute geometry (a Figure: marker runs,
//	contour polylines, an optional label); render lays figures out —
//	one per call or as a grid of subplots — and encodes the result.
//
// ✨ Key features:
//   - Figure model — immutable point sets, derived once, never mutated
//   - Options — one plain struct for every display knob (marker, color,
//     label, contour, grid, columns), strictly validated up front
//   - TikZ export — a plain-text vector diagram: one marker line per
//     point run, contour paths, a math-mode label node
//   - PDF export — a single page via seehuhn.de/go/pdf, with per-cell
//     scale-to-fit layout and Helvetica labels
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/figural/render"
//
//	opts := render.DefaultOptions()
//	opts.Color = "blue"
//	opts.WithLabel = true
//
//	doc, err := render.TikZ([]*render.Figure{fig}, opts)
//	// or: err := render.PDF(file, figs, opts)
//
// Rendering has no effect on numeric results: every option is consumed
// here and nowhere else.
//
// Complexity: all encoders are O(P) in the total number of points.
package render
