package render

import (
	"fmt"
	"strings"
)

// tikzMarks maps Marker values to pgfplots mark names.
var tikzMarks = map[Marker]string{
	MarkerCircle:  "*",
	MarkerSquare:  "square*",
	MarkerDiamond: "diamond*",
	MarkerCross:   "x",
}

// TikZ encodes figs as a plain-text TikZ picture.
//
// Output structure, per figure:
//   - an optional cell frame (\draw … rectangle …) when opts.DrawGrid
//     is set and more than one figure is drawn;
//   - one \draw per contour polyline (closed ones end in "-- cycle");
//   - one \draw … plot[only marks] … per marker run, so the row
//     structure of the arrangement is visible in the text;
//   - one \node per label.
//
// Figures are laid out in a grid of opts.Cols columns with a shared
// cell size derived from the union bounding box, matching the PDF
// layout. The result is a pure formatting of already-computed
// coordinates; nothing is recomputed here.
//
// Errors: ErrNoFigures, or any Options validation error.
// Complexity: O(P) in the total number of points.
func TikZ(figs []*Figure, opts Options) (string, error) {
	if len(figs) == 0 {
		return "", ErrNoFigures
	}
	if err := opts.Validate(); err != nil {
		return "", err
	}

	cols := opts.Cols
	if len(figs) < cols {
		cols = len(figs)
	}
	lo, _, cellW, cellH := gridCell(figs, opts)
	d := opts.Distance
	markSize := opts.MarkerSize / 2 // pgf mark size is a radius

	var b strings.Builder
	b.WriteString("\\begin{tikzpicture}\n")
	for i, fig := range figs {
		row, col := i/cols, i%cols
		// Cell origin; rows grow downward like subplot grids do.
		ox := float64(col) * cellW
		oy := -float64(row) * cellH
		// Figure-space → picture-space offset within the cell:
		// side padding d, bottom padding 2d (label room).
		sx := ox - lo.X + d
		sy := oy - lo.Y + 2*d

		if opts.DrawGrid && len(figs) > 1 {
			fmt.Fprintf(&b, "\\draw[gray, very thin] (%.4f,%.4f) rectangle (%.4f,%.4f);\n",
				ox, oy, ox+cellW, oy+cellH)
		}
		for _, c := range fig.Contours {
			writeTikZPath(&b, c, sx, sy)
		}
		for _, run := range fig.Series {
			fmt.Fprintf(&b, "\\draw[%s] plot[only marks, mark=%s, mark size=%.4fpt] coordinates {",
				opts.Color, tikzMarks[opts.Marker], markSize)
			for j, p := range run {
				if j > 0 {
					b.WriteByte(' ')
				}
				fmt.Fprintf(&b, "(%.4f,%.4f)", sx+p.X, sy+p.Y)
			}
			b.WriteString("};\n")
		}
		if fig.Label != nil {
			fmt.Fprintf(&b, "\\node[anchor=north] at (%.4f,%.4f) {$%s_{%d} = %d$};\n",
				sx+fig.Label.At.X, sy+fig.Label.At.Y,
				fig.Label.Symbol, fig.Label.Index, fig.Label.Value)
		}
	}
	b.WriteString("\\end{tikzpicture}\n")

	return b.String(), nil
}

// writeTikZPath emits one \draw polyline, closing it with "-- cycle"
// when the last vertex repeats the first.
func writeTikZPath(b *strings.Builder, path []Point, sx, sy float64) {
	if len(path) < 2 {
		return
	}
	closed := path[0] == path[len(path)-1]
	if closed {
		path = path[:len(path)-1]
	}
	b.WriteString("\\draw[black, thin]")
	for j, p := range path {
		if j > 0 {
			b.WriteString(" --")
		}
		fmt.Fprintf(b, " (%.4f,%.4f)", sx+p.X, sy+p.Y)
	}
	if closed {
		b.WriteString(" -- cycle")
	}
	b.WriteString(";\n")
}

// gridCell returns the union bounding box over figs and the shared
// subplot cell size: the box plus side padding d, top padding d and
// bottom padding 2d (room for the label line).
func gridCell(figs []*Figure, opts Options) (lo, hi Point, cellW, cellH float64) {
	lo, hi = figs[0].Bounds()
	for _, fig := range figs[1:] {
		fLo, fHi := fig.Bounds()
		if fLo.X < lo.X {
			lo.X = fLo.X
		}
		if fLo.Y < lo.Y {
			lo.Y = fLo.Y
		}
		if fHi.X > hi.X {
			hi.X = fHi.X
		}
		if fHi.Y > hi.Y {
			hi.Y = fHi.Y
		}
	}
	d := opts.Distance
	cellW = (hi.X - lo.X) + 2*d
	cellH = (hi.Y - lo.Y) + 3*d

	return lo, hi, cellW, cellH
}
