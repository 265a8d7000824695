package triangular

import (
	"fmt"
	"io"

	"github.com/katalvlaran/figural/render"
)

// FigureIth computes the point arrangement of T_n as a render.Figure.
//
// Geometry (distance d = opts.Distance):
//   - n marker rows bottom-up; row r (0-based) holds n−r points at
//     y = r·d, starting at x = r·d/2 — each row is one marker run, so
//     the row structure survives into the TikZ output.
//   - When opts.DrawContour and n > 1, one closed triangle contour
//     through (0,0), ((n−1)d,0) and ((n−1)d/2,(n−1)d).
//   - When opts.WithLabel, the label "T_n = V" anchored d/2 below the
//     base midpoint.
//
// Errors: ErrNonPositiveIndex, ErrIndexOverflow, or an option
// validation error. Complexity: O(T_n) points.
func FigureIth(n int, opts render.Options) (*render.Figure, error) {
	v, err := Ith(n)
	if err != nil {
		return nil, err
	}
	if err = opts.Validate(); err != nil {
		return nil, err
	}

	d := opts.Distance
	fig := &render.Figure{Series: make([][]render.Point, 0, n)}
	for r := 0; r < n; r++ {
		row := make([]render.Point, n-r)
		y := float64(r) * d
		x0 := float64(r) * d / 2
		for i := range row {
			row[i] = render.Point{X: x0 + float64(i)*d, Y: y}
		}
		fig.Series = append(fig.Series, row)
	}

	if opts.DrawContour && n > 1 {
		base := float64(n-1) * d
		fig.Contours = [][]render.Point{{
			{X: 0, Y: 0},
			{X: base, Y: 0},
			{X: base / 2, Y: base},
			{X: 0, Y: 0},
		}}
	}

	if opts.WithLabel {
		fig.Label = &render.Label{
			Symbol: "T",
			Index:  n,
			Value:  v,
			At:     render.Point{X: float64(n-1) * d / 2, Y: -d / 2},
		}
	}

	return fig, nil
}

// DrawIth renders the arrangement of T_n into w: TikZ text when
// opts.TikZ is set, a single-page PDF otherwise.
//
// Errors: ErrNonPositiveIndex, ErrIndexOverflow, render.ErrNilWriter,
// option validation errors, or a backend write error.
// Complexity: O(T_n).
func DrawIth(w io.Writer, n int, opts render.Options) error {
	fig, err := FigureIth(n, opts)
	if err != nil {
		return err
	}

	return render.Render(w, []*render.Figure{fig}, opts)
}

// DrawRange renders the arrangements of T_start … T_end into w as a
// grid of opts.Cols columns, delegating per-cell geometry to FigureIth.
//
// Errors: ErrBadRange (start < 1 or end < start), plus everything
// DrawIth can return. Complexity: O(Σ T_n) over the range.
func DrawRange(w io.Writer, start, end int, opts render.Options) error {
	if start < 1 || end < start {
		return fmt.Errorf("triangular: DrawRange(%d,%d): %w", start, end, ErrBadRange)
	}
	figs := make([]*render.Figure, 0, end-start+1)
	for n := start; n <= end; n++ {
		fig, err := FigureIth(n, opts)
		if err != nil {
			return err
		}
		figs = append(figs, fig)
	}

	return render.Render(w, figs, opts)
}
