package pentagonal

import (
	"fmt"
	"io"
	"math"

	"github.com/katalvlaran/figural/render"
)

// rayAngles are the four rays of the arrangement, in radians, fanning
// downward from the shared apex: −36°, −72°, −108°, −144°.
var rayAngles = [4]float64{
	-36 * math.Pi / 180,
	-72 * math.Pi / 180,
	-108 * math.Pi / 180,
	-144 * math.Pi / 180,
}

// phi is the golden ratio; the two inner rays are stretched by phi so
// every ring is a regular pentagon with the apex at the origin.
var phi = (1 + math.Sqrt(5)) / 2

// FigureIth computes the point arrangement of P_n as a render.Figure.
//
// Geometry (distance d = opts.Distance): the apex P_1 sits at the
// origin; for each ring k = 2..n with radius r = (k−1)·d the four ray
// vertices are placed at the rayAngles, the middle two at distance r·phi,
// and the three outward sides each carry k evenly spaced points (side
// starts deduplicated), adding the 3k−2 points of the ring's gnomon.
// Each side is one marker run. When opts.DrawContour every ring is
// outlined as the closed pentagon apex–v1–v2–v3–v4. When opts.WithLabel
// the label "P_n = V" hangs d below the lowest ring vertex.
//
// Errors: ErrNonPositiveIndex, ErrIndexOverflow, or an option
// validation error. Complexity: O(P_n) points.
func FigureIth(n int, opts render.Options) (*render.Figure, error) {
	v, err := Ith(n)
	if err != nil {
		return nil, err
	}
	if err = opts.Validate(); err != nil {
		return nil, err
	}

	d := opts.Distance
	fig := &render.Figure{Series: [][]render.Point{{{X: 0, Y: 0}}}}
	for k := 2; k <= n; k++ {
		r := float64(k-1) * d
		v1 := polar(r, rayAngles[0])
		v2 := polar(r*phi, rayAngles[1])
		v3 := polar(r*phi, rayAngles[2])
		v4 := polar(r, rayAngles[3])

		fig.Series = append(fig.Series,
			segment(v1, v2, k, false),
			segment(v2, v3, k, true),
			segment(v3, v4, k, true),
		)

		if opts.DrawContour {
			fig.Contours = append(fig.Contours, []render.Point{
				{X: 0, Y: 0}, v1, v2, v3, v4, {X: 0, Y: 0},
			})
		}
	}

	if opts.WithLabel {
		yMin := 0.0
		if n > 1 {
			yMin = float64(n-1) * d * phi * math.Sin(rayAngles[1])
		}
		fig.Label = &render.Label{
			Symbol: "P",
			Index:  n,
			Value:  v,
			At:     render.Point{X: 0, Y: yMin - d},
		}
	}

	return fig, nil
}

// polar converts (radius, angle) to a Point.
func polar(r, a float64) render.Point {
	return render.Point{X: r * math.Cos(a), Y: r * math.Sin(a)}
}

// segment returns num evenly spaced points from start to end, dropping
// the first when skipStart is set (it belongs to the previous side).
func segment(start, end render.Point, num int, skipStart bool) []render.Point {
	pts := make([]render.Point, 0, num)
	for i := 0; i < num; i++ {
		t := float64(i) / float64(num-1)
		pts = append(pts, render.Point{
			X: start.X + (end.X-start.X)*t,
			Y: start.Y + (end.Y-start.Y)*t,
		})
	}
	if skipStart {
		pts = pts[1:]
	}

	return pts
}

// DrawIth renders the arrangement of P_n into w: TikZ text when
// opts.TikZ is set, a single-page PDF otherwise.
//
// Errors: ErrNonPositiveIndex, ErrIndexOverflow, render.ErrNilWriter,
// option validation errors, or a backend write error.
// Complexity: O(P_n).
func DrawIth(w io.Writer, n int, opts render.Options) error {
	fig, err := FigureIth(n, opts)
	if err != nil {
		return err
	}

	return render.Render(w, []*render.Figure{fig}, opts)
}

// DrawRange renders the arrangements of P_start … P_end into w as a
// grid of opts.Cols columns, delegating per-cell geometry to FigureIth.
//
// Errors: ErrBadRange (start < 1 or end < start), plus everything
// DrawIth can return. Complexity: O(Σ P_n) over the range.
func DrawRange(w io.Writer, start, end int, opts render.Options) error {
	if start < 1 || end < start {
		return fmt.Errorf("pentagonal: DrawRange(%d,%d): %w", start, end, ErrBadRange)
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
