// Package render defines the figure model, display options, and sentinel
// errors shared by all drawing code in github.com/katalvlaran/figural.
package render

import "fmt"

// Point is a 2D coordinate in figure space (arbitrary units; the
// encoders scale to output units).
type Point struct {
	X, Y float64
}

// Label describes the value annotation placed under a figure,
// e.g. T_3 = 6. Encoders choose the concrete spelling (math mode for
// TikZ, plain text for PDF).
type Label struct {
	// Symbol is the series letter: "T" for triangular, "P" for pentagonal.
	Symbol string
	// Index is the 1-based position in the series.
	Index int
	// Value is the figurate number itself.
	Value int64
	// At anchors the label (top-center of the text sits here).
	At Point
}

// Figure is one point arrangement, fully computed and immutable.
//
// Series holds marker runs: each inner slice is drawn as one group of
// markers (a row of a triangle, a segment of a pentagon ring). Keeping
// runs separate preserves the row structure in the TikZ output.
// Contours are optional polylines stroked behind the markers; a polyline
// whose last point repeats its first is closed by the encoders.
type Figure struct {
	Series   [][]Point
	Contours [][]Point
	Label    *Label
}

// NumPoints returns the total marker count across all runs.
// Complexity: O(number of runs).
func (f *Figure) NumPoints() int {
	n := 0
	for _, run := range f.Series {
		n += len(run)
	}

	return n
}

// Bounds returns the axis-aligned bounding box over all markers and
// contour vertices. A figure always has at least one marker, so the
// box is well defined. Complexity: O(P).
func (f *Figure) Bounds() (min, max Point) {
	first := true
	grow := func(p Point) {
		if first {
			min, max = p, p
			first = false

			return
		}
		if p.X < min.X {
			min.X = p.X
		}
		if p.Y < min.Y {
			min.Y = p.Y
		}
		if p.X > max.X {
			max.X = p.X
		}
		if p.Y > max.Y {
			max.Y = p.Y
		}
	}
	for _, run := range f.Series {
		for _, p := range run {
			grow(p)
		}
	}
	for _, c := range f.Contours {
		for _, p := range c {
			grow(p)
		}
	}

	return min, max
}

// Marker selects the point glyph.
type Marker int

const (
	// MarkerCircle draws filled circles (the default).
	MarkerCircle Marker = iota
	// MarkerSquare draws filled axis-aligned squares.
	MarkerSquare
	// MarkerDiamond draws filled 45°-rotated squares.
	MarkerDiamond
	// MarkerCross draws stroked × glyphs.
	MarkerCross
)

// String returns the lowercase marker name.
func (m Marker) String() string {
	switch m {
	case MarkerCircle:
		return "circle"
	case MarkerSquare:
		return "square"
	case MarkerDiamond:
		return "diamond"
	case MarkerCross:
		return "cross"
	default:
		return fmt.Sprintf("marker(%d)", int(m))
	}
}

// rgb is a device color in [0,1] components.
type rgb struct {
	r, g, b float64
}

// colorTable maps supported color names to device RGB. Every name is
// also a valid xcolor name, so the TikZ encoder can use it verbatim.
var colorTable = map[string]rgb{
	"black":   {0, 0, 0},
	"white":   {1, 1, 1},
	"gray":    {0.5, 0.5, 0.5},
	"red":     {1, 0, 0},
	"green":   {0, 0.5, 0},
	"blue":    {0, 0, 1},
	"cyan":    {0, 1, 1},
	"magenta": {1, 0, 1},
	"yellow":  {1, 1, 0},
	"orange":  {1, 0.5, 0},
	"purple":  {0.5, 0, 0.5},
	"brown":   {0.6, 0.3, 0},
}

// lookupColor returns the RGB triple for name or ErrUnknownColor.
func lookupColor(name string) (rgb, error) {
	if c, ok := colorTable[name]; ok {
		return c, nil
	}

	return rgb{}, fmt.Errorf("render: color %q: %w", name, ErrUnknownColor)
}

// Options contains every display knob recognized by the encoders.
// Options never affect numeric results; they are consumed only here.
//
// Fields:
//   - Distance     — spacing between consecutive points (figure units).
//   - Marker       — point glyph (MarkerCircle, MarkerSquare, …).
//   - MarkerSize   — glyph diameter in output points.
//   - Color        — marker color name (see colorTable for the set).
//   - WithLabel    — annotate each figure with its computed value.
//   - DrawContour  — stroke the outline connecting the outer points.
//   - DrawGrid     — frame each cell when drawing a range of figures.
//   - Cols         — subplot columns in range mode.
//   - TikZ         — emit TikZ text instead of rendering a PDF page.
type Options struct {
	Distance    float64
	Marker      Marker
	MarkerSize  float64
	Color       string
	WithLabel   bool
	DrawContour bool
	DrawGrid    bool
	Cols        int
	TikZ        bool
}

// DefaultOptions returns the baseline configuration: distance 0.5,
// filled black circles of size 10, contour on, grid on, 4 columns,
// no label, PDF output.
func DefaultOptions() Options {
	return Options{
		Distance:    0.5,
		Marker:      MarkerCircle,
		MarkerSize:  10,
		Color:       "black",
		WithLabel:   false,
		DrawContour: true,
		DrawGrid:    true,
		Cols:        4,
		TikZ:        false,
	}
}

// Validate checks every field strictly and fails fast on the first
// offending value. Unknown color or marker names are rejected rather
// than silently ignored. Complexity: O(1).
func (o Options) Validate() error {
	if o.Distance <= 0 {
		return fmt.Errorf("render: distance %v: %w", o.Distance, ErrBadDistance)
	}
	if o.MarkerSize <= 0 {
		return fmt.Errorf("render: marker size %v: %w", o.MarkerSize, ErrBadMarkerSize)
	}
	if o.Marker < MarkerCircle || o.Marker > MarkerCross {
		return fmt.Errorf("render: marker %d: %w", int(o.Marker), ErrUnknownMarker)
	}
	if _, err := lookupColor(o.Color); err != nil {
		return err
	}
	if o.Cols < 1 {
		return fmt.Errorf("render: cols %d: %w", o.Cols, ErrBadColumns)
	}

	return nil
}
