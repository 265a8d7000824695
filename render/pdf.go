package render

import (
	"fmt"
	"io"
	"math"

	"seehuhn.de/go/pdf"
	"seehuhn.de/go/pdf/document"
	"seehuhn.de/go/pdf/font/standard"
	"seehuhn.de/go/pdf/graphics/color"
)

const (
	// cellPt is the page size of one subplot cell (4 inch square).
	cellPt = 288.0
	// cellPad is the inner margin of a cell, in points.
	cellPad = 18.0
	// labelFontSize is the label text size in points.
	labelFontSize = 12.0
	// labelAdvance approximates the mean Helvetica glyph advance as a
	// fraction of the font size; used only to center labels.
	labelAdvance = 0.55
)

// PDF renders figs as a single PDF page written to w.
//
// Layout mirrors the TikZ encoder: figures fill a grid of opts.Cols
// columns, every cell is cellPt×cellPt points, and a single uniform
// scale (fit of the shared cell box) keeps all subplots comparable.
// Markers are filled glyphs in opts.Color, contours are stroked in
// black behind them, labels are set in Helvetica.
//
// The page resource is acquired from the backend for the duration of
// this call and released by Close before returning.
//
// Errors: ErrNilWriter, ErrNoFigures, Options validation errors, or a
// backend write error. Complexity: O(P) in the total number of points.
func PDF(w io.Writer, figs []*Figure, opts Options) error {
	if w == nil {
		return ErrNilWriter
	}
	if len(figs) == 0 {
		return ErrNoFigures
	}
	if err := opts.Validate(); err != nil {
		return err
	}

	cols := opts.Cols
	if len(figs) < cols {
		cols = len(figs)
	}
	rows := (len(figs) + cols - 1) / cols

	paper := &pdf.Rectangle{URx: float64(cols) * cellPt, URy: float64(rows) * cellPt}
	page, err := document.WriteSinglePage(w, paper, pdf.V1_7, nil)
	if err != nil {
		return fmt.Errorf("render: open pdf page: %w", err)
	}

	lo, _, cellW, cellH := gridCell(figs, opts)
	scale := math.Min((cellPt-2*cellPad)/cellW, (cellPt-2*cellPad)/cellH)
	// Centering offsets when the cell box is not square.
	offX := (cellPt - cellW*scale) / 2
	offY := (cellPt - cellH*scale) / 2

	tint, _ := lookupColor(opts.Color) // validated above
	markerColor := color.DeviceRGB(tint.r, tint.g, tint.b)
	black := color.DeviceGray(0)
	frameGray := color.DeviceGray(0.5)

	labelFont := standard.Helvetica.New()
	d := opts.Distance
	radius := opts.MarkerSize / 2

	for i, fig := range figs {
		row, col := i/cols, i%cols
		// Cell origin on the page; first figure sits top-left.
		cx := float64(col) * cellPt
		cy := float64(rows-1-row) * cellPt
		// Figure-space → page-space, including the d/2d cell padding
		// shared with gridCell.
		toPage := func(p Point) (float64, float64) {
			return cx + offX + (p.X-lo.X+d)*scale, cy + offY + (p.Y-lo.Y+2*d)*scale
		}

		if opts.DrawGrid && len(figs) > 1 {
			page.SetStrokeColor(frameGray)
			page.SetLineWidth(0.5)
			page.Rectangle(cx, cy, cellPt, cellPt)
			page.Stroke()
		}

		if len(fig.Contours) > 0 {
			page.SetStrokeColor(black)
			page.SetLineWidth(1)
			for _, contour := range fig.Contours {
				strokePath(page, contour, toPage)
			}
		}

		page.SetFillColor(markerColor)
		page.SetStrokeColor(markerColor)
		for _, run := range fig.Series {
			for _, p := range run {
				px, py := toPage(p)
				drawMarker(page, opts.Marker, px, py, radius)
			}
		}

		if fig.Label != nil {
			text := fmt.Sprintf("%s_%d = %d", fig.Label.Symbol, fig.Label.Index, fig.Label.Value)
			lx, ly := toPage(fig.Label.At)
			page.SetFillColor(black)
			page.TextBegin()
			page.TextSetFont(labelFont, labelFontSize)
			page.TextFirstLine(lx-labelAdvance*labelFontSize*float64(len(text))/2, ly-labelFontSize)
			page.TextShow(text)
			page.TextEnd()
		}
	}

	if err := page.Close(); err != nil {
		return fmt.Errorf("render: close pdf page: %w", err)
	}

	return nil
}

// strokePath strokes one contour polyline, closing the subpath when
// the last vertex repeats the first.
func strokePath(page *document.Page, path []Point, toPage func(Point) (float64, float64)) {
	if len(path) < 2 {
		return
	}
	closed := path[0] == path[len(path)-1]
	if closed {
		path = path[:len(path)-1]
	}
	x, y := toPage(path[0])
	page.MoveTo(x, y)
	for _, p := range path[1:] {
		x, y = toPage(p)
		page.LineTo(x, y)
	}
	if closed {
		page.ClosePath()
	}
	page.Stroke()
}

// drawMarker draws one point glyph centered at (x, y). Filled glyphs
// assume the fill color is already set; MarkerCross strokes with the
// current stroke color.
func drawMarker(page *document.Page, m Marker, x, y, r float64) {
	switch m {
	case MarkerSquare:
		page.Rectangle(x-r, y-r, 2*r, 2*r)
		page.Fill()
	case MarkerDiamond:
		page.MoveTo(x, y-r)
		page.LineTo(x+r, y)
		page.LineTo(x, y+r)
		page.LineTo(x-r, y)
		page.ClosePath()
		page.Fill()
	case MarkerCross:
		page.SetLineWidth(1.5)
		page.MoveTo(x-r, y-r)
		page.LineTo(x+r, y+r)
		page.MoveTo(x-r, y+r)
		page.LineTo(x+r, y-r)
		page.Stroke()
	default: // MarkerCircle
		page.Circle(x, y, r)
		page.Fill()
	}
}
