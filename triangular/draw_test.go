package triangular_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/figural/render"
	"github.com/katalvlaran/figural/triangular"
)

//----------------------------------------------------------------------------//
// FigureIth geometry
//----------------------------------------------------------------------------//

// TestFigureIth_RowStructure verifies the triangular grid: n rows,
// row r holding n-r points, total T_n markers.
func TestFigureIth_RowStructure(t *testing.T) {
	opts := render.DefaultOptions()
	for n := 1; n <= 6; n++ {
		fig, err := triangular.FigureIth(n, opts)
		require.NoError(t, err)
		require.Len(t, fig.Series, n, "n=%d", n)
		for r, run := range fig.Series {
			require.Len(t, run, n-r, "n=%d row=%d", n, r)
		}
		want, err := triangular.Ith(n)
		require.NoError(t, err)
		require.Equal(t, int(want), fig.NumPoints(), "n=%d", n)
	}
}

func TestFigureIth_ContourAndLabel(t *testing.T) {
	opts := render.DefaultOptions()
	opts.WithLabel = true

	fig, err := triangular.FigureIth(3, opts)
	require.NoError(t, err)

	// Closed triangle outline spanning the base.
	require.Len(t, fig.Contours, 1)
	contour := fig.Contours[0]
	require.Equal(t, contour[0], contour[len(contour)-1])
	require.Equal(t, render.Point{X: 2 * opts.Distance, Y: 0}, contour[1])

	require.NotNil(t, fig.Label)
	require.Equal(t, "T", fig.Label.Symbol)
	require.Equal(t, 3, fig.Label.Index)
	require.Equal(t, int64(6), fig.Label.Value)
	require.Less(t, fig.Label.At.Y, 0.0, "label hangs below the base")

	// A single point has no outline to draw.
	fig, err = triangular.FigureIth(1, opts)
	require.NoError(t, err)
	require.Empty(t, fig.Contours)
}

func TestFigureIth_Errors(t *testing.T) {
	opts := render.DefaultOptions()
	_, err := triangular.FigureIth(0, opts)
	require.ErrorIs(t, err, triangular.ErrNonPositiveIndex)

	opts.Color = "chartreuse"
	_, err = triangular.FigureIth(3, opts)
	require.ErrorIs(t, err, render.ErrUnknownColor)
}

//----------------------------------------------------------------------------//
// DrawIth / DrawRange
//----------------------------------------------------------------------------//

// TestDrawIth_TikZ checks the vector-diagram export for T_3: a
// non-empty document with the computed value in the label and exactly
// three marker rows.
func TestDrawIth_TikZ(t *testing.T) {
	opts := render.DefaultOptions()
	opts.TikZ = true
	opts.WithLabel = true

	var buf bytes.Buffer
	require.NoError(t, triangular.DrawIth(&buf, 3, opts))

	doc := buf.String()
	require.NotEmpty(t, doc)
	require.True(t, strings.HasPrefix(doc, "\\begin{tikzpicture}"))
	require.Contains(t, doc, "\\end{tikzpicture}")
	require.Contains(t, doc, "$T_{3} = 6$")
	require.Equal(t, 3, strings.Count(doc, "plot[only marks"), "one marker line per row")
}

func TestDrawIth_PDF(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, triangular.DrawIth(&buf, 4, render.DefaultOptions()))
	require.True(t, bytes.HasPrefix(buf.Bytes(), []byte("%PDF-")))
}

func TestDrawIth_NilWriter(t *testing.T) {
	err := triangular.DrawIth(nil, 3, render.DefaultOptions())
	require.ErrorIs(t, err, render.ErrNilWriter)
}

func TestDrawRange_TikZ(t *testing.T) {
	opts := render.DefaultOptions()
	opts.TikZ = true
	opts.WithLabel = true
	opts.Cols = 3

	var buf bytes.Buffer
	require.NoError(t, triangular.DrawRange(&buf, 1, 5, opts))

	doc := buf.String()
	// One marker line per row, per figure: 1+2+3+4+5.
	require.Equal(t, 15, strings.Count(doc, "plot[only marks"))
	// One label node and one cell frame per figure.
	require.Equal(t, 5, strings.Count(doc, "\\node"))
	require.Equal(t, 5, strings.Count(doc, "rectangle"))
}

func TestDrawRange_NoGrid(t *testing.T) {
	opts := render.DefaultOptions()
	opts.TikZ = true
	opts.DrawGrid = false

	var buf bytes.Buffer
	require.NoError(t, triangular.DrawRange(&buf, 1, 4, opts))
	require.NotContains(t, buf.String(), "rectangle")
}

func TestDrawRange_Errors(t *testing.T) {
	var buf bytes.Buffer
	err := triangular.DrawRange(&buf, 0, 5, render.DefaultOptions())
	require.ErrorIs(t, err, triangular.ErrBadRange)
	err = triangular.DrawRange(&buf, 5, 2, render.DefaultOptions())
	require.ErrorIs(t, err, triangular.ErrBadRange)
}
