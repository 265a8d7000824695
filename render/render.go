package render

import "io"

// Render encodes figs into w, choosing the output format from opts:
// TikZ text when opts.TikZ is set, a single-page PDF otherwise.
//
// Errors:
//   - ErrNilWriter  — w is nil.
//   - ErrNoFigures  — figs is empty.
//   - any Options validation error (see Options.Validate).
//
// Complexity: O(P) in the total number of points across figs.
func Render(w io.Writer, figs []*Figure, opts Options) error {
	if w == nil {
		return ErrNilWriter
	}
	if len(figs) == 0 {
		return ErrNoFigures
	}
	if opts.TikZ {
		doc, err := TikZ(figs, opts)
		if err != nil {
			return err
		}
		_, err = io.WriteString(w, doc)

		return err
	}

	return PDF(w, figs, opts)
}
