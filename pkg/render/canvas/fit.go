package canvas

import "github.com/matzehuels/callirhoe/pkg/geom"

// Metrics measures text set at size 1: the advance width, and the
// distances the glyphs reach above and below the baseline.
type Metrics interface {
	Extents(font, text string) (width, ascent, descent float64)
}

// Placement positions a string inside a rectangle. X is the pen position
// of the first glyph.
type Placement struct {
	Size     float64 // font size in device units
	ScaleX   float64 // horizontal stretch, 1 for none
	X        float64
	Baseline float64
	Width    float64 // advance width after scaling
}

// Fit sizes text to the largest font that fits r and aligns it as requested.
// Empty text or an empty rectangle yields a zero-size placement.
func Fit(m Metrics, text string, r geom.Rect, p TextPaint) Placement {
	if text == "" || r.Empty() {
		return Placement{}
	}
	sample := text
	if p.Measure != "" {
		sample = p.Measure
	}
	pw, pa, pd := m.Extents(p.Font, sample)
	ph := pa + pd
	if pw <= 0 || ph <= 0 {
		return Placement{}
	}
	size := min(r.W/pw, r.H/ph)

	w, a, d := m.Extents(p.Font, text)
	w, a, d = w*size, a*size, d*size
	// a measured sample may be narrower than the text itself
	if w > r.W && w > 0 {
		shrink := r.W / w
		size, w, a, d = size*shrink, r.W, a*shrink, d*shrink
	}

	scale := 1.0
	if p.Stretch > 1 && w > 0 {
		scale = min(p.Stretch, r.W/w)
		w *= scale
	}

	pl := Placement{Size: size, ScaleX: scale, Width: w}
	switch p.Align.H {
	case Left:
		pl.X = r.X
	case Right:
		pl.X = r.Right() - w
	default:
		pl.X = r.X + (r.W-w)/2
	}
	switch p.Align.V {
	case Top:
		pl.Baseline = r.Y + a
	case Bottom:
		pl.Baseline = r.Bottom() - d
	default:
		pl.Baseline = r.Y + (r.H-(a+d))/2 + a
	}
	return pl
}
