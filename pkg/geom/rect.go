package geom

import (
	"fmt"
	"math"

	"github.com/matzehuels/callirhoe/pkg/errors"
)

// Rect is an axis-aligned rectangle in device units. Y grows downwards.
type Rect struct {
	X, Y float64
	W, H float64
}

// R builds a rectangle, clamping negative extents to zero.
func R(x, y, w, h float64) Rect {
	return Rect{X: x, Y: y, W: max(0, w), H: max(0, h)}
}

// Right returns the x coordinate of the right edge.
func (r Rect) Right() float64 { return r.X + r.W }

// Bottom returns the y coordinate of the bottom edge.
func (r Rect) Bottom() float64 { return r.Y + r.H }

// CenterX returns the horizontal center of the rectangle.
func (r Rect) CenterX() float64 { return r.X + r.W/2 }

// CenterY returns the vertical center of the rectangle.
func (r Rect) CenterY() float64 { return r.Y + r.H/2 }

// Empty reports whether the rectangle has no area.
func (r Rect) Empty() bool { return r.W <= 0 || r.H <= 0 }

// Contains reports whether o lies entirely inside r.
func (r Rect) Contains(o Rect) bool {
	return o.X >= r.X && o.Y >= r.Y && o.Right() <= r.Right() && o.Bottom() <= r.Bottom()
}

// Translate returns the rectangle moved by (dx, dy).
func (r Rect) Translate(dx, dy float64) Rect {
	return Rect{X: r.X + dx, Y: r.Y + dy, W: r.W, H: r.H}
}

// Inset shrinks the rectangle by d on every side. Insets larger than half
// an extent collapse that extent to zero around the center.
func (r Rect) Inset(d float64) Rect {
	dx := min(d, r.W/2)
	dy := min(d, r.H/2)
	return R(r.X+dx, r.Y+dy, r.W-2*dx, r.H-2*dy)
}

func (r Rect) String() string {
	return fmt.Sprintf("(%.2f,%.2f %.2fx%.2f)", r.X, r.Y, r.W, r.H)
}

// Ratio returns width/height. A zero-height rectangle with positive width is
// infinitely wide; a degenerate rectangle has ratio 0.
func Ratio(r Rect) float64 {
	if r.H == 0 {
		if r.W > 0 {
			return math.Inf(1)
		}
		return 0
	}
	return r.W / r.H
}

// HSplit partitions r into side-by-side rectangles whose widths are the
// given fractions of r.W. Space not claimed by the fractions is left as a
// trailing gap.
func HSplit(r Rect, fractions ...float64) ([]Rect, error) {
	if err := checkFractions(fractions); err != nil {
		return nil, err
	}
	out := make([]Rect, len(fractions))
	x := r.X
	for i, f := range fractions {
		w := r.W * f
		out[i] = Rect{X: x, Y: r.Y, W: w, H: r.H}
		x += w
	}
	return out, nil
}

// VSplit partitions r into stacked rectangles whose heights are the given
// fractions of r.H, top to bottom.
func VSplit(r Rect, fractions ...float64) ([]Rect, error) {
	if err := checkFractions(fractions); err != nil {
		return nil, err
	}
	out := make([]Rect, len(fractions))
	y := r.Y
	for i, f := range fractions {
		h := r.H * f
		out[i] = Rect{X: r.X, Y: y, W: r.W, H: h}
		y += h
	}
	return out, nil
}

// HSplit2 splits r into a left part of width fsplit and a right part taking
// whatever remains after a gap of fdist (both as fractions of r.W).
func HSplit2(r Rect, fsplit, fdist float64) (Rect, Rect, error) {
	parts, err := HSplit(r, fsplit, fdist, max(0, 1-fsplit-fdist))
	if err != nil {
		return Rect{}, Rect{}, err
	}
	return parts[0], parts[2], nil
}

// VSplit2 is the vertical counterpart of HSplit2.
func VSplit2(r Rect, fsplit, fdist float64) (Rect, Rect, error) {
	parts, err := VSplit(r, fsplit, fdist, max(0, 1-fsplit-fdist))
	if err != nil {
		return Rect{}, Rect{}, err
	}
	return parts[0], parts[2], nil
}

// MustHSplit2 is like HSplit2 but panics on invalid fractions. It is meant
// for fractions that were validated up front.
func MustHSplit2(r Rect, fsplit, fdist float64) (Rect, Rect) {
	a, b, err := HSplit2(r, fsplit, fdist)
	if err != nil {
		panic(err)
	}
	return a, b
}

// MustVSplit2 is like VSplit2 but panics on invalid fractions.
func MustVSplit2(r Rect, fsplit, fdist float64) (Rect, Rect) {
	a, b, err := VSplit2(r, fsplit, fdist)
	if err != nil {
		panic(err)
	}
	return a, b
}

// Grid splits r into rows x cols equally sized cells, returned row-major.
func Grid(r Rect, rows, cols int) ([]Rect, error) {
	if rows <= 0 || cols <= 0 {
		return nil, errors.New(errors.ErrCodeUnresolvedGrid, "grid %dx%d has no cells", rows, cols)
	}
	cw, ch := r.W/float64(cols), r.H/float64(rows)
	cells := make([]Rect, 0, rows*cols)
	for i := range rows {
		for j := range cols {
			cells = append(cells, Rect{X: r.X + float64(j)*cw, Y: r.Y + float64(i)*ch, W: cw, H: ch})
		}
	}
	return cells, nil
}

// RelScale scales r by (sx, sy) about the anchor (ax, ay), given in
// normalized coordinates: -1 keeps the left/top edge fixed, 0 the center,
// 1 the right/bottom edge.
func RelScale(r Rect, sx, sy, ax, ay float64) Rect {
	nw, nh := r.W*sx, r.H*sy
	return R(r.X+(r.W-nw)*(ax+1)/2, r.Y+(r.H-nh)*(ay+1)/2, nw, nh)
}

// Scale scales r about its center.
func Scale(r Rect, sx, sy float64) Rect { return RelScale(r, sx, sy, 0, 0) }

// CheckFractions validates split weights without splitting anything. Themes
// use it to reject malformed geometry before rendering starts.
func CheckFractions(fractions ...float64) error { return checkFractions(fractions) }

func checkFractions(fractions []float64) error {
	for i, f := range fractions {
		if f < 0 || math.IsNaN(f) || math.IsInf(f, 0) {
			return errors.New(errors.ErrCodeInvalidFraction, "split fraction #%d is %v (must be a finite value >= 0)", i, f)
		}
	}
	return nil
}
