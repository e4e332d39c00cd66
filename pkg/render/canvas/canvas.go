// Package canvas defines the drawing surface the calendar renderer paints
// on. Implementations live in the sink package (SVG, PNG, PDF); [Recorder]
// captures calls for inspection in tests and plan previews.
//
// Calls follow the painter model: later calls draw over earlier ones, so the
// order in which boxes are drawn decides which shadow lies on top.
package canvas

import (
	"github.com/matzehuels/callirhoe/pkg/geom"
	"github.com/matzehuels/callirhoe/pkg/theme"
)

// HAlign is the horizontal placement of text inside its rectangle.
type HAlign int

const (
	Center HAlign = iota
	Left
	Right
)

// VAlign is the vertical placement of text inside its rectangle.
type VAlign int

const (
	Middle VAlign = iota
	Top
	Bottom
)

// Align combines horizontal and vertical text placement. The zero value
// centers text both ways.
type Align struct {
	H HAlign
	V VAlign
}

// BoxPaint describes how a rectangle is painted. A none Frame or a zero
// Thickness skips the outline; a none Fill skips the interior.
type BoxPaint struct {
	Frame     theme.Color
	Fill      theme.Color
	Thickness float64 // device units
}

// TextPaint describes how a string is painted.
type TextPaint struct {
	Align Align
	Font  string
	Color theme.Color
	// Stretch allows horizontal scaling of the glyphs up to this factor so
	// the text fills the rectangle width. Values <= 1 keep the aspect ratio.
	Stretch float64
	// Measure, when set, sizes the text as if it were this string, so that
	// e.g. all day numbers of a month share one font size.
	Measure string
}

// Transform rotates by Angle degrees about (CX, CY), then translates by
// (DX, DY).
type Transform struct {
	Angle  float64
	CX, CY float64
	DX, DY float64
}

// IsIdentity reports whether t leaves coordinates unchanged.
func (t Transform) IsIdentity() bool { return t.Angle == 0 && t.DX == 0 && t.DY == 0 }

// Canvas is a multi-page drawing surface.
type Canvas interface {
	// BeginPage starts a page of the given size in device units.
	BeginPage(width, height float64) error
	DrawBox(r geom.Rect, p BoxPaint)
	DrawStr(text string, r geom.Rect, p TextPaint)
	// Push applies t to all drawing until the matching Pop.
	Push(t Transform)
	Pop()
	EndPage() error
	// Close finishes the document. No calls are allowed afterwards.
	Close() error
}
