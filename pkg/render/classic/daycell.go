package classic

import (
	"strconv"
	"unicode/utf8"

	"github.com/matzehuels/callirhoe/pkg/geom"
	"github.com/matzehuels/callirhoe/pkg/render/canvas"
	"github.com/matzehuels/callirhoe/pkg/render/layout"
	"github.com/matzehuels/callirhoe/pkg/theme"
)

// Sizing strings shared by all cells so every number in a month gets the
// same font size.
const (
	measureNumber = "88"
	measureName   = "M"
)

// IsShort reports whether a cell of shape r uses the short layout.
func IsShort(r geom.Rect, threshold float64) bool {
	return geom.Ratio(r) < threshold
}

// DayPainter draws single day cells.
type DayPainter struct {
	Theme        *theme.Theme
	LongDayNames bool
	DPI          float64
}

// Draw paints cell into r, choosing the short or long layout by comparing
// the shape of r against threshold.
func (p DayPainter) Draw(cv canvas.Canvas, cell layout.Cell, r geom.Rect, threshold float64) {
	a := cell.Annotation
	ds := p.Theme.Style.DayVariant(a.Weekend, a.Holiday, a.Multi())
	cv.DrawBox(r, canvas.BoxPaint{
		Frame:     ds.Frame,
		Fill:      ds.Bg,
		Thickness: geom.MMToDots(p.Theme.Style.FrameThickness, p.DPI),
	})
	if IsShort(r, threshold) {
		p.drawShort(cv, cell, r, ds)
	} else {
		p.drawLong(cv, cell, r, ds)
	}
}

func (p DayPainter) drawShort(cv canvas.Canvas, cell layout.Cell, r geom.Rect, ds theme.DayStyle) {
	g := p.Theme.Geometry.Day
	s := &p.Theme.Style

	num := geom.Scale(r, g.Size[0], g.Size[1])
	valign := canvas.Middle
	var name geom.Rect
	if cell.ShowDayName {
		num, name = geom.MustHSplit2(num, g.MWSplit[0], g.MWSplit[1])
		valign = canvas.Top
	}
	text := canvas.TextPaint{Align: canvas.Align{H: canvas.Center, V: valign}, Font: s.Font, Color: ds.Fg, Measure: measureNumber}
	cv.DrawStr(strconv.Itoa(cell.Day), num, text)
	if cell.ShowDayName {
		cv.DrawStr(initial(p.dayName(cell.Weekday)), name, text)
	}

	if h := cell.Annotation.Header; h != "" {
		hr := geom.RelScale(r, g.HeaderSize[0], g.HeaderSize[1], 0, -1+g.HeaderAlign)
		cv.DrawStr(h, hr, canvas.TextPaint{Font: s.HeaderFont, Color: ds.Header})
	}
	if f := cell.Annotation.Footer; f != "" {
		fr := geom.RelScale(r, g.FooterSize[0], g.FooterSize[1], 0, 1-g.FooterAlign)
		cv.DrawStr(f, fr, canvas.TextPaint{Font: s.FooterFont, Color: ds.Footer})
	}
}

func (p DayPainter) drawLong(cv canvas.Canvas, cell layout.Cell, r geom.Rect, ds theme.DayStyle) {
	g := p.Theme.Geometry.Day
	s := &p.Theme.Style

	block, side := geom.MustHSplit2(r, g.HFHSplit[0], g.HFHSplit[1])
	valign := canvas.Middle
	var num, name geom.Rect
	if cell.ShowDayName {
		num, name = geom.MustHSplit2(geom.Scale(block, g.Size[2], g.Size[3]), g.MWSplit[0], g.MWSplit[1])
		valign = canvas.Top
	} else {
		num = geom.Scale(block, g.Size[0], g.Size[1])
	}
	cv.DrawStr(strconv.Itoa(cell.Day), num, canvas.TextPaint{
		Align:   canvas.Align{H: canvas.Center, V: valign},
		Font:    s.Font,
		Color:   ds.Fg,
		Measure: measureNumber,
	})
	if cell.ShowDayName {
		cv.DrawStr(p.dayName(cell.Weekday), name, canvas.TextPaint{
			Align:   canvas.Align{H: canvas.Left, V: valign},
			Font:    s.Font,
			Color:   ds.Fg,
			Measure: measureName,
		})
	}

	hr, fr := geom.MustVSplit2(side, g.HFVSplit[0], g.HFVSplit[1])
	label := canvas.Align{H: canvas.Right, V: canvas.Middle}
	if h := cell.Annotation.Header; h != "" {
		cv.DrawStr(h, hr, canvas.TextPaint{Align: label, Font: s.HeaderFont, Color: ds.Header})
	}
	if f := cell.Annotation.Footer; f != "" {
		cv.DrawStr(f, fr, canvas.TextPaint{Align: label, Font: s.FooterFont, Color: ds.Footer})
	}
}

func (p DayPainter) dayName(wd int) string {
	return p.Theme.Language.DayName(wd, p.LongDayNames)
}

func initial(s string) string {
	_, n := utf8.DecodeRuneInString(s)
	return s[:n]
}
