package classic

import (
	"fmt"
	"strconv"

	"github.com/matzehuels/callirhoe/pkg/geom"
	"github.com/matzehuels/callirhoe/pkg/render/canvas"
	"github.com/matzehuels/callirhoe/pkg/render/layout"
	"github.com/matzehuels/callirhoe/pkg/theme"
)

// Title and weekday text is inset into its band by these factors.
const (
	titleScaleX, titleScaleY     = 0.9, 0.75
	weekdayScaleX, weekdayScaleY = 0.9, 0.7
	footerScaleY                 = 0.8
)

// RenderOption configures a [Renderer].
type RenderOption func(*Renderer)

// WithMonthYear appends the year to every month title and drops it from the
// page footer.
func WithMonthYear() RenderOption { return func(r *Renderer) { r.monthYear = true } }

// WithShortMonthNames uses the short month names in titles.
func WithShortMonthNames() RenderOption { return func(r *Renderer) { r.shortMonths = true } }

// WithLongDayNames uses the long day names in weekday rows and day cells.
func WithLongDayNames() RenderOption { return func(r *Renderer) { r.longDays = true } }

// WithoutShadow skips the drop shadows behind month boxes.
func WithoutShadow() RenderOption { return func(r *Renderer) { r.noShadow = true } }

// WithOpaque paints the page background before anything else.
func WithOpaque() RenderOption { return func(r *Renderer) { r.opaque = true } }

// WithSwapColors uses the alternate month colors in odd years.
func WithSwapColors() RenderOption { return func(r *Renderer) { r.swapColors = true } }

// Renderer draws laid-out documents. It holds no per-document state and may
// be reused.
type Renderer struct {
	theme       *theme.Theme
	monthYear   bool
	shortMonths bool
	longDays    bool
	noShadow    bool
	opaque      bool
	swapColors  bool
}

// New returns a renderer for the given frozen theme.
func New(th *theme.Theme, opts ...RenderOption) *Renderer {
	r := &Renderer{theme: th}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Draw paints every page of doc onto cv. It does not close cv.
func (r *Renderer) Draw(cv canvas.Canvas, doc *layout.Document) error {
	years := yearSpan(doc.Plan)
	for _, pl := range doc.Pages {
		if err := r.DrawPage(cv, pl, years); err != nil {
			return fmt.Errorf("page %d: %w", pl.Index+1, err)
		}
	}
	return nil
}

// DrawPage paints one page: background, month boxes in their draw order
// and the footer. years is the footer text for the left side.
func (r *Renderer) DrawPage(cv canvas.Canvas, pl layout.PageLayout, years string) error {
	pg := pl.Frame.Page
	if err := cv.BeginPage(pg.Width, pg.Height); err != nil {
		return err
	}
	if r.opaque {
		bg := r.theme.Style.Page.Bg
		if bg.IsNone() {
			bg = theme.Hex("#ffffff")
		}
		cv.DrawBox(pg.Bounds(), canvas.BoxPaint{Fill: bg})
	}
	for _, b := range pl.Boxes {
		r.drawMonth(cv, b, pg.DPI)
	}
	if !pl.Frame.Footer.Empty() {
		r.drawFooter(cv, pl.Frame.Footer, years)
	}
	return cv.EndPage()
}

func (r *Renderer) drawMonth(cv canvas.Canvas, pb layout.PlacedBox, dpi float64) {
	s := &r.theme.Style
	box := pb.Box
	rect := box.Rect

	if j := pb.Jitter; j != (layout.Jitter{}) {
		cv.Push(canvas.Transform{Angle: j.Angle, CX: rect.CenterX(), CY: rect.CenterY(), DX: j.DX, DY: j.DY})
		defer cv.Pop()
	}

	if !r.noShadow && !s.Shadow.Color.IsNone() && s.Shadow.Size > 0 {
		d := geom.MMToDots(s.Shadow.Size, dpi)
		cv.DrawBox(rect.Translate(d, d), canvas.BoxPaint{Fill: s.Shadow.Color})
	}
	cv.DrawBox(rect, canvas.BoxPaint{Fill: s.Month.Bg})

	cv.DrawBox(box.Title, canvas.BoxPaint{Fill: s.MonthColor(box.Month.Year, box.Month.Month, r.swapColors)})
	cv.DrawStr(r.monthTitle(box), geom.Scale(box.Title, titleScaleX, titleScaleY), canvas.TextPaint{
		Font:  s.Font,
		Color: s.Month.Title,
	})

	lang := &r.theme.Language
	for _, wl := range box.Weekdays {
		cv.DrawStr(lang.DayName(wl.Weekday, r.longDays), geom.Scale(wl.Rect, weekdayScaleX, weekdayScaleY), canvas.TextPaint{
			Font:    s.Font,
			Color:   s.Month.Weekday,
			Measure: r.widestDayName(),
		})
	}

	dp := DayPainter{Theme: r.theme, LongDayNames: r.longDays, DPI: dpi}
	threshold := r.theme.Geometry.Day.ShortRatio
	for _, c := range box.Cells {
		dp.Draw(cv, c, c.Rect, threshold)
	}

	cv.DrawBox(rect, canvas.BoxPaint{Frame: s.Month.Frame, Thickness: geom.MMToDots(s.Month.FrameThickness, dpi)})
}

func (r *Renderer) monthTitle(box layout.MonthBox) string {
	name := r.theme.Language.MonthName(box.Month.Month, r.shortMonths)
	if r.monthYear {
		name += " " + strconv.Itoa(box.Month.Year)
	}
	return name
}

// widestDayName keeps all weekday labels at one font size.
func (r *Renderer) widestDayName() string {
	var widest string
	for d := range 7 {
		if n := r.theme.Language.DayName(d, r.longDays); len([]rune(n)) > len([]rune(widest)) {
			widest = n
		}
	}
	return widest
}

func (r *Renderer) drawFooter(cv canvas.Canvas, area geom.Rect, years string) {
	s := &r.theme.Style
	font := s.Page.Font
	if font == "" {
		font = s.Font
	}
	band := geom.Scale(area, 1, footerScaleY)
	left, right := geom.MustHSplit2(band, 0.5, 0)
	if !r.monthYear && years != "" {
		cv.DrawStr(years, left, canvas.TextPaint{Align: canvas.Align{H: canvas.Left}, Font: font, Color: s.Page.Footer})
	}
	if credit := r.theme.Language.Credit; credit != "" {
		cv.DrawStr(credit, right, canvas.TextPaint{Align: canvas.Align{H: canvas.Right}, Font: font, Color: s.Page.Footer})
	}
}

// yearSpan formats the years a plan covers, e.g. "2024" or "2024-2025".
func yearSpan(p *layout.Plan) string {
	first, last := 0, 0
	for _, pg := range p.Pages {
		for _, sl := range pg.Slots {
			y := sl.Month.Year
			if first == 0 || y < first {
				first = y
			}
			last = max(last, y)
		}
	}
	switch {
	case first == 0:
		return ""
	case first == last:
		return strconv.Itoa(first)
	}
	return fmt.Sprintf("%d-%d", first, last)
}
