package classic

import (
	"slices"
	"strings"
	"testing"

	"github.com/matzehuels/callirhoe/pkg/calendar"
	"github.com/matzehuels/callirhoe/pkg/geom"
	"github.com/matzehuels/callirhoe/pkg/holiday"
	"github.com/matzehuels/callirhoe/pkg/render/canvas"
	"github.com/matzehuels/callirhoe/pkg/render/layout"
	"github.com/matzehuels/callirhoe/pkg/theme"
)

func frozen(t *testing.T, kind string, overrides ...string) *theme.Theme {
	t.Helper()
	b := theme.Default()
	if err := b.Overrides(kind, overrides); err != nil {
		t.Fatal(err)
	}
	th, err := b.Freeze()
	if err != nil {
		t.Fatal(err)
	}
	return &th
}

func a4(t *testing.T) geom.Page {
	t.Helper()
	p, err := geom.ParsePaper("a4")
	if err != nil {
		t.Fatal(err)
	}
	return p.Page(72, false, 3)
}

// drawCell records a single day cell on its own page.
func drawCell(t *testing.T, p DayPainter, cell layout.Cell, r geom.Rect, threshold float64) *canvas.Recorder {
	t.Helper()
	rec := canvas.NewRecorder()
	if err := rec.BeginPage(1000, 1000); err != nil {
		t.Fatal(err)
	}
	p.Draw(rec, cell, r, threshold)
	if err := rec.EndPage(); err != nil {
		t.Fatal(err)
	}
	return rec
}

func TestIsShort(t *testing.T) {
	tests := []struct {
		w, h float64
		want bool
	}{
		{249, 100, true},
		{251, 100, false},
		{250, 100, false},
		{100, 100, true},
		{1000, 10, false},
	}
	for _, tt := range tests {
		if got := IsShort(geom.R(0, 0, tt.w, tt.h), 2.5); got != tt.want {
			t.Errorf("IsShort(%vx%v) = %v, want %v", tt.w, tt.h, got, tt.want)
		}
	}
}

func TestDayCellThreshold(t *testing.T) {
	p := DayPainter{Theme: frozen(t, theme.KindStyle), DPI: 72}
	cell := layout.Cell{Day: 1, Weekday: calendar.Monday, ShowDayName: true}

	short := drawCell(t, p, cell, geom.R(0, 0, 249, 100), 2.5)
	if got := short.Texts(0); !slices.Equal(got, []string{"1", "M"}) {
		t.Errorf("short cell texts = %q, want [1 M]", got)
	}
	long := drawCell(t, p, cell, geom.R(0, 0, 251, 100), 2.5)
	if got := long.Texts(0); !slices.Equal(got, []string{"1", "Mo"}) {
		t.Errorf("long cell texts = %q, want [1 Mo]", got)
	}

	p.LongDayNames = true
	long = drawCell(t, p, cell, geom.R(0, 0, 251, 100), 2.5)
	if got := long.Texts(0); !slices.Equal(got, []string{"1", "Monday"}) {
		t.Errorf("long day names = %q", got)
	}
}

func TestDayCellFrame(t *testing.T) {
	th := frozen(t, theme.KindStyle)
	p := DayPainter{Theme: th, DPI: 72}
	r := geom.R(10, 20, 100, 100)
	rec := drawCell(t, p, layout.Cell{Day: 7, Weekday: calendar.Sunday, Annotation: holiday.Annotation{Weekend: true}}, r, 2.5)

	draws := rec.Draws()
	if len(draws) != 2 {
		t.Fatalf("%d draws, want box and number", len(draws))
	}
	box := draws[0]
	if box.Kind != canvas.OpBox || box.Rect != r {
		t.Fatalf("first draw = %v %v, want cell box", box.Kind, box.Rect)
	}
	if box.Box.Fill != th.Style.DomWeekend.Bg {
		t.Errorf("weekend fill = %v, want %v", box.Box.Fill, th.Style.DomWeekend.Bg)
	}
	if want := geom.MMToDots(th.Style.FrameThickness, 72); box.Box.Thickness != want {
		t.Errorf("thickness = %v, want %v", box.Box.Thickness, want)
	}
	num := draws[1]
	if num.Text != "7" || num.Str.Measure != "88" || num.Str.Align.V != canvas.Middle {
		t.Errorf("number = %+v", num)
	}
	if !r.Inset(-1e-9).Contains(num.Rect) {
		t.Errorf("number rect %v escapes cell %v", num.Rect, r)
	}
}

func TestDayCellLabels(t *testing.T) {
	p := DayPainter{Theme: frozen(t, theme.KindStyle), DPI: 72}
	cell := layout.Cell{Day: 25, Weekday: calendar.Monday, Annotation: holiday.Annotation{
		Holiday: true,
		Header:  "Christmas",
		Footer:  "office closed",
	}}

	tests := []struct {
		name      string
		r         geom.Rect
		headerTop bool
	}{
		{"short", geom.R(0, 0, 100, 100), true},
		{"long", geom.R(0, 0, 400, 100), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := drawCell(t, p, cell, tt.r, 2.5)
			if got := rec.Texts(0); !slices.Equal(got, []string{"25", "Christmas", "office closed"}) {
				t.Fatalf("texts = %q", got)
			}
			draws := rec.Draws()
			header, footer := draws[2], draws[3]
			if header.Str.Color != p.Theme.Style.DomHoliday.Header {
				t.Errorf("header color = %v", header.Str.Color)
			}
			if header.Rect.Y >= footer.Rect.Y {
				t.Errorf("header %v not above footer %v", header.Rect, footer.Rect)
			}
			if tt.headerTop && header.Rect.Bottom() > tt.r.CenterY() {
				t.Errorf("short header %v should sit in the top half", header.Rect)
			}
			if !tt.headerTop && (header.Str.Align.H != canvas.Right || header.Rect.X < tt.r.CenterX()) {
				t.Errorf("long header %v align %v, want right side column", header.Rect, header.Str.Align)
			}
		})
	}
}

func TestDayCellEmptyLabels(t *testing.T) {
	p := DayPainter{Theme: frozen(t, theme.KindStyle), DPI: 72}
	for _, r := range []geom.Rect{geom.R(0, 0, 100, 100), geom.R(0, 0, 400, 100)} {
		rec := drawCell(t, p, layout.Cell{Day: 3, Annotation: holiday.Annotation{Holiday: true}}, r, 2.5)
		if n := len(rec.Draws()); n != 2 {
			t.Errorf("%v: %d draws, want 2", r, n)
		}
	}
}

func build(t *testing.T, th *theme.Theme, months []calendar.MonthSpec, opts layout.Options) *layout.Document {
	t.Helper()
	doc, err := layout.Build(months, th, a4(t), opts, nil)
	if err != nil {
		t.Fatal(err)
	}
	return doc
}

func titles(rec *canvas.Recorder, th *theme.Theme) []string {
	var out []string
	for _, op := range rec.Ops {
		if op.Kind == canvas.OpStr && op.Str.Color == th.Style.Month.Title && op.Str.Font == th.Style.Font && op.Str.Measure == "" {
			out = append(out, op.Text)
		}
	}
	return out
}

func TestDrawOrder(t *testing.T) {
	th := frozen(t, theme.KindStyle)
	months := calendar.Range(2024, 1, 4)
	tests := []struct {
		z    layout.ZOrder
		want []string
	}{
		{layout.ZIncreasing, []string{"January", "February", "March", "April"}},
		{layout.ZDecreasing, []string{"April", "March", "February", "January"}},
	}
	for _, tt := range tests {
		t.Run(string(tt.z), func(t *testing.T) {
			rec := canvas.NewRecorder()
			doc := build(t, th, months, layout.Options{Rows: 2, Cols: 2, ZOrder: tt.z})
			if err := New(th).Draw(rec, doc); err != nil {
				t.Fatal(err)
			}
			if got := titles(rec, th); !slices.Equal(got, tt.want) {
				t.Errorf("titles = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestDrawPages(t *testing.T) {
	th := frozen(t, theme.KindStyle)
	rec := canvas.NewRecorder()
	doc := build(t, th, calendar.Range(2024, 11, 6), layout.Options{Rows: 2, Cols: 2})
	if err := New(th).Draw(rec, doc); err != nil {
		t.Fatal(err)
	}
	if err := rec.Close(); err != nil {
		t.Fatal(err)
	}
	if rec.Pages() != 2 {
		t.Fatalf("%d pages, want 2", rec.Pages())
	}
	for page := range 2 {
		texts := rec.Texts(page)
		if !slices.Contains(texts, "2024-2025") || !slices.Contains(texts, "rendered by callirhoe") {
			t.Errorf("page %d footer missing: %q", page, texts)
		}
	}
}

func TestDrawOptions(t *testing.T) {
	th := frozen(t, theme.KindStyle)
	months := calendar.Range(2024, 3, 1)

	draw := func(opts layout.Options, ropts ...RenderOption) *canvas.Recorder {
		rec := canvas.NewRecorder()
		if err := New(th, ropts...).Draw(rec, build(t, th, months, opts)); err != nil {
			t.Fatal(err)
		}
		return rec
	}
	shadows := func(rec *canvas.Recorder) int {
		n := 0
		for _, op := range rec.Draws() {
			if op.Kind == canvas.OpBox && op.Box.Fill == th.Style.Shadow.Color {
				n++
			}
		}
		return n
	}

	rec := draw(layout.Options{})
	texts := rec.Texts(0)
	if !slices.Contains(texts, "March") || !slices.Contains(texts, "2024") || !slices.Contains(texts, "Mo") {
		t.Errorf("default texts = %q", texts)
	}
	if shadows(rec) != 1 {
		t.Errorf("%d shadows, want 1", shadows(rec))
	}
	if first := rec.Draws()[0]; first.Box.Fill == th.Style.Page.Bg && first.Rect == a4(t).Bounds() {
		t.Error("transparent page got a background")
	}

	rec = draw(layout.Options{}, WithMonthYear(), WithShortMonthNames(), WithLongDayNames())
	texts = rec.Texts(0)
	if !slices.Contains(texts, "Mar 2024") || slices.Contains(texts, "2024") || !slices.Contains(texts, "Wednesday") {
		t.Errorf("month-with-year texts = %q", texts)
	}

	rec = draw(layout.Options{NoFooter: true}, WithoutShadow(), WithOpaque())
	if shadows(rec) != 0 {
		t.Error("shadow drawn with WithoutShadow")
	}
	if slices.Contains(rec.Texts(0), "rendered by callirhoe") {
		t.Error("footer drawn without footer band")
	}
	if first := rec.Draws()[0]; first.Rect != a4(t).Bounds() || first.Box.Fill != th.Style.Page.Bg {
		t.Errorf("opaque background = %+v", first)
	}
}

func TestDrawSwapColors(t *testing.T) {
	th := frozen(t, theme.KindStyle)
	band := func(year int, opts ...RenderOption) theme.Color {
		rec := canvas.NewRecorder()
		doc := build(t, th, []calendar.MonthSpec{{Year: year, Month: 5}}, layout.Options{})
		if err := New(th, opts...).Draw(rec, doc); err != nil {
			t.Fatal(err)
		}
		for _, op := range rec.Draws() {
			if op.Kind == canvas.OpBox && op.Rect == doc.Pages[0].Boxes[0].Box.Title {
				return op.Box.Fill
			}
		}
		t.Fatal("no title band drawn")
		return theme.None
	}
	if got := band(2023); got != th.Style.Month.ColorMap[4] {
		t.Errorf("odd year without swap = %v", got)
	}
	if got := band(2023, WithSwapColors()); got != th.Style.Month.ColorMapAlt[4] {
		t.Errorf("odd year with swap = %v", got)
	}
	if got := band(2024, WithSwapColors()); got != th.Style.Month.ColorMap[4] {
		t.Errorf("even year with swap = %v", got)
	}
}

func TestDrawSloppy(t *testing.T) {
	th := frozen(t, theme.KindStyle, "sloppy.enabled=true")
	rec := canvas.NewRecorder()
	doc := build(t, th, calendar.Range(2024, 1, 3), layout.Options{})
	if err := New(th).Draw(rec, doc); err != nil {
		t.Fatal(err)
	}
	var push, pop int
	for _, op := range rec.Ops {
		switch op.Kind {
		case canvas.OpPush:
			push++
			if op.Transform.IsIdentity() {
				t.Error("sloppy box pushed an identity transform")
			}
		case canvas.OpPop:
			pop++
		}
	}
	if push != 3 || pop != 3 {
		t.Errorf("push/pop = %d/%d, want 3/3", push, pop)
	}
}

func TestDrawBars(t *testing.T) {
	th := frozen(t, theme.KindGeometry, "month.mode=bars")
	rec := canvas.NewRecorder()
	doc := build(t, th, calendar.Range(2024, 2, 1), layout.Options{})
	if err := New(th).Draw(rec, doc); err != nil {
		t.Fatal(err)
	}
	var names int
	for _, s := range rec.Texts(0) {
		if strings.HasPrefix(s, "T") && len(s) <= 2 {
			names++
		}
	}
	// February 2024: Tuesdays and Thursdays, 4 + 5
	if names != 9 {
		t.Errorf("%d T* day names, want 9", names)
	}
}

func TestYearSpan(t *testing.T) {
	plan := func(months []calendar.MonthSpec) *layout.Plan {
		p, err := layout.PlanGrid(months, layout.GridOptions{Rows: 4, Cols: 3})
		if err != nil {
			t.Fatal(err)
		}
		return p
	}
	if got := yearSpan(plan(calendar.Range(2024, 1, 12))); got != "2024" {
		t.Errorf("yearSpan = %q", got)
	}
	if got := yearSpan(plan(calendar.Range(2024, 6, 24))); got != "2024-2026" {
		t.Errorf("yearSpan = %q", got)
	}
}
