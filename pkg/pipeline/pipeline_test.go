package pipeline

import (
	"bytes"
	"context"
	"io"
	"math"
	"os"
	"os/exec"
	"path/filepath"
	"slices"
	"testing"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/callirhoe/pkg/cache"
	"github.com/matzehuels/callirhoe/pkg/errors"
	"github.com/matzehuels/callirhoe/pkg/holiday"
	"github.com/matzehuels/callirhoe/pkg/observability"
	"github.com/matzehuels/callirhoe/pkg/render/canvas"
	"github.com/matzehuels/callirhoe/pkg/render/layout"
)

func ptr[T any](v T) *T { return &v }

func quietRunner(c cache.Cache) *Runner {
	return NewRunner(c, nil, log.NewWithOptions(io.Discard, log.Options{}))
}

func TestValidateFormat(t *testing.T) {
	tests := []struct {
		format  string
		wantErr bool
	}{
		{"svg", false},
		{"png", false},
		{"pdf", false},
		{"json", true},
		{"SVG", true}, // case-sensitive
		{"", true},
	}

	for _, tt := range tests {
		err := ValidateFormat(tt.format)
		if (err != nil) != tt.wantErr {
			t.Errorf("ValidateFormat(%q) error = %v, wantErr %v", tt.format, err, tt.wantErr)
		}
	}
}

func TestSetDefaults(t *testing.T) {
	var o Options
	o.SetDefaults()
	if o.Paper != "a4" || o.DPI != 72 || *o.Border != 3 || o.Format != "svg" {
		t.Errorf("defaults = %+v", o)
	}
	if o.GridOrder != "row" || o.ZOrder != "auto" || o.Themes == nil || o.Logger == nil {
		t.Errorf("defaults = %+v", o)
	}

	o = Options{Border: ptr(0.0)}
	o.SetDefaults()
	if *o.Border != 0 {
		t.Error("explicit zero border was replaced")
	}
}

func TestValidate(t *testing.T) {
	base := Options{Year: 2024, Month: 1, Span: 12}
	tests := []struct {
		name   string
		modify func(*Options)
		code   errors.Code
	}{
		{"year", func(o *Options) { o.Year = 0 }, errors.ErrCodeInvalidYear},
		{"month", func(o *Options) { o.Month = 13 }, errors.ErrCodeInvalidMonth},
		{"span", func(o *Options) { o.Span = -1 }, errors.ErrCodeInvalidInput},
		{"dpi", func(o *Options) { o.DPI = -10 }, errors.ErrCodeInvalidPaper},
		{"border", func(o *Options) { o.Border = ptr(-1.0) }, errors.ErrCodeInvalidPaper},
		{"padding", func(o *Options) { o.Padding = ptr(-1.0) }, errors.ErrCodeInvalidFraction},
		{"ratio", func(o *Options) { o.ShortDayCellRatio = ptr(-2.5) }, errors.ErrCodeInvalidFraction},
		{"grid order", func(o *Options) { o.GridOrder = "diagonal" }, errors.ErrCodeInvalidInput},
		{"z order", func(o *Options) { o.ZOrder = "sideways" }, errors.ErrCodeInvalidInput},
		{"format", func(o *Options) { o.Format = "gif" }, errors.ErrCodeInvalidFormat},
		{"span limit", func(o *Options) { o.Span = MaxSpan + 1 }, errors.ErrCodeInvalidInput},
		{"huge span", func(o *Options) { o.Span = 1 << 30 }, errors.ErrCodeInvalidInput},
		{"dpi limit", func(o *Options) { o.DPI = MaxDPI + 1 }, errors.ErrCodeInvalidPaper},
		{"dpi nan", func(o *Options) { o.DPI = math.NaN() }, errors.ErrCodeInvalidPaper},
		{"border nan", func(o *Options) { o.Border = ptr(math.NaN()) }, errors.ErrCodeInvalidPaper},
		{"png area", func(o *Options) { o.Format, o.Paper, o.DPI = "png", "a0", MaxDPI }, errors.ErrCodeInvalidPaper},
		{"png pixels", func(o *Options) { o.Format, o.Paper = "png", "-20000:-20000" }, errors.ErrCodeInvalidPaper},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			o := base
			tt.modify(&o)
			err := o.ValidateAndSetDefaults()
			if !errors.Is(err, tt.code) {
				t.Errorf("error = %v, want %s", err, tt.code)
			}
		})
	}

	o := base
	if err := o.ValidateAndSetDefaults(); err != nil {
		t.Errorf("valid options rejected: %v", err)
	}
	for _, ok := range []func(*Options){
		func(o *Options) { o.Span = MaxSpan },
		func(o *Options) { o.DPI = MaxDPI },
		func(o *Options) { o.Format, o.Paper, o.DPI = "png", "a0", 300 },
		func(o *Options) { o.Format, o.Paper, o.DPI = "svg", "a0", MaxDPI },
		func(o *Options) { o.Format, o.Paper = "png", "b5" },
	} {
		o = base
		ok(&o)
		if err := o.ValidateAndSetDefaults(); err != nil {
			t.Errorf("options within limits rejected: %v", err)
		}
	}
	o = base
	o.Span = 0
	if err := o.ValidateAndSetDefaults(); err != nil {
		t.Errorf("empty span must reach the layout stage: %v", err)
	}
}

func TestThemeOptions(t *testing.T) {
	o := Options{
		GeometryVars:      []string{"month.padding=5", "dom.short_ratio=1.5"},
		StyleVars:         []string{"sloppy.enabled=true"},
		Padding:           ptr(2.0),
		Symmetric:         true,
		ShortDayCellRatio: ptr(0.0),
	}
	o.SetDefaults()
	th, err := o.Theme()
	if err != nil {
		t.Fatal(err)
	}
	g := th.Geometry
	if g.Month.Padding != 2 || !g.Month.Symmetric || g.Day.ShortRatio != 0 {
		t.Errorf("geometry = %+v", g)
	}
	if !th.Style.Sloppy.Enabled {
		t.Error("style var not applied")
	}

	o = Options{Style: "nope"}
	o.SetDefaults()
	if _, err := o.Theme(); !errors.Is(err, errors.ErrCodeNotFound) {
		t.Errorf("unknown style: %v", err)
	}
	o = Options{LanguageVars: []string{"first_weekday=9"}}
	o.SetDefaults()
	if _, err := o.Theme(); !errors.Is(err, errors.ErrCodeInvalidTheme) {
		t.Errorf("bad first weekday: %v", err)
	}
}

func TestPlanningErrorsPrecedeDrawing(t *testing.T) {
	tests := []struct {
		name string
		opts Options
		code errors.Code
	}{
		{"empty range", Options{Year: 2024, Month: 5, Span: 0}, errors.ErrCodeEmptyRange},
		{"negative rows", Options{Year: 2024, Month: 1, Span: 3, Rows: -1}, errors.ErrCodeUnresolvedGrid},
		{"paper", Options{Year: 2024, Month: 1, Span: 3, Paper: "b5"}, errors.ErrCodeInvalidPaper},
		{"no room", Options{Year: 2024, Month: 1, Span: 3, Paper: "10:10", Border: ptr(20.0)}, errors.ErrCodeInvalidPaper},
		{"nan paper", Options{Year: 2024, Month: 1, Span: 12, Paper: "nan:297", Rows: 4, Cols: 3}, errors.ErrCodeInvalidPaper},
		{"inf paper", Options{Year: 2024, Month: 1, Span: 12, Paper: "210:inf", Rows: 4, Cols: 3}, errors.ErrCodeInvalidPaper},
		{"holidays", Options{Year: 2024, Month: 1, Span: 3, HolidayFiles: []string{"/nonexistent/h.yaml"}}, errors.ErrCodeFileNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := canvas.NewRecorder()
			_, err := quietRunner(nil).Draw(context.Background(), rec, tt.opts)
			if !errors.Is(err, tt.code) {
				t.Fatalf("error = %v, want %s", err, tt.code)
			}
			if len(rec.Ops) != 0 {
				t.Errorf("%d canvas calls before failing", len(rec.Ops))
			}
		})
	}
}

func TestDrawYear(t *testing.T) {
	rec := canvas.NewRecorder()
	doc, err := quietRunner(nil).Draw(context.Background(), rec, Options{Year: 2024, Month: 1, Span: 12})
	if err != nil {
		t.Fatal(err)
	}
	if rec.Pages() != 1 || doc.Plan.Rows != 4 || doc.Plan.Cols != 3 {
		t.Fatalf("pages = %d, grid %dx%d", rec.Pages(), doc.Plan.Rows, doc.Plan.Cols)
	}
	texts := rec.Texts(0)
	for _, want := range []string{"January", "December", "29", "2024", "rendered by callirhoe"} {
		if !slices.Contains(texts, want) {
			t.Errorf("missing text %q", want)
		}
	}
}

func TestPlan(t *testing.T) {
	doc, err := quietRunner(nil).Plan(context.Background(), Options{
		Year: 2024, Month: 11, Span: 6, Rows: 2, Cols: 2, GridOrder: "column", ZOrder: "increasing",
	})
	if err != nil {
		t.Fatal(err)
	}
	if len(doc.Pages) != 2 || doc.Plan.GridOrder != layout.ColumnMajor {
		t.Fatalf("plan = %+v", doc.Plan)
	}
	if second := doc.Pages[0].Boxes[1]; second.Pos != (layout.Position{Row: 1, Col: 0}) {
		t.Errorf("second box at %v, want column-major 1,0", second.Pos)
	}
}

func TestExecuteSVG(t *testing.T) {
	res, err := quietRunner(nil).Execute(context.Background(), Options{Year: 2024, Month: 1, Span: 4, Rows: 1, Cols: 2})
	if err != nil {
		t.Fatal(err)
	}
	if res.Format != "svg" || len(res.Files) != 2 || res.Stats.Pages != 2 || res.Stats.Months != 4 {
		t.Fatalf("result = %s, %d files, stats %+v", res.Format, len(res.Files), res.Stats)
	}
	for i, f := range res.Files {
		if !bytes.Contains(f, []byte("<svg")) {
			t.Errorf("file %d is not SVG", i)
		}
	}
	if !bytes.Contains(res.Files[1], []byte("March")) || bytes.Contains(res.Files[1], []byte("January")) {
		t.Error("second page should hold March and April only")
	}
}

func TestExecutePNG(t *testing.T) {
	res, err := quietRunner(nil).Execute(context.Background(), Options{Year: 2024, Month: 2, Span: 1, Format: "png", Paper: "-400:-300"})
	if err != nil {
		t.Fatal(err)
	}
	if len(res.Files) != 1 || !bytes.HasPrefix(res.Files[0], []byte("\x89PNG")) {
		t.Errorf("not a PNG: %d files", len(res.Files))
	}
}

func TestExecutePDF(t *testing.T) {
	if _, err := exec.LookPath("rsvg-convert"); err != nil {
		t.Skip("rsvg-convert not installed")
	}
	res, err := quietRunner(nil).Execute(context.Background(), Options{Year: 2024, Month: 1, Span: 4, Rows: 1, Cols: 2, Format: "pdf"})
	if err != nil {
		t.Fatal(err)
	}
	if len(res.Files) != 1 || !bytes.HasPrefix(res.Files[0], []byte("%PDF")) {
		t.Errorf("not a single PDF: %d files", len(res.Files))
	}
}

func TestExecuteCache(t *testing.T) {
	ctx := context.Background()
	fc, err := cache.NewFileCache(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	r := quietRunner(fc)
	defer r.Close()

	hpath := filepath.Join(t.TempDir(), "h.yaml")
	writeHolidays := func(label string) {
		t.Helper()
		if err := os.WriteFile(hpath, []byte("holidays:\n  - date: \"01-01\"\n    header: "+label+"\n"), 0644); err != nil {
			t.Fatal(err)
		}
	}
	writeHolidays("New Year")
	opts := Options{Year: 2024, Month: 1, Span: 1, HolidayFiles: []string{hpath}}

	first, err := r.Execute(ctx, opts)
	if err != nil {
		t.Fatal(err)
	}
	second, err := r.Execute(ctx, opts)
	if err != nil {
		t.Fatal(err)
	}
	if first.CacheHit || !second.CacheHit {
		t.Errorf("cache hits = %v, %v; want false, true", first.CacheHit, second.CacheHit)
	}
	if !bytes.Equal(first.Files[0], second.Files[0]) {
		t.Error("cached file differs")
	}

	writeHolidays("Neujahr")
	third, err := r.Execute(ctx, opts)
	if err != nil {
		t.Fatal(err)
	}
	if third.CacheHit || !bytes.Contains(third.Files[0], []byte("Neujahr")) {
		t.Error("changed holiday file should miss the cache")
	}

	custom := opts
	custom.Holidays = holiday.NewSet()
	for range 2 {
		res, err := r.Execute(ctx, custom)
		if err != nil {
			t.Fatal(err)
		}
		if res.CacheHit {
			t.Error("custom holiday providers must not be cached")
		}
	}
}

type countingHooks struct {
	observability.NoopPipelineHooks
	observability.NoopCacheHooks
	layouts, renders, hits, misses, sets int
	pages, bytes                          int
}

func (h *countingHooks) OnLayoutComplete(_ context.Context, pages int, _ time.Duration, _ error) {
	h.layouts++
	h.pages = pages
}

func (h *countingHooks) OnRenderComplete(_ context.Context, _ string, size int, _ time.Duration, _ error) {
	h.renders++
	h.bytes = size
}

func (h *countingHooks) OnCacheHit(context.Context, string)      { h.hits++ }
func (h *countingHooks) OnCacheMiss(context.Context, string)     { h.misses++ }
func (h *countingHooks) OnCacheSet(context.Context, string, int) { h.sets++ }

func TestExecuteHooks(t *testing.T) {
	h := &countingHooks{}
	observability.SetPipelineHooks(h)
	observability.SetCacheHooks(h)
	defer observability.Reset()

	fc, err := cache.NewFileCache(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	r := quietRunner(fc)
	defer r.Close()

	opts := Options{Year: 2024, Month: 1, Span: 3}
	for range 2 {
		if _, err := r.Execute(context.Background(), opts); err != nil {
			t.Fatal(err)
		}
	}
	if h.layouts != 2 || h.pages != 1 {
		t.Errorf("layouts = %d (pages %d), want 2 (1)", h.layouts, h.pages)
	}
	if h.renders != 1 || h.bytes == 0 {
		t.Errorf("renders = %d (%d bytes), want 1 with output", h.renders, h.bytes)
	}
	if h.misses != 1 || h.sets != 1 || h.hits != 1 {
		t.Errorf("cache miss/set/hit = %d/%d/%d, want 1/1/1", h.misses, h.sets, h.hits)
	}
}

func TestRenderFile(t *testing.T) {
	dir := t.TempDir()
	paths, err := Render(context.Background(), filepath.Join(dir, "cal.svg"), Options{Year: 2024, Month: 1, Span: 3, Rows: 1, Cols: 1})
	if err != nil {
		t.Fatal(err)
	}
	want := []string{filepath.Join(dir, "cal_01.svg"), filepath.Join(dir, "cal_02.svg"), filepath.Join(dir, "cal_03.svg")}
	if !slices.Equal(paths, want) {
		t.Errorf("paths = %q, want %q", paths, want)
	}
	for _, p := range want {
		if _, err := os.Stat(p); err != nil {
			t.Error(err)
		}
	}

	single := filepath.Join(dir, "one.svg")
	paths, err = Render(context.Background(), single, Options{Year: 2024, Month: 1, Span: 1})
	if err != nil || !slices.Equal(paths, []string{single}) {
		t.Errorf("single page = %q, %v", paths, err)
	}

	if _, err := Render(context.Background(), filepath.Join(dir, "cal.gif"), Options{Year: 2024, Month: 1, Span: 1}); !errors.Is(err, errors.ErrCodeInvalidFormat) {
		t.Errorf("gif output: %v", err)
	}
}

func TestOutputPaths(t *testing.T) {
	tests := []struct {
		path string
		n    int
		want []string
	}{
		{"cal.pdf", 1, []string{"cal.pdf"}},
		{"cal.svg", 2, []string{"cal_01.svg", "cal_02.svg"}},
		{"out/2024.png", 3, []string{"out/2024_01.png", "out/2024_02.png", "out/2024_03.png"}},
	}
	for _, tt := range tests {
		if got := OutputPaths(tt.path, tt.n); !slices.Equal(got, tt.want) {
			t.Errorf("OutputPaths(%q, %d) = %q, want %q", tt.path, tt.n, got, tt.want)
		}
	}
}

func TestFormatOf(t *testing.T) {
	tests := []struct {
		path string
		want string
		code errors.Code
	}{
		{"cal.pdf", "pdf", ""},
		{"Cal.SVG", "svg", ""},
		{"dir/wall.png", "png", ""},
		{"cal", "", errors.ErrCodeInvalidFormat},
		{"cal.txt", "", errors.ErrCodeInvalidFormat},
		{"", "", errors.ErrCodeInvalidPath},
	}
	for _, tt := range tests {
		got, err := FormatOf(tt.path)
		if tt.code != "" {
			if !errors.Is(err, tt.code) {
				t.Errorf("FormatOf(%q) error = %v, want %s", tt.path, err, tt.code)
			}
			continue
		}
		if err != nil || got != tt.want {
			t.Errorf("FormatOf(%q) = %q, %v; want %q", tt.path, got, err, tt.want)
		}
	}
}
