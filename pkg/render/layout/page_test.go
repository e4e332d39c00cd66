package layout

import (
	"math"
	"testing"

	"github.com/matzehuels/callirhoe/pkg/calendar"
	"github.com/matzehuels/callirhoe/pkg/errors"
	"github.com/matzehuels/callirhoe/pkg/geom"
	"github.com/matzehuels/callirhoe/pkg/theme"
)

func a4(t *testing.T, landscape bool) geom.Page {
	t.Helper()
	p, err := geom.ParsePaper("a4")
	if err != nil {
		t.Fatal(err)
	}
	return p.Page(72, landscape, 3)
}

func TestFrame(t *testing.T) {
	pg := a4(t, false)
	f := Frame(pg, 0.05, false)
	if !approx(f.Footer.H, f.Content.H*0.05) || !approx(f.Grid.H+f.Footer.H, f.Content.H) {
		t.Errorf("grid %v footer %v content %v", f.Grid, f.Footer, f.Content)
	}
	if !approx(f.Footer.Y, f.Grid.Bottom()) {
		t.Error("footer should sit below the grid")
	}

	f = Frame(pg, 0.05, true)
	if !f.Footer.Empty() || f.Grid != f.Content {
		t.Errorf("no-footer frame = %+v", f)
	}
}

func TestFrameCells(t *testing.T) {
	f := PageFrame{Grid: geom.R(0, 0, 300, 200)}
	cells, err := f.Cells(2, 3, 10)
	if err != nil {
		t.Fatal(err)
	}
	if len(cells) != 6 {
		t.Fatalf("%d cells, want 6", len(cells))
	}
	if want := geom.R(5, 5, 90, 90); cells[0] != want {
		t.Errorf("cells[0] = %v, want %v", cells[0], want)
	}
	if gap := cells[1].X - cells[0].Right(); !approx(gap, 10) {
		t.Errorf("gap = %v, want 10", gap)
	}
	if _, err := f.Cells(0, 3, 0); !errors.Is(err, errors.ErrCodeUnresolvedGrid) {
		t.Errorf("Cells(0,3) = %v, want UNRESOLVED_GRID", err)
	}
}

func TestBuildYearOnOnePage(t *testing.T) {
	th := testTheme(t)
	doc, err := Build(calendar.Range(2024, 1, 12), th, a4(t, false), Options{Rows: 4, Cols: 3, ZOrder: ZIncreasing}, nil)
	if err != nil {
		t.Fatal(err)
	}
	if len(doc.Pages) != 1 {
		t.Fatalf("%d pages, want 1", len(doc.Pages))
	}
	boxes := doc.Pages[0].Boxes
	if len(boxes) != 12 {
		t.Fatalf("%d boxes, want 12", len(boxes))
	}
	for i, b := range boxes {
		want := Position{Row: i / 3, Col: i % 3}
		if b.Pos != want || b.Month.Month != i+1 {
			t.Errorf("box %d = %s at %v, want month %d at %v", i, b.Month, b.Pos, i+1, want)
		}
	}
}

func TestBuildAuto(t *testing.T) {
	th := testTheme(t)
	doc, err := Build(calendar.Range(2024, 1, 12), th, a4(t, false), Options{}, nil)
	if err != nil {
		t.Fatal(err)
	}
	if doc.Plan.Rows != 4 || doc.Plan.Cols != 3 || len(doc.Pages) != 1 {
		t.Errorf("auto plan = %dx%d on %d pages", doc.Plan.Rows, doc.Plan.Cols, len(doc.Pages))
	}
	if doc.Plan.ZOrder != ZDecreasing {
		t.Errorf("auto z-order = %s, want decreasing for non-sloppy style", doc.Plan.ZOrder)
	}
	if first := doc.Pages[0].Boxes[0]; first.Month.Month != 12 {
		t.Errorf("first drawn box = %s, want December", first.Month)
	}

	doc, err = Build(calendar.Range(2024, 1, 12), th, a4(t, true), Options{Landscape: true}, nil)
	if err != nil {
		t.Fatal(err)
	}
	if doc.Plan.Rows != 3 || doc.Plan.Cols != 4 {
		t.Errorf("landscape plan = %dx%d, want 3x4", doc.Plan.Rows, doc.Plan.Cols)
	}
}

func TestBuildPaginates(t *testing.T) {
	doc, err := Build(calendar.Range(2024, 11, 6), testTheme(t), a4(t, false), Options{Rows: 2, Cols: 2}, nil)
	if err != nil {
		t.Fatal(err)
	}
	if len(doc.Pages) != 2 || len(doc.Pages[1].Boxes) != 2 {
		t.Fatalf("pages = %d", len(doc.Pages))
	}
	if m := doc.Pages[1].Boxes[0].Month; m != (calendar.MonthSpec{Year: 2025, Month: 4}) {
		t.Errorf("first drawn box of page 2 = %s, want 2025-04", m)
	}
}

func TestBuildSloppy(t *testing.T) {
	b := theme.Default()
	_ = b.Override(theme.KindStyle, "sloppy.enabled=true")
	th, err := b.Freeze()
	if err != nil {
		t.Fatal(err)
	}
	build := func() *Document {
		doc, err := Build(calendar.Range(2024, 1, 4), &th, a4(t, false), Options{}, nil)
		if err != nil {
			t.Fatal(err)
		}
		return doc
	}
	d1, d2 := build(), build()
	if d1.Plan.ZOrder != ZIncreasing {
		t.Errorf("sloppy z-order = %s, want increasing", d1.Plan.ZOrder)
	}
	moved := false
	for i, b := range d1.Pages[0].Boxes {
		if b.Jitter != d2.Pages[0].Boxes[i].Jitter {
			t.Error("jitter is not deterministic")
		}
		if b.Jitter.Angle != 0 {
			moved = true
		}
		if b.Jitter.Angle > th.Style.Sloppy.MaxAngle || b.Jitter.Angle < -th.Style.Sloppy.MaxAngle {
			t.Errorf("angle %v exceeds %v", b.Jitter.Angle, th.Style.Sloppy.MaxAngle)
		}
	}
	if !moved {
		t.Error("sloppy boxes were not rotated")
	}
}

func TestBuildErrors(t *testing.T) {
	th := testTheme(t)
	pg := a4(t, false)
	if _, err := Build(nil, th, pg, Options{}, nil); !errors.Is(err, errors.ErrCodeEmptyRange) {
		t.Errorf("empty range: %v", err)
	}
	if _, err := Build(calendar.Range(2024, 1, 3), th, pg, Options{Rows: -1}, nil); !errors.Is(err, errors.ErrCodeUnresolvedGrid) {
		t.Errorf("negative rows: %v", err)
	}
	tiny := geom.Page{Width: 10, Height: 10, Border: 20, DPI: 72}
	if _, err := Build(calendar.Range(2024, 1, 3), th, tiny, Options{}, nil); !errors.Is(err, errors.ErrCodeInvalidPaper) {
		t.Errorf("no room: %v", err)
	}

	for _, bad := range []geom.Page{
		{Width: math.NaN(), Height: 842, DPI: 72},
		{Width: 595, Height: math.Inf(1), DPI: 72},
		{Width: 595, Height: 842, Border: math.NaN(), DPI: 72},
	} {
		_, err := Build(calendar.Range(2024, 1, 12), th, bad, Options{Rows: 4, Cols: 3}, nil)
		if !errors.Is(err, errors.ErrCodeInvalidPaper) {
			t.Errorf("Build(%vx%v border %v) error = %v, want INVALID_PAPER", bad.Width, bad.Height, bad.Border, err)
		}
	}
}
