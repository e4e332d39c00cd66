package layout

import (
	"math"
	"testing"

	"github.com/matzehuels/callirhoe/pkg/calendar"
	"github.com/matzehuels/callirhoe/pkg/geom"
	"github.com/matzehuels/callirhoe/pkg/holiday"
	"github.com/matzehuels/callirhoe/pkg/theme"
)

func testTheme(t *testing.T, overrides ...string) *theme.Theme {
	t.Helper()
	b := theme.Default()
	for _, o := range overrides {
		if err := b.Override(theme.KindGeometry, o); err != nil {
			t.Fatal(err)
		}
	}
	th, err := b.Freeze()
	if err != nil {
		t.Fatal(err)
	}
	return &th
}

func approx(a, b float64) bool { return math.Abs(a-b) < 1e-9 }

var (
	feb2021 = calendar.MonthSpec{Year: 2021, Month: 2}  // 4 weeks, starts on Monday
	oct2023 = calendar.MonthSpec{Year: 2023, Month: 10} // 6 weeks, starts on Sunday
	jan2024 = calendar.MonthSpec{Year: 2024, Month: 1}  // 5 weeks
)

func TestComposeAsymmetricRows(t *testing.T) {
	th := testTheme(t)
	r := geom.R(0, 0, 210, 300)
	tests := []struct {
		month calendar.MonthSpec
		rows  int
	}{
		{feb2021, 4},
		{jan2024, 5},
		{oct2023, 6},
	}
	for _, tt := range tests {
		t.Run(tt.month.String(), func(t *testing.T) {
			box, err := Compose(tt.month, r, th, false, nil)
			if err != nil {
				t.Fatal(err)
			}
			if box.Rows != tt.rows || box.Cols != 7 {
				t.Fatalf("grid = %dx%d, want %dx7", box.Rows, box.Cols, tt.rows)
			}
			if !approx(box.RowHeight(), box.Grid.H/float64(tt.rows)) {
				t.Errorf("RowHeight = %v, want %v", box.RowHeight(), box.Grid.H/float64(tt.rows))
			}
			for _, c := range box.Cells {
				if !approx(c.Rect.H, box.RowHeight()) {
					t.Errorf("day %d height %v, want %v", c.Day, c.Rect.H, box.RowHeight())
				}
			}
		})
	}
}

func TestComposeSymmetricRows(t *testing.T) {
	th := testTheme(t)
	r := geom.R(0, 0, 210, 300)
	var height float64
	for i, m := range []calendar.MonthSpec{feb2021, jan2024, oct2023} {
		box, err := Compose(m, r, th, true, nil)
		if err != nil {
			t.Fatal(err)
		}
		if box.Rows != 6 {
			t.Errorf("%s: %d rows, want 6", m, box.Rows)
		}
		if i == 0 {
			height = box.Cells[0].Rect.H
		}
		for _, c := range box.Cells {
			if !approx(c.Rect.H, height) {
				t.Errorf("%s day %d: height %v differs from %v", m, c.Day, c.Rect.H, height)
			}
		}
	}
}

func TestComposeCells(t *testing.T) {
	th := testTheme(t)
	box, err := Compose(oct2023, geom.R(0, 0, 700, 800), th, false, nil)
	if err != nil {
		t.Fatal(err)
	}
	if len(box.Cells) != 31 {
		t.Fatalf("%d cells, want 31", len(box.Cells))
	}
	// Oct 1 2023 is a Sunday: last column of the first week
	first := box.Cells[0]
	if first.Row != 0 || first.Col != 6 || first.Weekday != calendar.Sunday {
		t.Errorf("Oct 1 at row %d col %d weekday %d", first.Row, first.Col, first.Weekday)
	}
	last := box.Cells[30]
	if last.Row != 5 || last.Col != 1 {
		t.Errorf("Oct 31 at row %d col %d, want 5,1", last.Row, last.Col)
	}
	if first.ShowDayName {
		t.Error("matrix cells should not show day names")
	}
	if len(box.Weekdays) != 7 || box.Weekdays[0].Weekday != calendar.Monday {
		t.Errorf("weekday labels = %+v", box.Weekdays)
	}
	if box.Title.H <= 0 || box.Title.Y != 0 {
		t.Errorf("title band = %v", box.Title)
	}
	for _, c := range box.Cells {
		if c.Rect.Y < box.Grid.Y-1e-9 || c.Rect.Bottom() > box.Grid.Bottom()+1e-9 {
			t.Errorf("day %d (%v) outside grid %v", c.Day, c.Rect, box.Grid)
		}
	}
}

func TestComposeFirstWeekday(t *testing.T) {
	b := theme.Default()
	b.Language().FirstWeekday = calendar.Sunday
	th, err := b.Freeze()
	if err != nil {
		t.Fatal(err)
	}
	box, err := Compose(oct2023, geom.R(0, 0, 700, 800), &th, false, nil)
	if err != nil {
		t.Fatal(err)
	}
	if box.Rows != 5 {
		t.Errorf("Sunday-first Oct 2023 has %d rows, want 5", box.Rows)
	}
	if c := box.Cells[0]; c.Row != 0 || c.Col != 0 {
		t.Errorf("Oct 1 at %d,%d, want 0,0", c.Row, c.Col)
	}
	if box.Weekdays[0].Weekday != calendar.Sunday {
		t.Errorf("first label weekday = %d", box.Weekdays[0].Weekday)
	}
}

func TestComposeBars(t *testing.T) {
	th := testTheme(t, "month.mode=bars")
	box, err := Compose(feb2021, geom.R(0, 0, 100, 600), th, false, nil)
	if err != nil {
		t.Fatal(err)
	}
	if box.Mode != theme.ModeBars || box.Rows != 28 || box.Cols != 1 {
		t.Fatalf("bars box = %s %dx%d", box.Mode, box.Rows, box.Cols)
	}
	if !box.Cells[0].ShowDayName || box.Weekdays != nil {
		t.Error("bar cells should show day names and have no weekday row")
	}

	box, err = Compose(feb2021, geom.R(0, 0, 100, 600), th, true, nil)
	if err != nil {
		t.Fatal(err)
	}
	if box.Rows != 31 {
		t.Errorf("symmetric bars = %d rows, want 31", box.Rows)
	}
}

func TestResolveMode(t *testing.T) {
	g := theme.MonthGeometry{Mode: theme.ModeAuto, BarRatio: 0.6}
	if m := ResolveMode(g, geom.R(0, 0, 50, 100)); m != theme.ModeBars {
		t.Errorf("narrow auto box = %s, want bars", m)
	}
	if m := ResolveMode(g, geom.R(0, 0, 100, 100)); m != theme.ModeMatrix {
		t.Errorf("square auto box = %s, want matrix", m)
	}
	g.Mode = theme.ModeMatrix
	if m := ResolveMode(g, geom.R(0, 0, 10, 100)); m != theme.ModeMatrix {
		t.Errorf("forced matrix = %s", m)
	}
}

func TestComposeAnnotations(t *testing.T) {
	hs := holiday.NewSet()
	hs.Add(holiday.Entry{Month: 2, Day: 14, Header: "Valentine"})
	box, err := Compose(feb2021, geom.R(0, 0, 700, 500), testTheme(t), false, hs)
	if err != nil {
		t.Fatal(err)
	}
	c := box.Cells[13]
	if c.Day != 14 || !c.Annotation.Holiday || c.Annotation.Header != "Valentine" || !c.Annotation.Weekend {
		t.Errorf("Feb 14 annotation = %+v", c.Annotation)
	}
	if box.Cells[0].Annotation.Weekend {
		t.Error("Feb 1 2021 is a Monday")
	}
}
