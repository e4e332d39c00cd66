package canvas

import (
	"math"
	"testing"
	"unicode/utf8"

	"github.com/matzehuels/callirhoe/pkg/geom"
)

// monoMetrics treats every rune as 0.5 wide, 0.7 above and 0.3 below the
// baseline.
type monoMetrics struct{}

func (monoMetrics) Extents(_, text string) (float64, float64, float64) {
	return 0.5 * float64(utf8.RuneCountInString(text)), 0.7, 0.3
}

func approx(a, b float64) bool { return math.Abs(a-b) < 1e-9 }

func TestFitSize(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		rect     geom.Rect
		measure  string
		wantSize float64
	}{
		{"height bound", "88", geom.R(0, 0, 100, 10), "", 10},
		{"width bound", "8888", geom.R(0, 0, 20, 100), "", 10},
		{"measure hint", "1", geom.R(0, 0, 10, 100), "88", 10},
		{"hint narrower than text", "8888", geom.R(0, 0, 10, 100), "8", 5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pl := Fit(monoMetrics{}, tt.text, tt.rect, TextPaint{Measure: tt.measure})
			if !approx(pl.Size, tt.wantSize) {
				t.Errorf("Size = %v, want %v", pl.Size, tt.wantSize)
			}
			if pl.Width > tt.rect.W+1e-9 {
				t.Errorf("Width = %v exceeds rect width %v", pl.Width, tt.rect.W)
			}
		})
	}
}

func TestFitAlign(t *testing.T) {
	r := geom.R(10, 20, 100, 10) // "88" fits at size 10: width 10, ascent 7, descent 3
	tests := []struct {
		align        Align
		wantX, wantB float64
	}{
		{Align{Left, Top}, 10, 27},
		{Align{Right, Bottom}, 100, 27},
		{Align{Center, Middle}, 55, 27},
	}
	for _, tt := range tests {
		pl := Fit(monoMetrics{}, "88", r, TextPaint{Align: tt.align})
		if !approx(pl.X, tt.wantX) || !approx(pl.Baseline, tt.wantB) {
			t.Errorf("Fit(%+v) = x %v baseline %v, want %v %v", tt.align, pl.X, pl.Baseline, tt.wantX, tt.wantB)
		}
	}
}

func TestFitStretch(t *testing.T) {
	pl := Fit(monoMetrics{}, "88", geom.R(0, 0, 100, 10), TextPaint{Stretch: 3})
	if !approx(pl.ScaleX, 3) || !approx(pl.Width, 30) {
		t.Errorf("stretch = %v width %v, want 3 and 30", pl.ScaleX, pl.Width)
	}
	pl = Fit(monoMetrics{}, "88", geom.R(0, 0, 15, 10), TextPaint{Stretch: 3})
	if !approx(pl.ScaleX, 1.5) {
		t.Errorf("stretch = %v, want 1.5 (limited by width)", pl.ScaleX)
	}
}

func TestFitEmpty(t *testing.T) {
	if pl := Fit(monoMetrics{}, "", geom.R(0, 0, 10, 10), TextPaint{}); pl.Size != 0 {
		t.Errorf("empty text size = %v", pl.Size)
	}
	if pl := Fit(monoMetrics{}, "x", geom.R(0, 0, 0, 10), TextPaint{}); pl.Size != 0 {
		t.Errorf("empty rect size = %v", pl.Size)
	}
}

func TestRecorder(t *testing.T) {
	r := NewRecorder()
	if err := r.BeginPage(100, 200); err != nil {
		t.Fatal(err)
	}
	r.Push(Transform{Angle: 1})
	r.DrawBox(geom.R(0, 0, 10, 10), BoxPaint{})
	r.DrawStr("Jan", geom.R(0, 0, 10, 10), TextPaint{})
	r.Pop()
	if err := r.EndPage(); err != nil {
		t.Fatal(err)
	}
	if err := r.BeginPage(100, 200); err != nil {
		t.Fatal(err)
	}
	r.DrawStr("Feb", geom.R(0, 0, 10, 10), TextPaint{})
	if err := r.EndPage(); err != nil {
		t.Fatal(err)
	}
	if err := r.Close(); err != nil {
		t.Fatal(err)
	}

	if r.Pages() != 2 {
		t.Errorf("Pages() = %d, want 2", r.Pages())
	}
	if got := r.Texts(1); len(got) != 1 || got[0] != "Feb" {
		t.Errorf("Texts(1) = %v", got)
	}
	if got := len(r.Draws()); got != 3 {
		t.Errorf("len(Draws()) = %d, want 3", got)
	}
}

func TestRecorderMisuse(t *testing.T) {
	r := NewRecorder()
	r.DrawBox(geom.R(0, 0, 1, 1), BoxPaint{})
	if err := r.Close(); err == nil {
		t.Error("drawing outside a page was not reported")
	}

	r = NewRecorder()
	_ = r.BeginPage(1, 1)
	r.Push(Transform{})
	if err := r.EndPage(); err == nil {
		t.Error("unbalanced Push was not reported")
	}
}
