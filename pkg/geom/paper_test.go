package geom

import (
	"testing"

	"github.com/matzehuels/callirhoe/pkg/errors"
)

func TestParsePaper(t *testing.T) {
	tests := []struct {
		spec string
		want Paper
	}{
		{"a4", Paper{Width: 210, Height: 297}},
		{"A3", Paper{Width: 297, Height: 420}},
		{"a4w", Paper{Width: 297, Height: 210}},
		{"a0", Paper{Width: 841, Height: 1189}},
		{"100:50", Paper{Width: 100, Height: 50}},
		{"-1920:-1080", Paper{Width: 1920, Height: 1080, WPixels: true, HPixels: true}},
		{"-800:100", Paper{Width: 800, Height: 100, WPixels: true}},
	}
	for _, tt := range tests {
		t.Run(tt.spec, func(t *testing.T) {
			got, err := ParsePaper(tt.spec)
			if err != nil {
				t.Fatalf("ParsePaper(%q) error: %v", tt.spec, err)
			}
			if got != tt.want {
				t.Errorf("ParsePaper(%q) = %+v, want %+v", tt.spec, got, tt.want)
			}
		})
	}
}

func TestParsePaperInvalid(t *testing.T) {
	for _, spec := range []string{"", "letter", "a10", "b4", "0:10", "x:10", "10:", "nan:297", "inf:297", "210:-inf", "NaN:NaN"} {
		t.Run(spec, func(t *testing.T) {
			if _, err := ParsePaper(spec); !errors.Is(err, errors.ErrCodeInvalidPaper) {
				t.Errorf("ParsePaper(%q) error = %v, want INVALID_PAPER", spec, err)
			}
		})
	}
}

func TestPaperPage(t *testing.T) {
	p := Paper{Width: 25.4, Height: 50.8}
	pg := p.Page(100, false, 0)
	if !approx(pg.Width, 100) || !approx(pg.Height, 200) {
		t.Errorf("Page() = %vx%v, want 100x200", pg.Width, pg.Height)
	}

	land := p.Page(100, true, 2.54)
	if !approx(land.Width, 200) || !approx(land.Height, 100) {
		t.Errorf("landscape Page() = %vx%v, want 200x100", land.Width, land.Height)
	}
	if c := land.Content(); !rectApprox(c, R(10, 10, 180, 80)) {
		t.Errorf("Content() = %v", c)
	}

	px := Paper{Width: 1920, Height: 1080, WPixels: true, HPixels: true}.Page(300, false, 0)
	if px.Width != 1920 || px.Height != 1080 {
		t.Errorf("pixel paper should ignore dpi, got %vx%v", px.Width, px.Height)
	}

	if def := p.Page(0, false, 0); def.DPI != DefaultDPI {
		t.Errorf("zero dpi should fall back to %v, got %v", DefaultDPI, def.DPI)
	}
}
