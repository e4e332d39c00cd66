package geom

import (
	"math"
	"strconv"
	"strings"

	"github.com/matzehuels/callirhoe/pkg/errors"
)

// DefaultDPI is the resolution used when none is given. At 72 DPI one
// device unit is one PostScript point.
const DefaultDPI = 72.0

const mmPerInch = 25.4

// isoA holds ISO 216 A-series sizes in millimeters (portrait).
var isoA = [10][2]float64{
	{841, 1189}, {594, 841}, {420, 594}, {297, 420}, {210, 297},
	{148, 210}, {105, 148}, {74, 105}, {52, 74}, {37, 52},
}

// Paper is a page size. Each side is either in millimeters or, when the
// corresponding Pixels flag is set, in device pixels.
type Paper struct {
	Width, Height    float64
	WPixels, HPixels bool
}

// ParsePaper parses a paper specification: an ISO size "a0".."a9", the same
// with a "w" suffix for swapped width and height, or "W:H" where positive
// values are millimeters and negative values are pixels.
func ParsePaper(spec string) (Paper, error) {
	s := strings.ToLower(strings.TrimSpace(spec))
	if s == "" {
		return Paper{}, errors.New(errors.ErrCodeInvalidPaper, "empty paper specification")
	}
	if w, h, ok := strings.Cut(s, ":"); ok {
		return parseExplicitPaper(spec, w, h)
	}

	wide := strings.HasSuffix(s, "w")
	s = strings.TrimSuffix(s, "w")
	if len(s) != 2 || s[0] != 'a' || s[1] < '0' || s[1] > '9' {
		return Paper{}, errors.New(errors.ErrCodeInvalidPaper, "unknown paper type %q", spec)
	}
	dims := isoA[s[1]-'0']
	p := Paper{Width: dims[0], Height: dims[1]}
	if wide {
		p.Width, p.Height = p.Height, p.Width
	}
	return p, nil
}

func parseExplicitPaper(spec, ws, hs string) (Paper, error) {
	w, err := strconv.ParseFloat(strings.TrimSpace(ws), 64)
	if err != nil || !Finite(w) || w == 0 {
		return Paper{}, errors.New(errors.ErrCodeInvalidPaper, "invalid paper width in %q", spec)
	}
	h, err := strconv.ParseFloat(strings.TrimSpace(hs), 64)
	if err != nil || !Finite(h) || h == 0 {
		return Paper{}, errors.New(errors.ErrCodeInvalidPaper, "invalid paper height in %q", spec)
	}
	p := Paper{Width: w, Height: h}
	if w < 0 {
		p.Width, p.WPixels = -w, true
	}
	if h < 0 {
		p.Height, p.HPixels = -h, true
	}
	return p, nil
}

// Finite reports whether v is neither NaN nor infinite.
func Finite(v float64) bool { return !math.IsNaN(v) && !math.IsInf(v, 0) }

// MMToDots converts millimeters to device units at the given DPI.
func MMToDots(mm, dpi float64) float64 {
	return mm / mmPerInch * dpi
}

// Page is a page resolved to device units.
type Page struct {
	Width, Height float64 // full page size
	Border        float64 // border on every side
	DPI           float64
}

// Page resolves the paper at the given DPI. Landscape swaps the sides;
// border is in millimeters.
func (p Paper) Page(dpi float64, landscape bool, borderMM float64) Page {
	if dpi <= 0 {
		dpi = DefaultDPI
	}
	w, h := p.Width, p.Height
	if !p.WPixels {
		w = MMToDots(w, dpi)
	}
	if !p.HPixels {
		h = MMToDots(h, dpi)
	}
	if landscape {
		w, h = h, w
	}
	return Page{Width: w, Height: h, Border: MMToDots(max(0, borderMM), dpi), DPI: dpi}
}

// Bounds returns the full page rectangle.
func (pg Page) Bounds() Rect { return R(0, 0, pg.Width, pg.Height) }

// Content returns the page rectangle minus the border.
func (pg Page) Content() Rect { return pg.Bounds().Inset(pg.Border) }

// Dots converts millimeters to device units at the page DPI.
func (pg Page) Dots(mm float64) float64 { return MMToDots(mm, pg.DPI) }
