package sink

import (
	"strings"
	"sync"

	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/matzehuels/callirhoe/pkg/render/canvas"
)

// refSize is the font size text is measured at; results are divided by it
// so 26.6 fixed-point rounding stays negligible.
const refSize = 256

var (
	fontsOnce sync.Once
	regular   *truetype.Font
	bold      *truetype.Font
	fontsErr  error
)

func loadFonts() error {
	fontsOnce.Do(func() {
		if regular, fontsErr = truetype.Parse(goregular.TTF); fontsErr != nil {
			return
		}
		bold, fontsErr = truetype.Parse(gobold.TTF)
	})
	return fontsErr
}

// fontFor maps a style font name onto one of the embedded Go fonts. Names
// containing "bold" get the bold cut.
func fontFor(name string) *truetype.Font {
	if strings.Contains(strings.ToLower(name), "bold") {
		return bold
	}
	return regular
}

// Metrics measures text with the embedded Go fonts. A Metrics value caches
// font faces and must not be shared between goroutines.
type Metrics struct {
	faces map[*truetype.Font]font.Face
}

var _ canvas.Metrics = (*Metrics)(nil)

// NewMetrics loads the embedded fonts.
func NewMetrics() (*Metrics, error) {
	if err := loadFonts(); err != nil {
		return nil, err
	}
	return &Metrics{faces: make(map[*truetype.Font]font.Face)}, nil
}

// Extents implements canvas.Metrics.
func (m *Metrics) Extents(name, text string) (width, ascent, descent float64) {
	f := fontFor(name)
	face, ok := m.faces[f]
	if !ok {
		face = truetype.NewFace(f, &truetype.Options{Size: refSize, Hinting: font.HintingNone})
		m.faces[f] = face
	}
	bounds, advance := font.BoundString(face, text)
	width = float64(advance) / 64 / refSize
	ascent = max(0, -float64(bounds.Min.Y)/64/refSize)
	descent = max(0, float64(bounds.Max.Y)/64/refSize)
	return width, ascent, descent
}

// face returns a face of f at the given size for raster output.
func face(name string, size float64) font.Face {
	return truetype.NewFace(fontFor(name), &truetype.Options{Size: size, Hinting: font.HintingFull})
}
