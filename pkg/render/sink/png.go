package sink

import (
	"bytes"
	"fmt"
	"math"

	"github.com/fogleman/gg"

	"github.com/matzehuels/callirhoe/pkg/geom"
	"github.com/matzehuels/callirhoe/pkg/render/canvas"
)

// PNG rasterizes each page into its own image. One device unit is one
// pixel, so the page resolution follows the DPI the page was resolved at.
type PNG struct {
	cfg   config
	dc    *gg.Context
	depth int
	pages [][]byte
}

var _ Document = (*PNG)(nil)

// NewPNG creates a PNG document.
func NewPNG(opts ...Option) (*PNG, error) {
	cfg, err := newConfig(opts)
	if err != nil {
		return nil, err
	}
	return &PNG{cfg: cfg}, nil
}

// BeginPage implements canvas.Canvas.
func (p *PNG) BeginPage(width, height float64) error {
	if p.dc != nil {
		return fmt.Errorf("png: page %d still open", len(p.pages))
	}
	w, h := int(math.Ceil(width)), int(math.Ceil(height))
	if w <= 0 || h <= 0 {
		return fmt.Errorf("png: invalid page size %.0fx%.0f", width, height)
	}
	p.dc = gg.NewContext(w, h)
	return nil
}

// DrawBox implements canvas.Canvas.
func (p *PNG) DrawBox(r geom.Rect, b canvas.BoxPaint) {
	dc := p.dc
	dc.DrawRectangle(r.X, r.Y, r.W, r.H)
	if !b.Fill.IsNone() {
		dc.SetColor(b.Fill.NRGBA())
		dc.FillPreserve()
	}
	if !b.Frame.IsNone() && b.Thickness > 0 {
		dc.SetColor(b.Frame.NRGBA())
		dc.SetLineWidth(b.Thickness)
		dc.StrokePreserve()
	}
	dc.ClearPath()
}

// DrawStr implements canvas.Canvas.
func (p *PNG) DrawStr(text string, r geom.Rect, t canvas.TextPaint) {
	if t.Color.IsNone() {
		return
	}
	pl := canvas.Fit(p.cfg.metrics, text, r, t)
	if pl.Size <= 0 {
		return
	}
	dc := p.dc
	dc.Push()
	defer dc.Pop()
	if pl.ScaleX != 1 {
		dc.ScaleAbout(pl.ScaleX, 1, pl.X, pl.Baseline)
	}
	dc.SetFontFace(face(t.Font, pl.Size))
	dc.SetColor(t.Color.NRGBA())
	dc.DrawString(text, pl.X, pl.Baseline)
}

// Push implements canvas.Canvas.
func (p *PNG) Push(t canvas.Transform) {
	p.depth++
	p.dc.Push()
	if t.Angle != 0 {
		p.dc.RotateAbout(gg.Radians(t.Angle), t.CX, t.CY)
	}
	if t.DX != 0 || t.DY != 0 {
		p.dc.Translate(t.DX, t.DY)
	}
}

// Pop implements canvas.Canvas.
func (p *PNG) Pop() {
	if p.depth == 0 {
		return
	}
	p.depth--
	p.dc.Pop()
}

// EndPage implements canvas.Canvas.
func (p *PNG) EndPage() error {
	if p.dc == nil {
		return fmt.Errorf("png: no open page")
	}
	for ; p.depth > 0; p.depth-- {
		p.dc.Pop()
	}
	var buf bytes.Buffer
	if err := p.dc.EncodePNG(&buf); err != nil {
		return fmt.Errorf("png: encode page %d: %w", len(p.pages)+1, err)
	}
	p.pages = append(p.pages, buf.Bytes())
	p.dc = nil
	return nil
}

// Close implements canvas.Canvas.
func (p *PNG) Close() error {
	if p.dc != nil {
		return fmt.Errorf("png: page %d still open", len(p.pages))
	}
	return nil
}

// Files implements Document.
func (p *PNG) Files() [][]byte { return p.pages }

// Paged implements Document.
func (p *PNG) Paged() bool { return true }
