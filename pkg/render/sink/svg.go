package sink

import (
	"bytes"
	"encoding/xml"
	"fmt"

	"github.com/matzehuels/callirhoe/pkg/geom"
	"github.com/matzehuels/callirhoe/pkg/render/canvas"
	"github.com/matzehuels/callirhoe/pkg/theme"
)

const mmPerInch = 25.4

// SVG writes one standalone SVG document per page.
type SVG struct {
	cfg   config
	buf   bytes.Buffer
	open  bool
	depth int
	pages [][]byte
}

var _ Document = (*SVG)(nil)

// NewSVG creates an SVG document.
func NewSVG(opts ...Option) (*SVG, error) {
	cfg, err := newConfig(opts)
	if err != nil {
		return nil, err
	}
	return &SVG{cfg: cfg}, nil
}

// BeginPage implements canvas.Canvas.
func (s *SVG) BeginPage(width, height float64) error {
	if s.open {
		return fmt.Errorf("svg: page %d still open", len(s.pages))
	}
	s.open = true
	s.buf.Reset()
	mm := func(v float64) float64 { return v / s.cfg.dpi * mmPerInch }
	fmt.Fprintf(&s.buf, `<svg xmlns="http://www.w3.org/2000/svg" width="%.2fmm" height="%.2fmm" viewBox="0 0 %.2f %.2f">`+"\n",
		mm(width), mm(height), width, height)
	return nil
}

// DrawBox implements canvas.Canvas.
func (s *SVG) DrawBox(r geom.Rect, p canvas.BoxPaint) {
	stroke := !p.Frame.IsNone() && p.Thickness > 0
	if p.Fill.IsNone() && !stroke {
		return
	}
	fmt.Fprintf(&s.buf, `  <rect x="%.2f" y="%.2f" width="%.2f" height="%.2f"%s`, r.X, r.Y, r.W, r.H, paintAttr("fill", p.Fill))
	if stroke {
		fmt.Fprintf(&s.buf, `%s stroke-width="%.2f"`, paintAttr("stroke", p.Frame), p.Thickness)
	}
	s.buf.WriteString("/>\n")
}

// DrawStr implements canvas.Canvas.
func (s *SVG) DrawStr(text string, r geom.Rect, p canvas.TextPaint) {
	if p.Color.IsNone() {
		return
	}
	pl := canvas.Fit(s.cfg.metrics, text, r, p)
	if pl.Size <= 0 {
		return
	}
	if pl.ScaleX != 1 {
		fmt.Fprintf(&s.buf, `  <text transform="translate(%.2f %.2f) scale(%.3f 1)"`, pl.X, pl.Baseline, pl.ScaleX)
	} else {
		fmt.Fprintf(&s.buf, `  <text x="%.2f" y="%.2f"`, pl.X, pl.Baseline)
	}
	fmt.Fprintf(&s.buf, ` font-family="%s" font-size="%.2f"%s>%s</text>`+"\n",
		escapeXML(p.Font), pl.Size, paintAttr("fill", p.Color), escapeXML(text))
}

// Push implements canvas.Canvas.
func (s *SVG) Push(t canvas.Transform) {
	s.depth++
	if t.IsIdentity() {
		s.buf.WriteString("  <g>\n")
		return
	}
	fmt.Fprintf(&s.buf, `  <g transform="rotate(%.3f %.2f %.2f) translate(%.2f %.2f)">`+"\n", t.Angle, t.CX, t.CY, t.DX, t.DY)
}

// Pop implements canvas.Canvas.
func (s *SVG) Pop() {
	if s.depth == 0 {
		return
	}
	s.depth--
	s.buf.WriteString("  </g>\n")
}

// EndPage implements canvas.Canvas.
func (s *SVG) EndPage() error {
	if !s.open {
		return fmt.Errorf("svg: no open page")
	}
	for ; s.depth > 0; s.depth-- {
		s.buf.WriteString("  </g>\n")
	}
	s.buf.WriteString("</svg>\n")
	s.pages = append(s.pages, bytes.Clone(s.buf.Bytes()))
	s.open = false
	return nil
}

// Close implements canvas.Canvas.
func (s *SVG) Close() error {
	if s.open {
		return fmt.Errorf("svg: page %d still open", len(s.pages))
	}
	return nil
}

// Files implements Document.
func (s *SVG) Files() [][]byte { return s.pages }

// Paged implements Document.
func (s *SVG) Paged() bool { return true }

func paintAttr(name string, c theme.Color) string {
	if c.IsNone() {
		return fmt.Sprintf(` %s="none"`, name)
	}
	attr := fmt.Sprintf(` %s="%s"`, name, c.Clamped().Hex())
	if c.A < 1 {
		attr += fmt.Sprintf(` %s-opacity="%.3f"`, name, c.A)
	}
	return attr
}

func escapeXML(s string) string {
	var buf bytes.Buffer
	xml.EscapeText(&buf, []byte(s))
	return buf.String()
}
