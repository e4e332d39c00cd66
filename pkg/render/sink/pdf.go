package sink

import (
	"github.com/matzehuels/callirhoe/pkg/render"
)

// PDF draws pages as SVG and converts them into one multi-page PDF on
// Close. Requires librsvg: brew install librsvg (macOS), apt install
// librsvg2-bin (Linux).
type PDF struct {
	*SVG
	out []byte
}

var _ Document = (*PDF)(nil)

// NewPDF creates a PDF document.
func NewPDF(opts ...Option) (*PDF, error) {
	svg, err := NewSVG(opts...)
	if err != nil {
		return nil, err
	}
	return &PDF{SVG: svg}, nil
}

// Close implements canvas.Canvas.
func (p *PDF) Close() error {
	if err := p.SVG.Close(); err != nil {
		return err
	}
	out, err := render.ToPDF(p.SVG.Files()...)
	if err != nil {
		return err
	}
	p.out = out
	return nil
}

// Files implements Document.
func (p *PDF) Files() [][]byte {
	if p.out == nil {
		return nil
	}
	return [][]byte{p.out}
}

// Paged implements Document.
func (p *PDF) Paged() bool { return false }
