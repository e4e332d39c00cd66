package sink

import (
	"github.com/matzehuels/callirhoe/pkg/errors"
	"github.com/matzehuels/callirhoe/pkg/geom"
	"github.com/matzehuels/callirhoe/pkg/render/canvas"
)

// Output formats.
const (
	FormatSVG = "svg"
	FormatPNG = "png"
	FormatPDF = "pdf"
)

// Formats lists the supported output formats.
var Formats = map[string]bool{FormatSVG: true, FormatPNG: true, FormatPDF: true}

// Document is a canvas that encodes what was drawn.
type Document interface {
	canvas.Canvas
	// Files returns the encoded output once Close succeeded: one file per
	// page for SVG and PNG, a single multi-page file for PDF.
	Files() [][]byte
	// Paged reports whether Files holds one entry per page.
	Paged() bool
}

// Option configures a document.
type Option func(*config)

type config struct {
	dpi     float64
	metrics canvas.Metrics
}

// WithDPI sets the resolution device units refer to (default 72). It fixes
// the physical page size of vector output.
func WithDPI(dpi float64) Option {
	return func(c *config) {
		if dpi > 0 {
			c.dpi = dpi
		}
	}
}

// WithMetrics replaces the embedded-font text metrics.
func WithMetrics(m canvas.Metrics) Option {
	return func(c *config) { c.metrics = m }
}

func newConfig(opts []Option) (config, error) {
	c := config{dpi: geom.DefaultDPI}
	for _, opt := range opts {
		opt(&c)
	}
	if c.metrics == nil {
		m, err := NewMetrics()
		if err != nil {
			return c, errors.Wrap(errors.ErrCodeInternal, err, "load embedded fonts")
		}
		c.metrics = m
	}
	return c, nil
}

// New creates an empty document of the given format.
func New(format string, opts ...Option) (Document, error) {
	switch format {
	case FormatSVG:
		return NewSVG(opts...)
	case FormatPNG:
		return NewPNG(opts...)
	case FormatPDF:
		return NewPDF(opts...)
	}
	return nil, errors.New(errors.ErrCodeInvalidFormat, "unsupported output format %q (must be svg, png or pdf)", format)
}
