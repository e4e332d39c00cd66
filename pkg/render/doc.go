// Package render turns planned calendars into pictures.
//
// # Overview
//
// Rendering is split into pure planning and drawing:
//
//   - [layout]: grid planning, month-box composition and page geometry.
//     Everything that can fail happens here, before anything is drawn.
//   - [classic]: draws a planned document onto a canvas (day cells, month
//     boxes with shadows and title bands, page footers).
//   - [canvas]: the drawing surface interface and a recording canvas.
//   - [sink]: SVG, PNG and PDF canvases.
//
// # Format Conversion
//
// [ToPDF] converts SVG pages into a single PDF with the external
// rsvg-convert tool (from librsvg).
//
//	pdf, err := render.ToPDF(page1, page2)
//
// [layout]: https://pkg.go.dev/github.com/matzehuels/callirhoe/pkg/render/layout
// [classic]: https://pkg.go.dev/github.com/matzehuels/callirhoe/pkg/render/classic
// [canvas]: https://pkg.go.dev/github.com/matzehuels/callirhoe/pkg/render/canvas
// [sink]: https://pkg.go.dev/github.com/matzehuels/callirhoe/pkg/render/sink
package render
