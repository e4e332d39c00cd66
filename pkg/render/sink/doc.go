// Package sink provides the output canvases: SVG written directly, PNG
// rasterized with gg, and PDF converted from SVG pages with rsvg-convert.
//
// All sinks share [canvas.Fit] for text placement and measure text with the
// embedded Go fonts, so layouts agree across formats. SVG output names the
// style's font family and lets the viewer substitute.
//
// # Usage
//
//	doc, err := sink.New(sink.FormatSVG, sink.WithDPI(150))
//	if err != nil {
//	    return err
//	}
//	// draw pages ...
//	if err := doc.Close(); err != nil {
//	    return err
//	}
//	for i, page := range doc.Files() {
//	    os.WriteFile(fmt.Sprintf("cal_%02d.svg", i+1), page, 0o644)
//	}
package sink
