// Package pkg provides the core libraries of callirhoe, a calendar layout and
// composition engine.
//
// # Overview
//
// Callirhoe lays out a run of months on printable pages and draws them in a
// themeable style. The pkg directory is organized into four areas:
//
//  1. [calendar], [geom] - Date arithmetic, month-range parsing, paper sizes
//     and rectangle splitting
//  2. [theme], [holiday] - Styles, geometries, languages and holiday files
//  3. [render] - Grid planning, month-box drawing and output sinks
//  4. [pipeline], [cache] - Orchestration (request → layout → draw) and
//     artifact caching
//
// # Architecture
//
// The typical data flow of a render:
//
//	Calendar request (year, month, span, options)
//	         ↓
//	    [pipeline] package (freeze theme, load holidays, resolve paper)
//	         ↓
//	    [render/layout] package (grid plan + month boxes)
//	         ↓
//	    [render/classic] package (draw boxes, cells, shadows, footers)
//	         ↓
//	    SVG/PNG/PDF output
//
// # Quick Start
//
//	runner := pipeline.NewRunner(nil, nil, nil)
//	paths, _, err := runner.RenderFile(ctx, "2025.svg", pipeline.Options{
//	    Year:  2025,
//	    Month: 1,
//	    Span:  12,
//	    Style: "bw",
//	})
//
// # Main Packages
//
// [calendar] - Month arithmetic with Monday-based weekdays and the command
// line grammar for month ranges ("3", "3-6", "3:4", "0" for the current
// month).
//
// [geom] - Rectangles with proportional splits and paper sizes (ISO A
// series, optionally wide, or custom "W:H" sizes in millimeters or pixels).
//
// [theme] - Immutable themes frozen from a style, a geometry and a language,
// each overridable with dotted "key=value" pairs. Built-in variants plus TOML
// files from the user's configuration directory.
//
// [holiday] - YAML holiday files of dated, optionally multi-day entries,
// merged per day with weekend coloring.
//
// [render/layout] - Grid planning (rows × columns, row/column order,
// z-order) and month box composition.
//
// [render/classic] - The classic month-box renderer.
//
// [render/sink] - Canvas implementations for SVG, PNG and PDF.
//
// [pipeline] - The complete render pipeline used by the CLI and the render
// service.
//
// [cache] - Content-addressed artifact caches (file, Redis, null).
//
// [errors] - Structured errors with stable codes shared by every entry point.
//
// [observability] - Hooks for layout, render, cache and HTTP events.
//
// # Testing
//
// Run tests:
//
//	go test ./pkg/...                    # All tests
//	go test ./pkg/render/layout/...      # Specific package
//	go test -run Example                 # Examples only
//
// [calendar]: https://pkg.go.dev/github.com/matzehuels/callirhoe/pkg/calendar
// [geom]: https://pkg.go.dev/github.com/matzehuels/callirhoe/pkg/geom
// [theme]: https://pkg.go.dev/github.com/matzehuels/callirhoe/pkg/theme
// [holiday]: https://pkg.go.dev/github.com/matzehuels/callirhoe/pkg/holiday
// [render]: https://pkg.go.dev/github.com/matzehuels/callirhoe/pkg/render
// [render/layout]: https://pkg.go.dev/github.com/matzehuels/callirhoe/pkg/render/layout
// [render/classic]: https://pkg.go.dev/github.com/matzehuels/callirhoe/pkg/render/classic
// [render/sink]: https://pkg.go.dev/github.com/matzehuels/callirhoe/pkg/render/sink
// [pipeline]: https://pkg.go.dev/github.com/matzehuels/callirhoe/pkg/pipeline
// [cache]: https://pkg.go.dev/github.com/matzehuels/callirhoe/pkg/cache
// [errors]: https://pkg.go.dev/github.com/matzehuels/callirhoe/pkg/errors
// [observability]: https://pkg.go.dev/github.com/matzehuels/callirhoe/pkg/observability
package pkg
