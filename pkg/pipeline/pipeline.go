// Package pipeline turns a calendar request into rendered files.
//
// This package implements the complete request → layout → draw pipeline
// shared by the CLI and the render service, so both entry points resolve
// themes, holidays and paper the same way.
//
// # Architecture
//
// The pipeline consists of three stages:
//
//  1. Resolve: freeze the theme, load holidays, resolve the paper to a page
//  2. Layout: plan the month grid and compose every month box
//  3. Draw: paint the planned pages onto an SVG, PNG or PDF document
//
// Every error a request can hit (bad paper, unknown theme, empty month
// range, unresolvable grid) surfaces in the first two stages, before the
// first canvas call.
//
// # Usage
//
//	runner := pipeline.NewRunner(cache, nil, logger)
//	paths, result, err := runner.RenderFile(ctx, "2025.pdf", pipeline.Options{
//		Year:  2025,
//		Month: 1,
//		Span:  12,
//	})
//
// Without a runner, [Render] renders straight to disk with caching disabled.
package pipeline

import (
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/callirhoe/pkg/errors"
	"github.com/matzehuels/callirhoe/pkg/geom"
	"github.com/matzehuels/callirhoe/pkg/holiday"
	"github.com/matzehuels/callirhoe/pkg/render/layout"
	"github.com/matzehuels/callirhoe/pkg/render/sink"
	"github.com/matzehuels/callirhoe/pkg/theme"
)

// =============================================================================
// Default Values - Single Source of Truth for CLI and Service
// =============================================================================

const (
	// DefaultPaper is the default paper size.
	DefaultPaper = "a4"

	// DefaultDPI is the default resolution in dots per inch.
	DefaultDPI = geom.DefaultDPI

	// DefaultBorder is the default page border in millimeters.
	DefaultBorder = 3.0

	// DefaultSpan is the number of months of a calendar when none is given.
	DefaultSpan = 12

	// DefaultFormat is the default output format.
	DefaultFormat = sink.FormatSVG

	// MaxSpan is the largest number of months a single request may cover.
	MaxSpan = 1200

	// MaxDPI is the highest accepted resolution.
	MaxDPI = 1200.0

	// MaxPixels bounds the area of a PNG page in pixels. An A0 page at
	// 300 DPI fits.
	MaxPixels = 150_000_000
)

// =============================================================================
// Options - Pipeline Configuration
// =============================================================================

// Options contains all configuration of a calendar render.
// This struct supports JSON serialization for service requests.
type Options struct {
	// Calendar request: Span months starting at Month of Year.
	Year  int `json:"year"`
	Month int `json:"month"`
	Span  int `json:"span"`

	// Grid options
	Rows      int    `json:"rows,omitempty"`
	Cols      int    `json:"cols,omitempty"`
	GridOrder string `json:"grid_order,omitempty"`
	ZOrder    string `json:"z_order,omitempty"`

	// Decoration options. Pointer fields override the geometry only when set.
	MonthWithYear     bool     `json:"month_with_year,omitempty"`
	ShortMonthNames   bool     `json:"short_monthnames,omitempty"`
	LongDayNames      bool     `json:"long_daynames,omitempty"`
	ShortDayCellRatio *float64 `json:"short_daycell_ratio,omitempty"`
	NoFooter          bool     `json:"no_footer,omitempty"`
	Symmetric         bool     `json:"symmetric,omitempty"`
	Padding           *float64 `json:"padding,omitempty"` // mm
	NoShadow          bool     `json:"no_shadow,omitempty"`
	Opaque            bool     `json:"opaque,omitempty"`
	SwapColors        bool     `json:"swap_colors,omitempty"`

	// Page options
	Paper     string   `json:"paper,omitempty"`
	DPI       float64  `json:"dpi,omitempty"`
	Border    *float64 `json:"border,omitempty"` // mm, DefaultBorder when nil
	Landscape bool     `json:"landscape,omitempty"`

	// Theme options
	Style        string   `json:"style,omitempty"`
	Geometry     string   `json:"geometry,omitempty"`
	Language     string   `json:"lang,omitempty"`
	StyleVars    []string `json:"style_vars,omitempty"`
	GeometryVars []string `json:"geometry_vars,omitempty"`
	LanguageVars []string `json:"lang_vars,omitempty"`

	// Holiday options
	HolidayFiles []string `json:"holidays,omitempty"`
	Terse        bool     `json:"terse,omitempty"`

	// Output options
	Format string `json:"format,omitempty"`

	// Runtime options (not serialized)
	Logger *log.Logger    `json:"-"`
	Themes theme.Provider `json:"-"`
	// Holidays replaces HolidayFiles. Renders with a custom provider are
	// never cached.
	Holidays holiday.Provider `json:"-"`
}

// Result contains the outputs of a pipeline run.
type Result struct {
	// Format is the output format of Files.
	Format string

	// Files holds one file per page for SVG and PNG, a single multi-page
	// file for PDF.
	Files [][]byte

	// Plan is the grid plan the files were drawn from.
	Plan *layout.Plan

	// Stats contains timing and size information.
	Stats Stats

	// CacheHit reports whether Files came from the cache.
	CacheHit bool
}

// Stats contains pipeline execution statistics.
type Stats struct {
	Months     int
	Pages      int
	LayoutTime time.Duration
	RenderTime time.Duration
}

// =============================================================================
// Validation Functions
// =============================================================================

// ValidateFormat checks that a format is valid.
func ValidateFormat(format string) error {
	if !sink.Formats[format] {
		return errors.New(errors.ErrCodeInvalidFormat, "invalid format: %q (must be one of: svg, png, pdf)", format)
	}
	return nil
}

// ValidateGridOrder checks a grid order name.
func ValidateGridOrder(order string) error {
	switch layout.GridOrder(order) {
	case layout.RowMajor, layout.ColumnMajor:
		return nil
	}
	return errors.New(errors.ErrCodeInvalidInput, "invalid grid_order: %q (must be one of: row, column)", order)
}

// ValidateZOrder checks a z-order name.
func ValidateZOrder(order string) error {
	switch layout.ZOrder(order) {
	case layout.ZAuto, layout.ZIncreasing, layout.ZDecreasing:
		return nil
	}
	return errors.New(errors.ErrCodeInvalidInput, "invalid z_order: %q (must be one of: auto, increasing, decreasing)", order)
}

// =============================================================================
// Options Methods
// =============================================================================

// SetDefaults fills in unset fields.
func (o *Options) SetDefaults() {
	if o.Paper == "" {
		o.Paper = DefaultPaper
	}
	if o.DPI == 0 {
		o.DPI = DefaultDPI
	}
	if o.Border == nil {
		b := DefaultBorder
		o.Border = &b
	}
	if o.GridOrder == "" {
		o.GridOrder = string(layout.RowMajor)
	}
	if o.ZOrder == "" {
		o.ZOrder = string(layout.ZAuto)
	}
	if o.Format == "" {
		o.Format = DefaultFormat
	}
	if o.Themes == nil {
		o.Themes = theme.NewRegistry()
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
}

// Validate checks field ranges. It does not reject an empty month span;
// that is reported as EMPTY_RANGE by the layout stage.
func (o *Options) Validate() error {
	if o.Year < 1 || o.Year > 9999 {
		return errors.New(errors.ErrCodeInvalidYear, "year %d out of range 1..9999", o.Year)
	}
	if o.Month < 1 || o.Month > 12 {
		return errors.New(errors.ErrCodeInvalidMonth, "month %d out of range 1..12", o.Month)
	}
	if o.Span < 0 || o.Span > MaxSpan {
		return errors.New(errors.ErrCodeInvalidInput, "span %d out of range 0..%d", o.Span, MaxSpan)
	}
	if !geom.Finite(o.DPI) || o.DPI < 0 || o.DPI > MaxDPI {
		return errors.New(errors.ErrCodeInvalidPaper, "dpi %v out of range (0, %v]", o.DPI, MaxDPI)
	}
	if o.Border != nil && (!geom.Finite(*o.Border) || *o.Border < 0) {
		return errors.New(errors.ErrCodeInvalidPaper, "border %v must be a non-negative number", *o.Border)
	}
	if o.Padding != nil && (!geom.Finite(*o.Padding) || *o.Padding < 0) {
		return errors.New(errors.ErrCodeInvalidFraction, "padding %v must not be negative", *o.Padding)
	}
	if o.ShortDayCellRatio != nil && (!geom.Finite(*o.ShortDayCellRatio) || *o.ShortDayCellRatio < 0) {
		return errors.New(errors.ErrCodeInvalidFraction, "short_daycell_ratio %v must not be negative", *o.ShortDayCellRatio)
	}
	if err := ValidateGridOrder(o.GridOrder); err != nil {
		return err
	}
	if err := ValidateZOrder(o.ZOrder); err != nil {
		return err
	}
	if err := ValidateFormat(o.Format); err != nil {
		return err
	}
	return o.validateRaster()
}

// validateRaster bounds the pixel area of PNG pages. Paper errors are left
// to the resolve stage.
func (o *Options) validateRaster() error {
	if o.Format != sink.FormatPNG {
		return nil
	}
	pg, err := o.Page()
	if err != nil {
		return nil
	}
	if area := pg.Width * pg.Height; area > MaxPixels {
		return errors.New(errors.ErrCodeInvalidPaper, "png page %.0fx%.0f exceeds %d pixels; lower the dpi or the paper size", pg.Width, pg.Height, MaxPixels)
	}
	return nil
}

// ValidateAndSetDefaults applies defaults, then validates.
func (o *Options) ValidateAndSetDefaults() error {
	o.SetDefaults()
	return o.Validate()
}

// Page resolves the paper options to a page in device units.
func (o *Options) Page() (geom.Page, error) {
	paper, err := geom.ParsePaper(o.Paper)
	if err != nil {
		return geom.Page{}, err
	}
	border := DefaultBorder
	if o.Border != nil {
		border = *o.Border
	}
	return paper.Page(o.DPI, o.Landscape, border), nil
}

// LayoutOptions returns the grid options of the layout stage.
func (o *Options) LayoutOptions() layout.Options {
	return layout.Options{
		Rows:      o.Rows,
		Cols:      o.Cols,
		GridOrder: layout.GridOrder(o.GridOrder),
		ZOrder:    layout.ZOrder(o.ZOrder),
		Landscape: o.Landscape,
		NoFooter:  o.NoFooter,
	}
}

// Theme resolves, overrides and freezes the theme. Variable overrides are
// applied first; the dedicated Symmetric, Padding and ShortDayCellRatio
// options win over them.
func (o *Options) Theme() (*theme.Theme, error) {
	themes := o.Themes
	if themes == nil {
		themes = theme.NewRegistry()
	}
	b, err := theme.NewBuilder(themes, o.Style, o.Geometry, o.Language)
	if err != nil {
		return nil, err
	}
	for _, ov := range []struct {
		kind string
		vars []string
	}{
		{theme.KindStyle, o.StyleVars},
		{theme.KindGeometry, o.GeometryVars},
		{theme.KindLanguage, o.LanguageVars},
	} {
		if err := b.Overrides(ov.kind, ov.vars); err != nil {
			return nil, err
		}
	}

	g := b.Geometry()
	if o.Symmetric {
		g.Month.Symmetric = true
	}
	if o.Padding != nil {
		g.Month.Padding = *o.Padding
	}
	if o.ShortDayCellRatio != nil {
		g.Day.ShortRatio = *o.ShortDayCellRatio
	}

	th, err := b.Freeze()
	if err != nil {
		return nil, err
	}
	return &th, nil
}
