package cli

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/matzehuels/callirhoe/pkg/calendar"
	"github.com/matzehuels/callirhoe/pkg/pipeline"
)

// Day-cell ratios forced by --long-daycells and --short-daycells. No cell is
// narrower than 0 or wider than a million times its height.
const (
	longDayCellRatio  = 0.0
	shortDayCellRatio = 1e6
)

// calendarFlags holds the layout, page, theme and holiday flags shared by
// render and plan.
type calendarFlags struct {
	opts pipeline.Options

	// Flags backing pointer options; only applied when set.
	ratio      float64
	padding    float64
	border     float64
	longCells  bool
	shortCells bool
}

// register binds the flags to cmd.
func (f *calendarFlags) register(cmd *cobra.Command) {
	o := &f.opts
	fs := cmd.Flags()

	// Grid
	fs.IntVar(&o.Rows, "rows", 0, "month rows per page (0 = auto)")
	fs.IntVar(&o.Cols, "cols", 0, "month columns per page (0 = auto)")
	fs.StringVar(&o.GridOrder, "grid-order", "", "month placement: row (default), column")
	fs.StringVar(&o.ZOrder, "z-order", "", "box stacking: auto (default), increasing, decreasing")

	// Decoration
	fs.BoolVar(&o.MonthWithYear, "month-with-year", false, "show the year in month titles instead of the footer")
	fs.BoolVar(&o.ShortMonthNames, "short-monthnames", false, "use abbreviated month names")
	fs.BoolVar(&o.LongDayNames, "long-daynames", false, "use full day names in day cells")
	fs.Float64Var(&f.ratio, "short-daycell-ratio", 0, "width/height ratio below which day cells use the short layout")
	fs.BoolVar(&f.longCells, "long-daycells", false, "always use the long day cell layout")
	fs.BoolVar(&f.shortCells, "short-daycells", false, "always use the short day cell layout")
	fs.BoolVar(&o.NoFooter, "no-footer", false, "omit the page footer")
	fs.BoolVar(&o.Symmetric, "symmetric", false, "give every month six week rows")
	fs.Float64Var(&f.padding, "padding", 0, "space between month boxes in mm")
	fs.BoolVar(&o.NoShadow, "no-shadow", false, "do not draw month box shadows")
	fs.BoolVar(&o.Opaque, "opaque", false, "paint a white page background")
	fs.BoolVar(&o.SwapColors, "swap-colors", false, "use the alternate month colors on odd years")

	// Page
	fs.StringVarP(&o.Paper, "paper", "p", pipeline.DefaultPaper, "paper: a0..a9, a0w..a9w or W:H (mm, negative for pixels)")
	fs.Float64Var(&o.DPI, "dpi", pipeline.DefaultDPI, "resolution in dots per inch")
	fs.Float64Var(&f.border, "border", pipeline.DefaultBorder, "page border in mm")
	fs.BoolVar(&o.Landscape, "landscape", false, "swap paper width and height")

	// Theme
	fs.StringVarP(&o.Style, "style", "s", "", "style variant (see 'callirhoe list')")
	fs.StringVarP(&o.Geometry, "geometry", "g", "", "geometry variant")
	fs.StringVarP(&o.Language, "lang", "l", "", "language variant")
	fs.StringArrayVar(&o.StyleVars, "style-var", nil, "override a style field: path=value (repeatable)")
	fs.StringArrayVar(&o.GeometryVars, "geom-var", nil, "override a geometry field: path=value (repeatable)")
	fs.StringArrayVar(&o.LanguageVars, "lang-var", nil, "override a language field: path=value (repeatable)")

	// Holidays
	fs.StringArrayVarP(&o.HolidayFiles, "with-holidays", "H", nil, "YAML holiday file (repeatable)")
	fs.BoolVarP(&o.Terse, "terse-holidays", "T", false, "omit multi-day continuation markers")

	cmd.MarkFlagsMutuallyExclusive("short-daycell-ratio", "long-daycells", "short-daycells")
}

// options resolves the positional calendar arguments and the flags into
// pipeline options.
func (f *calendarFlags) options(cmd *cobra.Command, args []string) (pipeline.Options, error) {
	req, err := calendar.ParseArgs(args, time.Now())
	if err != nil {
		return pipeline.Options{}, err
	}

	opts := f.opts
	opts.Year, opts.Month, opts.Span = req.Year, req.Month, req.Span
	fs := cmd.Flags()
	switch {
	case f.longCells:
		f.ratio = longDayCellRatio
	case f.shortCells:
		f.ratio = shortDayCellRatio
	}
	if f.longCells || f.shortCells || fs.Changed("short-daycell-ratio") {
		opts.ShortDayCellRatio = &f.ratio
	}
	if fs.Changed("padding") {
		opts.Padding = &f.padding
	}
	opts.Border = &f.border
	opts.Themes = newThemes()
	return opts, nil
}
