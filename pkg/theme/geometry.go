package theme

import (
	"github.com/matzehuels/callirhoe/pkg/errors"
	"github.com/matzehuels/callirhoe/pkg/geom"
)

// Month arrangement modes.
const (
	ModeMatrix = "matrix" // 7 columns x weeks
	ModeBars   = "bars"   // one row per day
	ModeAuto   = "auto"   // bars for boxes narrower than BarRatio, matrix otherwise
)

// DayGeometry holds the split ratios of a day cell.
type DayGeometry struct {
	// Size holds relative scales: [0],[1] for the number block of short
	// cells (and long cells without day names), [2],[3] for long cells with
	// day names.
	Size [4]float64 `toml:"size"`
	// MWSplit splits the number block into day number and day name
	// (fraction, gap).
	MWSplit [2]float64 `toml:"mw_split"`
	// HFHSplit splits long cells into the number block and the
	// header/footer column (fraction, gap).
	HFHSplit [2]float64 `toml:"hf_hsplit"`
	// HFVSplit splits the header/footer column into header and footer.
	HFVSplit    [2]float64 `toml:"hf_vsplit"`
	HeaderSize  [2]float64 `toml:"header_size"`
	FooterSize  [2]float64 `toml:"footer_size"`
	HeaderAlign float64    `toml:"header_align"` // 0 = flush with the top edge
	FooterAlign float64    `toml:"footer_align"` // 0 = flush with the bottom edge
	// ShortRatio is the width/height ratio below which the short layout is
	// used.
	ShortRatio float64 `toml:"short_ratio"`
}

// MonthGeometry holds month box proportions.
type MonthGeometry struct {
	Padding      float64 `toml:"padding"` // mm between neighbouring boxes
	Symmetric    bool    `toml:"symmetric"`
	HeaderRatio  float64 `toml:"header_ratio"`  // title band height / box height
	WeekdayRatio float64 `toml:"weekday_ratio"` // weekday row height / box height (matrix mode)
	Mode         string  `toml:"mode"`
	BarRatio     float64 `toml:"bar_ratio"`
}

// PageGeometry holds page-level proportions.
type PageGeometry struct {
	FooterRatio float64 `toml:"footer_ratio"` // footer band height / content height
}

// Geometry defines split ratios, size ratios and spacing.
type Geometry struct {
	Name  string        `toml:"name"`
	Day   DayGeometry   `toml:"dom"`
	Month MonthGeometry `toml:"month"`
	Page  PageGeometry  `toml:"page"`
}

// Validate rejects geometry that cannot be laid out.
func (g *Geometry) Validate() error {
	d := g.Day
	fracs := [][]float64{
		d.Size[:], d.MWSplit[:], d.HFHSplit[:], d.HFVSplit[:], d.HeaderSize[:], d.FooterSize[:],
		{d.ShortRatio, g.Month.Padding, g.Month.HeaderRatio, g.Month.WeekdayRatio, g.Month.BarRatio, g.Page.FooterRatio},
	}
	for _, f := range fracs {
		if err := geom.CheckFractions(f...); err != nil {
			return err
		}
	}
	if g.Month.HeaderRatio+g.Month.WeekdayRatio >= 1 {
		return errors.New(errors.ErrCodeInvalidFraction, "month header_ratio + weekday_ratio must be below 1")
	}
	if g.Page.FooterRatio >= 1 {
		return errors.New(errors.ErrCodeInvalidFraction, "page footer_ratio must be below 1")
	}
	switch g.Month.Mode {
	case ModeMatrix, ModeBars, ModeAuto:
	default:
		return errors.New(errors.ErrCodeInvalidTheme, "unknown month mode %q (must be matrix, bars or auto)", g.Month.Mode)
	}
	return nil
}
