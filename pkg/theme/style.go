package theme

// DayStyle holds the colors of one day-cell variant.
type DayStyle struct {
	Frame  Color `toml:"frame"`
	Bg     Color `toml:"bg"`
	Fg     Color `toml:"fg"`
	Header Color `toml:"header"`
	Footer Color `toml:"footer"`
}

// MonthStyle holds the colors of month boxes.
type MonthStyle struct {
	Frame          Color     `toml:"frame"`
	Bg             Color     `toml:"bg"`
	Title          Color     `toml:"title"`
	Weekday        Color     `toml:"weekday"`
	FrameThickness float64   `toml:"frame_thickness"` // mm
	ColorMap       [12]Color `toml:"color_map"`       // title band fill per month
	ColorMapAlt    [12]Color `toml:"color_map_alt"`   // used for odd years with swap_colors
}

// ShadowStyle controls the drop shadow of month boxes.
type ShadowStyle struct {
	Color Color   `toml:"color"`
	Size  float64 `toml:"size"` // mm
}

// SloppyStyle makes month boxes look hand-placed: each box is jittered and
// slightly rotated, deterministically for a given seed.
type SloppyStyle struct {
	Enabled   bool    `toml:"enabled"`
	Seed      uint64  `toml:"seed"`
	MaxAngle  float64 `toml:"max_angle"`  // degrees
	MaxOffset float64 `toml:"max_offset"` // fraction of the box size
}

// PageStyle holds page-level decoration.
type PageStyle struct {
	Bg     Color  `toml:"bg"` // used with opaque output
	Footer Color  `toml:"footer"`
	Font   string `toml:"font"`
}

// Style defines colors, fonts and thicknesses.
type Style struct {
	Name           string  `toml:"name"`
	Font           string  `toml:"font"`
	HeaderFont     string  `toml:"header_font"`
	FooterFont     string  `toml:"footer_font"`
	FrameThickness float64 `toml:"frame_thickness"` // mm

	Dom               DayStyle `toml:"dom"`
	DomWeekend        DayStyle `toml:"dom_weekend"`
	DomHoliday        DayStyle `toml:"dom_holiday"`
	DomWeekendHoliday DayStyle `toml:"dom_weekend_holiday"`
	DomMulti          DayStyle `toml:"dom_multi"`
	DomWeekendMulti   DayStyle `toml:"dom_weekend_multi"`

	Month  MonthStyle  `toml:"month"`
	Shadow ShadowStyle `toml:"shadow"`
	Sloppy SloppyStyle `toml:"sloppy"`
	Page   PageStyle   `toml:"page"`
}

// DayVariant selects the day-cell colors for a day's flags.
func (s *Style) DayVariant(weekend, holiday, multi bool) DayStyle {
	switch {
	case holiday && weekend:
		return s.DomWeekendHoliday
	case holiday:
		return s.DomHoliday
	case multi && weekend:
		return s.DomWeekendMulti
	case multi:
		return s.DomMulti
	case weekend:
		return s.DomWeekend
	default:
		return s.Dom
	}
}

// MonthColor returns the title band fill for a month (1..12). With swap set,
// odd years use the alternate color map.
func (s *Style) MonthColor(year, month int, swap bool) Color {
	if swap && year%2 != 0 {
		return s.Month.ColorMapAlt[month-1]
	}
	return s.Month.ColorMap[month-1]
}
