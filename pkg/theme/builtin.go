package theme

import "github.com/lucasb-eyer/go-colorful"

func defaultStyle() Style {
	var colorMap, colorMapAlt [12]Color
	copy(colorMap[:], hueWheel(12, 0, 0.22, 1))
	copy(colorMapAlt[:], hueWheel(12, 15, 0.35, 0.95))

	black := Hex("#000000")
	return Style{
		Name:           "default",
		Font:           "DejaVu Sans",
		HeaderFont:     "DejaVu Sans Condensed",
		FooterFont:     "DejaVu Sans Condensed",
		FrameThickness: 0.1,

		Dom:               DayStyle{Frame: Hex("#808080"), Bg: None, Fg: black, Header: Hex("#404040"), Footer: Hex("#404040")},
		DomWeekend:        DayStyle{Frame: Hex("#808080"), Bg: Hex("#efefef"), Fg: Hex("#a00000"), Header: Hex("#404040"), Footer: Hex("#404040")},
		DomHoliday:        DayStyle{Frame: Hex("#808080"), Bg: Hex("#ffeedd"), Fg: Hex("#c00000"), Header: Hex("#a00000"), Footer: Hex("#a00000")},
		DomWeekendHoliday: DayStyle{Frame: Hex("#808080"), Bg: Hex("#f0dcc8"), Fg: Hex("#c00000"), Header: Hex("#a00000"), Footer: Hex("#a00000")},
		DomMulti:          DayStyle{Frame: Hex("#808080"), Bg: Hex("#e6eeff"), Fg: black, Header: Hex("#2040a0"), Footer: Hex("#2040a0")},
		DomWeekendMulti:   DayStyle{Frame: Hex("#808080"), Bg: Hex("#d8e2f6"), Fg: Hex("#a00000"), Header: Hex("#2040a0"), Footer: Hex("#2040a0")},

		Month: MonthStyle{
			Frame:          Hex("#404040"),
			Bg:             Hex("#ffffff"),
			Title:          black,
			Weekday:        Hex("#404040"),
			FrameThickness: 0.3,
			ColorMap:       colorMap,
			ColorMapAlt:    colorMapAlt,
		},
		Shadow: ShadowStyle{Color: RGBA(0, 0, 0, 0.35), Size: 1.2},
		Sloppy: SloppyStyle{Seed: 42, MaxAngle: 1.5, MaxOffset: 0.015},
		Page:   PageStyle{Bg: Hex("#ffffff"), Footer: Hex("#606060"), Font: "DejaVu Sans"},
	}
}

func bwStyle() Style {
	s := defaultStyle()
	s.Name = "bw"
	white, black := Hex("#ffffff"), Hex("#000000")
	for _, d := range []*DayStyle{&s.Dom, &s.DomWeekend, &s.DomHoliday, &s.DomWeekendHoliday, &s.DomMulti, &s.DomWeekendMulti} {
		d.Frame, d.Fg, d.Header, d.Footer = black, black, black, black
		d.Bg = None
	}
	s.DomWeekend.Bg = Hex("#e0e0e0")
	s.DomWeekendHoliday.Bg = Hex("#c0c0c0")
	s.DomHoliday.Bg = Hex("#c0c0c0")
	for i := range s.Month.ColorMap {
		s.Month.ColorMap[i] = white
		s.Month.ColorMapAlt[i] = Hex("#e0e0e0")
	}
	s.Month.Frame, s.Month.Title, s.Month.Weekday = black, black, black
	s.Shadow.Color = None
	s.Page.Footer = black
	return s
}

func sloppyStyle() Style {
	s := defaultStyle()
	s.Name = "sloppy"
	s.Font = "xkcd Script"
	s.HeaderFont = s.Font
	s.FooterFont = s.Font
	s.Page.Font = s.Font
	s.Sloppy.Enabled = true
	paper := colorful.Color{R: 0.99, G: 0.97, B: 0.92}
	s.Month.Bg = Color{Color: paper, A: 1}
	s.Shadow.Color = RGBA(60, 40, 20, 0.4)
	return s
}

func defaultGeometry() Geometry {
	return Geometry{
		Name: "default",
		Day: DayGeometry{
			Size:        [4]float64{0.8, 0.8, 0.9, 0.9},
			MWSplit:     [2]float64{0.7, 0.05},
			HFHSplit:    [2]float64{0.45, 0.05},
			HFVSplit:    [2]float64{0.5, 0},
			HeaderSize:  [2]float64{0.8, 0.2},
			FooterSize:  [2]float64{0.8, 0.2},
			HeaderAlign: 0.1,
			FooterAlign: 0.1,
			ShortRatio:  2.5,
		},
		Month: MonthGeometry{
			Padding:      1.5,
			HeaderRatio:  0.12,
			WeekdayRatio: 0.07,
			Mode:         ModeMatrix,
			BarRatio:     0.6,
		},
		Page: PageGeometry{FooterRatio: 0.025},
	}
}

func barsGeometry() Geometry {
	g := defaultGeometry()
	g.Name = "bars"
	g.Month.Mode = ModeBars
	g.Month.Padding = 0.5
	g.Month.HeaderRatio = 0.04
	g.Month.WeekdayRatio = 0
	return g
}

func englishLanguage() Language {
	return Language{
		Name: "EN",
		LongMonthNames: [12]string{"January", "February", "March", "April", "May", "June",
			"July", "August", "September", "October", "November", "December"},
		ShortMonthNames: [12]string{"Jan", "Feb", "Mar", "Apr", "May", "Jun",
			"Jul", "Aug", "Sep", "Oct", "Nov", "Dec"},
		LongDayNames:  [7]string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday"},
		ShortDayNames: [7]string{"Mo", "Tu", "We", "Th", "Fr", "Sa", "Su"},
		Credit:        "rendered by callirhoe",
	}
}

func germanLanguage() Language {
	return Language{
		Name: "DE",
		LongMonthNames: [12]string{"Januar", "Februar", "März", "April", "Mai", "Juni",
			"Juli", "August", "September", "Oktober", "November", "Dezember"},
		ShortMonthNames: [12]string{"Jan", "Feb", "Mär", "Apr", "Mai", "Jun",
			"Jul", "Aug", "Sep", "Okt", "Nov", "Dez"},
		LongDayNames:  [7]string{"Montag", "Dienstag", "Mittwoch", "Donnerstag", "Freitag", "Samstag", "Sonntag"},
		ShortDayNames: [7]string{"Mo", "Di", "Mi", "Do", "Fr", "Sa", "So"},
		Credit:        "gerendert von callirhoe",
	}
}

func frenchLanguage() Language {
	return Language{
		Name: "FR",
		LongMonthNames: [12]string{"janvier", "février", "mars", "avril", "mai", "juin",
			"juillet", "août", "septembre", "octobre", "novembre", "décembre"},
		ShortMonthNames: [12]string{"janv", "févr", "mars", "avr", "mai", "juin",
			"juil", "août", "sept", "oct", "nov", "déc"},
		LongDayNames:  [7]string{"lundi", "mardi", "mercredi", "jeudi", "vendredi", "samedi", "dimanche"},
		ShortDayNames: [7]string{"L", "Ma", "Me", "J", "V", "S", "D"},
		Credit:        "rendu par callirhoe",
	}
}

func greekLanguage() Language {
	return Language{
		Name: "EL",
		LongMonthNames: [12]string{"Ιανουάριος", "Φεβρουάριος", "Μάρτιος", "Απρίλιος", "Μάιος", "Ιούνιος",
			"Ιούλιος", "Αύγουστος", "Σεπτέμβριος", "Οκτώβριος", "Νοέμβριος", "Δεκέμβριος"},
		ShortMonthNames: [12]string{"Ιαν", "Φεβ", "Μαρ", "Απρ", "Μαΐ", "Ιουν",
			"Ιουλ", "Αυγ", "Σεπ", "Οκτ", "Νοε", "Δεκ"},
		LongDayNames:  [7]string{"Δευτέρα", "Τρίτη", "Τετάρτη", "Πέμπτη", "Παρασκευή", "Σάββατο", "Κυριακή"},
		ShortDayNames: [7]string{"Δε", "Τρ", "Τε", "Πε", "Πα", "Σα", "Κυ"},
		Credit:        "callirhoe",
	}
}

var (
	builtinStyles = map[string]func() Style{
		"default": defaultStyle,
		"bw":      bwStyle,
		"sloppy":  sloppyStyle,
	}
	builtinGeometries = map[string]func() Geometry{
		"default": defaultGeometry,
		"bars":    barsGeometry,
	}
	builtinLanguages = map[string]func() Language{
		"EN": englishLanguage,
		"DE": germanLanguage,
		"FR": frenchLanguage,
		"EL": greekLanguage,
	}
)
