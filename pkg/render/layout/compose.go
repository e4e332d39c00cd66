package layout

import (
	"github.com/matzehuels/callirhoe/pkg/calendar"
	"github.com/matzehuels/callirhoe/pkg/geom"
	"github.com/matzehuels/callirhoe/pkg/holiday"
	"github.com/matzehuels/callirhoe/pkg/theme"
)

// Matrix and bar modes use fixed row counts in symmetric mode.
const (
	symmetricWeeks = 6
	symmetricDays  = 31
	daysPerWeek    = 7
)

// Cell is one day placed in a month box.
type Cell struct {
	Day     int // 1..31
	Weekday int // 0 = Monday
	Row     int
	Col     int
	Rect    geom.Rect
	// ShowDayName is set in bar mode, where no weekday header row exists.
	ShowDayName bool
	Annotation  holiday.Annotation
}

// WeekdayLabel is a column header of the matrix weekday row.
type WeekdayLabel struct {
	Weekday int
	Rect    geom.Rect
}

// MonthBox is a composed month: its title band, optional weekday row and
// day cells.
type MonthBox struct {
	Month    calendar.MonthSpec
	Rect     geom.Rect
	Mode     string // theme.ModeMatrix or theme.ModeBars
	Title    geom.Rect
	Weekdays []WeekdayLabel // matrix mode only
	Grid     geom.Rect      // area holding the day rows
	Rows     int
	Cols     int
	Cells    []Cell
}

// RowHeight returns the height of one row of day cells.
func (b *MonthBox) RowHeight() float64 {
	if b.Rows == 0 {
		return 0
	}
	return b.Grid.H / float64(b.Rows)
}

// Compose lays out the day cells of one month inside r.
//
// In symmetric mode every box gets the same number of rows (6 weeks, or 31
// days in bar mode), so cells are equally sized across all months. In
// asymmetric mode a box gets exactly the rows its month needs. Each cell is
// annotated from hp, which may be nil.
func Compose(month calendar.MonthSpec, r geom.Rect, th *theme.Theme, symmetric bool, hp holiday.Provider) (MonthBox, error) {
	g := th.Geometry.Month
	box := MonthBox{Month: month, Rect: r, Mode: ResolveMode(g, r)}

	body := r
	var err error
	box.Title, body, err = splitTop(body, g.HeaderRatio)
	if err != nil {
		return box, err
	}

	first := th.Language.FirstWeekday
	if box.Mode == theme.ModeMatrix {
		box.Rows, box.Cols = month.Weeks(first), daysPerWeek
		if symmetric {
			box.Rows = symmetricWeeks
		}
		var header geom.Rect
		// weekday_ratio is relative to the whole box
		header, body, err = splitTop(body, g.WeekdayRatio*r.H/max(body.H, 1e-9))
		if err != nil {
			return box, err
		}
		labels, err := geom.Grid(header, 1, daysPerWeek)
		if err != nil {
			return box, err
		}
		for col, lr := range labels {
			box.Weekdays = append(box.Weekdays, WeekdayLabel{Weekday: (first + col) % daysPerWeek, Rect: lr})
		}
	} else {
		box.Rows, box.Cols = month.Days(), 1
		if symmetric {
			box.Rows = symmetricDays
		}
	}
	box.Grid = body

	rects, err := geom.Grid(body, box.Rows, box.Cols)
	if err != nil {
		return box, err
	}
	for day := 1; day <= month.Days(); day++ {
		c := Cell{Day: day, Weekday: month.Weekday(day), ShowDayName: box.Mode == theme.ModeBars}
		if box.Mode == theme.ModeMatrix {
			c.Row, c.Col = month.Slot(day, first)
		} else {
			c.Row = day - 1
		}
		c.Rect = rects[c.Row*box.Cols+c.Col]
		if hp != nil {
			c.Annotation = hp.Lookup(month.Year, month.Month, day)
		}
		box.Cells = append(box.Cells, c)
	}
	return box, nil
}

// ResolveMode picks matrix or bar mode for a box. Auto mode uses bars for
// boxes narrower than the geometry's bar ratio.
func ResolveMode(g theme.MonthGeometry, r geom.Rect) string {
	switch g.Mode {
	case theme.ModeBars:
		return theme.ModeBars
	case theme.ModeAuto:
		if geom.Ratio(r) < g.BarRatio {
			return theme.ModeBars
		}
	}
	return theme.ModeMatrix
}

func splitTop(r geom.Rect, f float64) (geom.Rect, geom.Rect, error) {
	parts, err := geom.VSplit(r, f, max(0, 1-f))
	if err != nil {
		return geom.Rect{}, geom.Rect{}, err
	}
	return parts[0], parts[1], nil
}
