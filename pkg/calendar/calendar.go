// Package calendar provides civil-calendar arithmetic for month boxes:
// month ranges that wrap across years, week counting under a configurable
// first weekday, and parsing of the MONTH[-MONTH2|:SPAN] YEAR request form.
//
// Days of the week are numbered 0..6 starting with Monday, matching the
// order of day-name tables in languages.
package calendar

import (
	"fmt"
	"time"
)

// Days of the week, Monday first.
const (
	Monday = iota
	Tuesday
	Wednesday
	Thursday
	Friday
	Saturday
	Sunday
)

// MonthSpec identifies the month a box renders.
type MonthSpec struct {
	Year  int
	Month int // 1..12
}

func (m MonthSpec) String() string { return fmt.Sprintf("%04d-%02d", m.Year, m.Month) }

// Add returns the month n months after m (n may be negative).
func (m MonthSpec) Add(n int) MonthSpec {
	idx := m.Year*12 + (m.Month - 1) + n
	y, mo := idx/12, idx%12
	if mo < 0 {
		y, mo = y-1, mo+12
	}
	return MonthSpec{Year: y, Month: mo + 1}
}

// Days returns the number of days in the month.
func (m MonthSpec) Days() int {
	return time.Date(m.Year, time.Month(m.Month)+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// Weekday returns the day of week (Monday = 0) of the given day in m.
func (m MonthSpec) Weekday(day int) int {
	wd := time.Date(m.Year, time.Month(m.Month), day, 0, 0, 0, 0, time.UTC).Weekday()
	return (int(wd) + 6) % 7
}

// Offset returns the column of the first day of the month in a week that
// starts on firstWeekday.
func (m MonthSpec) Offset(firstWeekday int) int {
	return ((m.Weekday(1)-firstWeekday)%7 + 7) % 7
}

// Weeks returns how many calendar weeks (4, 5 or 6) the month touches when
// weeks start on firstWeekday.
func (m MonthSpec) Weeks(firstWeekday int) int {
	return (m.Offset(firstWeekday) + m.Days() + 6) / 7
}

// Slot returns the (week row, weekday column) of day in a month grid whose
// weeks start on firstWeekday.
func (m MonthSpec) Slot(day, firstWeekday int) (row, col int) {
	i := m.Offset(firstWeekday) + day - 1
	return i / 7, i % 7
}

// Range returns span consecutive months starting at (year, month).
func Range(year, month, span int) []MonthSpec {
	if span <= 0 {
		return nil
	}
	start := MonthSpec{Year: year, Month: month}
	out := make([]MonthSpec, span)
	for i := range out {
		out[i] = start.Add(i)
	}
	return out
}
