package theme

import "github.com/matzehuels/callirhoe/pkg/errors"

// Language holds month and day names. Day tables start with Monday.
type Language struct {
	Name            string     `toml:"name"`
	LongMonthNames  [12]string `toml:"long_month_name"`
	ShortMonthNames [12]string `toml:"short_month_name"`
	LongDayNames    [7]string  `toml:"long_day_name"`
	ShortDayNames   [7]string  `toml:"short_day_name"`
	FirstWeekday    int        `toml:"first_weekday"` // 0 = Monday
	Credit          string     `toml:"credit"`
}

// MonthName returns the name of month m (1..12).
func (l *Language) MonthName(m int, short bool) string {
	if short {
		return l.ShortMonthNames[m-1]
	}
	return l.LongMonthNames[m-1]
}

// DayName returns the name of day-of-week d (0 = Monday).
func (l *Language) DayName(d int, long bool) string {
	if long {
		return l.LongDayNames[d]
	}
	return l.ShortDayNames[d]
}

// Validate rejects incomplete name tables.
func (l *Language) Validate() error {
	if l.FirstWeekday < 0 || l.FirstWeekday > 6 {
		return errors.New(errors.ErrCodeInvalidTheme, "language %s: first_weekday %d out of range 0..6", l.Name, l.FirstWeekday)
	}
	for i, n := range l.LongMonthNames {
		if n == "" || l.ShortMonthNames[i] == "" {
			return errors.New(errors.ErrCodeInvalidTheme, "language %s: missing name for month %d", l.Name, i+1)
		}
	}
	for i, n := range l.LongDayNames {
		if n == "" || l.ShortDayNames[i] == "" {
			return errors.New(errors.ErrCodeInvalidTheme, "language %s: missing name for day %d", l.Name, i)
		}
	}
	return nil
}
