// Package holiday answers the per-day questions a calendar renderer asks:
// is this a weekend, a holiday, part of a multi-day event, and which label
// belongs in the cell header and footer.
//
// A [Set] combines configurable weekend days with entries loaded from YAML
// holiday files:
//
//	holidays:
//	  - date: "12-25"          # recurring every year
//	    header: Christmas
//	  - date: "2024-07-29"     # one-off
//	    days: 5
//	    header: Summer school
//
// Entries spanning more than one day are marked on their first, middle and
// last day. Lookups are read-only and safe for concurrent use once loading
// has finished.
package holiday

import (
	"strings"
	"time"
)

// Annotation is the result of looking up one day.
type Annotation struct {
	Holiday    bool
	Weekend    bool
	MultiStart bool
	MultiCont  bool
	MultiEnd   bool
	Header     string
	Footer     string
}

// Multi reports whether the day belongs to a multi-day entry.
func (a Annotation) Multi() bool {
	return a.MultiStart || a.MultiCont || a.MultiEnd
}

// Provider looks up the annotation of a calendar day.
type Provider interface {
	Lookup(year, month, day int) Annotation
}

// Entry is one holiday definition.
type Entry struct {
	// Month and Day of the first day; Year is 0 for recurring entries.
	Year, Month, Day int
	// Days is the length of the entry; values below 1 mean a single day.
	Days   int
	Header string
	Footer string
}

func (e Entry) span() int { return max(1, e.Days) }

// start returns the first day of the occurrence starting in year, and false
// when the entry does not occur that year (one-off entries of other years,
// February 29 outside leap years).
func (e Entry) start(year int) (time.Time, bool) {
	if e.Year != 0 && e.Year != year {
		return time.Time{}, false
	}
	t := date(year, e.Month, e.Day)
	return t, int(t.Month()) == e.Month
}

// Set is a Provider backed by weekend days and holiday entries.
type Set struct {
	weekend [7]bool
	terse   bool
	entries []Entry
}

var _ Provider = (*Set)(nil)

// Option configures a Set.
type Option func(*Set)

// WithWeekend replaces the weekend days (0 = Monday).
func WithWeekend(days ...int) Option {
	return func(s *Set) {
		s.weekend = [7]bool{}
		for _, d := range days {
			if d >= 0 && d < 7 {
				s.weekend[d] = true
			}
		}
	}
}

// WithTerse drops the continuation and end markers of multi-day entries
// along with their dots.
func WithTerse(terse bool) Option {
	return func(s *Set) { s.terse = terse }
}

// NewSet creates a set with Saturday and Sunday as weekend and no entries.
func NewSet(opts ...Option) *Set {
	s := &Set{}
	s.weekend[5], s.weekend[6] = true, true
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Add appends entries to the set.
func (s *Set) Add(entries ...Entry) {
	s.entries = append(s.entries, entries...)
}

// Len returns the number of entries.
func (s *Set) Len() int { return len(s.entries) }

// Lookup implements Provider.
func (s *Set) Lookup(year, month, day int) Annotation {
	t := date(year, month, day)
	a := Annotation{Weekend: s.weekend[weekday(t)]}

	var headers, footers []string
	for _, e := range s.entries {
		offset, ok := e.offset(t)
		if !ok {
			continue
		}
		n := e.span()
		if n == 1 {
			a.Holiday = true
			headers = appendLabel(headers, e.Header)
			footers = appendLabel(footers, e.Footer)
			continue
		}
		switch offset {
		case 0:
			a.MultiStart = true
		case n - 1:
			a.MultiEnd = true
		default:
			a.MultiCont = true
		}
		headers = appendLabel(headers, s.multiLabel(e.Header, offset, n))
		footers = appendLabel(footers, s.multiLabel(e.Footer, offset, n))
	}
	a.Header = strings.Join(headers, ", ")
	a.Footer = strings.Join(footers, ", ")
	return a
}

// offset returns how many days t lies after the start of an occurrence of
// e covering t.
func (e Entry) offset(t time.Time) (int, bool) {
	// an occurrence covering t starts in t's year or, when it wraps the year
	// boundary, in the year before
	for _, year := range []int{t.Year(), t.Year() - 1} {
		start, ok := e.start(year)
		if !ok {
			continue
		}
		d := int(t.Sub(start).Hours() / 24)
		if t.Before(start) || d >= e.span() {
			continue
		}
		return d, true
	}
	return 0, false
}

func (s *Set) multiLabel(label string, offset, n int) string {
	if label == "" {
		return ""
	}
	switch {
	case offset == 0 && s.terse:
		return label
	case offset == 0:
		return label + ".."
	case s.terse:
		return ""
	case offset == n-1:
		return ".." + label
	default:
		return ".."
	}
}

func appendLabel(labels []string, l string) []string {
	if l == "" {
		return labels
	}
	return append(labels, l)
}

func date(year, month, day int) time.Time {
	return time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
}

// weekday returns the day of week with 0 = Monday.
func weekday(t time.Time) int {
	return (int(t.Weekday()) + 6) % 7
}
