package calendar

import (
	"strconv"
	"strings"
	"time"

	"github.com/matzehuels/callirhoe/pkg/errors"
)

// Request is a parsed calendar request: span months starting at Month/Year.
type Request struct {
	Year  int
	Month int
	Span  int
}

// Months expands the request into the months it covers.
func (r Request) Months() []MonthSpec { return Range(r.Year, r.Month, r.Span) }

// ParseArgs parses the positional form [[MONTH[-MONTH2|:SPAN]] YEAR]. With no
// arguments the whole current year is requested; a lone YEAR requests all of
// that year. now supplies the current date for the 0 shorthands.
func ParseArgs(args []string, now time.Time) (Request, error) {
	switch len(args) {
	case 0:
		return Request{Year: now.Year(), Month: 1, Span: 12}, nil
	case 1:
		y, err := ParseYear(args[0], now)
		if err != nil {
			return Request{}, err
		}
		return Request{Year: y, Month: 1, Span: 12}, nil
	case 2:
		m, span, err := ParseMonthRange(args[0], now)
		if err != nil {
			return Request{}, err
		}
		y, err := ParseYear(args[1], now)
		if err != nil {
			return Request{}, err
		}
		return Request{Year: y, Month: m, Span: span}, nil
	default:
		return Request{}, errors.New(errors.ErrCodeInvalidInput, "expected at most MONTH and YEAR, got %d arguments", len(args))
	}
}

// ParseMonthRange parses MONTH, MONTH1-MONTH2 or MONTH:SPAN. Month 0 stands
// for the current month. A span of 0 is accepted here; rendering rejects it.
func ParseMonthRange(s string, now time.Time) (month, span int, err error) {
	if a, b, ok := strings.Cut(s, ":"); ok {
		if month, err = parseMonth(a, now); err != nil {
			return 0, 0, err
		}
		span, err = atoi(b, 0, -1, errors.ErrCodeInvalidMonth, "month span")
		return month, span, err
	}
	if a, b, ok := strings.Cut(s, "-"); ok {
		if month, err = parseMonth(a, now); err != nil {
			return 0, 0, err
		}
		last, err := atoi(b, month+1, -1, errors.ErrCodeInvalidMonth, "month range")
		if err != nil {
			return 0, 0, err
		}
		return month, last - month + 1, nil
	}
	month, err = parseMonth(s, now)
	return month, 1, err
}

// ParseYear parses a year; 0 stands for the current year.
func ParseYear(s string, now time.Time) (int, error) {
	y, err := atoi(s, 0, -1, errors.ErrCodeInvalidYear, "year")
	if err != nil {
		return 0, err
	}
	if y == 0 {
		y = now.Year()
	}
	return y, nil
}

func parseMonth(s string, now time.Time) (int, error) {
	m, err := atoi(s, 0, 12, errors.ErrCodeInvalidMonth, "month")
	if err != nil {
		return 0, err
	}
	if m == 0 {
		m = int(now.Month())
	}
	return m, nil
}

// atoi parses an integer within [lo, hi]; hi < 0 means unbounded.
func atoi(s string, lo, hi int, code errors.Code, what string) (int, error) {
	k, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, errors.New(code, "%s: invalid integer value %q", what, s)
	}
	if k < lo {
		return 0, errors.New(code, "%s: value %q out of range: should not be less than %d", what, s, lo)
	}
	if hi >= 0 && k > hi {
		return 0, errors.New(code, "%s: value %q out of range: should not be greater than %d", what, s, hi)
	}
	return k, nil
}
