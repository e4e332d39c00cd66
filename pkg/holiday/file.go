package holiday

import (
	"bytes"
	"io"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/matzehuels/callirhoe/pkg/errors"
)

// maxDays bounds multi-day entries.
const maxDays = 366

type fileEntry struct {
	Date   string `yaml:"date"`
	Days   int    `yaml:"days"`
	Header string `yaml:"header"`
	Footer string `yaml:"footer"`
}

type file struct {
	Holidays []fileEntry `yaml:"holidays"`
}

// LoadFile reads a YAML holiday file and adds its entries to the set.
func (s *Set) LoadFile(path string) error {
	data, err := ReadFile(path)
	if err != nil {
		return err
	}
	return s.Load(bytes.NewReader(data), path)
}

// ReadFile reads a holiday file without decoding it, mapping failures to
// FILE_NOT_FOUND or INVALID_HOLIDAY.
func ReadFile(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "holiday file %s", path)
		}
		return nil, errors.Wrap(errors.ErrCodeInvalidHoliday, err, "read holiday file %s", path)
	}
	return data, nil
}

// Load decodes YAML holiday entries from r. Name identifies the source in
// error messages. Nothing is added when any entry is invalid.
func (s *Set) Load(r io.Reader, name string) error {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var f file
	if err := dec.Decode(&f); err != nil && err != io.EOF {
		return errors.Wrap(errors.ErrCodeInvalidHoliday, err, "parse %s", name)
	}

	entries := make([]Entry, 0, len(f.Holidays))
	for i, fe := range f.Holidays {
		e, err := fe.entry()
		if err != nil {
			return errors.Wrap(errors.ErrCodeInvalidHoliday, err, "%s: entry %d", name, i+1)
		}
		entries = append(entries, e)
	}
	s.Add(entries...)
	return nil
}

func (fe fileEntry) entry() (Entry, error) {
	e := Entry{Days: fe.Days, Header: fe.Header, Footer: fe.Footer}
	if fe.Days < 0 || fe.Days > maxDays {
		return e, errors.New(errors.ErrCodeInvalidHoliday, "days %d out of range 0..%d", fe.Days, maxDays)
	}
	if fe.Header == "" && fe.Footer == "" {
		return e, errors.New(errors.ErrCodeInvalidHoliday, "date %s has neither header nor footer", fe.Date)
	}

	year, month, day, err := ParseDate(fe.Date)
	if err != nil {
		return e, err
	}
	e.Year, e.Month, e.Day = year, month, day
	return e, nil
}

// ParseDate parses "MM-DD" (recurring, year 0) or "YYYY-MM-DD".
func ParseDate(s string) (year, month, day int, err error) {
	parts := strings.Split(strings.TrimSpace(s), "-")
	var nums []int
	for _, p := range parts {
		n, convErr := strconv.Atoi(p)
		if convErr != nil || n < 0 {
			return 0, 0, 0, errors.New(errors.ErrCodeInvalidHoliday, "invalid date %q (want MM-DD or YYYY-MM-DD)", s)
		}
		nums = append(nums, n)
	}
	switch len(nums) {
	case 2:
		month, day = nums[0], nums[1]
	case 3:
		year, month, day = nums[0], nums[1], nums[2]
		if year < 1 {
			return 0, 0, 0, errors.New(errors.ErrCodeInvalidHoliday, "invalid year in date %q", s)
		}
	default:
		return 0, 0, 0, errors.New(errors.ErrCodeInvalidHoliday, "invalid date %q (want MM-DD or YYYY-MM-DD)", s)
	}
	if month < 1 || month > 12 {
		return 0, 0, 0, errors.New(errors.ErrCodeInvalidHoliday, "invalid month in date %q", s)
	}
	// February 29 is a valid recurring date
	limit := 29
	if year != 0 || month != 2 {
		limit = daysIn(year, month)
	}
	if day < 1 || day > limit {
		return 0, 0, 0, errors.New(errors.ErrCodeInvalidHoliday, "invalid day in date %q", s)
	}
	return year, month, day, nil
}

func daysIn(year, month int) int {
	if year == 0 {
		year = 2001
	}
	return date(year, month+1, 0).Day()
}
