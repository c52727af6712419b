// Package eventdate interprets the free-form display dates of catalog events,
// e.g. "March 15-17, 2024", "March 28, 2024" or "March 30 - April 2, 2024".
// Parsing is best-effort: callers treat ErrUnrecognized as "no date available".
package eventdate

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
)

var ErrUnrecognized = errors.New("unrecognized event date")

// Range spans whole calendar days, Start and End inclusive, both at midnight.
type Range struct {
	Start time.Time
	End   time.Time
}

// Contains reports whether the calendar day of t falls within the range.
func (r Range) Contains(t time.Time) bool {
	day := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, r.Start.Location())
	return !day.Before(r.Start) && !day.After(r.End)
}

// Days is the number of calendar days covered.
func (r Range) Days() int {
	return int(math.Round(r.End.Sub(r.Start).Hours()/24)) + 1
}

func Parse(display string, loc *time.Location) (Range, error) {
	if loc == nil {
		loc = time.Local
	}
	comma := strings.LastIndex(display, ",")
	if comma < 0 {
		return Range{}, fmt.Errorf("%q: %w", display, ErrUnrecognized)
	}
	year, err := strconv.Atoi(strings.TrimSpace(display[comma+1:]))
	if err != nil {
		return Range{}, fmt.Errorf("%q: %w", display, ErrUnrecognized)
	}

	days := strings.TrimSpace(display[:comma])
	first, last, isRange := strings.Cut(days, "-")

	month, day, err := monthDay(first)
	if err != nil {
		return Range{}, fmt.Errorf("%q: %w", display, err)
	}
	start, err := date(year, month, day, loc)
	if err != nil {
		return Range{}, fmt.Errorf("%q: %w", display, err)
	}
	if !isRange {
		return Range{Start: start, End: start}, nil
	}

	endMonth := month
	last = strings.TrimSpace(last)
	endDay, err := strconv.Atoi(last)
	if err != nil {
		endMonth, endDay, err = monthDay(last)
		if err != nil {
			return Range{}, fmt.Errorf("%q: %w", display, err)
		}
	}
	// One trailing year covers both ends, so a range crossing New Year is rejected below.
	end, err := date(year, endMonth, endDay, loc)
	if err != nil {
		return Range{}, fmt.Errorf("%q: %w", display, err)
	}
	if end.Before(start) {
		return Range{}, fmt.Errorf("%q: range ends before it starts: %w", display, ErrUnrecognized)
	}
	return Range{Start: start, End: end}, nil
}

// monthDay parses "March 15" or "Mar 15".
func monthDay(s string) (time.Month, int, error) {
	fields := strings.Fields(s)
	if len(fields) != 2 {
		return 0, 0, ErrUnrecognized
	}
	month, err := parseMonth(fields[0])
	if err != nil {
		return 0, 0, err
	}
	day, err := strconv.Atoi(fields[1])
	if err != nil {
		return 0, 0, ErrUnrecognized
	}
	return month, day, nil
}

func parseMonth(s string) (time.Month, error) {
	for _, layout := range []string{"January", "Jan"} {
		if t, err := time.Parse(layout, s); err == nil {
			return t.Month(), nil
		}
	}
	return 0, ErrUnrecognized
}

func date(year int, month time.Month, day int, loc *time.Location) (time.Time, error) {
	t := time.Date(year, month, day, 0, 0, 0, 0, loc)
	if t.Day() != day || t.Month() != month {
		return time.Time{}, ErrUnrecognized
	}
	return t, nil
}
