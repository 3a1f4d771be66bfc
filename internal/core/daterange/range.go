// Package daterange computes calendar-aligned windows for paging the price-history chart.
package daterange

import (
	"errors"
	"fmt"
	"time"
)

// ErrUnknownTimeFrame is returned for time frames other than "y" and "1m".
var ErrUnknownTimeFrame = errors.New("unknown time frame")

// TimeFrame is the size of one chart page.
type TimeFrame string

const (
	Year  TimeFrame = "y"
	Month TimeFrame = "1m"
)

// ParseTimeFrame validates a time frame string.
func ParseTimeFrame(s string) (TimeFrame, error) {
	switch tf := TimeFrame(s); tf {
	case Year, Month:
		return tf, nil
	default:
		return "", fmt.Errorf("%w: %q (must be y or 1m)", ErrUnknownTimeFrame, s)
	}
}

// Range is an inclusive span of calendar days.
// Start is the first day of the bucket and End its last day, both at midnight.
type Range struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// Contains reports whether t falls on a calendar day inside r.
func (r Range) Contains(t time.Time) bool {
	day := startOfDay(t.In(r.Start.Location()))
	return !day.Before(r.Start) && !day.After(r.End)
}

// CalculateDateRange returns the bucket offset buckets after the one holding
// minDate, never going past the bucket holding maxDate. Negative offsets
// select the first bucket. The result is in minDate's location and always
// covers the whole month or year regardless of where the data starts or ends.
func CalculateDateRange(minDate, maxDate time.Time, tf TimeFrame, offset int) (Range, error) {
	if offset < 0 {
		offset = 0
	}
	loc := minDate.Location()
	maxDate = maxDate.In(loc)

	switch tf {
	case Year:
		year := minDate.Year() + offset
		if year > maxDate.Year() {
			year = maxDate.Year()
		}
		return Range{
			Start: time.Date(year, time.January, 1, 0, 0, 0, 0, loc),
			End:   time.Date(year, time.December, 31, 0, 0, 0, 0, loc),
		}, nil

	case Month:
		idx := monthIndex(minDate) + offset
		if maxIdx := monthIndex(maxDate); idx > maxIdx {
			idx = maxIdx
		}
		start := time.Date(idx/12, time.Month(idx%12+1), 1, 0, 0, 0, 0, loc)
		return Range{Start: start, End: EndOfMonth(start)}, nil

	default:
		return Range{}, fmt.Errorf("%w: %q", ErrUnknownTimeFrame, string(tf))
	}
}

// BucketCount returns how many buckets of size tf span minDate through maxDate.
// It is at least 1.
func BucketCount(minDate, maxDate time.Time, tf TimeFrame) (int, error) {
	maxDate = maxDate.In(minDate.Location())

	var n int
	switch tf {
	case Year:
		n = maxDate.Year() - minDate.Year() + 1
	case Month:
		n = monthIndex(maxDate) - monthIndex(minDate) + 1
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownTimeFrame, string(tf))
	}
	if n < 1 {
		n = 1
	}
	return n, nil
}

// EndOfMonth returns the last calendar day of date's month.
func EndOfMonth(date time.Time) time.Time {
	y, m, _ := date.Date()
	// Day 0 of the next month normalizes to the last day of this one.
	return time.Date(y, m+1, 0, 0, 0, 0, 0, date.Location())
}

// Sunday returns the Sunday on or before date.
func Sunday(date time.Time) time.Time {
	y, m, d := date.Date()
	return time.Date(y, m, d-int(date.Weekday()), 0, 0, 0, 0, date.Location())
}

func monthIndex(t time.Time) int {
	return t.Year()*12 + int(t.Month()) - 1
}

func startOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}
