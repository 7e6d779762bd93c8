package types

import (
	"fmt"
	"sort"
	"time"

	"github.com/m-mizutani/goerr/v2"
)

// DateLayout is the ISO 8601 calendar date layout accepted in input records
const DateLayout = "2006-01-02"

// Date represents a calendar day without time of day or zone.
// It is comparable and safe to use as a map key.
type Date struct {
	Year  int
	Month time.Month
	Day   int
}

// NewDate normalizes the given year, month and day into a Date.
// Out-of-range values roll over the same way time.Date does.
func NewDate(year int, month time.Month, day int) Date {
	return DateOf(time.Date(year, month, day, 0, 0, 0, 0, time.UTC))
}

// DateOf returns the calendar day of t in t's location
func DateOf(t time.Time) Date {
	y, m, d := t.Date()
	return Date{Year: y, Month: m, Day: d}
}

// ParseDate parses an ISO 8601 calendar date (YYYY-MM-DD)
func ParseDate(s string) (Date, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return Date{}, goerr.Wrap(err, "invalid ISO 8601 date", goerr.V("date", s))
	}
	return DateOf(t), nil
}

// Time returns midnight UTC of the day
func (d Date) Time() time.Time {
	return time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, time.UTC)
}

// AddDays moves the date by n calendar days (n may be negative)
func (d Date) AddDays(n int) Date {
	return NewDate(d.Year, d.Month, d.Day+n)
}

// Before reports whether d is strictly earlier than other
func (d Date) Before(other Date) bool {
	if d.Year != other.Year {
		return d.Year < other.Year
	}
	if d.Month != other.Month {
		return d.Month < other.Month
	}
	return d.Day < other.Day
}

// After reports whether d is strictly later than other
func (d Date) After(other Date) bool {
	return other.Before(d)
}

// IsZero reports whether d is the zero Date
func (d Date) IsZero() bool {
	return d == Date{}
}

// String returns the ISO 8601 representation
func (d Date) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, int(d.Month), d.Day)
}

// Label returns the chart label form YYYY-M-D without zero padding
func (d Date) Label() string {
	return fmt.Sprintf("%d-%d-%d", d.Year, int(d.Month), d.Day)
}

// DateAxis is a strictly increasing sequence of dates
type DateAxis []Date

// NewDateAxis returns the sorted union of the given date sets
func NewDateAxis(sets ...[]Date) DateAxis {
	seen := make(map[Date]struct{})
	var axis DateAxis
	for _, set := range sets {
		for _, d := range set {
			if _, ok := seen[d]; ok {
				continue
			}
			seen[d] = struct{}{}
			axis = append(axis, d)
		}
	}

	sort.Slice(axis, func(i, j int) bool {
		return axis[i].Before(axis[j])
	})
	return axis
}

// Labels returns chart labels for every date on the axis
func (a DateAxis) Labels() []string {
	labels := make([]string, len(a))
	for i, d := range a {
		labels[i] = d.Label()
	}
	return labels
}

// First returns the earliest date, or the zero Date for an empty axis
func (a DateAxis) First() Date {
	if len(a) == 0 {
		return Date{}
	}
	return a[0]
}

// Last returns the latest date, or the zero Date for an empty axis
func (a DateAxis) Last() Date {
	if len(a) == 0 {
		return Date{}
	}
	return a[len(a)-1]
}
