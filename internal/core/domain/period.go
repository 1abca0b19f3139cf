package domain

import (
	"fmt"
	"time"
)

// DateLayout is the calendar-date format used across the API and the CLI.
const DateLayout = "2006-01-02"

// Period is an inclusive range of calendar dates.
type Period struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// NewPeriod normalises start and end to calendar dates and rejects inverted ranges.
func NewPeriod(start, end time.Time) (Period, error) {
	p := Period{Start: truncateToDate(start), End: truncateToDate(end)}
	if p.Start.After(p.End) {
		return Period{}, fmt.Errorf("period start %s is after end %s", p.Start.Format(DateLayout), p.End.Format(DateLayout))
	}
	return p, nil
}

// ParsePeriod builds a period from two YYYY-MM-DD strings.
func ParsePeriod(from, to string) (Period, error) {
	start, err := time.Parse(DateLayout, from)
	if err != nil {
		return Period{}, fmt.Errorf("invalid start date %q: %w", from, err)
	}
	end, err := time.Parse(DateLayout, to)
	if err != nil {
		return Period{}, fmt.Errorf("invalid end date %q: %w", to, err)
	}
	return NewPeriod(start, end)
}

// Contains reports whether t falls on a calendar date inside the period, bounds included.
func (p Period) Contains(t time.Time) bool {
	d := truncateToDate(t)
	return !d.Before(p.Start) && !d.After(p.End)
}

func (p Period) String() string {
	return p.Start.Format(DateLayout) + ".." + p.End.Format(DateLayout)
}

func truncateToDate(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
