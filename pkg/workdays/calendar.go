package workdays

import (
	"fmt"
	"time"
)

// DateLayout is the wire format for holiday registry entries.
const DateLayout = "2006-01-02"

// Calendar answers working-day questions for a fixed holiday set.
// Weekends are always non-working; holidays come from the registry the
// calendar was built with and never change for its lifetime.
type Calendar struct {
	holidays map[string]struct{}
}

// New builds a calendar from a registry mapping year to ISO dates.
// A malformed date entry fails construction rather than being skipped:
// a silently missing holiday would misclassify companies.
func New(registry map[int][]string) (*Calendar, error) {
	holidays := make(map[string]struct{})
	for year, dates := range registry {
		for _, d := range dates {
			if _, err := time.Parse(DateLayout, d); err != nil {
				return nil, fmt.Errorf("invalid holiday date %q for year %d: %w", d, year, err)
			}
			holidays[d] = struct{}{}
		}
	}
	return &Calendar{holidays: holidays}, nil
}

// IsWorkingDay reports whether t falls on a working day. Saturdays,
// Sundays and registered holidays are non-working; everything else works.
func (c *Calendar) IsWorkingDay(t time.Time) bool {
	t = t.UTC()
	if wd := t.Weekday(); wd == time.Saturday || wd == time.Sunday {
		return false
	}
	if _, ok := c.holidays[t.Format(DateLayout)]; ok {
		return false
	}
	return true
}

// WorkingDaysBetween counts working days in the half-open day interval
// [start, end): the start day counts when it is a working day, the end day
// never counts. Timestamps are truncated to UTC calendar dates first, so
// the result only moves at midnight. A reversed or empty range yields 0.
func (c *Calendar) WorkingDaysBetween(start, end time.Time) int {
	cur := truncateUTC(start)
	stop := truncateUTC(end)

	days := 0
	for cur.Before(stop) {
		if c.IsWorkingDay(cur) {
			days++
		}
		cur = cur.AddDate(0, 0, 1)
	}
	return days
}

// AddWorkingDays advances from start one calendar day at a time until n
// working days have been passed. The result is always a working day.
// n <= 0 returns start unchanged.
func (c *Calendar) AddWorkingDays(start time.Time, n int) time.Time {
	cur := truncateUTC(start)
	added := 0
	for added < n {
		cur = cur.AddDate(0, 0, 1)
		if c.IsWorkingDay(cur) {
			added++
		}
	}
	return cur
}

func truncateUTC(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
