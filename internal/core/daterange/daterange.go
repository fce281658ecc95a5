// Package daterange validates pairs of calendar date strings and turns them
// into inclusive absolute ranges in a caller supplied timezone
package daterange

import (
	"fmt"
	"time"
)

// layout is the only accepted calendar date form
const layout = "2006-01-02"

// Range is an inclusive pair of instants with Start <= End
// Immutable once constructed
type Range struct {
	Start    time.Time
	End      time.Time
	Timezone string
}

// Contains reports whether t falls within the range, endpoints included
func (r Range) Contains(t time.Time) bool {
	return !t.Before(r.Start) && !t.After(r.End)
}

// Validate parses start and end as calendar dates in loc and returns the
// resulting range. The start date maps to the start of its day and the end
// date to the last representable millisecond of its day, so a single day
// range is non empty and comments on the end day are kept
// Ordering is checked on the calendar dates before timezone conversion so
// the error reads the way a human wrote the request
func Validate(start, end string, loc *time.Location) (Range, error) {
	if loc == nil {
		loc = time.UTC
	}

	sd, err := time.Parse(layout, start)
	if err != nil {
		return Range{}, fmt.Errorf("invalid start_date %q: expected YYYY-MM-DD", start)
	}
	ed, err := time.Parse(layout, end)
	if err != nil {
		return Range{}, fmt.Errorf("invalid end_date %q: expected YYYY-MM-DD", end)
	}

	if sd.After(ed) {
		return Range{}, fmt.Errorf("start_date %s is after end_date %s", start, end)
	}

	s := time.Date(sd.Year(), sd.Month(), sd.Day(), 0, 0, 0, 0, loc)
	e := time.Date(ed.Year(), ed.Month(), ed.Day(), 23, 59, 59, int(999*time.Millisecond), loc)

	return Range{Start: s, End: e, Timezone: loc.String()}, nil
}
