// Package reltime resolves YouTube style relative time strings into absolute
// instants anchored to a caller supplied reference
// The grammar is a closed set: "just now", "<n> <unit> ago", and
// "a/an <unit> ago" where unit is second minute hour day week month or year
// Months are treated as 30 days and years as 365 days. The source text never
// carries finer resolution, so calendar accurate month arithmetic would only
// imply precision the data does not have
package reltime

import (
	"errors"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// ErrUnrecognized is returned when text matches none of the known patterns
// Callers decide whether to drop, keep, or flag the record
var ErrUnrecognized = errors.New("unrecognized relative time")

// unit durations in the fixed day approximation
const (
	day   = 24 * time.Hour
	week  = 7 * day
	month = 30 * day
	year  = 365 * day
)

var unitDur = map[string]time.Duration{
	"second": time.Second,
	"minute": time.Minute,
	"hour":   time.Hour,
	"day":    day,
	"week":   week,
	"month":  month,
	"year":   year,
}

// numRe matches "<n> <unit>(s) ago" anywhere in the text so trailing noise
// like "(edited)" does not break parsing
var numRe = regexp.MustCompile(`(\d+)\s*(second|minute|hour|day|week|month|year)s?\s*ago`)

// artRe matches the indefinite article form "a day ago" / "an hour ago"
var artRe = regexp.MustCompile(`\ban?\s+(second|minute|hour|day|week|month|year)\s*ago`)

// Parse resolves text against ref and returns the absolute instant
// Relative times are always in the past: a comment cannot postdate the
// moment it was collected
func Parse(text string, ref time.Time) (time.Time, error) {
	s := strings.ToLower(strings.TrimSpace(text))
	if s == "" {
		return time.Time{}, ErrUnrecognized
	}

	if s == "just now" || s == "now" {
		return ref, nil
	}

	if m := numRe.FindStringSubmatch(s); m != nil {
		qty, err := strconv.Atoi(m[1])
		if err != nil {
			// \d+ guarantees digits; only overflow lands here
			return time.Time{}, ErrUnrecognized
		}
		return ref.Add(-time.Duration(qty) * unitDur[m[2]]), nil
	}

	if m := artRe.FindStringSubmatch(s); m != nil {
		return ref.Add(-unitDur[m[1]]), nil
	}

	return time.Time{}, ErrUnrecognized
}

// Unrecognized reports whether err is the parser's sentinel
func Unrecognized(err error) bool {
	return errors.Is(err, ErrUnrecognized)
}
