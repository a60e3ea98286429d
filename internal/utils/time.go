package utils

import (
	"strings"
	"time"

	"transportpro/internal/domain"
)

const layoutMonth = "2006-01"

// NowUTC returns current time in UTC.
func NowUTC() time.Time {
	return time.Now().UTC()
}

// ParseDate parses YYYY-MM-DD as a UTC calendar date.
func ParseDate(s string) (time.Time, error) {
	return time.Parse(domain.DateLayout, strings.TrimSpace(s))
}

// IsDate reports whether s is a valid YYYY-MM-DD date.
func IsDate(s string) bool {
	_, err := ParseDate(s)
	return err == nil
}

// MonthKey truncates a YYYY-MM-DD date to its zero-padded YYYY-MM bucket.
// Unparseable dates fall back to their first seven characters.
func MonthKey(date string) string {
	t, err := ParseDate(date)
	if err != nil {
		date = strings.TrimSpace(date)
		if len(date) >= 7 {
			return date[:7]
		}
		return date
	}
	return t.Format(layoutMonth)
}

// CurrentMonthKey is the YYYY-MM bucket containing now (UTC).
func CurrentMonthKey(now time.Time) string {
	return now.UTC().Format(layoutMonth)
}

// DateInRange checks from <= date <= to. Empty bounds are open.
// A date that does not parse never matches a bounded range.
func DateInRange(date, from, to string) bool {
	if from == "" && to == "" {
		return true
	}
	d, err := ParseDate(date)
	if err != nil {
		return false
	}
	if from != "" {
		f, err := ParseDate(from)
		if err != nil || d.Before(f) {
			return false
		}
	}
	if to != "" {
		t, err := ParseDate(to)
		if err != nil || d.After(t) {
			return false
		}
	}
	return true
}
