package util

import (
	"fmt"
	"time"
)

// ParseRFC3339 parses an RFC3339 (optionally fractional) timestamp and returns it in UTC.
func ParseRFC3339(s string) (time.Time, error) {
	if s == "" {
		return time.Time{}, fmt.Errorf("empty timestamp")
	}
	t, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse %q: %w", s, err)
	}
	return t.UTC(), nil
}

// FormatDate renders t as a calendar date in UTC.
func FormatDate(t time.Time) string {
	return t.UTC().Format(time.DateOnly)
}
