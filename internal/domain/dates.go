package domain

import (
	"strings"
	"time"
)

const DateLayout = "2006-01-02"

// DateOf truncates t to midnight UTC of its calendar day.
func DateOf(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// ParseDate accepts YYYY-MM-DD or RFC3339 and returns the UTC calendar day.
func ParseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if t, err := time.Parse(DateLayout, s); err == nil {
		return t.UTC(), nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}, err
	}
	return DateOf(t), nil
}
