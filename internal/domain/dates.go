package domain

import (
	"strings"
	"time"
)

// DateLayout is the storage and display layout for calendar dates.
const DateLayout = "2006-01-02"

var dateLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	DateLayout,
}

// ParseDate parses the date and instant formats produced by intake forms and
// the calendar. Values without a zone are read as UTC. The bool is false for
// empty or unparsable input.
func ParseDate(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.UTC(), true
		}
	}
	return time.Time{}, false
}
