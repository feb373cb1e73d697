package utils

import (
	"fmt"
	"time"
)

// TimestampLayout is how punch timestamps are stored: day-first, in the
// factory timezone. Existing log rows already use this shape.
const TimestampLayout = "02/01/2006, 15:04:05"

func FormatTimestamp(t time.Time, loc *time.Location) string {
	return t.In(loc).Format(TimestampLayout)
}

func MustParseDate(dateStr string) time.Time {
	t, _ := time.ParseInLocation("2006-01-02", dateStr, time.UTC)
	return t
}

// ParseTimestamp parses a stored punch timestamp. Ordering of punch events
// must go through this so that comparison is by date-time, not by string.
func ParseTimestamp(s string, loc *time.Location) (time.Time, error) {
	if s == "" {
		return time.Time{}, fmt.Errorf("empty time string")
	}

	if t, err := time.ParseInLocation(TimestampLayout, s, loc); err == nil {
		return t, nil
	}

	// Accept ISO timestamps from older tooling that wrote RFC3339 rows
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	if t, err := time.Parse(time.RFC3339Nano, s); err == nil {
		return t, nil
	}

	layouts := []string{
		"2006-01-02 15:04:05",
		"2006-01-02T15:04:05",
		"2006-01-02",
	}
	for _, layout := range layouts {
		if t, err := time.ParseInLocation(layout, s, loc); err == nil {
			return t, nil
		}
	}

	return time.Time{}, fmt.Errorf("failed to parse time: %v", s)
}
