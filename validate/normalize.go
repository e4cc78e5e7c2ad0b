package validate

import (
	"strings"
	"time"
)

// Date inputs arrive in three shapes: bare calendar dates, RFC 3339
// timestamps, and the "01/02/2006, 15:04:05" form the EDF upload path of
// the acquisition SDK emits. Canonical output is the bare date for
// date-only input and an RFC 3339 UTC timestamp otherwise, so
// re-validating a normalized record is a no-op.

const edfDateLayout = "01/02/2006, 15:04:05"

func parseDate(s string) (t time.Time, hasClock bool, ok bool) {
	s = strings.TrimSpace(s)
	if t, err := time.Parse("2006-01-02", s); err == nil {
		return t, false, true
	}
	if t, err := time.Parse(time.RFC3339Nano, s); err == nil {
		return t, true, true
	}
	if t, err := time.Parse(edfDateLayout, s); err == nil {
		return t, true, true
	}
	return time.Time{}, false, false
}

func canonicalDate(t time.Time, hasClock bool) string {
	if !hasClock {
		return t.Format("2006-01-02")
	}
	return t.UTC().Format(time.RFC3339Nano)
}

func parseTimestamp(s string) (time.Time, bool) {
	t, err := time.Parse(time.RFC3339Nano, strings.TrimSpace(s))
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

func canonicalTimestamp(t time.Time) string {
	return t.UTC().Format(time.RFC3339Nano)
}
