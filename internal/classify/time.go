package classify

import (
	"fmt"
	"math"
	"strings"
	"time"

	"club-events/internal/models"
)

// Accepted scheduled-time layouts, tried in order. Offset-aware input
// keeps its offset; offset-naive input is interpreted in the reference
// location.
var eventTimeLayouts = []struct {
	layout string
	naive  bool
}{
	{time.RFC3339, false},
	{"2006-01-02T15:04:05", true},
	{"2006-01-02 15:04:05", true},
	{"2006-01-02", true},
}

// ParseEventTime parses a scheduled-time string from an upstream record.
// A nil loc means UTC. Empty or unrecognized input is a
// MalformedEventError; the caller decides whether to skip the record or
// fail.
func ParseEventTime(raw string, loc *time.Location) (time.Time, error) {
	if loc == nil {
		loc = time.UTC
	}
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return time.Time{}, &models.MalformedEventError{Reason: "empty scheduled time"}
	}
	for _, l := range eventTimeLayouts {
		if l.naive {
			if t, err := time.ParseInLocation(l.layout, raw, loc); err == nil {
				return t, nil
			}
			continue
		}
		if t, err := time.Parse(l.layout, raw); err == nil {
			return t, nil
		}
	}
	return time.Time{}, &models.MalformedEventError{Reason: fmt.Sprintf("unparseable scheduled time %q", raw)}
}

// ParseTimezone resolves a reference zone name. Empty input means UTC;
// unknown names are an error.
func ParseTimezone(name string) (*time.Location, error) {
	if strings.TrimSpace(name) == "" {
		return time.UTC, nil
	}
	loc, err := time.LoadLocation(name)
	if err != nil {
		return nil, fmt.Errorf("timezone %q: %w", name, err)
	}
	return loc, nil
}

// daysBetween counts whole calendar days from a to b in loc.
func daysBetween(a, b time.Time, loc *time.Location) int {
	from := dayStart(a, loc)
	to := dayStart(b, loc)
	// Local midnights are not always exactly 24h apart (DST); rounding
	// keeps the count in whole days.
	return int(math.Round(to.Sub(from).Hours() / 24))
}

// dayStart returns midnight of t's calendar day in loc.
func dayStart(t time.Time, loc *time.Location) time.Time {
	t = t.In(loc)
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, loc)
}
