package classify

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"club-events/internal/models"
)

func TestParseEventTime(t *testing.T) {
	kolkata, err := time.LoadLocation("Asia/Kolkata")
	require.NoError(t, err)

	tests := []struct {
		name string
		raw  string
		loc  *time.Location
		want time.Time
	}{
		{
			name: "rfc3339 utc",
			raw:  "2025-10-04T14:30:00Z",
			loc:  time.UTC,
			want: time.Date(2025, 10, 4, 14, 30, 0, 0, time.UTC),
		},
		{
			name: "rfc3339 with offset",
			raw:  "2025-10-04T20:00:00+05:30",
			loc:  time.UTC,
			want: time.Date(2025, 10, 4, 14, 30, 0, 0, time.UTC),
		},
		{
			name: "naive datetime lands in reference zone",
			raw:  "2025-10-04T14:30:00",
			loc:  kolkata,
			want: time.Date(2025, 10, 4, 14, 30, 0, 0, kolkata),
		},
		{
			name: "space separated datetime",
			raw:  "2025-10-04 14:30:00",
			loc:  time.UTC,
			want: time.Date(2025, 10, 4, 14, 30, 0, 0, time.UTC),
		},
		{
			name: "date only means local midnight",
			raw:  "2025-10-04",
			loc:  kolkata,
			want: time.Date(2025, 10, 4, 0, 0, 0, 0, kolkata),
		},
		{
			name: "nil location defaults to utc",
			raw:  "2025-10-04T14:30:00",
			loc:  nil,
			want: time.Date(2025, 10, 4, 14, 30, 0, 0, time.UTC),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseEventTime(tt.raw, tt.loc)
			require.NoError(t, err)
			assert.True(t, got.Equal(tt.want), "got %s, want %s", got, tt.want)
		})
	}
}

func TestParseEventTimeRejectsGarbage(t *testing.T) {
	for _, raw := range []string{"", "   ", "next tuesday", "04/10/2025", "2025-13-40T99:00:00Z"} {
		_, err := ParseEventTime(raw, time.UTC)
		assert.Error(t, err, "raw=%q", raw)
		var malformed *models.MalformedEventError
		assert.ErrorAs(t, err, &malformed, "raw=%q", raw)
	}
}

func TestParseTimezone(t *testing.T) {
	loc, err := ParseTimezone("")
	require.NoError(t, err)
	assert.Equal(t, time.UTC, loc)

	loc, err = ParseTimezone("UTC")
	require.NoError(t, err)
	assert.Equal(t, time.UTC, loc)

	loc, err = ParseTimezone("America/New_York")
	require.NoError(t, err)
	assert.Equal(t, "America/New_York", loc.String())

	_, err = ParseTimezone("Not/AZone")
	assert.Error(t, err)
}

func TestDaysBetween(t *testing.T) {
	utc := time.UTC

	// Same day regardless of clock time.
	a := time.Date(2025, 10, 4, 0, 1, 0, 0, utc)
	b := time.Date(2025, 10, 4, 23, 59, 0, 0, utc)
	assert.Equal(t, 0, daysBetween(a, b, utc))

	// Forward and backward.
	assert.Equal(t, 1, daysBetween(a, a.AddDate(0, 0, 1), utc))
	assert.Equal(t, -1, daysBetween(b, b.AddDate(0, 0, -1), utc))
	assert.Equal(t, 30, daysBetween(
		time.Date(2025, 10, 4, 14, 30, 0, 0, utc),
		time.Date(2025, 11, 3, 9, 0, 0, 0, utc),
		utc,
	))
}

func TestDaysBetweenAcrossDST(t *testing.T) {
	ny, err := time.LoadLocation("America/New_York")
	require.NoError(t, err)

	// US spring forward (Mar 9 2025): the 23h day still counts as one.
	assert.Equal(t, 2, daysBetween(
		time.Date(2025, 3, 8, 12, 0, 0, 0, ny),
		time.Date(2025, 3, 10, 12, 0, 0, 0, ny),
		ny,
	))

	// US fall back (Nov 2 2025): the 25h day still counts as one.
	assert.Equal(t, 2, daysBetween(
		time.Date(2025, 11, 1, 12, 0, 0, 0, ny),
		time.Date(2025, 11, 3, 12, 0, 0, 0, ny),
		ny,
	))
}
