package catalog_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"club-events/internal/catalog"
	"club-events/internal/models"
)

func writeCatalog(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "events.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad(t *testing.T) {
	path := writeCatalog(t, `[
  {
    "id": "ev-1",
    "name": "Robot Soccer Championship",
    "description": "autonomous robot soccer tournament",
    "category": "robotics",
    "location": "Main Hall",
    "scheduled_at": "2025-10-10T09:00:00Z",
    "total_slots": 30,
    "available_slots": 12,
    "is_active": true
  },
  {
    "name": "Chess Masters",
    "description": "rapid chess finals",
    "category": "games",
    "scheduled_at": "2025-10-04 18:00:00",
    "total_slots": 16,
    "available_slots": 0,
    "is_active": false
  }
]`)

	events, err := catalog.Load(path, time.UTC)

	require.NoError(t, err)
	require.Len(t, events, 2)

	assert.Equal(t, "ev-1", events[0].ID)
	assert.Equal(t, "Main Hall", events[0].Location)
	assert.Equal(t, time.Date(2025, 10, 10, 9, 0, 0, 0, time.UTC), events[0].ScheduledAt)
	assert.True(t, events[0].Active)

	// A missing id is filled in.
	assert.NotEmpty(t, events[1].ID)
	assert.True(t, events[1].ScheduledAt.Equal(time.Date(2025, 10, 4, 18, 0, 0, 0, time.UTC)))
	assert.True(t, events[1].IsFull())
	assert.False(t, events[1].Active)
}

func TestLoadNaiveTimestampsUseLocation(t *testing.T) {
	kolkata, err := time.LoadLocation("Asia/Kolkata")
	require.NoError(t, err)

	path := writeCatalog(t, `[
  {
    "name": "Evening Talk",
    "scheduled_at": "2025-10-04 18:00:00",
    "total_slots": 10,
    "available_slots": 10,
    "is_active": true
  }
]`)

	events, err := catalog.Load(path, kolkata)

	require.NoError(t, err)
	require.Len(t, events, 1)
	want := time.Date(2025, 10, 4, 18, 0, 0, 0, kolkata)
	assert.True(t, events[0].ScheduledAt.Equal(want))
}

func TestLoadMissingFile(t *testing.T) {
	_, err := catalog.Load(filepath.Join(t.TempDir(), "absent.json"), time.UTC)
	assert.Error(t, err)
}

func TestLoadInvalidJSON(t *testing.T) {
	path := writeCatalog(t, `{"not": "an array"`)
	_, err := catalog.Load(path, time.UTC)
	assert.Error(t, err)
}

func TestLoadUnparseableSchedule(t *testing.T) {
	path := writeCatalog(t, `[
  {"name": "Mystery", "scheduled_at": "next tuesday", "total_slots": 5, "available_slots": 5, "is_active": true}
]`)

	_, err := catalog.Load(path, time.UTC)

	var malformed *models.MalformedEventError
	assert.ErrorAs(t, err, &malformed)
	assert.Contains(t, err.Error(), "Mystery")
}

func TestLoadRejectsInvalidEvents(t *testing.T) {
	// More available slots than total.
	path := writeCatalog(t, `[
  {"name": "Oversold", "scheduled_at": "2025-10-10T09:00:00Z", "total_slots": 5, "available_slots": 9, "is_active": true}
]`)

	_, err := catalog.Load(path, time.UTC)

	var malformed *models.MalformedEventError
	assert.ErrorAs(t, err, &malformed)
}
