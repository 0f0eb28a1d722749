// Package catalog loads the event catalog from a JSON file.
package catalog

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"

	"club-events/internal/classify"
	"club-events/internal/models"
)

// rawEvent is the wire form of an event. The schedule is kept as a
// string so several timestamp formats can be accepted.
type rawEvent struct {
	ID             string `json:"id"`
	Name           string `json:"name"`
	Description    string `json:"description"`
	Category       string `json:"category"`
	Location       string `json:"location"`
	ScheduledAt    string `json:"scheduled_at"`
	TotalSlots     int    `json:"total_slots"`
	AvailableSlots int    `json:"available_slots"`
	IsActive       bool   `json:"is_active"`
}

// Load reads events from a JSON array file. Naive timestamps are
// interpreted in loc. Events without an id are assigned one. Every
// event must pass validation; the first failure aborts the load.
func Load(path string, loc *time.Location) ([]models.Event, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog: %w", err)
	}

	var raw []rawEvent
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parse catalog %s: %w", path, err)
	}

	events := make([]models.Event, 0, len(raw))
	for _, r := range raw {
		scheduledAt, err := classify.ParseEventTime(r.ScheduledAt, loc)
		if err != nil {
			return nil, fmt.Errorf("event %q: %w", r.Name, err)
		}

		ev := models.Event{
			ID:             r.ID,
			Name:           r.Name,
			Description:    r.Description,
			Category:       r.Category,
			Location:       r.Location,
			ScheduledAt:    scheduledAt,
			TotalSlots:     r.TotalSlots,
			AvailableSlots: r.AvailableSlots,
			Active:         r.IsActive,
		}
		if ev.ID == "" {
			ev.ID = uuid.New().String()
		}
		if err := ev.Validate(); err != nil {
			return nil, fmt.Errorf("catalog %s: %w", path, err)
		}

		events = append(events, ev)
	}

	return events, nil
}
