package models

import (
	"fmt"
	"time"
)

// Status is the temporal state of an event relative to a reference instant.
type Status string

const (
	StatusUpcoming  Status = "UPCOMING"
	StatusOngoing   Status = "ONGOING"
	StatusCompleted Status = "COMPLETED"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusUpcoming, StatusOngoing, StatusCompleted:
		return true
	}
	return false
}

// Event is a club event as supplied by the persistence layer. The engine
// treats every record as an immutable value for the duration of a call.
type Event struct {
	ID             string    `json:"id"`
	Name           string    `json:"name"`
	Description    string    `json:"description"`
	Category       string    `json:"category"`
	Location       string    `json:"location"`
	ScheduledAt    time.Time `json:"scheduled_at"`
	TotalSlots     int       `json:"total_slots"`
	AvailableSlots int       `json:"available_slots"`
	Active         bool      `json:"is_active"`
}

// IsFull reports whether no registration slots remain.
func (e Event) IsFull() bool {
	return e.AvailableSlots <= 0
}

// Validate checks the structural invariants a snapshot record must hold.
// Loaders call this once per record; the engine assumes it already passed.
func (e Event) Validate() error {
	if e.Name == "" {
		return &MalformedEventError{EventID: e.ID, Reason: "name is empty"}
	}
	if e.TotalSlots < 0 || e.AvailableSlots < 0 {
		return &MalformedEventError{EventID: e.ID, Reason: "negative slot count"}
	}
	if e.AvailableSlots > e.TotalSlots {
		return &MalformedEventError{
			EventID: e.ID,
			Reason:  fmt.Sprintf("available slots %d exceed total %d", e.AvailableSlots, e.TotalSlots),
		}
	}
	if e.ScheduledAt.IsZero() {
		return &MalformedEventError{EventID: e.ID, Reason: "missing scheduled time"}
	}
	return nil
}
