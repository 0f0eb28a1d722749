// Package classify derives the temporal status of club events and the
// user actions each one currently permits. Everything here is a pure
// function of the event record, the supplied instant, and the Rules.
package classify

import (
	"fmt"
	"time"

	"club-events/internal/models"
)

// Rules holds the product constants classification depends on. The
// feedback window and the same-day cutover are configuration, not law.
type Rules struct {
	// FeedbackWindowDays is how many days after completion feedback
	// remains open. The boundary day is inclusive.
	FeedbackWindowDays int

	// OngoingGrace keeps a same-day event ONGOING for this long past its
	// scheduled instant. Zero means the event completes the moment its
	// start time passes.
	OngoingGrace time.Duration

	// Location is the reference zone for calendar-day comparisons. Both
	// "now" and the scheduled time are converted into it first.
	Location *time.Location
}

// DefaultRules returns the product defaults: 7 day feedback window, no
// grace, UTC.
func DefaultRules() Rules {
	return Rules{
		FeedbackWindowDays: 7,
		OngoingGrace:       0,
		Location:           time.UTC,
	}
}

// Classifier annotates events with status and eligibility. It is
// stateless apart from its Rules and safe for any number of concurrent
// callers.
type Classifier struct {
	rules Rules
}

func NewClassifier(rules Rules) *Classifier {
	if rules.Location == nil {
		rules.Location = time.UTC
	}
	if rules.FeedbackWindowDays < 0 {
		rules.FeedbackWindowDays = 0
	}
	if rules.OngoingGrace < 0 {
		rules.OngoingGrace = 0
	}
	return &Classifier{rules: rules}
}

// Rules returns a copy of the classifier's rules.
func (c *Classifier) Rules() Rules {
	return c.rules
}

// Classify maps an event and an instant to its Classification.
//
// The calendar date decides between days: a positive day delta is
// UPCOMING, a negative one COMPLETED. On the scheduled day itself the
// full timestamps decide: once the scheduled instant (plus grace) has
// passed, the event is COMPLETED even though it is still "today".
// A missing scheduled time is an error, never a default.
func (c *Classifier) Classify(ev models.Event, now time.Time) (models.Classification, error) {
	if ev.ScheduledAt.IsZero() {
		return models.Classification{}, &models.MalformedEventError{EventID: ev.ID, Reason: "missing scheduled time"}
	}

	scheduled := ev.ScheduledAt.In(c.rules.Location)
	ref := now.In(c.rules.Location)
	delta := daysBetween(ref, scheduled, c.rules.Location)

	var status models.Status
	switch {
	case delta > 0:
		status = models.StatusUpcoming
	case delta < 0:
		status = models.StatusCompleted
	default:
		if scheduled.Add(c.rules.OngoingGrace).After(ref) {
			status = models.StatusOngoing
		} else {
			status = models.StatusCompleted
		}
	}

	cl := models.Classification{
		Status:          status,
		IsToday:         delta == 0,
		DaysDelta:       delta,
		TimeDescription: describeTiming(status, delta),
	}
	cl.CanRegister = (status == models.StatusUpcoming || status == models.StatusOngoing) &&
		ev.AvailableSlots > 0 && ev.Active
	cl.CanGiveFeedback = status == models.StatusOngoing ||
		(status == models.StatusCompleted && absInt(delta) <= c.rules.FeedbackWindowDays)

	return cl, nil
}

// describeTiming renders the day delta as the phrase users see in
// eligibility messages.
func describeTiming(status models.Status, delta int) string {
	switch status {
	case models.StatusOngoing:
		return "today"
	case models.StatusUpcoming:
		if delta == 1 {
			return "tomorrow"
		}
		return fmt.Sprintf("in %d days", delta)
	default:
		switch delta {
		case 0:
			return "today (completed)"
		case -1:
			return "yesterday"
		default:
			return fmt.Sprintf("%d days ago", -delta)
		}
	}
}

func absInt(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
