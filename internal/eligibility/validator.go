// Package eligibility turns classifications into explicit admit/deny
// decisions for registration and feedback requests. Denial is an expected
// outcome, so it is a structured result rather than an error; only
// malformed input surfaces as an error.
package eligibility

import (
	"fmt"
	"time"

	"club-events/internal/classify"
	"club-events/internal/models"
)

// ReasonCode is the machine-readable cause of a denial.
type ReasonCode string

const (
	ReasonEventNotFound     ReasonCode = "EVENT_NOT_FOUND"
	ReasonEventInactive     ReasonCode = "EVENT_INACTIVE"
	ReasonEventCompleted    ReasonCode = "EVENT_COMPLETED"
	ReasonEventFull         ReasonCode = "EVENT_FULL"
	ReasonAlreadyRegistered ReasonCode = "ALREADY_REGISTERED"
	ReasonEventUpcoming     ReasonCode = "EVENT_UPCOMING"
	ReasonFeedbackClosed    ReasonCode = "FEEDBACK_CLOSED"
)

// Feedback rating bounds, inclusive.
const (
	RatingMin = 1
	RatingMax = 5
)

// Decision is an admit/deny result. Denials carry a reason code and a
// user-facing message with concrete timing; approvals carry the
// classification so the caller can persist derived fields without
// recomputing them.
type Decision struct {
	Allowed        bool                  `json:"allowed"`
	Reason         ReasonCode            `json:"reason,omitempty"`
	Message        string                `json:"message,omitempty"`
	Classification models.Classification `json:"classification"`
}

// RegistrationRequest asks whether a user may register for an event. The
// duplicate check is delegated: the caller looks up its own records and
// passes AlreadyRegistered, the validator never queries storage. A nil
// Event means the lookup found nothing.
type RegistrationRequest struct {
	Event             *models.Event
	AlreadyRegistered bool
}

// FeedbackRequest asks whether a user may leave feedback with the
// proposed rating.
type FeedbackRequest struct {
	Event  *models.Event
	Rating int
}

// Validator answers admission questions on top of a classifier.
type Validator struct {
	Classifier *classify.Classifier
}

func NewValidator(c *classify.Classifier) *Validator {
	return &Validator{Classifier: c}
}

// ValidateRegistration decides whether a registration may proceed. Denial
// checks run in a fixed order and the first failure wins: not found,
// inactive, completed, full, duplicate.
func (v *Validator) ValidateRegistration(req RegistrationRequest, now time.Time) (Decision, error) {
	if req.Event == nil {
		return deny(ReasonEventNotFound, "Event not found.", models.Classification{}), nil
	}

	cl, err := v.Classifier.Classify(*req.Event, now)
	if err != nil {
		return Decision{}, fmt.Errorf("validate registration: %w", err)
	}

	switch {
	case !req.Event.Active:
		return deny(ReasonEventInactive, "This event is no longer active.", cl), nil
	case cl.Status == models.StatusCompleted:
		msg := fmt.Sprintf("Cannot register for completed events. This event took place %s.", cl.TimeDescription)
		return deny(ReasonEventCompleted, msg, cl), nil
	case req.Event.IsFull():
		return deny(ReasonEventFull, "Event is full. No available slots remaining.", cl), nil
	case req.AlreadyRegistered:
		return deny(ReasonAlreadyRegistered, "You are already registered for this event.", cl), nil
	}

	return Decision{Allowed: true, Classification: cl}, nil
}

// ValidateFeedback decides whether feedback may be recorded. Denial
// checks run in a fixed order: not found, still upcoming, window closed.
// The rating bound is checked last and surfaces as an InvalidQueryError,
// not a denial.
func (v *Validator) ValidateFeedback(req FeedbackRequest, now time.Time) (Decision, error) {
	if req.Event == nil {
		return deny(ReasonEventNotFound, "Event not found.", models.Classification{}), nil
	}

	cl, err := v.Classifier.Classify(*req.Event, now)
	if err != nil {
		return Decision{}, fmt.Errorf("validate feedback: %w", err)
	}

	switch {
	case cl.Status == models.StatusUpcoming:
		msg := fmt.Sprintf("Cannot submit feedback for upcoming events. This event is scheduled %s. Please wait until the event happens.", cl.TimeDescription)
		return deny(ReasonEventUpcoming, msg, cl), nil
	case cl.Status == models.StatusCompleted && !cl.CanGiveFeedback:
		window := v.Classifier.Rules().FeedbackWindowDays
		msg := fmt.Sprintf("Feedback period has ended. This event took place %s (more than %d days ago).", cl.TimeDescription, window)
		return deny(ReasonFeedbackClosed, msg, cl), nil
	}

	if req.Rating < RatingMin || req.Rating > RatingMax {
		return Decision{}, &models.InvalidQueryError{
			Field:  "rating",
			Reason: fmt.Sprintf("must be between %d and %d", RatingMin, RatingMax),
		}
	}

	return Decision{Allowed: true, Classification: cl}, nil
}

func deny(reason ReasonCode, message string, cl models.Classification) Decision {
	return Decision{Reason: reason, Message: message, Classification: cl}
}
