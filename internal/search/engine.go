// Package search filters, searches and ranks events against a point in
// time. Every operation classifies events before matching so the filter
// decision and the resulting order come from the same reference clock.
package search

import (
	"fmt"
	"strings"
	"time"

	"club-events/internal/classify"
	"club-events/internal/models"
)

// FilterType selects which slice of the timeline List returns.
type FilterType string

const (
	FilterUpcoming  FilterType = "UPCOMING"
	FilterToday     FilterType = "TODAY"
	FilterCompleted FilterType = "COMPLETED"
	FilterAll       FilterType = "ALL"
)

// IsValid reports whether ft is a recognized filter. The empty string
// is accepted and treated as FilterAll.
func (ft FilterType) IsValid() bool {
	switch ft {
	case FilterUpcoming, FilterToday, FilterCompleted, FilterAll, "":
		return true
	}
	return false
}

// Filter narrows a listing. The zero value imposes no constraint.
type Filter struct {
	// Type keeps events whose classification falls in the named slice of
	// the timeline. FilterUpcoming includes ongoing events so same-day
	// events do not vanish from the listing before they start.
	Type FilterType
	// Category keeps events whose category matches, ignoring case.
	Category string
	// Limit truncates the ranked listing when positive.
	Limit int
}

// Result pairs an event with its classification at the reference time.
type Result struct {
	Event          models.Event          `json:"event"`
	Classification models.Classification `json:"classification"`
}

// Engine lists, searches and resolves events. It holds no mutable state
// and is safe for concurrent use.
type Engine struct {
	Classifier *classify.Classifier
	// SkipMalformed drops events that fail classification instead of
	// failing the whole operation.
	SkipMalformed bool
}

// NewEngine returns an Engine backed by the given classifier.
func NewEngine(classifier *classify.Classifier, skipMalformed bool) *Engine {
	return &Engine{Classifier: classifier, SkipMalformed: skipMalformed}
}

// List returns the active events admitted by the filter, ranked for
// display. Inactive events are never listed. An unrecognized filter
// type is reported as a *models.InvalidQueryError.
func (e *Engine) List(events []models.Event, f Filter, now time.Time) ([]Result, error) {
	if !f.Type.IsValid() {
		return nil, &models.InvalidQueryError{
			Field:  "filter type",
			Reason: fmt.Sprintf("unknown value %q", string(f.Type)),
		}
	}

	category := strings.ToLower(strings.TrimSpace(f.Category))

	var out []Result
	for _, ev := range events {
		if !ev.Active {
			continue
		}
		cl, err := e.Classifier.Classify(ev, now)
		if err != nil {
			if e.SkipMalformed {
				continue
			}
			return nil, fmt.Errorf("list events: %w", err)
		}
		if !admits(f.Type, cl) {
			continue
		}
		if category != "" && strings.ToLower(ev.Category) != category {
			continue
		}
		out = append(out, Result{Event: ev, Classification: cl})
	}

	out = Rank(out)
	if f.Limit > 0 && len(out) > f.Limit {
		out = out[:f.Limit]
	}
	return out, nil
}

// Search returns the active events matching every whitespace-separated
// token of the query, ranked for display. A token matches when it
// appears in the event name, description or category, ignoring case.
// A blank query matches nothing.
func (e *Engine) Search(events []models.Event, query string, now time.Time) ([]Result, error) {
	tokens := strings.Fields(strings.ToLower(query))
	if len(tokens) == 0 {
		return nil, nil
	}

	var out []Result
	for _, ev := range events {
		if !ev.Active {
			continue
		}
		cl, err := e.Classifier.Classify(ev, now)
		if err != nil {
			if e.SkipMalformed {
				continue
			}
			return nil, fmt.Errorf("search events: %w", err)
		}
		if !matchesTokens(ev, tokens) {
			continue
		}
		out = append(out, Result{Event: ev, Classification: cl})
	}

	return Rank(out), nil
}

// admits reports whether a classification passes the type filter.
func admits(ft FilterType, cl models.Classification) bool {
	switch ft {
	case FilterUpcoming:
		return cl.Status == models.StatusUpcoming || cl.Status == models.StatusOngoing
	case FilterToday:
		return cl.IsToday
	case FilterCompleted:
		return cl.Status == models.StatusCompleted
	default:
		return true
	}
}

// matchesTokens reports whether every token appears in at least one of
// the event's searchable fields.
func matchesTokens(ev models.Event, tokens []string) bool {
	name := strings.ToLower(ev.Name)
	description := strings.ToLower(ev.Description)
	category := strings.ToLower(ev.Category)

	for _, token := range tokens {
		if strings.Contains(name, token) ||
			strings.Contains(description, token) ||
			strings.Contains(category, token) {
			continue
		}
		return false
	}
	return true
}
