package search

import (
	"fmt"
	"strings"
	"time"

	"club-events/internal/models"
)

// ResolveByName finds the single active event a free-text name refers
// to. The name is matched like a search query. When several events
// match, an exact name match wins if there is exactly one; otherwise
// the candidates are reported through a *models.AmbiguousNameError so
// the caller can ask the user to pick.
func (e *Engine) ResolveByName(events []models.Event, name string, now time.Time) (Result, error) {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return Result{}, &models.InvalidQueryError{Field: "name", Reason: "must not be empty"}
	}

	matches, err := e.Search(events, trimmed, now)
	if err != nil {
		return Result{}, fmt.Errorf("resolve event %q: %w", trimmed, err)
	}

	switch len(matches) {
	case 0:
		return Result{}, fmt.Errorf("resolve event %q: %w", trimmed, models.ErrEventNotFound)
	case 1:
		return matches[0], nil
	}

	var exact []Result
	for _, m := range matches {
		if strings.EqualFold(m.Event.Name, trimmed) {
			exact = append(exact, m)
		}
	}
	if len(exact) == 1 {
		return exact[0], nil
	}

	names := make([]string, 0, len(matches))
	for _, m := range matches {
		names = append(names, m.Event.Name)
	}
	return Result{}, &models.AmbiguousNameError{Query: trimmed, Names: names}
}
