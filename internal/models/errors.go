package models

import (
	"errors"
	"fmt"
	"strings"
)

// ErrEventNotFound is returned when a name or ID resolves to no event.
var ErrEventNotFound = errors.New("event not found")

// MalformedEventError reports a record the engine refuses to classify,
// typically a missing or unparseable scheduled time. The engine never
// guesses a timestamp.
type MalformedEventError struct {
	EventID string
	Reason  string
}

func (e *MalformedEventError) Error() string {
	if e.EventID == "" {
		return fmt.Sprintf("malformed event: %s", e.Reason)
	}
	return fmt.Sprintf("malformed event %s: %s", e.EventID, e.Reason)
}

// InvalidQueryError reports caller input outside the accepted domain,
// such as an out-of-range rating or an unknown filter type.
type InvalidQueryError struct {
	Field  string
	Reason string
}

func (e *InvalidQueryError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// AmbiguousNameError reports that a name query matched several events, so
// the caller has to disambiguate. Names holds the candidates in ranked
// order.
type AmbiguousNameError struct {
	Query string
	Names []string
}

func (e *AmbiguousNameError) Error() string {
	return fmt.Sprintf("multiple events match %q: %s", e.Query, strings.Join(e.Names, ", "))
}
