package config

import (
	"fmt"

	"club-events/internal/classify"
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if c.Rules.FeedbackWindowDays < 0 {
		return fmt.Errorf("rules.feedback_window_days must be >= 0 (got %d)", c.Rules.FeedbackWindowDays)
	}
	if c.Rules.OngoingGrace < 0 {
		return fmt.Errorf("rules.ongoing_grace must be >= 0 (got %v)", c.Rules.OngoingGrace)
	}
	if _, err := classify.ParseTimezone(c.Rules.Timezone); err != nil {
		return fmt.Errorf("rules.timezone: %w", err)
	}

	if c.Listing.DefaultLimit < 0 {
		return fmt.Errorf("listing.default_limit must be >= 0 (got %d)", c.Listing.DefaultLimit)
	}

	if c.Events.File == "" {
		return fmt.Errorf("events.file must not be empty")
	}

	return nil
}
