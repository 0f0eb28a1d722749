package config

import (
	"time"

	"club-events/internal/classify"
)

// Config is the root application configuration.
type Config struct {
	Rules   RulesConfig   `yaml:"rules"`
	Listing ListingConfig `yaml:"listing"`
	Events  EventsConfig  `yaml:"events"`
}

// RulesConfig holds the classification rules.
type RulesConfig struct {
	FeedbackWindowDays int           `yaml:"feedback_window_days" env:"FEEDBACK_WINDOW_DAYS" env-default:"7"`
	OngoingGrace       time.Duration `yaml:"ongoing_grace"        env:"ONGOING_GRACE"        env-default:"0s"`
	Timezone           string        `yaml:"timezone"             env:"EVENT_TIMEZONE"       env-default:"UTC"`
}

// ListingConfig holds event listing defaults.
type ListingConfig struct {
	DefaultLimit  int  `yaml:"default_limit"  env:"LISTING_DEFAULT_LIMIT"  env-default:"20"`
	SkipMalformed bool `yaml:"skip_malformed" env:"LISTING_SKIP_MALFORMED" env-default:"false"`
}

// EventsConfig holds the event catalog source.
type EventsConfig struct {
	File string `yaml:"file" env:"EVENTS_FILE" env-default:"testdata/events.json"`
}

// ClassifierRules converts the rules section into classifier rules,
// resolving the configured timezone name.
func (c *Config) ClassifierRules() (classify.Rules, error) {
	loc, err := classify.ParseTimezone(c.Rules.Timezone)
	if err != nil {
		return classify.Rules{}, err
	}
	return classify.Rules{
		FeedbackWindowDays: c.Rules.FeedbackWindowDays,
		OngoingGrace:       c.Rules.OngoingGrace,
		Location:           loc,
	}, nil
}
