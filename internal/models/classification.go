package models

// Classification is the derived temporal and eligibility annotation for
// one event at one instant. It is computed fresh per query and never
// persisted; identical inputs always produce an identical Classification.
type Classification struct {
	Status          Status `json:"status"`
	IsToday         bool   `json:"is_today"`
	DaysDelta       int    `json:"days_delta"`
	TimeDescription string `json:"time_description"`
	CanRegister     bool   `json:"can_register"`
	CanGiveFeedback bool   `json:"can_give_feedback"`
}
