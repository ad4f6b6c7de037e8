package request_models

import (
	"time"

	"voyageai/internal/models/response_models"
	"voyageai/pkg/utils"
)

const dateLayout = "2006-01-02"

// TripPreferences describes one recommendation request. A fresh value is
// built per request; nothing here is persisted.
type TripPreferences struct {
	TravelStyle     string                            `json:"travel_style,omitempty"`
	BudgetMin       float64                           `json:"budget_min"`
	BudgetMax       float64                           `json:"budget_max"`
	StartDate       string                            `json:"start_date,omitempty"`
	EndDate         string                            `json:"end_date,omitempty"`
	Duration        string                            `json:"duration,omitempty"`
	Interests       []string                          `json:"interests,omitempty"`
	WeatherPriority float64                           `json:"weather_priority,omitempty"`
	CrowdTolerance  float64                           `json:"crowd_tolerance,omitempty"`
	Flexibility     float64                           `json:"flexibility,omitempty"`
	TravelDNA       *response_models.TravelDNAProfile `json:"travel_dna,omitempty"`
}

// Validate rejects preference ranges the engine must not score: negative
// budgets, inverted budget ranges, and inverted date ranges.
func (p TripPreferences) Validate() error {
	if p.BudgetMin < 0 || p.BudgetMax < 0 {
		return utils.ErrMalformedPreferences
	}
	if p.BudgetMin > p.BudgetMax {
		return utils.ErrMalformedPreferences
	}

	start, err := p.parseDate(p.StartDate)
	if err != nil {
		return utils.ErrMalformedPreferences
	}
	end, err := p.parseDate(p.EndDate)
	if err != nil {
		return utils.ErrMalformedPreferences
	}
	if start != nil && end != nil && end.Before(*start) {
		return utils.ErrMalformedPreferences
	}

	return nil
}

// TravelStart returns the parsed start date, or nil when no dates were given.
// Validate is expected to have run first; unparseable dates read as absent.
func (p TripPreferences) TravelStart() *time.Time {
	start, err := p.parseDate(p.StartDate)
	if err != nil {
		return nil
	}
	return start
}

func (p TripPreferences) parseDate(value string) (*time.Time, error) {
	if value == "" {
		return nil, nil
	}
	t, err := time.Parse(dateLayout, value)
	if err != nil {
		return nil, err
	}
	return &t, nil
}
