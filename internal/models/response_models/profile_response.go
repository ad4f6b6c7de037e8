package response_models

import "voyageai/internal/models/domain_models"

// TravelDNAProfile is the derived result of a completed quiz. It is built
// once per analysis and never mutated; a new quiz run produces a new profile.
type TravelDNAProfile struct {
	PersonalityType    domain_models.TravelPersonality           `json:"personality_type"`
	Dimensions         map[domain_models.TravelDimension]float64 `json:"dimensions"`
	MatchScore         float64                                   `json:"match_score"`
	PersonalityDetails domain_models.PersonalityDetails          `json:"personality_details"`
}
