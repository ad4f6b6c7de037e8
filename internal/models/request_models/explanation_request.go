package request_models

import "voyageai/internal/models/response_models"

// ExplanationRequest carries the optional travel DNA profile the explanation
// is personalized with. Without it the text speaks to a generic traveler.
type ExplanationRequest struct {
	TravelDNA *response_models.TravelDNAProfile `json:"travel_dna"`
}
