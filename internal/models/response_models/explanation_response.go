package response_models

// TripExplanation pairs the persuasive case for a trip with an honest preview
// of what the traveler might regret about it.
type TripExplanation struct {
	Justification string `json:"justification"`
	RegretPreview string `json:"regret_preview"`
}

// TripComparison is a prose comparison of two destinations for one profile.
type TripComparison struct {
	Comparison string `json:"comparison"`
}
