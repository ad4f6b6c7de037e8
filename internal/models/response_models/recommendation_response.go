package response_models

import "voyageai/internal/models/domain_models"

// ComponentScores are the six sub-scores feeding the confidence score, each
// on a 0-10 scale. The budget score may exceed 10 for destinations far under
// budget; the aggregation tolerates that, so it is not clamped here.
type ComponentScores struct {
	BudgetScore   float64 `json:"budget_score"`
	WeatherScore  float64 `json:"weather_score"`
	CrowdScore    float64 `json:"crowd_score"`
	DNAMatch      float64 `json:"dna_match"`
	CategoryScore float64 `json:"category_score"`
	SeasonalScore float64 `json:"seasonal_score"`
}

// Recommendation is one scored catalog entry. Recomputed on every request,
// never cached across preference changes.
type Recommendation struct {
	Destination     domain_models.DestinationRecord `json:"destination"`
	ConfidenceScore float64                         `json:"confidence_score"`
	ComponentScores
}

// RecommendationBreakdown explains a single destination's score.
type RecommendationBreakdown struct {
	ConfidenceScore         float64         `json:"confidence_score"`
	ComponentScores         ComponentScores `json:"component_scores"`
	PrimaryStrengths        []string        `json:"primary_strengths"`
	PotentialConcerns       []string        `json:"potential_concerns"`
	OptimizationSuggestions []string        `json:"optimization_suggestions"`
}

// CatalogStats summarizes the destination catalog.
type CatalogStats struct {
	TotalDestinations int                                           `json:"total_destinations"`
	ByCategory        map[domain_models.DestinationCategory]int     `json:"by_category"`
	AvgCostByCategory map[domain_models.DestinationCategory]float64 `json:"avg_cost_by_category"`
	CostMin           float64                                       `json:"cost_min"`
	CostMax           float64                                       `json:"cost_max"`
	CostAvg           float64                                       `json:"cost_avg"`
}
