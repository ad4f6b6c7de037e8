package services

import (
	"context"
	"fmt"
	"math"
	"strings"
	"time"

	"go.uber.org/zap"

	"voyageai/internal/models/domain_models"
	"voyageai/internal/models/request_models"
	"voyageai/internal/models/response_models"
	"voyageai/internal/repositories"
)

// Aggregation weights for the confidence score. They sum to 1.0; budget fit
// dominates, timing matters least.
const (
	weightBudget   = 0.25
	weightDNA      = 0.20
	weightWeather  = 0.15
	weightCrowd    = 0.15
	weightCategory = 0.15
	weightSeasonal = 0.10
)

const neutralScore = 5.0

type RecommendationServiceInterface interface {
	CalculateRecommendations(ctx context.Context, prefs request_models.TripPreferences) ([]response_models.Recommendation, error)
	GetRecommendationBreakdown(ctx context.Context, destinationID string, prefs request_models.TripPreferences) (*response_models.RecommendationBreakdown, error)
}

// RecommendationService scores every catalog entry against a preference set.
// Scoring is a pure function of (catalog, preferences); the service keeps no
// per-request state.
type RecommendationService struct {
	destinationRepo repositories.DestinationRepository
	logger          *zap.Logger
}

func NewRecommendationService(destinationRepo repositories.DestinationRepository, logger *zap.Logger) RecommendationServiceInterface {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &RecommendationService{
		destinationRepo: destinationRepo,
		logger:          logger,
	}
}

// CalculateRecommendations returns one scored entry per catalog record, in
// catalog order. Callers sort by confidence as they see fit.
func (r *RecommendationService) CalculateRecommendations(ctx context.Context, prefs request_models.TripPreferences) ([]response_models.Recommendation, error) {
	if err := prefs.Validate(); err != nil {
		return nil, err
	}

	destinations := r.destinationRepo.ListDestinations(ctx)
	recommendations := make([]response_models.Recommendation, 0, len(destinations))

	for _, dest := range destinations {
		scores := r.componentScores(dest, prefs)
		recommendations = append(recommendations, response_models.Recommendation{
			Destination:     dest,
			ConfidenceScore: confidenceScore(scores),
			ComponentScores: scores,
		})
	}

	return recommendations, nil
}

// GetRecommendationBreakdown explains one destination's score: the component
// scores exactly as CalculateRecommendations computes them, plus strengths,
// concerns, and optimization suggestions.
func (r *RecommendationService) GetRecommendationBreakdown(ctx context.Context, destinationID string, prefs request_models.TripPreferences) (*response_models.RecommendationBreakdown, error) {
	if err := prefs.Validate(); err != nil {
		return nil, err
	}

	dest, err := r.destinationRepo.GetDestinationByID(ctx, destinationID)
	if err != nil {
		return nil, err
	}

	scores := r.componentScores(*dest, prefs)

	return &response_models.RecommendationBreakdown{
		ConfidenceScore:         confidenceScore(scores),
		ComponentScores:         scores,
		PrimaryStrengths:        identifyStrengths(scores),
		PotentialConcerns:       identifyConcerns(scores, prefs),
		OptimizationSuggestions: suggestOptimizations(scores, *dest, prefs),
	}, nil
}

func (r *RecommendationService) componentScores(dest domain_models.DestinationRecord, prefs request_models.TripPreferences) response_models.ComponentScores {
	travelStart := prefs.TravelStart()

	return response_models.ComponentScores{
		BudgetScore:   budgetScore(dest.AverageCost, prefs.BudgetMin, prefs.BudgetMax),
		WeatherScore:  weatherScore(dest.WeatherScore, orNeutral(prefs.WeatherPriority), travelStart),
		CrowdScore:    crowdScore(dest.CrowdScore, orNeutral(prefs.CrowdTolerance)),
		DNAMatch:      dnaMatchScore(dest, prefs.TravelDNA),
		CategoryScore: categoryScore(dest.Category, prefs.Interests),
		SeasonalScore: seasonalScore(dest.BestSeasons, travelStart),
	}
}

// budgetScore rewards being comfortably under budget, interpolates inside the
// budget window (10 at min, 6 at max), and decays beyond it. Below budget_min
// the bonus formula can exceed 10; that overshoot is deliberate and absorbed
// by the geometric mean rather than clamped here.
func budgetScore(cost, budgetMin, budgetMax float64) float64 {
	switch {
	case cost <= budgetMin:
		return 8.0 + 2.0*(cost/budgetMin)
	case cost <= budgetMax:
		normalized := (cost - budgetMin) / (budgetMax - budgetMin)
		return 10.0 - normalized*4.0
	default:
		overshoot := cost / budgetMax
		return math.Max(0, 6.0/overshoot)
	}
}

func weatherScore(destWeather, priority float64, travelStart *time.Time) float64 {
	adjusted := destWeather * (0.5 + 0.5*(priority/10.0))

	if travelStart != nil {
		adjusted *= 0.7 + 0.3*seasonalBoost(int(travelStart.Month()))
	}

	return math.Min(10.0, adjusted)
}

// seasonalBoost favors off-season months: peak months dampen the weather
// score, deep off-season months lift it.
func seasonalBoost(month int) float64 {
	switch month {
	case 6, 7, 8, 12:
		return 0.8
	case 4, 5, 9, 10, 11:
		return 1.0
	default:
		return 1.2
	}
}

// crowdScore matches the destination's crowd baseline against the user's
// tolerance: low tolerance weights toward quiet places, high tolerance toward
// busy ones. Tolerance 5 is neutral.
func crowdScore(destCrowd, tolerance float64) float64 {
	inverted := 10.0 - destCrowd

	toleranceFactor := tolerance / 5.0
	var adjusted float64
	if toleranceFactor <= 1.0 {
		adjusted = inverted * (1.0 + (1.0 - toleranceFactor))
	} else {
		adjusted = destCrowd * (toleranceFactor - 1.0)
	}

	return math.Min(10.0, adjusted/2.0)
}

// dnaMatchScore measures similarity between the profile and the destination's
// affinity vector, weighting each dimension by how strongly the user scores
// on it. Neutral 5.0 when either side is missing.
func dnaMatchScore(dest domain_models.DestinationRecord, profile *response_models.TravelDNAProfile) float64 {
	if profile == nil || len(profile.Dimensions) == 0 {
		return neutralScore
	}
	if len(dest.DNAAffinity) == 0 {
		return neutralScore
	}

	weightedSum := 0.0
	totalWeight := 0.0

	for dimension, userScore := range profile.Dimensions {
		destScore, ok := dest.DNAAffinity[dimension]
		if !ok {
			continue
		}

		similarity := 10.0 - math.Abs(userScore-destScore)
		weight := userScore / 10.0

		weightedSum += similarity * weight
		totalWeight += weight
	}

	if totalWeight == 0 {
		return neutralScore
	}
	return weightedSum / totalWeight
}

// categoryInterests maps each destination category to the interest keywords
// that count as a match for it.
func categoryInterests(category domain_models.DestinationCategory) []string {
	switch category {
	case domain_models.CategoryAdventure:
		return []string{"Adventure", "Mountains"}
	case domain_models.CategoryCultural:
		return []string{"History", "Cities", "Culture"}
	case domain_models.CategoryLuxury:
		return []string{"Shopping", "Wellness"}
	case domain_models.CategoryNature:
		return []string{"Beaches", "Mountains", "Nature"}
	case domain_models.CategoryUrban:
		return []string{"Cities", "Food", "Shopping"}
	case domain_models.CategoryBeach:
		return []string{"Beaches", "Wellness"}
	case domain_models.CategoryWellness:
		return []string{"Wellness", "Nature"}
	default:
		return nil
	}
}

func categoryScore(category domain_models.DestinationCategory, interests []string) float64 {
	if len(interests) == 0 {
		return neutralScore
	}

	keywords := categoryInterests(category)
	matches := 0
	for _, interest := range interests {
		for _, keyword := range keywords {
			if strings.EqualFold(interest, keyword) {
				matches++
				break
			}
		}
	}

	return (float64(matches) / float64(len(interests))) * 10.0
}

// seasonalScore rates how well the travel month lines up with the
// destination's best seasons. Adjacency is measured on the circular season
// ring, so Winter and Fall count as neighbors.
func seasonalScore(bestSeasons []domain_models.Season, travelStart *time.Time) float64 {
	if travelStart == nil {
		return neutralScore
	}

	travelSeason := domain_models.SeasonOfMonth(int(travelStart.Month()))

	yearRound := false
	var listed []domain_models.Season
	for _, season := range bestSeasons {
		if season == domain_models.SeasonYearRound {
			yearRound = true
			continue
		}
		if season == travelSeason {
			return 9.0
		}
		listed = append(listed, season)
	}

	if yearRound {
		return 7.0
	}
	if len(listed) == 0 {
		return neutralScore
	}

	order := domain_models.SeasonOrder()
	travelIdx := seasonIndex(order, travelSeason)

	minDistance := len(order)
	for _, season := range listed {
		idx := seasonIndex(order, season)
		if idx < 0 {
			continue
		}
		linear := travelIdx - idx
		if linear < 0 {
			linear = -linear
		}
		circular := len(order) - linear
		if circular < linear {
			linear = circular
		}
		if linear < minDistance {
			minDistance = linear
		}
	}

	if minDistance == 1 {
		return 6.0
	}
	return 3.0
}

func seasonIndex(order []domain_models.Season, season domain_models.Season) int {
	for i, s := range order {
		if s == season {
			return i
		}
	}
	return -1
}

// confidenceScore folds the six components into a 0-100 confidence value: a
// weighted geometric mean (each component floored at 0.1 to keep the log
// defined), scaled to 0-100, then passed through the calibration curve.
func confidenceScore(scores response_models.ComponentScores) float64 {
	weighted := []struct {
		score  float64
		weight float64
	}{
		{scores.BudgetScore, weightBudget},
		{scores.DNAMatch, weightDNA},
		{scores.WeatherScore, weightWeather},
		{scores.CrowdScore, weightCrowd},
		{scores.CategoryScore, weightCategory},
		{scores.SeasonalScore, weightSeasonal},
	}

	logSum := 0.0
	weightSum := 0.0
	for _, entry := range weighted {
		score := math.Max(0.1, entry.score)
		logSum += entry.weight * math.Log(score)
		weightSum += entry.weight
	}

	confidence := math.Exp(logSum/weightSum) * 10.0
	confidence = calibrate(confidence)

	confidence = math.Min(100, math.Max(0, confidence))
	return math.Round(confidence*10) / 10
}

// calibrate applies the piecewise confidence curve: compress excellent scores
// toward 100, leave good scores alone, and penalize mediocre and poor ones.
func calibrate(score float64) float64 {
	switch {
	case score >= 85:
		return score + (100-score)*0.3
	case score >= 70:
		return score
	case score >= 50:
		return score * 0.9
	default:
		return score * 0.7
	}
}

const strengthThreshold = 8.0
const concernThreshold = 4.0

func identifyStrengths(scores response_models.ComponentScores) []string {
	var strengths []string

	if scores.BudgetScore >= strengthThreshold {
		strengths = append(strengths, "Excellent budget fit")
	}
	if scores.DNAMatch >= strengthThreshold {
		strengths = append(strengths, "Perfect personality match")
	}
	if scores.WeatherScore >= strengthThreshold {
		strengths = append(strengths, "Ideal weather conditions")
	}
	if scores.CrowdScore >= strengthThreshold {
		strengths = append(strengths, "Comfortable crowd levels")
	}
	if scores.CategoryScore >= strengthThreshold {
		strengths = append(strengths, "Matches your interests")
	}
	if scores.SeasonalScore >= strengthThreshold {
		strengths = append(strengths, "Great time of year to visit")
	}

	return strengths
}

func identifyConcerns(scores response_models.ComponentScores, prefs request_models.TripPreferences) []string {
	var concerns []string

	if scores.BudgetScore <= concernThreshold {
		concerns = append(concerns, "May exceed your budget range")
	}
	if scores.CrowdScore <= concernThreshold {
		if orNeutral(prefs.CrowdTolerance) < 5 {
			concerns = append(concerns, "Potentially crowded during your travel dates")
		} else {
			concerns = append(concerns, "May be quieter than preferred")
		}
	}
	if scores.SeasonalScore <= concernThreshold {
		concerns = append(concerns, "Not ideal season for this destination")
	}

	return concerns
}

func suggestOptimizations(scores response_models.ComponentScores, dest domain_models.DestinationRecord, prefs request_models.TripPreferences) []string {
	var optimizations []string

	if scores.BudgetScore < 7.0 && dest.AverageCost > prefs.BudgetMax {
		savings := dest.AverageCost - prefs.BudgetMax
		optimizations = append(optimizations,
			fmt.Sprintf("Consider traveling in shoulder season to save ~$%.0f", savings))
	}

	if scores.SeasonalScore < 7.0 {
		optimizations = append(optimizations,
			fmt.Sprintf("For optimal experience, visit during %s", joinSeasons(dest.BestSeasons)))
	}

	if scores.CrowdScore < 6.0 && orNeutral(prefs.CrowdTolerance) < 5 {
		optimizations = append(optimizations, "Consider early morning visits to popular attractions")
	}

	return optimizations
}

func joinSeasons(seasons []domain_models.Season) string {
	parts := make([]string, 0, len(seasons))
	for _, season := range seasons {
		parts = append(parts, string(season))
	}
	return strings.Join(parts, ", ")
}

// orNeutral substitutes the neutral midpoint for unset 1-10 sliders.
func orNeutral(value float64) float64 {
	if value == 0 {
		return neutralScore
	}
	return value
}
