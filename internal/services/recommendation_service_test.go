package services

import (
	"context"
	"errors"
	"math"
	"strings"
	"testing"
	"time"

	"go.uber.org/zap"

	"voyageai/internal/models/domain_models"
	"voyageai/internal/models/request_models"
	"voyageai/internal/models/response_models"
	"voyageai/pkg/utils"
)

type stubDestinationRepo struct {
	records []domain_models.DestinationRecord
}

func (s *stubDestinationRepo) ListDestinations(_ context.Context) []domain_models.DestinationRecord {
	out := make([]domain_models.DestinationRecord, len(s.records))
	copy(out, s.records)
	return out
}

func (s *stubDestinationRepo) GetDestinationByID(_ context.Context, id string) (*domain_models.DestinationRecord, error) {
	for i := range s.records {
		if s.records[i].ID == id {
			return &s.records[i], nil
		}
	}
	return nil, utils.ErrDestinationNotFound
}

func testDestination() domain_models.DestinationRecord {
	return domain_models.DestinationRecord{
		ID:           "test_dest",
		Name:         "Test Destination",
		Country:      "Testland",
		Category:     domain_models.CategoryAdventure,
		Description:  "A place for tests",
		AverageCost:  2000,
		BestSeasons:  []domain_models.Season{domain_models.SeasonSummer},
		TravelTime:   10,
		Highlights:   []string{"Test Peak", "Test Gorge"},
		WeatherScore: 8,
		CrowdScore:   4,
		DNAAffinity: map[domain_models.TravelDimension]float64{
			domain_models.DimensionAdventure: 9.5,
			domain_models.DimensionNature:    9.0,
		},
	}
}

func approx(t *testing.T, name string, got, want float64) {
	t.Helper()
	if math.Abs(got-want) > 1e-6 {
		t.Fatalf("%s: got %v, want %v", name, got, want)
	}
}

func TestBudgetScore(t *testing.T) {
	// Under budget: bonus scales with how close the cost sits to the floor.
	approx(t, "at floor", budgetScore(1000, 1000, 3000), 10)
	approx(t, "half of floor", budgetScore(500, 1000, 3000), 9)

	// Inside the window: linear from 10 down to 6.
	approx(t, "midpoint", budgetScore(2000, 1000, 3000), 8)
	approx(t, "at ceiling", budgetScore(3000, 1000, 3000), 6)

	// Over budget: decays with the overshoot ratio.
	approx(t, "over budget", budgetScore(3500, 1000, 3000), 6.0/(3500.0/3000.0))
	if got := budgetScore(30000, 1000, 3000); got >= 1 {
		t.Fatalf("extreme overshoot should approach zero, got %v", got)
	}
}

func TestBudgetScoreMonotonicAboveFloor(t *testing.T) {
	prev := math.Inf(1)
	for cost := 1000.0; cost <= 6000; cost += 100 {
		score := budgetScore(cost, 1000, 3000)
		if score > prev {
			t.Fatalf("budget score rose from %v to %v at cost %v", prev, score, cost)
		}
		prev = score
	}
}

func TestWeatherScore(t *testing.T) {
	approx(t, "full priority, no dates", weatherScore(8, 10, nil), 8)
	approx(t, "neutral priority, no dates", weatherScore(8, 5, nil), 6)

	july := time.Date(2026, 7, 15, 0, 0, 0, 0, time.UTC)
	approx(t, "peak month dampens", weatherScore(8, 10, &july), 8*(0.7+0.3*0.8))

	february := time.Date(2026, 2, 15, 0, 0, 0, 0, time.UTC)
	approx(t, "off-season lifts", weatherScore(8, 10, &february), 8*(0.7+0.3*1.2))

	if got := weatherScore(10, 10, &february); got > 10 {
		t.Fatalf("weather score exceeded cap: %v", got)
	}
}

func TestCrowdScore(t *testing.T) {
	approx(t, "low tolerance, busy place", crowdScore(8, 2), (10-8)*(1+(1-0.4))/2)
	approx(t, "neutral tolerance", crowdScore(3, 5), 3.5)
	approx(t, "high tolerance, busy place", crowdScore(8, 10), 4)

	if got := crowdScore(0, 1); got > 10 {
		t.Fatalf("crowd score exceeded cap: %v", got)
	}
}

func TestDNAMatchScore(t *testing.T) {
	dest := testDestination()

	approx(t, "no profile", dnaMatchScore(dest, nil), 5)
	approx(t, "empty dimensions", dnaMatchScore(dest, &response_models.TravelDNAProfile{}), 5)

	profile := &response_models.TravelDNAProfile{
		Dimensions: map[domain_models.TravelDimension]float64{
			domain_models.DimensionAdventure: 10,
		},
	}
	approx(t, "single dimension", dnaMatchScore(dest, profile), 10-math.Abs(10-9.5))
}

func TestCategoryScore(t *testing.T) {
	approx(t, "no interests", categoryScore(domain_models.CategoryAdventure, nil), 5)
	approx(t, "full match", categoryScore(domain_models.CategoryAdventure, []string{"Adventure"}), 10)
	approx(t, "half match", categoryScore(domain_models.CategoryAdventure, []string{"Adventure", "Food"}), 5)
	approx(t, "urban food", categoryScore(domain_models.CategoryUrban, []string{"Food", "Cities"}), 10)
	approx(t, "no match", categoryScore(domain_models.CategoryBeach, []string{"Mountains"}), 0)
}

func TestSeasonalScore(t *testing.T) {
	july := time.Date(2026, 7, 15, 0, 0, 0, 0, time.UTC)
	summer := []domain_models.Season{domain_models.SeasonSummer}
	fall := []domain_models.Season{domain_models.SeasonFall}
	winter := []domain_models.Season{domain_models.SeasonWinter}
	yearRound := []domain_models.Season{domain_models.SeasonYearRound}

	approx(t, "no dates", seasonalScore(summer, nil), 5)
	approx(t, "in season", seasonalScore(summer, &july), 9)
	approx(t, "adjacent season", seasonalScore(fall, &july), 6)
	approx(t, "opposite season", seasonalScore(winter, &july), 3)
	approx(t, "year round", seasonalScore(yearRound, &july), 7)

	// Winter and Fall are neighbors on the circular season ring.
	january := time.Date(2026, 1, 15, 0, 0, 0, 0, time.UTC)
	approx(t, "circular adjacency", seasonalScore(fall, &january), 6)
}

func TestCalibrationCurveMonotonic(t *testing.T) {
	samples := []float64{49.9, 50, 50.1, 69.9, 70, 70.1, 84.9, 85, 85.1, 99}

	prev := -1.0
	for _, raw := range samples {
		got := calibrate(raw)
		if got < prev {
			t.Fatalf("calibration curve decreased: calibrate(%v) = %v < %v", raw, got, prev)
		}
		prev = got
	}

	approx(t, "poor tier", calibrate(40), 28)
	approx(t, "mediocre tier", calibrate(60), 54)
	approx(t, "good tier", calibrate(75), 75)
	approx(t, "excellent tier", calibrate(90), 93)
}

func TestConfidenceScoreBounds(t *testing.T) {
	allNeutral := response_models.ComponentScores{
		BudgetScore: 5, WeatherScore: 5, CrowdScore: 5,
		DNAMatch: 5, CategoryScore: 5, SeasonalScore: 5,
	}
	// Geometric mean of equal values is the value itself; 50 then calibrates
	// down into the mediocre tier.
	approx(t, "all neutral", confidenceScore(allNeutral), 45)

	perfect := response_models.ComponentScores{
		BudgetScore: 10, WeatherScore: 10, CrowdScore: 10,
		DNAMatch: 10, CategoryScore: 10, SeasonalScore: 10,
	}
	approx(t, "all perfect", confidenceScore(perfect), 100)

	floor := response_models.ComponentScores{}
	if got := confidenceScore(floor); got < 0 || got > 100 {
		t.Fatalf("confidence %v outside [0,100]", got)
	}
}

func TestCalculateRecommendations(t *testing.T) {
	repo := &stubDestinationRepo{records: []domain_models.DestinationRecord{testDestination()}}
	svc := NewRecommendationService(repo, zap.NewNop())

	prefs := request_models.TripPreferences{
		BudgetMin: 1000,
		BudgetMax: 3000,
		StartDate: "2026-07-01",
		EndDate:   "2026-07-14",
		Interests: []string{"Adventure"},
	}

	recommendations, err := svc.CalculateRecommendations(context.Background(), prefs)
	if err != nil {
		t.Fatalf("CalculateRecommendations: %v", err)
	}
	if len(recommendations) != 1 {
		t.Fatalf("expected 1 recommendation, got %d", len(recommendations))
	}

	rec := recommendations[0]
	if rec.ConfidenceScore < 0 || rec.ConfidenceScore > 100 {
		t.Fatalf("confidence %v outside [0,100]", rec.ConfidenceScore)
	}
	approx(t, "budget component", rec.BudgetScore, 8)
	approx(t, "seasonal component", rec.SeasonalScore, 9)
	approx(t, "category component", rec.CategoryScore, 10)
}

func TestCalculateRecommendationsRejectsMalformedPreferences(t *testing.T) {
	repo := &stubDestinationRepo{records: []domain_models.DestinationRecord{testDestination()}}
	svc := NewRecommendationService(repo, zap.NewNop())

	cases := []request_models.TripPreferences{
		{BudgetMin: -1, BudgetMax: 100},
		{BudgetMin: 500, BudgetMax: 100},
		{StartDate: "2026-07-14", EndDate: "2026-07-01"},
		{StartDate: "not a date"},
	}
	for i, prefs := range cases {
		if _, err := svc.CalculateRecommendations(context.Background(), prefs); !errors.Is(err, utils.ErrMalformedPreferences) {
			t.Fatalf("case %d: expected ErrMalformedPreferences, got %v", i, err)
		}
	}
}

func TestGetRecommendationBreakdown(t *testing.T) {
	expensive := testDestination()
	expensive.ID = "expensive"
	expensive.AverageCost = 9000

	repo := &stubDestinationRepo{records: []domain_models.DestinationRecord{expensive}}
	svc := NewRecommendationService(repo, zap.NewNop())

	prefs := request_models.TripPreferences{
		BudgetMin:      1000,
		BudgetMax:      3000,
		StartDate:      "2026-01-10",
		EndDate:        "2026-01-20",
		CrowdTolerance: 3,
	}

	breakdown, err := svc.GetRecommendationBreakdown(context.Background(), "expensive", prefs)
	if err != nil {
		t.Fatalf("GetRecommendationBreakdown: %v", err)
	}

	approx(t, "budget component", breakdown.ComponentScores.BudgetScore, 6.0/(9000.0/3000.0))

	if !containsString(breakdown.PotentialConcerns, "May exceed your budget range") {
		t.Fatalf("missing budget concern: %v", breakdown.PotentialConcerns)
	}
	if !containsString(breakdown.PotentialConcerns, "Not ideal season for this destination") {
		t.Fatalf("missing seasonal concern: %v", breakdown.PotentialConcerns)
	}

	wantSavings := "Consider traveling in shoulder season to save ~$6000"
	if !containsString(breakdown.OptimizationSuggestions, wantSavings) {
		t.Fatalf("missing savings suggestion %q: %v", wantSavings, breakdown.OptimizationSuggestions)
	}
	if !containsPrefix(breakdown.OptimizationSuggestions, "For optimal experience, visit during") {
		t.Fatalf("missing seasonal suggestion: %v", breakdown.OptimizationSuggestions)
	}
}

func TestBreakdownMatchesRecommendationComponents(t *testing.T) {
	repo := &stubDestinationRepo{records: []domain_models.DestinationRecord{testDestination()}}
	svc := NewRecommendationService(repo, zap.NewNop())

	prefs := request_models.TripPreferences{
		BudgetMin:       1000,
		BudgetMax:       3000,
		StartDate:       "2026-07-01",
		EndDate:         "2026-07-14",
		Interests:       []string{"Adventure"},
		WeatherPriority: 8,
		CrowdTolerance:  3,
		TravelDNA: &response_models.TravelDNAProfile{
			Dimensions: map[domain_models.TravelDimension]float64{
				domain_models.DimensionAdventure: 10,
				domain_models.DimensionNature:    7,
			},
		},
	}

	recommendations, err := svc.CalculateRecommendations(context.Background(), prefs)
	if err != nil {
		t.Fatalf("CalculateRecommendations: %v", err)
	}
	breakdown, err := svc.GetRecommendationBreakdown(context.Background(), "test_dest", prefs)
	if err != nil {
		t.Fatalf("GetRecommendationBreakdown: %v", err)
	}

	rec := recommendations[0]
	approx(t, "budget", breakdown.ComponentScores.BudgetScore, rec.BudgetScore)
	approx(t, "weather", breakdown.ComponentScores.WeatherScore, rec.WeatherScore)
	approx(t, "crowd", breakdown.ComponentScores.CrowdScore, rec.CrowdScore)
	approx(t, "dna", breakdown.ComponentScores.DNAMatch, rec.DNAMatch)
	approx(t, "category", breakdown.ComponentScores.CategoryScore, rec.CategoryScore)
	approx(t, "seasonal", breakdown.ComponentScores.SeasonalScore, rec.SeasonalScore)
	approx(t, "confidence", breakdown.ConfidenceScore, rec.ConfidenceScore)
}

func TestGetRecommendationBreakdownUnknownDestination(t *testing.T) {
	repo := &stubDestinationRepo{records: []domain_models.DestinationRecord{testDestination()}}
	svc := NewRecommendationService(repo, zap.NewNop())

	_, err := svc.GetRecommendationBreakdown(context.Background(), "nope", request_models.TripPreferences{BudgetMax: 1000})
	if !errors.Is(err, utils.ErrDestinationNotFound) {
		t.Fatalf("expected ErrDestinationNotFound, got %v", err)
	}
}

func containsString(list []string, want string) bool {
	for _, s := range list {
		if s == want {
			return true
		}
	}
	return false
}

func containsPrefix(list []string, prefix string) bool {
	for _, s := range list {
		if strings.HasPrefix(s, prefix) {
			return true
		}
	}
	return false
}
