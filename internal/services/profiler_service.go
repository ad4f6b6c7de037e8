package services

import (
	"fmt"
	"math"
	"strconv"

	"go.uber.org/zap"

	"voyageai/internal/models/domain_models"
	"voyageai/internal/models/response_models"
	"voyageai/pkg/utils"
)

const choicePoints = 9.0

type ProfilerServiceInterface interface {
	GetQuizQuestions() []domain_models.QuizQuestion
	AnalyzeResponses(responses map[string]any) (*response_models.TravelDNAProfile, error)
	GetPersonalityInsights(personality domain_models.TravelPersonality) (domain_models.PersonalityDetails, error)
}

// ProfilerService maps quiz answers to a point in dimension space and
// classifies it against the archetype centroids. It holds only static tables
// fixed at construction; every analysis is independent.
type ProfilerService struct {
	questions []domain_models.QuizQuestion
	byID      map[string]domain_models.QuizQuestion
	centroids map[domain_models.TravelPersonality]map[domain_models.TravelDimension]float64
	insights  map[domain_models.TravelPersonality]domain_models.PersonalityDetails
	logger    *zap.Logger
}

// NewProfilerService validates the question table and builds the profiler.
// A broken option/dimension coupling is a startup failure.
func NewProfilerService(questions []domain_models.QuizQuestion, logger *zap.Logger) (ProfilerServiceInterface, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	byID := make(map[string]domain_models.QuizQuestion, len(questions))
	for _, q := range questions {
		if err := q.Validate(); err != nil {
			return nil, fmt.Errorf("invalid quiz question table: %w", err)
		}
		if _, exists := byID[q.ID]; exists {
			return nil, fmt.Errorf("invalid quiz question table: duplicate question id %q", q.ID)
		}
		byID[q.ID] = q
	}

	return &ProfilerService{
		questions: questions,
		byID:      byID,
		centroids: domain_models.PersonalityCentroids(),
		insights:  domain_models.PersonalityInsights(),
		logger:    logger,
	}, nil
}

// GetQuizQuestions returns the assessment in its fixed order.
func (p *ProfilerService) GetQuizQuestions() []domain_models.QuizQuestion {
	out := make([]domain_models.QuizQuestion, len(p.questions))
	copy(out, p.questions)
	return out
}

// AnalyzeResponses derives a travel DNA profile from raw quiz answers.
// Unknown question ids are skipped; an answer that does not match any defined
// option is skipped too, so one bad entry never corrupts the other
// dimensions. The result is deterministic for a given response set.
func (p *ProfilerService) AnalyzeResponses(responses map[string]any) (*response_models.TravelDNAProfile, error) {
	if len(responses) == 0 {
		return nil, utils.ErrEmptyQuizResponses
	}

	scores := make(map[domain_models.TravelDimension]float64, 7)
	counts := make(map[domain_models.TravelDimension]int, 7)
	for _, dim := range domain_models.AllDimensions() {
		scores[dim] = 0
		counts[dim] = 0
	}

	for questionID, answer := range responses {
		question, ok := p.byID[questionID]
		if !ok {
			p.logger.Warn("skipping answer for unknown question", zap.String("question_id", questionID))
			continue
		}

		if err := p.scoreAnswer(question, answer, scores, counts); err != nil {
			p.logger.Warn("skipping invalid quiz answer",
				zap.String("question_id", questionID),
				zap.Error(err))
		}
	}

	for dim, count := range counts {
		if count > 0 {
			scores[dim] = scores[dim] / float64(count)
		}
	}

	normalizeDimensions(scores)

	personality := p.closestPersonality(scores)
	matchScore := p.matchScore(scores, personality)

	return &response_models.TravelDNAProfile{
		PersonalityType:    personality,
		Dimensions:         scores,
		MatchScore:         matchScore,
		PersonalityDetails: p.insights[personality],
	}, nil
}

// GetPersonalityInsights returns the static details for an archetype.
func (p *ProfilerService) GetPersonalityInsights(personality domain_models.TravelPersonality) (domain_models.PersonalityDetails, error) {
	details, ok := p.insights[personality]
	if !ok {
		return domain_models.PersonalityDetails{}, utils.ErrUnknownPersonality
	}
	return details, nil
}

func (p *ProfilerService) scoreAnswer(
	question domain_models.QuizQuestion,
	answer any,
	scores map[domain_models.TravelDimension]float64,
	counts map[domain_models.TravelDimension]int,
) error {
	switch question.Type {
	case domain_models.QuestionChoice, domain_models.QuestionSelect:
		selected, ok := answer.(string)
		if !ok {
			return fmt.Errorf("%w: expected an option string, got %T", utils.ErrInvalidResponse, answer)
		}

		idx := -1
		for i, option := range question.Options {
			if option == selected {
				idx = i
				break
			}
		}
		if idx == -1 {
			return fmt.Errorf("%w: %q", utils.ErrInvalidResponse, selected)
		}

		// Option/dimension lengths are equal by table validation, but keep
		// the range check so a future table edit degrades instead of panics.
		if idx < len(question.Dimensions) {
			dim := question.Dimensions[idx]
			scores[dim] += choicePoints
			counts[dim]++
		}

	case domain_models.QuestionScale:
		value, err := numericAnswer(answer)
		if err != nil {
			return fmt.Errorf("%w: %v", utils.ErrInvalidResponse, err)
		}
		value = clamp(value, 1, 10)

		first, second := question.Dimensions[0], question.Dimensions[1]
		scores[first] += value
		scores[second] += 10 - value
		counts[first]++
		counts[second]++
	}

	return nil
}

// normalizeDimensions rescales so the strongest dimension reads exactly 10.
// An all-zero vector stays all zero.
func normalizeDimensions(scores map[domain_models.TravelDimension]float64) {
	maxScore := 0.0
	for _, v := range scores {
		if v > maxScore {
			maxScore = v
		}
	}
	if maxScore == 0 {
		return
	}
	for dim, v := range scores {
		scores[dim] = (v / maxScore) * 10
	}
}

// closestPersonality picks the archetype with the minimum Euclidean distance.
// Ties resolve to the earliest archetype in declaration order.
func (p *ProfilerService) closestPersonality(dimensions map[domain_models.TravelDimension]float64) domain_models.TravelPersonality {
	best := domain_models.AdventureSeeker
	bestDistance := math.Inf(1)

	for _, personality := range domain_models.AllPersonalities() {
		distance := p.distanceTo(dimensions, personality)
		if distance < bestDistance {
			bestDistance = distance
			best = personality
		}
	}

	return best
}

func (p *ProfilerService) distanceTo(dimensions map[domain_models.TravelDimension]float64, personality domain_models.TravelPersonality) float64 {
	centroid := p.centroids[personality]

	sum := 0.0
	for dim, value := range dimensions {
		delta := value - centroid[dim]
		sum += delta * delta
	}
	return math.Sqrt(sum)
}

func (p *ProfilerService) matchScore(dimensions map[domain_models.TravelDimension]float64, personality domain_models.TravelPersonality) float64 {
	maxPossible := math.Sqrt(float64(len(dimensions)) * 100)
	distance := p.distanceTo(dimensions, personality)

	match := math.Max(0, 100-(distance/maxPossible)*100)
	return math.Round(match*10) / 10
}

func numericAnswer(answer any) (float64, error) {
	switch v := answer.(type) {
	case float64:
		return v, nil
	case int:
		return float64(v), nil
	case string:
		parsed, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return 0, fmt.Errorf("scale answer %q is not numeric", v)
		}
		return parsed, nil
	default:
		return 0, fmt.Errorf("scale answer has unsupported type %T", answer)
	}
}

func clamp(value, lo, hi float64) float64 {
	if value < lo {
		return lo
	}
	if value > hi {
		return hi
	}
	return value
}
