package domain_models

import "fmt"

// QuestionType distinguishes how a quiz answer is interpreted.
type QuestionType string

const (
	QuestionChoice QuestionType = "choice"
	QuestionScale  QuestionType = "scale"
	QuestionSelect QuestionType = "select"
)

// QuizQuestion is one entry of the psychological assessment. For choice and
// select questions option i maps to dimension i, so both lists must have the
// same length. Scale questions split a [MinValue,MaxValue] answer between
// exactly two dimensions.
type QuizQuestion struct {
	ID         string            `json:"id"`
	Prompt     string            `json:"question"`
	Type       QuestionType      `json:"type"`
	Options    []string          `json:"options,omitempty"`
	Dimensions []TravelDimension `json:"dimensions"`
	MinValue   int               `json:"min_value,omitempty"`
	MaxValue   int               `json:"max_value,omitempty"`
}

// Validate enforces the structural invariants of a question definition. The
// question table is checked once at startup so scoring never sees a broken
// option/dimension coupling.
func (q QuizQuestion) Validate() error {
	for _, dim := range q.Dimensions {
		if !dim.Valid() {
			return fmt.Errorf("question %s: unknown dimension %q", q.ID, dim)
		}
	}

	switch q.Type {
	case QuestionChoice, QuestionSelect:
		if len(q.Options) == 0 {
			return fmt.Errorf("question %s: %s question has no options", q.ID, q.Type)
		}
		if len(q.Options) != len(q.Dimensions) {
			return fmt.Errorf("question %s: %d options but %d dimensions", q.ID, len(q.Options), len(q.Dimensions))
		}
	case QuestionScale:
		if len(q.Dimensions) != 2 {
			return fmt.Errorf("question %s: scale question needs exactly 2 dimensions, has %d", q.ID, len(q.Dimensions))
		}
		if q.MinValue >= q.MaxValue {
			return fmt.Errorf("question %s: invalid scale range [%d,%d]", q.ID, q.MinValue, q.MaxValue)
		}
	default:
		return fmt.Errorf("question %s: unknown question type %q", q.ID, q.Type)
	}

	return nil
}

// DefaultQuizQuestions returns the assessment in presentation order. The order
// and content are stable across calls.
func DefaultQuizQuestions() []QuizQuestion {
	return []QuizQuestion{
		{
			ID:     "q1_adventure",
			Prompt: "When you hear 'vacation', what's your first instinct?",
			Type:   QuestionChoice,
			Options: []string{
				"Find the most thrilling activity available",
				"Research historical and cultural sites",
				"Book the most luxurious accommodation",
				"Look for natural landscapes and wildlife",
				"Explore city attractions and nightlife",
				"Find the most relaxing beach or spa",
				"Plan activities where I can meet new people",
			},
			Dimensions: []TravelDimension{
				DimensionAdventure, DimensionCulture, DimensionLuxury,
				DimensionNature, DimensionUrban, DimensionComfort, DimensionSocial,
			},
		},
		{
			ID:     "q2_budget",
			Prompt: "How do you typically allocate your travel budget?",
			Type:   QuestionChoice,
			Options: []string{
				"Experiences and adventures first",
				"Museums, tours, and cultural activities",
				"Premium accommodations and dining",
				"Outdoor gear and park fees",
				"Urban attractions and transportation",
				"Comfort and relaxation services",
				"Social activities and group experiences",
			},
			Dimensions: []TravelDimension{
				DimensionAdventure, DimensionCulture, DimensionLuxury,
				DimensionNature, DimensionUrban, DimensionComfort, DimensionSocial,
			},
		},
		{
			ID:         "q3_pace",
			Prompt:     "What pace feels most natural for your travels?",
			Type:       QuestionScale,
			Dimensions: []TravelDimension{DimensionAdventure, DimensionComfort},
			MinValue:   1,
			MaxValue:   10,
		},
		{
			ID:     "q4_accommodation",
			Prompt: "Your ideal accommodation is...",
			Type:   QuestionChoice,
			Options: []string{
				"A base camp for daily adventures",
				"Centrally located for cultural access",
				"A 5-star resort with all amenities",
				"An eco-lodge in nature",
				"A trendy hotel in the city center",
				"A quiet retreat with spa facilities",
				"A social hostel or guesthouse",
			},
			Dimensions: []TravelDimension{
				DimensionAdventure, DimensionCulture, DimensionLuxury,
				DimensionNature, DimensionUrban, DimensionComfort, DimensionSocial,
			},
		},
		{
			ID:         "q5_planning",
			Prompt:     "How structured do you prefer your itinerary?",
			Type:       QuestionScale,
			Dimensions: []TravelDimension{DimensionAdventure, DimensionComfort},
			MinValue:   1,
			MaxValue:   10,
		},
		{
			ID:     "q6_activities",
			Prompt: "Which activities excite you most?",
			Type:   QuestionSelect,
			Options: []string{
				"Hiking, rafting, or extreme sports",
				"Museum visits and historical tours",
				"Fine dining and luxury shopping",
				"Wildlife safaris and nature walks",
				"City tours and architectural sights",
				"Spa treatments and beach lounging",
				"Local festivals and social events",
			},
			Dimensions: []TravelDimension{
				DimensionAdventure, DimensionCulture, DimensionLuxury,
				DimensionNature, DimensionUrban, DimensionComfort, DimensionSocial,
			},
		},
		{
			ID:         "q7_social",
			Prompt:     "How important are social interactions during travel?",
			Type:       QuestionScale,
			Dimensions: []TravelDimension{DimensionSocial, DimensionComfort},
			MinValue:   1,
			MaxValue:   10,
		},
		{
			ID:     "q8_learning",
			Prompt: "What do you want to bring home from your travels?",
			Type:   QuestionChoice,
			Options: []string{
				"Adrenaline-filled memories",
				"Cultural understanding and knowledge",
				"Luxury experiences and photos",
				"Connection with nature",
				"Urban experiences and trends",
				"Complete relaxation and rejuvenation",
				"New friendships and connections",
			},
			Dimensions: []TravelDimension{
				DimensionAdventure, DimensionCulture, DimensionLuxury,
				DimensionNature, DimensionUrban, DimensionComfort, DimensionSocial,
			},
		},
	}
}
