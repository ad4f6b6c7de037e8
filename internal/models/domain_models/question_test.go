package domain_models

import "testing"

func TestDefaultQuizQuestionsValidate(t *testing.T) {
	questions := DefaultQuizQuestions()
	if len(questions) != 8 {
		t.Fatalf("expected 8 questions, got %d", len(questions))
	}

	seen := make(map[string]bool)
	for _, q := range questions {
		if err := q.Validate(); err != nil {
			t.Fatalf("question %s: %v", q.ID, err)
		}
		if seen[q.ID] {
			t.Fatalf("duplicate question id %s", q.ID)
		}
		seen[q.ID] = true
	}
}

func TestQuizQuestionValidate(t *testing.T) {
	cases := []struct {
		name    string
		q       QuizQuestion
		wantErr bool
	}{
		{
			name: "valid choice",
			q: QuizQuestion{
				ID:         "ok",
				Type:       QuestionChoice,
				Options:    []string{"a", "b"},
				Dimensions: []TravelDimension{DimensionAdventure, DimensionComfort},
			},
		},
		{
			name: "valid scale",
			q: QuizQuestion{
				ID:         "ok",
				Type:       QuestionScale,
				Dimensions: []TravelDimension{DimensionAdventure, DimensionComfort},
				MinValue:   1,
				MaxValue:   10,
			},
		},
		{
			name: "option dimension mismatch",
			q: QuizQuestion{
				ID:         "bad",
				Type:       QuestionChoice,
				Options:    []string{"a", "b", "c"},
				Dimensions: []TravelDimension{DimensionAdventure},
			},
			wantErr: true,
		},
		{
			name: "choice without options",
			q: QuizQuestion{
				ID:   "bad",
				Type: QuestionSelect,
			},
			wantErr: true,
		},
		{
			name: "scale with wrong dimension count",
			q: QuizQuestion{
				ID:         "bad",
				Type:       QuestionScale,
				Dimensions: []TravelDimension{DimensionAdventure},
				MinValue:   1,
				MaxValue:   10,
			},
			wantErr: true,
		},
		{
			name: "scale with inverted range",
			q: QuizQuestion{
				ID:         "bad",
				Type:       QuestionScale,
				Dimensions: []TravelDimension{DimensionAdventure, DimensionComfort},
				MinValue:   10,
				MaxValue:   1,
			},
			wantErr: true,
		},
		{
			name: "unknown dimension",
			q: QuizQuestion{
				ID:         "bad",
				Type:       QuestionChoice,
				Options:    []string{"a"},
				Dimensions: []TravelDimension{"bravado"},
			},
			wantErr: true,
		},
		{
			name: "unknown type",
			q: QuizQuestion{
				ID:   "bad",
				Type: "essay",
			},
			wantErr: true,
		},
	}

	for _, tc := range cases {
		err := tc.q.Validate()
		if tc.wantErr && err == nil {
			t.Fatalf("%s: expected error, got nil", tc.name)
		}
		if !tc.wantErr && err != nil {
			t.Fatalf("%s: unexpected error: %v", tc.name, err)
		}
	}
}

func TestSeasonOfMonth(t *testing.T) {
	cases := map[int]Season{
		1:  SeasonWinter,
		2:  SeasonWinter,
		3:  SeasonSpring,
		5:  SeasonSpring,
		6:  SeasonSummer,
		8:  SeasonSummer,
		9:  SeasonFall,
		11: SeasonFall,
		12: SeasonWinter,
	}
	for month, want := range cases {
		if got := SeasonOfMonth(month); got != want {
			t.Fatalf("month %d: expected %s, got %s", month, want, got)
		}
	}
}

func TestPersonalityTablesComplete(t *testing.T) {
	centroids := PersonalityCentroids()
	insights := PersonalityInsights()

	for _, personality := range AllPersonalities() {
		centroid, ok := centroids[personality]
		if !ok {
			t.Fatalf("no centroid for %s", personality)
		}
		for _, dim := range AllDimensions() {
			if _, ok := centroid[dim]; !ok {
				t.Fatalf("centroid for %s missing dimension %s", personality, dim)
			}
		}
		if _, ok := insights[personality]; !ok {
			t.Fatalf("no insights for %s", personality)
		}
	}
}
