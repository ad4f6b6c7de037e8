package repositories

import (
	"context"
	"errors"
	"testing"

	"voyageai/internal/models/domain_models"
	"voyageai/pkg/utils"
)

func validRecord(id string) domain_models.DestinationRecord {
	return domain_models.DestinationRecord{
		ID:           id,
		Name:         "Somewhere",
		Country:      "Someland",
		Category:     domain_models.CategoryNature,
		Description:  "A valid destination",
		AverageCost:  1500,
		BestSeasons:  []domain_models.Season{domain_models.SeasonSpring},
		TravelTime:   8,
		Highlights:   []string{"Viewpoint"},
		WeatherScore: 7,
		CrowdScore:   3,
		DNAAffinity: map[domain_models.TravelDimension]float64{
			domain_models.DimensionNature: 9,
		},
	}
}

func TestNewInMemoryDestinationRepositoryRejectsBadRecords(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*domain_models.DestinationRecord)
	}{
		{"missing id", func(r *domain_models.DestinationRecord) { r.ID = "" }},
		{"missing name", func(r *domain_models.DestinationRecord) { r.Name = "" }},
		{"unknown category", func(r *domain_models.DestinationRecord) { r.Category = "Underwater" }},
		{"zero cost", func(r *domain_models.DestinationRecord) { r.AverageCost = 0 }},
		{"zero travel time", func(r *domain_models.DestinationRecord) { r.TravelTime = 0 }},
		{"weather out of range", func(r *domain_models.DestinationRecord) { r.WeatherScore = 11 }},
		{"crowd out of range", func(r *domain_models.DestinationRecord) { r.CrowdScore = -1 }},
		{"no seasons", func(r *domain_models.DestinationRecord) { r.BestSeasons = nil }},
		{"unknown season", func(r *domain_models.DestinationRecord) {
			r.BestSeasons = []domain_models.Season{"Monsoon"}
		}},
		{"unknown affinity dimension", func(r *domain_models.DestinationRecord) {
			r.DNAAffinity = map[domain_models.TravelDimension]float64{"bravado": 5}
		}},
		{"affinity out of range", func(r *domain_models.DestinationRecord) {
			r.DNAAffinity = map[domain_models.TravelDimension]float64{domain_models.DimensionNature: 12}
		}},
	}

	for _, tc := range cases {
		record := validRecord("bad")
		tc.mutate(&record)

		_, err := NewInMemoryDestinationRepository([]domain_models.DestinationRecord{record})
		if !errors.Is(err, utils.ErrInvalidCatalogRecord) {
			t.Fatalf("%s: expected ErrInvalidCatalogRecord, got %v", tc.name, err)
		}
	}
}

func TestNewInMemoryDestinationRepositoryRejectsDuplicateIDs(t *testing.T) {
	records := []domain_models.DestinationRecord{validRecord("dup"), validRecord("dup")}

	_, err := NewInMemoryDestinationRepository(records)
	if !errors.Is(err, utils.ErrInvalidCatalogRecord) {
		t.Fatalf("expected ErrInvalidCatalogRecord for duplicate id, got %v", err)
	}
}

func TestListDestinationsPreservesLoadOrder(t *testing.T) {
	records := []domain_models.DestinationRecord{validRecord("a"), validRecord("b"), validRecord("c")}
	repo, err := NewInMemoryDestinationRepository(records)
	if err != nil {
		t.Fatalf("NewInMemoryDestinationRepository: %v", err)
	}

	listed := repo.ListDestinations(context.Background())
	if len(listed) != 3 {
		t.Fatalf("expected 3 destinations, got %d", len(listed))
	}
	for i, want := range []string{"a", "b", "c"} {
		if listed[i].ID != want {
			t.Fatalf("position %d: expected %s, got %s", i, want, listed[i].ID)
		}
	}
}

func TestGetDestinationByID(t *testing.T) {
	repo, err := NewInMemoryDestinationRepository([]domain_models.DestinationRecord{validRecord("here")})
	if err != nil {
		t.Fatalf("NewInMemoryDestinationRepository: %v", err)
	}

	dest, err := repo.GetDestinationByID(context.Background(), "here")
	if err != nil {
		t.Fatalf("GetDestinationByID: %v", err)
	}
	if dest.ID != "here" {
		t.Fatalf("expected destination 'here', got %s", dest.ID)
	}

	if _, err := repo.GetDestinationByID(context.Background(), "gone"); !errors.Is(err, utils.ErrDestinationNotFound) {
		t.Fatalf("expected ErrDestinationNotFound, got %v", err)
	}
}

func TestSeedDestinationsLoadCleanly(t *testing.T) {
	repo, err := NewInMemoryDestinationRepository(SeedDestinations())
	if err != nil {
		t.Fatalf("seed catalog failed validation: %v", err)
	}

	listed := repo.ListDestinations(context.Background())
	if len(listed) != 19 {
		t.Fatalf("expected 19 seed destinations, got %d", len(listed))
	}

	seen := make(map[domain_models.DestinationCategory]bool)
	for _, dest := range listed {
		seen[dest.Category] = true
	}
	for _, category := range []domain_models.DestinationCategory{
		domain_models.CategoryAdventure,
		domain_models.CategoryCultural,
		domain_models.CategoryLuxury,
		domain_models.CategoryNature,
		domain_models.CategoryUrban,
		domain_models.CategoryBeach,
		domain_models.CategoryWellness,
	} {
		if !seen[category] {
			t.Fatalf("seed catalog has no %s destination", category)
		}
	}
}
