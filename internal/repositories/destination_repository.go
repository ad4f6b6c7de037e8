package repositories

import (
	"context"
	"fmt"
	"sync"

	"voyageai/internal/models/domain_models"
	"voyageai/pkg/utils"
)

// DestinationRepository provides read access to the destination catalog.
type DestinationRepository interface {
	ListDestinations(ctx context.Context) []domain_models.DestinationRecord
	GetDestinationByID(ctx context.Context, id string) (*domain_models.DestinationRecord, error)
}

// InMemoryDestinationRepository holds the fixed catalog in memory. Records are
// validated once at load and never mutated afterwards, so concurrent
// recommendation requests can read without coordination; the mutex only
// guards against misuse during startup.
type InMemoryDestinationRepository struct {
	mu      sync.RWMutex
	byID    map[string]*domain_models.DestinationRecord
	ordered []domain_models.DestinationRecord
}

// NewInMemoryDestinationRepository validates and indexes the provided records.
// Data-integrity problems are load-time failures, not per-request ones.
func NewInMemoryDestinationRepository(records []domain_models.DestinationRecord) (*InMemoryDestinationRepository, error) {
	repo := &InMemoryDestinationRepository{
		byID:    make(map[string]*domain_models.DestinationRecord, len(records)),
		ordered: make([]domain_models.DestinationRecord, 0, len(records)),
	}

	for _, record := range records {
		if err := validateRecord(record); err != nil {
			return nil, fmt.Errorf("%w: %v", utils.ErrInvalidCatalogRecord, err)
		}
		if _, exists := repo.byID[record.ID]; exists {
			return nil, fmt.Errorf("%w: duplicate destination id %q", utils.ErrInvalidCatalogRecord, record.ID)
		}

		repo.ordered = append(repo.ordered, record)
		repo.byID[record.ID] = &repo.ordered[len(repo.ordered)-1]
	}

	return repo, nil
}

func validateRecord(record domain_models.DestinationRecord) error {
	if record.ID == "" || record.Name == "" {
		return fmt.Errorf("destination %q: id and name are required", record.ID)
	}
	if !record.Category.Valid() {
		return fmt.Errorf("destination %s: unknown category %q", record.ID, record.Category)
	}
	if record.AverageCost <= 0 {
		return fmt.Errorf("destination %s: average cost must be positive", record.ID)
	}
	if record.TravelTime <= 0 {
		return fmt.Errorf("destination %s: travel time must be positive", record.ID)
	}
	if record.WeatherScore < 0 || record.WeatherScore > 10 {
		return fmt.Errorf("destination %s: weather score %v outside [0,10]", record.ID, record.WeatherScore)
	}
	if record.CrowdScore < 0 || record.CrowdScore > 10 {
		return fmt.Errorf("destination %s: crowd score %v outside [0,10]", record.ID, record.CrowdScore)
	}
	if len(record.BestSeasons) == 0 {
		return fmt.Errorf("destination %s: at least one best season is required", record.ID)
	}
	for _, season := range record.BestSeasons {
		if !season.Valid() {
			return fmt.Errorf("destination %s: unknown season %q", record.ID, season)
		}
	}
	for dim, affinity := range record.DNAAffinity {
		if !dim.Valid() {
			return fmt.Errorf("destination %s: unknown dimension %q", record.ID, dim)
		}
		if affinity < 0 || affinity > 10 {
			return fmt.Errorf("destination %s: affinity %v for %s outside [0,10]", record.ID, affinity, dim)
		}
	}
	return nil
}

// ListDestinations returns the catalog in load order. The returned slice is a
// copy; records themselves are shared and must not be mutated.
func (r *InMemoryDestinationRepository) ListDestinations(_ context.Context) []domain_models.DestinationRecord {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]domain_models.DestinationRecord, len(r.ordered))
	copy(out, r.ordered)
	return out
}

func (r *InMemoryDestinationRepository) GetDestinationByID(_ context.Context, id string) (*domain_models.DestinationRecord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	record, ok := r.byID[id]
	if !ok {
		return nil, utils.ErrDestinationNotFound
	}
	return record, nil
}
