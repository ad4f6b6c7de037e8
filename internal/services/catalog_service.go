package services

import (
	"context"
	"math"

	"go.uber.org/zap"

	"voyageai/internal/models/domain_models"
	"voyageai/internal/models/response_models"
	"voyageai/internal/repositories"
)

type CatalogServiceInterface interface {
	ListDestinations(ctx context.Context) []domain_models.DestinationRecord
	GetDestinationByID(ctx context.Context, id string) (*domain_models.DestinationRecord, error)
	GetCatalogStats(ctx context.Context) response_models.CatalogStats
}

// CatalogService exposes the destination catalog and summary statistics over
// it.
type CatalogService struct {
	destinationRepo repositories.DestinationRepository
	logger          *zap.Logger
}

func NewCatalogService(destinationRepo repositories.DestinationRepository, logger *zap.Logger) CatalogServiceInterface {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &CatalogService{
		destinationRepo: destinationRepo,
		logger:          logger,
	}
}

func (c *CatalogService) ListDestinations(ctx context.Context) []domain_models.DestinationRecord {
	return c.destinationRepo.ListDestinations(ctx)
}

func (c *CatalogService) GetDestinationByID(ctx context.Context, id string) (*domain_models.DestinationRecord, error) {
	return c.destinationRepo.GetDestinationByID(ctx, id)
}

// GetCatalogStats aggregates per-category counts and average costs plus
// overall cost bounds. Averages round to whole dollars.
func (c *CatalogService) GetCatalogStats(ctx context.Context) response_models.CatalogStats {
	destinations := c.destinationRepo.ListDestinations(ctx)

	stats := response_models.CatalogStats{
		TotalDestinations: len(destinations),
		ByCategory:        make(map[domain_models.DestinationCategory]int),
		AvgCostByCategory: make(map[domain_models.DestinationCategory]float64),
	}
	if len(destinations) == 0 {
		return stats
	}

	costSums := make(map[domain_models.DestinationCategory]float64)
	total := 0.0
	stats.CostMin = destinations[0].AverageCost
	stats.CostMax = destinations[0].AverageCost

	for _, dest := range destinations {
		stats.ByCategory[dest.Category]++
		costSums[dest.Category] += dest.AverageCost

		total += dest.AverageCost
		if dest.AverageCost < stats.CostMin {
			stats.CostMin = dest.AverageCost
		}
		if dest.AverageCost > stats.CostMax {
			stats.CostMax = dest.AverageCost
		}
	}

	for category, sum := range costSums {
		stats.AvgCostByCategory[category] = math.Round(sum / float64(stats.ByCategory[category]))
	}
	stats.CostAvg = math.Round(total / float64(len(destinations)))

	return stats
}
