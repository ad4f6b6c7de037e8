package services

import (
	"context"
	"testing"

	"go.uber.org/zap"

	"voyageai/internal/models/domain_models"
)

func TestGetCatalogStats(t *testing.T) {
	cheap := testDestination()
	cheap.ID = "cheap"
	cheap.AverageCost = 1000

	pricey := testDestination()
	pricey.ID = "pricey"
	pricey.AverageCost = 3000

	spa := testDestination()
	spa.ID = "spa"
	spa.Category = domain_models.CategoryWellness
	spa.AverageCost = 2300

	repo := &stubDestinationRepo{records: []domain_models.DestinationRecord{cheap, pricey, spa}}
	svc := NewCatalogService(repo, zap.NewNop())

	stats := svc.GetCatalogStats(context.Background())

	if stats.TotalDestinations != 3 {
		t.Fatalf("expected 3 destinations, got %d", stats.TotalDestinations)
	}
	if stats.ByCategory[domain_models.CategoryAdventure] != 2 {
		t.Fatalf("expected 2 adventure destinations, got %d", stats.ByCategory[domain_models.CategoryAdventure])
	}
	if stats.ByCategory[domain_models.CategoryWellness] != 1 {
		t.Fatalf("expected 1 wellness destination, got %d", stats.ByCategory[domain_models.CategoryWellness])
	}

	approx(t, "adventure avg cost", stats.AvgCostByCategory[domain_models.CategoryAdventure], 2000)
	approx(t, "wellness avg cost", stats.AvgCostByCategory[domain_models.CategoryWellness], 2300)
	approx(t, "cost min", stats.CostMin, 1000)
	approx(t, "cost max", stats.CostMax, 3000)
	approx(t, "cost avg", stats.CostAvg, 2100)
}

func TestGetCatalogStatsEmpty(t *testing.T) {
	svc := NewCatalogService(&stubDestinationRepo{}, zap.NewNop())

	stats := svc.GetCatalogStats(context.Background())
	if stats.TotalDestinations != 0 {
		t.Fatalf("expected empty stats, got %+v", stats)
	}
	if stats.CostMin != 0 || stats.CostMax != 0 || stats.CostAvg != 0 {
		t.Fatalf("expected zero cost bounds, got %+v", stats)
	}
}
