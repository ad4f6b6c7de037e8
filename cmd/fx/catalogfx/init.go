package catalogfx

import (
	"go.uber.org/fx"
	"go.uber.org/zap"

	"voyageai/internal/api/controllers"
	"voyageai/internal/repositories"
	"voyageai/internal/services"
)

var Module = fx.Provide(
	provideDestinationRepo, provideCatalogService, provideCatalogController)

func provideDestinationRepo() (repositories.DestinationRepository, error) {
	return repositories.NewInMemoryDestinationRepository(repositories.SeedDestinations())
}

func provideCatalogService(destinationRepo repositories.DestinationRepository, logger *zap.Logger) services.CatalogServiceInterface {
	return services.NewCatalogService(destinationRepo, logger)
}

func provideCatalogController(catalogService services.CatalogServiceInterface) *controllers.CatalogController {
	return controllers.NewCatalogController(catalogService)
}
