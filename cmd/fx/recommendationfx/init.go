package recommendationfx

import (
	"go.uber.org/fx"
	"go.uber.org/zap"

	"voyageai/internal/api/controllers"
	"voyageai/internal/repositories"
	"voyageai/internal/services"
)

var Module = fx.Provide(
	provideRecommendationService, provideRecommendationController)

func provideRecommendationService(destinationRepo repositories.DestinationRepository, logger *zap.Logger) services.RecommendationServiceInterface {
	return services.NewRecommendationService(destinationRepo, logger)
}

func provideRecommendationController(recommendationService services.RecommendationServiceInterface) *controllers.RecommendationController {
	return controllers.NewRecommendationController(recommendationService)
}
