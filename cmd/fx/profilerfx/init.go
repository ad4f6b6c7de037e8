package profilerfx

import (
	"go.uber.org/fx"
	"go.uber.org/zap"

	"voyageai/internal/api/controllers"
	"voyageai/internal/models/domain_models"
	"voyageai/internal/services"
)

var Module = fx.Provide(
	provideProfilerService, provideQuizController)

func provideProfilerService(logger *zap.Logger) (services.ProfilerServiceInterface, error) {
	return services.NewProfilerService(domain_models.DefaultQuizQuestions(), logger)
}

func provideQuizController(profilerService services.ProfilerServiceInterface) *controllers.QuizController {
	return controllers.NewQuizController(profilerService)
}
