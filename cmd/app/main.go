package main

import (
	"context"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/fx"
	"go.uber.org/zap"

	"voyageai/cmd/fx/catalogfx"
	"voyageai/cmd/fx/explanationfx"
	"voyageai/cmd/fx/profilerfx"
	"voyageai/cmd/fx/recommendationfx"
	"voyageai/internal/api/controllers"
	"voyageai/pkg/middleware"
)

func main() {
	// Missing .env is fine; production sets real environment variables.
	_ = godotenv.Load()

	app := fx.New(
		fx.Provide(ProvideLogger),
		catalogfx.Module,
		profilerfx.Module,
		recommendationfx.Module,
		explanationfx.Module,

		fx.Provide(ProvideRouter),
		fx.Invoke(StartServer),
	)

	app.Run()
}

func ProvideLogger() (*zap.Logger, error) {
	if os.Getenv("APP_ENV") == "production" {
		return zap.NewProduction()
	}
	return zap.NewDevelopment()
}

func StartServer(lc fx.Lifecycle, engine *gin.Engine, logger *zap.Logger) {
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				logger.Info("starting HTTP server", zap.String("port", port))
				if err := engine.Run(":" + port); err != nil {
					logger.Fatal("failed to start server", zap.Error(err))
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			logger.Info("stopping HTTP server")
			return logger.Sync()
		},
	})
}

func ProvideRouter(
	quizController *controllers.QuizController,
	recommendationController *controllers.RecommendationController,
	explanationController *controllers.ExplanationController,
	catalogController *controllers.CatalogController) *gin.Engine {

	r := gin.New()
	r.Use(gin.Logger())
	r.Use(gin.Recovery())
	r.Use(middleware.CORSMiddleware())
	r.Use(middleware.TraceIDMiddleware())

	RegisterRoutes(r, quizController, recommendationController, explanationController, catalogController)

	return r
}

func RegisterRoutes(r *gin.Engine,
	quizController *controllers.QuizController,
	recommendationController *controllers.RecommendationController,
	explanationController *controllers.ExplanationController,
	catalogController *controllers.CatalogController) {

	quizGroup := r.Group("/quiz")
	quizGroup.GET("/questions", quizController.GetQuizQuestions)
	quizGroup.POST("/analyze", quizController.AnalyzeResponses)

	r.GET("/personalities/:type/insights", quizController.GetPersonalityInsights)

	recommendationGroup := r.Group("/recommendations")
	recommendationGroup.POST("", recommendationController.GetRecommendations)
	recommendationGroup.POST("/:destinationId/breakdown", recommendationController.GetRecommendationBreakdown)

	explanationGroup := r.Group("/explanations")
	explanationGroup.POST("/:destinationId", explanationController.GenerateTripExplanation)
	explanationGroup.POST("/compare/:destinationA/:destinationB", explanationController.GenerateTripComparison)

	catalogGroup := r.Group("/catalog")
	catalogGroup.GET("/destinations", catalogController.ListDestinations)
	catalogGroup.GET("/destinations/:id", catalogController.GetDestinationByID)
	catalogGroup.GET("/stats", catalogController.GetCatalogStats)
}
