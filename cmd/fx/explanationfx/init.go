package explanationfx

import (
	"os"
	"strconv"
	"strings"
	"time"

	"go.uber.org/fx"
	"go.uber.org/zap"

	"voyageai/internal/api/controllers"
	"voyageai/internal/repositories"
	"voyageai/internal/services"
	"voyageai/pkg/utils"
)

var Module = fx.Provide(
	ProvideExplanationClient,
	ProvideExplanationService,
	ProvideExplanationController)

// ExplanationConfig holds configuration for the AI explanation client.
type ExplanationConfig struct {
	Provider string
	APIKey   string
	Model    string
	Timeout  time.Duration
}

// ProvideExplanationClient creates an explanation client from environment
// variables. Unset AI_PROVIDER, or a provider without its API key, yields a
// nil client and the service runs on fallback templates only.
func ProvideExplanationClient(logger *zap.Logger) (utils.ExplanationClientInterface, error) {
	config := getExplanationConfig()

	if config.Provider == "" {
		logger.Info("no explanation provider configured, using fallback templates only")
		return nil, nil
	}
	if config.APIKey == "" {
		logger.Warn("explanation provider configured without API key, using fallback templates only",
			zap.String("provider", config.Provider))
		return nil, nil
	}

	logger.Info("initializing explanation client",
		zap.String("provider", config.Provider),
		zap.String("model", config.Model))

	return utils.NewExplanationClient(config.Provider, config.APIKey, config.Model)
}

// ProvideExplanationService creates the explanation service with all
// dependencies.
func ProvideExplanationService(
	destinationRepo repositories.DestinationRepository,
	client utils.ExplanationClientInterface,
	logger *zap.Logger,
) services.ExplanationServiceInterface {
	return services.NewExplanationService(destinationRepo, client, getExplanationConfig().Timeout, logger)
}

// ProvideExplanationController creates the explanation controller.
func ProvideExplanationController(
	explanationService services.ExplanationServiceInterface,
) *controllers.ExplanationController {
	return controllers.NewExplanationController(explanationService)
}

// getExplanationConfig reads configuration from environment variables.
func getExplanationConfig() ExplanationConfig {
	provider := strings.ToLower(os.Getenv("AI_PROVIDER"))

	var apiKey string
	switch provider {
	case "openai":
		apiKey = os.Getenv("OPENAI_API_KEY")
	case "gemini":
		apiKey = os.Getenv("GEMINI_API_KEY")
	}

	timeout := 15 * time.Second
	if raw := os.Getenv("EXPLANATION_TIMEOUT_SECONDS"); raw != "" {
		if seconds, err := strconv.Atoi(raw); err == nil && seconds > 0 {
			timeout = time.Duration(seconds) * time.Second
		}
	}

	return ExplanationConfig{
		Provider: provider,
		APIKey:   apiKey,
		Model:    os.Getenv("AI_MODEL"),
		Timeout:  timeout,
	}
}
