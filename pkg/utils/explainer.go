package utils

import (
	"context"
	"fmt"
	"strings"
)

// ExplanationClientInterface is the injected text-generation capability used
// by the explanation service. Implementations must respect the context
// deadline; callers treat every failure as recoverable.
type ExplanationClientInterface interface {
	GenerateText(ctx context.Context, prompt string) (string, error)
	Provider() string
}

// NewExplanationClient creates a text-generation client for the configured
// provider. An empty provider means the caller runs on deterministic
// fallbacks only.
func NewExplanationClient(provider, apiKey, model string) (ExplanationClientInterface, error) {
	switch strings.ToLower(provider) {
	case "openai":
		return NewOpenAIExplainerClient(apiKey, model), nil
	case "gemini":
		client, err := NewGeminiExplainerClient(apiKey, model)
		if err != nil {
			return nil, fmt.Errorf("failed to create Gemini client: %w", err)
		}
		return client, nil
	default:
		return nil, fmt.Errorf("unsupported explanation provider: %s. Use 'openai' or 'gemini'", provider)
	}
}
