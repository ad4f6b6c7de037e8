package utils

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

// GeminiExplainerClient implements ExplanationClientInterface using Google's
// Gemini models.
type GeminiExplainerClient struct {
	client *genai.Client
	model  string
}

// NewGeminiExplainerClient creates a new Gemini client.
func NewGeminiExplainerClient(apiKey, model string) (*GeminiExplainerClient, error) {
	if model == "" {
		model = "gemini-1.5-flash"
	}

	ctx := context.Background()
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	return &GeminiExplainerClient{
		client: client,
		model:  model,
	}, nil
}

func (c *GeminiExplainerClient) Provider() string {
	return "gemini"
}

// GenerateText sends the prompt to Gemini and returns the concatenated text
// parts of the first candidate.
func (c *GeminiExplainerClient) GenerateText(ctx context.Context, prompt string) (string, error) {
	if strings.TrimSpace(prompt) == "" {
		return "", fmt.Errorf("prompt cannot be empty")
	}

	model := c.client.GenerativeModel(c.model)
	model.SetTemperature(0.7)
	model.SetTopP(0.8)
	model.SetTopK(20)
	model.SetMaxOutputTokens(1024)

	resp, err := model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", fmt.Errorf("gemini API call failed: %w", err)
	}

	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("no content generated by Gemini")
	}

	var builder strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		text, ok := part.(genai.Text)
		if !ok {
			continue
		}
		if builder.Len() > 0 {
			builder.WriteString("\n")
		}
		builder.WriteString(string(text))
	}

	content := strings.TrimSpace(builder.String())
	if content == "" {
		return "", fmt.Errorf("gemini returned empty response")
	}

	return content, nil
}

// Close closes the underlying Gemini client.
func (c *GeminiExplainerClient) Close() error {
	return c.client.Close()
}
