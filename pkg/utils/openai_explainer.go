package utils

import (
	"context"
	"fmt"
	"strings"

	openai "github.com/sashabaranov/go-openai"
)

// OpenAIExplainerClient implements ExplanationClientInterface using OpenAI
// chat completions.
type OpenAIExplainerClient struct {
	client *openai.Client
	model  string
}

// NewOpenAIExplainerClient creates a new OpenAI-backed client.
func NewOpenAIExplainerClient(apiKey, model string) *OpenAIExplainerClient {
	if model == "" {
		model = openai.GPT4oMini
	}

	return &OpenAIExplainerClient{
		client: openai.NewClient(apiKey),
		model:  model,
	}
}

func (c *OpenAIExplainerClient) Provider() string {
	return "openai"
}

// GenerateText sends the prompt as a single user message and returns the
// first choice.
func (c *OpenAIExplainerClient) GenerateText(ctx context.Context, prompt string) (string, error) {
	if strings.TrimSpace(prompt) == "" {
		return "", fmt.Errorf("prompt cannot be empty")
	}

	resp, err := c.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:       c.model,
		Temperature: 0.7,
		MaxTokens:   1024,
		Messages: []openai.ChatCompletionMessage{
			{
				Role:    openai.ChatMessageRoleUser,
				Content: prompt,
			},
		},
	})
	if err != nil {
		return "", fmt.Errorf("openai API call failed: %w", err)
	}

	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("no content generated by OpenAI")
	}

	content := strings.TrimSpace(resp.Choices[0].Message.Content)
	if content == "" {
		return "", fmt.Errorf("openai returned empty response")
	}

	return content, nil
}
