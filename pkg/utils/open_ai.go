package utils

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	openai "github.com/sashabaranov/go-openai"
)

// OpenAINarrativeClient is the alternative narrative backend, selected with
// AI_PROVIDER=openai.
type OpenAINarrativeClient struct {
	client *openai.Client
	model  string
}

func NewOpenAINarrativeClient(apiKey, model string) NarrativeClientInterface {
	if model == "" {
		model = openai.GPT4oMini
	}
	return &OpenAINarrativeClient{
		client: openai.NewClient(apiKey),
		model:  model,
	}
}

func (c *OpenAINarrativeClient) GenerateNarrative(ctx context.Context, itineraryDetails string) (string, error) {
	resp, err := c.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: c.model,
		Messages: []openai.ChatCompletionMessage{
			{
				Role:    openai.ChatMessageRoleUser,
				Content: fmt.Sprintf(narrativePrompt, itineraryDetails),
			},
		},
	})
	if err != nil {
		var apiErr *openai.APIError
		if errors.As(err, &apiErr) && apiErr.HTTPStatusCode == http.StatusTooManyRequests {
			return "", fmt.Errorf("%w: %v", ErrSummaryQuotaExceeded, err)
		}
		return "", fmt.Errorf("openai: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("openai: no choices")
	}
	narrative := strings.TrimSpace(resp.Choices[0].Message.Content)
	if narrative == "" {
		return "", fmt.Errorf("openai: empty narrative")
	}
	return narrative, nil
}
