package utils

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"
)

// NarrativeClientInterface turns a flattened itinerary text block into a
// shareable narrative. Implementations must map provider rate-limit
// signals to ErrSummaryQuotaExceeded so the caller can tell quota exhaustion
// apart from a generic failure.
type NarrativeClientInterface interface {
	GenerateNarrative(ctx context.Context, itineraryDetails string) (string, error)
}

const narrativePrompt = `You are a travel writer summarizing travel itineraries for sharing with friends and family.

Please create an engaging narrative summary of the following itinerary details:
%s
`

// GeminiNarrativeClient implements NarrativeClientInterface on Google's
// Gemini models.
type GeminiNarrativeClient struct {
	client *genai.Client
	model  string
}

func NewGeminiNarrativeClient(apiKey, model string) (NarrativeClientInterface, error) {
	if model == "" {
		model = "gemini-1.5-flash" // Free tier model
	}

	ctx := context.Background()
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	return &GeminiNarrativeClient{client: client, model: model}, nil
}

func (c *GeminiNarrativeClient) GenerateNarrative(ctx context.Context, itineraryDetails string) (string, error) {
	m := c.client.GenerativeModel(c.model)
	m.SetTemperature(0.7)

	resp, err := m.GenerateContent(ctx, genai.Text(fmt.Sprintf(narrativePrompt, itineraryDetails)))
	if err != nil {
		if isQuotaError(err) {
			return "", fmt.Errorf("%w: %v", ErrSummaryQuotaExceeded, err)
		}
		return "", fmt.Errorf("gemini: %w", err)
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("gemini: no content")
	}

	text, ok := resp.Candidates[0].Content.Parts[0].(genai.Text)
	if !ok {
		return "", fmt.Errorf("gemini: unexpected part type %T", resp.Candidates[0].Content.Parts[0])
	}
	narrative := strings.TrimSpace(string(text))
	if narrative == "" {
		return "", fmt.Errorf("gemini: empty narrative")
	}
	return narrative, nil
}

func isQuotaError(err error) bool {
	var gerr *googleapi.Error
	if errors.As(err, &gerr) && gerr.Code == http.StatusTooManyRequests {
		return true
	}
	return strings.Contains(strings.ToLower(err.Error()), "quota")
}
