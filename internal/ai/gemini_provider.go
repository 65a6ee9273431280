package ai

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"google.golang.org/genai"

	"github.com/amishk599/prepmap/internal/model"
)

const systemInstruction = "You are a precise assistant for technical interview preparation. Reply with a single JSON object and nothing else."

var errEmptyResponse = errors.New("model returned no content")

// GeminiProvider calls the Gemini generateContent endpoint.
type GeminiProvider struct {
	client *genai.Client
	model  string
}

// NewGeminiProvider creates a provider for the Gemini API. baseURL and
// httpClient are optional; tests point them at an httptest server.
func NewGeminiProvider(ctx context.Context, apiKey, modelName, baseURL string, httpClient *http.Client) (*GeminiProvider, error) {
	if strings.TrimSpace(apiKey) == "" {
		return nil, model.ErrMissingCredential
	}

	cfg := &genai.ClientConfig{
		APIKey:     apiKey,
		Backend:    genai.BackendGeminiAPI,
		HTTPClient: httpClient,
	}
	if baseURL != "" {
		cfg.HTTPOptions = genai.HTTPOptions{BaseURL: baseURL}
	}

	client, err := genai.NewClient(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("create gemini client: %w", err)
	}
	return &GeminiProvider{client: client, model: modelName}, nil
}

// Complete sends prompt with temperature 0 and JSON output requested. All
// failures come back as *model.ExternalCallError.
func (p *GeminiProvider) Complete(ctx context.Context, prompt string) (string, error) {
	resp, err := p.client.Models.GenerateContent(ctx,
		p.model,
		genai.Text(prompt),
		&genai.GenerateContentConfig{
			Temperature:       genai.Ptr[float32](0),
			ResponseMIMEType:  "application/json",
			SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: systemInstruction}}},
		},
	)
	if err != nil {
		return "", &model.ExternalCallError{Op: "gemini generate content", Err: err}
	}

	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0 {
		return "", &model.ExternalCallError{Op: "gemini generate content", Err: errEmptyResponse}
	}

	text := resp.Text()
	if strings.TrimSpace(text) == "" {
		return "", &model.ExternalCallError{Op: "gemini generate content", Err: errEmptyResponse}
	}
	return text, nil
}
