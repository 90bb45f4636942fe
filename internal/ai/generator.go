package ai

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"google.golang.org/genai"

	"synctech/internal/config"
)

// Generator issues one constrained-output generation call. Implementations
// make exactly one outbound request per invocation; callers get the raw JSON
// conforming to the schema, or an error. No retries.
type Generator interface {
	Generate(ctx context.Context, prompt string, out *genai.Schema) (json.RawMessage, error)
}

// GeminiGenerator is the Generator backed by the Gemini API.
type GeminiGenerator struct {
	client  *genai.Client
	model   string
	timeout time.Duration
}

func NewGeminiGenerator(ctx context.Context, cfg config.GeminiConfig) (*GeminiGenerator, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("gemini API key is required")
	}
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey: cfg.APIKey,
	})
	if err != nil {
		return nil, fmt.Errorf("create genai client: %w", err)
	}
	return &GeminiGenerator{
		client:  client,
		model:   cfg.Model,
		timeout: cfg.Timeout.Std(),
	}, nil
}

// Generate sends the prompt with a JSON response schema so the model returns
// data already conformant to the declared shape. The call is bounded by the
// configured timeout; a failure propagates directly to the caller.
func (g *GeminiGenerator) Generate(ctx context.Context, prompt string, out *genai.Schema) (json.RawMessage, error) {
	ctx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()

	resp, err := g.client.Models.GenerateContent(ctx, g.model,
		genai.Text(prompt),
		&genai.GenerateContentConfig{
			ResponseMIMEType: "application/json",
			ResponseSchema:   out,
		},
	)
	if err != nil {
		return nil, fmt.Errorf("generate content: %w", err)
	}

	text := resp.Text()
	if text == "" {
		return nil, fmt.Errorf("model returned an empty response")
	}
	return json.RawMessage(text), nil
}
