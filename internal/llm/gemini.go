// Package llm adapts the Gemini text-generation API to the plan service.
package llm

import (
	"context"
	"errors"
	"fmt"
	"log"

	"google.golang.org/genai"
)

// DefaultModel is the model the generation endpoint was built against.
const DefaultModel = "gemini-2.5-flash"

// ErrEmptyResponse is returned when the model answers without any text.
var ErrEmptyResponse = errors.New("model returned an empty response")

// GeminiGenerator asks Gemini for JSON constrained by WorkoutPlanSchema.
type GeminiGenerator struct {
	client *genai.Client
	model  string
}

// NewGeminiGenerator creates a client for the Gemini API backend.
func NewGeminiGenerator(ctx context.Context, apiKey, model string) (*GeminiGenerator, error) {
	if apiKey == "" {
		return nil, errors.New("gemini API key is empty")
	}
	if model == "" {
		model = DefaultModel
	}
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("create gemini client: %w", err)
	}
	log.Printf("INFO: Gemini generator initialized for model %s", model)
	return &GeminiGenerator{client: client, model: model}, nil
}

// Generate sends one prompt with the fixed response schema and returns the
// raw response text. No retry is attempted.
func (g *GeminiGenerator) Generate(ctx context.Context, systemInstruction, prompt string) (string, error) {
	resp, err := g.client.Models.GenerateContent(ctx, g.model, genai.Text(prompt), &genai.GenerateContentConfig{
		ResponseMIMEType:  "application/json",
		ResponseSchema:    WorkoutPlanSchema(),
		SystemInstruction: genai.NewContentFromText(systemInstruction, genai.RoleUser),
	})
	if err != nil {
		return "", fmt.Errorf("gemini generate content: %w", err)
	}
	text := resp.Text()
	if text == "" {
		return "", ErrEmptyResponse
	}
	return text, nil
}
