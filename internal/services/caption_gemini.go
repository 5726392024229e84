package services

import (
	"context"
	"fmt"

	"google.golang.org/genai"
)

const defaultCaptionModel = "gemini-2.0-flash"

// GeminiCaptionGenerator calls the Gemini API. Construct it only when
// an API key is configured; without one the caption service runs on
// fallbacks alone.
type GeminiCaptionGenerator struct {
	client *genai.Client
	model  string
}

func NewGeminiCaptionGenerator(ctx context.Context, apiKey string) (*GeminiCaptionGenerator, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("create gemini client: %w", err)
	}
	return &GeminiCaptionGenerator{client: client, model: defaultCaptionModel}, nil
}

func (generator *GeminiCaptionGenerator) Generate(ctx context.Context, imageData []byte, mimeType string, prompt string) (string, error) {
	contents := []*genai.Content{
		genai.NewContentFromParts([]*genai.Part{
			genai.NewPartFromBytes(imageData, mimeType),
			genai.NewPartFromText(prompt),
		}, genai.RoleUser),
	}

	response, err := generator.client.Models.GenerateContent(ctx, generator.model, contents, nil)
	if err != nil {
		return "", fmt.Errorf("generate caption: %w", err)
	}
	return response.Text(), nil
}
