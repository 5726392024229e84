package services

import (
	"context"
	"encoding/base64"
	"strings"
)

const captionPrompt = "Analyze this fitness physique photo. Act as a hardcore gym coach. " +
	"Write a short, intense, 1-sentence motivational caption for social media " +
	"celebrating the progress seen. Focus on grind, discipline, and gains. " +
	"Do not mention that you are an AI."

const (
	captionEmptyFallback = "Grind never stops. Keep pushing!"
	captionErrorFallback = "Error generating caption. But your gains look great!"
)

// CaptionGenerator produces a caption for an image. Implementations may
// fail; CaptionService absorbs those failures.
type CaptionGenerator interface {
	Generate(ctx context.Context, imageData []byte, mimeType string, prompt string) (string, error)
}

type CaptionService struct {
	generator CaptionGenerator
}

func NewCaptionService(generator CaptionGenerator) *CaptionService {
	return &CaptionService{generator: generator}
}

// GenerateMotivationalCaption always returns a usable caption. Any
// failure past this boundary (bad payload, collaborator down, empty
// response) degrades to a fixed fallback string, never an error.
func (service *CaptionService) GenerateMotivationalCaption(ctx context.Context, base64Image string) string {
	imageData, err := decodeImagePayload(base64Image)
	if err != nil || service.generator == nil {
		return captionErrorFallback
	}

	caption, err := service.generator.Generate(ctx, imageData, "image/jpeg", captionPrompt)
	if err != nil {
		return captionErrorFallback
	}
	caption = strings.TrimSpace(caption)
	if caption == "" {
		return captionEmptyFallback
	}
	return caption
}

// decodeImagePayload accepts both a bare base64 body and a data URL
// ("data:image/png;base64,....").
func decodeImagePayload(payload string) ([]byte, error) {
	cleaned := strings.TrimSpace(payload)
	if index := strings.Index(cleaned, ","); index >= 0 && strings.Contains(cleaned[:index], ";base64") {
		cleaned = cleaned[index+1:]
	}
	return base64.StdEncoding.DecodeString(cleaned)
}
