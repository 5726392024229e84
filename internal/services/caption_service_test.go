package services

import (
	"context"
	"encoding/base64"
	"errors"
	"testing"
)

type captionGeneratorStub struct {
	caption string
	err     error
	prompt  string
	payload []byte
}

func (stub *captionGeneratorStub) Generate(ctx context.Context, imageData []byte, mimeType string, prompt string) (string, error) {
	stub.prompt = prompt
	stub.payload = imageData
	return stub.caption, stub.err
}

func encodedImage() string {
	return base64.StdEncoding.EncodeToString([]byte("fake-jpeg-bytes"))
}

func TestGenerateMotivationalCaptionReturnsModelText(t *testing.T) {
	stub := &captionGeneratorStub{caption: "  Iron sharpens iron.  "}
	service := NewCaptionService(stub)

	caption := service.GenerateMotivationalCaption(context.Background(), encodedImage())

	if caption != "Iron sharpens iron." {
		t.Fatalf("expected trimmed model text, got %q", caption)
	}
	if string(stub.payload) != "fake-jpeg-bytes" {
		t.Fatalf("expected decoded payload, got %q", stub.payload)
	}
	if stub.prompt == "" {
		t.Fatal("expected a non-empty prompt")
	}
}

func TestGenerateMotivationalCaptionAcceptsDataURL(t *testing.T) {
	stub := &captionGeneratorStub{caption: "Keep going."}
	service := NewCaptionService(stub)

	caption := service.GenerateMotivationalCaption(context.Background(), "data:image/jpeg;base64,"+encodedImage())

	if caption != "Keep going." {
		t.Fatalf("expected model text, got %q", caption)
	}
	if string(stub.payload) != "fake-jpeg-bytes" {
		t.Fatalf("expected the data-URL header stripped, got %q", stub.payload)
	}
}

func TestGenerateMotivationalCaptionFallsBackOnEmptyResponse(t *testing.T) {
	service := NewCaptionService(&captionGeneratorStub{caption: "   "})

	caption := service.GenerateMotivationalCaption(context.Background(), encodedImage())

	if caption != "Grind never stops. Keep pushing!" {
		t.Fatalf("expected the empty-response fallback, got %q", caption)
	}
}

func TestGenerateMotivationalCaptionAbsorbsFailures(t *testing.T) {
	want := "Error generating caption. But your gains look great!"

	failing := NewCaptionService(&captionGeneratorStub{err: errors.New("upstream down")})
	if caption := failing.GenerateMotivationalCaption(context.Background(), encodedImage()); caption != want {
		t.Fatalf("expected the error fallback, got %q", caption)
	}

	unconfigured := NewCaptionService(nil)
	if caption := unconfigured.GenerateMotivationalCaption(context.Background(), encodedImage()); caption != want {
		t.Fatalf("expected the error fallback without a generator, got %q", caption)
	}

	badPayload := NewCaptionService(&captionGeneratorStub{caption: "never used"})
	if caption := badPayload.GenerateMotivationalCaption(context.Background(), "not base64!!"); caption != want {
		t.Fatalf("expected the error fallback for a bad payload, got %q", caption)
	}
}
