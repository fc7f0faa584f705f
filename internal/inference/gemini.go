package inference

import (
	"context"
	"errors"

	"google.golang.org/genai"

	apperrors "github.com/nilayfuladi/plant-identifier/internal/errors"
	"github.com/nilayfuladi/plant-identifier/internal/imageprep"
)

// Decoding controls for identification answers. Low temperature keeps the
// model close to the requested line format.
const (
	temperature     = 0.2
	topP            = 0.8
	topK            = 40
	maxOutputTokens = 300
)

// GeminiDescriber implements PlantDescriber against the Gemini API.
type GeminiDescriber struct {
	client    *genai.Client
	modelName string
}

// NewGeminiDescriber creates a describer using an API key from configuration.
func NewGeminiDescriber(ctx context.Context, apiKey, modelName string) (*GeminiDescriber, error) {
	if apiKey == "" {
		return nil, apperrors.NewConfigurationError("missing Gemini API key", nil)
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, apperrors.NewConfigurationError("failed to create Gemini client", err)
	}

	return &GeminiDescriber{
		client:    client,
		modelName: modelName,
	}, nil
}

// DescribePlant sends the prompt and the normalized image to Gemini and
// returns the raw text answer. One attempt only; the context carries the
// caller's timeout.
func (g *GeminiDescriber) DescribePlant(ctx context.Context, img *imageprep.NormalizedImage, prompt string) (string, error) {
	resp, err := g.client.Models.GenerateContent(ctx, g.modelName,
		[]*genai.Content{{
			Role: "user",
			Parts: []*genai.Part{
				{Text: prompt},
				{InlineData: &genai.Blob{MIMEType: img.MIMEType, Data: img.Data}},
			},
		}},
		&genai.GenerateContentConfig{
			Temperature:     genai.Ptr(float32(temperature)),
			TopP:            genai.Ptr(float32(topP)),
			TopK:            genai.Ptr(float32(topK)),
			MaxOutputTokens: maxOutputTokens,
		},
	)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return "", apperrors.NewTimeoutError("inference call timed out", err)
		}
		return "", apperrors.NewInferenceError("gemini generate failed", err)
	}

	text := resp.Text()
	if text == "" {
		return "", apperrors.NewInferenceError("empty response from inference service", nil)
	}
	return text, nil
}
