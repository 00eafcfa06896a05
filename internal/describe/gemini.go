package describe

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"

	"signassist/internal/domain"
)

var descriptionSchema = &genai.Schema{
	Type: genai.TypeObject,
	Properties: map[string]*genai.Schema{
		"handShape": {
			Type:        genai.TypeString,
			Description: "Hand shape(s) and starting position",
		},
		"movement": {
			Type:        genai.TypeString,
			Description: "How the hands move to complete the sign",
		},
		"error": {
			Type:        genai.TypeString,
			Description: "Set only when the input has no sign; hand shape and movement are then \"unknown\"",
		},
	},
	Required: []string{"handShape", "movement"},
}

// GeminiFetcher asks a Google Gemini model for descriptions.
type GeminiFetcher struct {
	client *genai.Client
	model  string
}

// NewGeminiFetcher creates a Gemini client for the given model.
func NewGeminiFetcher(ctx context.Context, apiKey, modelName string) (*GeminiFetcher, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("gemini: %w", ErrMissingAPIKey)
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	return &GeminiFetcher{client: client, model: modelName}, nil
}

// FetchDescription implements Fetcher.
func (f *GeminiFetcher) FetchDescription(ctx context.Context, term string) (domain.SignDescription, error) {
	term, err := checkTerm(term)
	if err != nil {
		return domain.SignDescription{}, err
	}

	model := f.client.GenerativeModel(f.model)
	model.SystemInstruction = &genai.Content{
		Parts: []genai.Part{genai.Text(systemPrompt)},
	}
	model.ResponseMIMEType = "application/json"
	model.ResponseSchema = descriptionSchema
	model.SetTemperature(0.2)

	resp, err := model.GenerateContent(ctx, genai.Text(userPrompt(term)))
	if err != nil {
		return domain.SignDescription{}, fmt.Errorf("gemini generate: %w", err)
	}

	text, err := geminiText(resp)
	if err != nil {
		return domain.SignDescription{}, err
	}
	return ParseDescription(text)
}

// Close releases the underlying client.
func (f *GeminiFetcher) Close() error {
	return f.client.Close()
}

func geminiText(resp *genai.GenerateContentResponse) (string, error) {
	if resp == nil {
		return "", fmt.Errorf("%w: empty Gemini response", ErrMalformedResponse)
	}
	if resp.PromptFeedback != nil && resp.PromptFeedback.BlockReason != genai.BlockReasonUnspecified {
		return "", fmt.Errorf("%w: prompt blocked (%v)", ErrNoDescription, resp.PromptFeedback.BlockReason)
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return "", fmt.Errorf("%w: Gemini returned no candidates", ErrMalformedResponse)
	}

	var b strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if txt, ok := part.(genai.Text); ok {
			b.WriteString(string(txt))
		}
	}
	return b.String(), nil
}
