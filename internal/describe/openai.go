package describe

import (
	"context"
	"fmt"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
	"github.com/openai/openai-go/shared"

	"signassist/internal/domain"
)

// OpenAIFetcher asks an OpenAI-compatible chat completion endpoint for
// descriptions.
type OpenAIFetcher struct {
	client *openai.Client
	model  string
}

// NewOpenAIFetcher creates an OpenAI client. An empty baseURL targets the
// public API.
func NewOpenAIFetcher(apiKey, modelName, baseURL string) (*OpenAIFetcher, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("openai: %w", ErrMissingAPIKey)
	}

	opts := []option.RequestOption{
		option.WithAPIKey(apiKey),
		option.WithMaxRetries(0),
	}
	if baseURL != "" {
		opts = append(opts, option.WithBaseURL(baseURL))
	}

	client := openai.NewClient(opts...)

	return &OpenAIFetcher{client: &client, model: modelName}, nil
}

// FetchDescription implements Fetcher.
func (f *OpenAIFetcher) FetchDescription(ctx context.Context, term string) (domain.SignDescription, error) {
	term, err := checkTerm(term)
	if err != nil {
		return domain.SignDescription{}, err
	}

	params := openai.ChatCompletionNewParams{
		Model: shared.ChatModel(f.model),
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(systemPrompt),
			openai.UserMessage(userPrompt(term)),
		},
		ResponseFormat: openai.ChatCompletionNewParamsResponseFormatUnion{
			OfJSONObject: &shared.ResponseFormatJSONObjectParam{},
		},
		Temperature: openai.Float(0.2),
	}

	completion, err := f.client.Chat.Completions.New(ctx, params)
	if err != nil {
		return domain.SignDescription{}, fmt.Errorf("openai generate: %w", err)
	}
	if len(completion.Choices) == 0 {
		return domain.SignDescription{}, fmt.Errorf("%w: OpenAI returned no choices", ErrMalformedResponse)
	}

	return ParseDescription(completion.Choices[0].Message.Content)
}
