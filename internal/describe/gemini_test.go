package describe

import (
	"context"
	"testing"

	"github.com/google/generative-ai-go/genai"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGeminiTextJoinsParts(t *testing.T) {
	resp := &genai.GenerateContentResponse{
		Candidates: []*genai.Candidate{{
			Content: &genai.Content{Parts: []genai.Part{
				genai.Text(`{"handShape":"A hand",`),
				genai.Text(`"movement":"lift"}`),
			}},
		}},
	}
	text, err := geminiText(resp)
	require.NoError(t, err)

	desc, err := ParseDescription(text)
	require.NoError(t, err)
	assert.Equal(t, "A hand", desc.HandShape)
	assert.Equal(t, "lift", desc.Movement)
}

func TestGeminiTextNoCandidates(t *testing.T) {
	_, err := geminiText(&genai.GenerateContentResponse{})
	assert.ErrorIs(t, err, ErrMalformedResponse)

	_, err = geminiText(nil)
	assert.ErrorIs(t, err, ErrMalformedResponse)
}

func TestGeminiTextBlockedPrompt(t *testing.T) {
	resp := &genai.GenerateContentResponse{
		PromptFeedback: &genai.PromptFeedback{BlockReason: genai.BlockReasonSafety},
	}
	_, err := geminiText(resp)
	assert.ErrorIs(t, err, ErrNoDescription)
}

func TestGeminiSchemaRequiresObject(t *testing.T) {
	assert.Equal(t, genai.TypeObject, descriptionSchema.Type)
	assert.Contains(t, descriptionSchema.Properties, "handShape")
	assert.Contains(t, descriptionSchema.Properties, "movement")
}

func TestNewGeminiFetcherRequiresKey(t *testing.T) {
	_, err := NewGeminiFetcher(context.Background(), "", "gemini-2.5-flash")
	assert.ErrorIs(t, err, ErrMissingAPIKey)
}

func TestDescriptionSchemaRequiresBothFields(t *testing.T) {
	assert.ElementsMatch(t, []string{"handShape", "movement"}, descriptionSchema.Required)
	for _, name := range descriptionSchema.Required {
		assert.Contains(t, descriptionSchema.Properties, name)
	}
}
