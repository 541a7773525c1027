package llm

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveModel(t *testing.T) {
	assert.Equal(t, "gemini-2.5-flash", resolveModel("gemini-flash", geminiModels))
	// Unknown names pass through as direct model IDs.
	assert.Equal(t, "gemini-exp-1206", resolveModel("gemini-exp-1206", geminiModels))
}

func TestBuildAnthropicMessages(t *testing.T) {
	msgs := buildAnthropicMessages([]Message{
		{Role: RoleUser, Content: "generate"},
		{Role: RoleAssistant, Content: "here"},
	})
	require.Len(t, msgs, 2)
	assert.Equal(t, "user", string(msgs[0].Role))
	assert.Equal(t, "assistant", string(msgs[1].Role))
}

func TestBuildOpenAIMessagesPrependsSystem(t *testing.T) {
	msgs := buildOpenAIMessages(Request{
		System:   "you write quizzes",
		Messages: []Message{{Role: RoleUser, Content: "source text"}},
	})
	require.Len(t, msgs, 2)
	assert.Equal(t, "system", msgs[0].Role)
	assert.Equal(t, "you write quizzes", msgs[0].Content)
	assert.Equal(t, "user", msgs[1].Role)
}

func TestBuildGeminiSchema(t *testing.T) {
	def := map[string]any{
		"type":        "object",
		"description": "a quiz",
		"properties": map[string]any{
			"title": map[string]any{"type": "string"},
			"questions": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"correctAnswerIndex": map[string]any{"type": "integer"},
					},
				},
			},
			"difficulty": map[string]any{"type": "string", "enum": []any{"easy", "hard"}},
		},
		"required": []any{"title", "questions"},
	}

	s := buildGeminiSchema(def)
	assert.Equal(t, "a quiz", s.Description)
	assert.ElementsMatch(t, []string{"title", "questions"}, s.Required)
	require.Contains(t, s.Properties, "questions")
	require.NotNil(t, s.Properties["questions"].Items)
	assert.Contains(t, s.Properties["questions"].Items.Properties, "correctAnswerIndex")
	assert.Equal(t, []string{"easy", "hard"}, s.Properties["difficulty"].Enum)
}

func TestLookupCost(t *testing.T) {
	c := LookupCost("gemini-2.5-flash")
	require.NotNil(t, c)
	assert.InDelta(t, c.InputPerMTok/1_000_000*1000+c.OutputPerMTok/1_000_000*500, c.Cost(1000, 500), 1e-12)

	assert.Nil(t, LookupCost("no-such-model"))
}
