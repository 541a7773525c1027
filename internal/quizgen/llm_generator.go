package quizgen

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/azzautomation2026/shama/internal/llm"
	"github.com/azzautomation2026/shama/internal/quiz"
)

// Config controls the behavior of the LLMGenerator.
type Config struct {
	// MaxTokens is the token budget for the response. Needs headroom for
	// the explanations, which run long.
	MaxTokens int

	// Temperature controls output randomness (0.0-1.0).
	Temperature float64
}

// DefaultConfig returns the recommended generation settings.
func DefaultConfig() Config {
	return Config{
		MaxTokens:   8192,
		Temperature: 0.8,
	}
}

// LLMGenerator implements Generator on top of a model provider.
type LLMGenerator struct {
	provider llm.Provider
	config   Config
}

// New creates an LLMGenerator with the given provider and config.
func New(provider llm.Provider, cfg Config) *LLMGenerator {
	return &LLMGenerator{provider: provider, config: cfg}
}

// Generate produces a quiz for the given draft. The draft is assumed valid;
// callers run draft.Validate first. The model output is checked against the
// quiz shape invariants and the requested question count before it is
// returned.
func (g *LLMGenerator) Generate(ctx context.Context, draft quiz.Draft) (*quiz.Quiz, error) {
	ctx = llm.WithPurpose(ctx, "quiz-generation")

	req := llm.Request{
		System: systemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildUserMessage(draft)},
		},
		Schema:      QuizSchema,
		MaxTokens:   g.config.MaxTokens,
		Temperature: g.config.Temperature,
	}

	resp, err := g.provider.Generate(ctx, req)
	if err != nil {
		return nil, &GenerationError{
			Message:   "the model could not generate a quiz",
			Retryable: true,
			Err:       err,
		}
	}

	var q quiz.Quiz
	if err := json.Unmarshal(resp.Content, &q); err != nil {
		return nil, &GenerationError{
			Message:   "the model returned an unreadable quiz",
			Retryable: true,
			Err:       err,
		}
	}

	if err := q.ValidateShape(); err != nil {
		return nil, &GenerationError{
			Message:   "the generated quiz was malformed",
			Retryable: true,
			Err:       err,
		}
	}
	if len(q.Questions) != draft.QuestionCount {
		return nil, &GenerationError{
			Message:   fmt.Sprintf("asked for %d questions, got %d", draft.QuestionCount, len(q.Questions)),
			Retryable: true,
		}
	}

	return &q, nil
}
