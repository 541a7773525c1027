package quizgen

import (
	"context"

	"github.com/azzautomation2026/shama/internal/quiz"
)

// Generator produces a full quiz from a validated draft.
type Generator interface {
	// Generate produces a quiz for the given draft. The returned quiz has
	// passed shape validation and carries exactly draft.QuestionCount
	// questions.
	Generate(ctx context.Context, draft quiz.Draft) (*quiz.Quiz, error)
}
