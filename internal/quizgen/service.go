package quizgen

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/azzautomation2026/shama/internal/auth"
	"github.com/azzautomation2026/shama/internal/quiz"
)

// QuizStore is the slice of the persistence layer the service needs.
type QuizStore interface {
	Insert(ctx context.Context, accountID string, q *quiz.Quiz) (quiz.Quiz, error)
	ListByAccount(ctx context.Context, accountID string) ([]quiz.Quiz, error)
	Delete(ctx context.Context, accountID, quizID string) error
}

// Service orchestrates generation: draft validation, the model call, and
// saving the result for signed-in users.
type Service struct {
	gen     Generator
	quizzes QuizStore
	log     zerolog.Logger
}

// NewService creates a Service. quizzes may be nil, in which case nothing
// is ever persisted.
func NewService(gen Generator, quizzes QuizStore, log zerolog.Logger) *Service {
	return &Service{gen: gen, quizzes: quizzes, log: log}
}

// Generate validates the draft, runs generation, and saves the quiz when a
// signed-in user requested it. A save failure never fails the generation:
// the quiz is returned unsaved and the failure is logged.
func (s *Service) Generate(ctx context.Context, draft quiz.Draft, session auth.Session) (*quiz.Quiz, error) {
	if err := draft.Validate(); err != nil {
		return nil, err
	}

	q, err := s.gen.Generate(ctx, draft)
	if err != nil {
		return nil, err
	}

	if !session.Authenticated || s.quizzes == nil {
		return q, nil
	}

	saved, err := s.quizzes.Insert(ctx, session.User.ID, q)
	if err != nil {
		s.log.Warn().Err(err).Msg("quiz save failed, returning unsaved quiz")
		return q, nil
	}
	return &saved, nil
}

// SavedQuizzes returns the signed-in user's saved quizzes, newest first.
// Anonymous sessions get an empty list.
func (s *Service) SavedQuizzes(ctx context.Context, session auth.Session) ([]quiz.Quiz, error) {
	if !session.Authenticated || s.quizzes == nil {
		return nil, nil
	}
	return s.quizzes.ListByAccount(ctx, session.User.ID)
}

// DeleteQuiz removes one of the signed-in user's saved quizzes.
func (s *Service) DeleteQuiz(ctx context.Context, session auth.Session, quizID string) error {
	if !session.Authenticated || s.quizzes == nil {
		return &auth.Error{Kind: auth.KindNotSignedIn}
	}
	return s.quizzes.Delete(ctx, session.User.ID, quizID)
}
