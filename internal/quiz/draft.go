package quiz

import (
	"errors"
	"fmt"
	"strings"
)

// Question count limits for a single generation request.
const (
	MinQuestionCount = 1
	MaxQuestionCount = 15
)

// SourceType describes where draft content came from.
type SourceType string

const (
	SourceText SourceType = "text"
	SourceURL  SourceType = "url"
	SourceFile SourceType = "file"
)

// Difficulty of the generated questions.
type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
)

// Draft is the user-editable generation input. It is ephemeral: cleared on
// successful generation or explicit reset, never persisted.
type Draft struct {
	SourceType    SourceType
	Content       string
	Difficulty    Difficulty
	QuestionCount int
	Language      string
	Subject       string // optional
	Tone          string // optional
}

// NewDraft returns a draft with the defaults the create screen starts from.
func NewDraft() Draft {
	return Draft{
		SourceType:    SourceText,
		Difficulty:    DifficultyMedium,
		QuestionCount: 5,
		Language:      "ar",
	}
}

// ErrEmptyContent is returned when the draft content is empty after trimming.
var ErrEmptyContent = errors.New("draft content is empty")

// DraftValidationError reports an invalid draft field.
type DraftValidationError struct {
	Field   string
	Message string
}

func (e *DraftValidationError) Error() string {
	return fmt.Sprintf("invalid draft: %s %s", e.Field, e.Message)
}

// Validate checks the draft before any generation call is made.
// An out-of-range question count is an error, not something to clamp.
func (d Draft) Validate() error {
	if strings.TrimSpace(d.Content) == "" {
		return ErrEmptyContent
	}
	if d.QuestionCount < MinQuestionCount || d.QuestionCount > MaxQuestionCount {
		return &DraftValidationError{
			Field:   "questionCount",
			Message: fmt.Sprintf("must be between %d and %d, got %d", MinQuestionCount, MaxQuestionCount, d.QuestionCount),
		}
	}
	switch d.Difficulty {
	case DifficultyEasy, DifficultyMedium, DifficultyHard:
	default:
		return &DraftValidationError{Field: "difficulty", Message: fmt.Sprintf("unknown value %q", d.Difficulty)}
	}
	switch d.SourceType {
	case SourceText, SourceURL, SourceFile:
	default:
		return &DraftValidationError{Field: "sourceType", Message: fmt.Sprintf("unknown value %q", d.SourceType)}
	}
	if d.Language == "" {
		return &DraftValidationError{Field: "language", Message: "is required"}
	}
	return nil
}
