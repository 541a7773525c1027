package quizgen

import "fmt"

// GenerationError describes why quiz generation failed. Message is safe to
// show in the UI error banner.
type GenerationError struct {
	Message   string
	Retryable bool
	Err       error
}

func (e *GenerationError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("quiz generation: %s: %v", e.Message, e.Err)
	}
	return fmt.Sprintf("quiz generation: %s", e.Message)
}

func (e *GenerationError) Unwrap() error { return e.Err }
