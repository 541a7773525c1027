package quiz

import (
	"fmt"
	"time"
)

// OptionsPerQuestion is the fixed number of choices on every question.
const OptionsPerQuestion = 4

// Question is a single multiple-choice question.
type Question struct {
	// ID is unique within its quiz. Assigned by the generator.
	ID int `json:"id"`

	// Prompt is the question text shown to the user.
	Prompt string `json:"question"`

	// Options holds exactly 4 answer choices.
	Options []string `json:"options"`

	// CorrectIndex is the index into Options of the right answer (0-3).
	CorrectIndex int `json:"correctAnswerIndex"`

	// Explanation describes why the correct answer is correct.
	// Shown only after results are revealed.
	Explanation string `json:"explanation"`
}

// Quiz is a generated assessment. ID and CreatedAt are zero until the
// quiz has been persisted; a quiz straight out of the generator has neither.
type Quiz struct {
	ID               string     `json:"id,omitempty"`
	Title            string     `json:"title"`
	Description      string     `json:"description"`
	GapAnalysis      string     `json:"gapAnalysis"`
	NextLevelPreview string     `json:"nextLevelPreview"`
	Questions        []Question `json:"questions"`
	CreatedAt        *time.Time `json:"created_at,omitempty"`
}

// Saved reports whether this quiz has been persisted.
func (q *Quiz) Saved() bool {
	return q.ID != ""
}

// ValidateShape checks the structural invariants on a quiz coming in from
// an external source: every question carries exactly 4 options, a correct
// index inside that range, and a unique id. Malformed shapes are rejected
// here rather than crashing later in the UI.
func (q *Quiz) ValidateShape() error {
	if len(q.Questions) == 0 {
		return fmt.Errorf("quiz has no questions")
	}
	seen := make(map[int]bool, len(q.Questions))
	for i, qu := range q.Questions {
		if len(qu.Options) != OptionsPerQuestion {
			return fmt.Errorf("question %d: got %d options, want %d", i+1, len(qu.Options), OptionsPerQuestion)
		}
		if qu.CorrectIndex < 0 || qu.CorrectIndex >= len(qu.Options) {
			return fmt.Errorf("question %d: correct answer index %d out of range", i+1, qu.CorrectIndex)
		}
		if seen[qu.ID] {
			return fmt.Errorf("question %d: duplicate id %d", i+1, qu.ID)
		}
		seen[qu.ID] = true
	}
	return nil
}

// Question returns the question with the given id, or nil.
func (q *Quiz) Question(id int) *Question {
	for i := range q.Questions {
		if q.Questions[i].ID == id {
			return &q.Questions[i]
		}
	}
	return nil
}
