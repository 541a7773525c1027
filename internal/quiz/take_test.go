package quiz

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func sampleQuiz() *Quiz {
	return &Quiz{
		Title: "Photosynthesis",
		Questions: []Question{
			{ID: 1, Prompt: "Q1", Options: []string{"a", "b", "c", "d"}, CorrectIndex: 2},
			{ID: 2, Prompt: "Q2", Options: []string{"a", "b", "c", "d"}, CorrectIndex: 0},
		},
	}
}

func TestSelectAnswerUpserts(t *testing.T) {
	take := NewTake()
	take.Load(sampleQuiz())

	take.SelectAnswer(1, 2)
	idx, ok := take.Answer(1)
	assert.True(t, ok)
	assert.Equal(t, 2, idx)

	take.SelectAnswer(1, 3)
	idx, _ = take.Answer(1)
	assert.Equal(t, 3, idx, "second select should replace the first")
}

func TestSelectAnswerAfterRevealIsNoop(t *testing.T) {
	take := NewTake()
	take.Load(sampleQuiz())

	take.SelectAnswer(1, 2)
	take.Reveal()
	assert.True(t, take.Revealed())

	take.SelectAnswer(1, 0)
	idx, _ := take.Answer(1)
	assert.Equal(t, 2, idx, "answers are locked after reveal")
}

func TestSelectAnswerRejectsUnknownQuestionAndOption(t *testing.T) {
	take := NewTake()
	take.Load(sampleQuiz())

	take.SelectAnswer(99, 0)
	take.SelectAnswer(1, 7)
	take.SelectAnswer(1, -1)

	assert.Equal(t, 0, take.Answered())
}

func TestLoadClearsAnswersAndReveal(t *testing.T) {
	take := NewTake()
	take.Load(sampleQuiz())
	take.SelectAnswer(1, 1)
	take.Reveal()

	take.Load(sampleQuiz())
	assert.False(t, take.Revealed())
	assert.Equal(t, 0, take.Answered())

	// Answering is re-enabled by the new load.
	take.SelectAnswer(2, 0)
	assert.Equal(t, 1, take.Answered())
}

func TestCorrect(t *testing.T) {
	take := NewTake()
	take.Load(sampleQuiz())

	take.SelectAnswer(1, 2)
	take.SelectAnswer(2, 3)

	assert.True(t, take.Correct(1))
	assert.False(t, take.Correct(2))
	assert.False(t, take.Correct(99), "unanswered/unknown is never correct")
}

func TestRevealWithoutQuizIsNoop(t *testing.T) {
	take := NewTake()
	take.Reveal()
	assert.False(t, take.Revealed())
}
