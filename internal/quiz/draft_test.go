package quiz

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validDraft() Draft {
	d := NewDraft()
	d.Content = "Photosynthesis converts light to chemical energy."
	return d
}

func TestValidateEmptyContent(t *testing.T) {
	d := validDraft()

	for _, content := range []string{"", "   ", "\n\t "} {
		d.Content = content
		err := d.Validate()
		assert.ErrorIs(t, err, ErrEmptyContent)
	}
}

func TestValidateQuestionCountRange(t *testing.T) {
	d := validDraft()

	for _, count := range []int{0, -1, 16, 100} {
		d.QuestionCount = count
		err := d.Validate()
		require.Error(t, err)

		var verr *DraftValidationError
		require.True(t, errors.As(err, &verr))
		assert.Equal(t, "questionCount", verr.Field)
	}

	for _, count := range []int{1, 5, 15} {
		d.QuestionCount = count
		assert.NoError(t, d.Validate())
	}
}

func TestValidateEnums(t *testing.T) {
	d := validDraft()
	d.Difficulty = "impossible"
	assert.Error(t, d.Validate())

	d = validDraft()
	d.SourceType = "carrier-pigeon"
	assert.Error(t, d.Validate())

	d = validDraft()
	d.Language = ""
	assert.Error(t, d.Validate())
}

func TestQuizValidateShape(t *testing.T) {
	q := sampleQuiz()
	assert.NoError(t, q.ValidateShape())

	bad := sampleQuiz()
	bad.Questions[0].Options = []string{"a", "b", "c"}
	assert.Error(t, bad.ValidateShape())

	bad = sampleQuiz()
	bad.Questions[1].CorrectIndex = 4
	assert.Error(t, bad.ValidateShape())

	bad = sampleQuiz()
	bad.Questions[1].ID = bad.Questions[0].ID
	assert.Error(t, bad.ValidateShape())

	empty := &Quiz{Title: "empty"}
	assert.Error(t, empty.ValidateShape())
}
