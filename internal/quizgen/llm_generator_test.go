package quizgen

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/azzautomation2026/shama/internal/llm"
	"github.com/azzautomation2026/shama/internal/quiz"
)

func validQuizJSON(t *testing.T, count int) json.RawMessage {
	t.Helper()
	q := quiz.Quiz{
		Title:            "Optics",
		Description:      "Objectives",
		GapAnalysis:      "Refraction confuses learners",
		NextLevelPreview: "Try lenses next",
	}
	for i := 1; i <= count; i++ {
		q.Questions = append(q.Questions, quiz.Question{
			ID:           i,
			Prompt:       "Why does light bend?",
			Options:      []string{"a", "b", "c", "d"},
			CorrectIndex: 1,
			Explanation:  "Because the medium changes",
		})
	}
	data, err := json.Marshal(&q)
	require.NoError(t, err)
	return data
}

func testDraft(count int) quiz.Draft {
	d := quiz.NewDraft()
	d.Content = "Light bends when it enters a denser medium."
	d.QuestionCount = count
	d.Language = "en"
	return d
}

func TestGenerateReturnsParsedQuiz(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: validQuizJSON(t, 3)})
	g := New(mock, DefaultConfig())

	q, err := g.Generate(context.Background(), testDraft(3))
	require.NoError(t, err)
	assert.Equal(t, "Optics", q.Title)
	assert.Len(t, q.Questions, 3)
	assert.False(t, q.Saved(), "generator output is never persisted")

	require.Equal(t, 1, mock.CallCount())
	req := mock.Calls[0]
	assert.NotNil(t, req.Schema)
	assert.Contains(t, req.Messages[0].Content, "exactly 3 questions")
	assert.Contains(t, req.Messages[0].Content, "English")
}

func TestGeneratePromptCarriesDraftFields(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: validQuizJSON(t, 1)})
	g := New(mock, DefaultConfig())

	d := testDraft(1)
	d.Language = "ar"
	d.Difficulty = quiz.DifficultyHard
	d.Subject = "physics"
	_, err := g.Generate(context.Background(), d)
	require.NoError(t, err)

	msg := mock.Calls[0].Messages[0].Content
	assert.Contains(t, msg, "Arabic")
	assert.Contains(t, msg, "hard")
	assert.Contains(t, msg, "physics")
	assert.Contains(t, msg, d.Content)
}

func TestGenerateWrongCountRejected(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: validQuizJSON(t, 2)})
	g := New(mock, DefaultConfig())

	_, err := g.Generate(context.Background(), testDraft(5))
	require.Error(t, err)
	var genErr *GenerationError
	require.ErrorAs(t, err, &genErr)
	assert.True(t, genErr.Retryable)
	assert.Contains(t, genErr.Message, "asked for 5")
}

func TestGenerateMalformedShapeRejected(t *testing.T) {
	bad := quiz.Quiz{
		Title: "Bad",
		Questions: []quiz.Question{
			{ID: 1, Prompt: "Q", Options: []string{"a", "b"}, CorrectIndex: 0},
		},
	}
	data, err := json.Marshal(&bad)
	require.NoError(t, err)

	mock := llm.NewMockProvider(llm.MockResponse{Content: data})
	g := New(mock, DefaultConfig())

	_, err = g.Generate(context.Background(), testDraft(1))
	var genErr *GenerationError
	require.ErrorAs(t, err, &genErr)
	assert.Contains(t, strings.ToLower(genErr.Message), "malformed")
}

func TestGenerateProviderErrorWrapped(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Err: &llm.ErrProviderUnavailable{Err: errors.New("down")}})
	g := New(mock, DefaultConfig())

	_, err := g.Generate(context.Background(), testDraft(1))
	var genErr *GenerationError
	require.ErrorAs(t, err, &genErr)
	var unavail *llm.ErrProviderUnavailable
	assert.ErrorAs(t, err, &unavail)
}

func TestGenerateUnreadableJSONRejected(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: json.RawMessage(`not json at all`)})
	g := New(mock, DefaultConfig())

	_, err := g.Generate(context.Background(), testDraft(1))
	var genErr *GenerationError
	require.ErrorAs(t, err, &genErr)
	assert.True(t, genErr.Retryable)
}
