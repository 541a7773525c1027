package store

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/azzautomation2026/shama/internal/quiz"
)

// QuizRepo persists saved quizzes, one record per quiz, scoped to the
// owning account. The quiz payload is stored as an opaque JSON blob.
type QuizRepo struct {
	db *gorm.DB
}

// Insert saves a quiz for the given account and returns the quiz with its
// assigned id and creation timestamp filled in.
func (r *QuizRepo) Insert(ctx context.Context, accountID string, q *quiz.Quiz) (quiz.Quiz, error) {
	saved := *q
	saved.ID = uuid.New().String()
	now := time.Now().UTC()
	saved.CreatedAt = &now

	data, err := json.Marshal(&saved)
	if err != nil {
		return quiz.Quiz{}, &PersistenceError{Op: "encode quiz", Err: err}
	}

	rec := QuizRecord{
		ID:        saved.ID,
		AccountID: accountID,
		Data:      string(data),
		CreatedAt: now,
	}
	if err := r.db.WithContext(ctx).Create(&rec).Error; err != nil {
		return quiz.Quiz{}, &PersistenceError{Op: "insert quiz", Err: err}
	}
	return saved, nil
}

// ListByAccount returns the account's saved quizzes, newest first.
// Records whose payload no longer decodes are skipped rather than failing
// the whole list.
func (r *QuizRepo) ListByAccount(ctx context.Context, accountID string) ([]quiz.Quiz, error) {
	var recs []QuizRecord
	err := r.db.WithContext(ctx).
		Where("account_id = ?", accountID).
		Order("created_at DESC").
		Find(&recs).Error
	if err != nil {
		return nil, &PersistenceError{Op: "list quizzes", Err: err}
	}

	out := make([]quiz.Quiz, 0, len(recs))
	for _, rec := range recs {
		var q quiz.Quiz
		if err := json.Unmarshal([]byte(rec.Data), &q); err != nil {
			continue
		}
		q.ID = rec.ID
		created := rec.CreatedAt
		q.CreatedAt = &created
		out = append(out, q)
	}
	return out, nil
}

// Delete removes a saved quiz owned by the account.
func (r *QuizRepo) Delete(ctx context.Context, accountID, quizID string) error {
	err := r.db.WithContext(ctx).
		Where("account_id = ? AND id = ?", accountID, quizID).
		Delete(&QuizRecord{}).Error
	if err != nil {
		return &PersistenceError{Op: "delete quiz", Err: err}
	}
	return nil
}
