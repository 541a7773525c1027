package store

import (
	"context"
	"time"

	"gorm.io/gorm"
)

// RequestLogEntry is one provider call worth recording.
type RequestLogEntry struct {
	Provider     string
	Model        string
	Purpose      string
	InputTokens  int
	OutputTokens int
	Latency      time.Duration
	Success      bool
	ErrorMessage string
}

// RequestLogRepo appends provider call records. Logging is advisory:
// callers ignore append failures.
type RequestLogRepo struct {
	db *gorm.DB
}

func (r *RequestLogRepo) Append(ctx context.Context, e RequestLogEntry) error {
	rec := LLMRequestLog{
		Provider:     e.Provider,
		Model:        e.Model,
		Purpose:      e.Purpose,
		InputTokens:  e.InputTokens,
		OutputTokens: e.OutputTokens,
		LatencyMs:    e.Latency.Milliseconds(),
		Success:      e.Success,
		ErrorMessage: e.ErrorMessage,
	}
	if err := r.db.WithContext(ctx).Create(&rec).Error; err != nil {
		return &PersistenceError{Op: "append request log", Err: err}
	}
	return nil
}

// Recent returns the newest n log rows, newest first.
func (r *RequestLogRepo) Recent(ctx context.Context, n int) ([]LLMRequestLog, error) {
	var recs []LLMRequestLog
	err := r.db.WithContext(ctx).Order("id DESC").Limit(n).Find(&recs).Error
	if err != nil {
		return nil, &PersistenceError{Op: "list request log", Err: err}
	}
	return recs, nil
}
