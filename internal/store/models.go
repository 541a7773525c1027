package store

import "time"

// Account is a local user account. Passwords are stored as bcrypt hashes.
type Account struct {
	ID           string `gorm:"primaryKey;size:36"`
	Email        string `gorm:"uniqueIndex;not null"`
	DisplayName  string
	PasswordHash string `gorm:"not null"`
	Premium      bool   `gorm:"not null;default:false"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// ActiveSession is the single-row persisted session: which account was
// signed in when the app last ran. At most one row exists.
type ActiveSession struct {
	ID        uint   `gorm:"primaryKey"`
	AccountID string `gorm:"size:36;not null"`
	CreatedAt time.Time
}

// QuizRecord holds one saved quiz. The quiz payload is an opaque JSON blob;
// created_at orders the owner's list newest-first.
type QuizRecord struct {
	ID        string `gorm:"primaryKey;size:36"`
	AccountID string `gorm:"index;size:36;not null"`
	Data      string `gorm:"not null"`
	CreatedAt time.Time
}

// LLMRequestLog records one call to the generation provider.
type LLMRequestLog struct {
	ID           uint   `gorm:"primaryKey"`
	Provider     string `gorm:"size:32"`
	Model        string `gorm:"size:64"`
	Purpose      string `gorm:"size:32"`
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
	CreatedAt    time.Time
}
