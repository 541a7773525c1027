package flow

import (
	"github.com/azzautomation2026/shama/internal/auth"
	"github.com/azzautomation2026/shama/internal/quiz"
)

// Event is anything the controller can apply: user navigation, async
// completions, and external session pushes all enter through the same
// transition function.
type Event interface {
	isFlowEvent()
}

// SessionChanged is pushed by the session tracker on sign-in, sign-out,
// restore, and entitlement change.
type SessionChanged struct {
	Session auth.Session
}

// GoHome is the user's "go home" request: dashboard when authenticated,
// landing otherwise.
type GoHome struct{}

// OpenAuth opens the auth form in the given sub-mode.
type OpenAuth struct {
	Mode AuthMode
}

// SignupCompleted fires after a successful sign-up. Signup always routes
// through the paywall before the dashboard.
type SignupCompleted struct{}

// OpenCreate opens the draft editor, dropping any loaded quiz.
type OpenCreate struct{}

// DraftEdited replaces the working draft.
type DraftEdited struct {
	Draft quiz.Draft
}

// GenerationRequested asks to generate from the working draft. The quota
// gate is applied here; a free-tier session at its cap is routed to payment
// instead and no generation starts.
type GenerationRequested struct{}

// GenerationSucceeded delivers a freshly generated quiz.
type GenerationSucceeded struct {
	Quiz *quiz.Quiz
}

// GenerationFailed delivers the single user-visible error string for a
// failed generation. The view does not change.
type GenerationFailed struct {
	Message string
}

// QuizSelected loads a saved quiz from the dashboard list.
type QuizSelected struct {
	Quiz *quiz.Quiz
}

// OpenPayment shows the paywall explicitly.
type OpenPayment struct{}

// PaymentDismissed skips the paywall back to the dashboard.
type PaymentDismissed struct{}

// OpenSettings opens the settings view. Authenticated sessions only.
type OpenSettings struct{}

// SavedQuizzesLoaded replaces the saved-quiz list with a fresh fetch.
// The store's view wins over any optimistic local entries.
type SavedQuizzesLoaded struct {
	Quizzes []quiz.Quiz
}

// QuizSaved optimistically prepends a just-persisted quiz, pending the next
// full refetch.
type QuizSaved struct {
	Quiz quiz.Quiz
}

func (SessionChanged) isFlowEvent()      {}
func (GoHome) isFlowEvent()              {}
func (OpenAuth) isFlowEvent()            {}
func (SignupCompleted) isFlowEvent()     {}
func (OpenCreate) isFlowEvent()          {}
func (DraftEdited) isFlowEvent()         {}
func (GenerationRequested) isFlowEvent() {}
func (GenerationSucceeded) isFlowEvent() {}
func (GenerationFailed) isFlowEvent()    {}
func (QuizSelected) isFlowEvent()        {}
func (OpenPayment) isFlowEvent()         {}
func (PaymentDismissed) isFlowEvent()    {}
func (OpenSettings) isFlowEvent()        {}
func (SavedQuizzesLoaded) isFlowEvent()  {}
func (QuizSaved) isFlowEvent()           {}
