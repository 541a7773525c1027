package flow

import (
	"github.com/azzautomation2026/shama/internal/auth"
	"github.com/azzautomation2026/shama/internal/quiz"
)

// View is one of the seven application views. Exactly one is active at a
// time; only the controller assigns it.
type View string

const (
	ViewLanding   View = "landing"
	ViewAuth      View = "auth"
	ViewPayment   View = "payment"
	ViewDashboard View = "dashboard"
	ViewCreate    View = "create"
	ViewQuiz      View = "quiz"
	ViewSettings  View = "settings"
)

// AuthMode is the auth form sub-mode.
type AuthMode string

const (
	ModeLogin  AuthMode = "login"
	ModeSignup AuthMode = "signup"
)

// DefaultFreeQuota is the saved-quiz cap for free-tier sessions.
const DefaultFreeQuota = 2

// State is the full application state the controller owns. Screens read it
// and request transitions through events; nothing else writes it.
type State struct {
	View     View
	AuthMode AuthMode
	Session  auth.Session

	Draft        quiz.Draft
	Take         *quiz.Take
	SavedQuizzes []quiz.Quiz

	Generating bool   // one generation in flight at most
	Err        string // user-visible error banner, empty when none
}

// Controller applies events to the state. All mutation goes through Apply,
// so every transition is observable and the view is always one of the
// enumerated seven.
type Controller struct {
	state     State
	freeQuota int
}

// NewController starts on landing with an anonymous session.
func NewController(freeQuota int) *Controller {
	if freeQuota <= 0 {
		freeQuota = DefaultFreeQuota
	}
	return &Controller{
		state: State{
			View:     ViewLanding,
			AuthMode: ModeLogin,
			Session:  auth.Anonymous(),
			Draft:    quiz.NewDraft(),
			Take:     quiz.NewTake(),
		},
		freeQuota: freeQuota,
	}
}

// State returns the current state.
func (c *Controller) State() *State {
	return &c.state
}

// AtFreeQuota reports whether a free-tier session has used up its
// saved-quiz allowance.
func (c *Controller) AtFreeQuota() bool {
	if c.state.Session.Premium() {
		return false
	}
	return len(c.state.SavedQuizzes) >= c.freeQuota
}

// Apply runs one transition. Unrecognized events are no-ops.
func (c *Controller) Apply(ev Event) {
	switch ev := ev.(type) {
	case SessionChanged:
		c.applySessionChanged(ev.Session)

	case GoHome:
		if c.state.Session.Authenticated {
			c.clearWorkingState()
			c.state.View = ViewDashboard
		} else {
			c.state.View = ViewLanding
		}

	case OpenAuth:
		c.state.AuthMode = ev.Mode
		c.state.View = ViewAuth

	case SignupCompleted:
		// Always through the paywall, never straight to the dashboard.
		c.state.View = ViewPayment

	case OpenCreate:
		c.state.Take.Load(nil)
		c.state.Err = ""
		c.state.View = ViewCreate

	case DraftEdited:
		c.state.Draft = ev.Draft

	case GenerationRequested:
		if c.state.Generating {
			return
		}
		if c.AtFreeQuota() {
			c.state.View = ViewPayment
			return
		}
		c.state.Err = ""
		c.state.Generating = true

	case GenerationSucceeded:
		c.state.Generating = false
		c.state.Err = ""
		c.state.Draft = quiz.NewDraft()
		c.state.Take.Load(ev.Quiz)
		c.state.View = ViewQuiz

	case GenerationFailed:
		c.state.Generating = false
		c.state.Err = ev.Message

	case QuizSelected:
		c.state.Err = ""
		c.state.Take.Load(ev.Quiz)
		c.state.View = ViewQuiz

	case OpenPayment:
		c.state.View = ViewPayment

	case PaymentDismissed:
		c.state.View = ViewDashboard

	case OpenSettings:
		if c.state.Session.Authenticated {
			c.state.View = ViewSettings
		}

	case SavedQuizzesLoaded:
		c.state.SavedQuizzes = ev.Quizzes

	case QuizSaved:
		c.prependSaved(ev.Quiz)
	}
}

// applySessionChanged reconciles an external session push. Takes precedence
// over whatever the user was doing.
func (c *Controller) applySessionChanged(s auth.Session) {
	if !s.Authenticated {
		c.state.Session = auth.Anonymous()
		c.clearWorkingState()
		c.state.SavedQuizzes = nil
		c.state.View = ViewLanding
		return
	}

	c.state.Session = s
	switch c.state.View {
	case ViewLanding, ViewAuth:
		c.state.View = ViewDashboard
	case ViewPayment:
		// Don't bounce the user out of an in-progress checkout.
	default:
		// Entitlement refresh etc. keeps the current view.
	}
}

// clearWorkingState drops the quiz, draft, answers, error, and any
// in-flight loading flag.
func (c *Controller) clearWorkingState() {
	c.state.Take = quiz.NewTake()
	c.state.Draft = quiz.NewDraft()
	c.state.Err = ""
	c.state.Generating = false
}

// prependSaved inserts an optimistic record at the head of the saved list.
// On id collision the existing (store-provided) record wins.
func (c *Controller) prependSaved(q quiz.Quiz) {
	for _, existing := range c.state.SavedQuizzes {
		if existing.ID != "" && existing.ID == q.ID {
			return
		}
	}
	c.state.SavedQuizzes = append([]quiz.Quiz{q}, c.state.SavedQuizzes...)
}
