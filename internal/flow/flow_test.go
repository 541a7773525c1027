package flow

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/azzautomation2026/shama/internal/auth"
	"github.com/azzautomation2026/shama/internal/quiz"
)

func authedSession() auth.Session {
	return auth.Session{
		Authenticated: true,
		User:          &auth.User{ID: "u1", Email: "a@x.com", DisplayName: "A"},
		Entitlement:   auth.EntitlementFree,
	}
}

func premiumSession() auth.Session {
	s := authedSession()
	s.Entitlement = auth.EntitlementPremium
	return s
}

func generatedQuiz(n int) *quiz.Quiz {
	q := &quiz.Quiz{Title: "Generated"}
	for i := 1; i <= n; i++ {
		q.Questions = append(q.Questions, quiz.Question{
			ID:      i,
			Prompt:  "Q",
			Options: []string{"a", "b", "c", "d"},
		})
	}
	return q
}

func savedQuizzes(n int) []quiz.Quiz {
	out := make([]quiz.Quiz, n)
	for i := range out {
		out[i] = quiz.Quiz{ID: string(rune('a' + i)), Title: "saved"}
	}
	return out
}

var allViews = []View{ViewLanding, ViewAuth, ViewPayment, ViewDashboard, ViewCreate, ViewQuiz, ViewSettings}

// Every event sequence must leave the view inside the enumeration.
func TestViewAlwaysEnumerated(t *testing.T) {
	events := []Event{
		OpenAuth{Mode: ModeSignup},
		SessionChanged{Session: authedSession()},
		SignupCompleted{},
		PaymentDismissed{},
		OpenCreate{},
		DraftEdited{Draft: quiz.NewDraft()},
		GenerationRequested{},
		GenerationFailed{Message: "boom"},
		GenerationSucceeded{Quiz: generatedQuiz(3)},
		QuizSelected{Quiz: generatedQuiz(2)},
		OpenSettings{},
		OpenPayment{},
		GoHome{},
		SessionChanged{Session: auth.Anonymous()},
		SavedQuizzesLoaded{Quizzes: savedQuizzes(1)},
		QuizSaved{Quiz: quiz.Quiz{ID: "x"}},
	}

	// Apply every prefix-rotation of the event list; the view must stay
	// inside the closed set at every step.
	for shift := range events {
		c := NewController(DefaultFreeQuota)
		for i := range events {
			c.Apply(events[(i+shift)%len(events)])
			assert.Contains(t, allViews, c.State().View)
		}
	}
}

func TestSignOutFromAnyViewLandsOnLandingAndClears(t *testing.T) {
	for _, start := range allViews {
		c := NewController(DefaultFreeQuota)
		c.Apply(SessionChanged{Session: authedSession()})
		c.State().View = start // force the starting view for the table
		c.Apply(DraftEdited{Draft: quiz.Draft{Content: "some text", QuestionCount: 5, Difficulty: quiz.DifficultyMedium, SourceType: quiz.SourceText, Language: "en"}})
		c.Apply(GenerationFailed{Message: "old error"})
		c.State().Take.Load(generatedQuiz(2))
		c.State().Take.SelectAnswer(1, 1)

		c.Apply(SessionChanged{Session: auth.Anonymous()})

		st := c.State()
		assert.Equal(t, ViewLanding, st.View, "from %s", start)
		assert.Empty(t, st.Err)
		assert.Empty(t, st.Draft.Content)
		assert.Nil(t, st.Take.Quiz())
		assert.Zero(t, st.Take.Answered())
		assert.False(t, st.Generating)
		assert.Empty(t, st.SavedQuizzes)
	}
}

func TestSignupRoutesThroughPayment(t *testing.T) {
	c := NewController(DefaultFreeQuota)
	c.Apply(OpenAuth{Mode: ModeSignup})
	require.Equal(t, ViewAuth, c.State().View)

	c.Apply(SignupCompleted{})
	assert.Equal(t, ViewPayment, c.State().View, "signup never goes straight to dashboard")

	// The session push that follows signup must not bounce the user out of
	// the in-progress checkout.
	c.Apply(SessionChanged{Session: authedSession()})
	assert.Equal(t, ViewPayment, c.State().View)

	c.Apply(PaymentDismissed{})
	assert.Equal(t, ViewDashboard, c.State().View)
	assert.Empty(t, c.State().SavedQuizzes, "fresh account has no saved quizzes")
}

func TestSignInFromAuthOrLandingGoesToDashboard(t *testing.T) {
	for _, start := range []View{ViewLanding, ViewAuth} {
		c := NewController(DefaultFreeQuota)
		if start == ViewAuth {
			c.Apply(OpenAuth{Mode: ModeLogin})
		}
		c.Apply(SessionChanged{Session: authedSession()})
		assert.Equal(t, ViewDashboard, c.State().View, "from %s", start)
	}
}

func TestSessionRefreshKeepsCurrentView(t *testing.T) {
	c := NewController(DefaultFreeQuota)
	c.Apply(SessionChanged{Session: authedSession()})
	c.Apply(OpenCreate{})

	// e.g. a token refresh or entitlement change push
	c.Apply(SessionChanged{Session: premiumSession()})
	assert.Equal(t, ViewCreate, c.State().View)
	assert.True(t, c.State().Session.Premium())
}

func TestGoHome(t *testing.T) {
	c := NewController(DefaultFreeQuota)
	c.Apply(GoHome{})
	assert.Equal(t, ViewLanding, c.State().View)

	c.Apply(SessionChanged{Session: authedSession()})
	c.Apply(OpenCreate{})
	c.Apply(GenerationFailed{Message: "stale"})
	c.Apply(GoHome{})
	assert.Equal(t, ViewDashboard, c.State().View)
	assert.Empty(t, c.State().Err, "go home clears the error banner")
}

func TestQuotaGateRedirectsFreeTierAtCap(t *testing.T) {
	c := NewController(DefaultFreeQuota)
	c.Apply(SessionChanged{Session: authedSession()})
	c.Apply(SavedQuizzesLoaded{Quizzes: savedQuizzes(2)})
	c.Apply(OpenCreate{})

	c.Apply(GenerationRequested{})
	assert.Equal(t, ViewPayment, c.State().View)
	assert.False(t, c.State().Generating, "no generation starts at the cap")
}

func TestQuotaGateAllowsUnderCap(t *testing.T) {
	c := NewController(DefaultFreeQuota)
	c.Apply(SessionChanged{Session: authedSession()})
	c.Apply(SavedQuizzesLoaded{Quizzes: savedQuizzes(1)})
	c.Apply(OpenCreate{})

	c.Apply(GenerationRequested{})
	assert.Equal(t, ViewCreate, c.State().View)
	assert.True(t, c.State().Generating)
}

func TestQuotaGateIgnoresPremium(t *testing.T) {
	c := NewController(DefaultFreeQuota)
	c.Apply(SessionChanged{Session: premiumSession()})
	c.Apply(SavedQuizzesLoaded{Quizzes: savedQuizzes(10)})
	c.Apply(OpenCreate{})

	c.Apply(GenerationRequested{})
	assert.True(t, c.State().Generating)
	assert.Equal(t, ViewCreate, c.State().View)
}

func TestDuplicateGenerationRequestIsNoop(t *testing.T) {
	c := NewController(DefaultFreeQuota)
	c.Apply(SessionChanged{Session: premiumSession()})
	c.Apply(OpenCreate{})
	c.Apply(GenerationRequested{})
	require.True(t, c.State().Generating)

	c.Apply(GenerationRequested{})
	assert.True(t, c.State().Generating)
	assert.Equal(t, ViewCreate, c.State().View)
}

func TestGenerationSuccessLoadsQuizView(t *testing.T) {
	c := NewController(DefaultFreeQuota)
	c.Apply(SessionChanged{Session: authedSession()})
	c.Apply(OpenCreate{})
	d := quiz.NewDraft()
	d.Content = "Photosynthesis converts light to chemical energy."
	c.Apply(DraftEdited{Draft: d})
	c.Apply(GenerationRequested{})

	c.Apply(GenerationSucceeded{Quiz: generatedQuiz(5)})

	st := c.State()
	assert.Equal(t, ViewQuiz, st.View)
	assert.False(t, st.Generating)
	assert.Zero(t, st.Take.Answered())
	assert.False(t, st.Take.Revealed())
	assert.Empty(t, st.Draft.Content, "draft is cleared on success")

	// Answer, reveal, and confirm the post-reveal lock.
	st.Take.SelectAnswer(1, 2)
	idx, _ := st.Take.Answer(1)
	require.Equal(t, 2, idx)
	st.Take.Reveal()
	st.Take.SelectAnswer(1, 0)
	idx, _ = st.Take.Answer(1)
	assert.Equal(t, 2, idx)
}

func TestGenerationFailureKeepsViewAndState(t *testing.T) {
	c := NewController(DefaultFreeQuota)
	c.Apply(SessionChanged{Session: authedSession()})
	c.Apply(QuizSelected{Quiz: generatedQuiz(3)})
	c.State().Take.SelectAnswer(1, 1)

	c.Apply(GenerationFailed{Message: "the model is unavailable"})

	st := c.State()
	assert.Equal(t, ViewQuiz, st.View, "failure leaves the current view unchanged")
	assert.Equal(t, "the model is unavailable", st.Err)
	assert.Equal(t, 1, st.Take.Answered(), "previously loaded quiz state is untouched")
}

func TestOpenCreateDropsLoadedQuiz(t *testing.T) {
	c := NewController(DefaultFreeQuota)
	c.Apply(SessionChanged{Session: authedSession()})
	c.Apply(QuizSelected{Quiz: generatedQuiz(2)})
	require.NotNil(t, c.State().Take.Quiz())

	c.Apply(OpenCreate{})
	assert.Equal(t, ViewCreate, c.State().View)
	assert.Nil(t, c.State().Take.Quiz())
}

func TestOpenSettingsRequiresAuth(t *testing.T) {
	c := NewController(DefaultFreeQuota)
	c.Apply(OpenSettings{})
	assert.Equal(t, ViewLanding, c.State().View)

	c.Apply(SessionChanged{Session: authedSession()})
	c.Apply(OpenSettings{})
	assert.Equal(t, ViewSettings, c.State().View)
}

func TestOptimisticPrependAndRefetchReconciliation(t *testing.T) {
	c := NewController(DefaultFreeQuota)
	c.Apply(SessionChanged{Session: authedSession()})
	c.Apply(SavedQuizzesLoaded{Quizzes: savedQuizzes(1)})

	c.Apply(QuizSaved{Quiz: quiz.Quiz{ID: "new", Title: "optimistic"}})
	require.Len(t, c.State().SavedQuizzes, 2)
	assert.Equal(t, "new", c.State().SavedQuizzes[0].ID, "optimistic record goes first")

	// Prepending the same id again is dropped: the existing record wins.
	c.Apply(QuizSaved{Quiz: quiz.Quiz{ID: "new", Title: "duplicate"}})
	assert.Len(t, c.State().SavedQuizzes, 2)

	// A refetch replaces the list wholesale.
	c.Apply(SavedQuizzesLoaded{Quizzes: savedQuizzes(3)})
	assert.Len(t, c.State().SavedQuizzes, 3)
}

// Anonymous open → restore returns none → landing; signup → payment;
// skip → dashboard with empty list.
func TestAnonymousSignupScenario(t *testing.T) {
	c := NewController(DefaultFreeQuota)
	c.Apply(SessionChanged{Session: auth.Anonymous()}) // restore found nothing
	assert.Equal(t, ViewLanding, c.State().View)

	c.Apply(OpenAuth{Mode: ModeSignup})
	assert.Equal(t, ViewAuth, c.State().View)
	assert.Equal(t, ModeSignup, c.State().AuthMode)

	c.Apply(SignupCompleted{})
	assert.Equal(t, ViewPayment, c.State().View)

	c.Apply(SessionChanged{Session: authedSession()})
	assert.Equal(t, ViewPayment, c.State().View)

	c.Apply(PaymentDismissed{})
	assert.Equal(t, ViewDashboard, c.State().View)
	assert.Empty(t, c.State().SavedQuizzes)
}
