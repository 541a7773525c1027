package quiz

// Take holds the in-memory state of the quiz currently being taken: the
// loaded quiz, the user's answers, and whether results have been revealed.
// It owns no persistence; loading a new quiz resets everything.
type Take struct {
	quiz     *Quiz
	answers  map[int]int // question id -> chosen option index
	revealed bool
}

// NewTake returns an empty Take with no quiz loaded.
func NewTake() *Take {
	return &Take{answers: make(map[int]int)}
}

// Load replaces the current quiz and clears all answers and the revealed
// flag. Loading is the only way to re-enable answering after a reveal.
func (t *Take) Load(q *Quiz) {
	t.quiz = q
	t.answers = make(map[int]int)
	t.revealed = false
}

// Quiz returns the loaded quiz, or nil.
func (t *Take) Quiz() *Quiz {
	return t.quiz
}

// SelectAnswer records the chosen option for a question. It is a no-op when
// results have been revealed, when no quiz is loaded, or when the question
// id or option index does not belong to the loaded quiz. Answer keys stay a
// subset of the loaded quiz's question ids.
func (t *Take) SelectAnswer(questionID, optionIndex int) {
	if t.revealed || t.quiz == nil {
		return
	}
	q := t.quiz.Question(questionID)
	if q == nil {
		return
	}
	if optionIndex < 0 || optionIndex >= len(q.Options) {
		return
	}
	t.answers[questionID] = optionIndex
}

// Answer returns the chosen option index for a question id.
func (t *Take) Answer(questionID int) (int, bool) {
	idx, ok := t.answers[questionID]
	return idx, ok
}

// Answered returns how many questions have an answer.
func (t *Take) Answered() int {
	return len(t.answers)
}

// Reveal locks answering and switches the take into read-only review mode.
// Irreversible for the lifetime of the loaded quiz.
func (t *Take) Reveal() {
	if t.quiz == nil {
		return
	}
	t.revealed = true
}

// Revealed reports whether results have been revealed.
func (t *Take) Revealed() bool {
	return t.revealed
}

// Correct reports whether the recorded answer for a question is the right
// one. False when the question is unanswered or unknown.
func (t *Take) Correct(questionID int) bool {
	idx, ok := t.answers[questionID]
	if !ok || t.quiz == nil {
		return false
	}
	q := t.quiz.Question(questionID)
	return q != nil && idx == q.CorrectIndex
}
