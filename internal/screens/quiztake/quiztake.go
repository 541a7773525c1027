package quiztake

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/azzautomation2026/shama/internal/flow"
	"github.com/azzautomation2026/shama/internal/quiz"
	"github.com/azzautomation2026/shama/internal/screen"
	"github.com/azzautomation2026/shama/internal/ui/components"
	"github.com/azzautomation2026/shama/internal/ui/layout"
	"github.com/azzautomation2026/shama/internal/ui/theme"
)

// QuizScreen walks through the loaded quiz one question at a time, then
// shows the graded review after reveal.
type QuizScreen struct {
	state   *flow.State
	options []components.OptionList
	current int
}

var _ screen.Screen = (*QuizScreen)(nil)
var _ screen.KeyHintProvider = (*QuizScreen)(nil)

// New creates the quiz screen for the quiz loaded in the take.
func New(state *flow.State) *QuizScreen {
	s := &QuizScreen{state: state}
	if q := state.Take.Quiz(); q != nil {
		s.options = make([]components.OptionList, len(q.Questions))
		for i, qu := range q.Questions {
			s.options[i] = components.NewOptionList(qu.Prompt, qu.Options, qu.CorrectIndex)
			if idx, ok := state.Take.Answer(qu.ID); ok {
				s.options[i].Chosen = idx
			}
			s.options[i].Revealed = state.Take.Revealed()
		}
	}
	return s
}

func (s *QuizScreen) Title() string {
	if q := s.state.Take.Quiz(); q != nil {
		return q.Title
	}
	return "Quiz"
}

func (s *QuizScreen) Init() tea.Cmd { return nil }

func (s *QuizScreen) KeyHints() []layout.KeyHint {
	if s.state.Take.Revealed() {
		return []layout.KeyHint{
			{Key: "←→", Description: "Question"},
			{Key: "Esc", Description: "Dashboard"},
		}
	}
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Option"},
		{Key: "Enter", Description: "Pick"},
		{Key: "←→", Description: "Question"},
		{Key: "r", Description: "Reveal results"},
		{Key: "Esc", Description: "Dashboard"},
	}
}

func (s *QuizScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok && kmsg.String() == "esc" {
		return s, func() tea.Msg { return flow.GoHome{} }
	}

	q := s.state.Take.Quiz()
	if q == nil || len(s.options) == 0 {
		return s, nil
	}

	if kmsg, ok := msg.(tea.KeyMsg); ok {
		switch kmsg.String() {
		case "left", "p":
			if s.current > 0 {
				s.current--
			}
			return s, nil
		case "right", "n":
			if s.current < len(q.Questions)-1 {
				s.current++
			}
			return s, nil
		case "r":
			if !s.state.Take.Revealed() && s.state.Take.Answered() > 0 {
				s.state.Take.Reveal()
				for i := range s.options {
					s.options[i].Revealed = true
				}
			}
			return s, nil
		}
	}

	// Forward to the current question's option list and mirror the pick
	// into the take, which enforces the post-reveal lock.
	var cmd tea.Cmd
	before := s.options[s.current].Chosen
	s.options[s.current], cmd = s.options[s.current].Update(msg)
	if after := s.options[s.current].Chosen; after != before && after >= 0 {
		s.state.Take.SelectAnswer(q.Questions[s.current].ID, after)
		// The take is authoritative: if it rejected the pick, roll back.
		if idx, ok := s.state.Take.Answer(q.Questions[s.current].ID); ok {
			s.options[s.current].Chosen = idx
		} else {
			s.options[s.current].Chosen = before
		}
	}
	return s, cmd
}

func (s *QuizScreen) View(width, height int) string {
	q := s.state.Take.Quiz()
	if q == nil || len(s.options) == 0 {
		return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center,
			theme.Hint.Render("No quiz loaded."))
	}

	var b strings.Builder
	innerWidth := min(width-8, 76)

	progress := components.NewProgressBar(
		fmt.Sprintf("Question %d/%d", s.current+1, len(q.Questions)),
		float64(s.current+1)/float64(len(q.Questions)),
		false,
		innerWidth-4,
	)
	b.WriteString(progress.View())
	b.WriteString("\n\n")

	b.WriteString(s.options[s.current].View())

	qu := q.Questions[s.current]
	if s.state.Take.Revealed() {
		b.WriteString("\n")
		verdict := theme.Incorrect.Render("✗ Incorrect")
		if s.state.Take.Correct(qu.ID) {
			verdict = theme.Correct.Render("✓ Correct")
		} else if _, ok := s.state.Take.Answer(qu.ID); !ok {
			verdict = theme.Hint.Render("— Not answered")
		}
		b.WriteString(verdict)
		b.WriteString("\n\n")
		b.WriteString(lipgloss.NewStyle().Foreground(theme.Secondary).Bold(true).Render("Why"))
		b.WriteString("\n")
		b.WriteString(lipgloss.NewStyle().Foreground(theme.Text).Width(innerWidth - 4).Render(qu.Explanation))
		b.WriteString("\n")

		if s.current == len(q.Questions)-1 {
			b.WriteString("\n")
			b.WriteString(s.renderSummary(q.Questions, innerWidth))
		}
	} else {
		b.WriteString("\n")
		b.WriteString(theme.Hint.Render(fmt.Sprintf("%d of %d answered · press r to reveal results",
			s.state.Take.Answered(), len(q.Questions))))
		b.WriteString("\n")
	}

	card := theme.Card.Width(innerWidth).Render(b.String())
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, card)
}

func (s *QuizScreen) renderSummary(questions []quiz.Question, innerWidth int) string {
	correct := 0
	for _, qu := range questions {
		if s.state.Take.Correct(qu.ID) {
			correct++
		}
	}

	var b strings.Builder
	b.WriteString(theme.Title.Render(fmt.Sprintf("Score: %d/%d", correct, len(questions))))
	b.WriteString("\n\n")

	q := s.state.Take.Quiz()
	if q.GapAnalysis != "" {
		b.WriteString(lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Render("Understanding gaps"))
		b.WriteString("\n")
		b.WriteString(lipgloss.NewStyle().Foreground(theme.Text).Width(innerWidth - 4).Render(q.GapAnalysis))
		b.WriteString("\n\n")
	}
	if q.NextLevelPreview != "" {
		b.WriteString(lipgloss.NewStyle().Foreground(theme.Accent).Bold(true).Render("Next level"))
		b.WriteString("\n")
		b.WriteString(lipgloss.NewStyle().Foreground(theme.Text).Width(innerWidth - 4).Render(q.NextLevelPreview))
		b.WriteString("\n")
	}
	return b.String()
}
