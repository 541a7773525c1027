package dashboard

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/azzautomation2026/shama/internal/auth"
	"github.com/azzautomation2026/shama/internal/flow"
	"github.com/azzautomation2026/shama/internal/screen"
	"github.com/azzautomation2026/shama/internal/ui/layout"
	"github.com/azzautomation2026/shama/internal/ui/theme"
)

// row indices below the saved-quiz list
const (
	actionCreate = iota
	actionSettings
	actionSignOut
	actionCount
)

// DashboardScreen lists saved quizzes and the main actions.
type DashboardScreen struct {
	svc    *auth.Service
	state  *flow.State
	cursor int // 0..len(quizzes)-1 are quizzes, then actions
}

var _ screen.Screen = (*DashboardScreen)(nil)
var _ screen.KeyHintProvider = (*DashboardScreen)(nil)

// New creates the dashboard.
func New(svc *auth.Service, state *flow.State) *DashboardScreen {
	return &DashboardScreen{svc: svc, state: state}
}

func (s *DashboardScreen) Title() string { return "Dashboard" }

func (s *DashboardScreen) Init() tea.Cmd { return nil }

func (s *DashboardScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Open"},
		{Key: "n", Description: "New quiz"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}

func (s *DashboardScreen) rowCount() int {
	return len(s.state.SavedQuizzes) + actionCount
}

func (s *DashboardScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return s, nil
	}

	if s.cursor >= s.rowCount() {
		s.cursor = s.rowCount() - 1
	}

	switch kmsg.String() {
	case "up", "k":
		if s.cursor > 0 {
			s.cursor--
		}
	case "down", "j":
		if s.cursor < s.rowCount()-1 {
			s.cursor++
		}
	case "n":
		return s, func() tea.Msg { return flow.OpenCreate{} }
	case "enter":
		return s, s.activate()
	}
	return s, nil
}

func (s *DashboardScreen) activate() tea.Cmd {
	quizzes := s.state.SavedQuizzes
	if s.cursor < len(quizzes) {
		q := quizzes[s.cursor]
		return func() tea.Msg { return flow.QuizSelected{Quiz: &q} }
	}

	switch s.cursor - len(quizzes) {
	case actionCreate:
		return func() tea.Msg { return flow.OpenCreate{} }
	case actionSettings:
		return func() tea.Msg { return flow.OpenSettings{} }
	case actionSignOut:
		svc := s.svc
		return func() tea.Msg {
			// The session push routes back to landing.
			_ = svc.SignOut(context.Background())
			return nil
		}
	}
	return nil
}

func (s *DashboardScreen) View(width, height int) string {
	var b strings.Builder

	name := ""
	if u := s.state.Session.User; u != nil {
		name = u.DisplayName
		if name == "" {
			name = u.Email
		}
	}
	b.WriteString(theme.Title.Render(fmt.Sprintf("Welcome, %s", name)))
	b.WriteString("\n\n")

	quizzes := s.state.SavedQuizzes
	if len(quizzes) == 0 {
		b.WriteString(theme.Hint.Render("No saved quizzes yet. Create your first one!"))
		b.WriteString("\n\n")
	} else {
		b.WriteString(theme.Subtitle.Render("Your quizzes"))
		b.WriteString("\n\n")
		for i, q := range quizzes {
			prefix := "   "
			style := lipgloss.NewStyle().Foreground(theme.Text)
			if i == s.cursor {
				prefix = " ▸ "
				style = theme.Selected
			}
			date := ""
			if q.CreatedAt != nil {
				date = q.CreatedAt.Format("Jan 02")
			}
			line := fmt.Sprintf("%s%s  %s · %d questions", prefix, q.Title, date, len(q.Questions))
			b.WriteString(style.Render(line))
			b.WriteString("\n")
		}
		b.WriteString("\n")
	}

	if !s.state.Session.Premium() {
		b.WriteString(theme.Hint.Render(fmt.Sprintf("Free plan: %d of %d saved quizzes used",
			len(quizzes), flow.DefaultFreeQuota)))
		b.WriteString("\n\n")
	}

	actions := []string{"＋ Create a new quiz", "⚙ Settings", "⏻ Sign out"}
	for i, a := range actions {
		idx := len(quizzes) + i
		prefix := "   "
		style := lipgloss.NewStyle().Foreground(theme.Text)
		if idx == s.cursor {
			prefix = " ▸ "
			style = theme.Selected
		}
		b.WriteString(style.Render(prefix + a))
		b.WriteString("\n")
	}

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, b.String())
}
