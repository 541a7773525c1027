package settings

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/azzautomation2026/shama/internal/auth"
	"github.com/azzautomation2026/shama/internal/flow"
	"github.com/azzautomation2026/shama/internal/screen"
	"github.com/azzautomation2026/shama/internal/ui/components"
	"github.com/azzautomation2026/shama/internal/ui/layout"
	"github.com/azzautomation2026/shama/internal/ui/theme"
)

// SettingsScreen shows account details and account-level actions.
type SettingsScreen struct {
	svc   *auth.Service
	state *flow.State
	menu  components.Menu
}

var _ screen.Screen = (*SettingsScreen)(nil)
var _ screen.KeyHintProvider = (*SettingsScreen)(nil)

// New creates the settings screen.
func New(svc *auth.Service, state *flow.State) *SettingsScreen {
	s := &SettingsScreen{svc: svc, state: state}

	items := []components.MenuItem{
		{Label: "Back to dashboard", Action: func() tea.Cmd {
			return func() tea.Msg { return flow.GoHome{} }
		}},
	}
	if !state.Session.Premium() {
		items = append(items, components.MenuItem{
			Label: "Upgrade to premium",
			Action: func() tea.Cmd {
				return func() tea.Msg { return flow.OpenPayment{} }
			},
		})
	}
	items = append(items, components.MenuItem{
		Label: "Sign out",
		Action: func() tea.Cmd {
			return func() tea.Msg {
				_ = svc.SignOut(context.Background())
				return nil
			}
		},
	})

	s.menu = components.NewMenu(items)
	return s
}

func (s *SettingsScreen) Title() string { return "Settings" }

func (s *SettingsScreen) Init() tea.Cmd { return nil }

func (s *SettingsScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Select"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *SettingsScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok && kmsg.String() == "esc" {
		return s, func() tea.Msg { return flow.GoHome{} }
	}

	var cmd tea.Cmd
	s.menu, cmd = s.menu.Update(msg)
	return s, cmd
}

func (s *SettingsScreen) View(width, height int) string {
	var b strings.Builder

	b.WriteString(theme.Title.Render("Account"))
	b.WriteString("\n\n")

	u := s.state.Session.User
	if u != nil {
		rows := [][2]string{
			{"Email", u.Email},
			{"Name", u.DisplayName},
		}
		plan := "Free"
		if s.state.Session.Premium() {
			plan = "Premium"
		}
		rows = append(rows, [2]string{"Plan", plan})
		rows = append(rows, [2]string{"Saved quizzes", fmt.Sprintf("%d", len(s.state.SavedQuizzes))})

		for _, r := range rows {
			label := lipgloss.NewStyle().Foreground(theme.TextDim).Width(16).Render(r[0])
			value := lipgloss.NewStyle().Foreground(theme.Text).Render(r[1])
			b.WriteString(label + value + "\n")
		}
	}

	b.WriteString("\n")
	b.WriteString(s.menu.View())

	card := theme.Card.Width(min(width-8, 56)).Render(b.String())
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, card)
}
