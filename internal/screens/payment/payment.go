package payment

import (
	"context"
	"errors"
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

// CheckoutURL is where the actual payment happens. The app only confirms
// completion manually; there is no verification.
const CheckoutURL = "https://whop.com/checkout/shama-premium"

type grantResultMsg struct {
	err error
}

// PaymentScreen is the paywall: checkout instructions plus a manual
// confirmation. Reaching it never means payment happened.
type PaymentScreen struct {
	svc   *auth.Service
	state *flow.State
	menu  components.Menu

	granting bool
	errMsg   string
}

var _ screen.Screen = (*PaymentScreen)(nil)
var _ screen.KeyHintProvider = (*PaymentScreen)(nil)

// New creates the paywall screen.
func New(svc *auth.Service, state *flow.State) *PaymentScreen {
	s := &PaymentScreen{svc: svc, state: state}
	s.menu = components.NewMenu([]components.MenuItem{
		{Label: "I have subscribed", Action: s.confirm},
		{Label: "Maybe later", Action: func() tea.Cmd {
			return func() tea.Msg { return flow.PaymentDismissed{} }
		}},
	})
	return s
}

func (s *PaymentScreen) Title() string { return "Premium" }

func (s *PaymentScreen) Init() tea.Cmd { return nil }

func (s *PaymentScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Select"},
		{Key: "Esc", Description: "Later"},
	}
}

func (s *PaymentScreen) confirm() tea.Cmd {
	if s.granting {
		return nil
	}
	s.granting = true
	s.errMsg = ""
	svc := s.svc
	return func() tea.Msg {
		_, err := svc.GrantEntitlement(context.Background())
		return grantResultMsg{err: err}
	}
}

func (s *PaymentScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case grantResultMsg:
		s.granting = false
		if msg.err != nil {
			var aerr *auth.Error
			if errors.As(msg.err, &aerr) {
				s.errMsg = aerr.Message()
			} else {
				s.errMsg = "Could not activate premium. Please try again."
			}
			return s, nil
		}
		return s, func() tea.Msg { return flow.PaymentDismissed{} }

	case tea.KeyMsg:
		if msg.String() == "esc" {
			return s, func() tea.Msg { return flow.PaymentDismissed{} }
		}
	}

	var cmd tea.Cmd
	s.menu, cmd = s.menu.Update(msg)
	return s, cmd
}

func (s *PaymentScreen) View(width, height int) string {
	var b strings.Builder

	b.WriteString(theme.Title.Render("Go Premium"))
	b.WriteString("\n\n")

	body := []string{
		"Free accounts keep up to 2 saved quizzes.",
		"Premium removes the cap and unlocks unlimited generation.",
		"",
		"Subscribe in your browser:",
	}
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Text).Render(strings.Join(body, "\n")))
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Accent).Underline(true).Render(CheckoutURL))
	b.WriteString("\n\n")

	b.WriteString(theme.Hint.Render("Then confirm below. Activation is on your honor."))
	b.WriteString("\n\n")

	if s.granting {
		b.WriteString(lipgloss.NewStyle().Foreground(theme.TextDim).Render("Activating..."))
		b.WriteString("\n")
	} else {
		b.WriteString(s.menu.View())
	}

	if s.errMsg != "" {
		b.WriteString("\n")
		b.WriteString(theme.Incorrect.Render(s.errMsg))
	}

	card := theme.Card.Width(min(width-8, 64)).Render(b.String())
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, card)
}
