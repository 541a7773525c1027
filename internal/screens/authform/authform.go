package authform

import (
	"context"
	"errors"
	"strings"

	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/azzautomation2026/shama/internal/auth"
	"github.com/azzautomation2026/shama/internal/flow"
	"github.com/azzautomation2026/shama/internal/screen"
	"github.com/azzautomation2026/shama/internal/ui/components"
	"github.com/azzautomation2026/shama/internal/ui/layout"
	"github.com/azzautomation2026/shama/internal/ui/theme"
)

const (
	fieldEmail = iota
	fieldName
	fieldPassword
	fieldSubmit
)

type submitResultMsg struct {
	signup bool
	err    error
}

// AuthScreen is the combined sign-in / sign-up form. The mode comes from
// the flow state and can be toggled with tab.
type AuthScreen struct {
	svc  *auth.Service
	mode flow.AuthMode

	email    components.TextInput
	name     components.TextInput
	password components.TextInput
	focused  int

	submitting bool
	errMsg     string
}

var _ screen.Screen = (*AuthScreen)(nil)
var _ screen.KeyHintProvider = (*AuthScreen)(nil)

// New creates the auth form in the given mode.
func New(svc *auth.Service, mode flow.AuthMode) *AuthScreen {
	email := components.NewTextInput("you@example.com", false, 80)
	name := components.NewTextInput("Display name", false, 60)
	name.Model.Blur()
	password := components.NewTextInput("Password (6+ characters)", false, 80)
	password.Model.Blur()
	password.Model.EchoMode = textinput.EchoPassword

	return &AuthScreen{
		svc:      svc,
		mode:     mode,
		email:    email,
		name:     name,
		password: password,
	}
}

func (s *AuthScreen) Title() string {
	if s.mode == flow.ModeSignup {
		return "Create account"
	}
	return "Sign in"
}

func (s *AuthScreen) Init() tea.Cmd {
	return s.email.Init()
}

func (s *AuthScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Tab", Description: "Switch mode"},
		{Key: "↑↓", Description: "Field"},
		{Key: "Enter", Description: "Submit"},
		{Key: "Esc", Description: "Back"},
	}
}

// fields returns the focusable field ids for the current mode.
func (s *AuthScreen) fields() []int {
	if s.mode == flow.ModeSignup {
		return []int{fieldEmail, fieldName, fieldPassword, fieldSubmit}
	}
	return []int{fieldEmail, fieldPassword, fieldSubmit}
}

func (s *AuthScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case submitResultMsg:
		s.submitting = false
		if msg.err != nil {
			var aerr *auth.Error
			if errors.As(msg.err, &aerr) {
				s.errMsg = aerr.Message()
			} else {
				s.errMsg = "Something went wrong. Please try again."
			}
			return s, nil
		}
		if msg.signup {
			return s, func() tea.Msg { return flow.SignupCompleted{} }
		}
		// Sign-in routing rides on the session push.
		return s, nil

	case tea.KeyMsg:
		if s.submitting {
			return s, nil
		}
		switch msg.String() {
		case "esc":
			return s, func() tea.Msg { return flow.GoHome{} }
		case "tab":
			if s.mode == flow.ModeLogin {
				s.mode = flow.ModeSignup
			} else {
				s.mode = flow.ModeLogin
			}
			s.errMsg = ""
			return s, func() tea.Msg { return flow.OpenAuth{Mode: s.mode} }
		case "up", "shift+tab":
			s.moveFocus(-1)
			return s, nil
		case "down":
			s.moveFocus(1)
			return s, nil
		case "enter":
			if s.focused == fieldSubmit {
				return s, s.submit()
			}
			s.moveFocus(1)
			return s, nil
		}
	}

	var cmd tea.Cmd
	switch s.focused {
	case fieldEmail:
		s.email, cmd = s.email.Update(msg)
	case fieldName:
		s.name, cmd = s.name.Update(msg)
	case fieldPassword:
		s.password, cmd = s.password.Update(msg)
	}
	return s, cmd
}

func (s *AuthScreen) moveFocus(delta int) {
	fields := s.fields()
	pos := 0
	for i, f := range fields {
		if f == s.focused {
			pos = i
			break
		}
	}
	pos += delta
	if pos < 0 {
		pos = 0
	}
	if pos >= len(fields) {
		pos = len(fields) - 1
	}
	s.focused = fields[pos]

	s.email.Model.Blur()
	s.name.Model.Blur()
	s.password.Model.Blur()
	switch s.focused {
	case fieldEmail:
		s.email.Model.Focus()
	case fieldName:
		s.name.Model.Focus()
	case fieldPassword:
		s.password.Model.Focus()
	}
}

func (s *AuthScreen) submit() tea.Cmd {
	email := strings.TrimSpace(s.email.Value())
	password := s.password.Value()
	name := strings.TrimSpace(s.name.Value())
	signup := s.mode == flow.ModeSignup

	s.submitting = true
	s.errMsg = ""

	svc := s.svc
	return func() tea.Msg {
		ctx := context.Background()
		var err error
		if signup {
			_, err = svc.SignUp(ctx, email, password, name)
		} else {
			_, err = svc.SignIn(ctx, email, password)
		}
		return submitResultMsg{signup: signup, err: err}
	}
}

func (s *AuthScreen) View(width, height int) string {
	var b strings.Builder

	heading := "Welcome back"
	if s.mode == flow.ModeSignup {
		heading = "Light your candle"
	}
	b.WriteString(theme.Title.Render(heading))
	b.WriteString("\n\n")

	b.WriteString(s.renderField("Email", s.email.View(), s.focused == fieldEmail))
	if s.mode == flow.ModeSignup {
		b.WriteString(s.renderField("Name", s.name.View(), s.focused == fieldName))
	}
	b.WriteString(s.renderField("Password", s.password.View(), s.focused == fieldPassword))

	b.WriteString("\n")
	label := "Sign in"
	if s.mode == flow.ModeSignup {
		label = "Create account"
	}
	if s.submitting {
		label = "Working..."
	}
	btn := components.NewButton(label, s.focused == fieldSubmit, nil)
	b.WriteString(btn.View())
	b.WriteString("\n")

	if s.errMsg != "" {
		b.WriteString("\n")
		b.WriteString(theme.Incorrect.Render(s.errMsg))
		b.WriteString("\n")
	}

	other := "Tab: need an account? Sign up instead"
	if s.mode == flow.ModeSignup {
		other = "Tab: already have an account? Sign in"
	}
	b.WriteString("\n")
	b.WriteString(theme.Hint.Render(other))

	card := theme.Card.Width(min(width-8, 60)).Render(b.String())
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, card)
}

func (s *AuthScreen) renderField(label, input string, focused bool) string {
	style := lipgloss.NewStyle().Foreground(theme.TextDim)
	if focused {
		style = lipgloss.NewStyle().Foreground(theme.Primary).Bold(true)
	}
	return style.Render(label) + "\n" + input + "\n\n"
}
