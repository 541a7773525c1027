package app

import (
	"context"
	"errors"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/rs/zerolog"

	"github.com/azzautomation2026/shama/internal/auth"
	"github.com/azzautomation2026/shama/internal/flow"
	"github.com/azzautomation2026/shama/internal/quiz"
	"github.com/azzautomation2026/shama/internal/quizgen"
	"github.com/azzautomation2026/shama/internal/screen"
	"github.com/azzautomation2026/shama/internal/screens/authform"
	"github.com/azzautomation2026/shama/internal/screens/create"
	"github.com/azzautomation2026/shama/internal/screens/dashboard"
	"github.com/azzautomation2026/shama/internal/screens/landing"
	"github.com/azzautomation2026/shama/internal/screens/payment"
	"github.com/azzautomation2026/shama/internal/screens/quiztake"
	"github.com/azzautomation2026/shama/internal/screens/settings"
	"github.com/azzautomation2026/shama/internal/ui/layout"
)

type authChangeMsg struct {
	change auth.Change
	ok     bool
}

type generationResultMsg struct {
	quiz *quiz.Quiz
	err  error
}

type savedQuizzesMsg struct {
	quizzes []quiz.Quiz
	err     error
}

// Model is the root Bubble Tea model. All transitions go through the flow
// controller; the model maps the active view to a screen and runs the
// side effects (auth feed, generation, saved-quiz loading) as commands.
type Model struct {
	ctrl    *flow.Controller
	authSvc *auth.Service
	genSvc  *quizgen.Service
	log     zerolog.Logger

	changes <-chan auth.Change

	active     screen.Screen
	activeView flow.View
	width      int
	height     int
}

func newModel(authSvc *auth.Service, genSvc *quizgen.Service, log zerolog.Logger, changes <-chan auth.Change) *Model {
	m := &Model{
		ctrl:    flow.NewController(flow.DefaultFreeQuota),
		authSvc: authSvc,
		genSvc:  genSvc,
		log:     log,
		changes: changes,
	}
	m.activeView = m.ctrl.State().View
	m.active = m.buildScreen(m.activeView)
	return m
}

func (m *Model) Init() tea.Cmd {
	return tea.Batch(m.active.Init(), m.listenForAuthChanges(), m.restoreSession())
}

// restoreSession recovers the persisted session at startup. The resulting
// push arrives through the subscription like any other session change.
func (m *Model) restoreSession() tea.Cmd {
	svc := m.authSvc
	return func() tea.Msg {
		svc.Restore(context.Background())
		return nil
	}
}

func (m *Model) listenForAuthChanges() tea.Cmd {
	ch := m.changes
	return func() tea.Msg {
		change, ok := <-ch
		return authChangeMsg{change: change, ok: ok}
	}
}

func (m *Model) loadSavedQuizzes() tea.Cmd {
	svc := m.genSvc
	session := m.ctrl.State().Session
	return func() tea.Msg {
		quizzes, err := svc.SavedQuizzes(context.Background(), session)
		return savedQuizzesMsg{quizzes: quizzes, err: err}
	}
}

func (m *Model) startGeneration() tea.Cmd {
	svc := m.genSvc
	st := m.ctrl.State()
	draft := st.Draft
	session := st.Session
	return func() tea.Msg {
		q, err := svc.Generate(context.Background(), draft, session)
		return generationResultMsg{quiz: q, err: err}
	}
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}

	case authChangeMsg:
		if !msg.ok {
			// Subscription closed, the app is tearing down.
			return m, nil
		}
		m.ctrl.Apply(flow.SessionChanged{Session: msg.change.Session})
		cmds = append(cmds, m.listenForAuthChanges())
		if m.ctrl.State().View == flow.ViewDashboard {
			cmds = append(cmds, m.loadSavedQuizzes())
		}
		cmds = append(cmds, m.syncScreen())
		return m, tea.Batch(cmds...)

	case generationResultMsg:
		if msg.err != nil {
			m.ctrl.Apply(flow.GenerationFailed{Message: userMessage(msg.err)})
			m.log.Debug().Err(msg.err).Msg("generation failed")
		} else {
			m.ctrl.Apply(flow.GenerationSucceeded{Quiz: msg.quiz})
			if msg.quiz.Saved() {
				m.ctrl.Apply(flow.QuizSaved{Quiz: *msg.quiz})
				cmds = append(cmds, m.loadSavedQuizzes())
			}
		}
		cmds = append(cmds, m.syncScreen())
		return m, tea.Batch(cmds...)

	case savedQuizzesMsg:
		if msg.err != nil {
			m.log.Warn().Err(msg.err).Msg("loading saved quizzes failed")
			return m, nil
		}
		m.ctrl.Apply(flow.SavedQuizzesLoaded{Quizzes: msg.quizzes})
		return m, m.syncScreen()
	}

	if ev, ok := msg.(flow.Event); ok {
		wasGenerating := m.ctrl.State().Generating
		m.ctrl.Apply(ev)
		if _, ok := ev.(flow.GenerationRequested); ok {
			if !wasGenerating && m.ctrl.State().Generating {
				cmds = append(cmds, m.startGeneration())
			}
		}
		cmds = append(cmds, m.syncScreen())
		return m, tea.Batch(cmds...)
	}

	updated, cmd := m.active.Update(msg)
	m.active = updated
	return m, cmd
}

// syncScreen swaps the active screen when the controller moved to another
// view. Returns the new screen's Init command.
func (m *Model) syncScreen() tea.Cmd {
	v := m.ctrl.State().View
	if v == m.activeView {
		return nil
	}
	m.activeView = v
	m.active = m.buildScreen(v)
	return m.active.Init()
}

func (m *Model) buildScreen(v flow.View) screen.Screen {
	st := m.ctrl.State()
	switch v {
	case flow.ViewAuth:
		return authform.New(m.authSvc, st.AuthMode)
	case flow.ViewPayment:
		return payment.New(m.authSvc, st)
	case flow.ViewDashboard:
		return dashboard.New(m.authSvc, st)
	case flow.ViewCreate:
		return create.New(st)
	case flow.ViewQuiz:
		return quiztake.New(st)
	case flow.ViewSettings:
		return settings.New(m.authSvc, st)
	default:
		return landing.New()
	}
}

func (m *Model) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	if m.width == 0 || m.height == 0 {
		return v
	}

	if layout.IsTooSmall(m.width, m.height) {
		v.SetContent(layout.RenderMinSizeMessage(m.width, m.height))
		return v
	}

	st := m.ctrl.State()
	email := ""
	if st.Session.User != nil {
		email = st.Session.User.Email
	}
	header := layout.RenderHeader(m.active.Title(), email, st.Session.Premium(), m.width)

	hints := []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Select"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
	if hp, ok := m.active.(screen.KeyHintProvider); ok {
		hints = hp.KeyHints()
	}
	footer := layout.RenderFooter(hints, m.width)

	headerHeight := lipgloss.Height(header)
	footerHeight := lipgloss.Height(footer)
	contentHeight := m.height - headerHeight - footerHeight
	if contentHeight < 0 {
		contentHeight = 0
	}

	content := m.active.View(m.width, contentHeight)
	v.SetContent(layout.RenderFrame(header, content, footer, m.width, m.height))
	return v
}

// userMessage maps a generation failure onto the text shown in the error
// banner.
func userMessage(err error) string {
	if errors.Is(err, quiz.ErrEmptyContent) {
		return "Paste some content first."
	}
	var verr *quiz.DraftValidationError
	if errors.As(err, &verr) {
		return verr.Error()
	}
	var gerr *quizgen.GenerationError
	if errors.As(err, &gerr) {
		return gerr.Message
	}
	return "Something went wrong generating the quiz."
}

// Options carries the wired services for Run.
type Options struct {
	AuthService *auth.Service
	GenService  *quizgen.Service
	Log         zerolog.Logger
}

// Run starts the Bubble Tea program and blocks until exit.
func Run(opts Options) error {
	changes, release := opts.AuthService.Subscribe()
	defer release()

	m := newModel(opts.AuthService, opts.GenService, opts.Log, changes)
	_, err := tea.NewProgram(m).Run()
	return err
}
