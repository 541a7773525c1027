package landing

import (
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/azzautomation2026/shama/internal/flow"
	"github.com/azzautomation2026/shama/internal/screen"
	"github.com/azzautomation2026/shama/internal/ui/components"
	"github.com/azzautomation2026/shama/internal/ui/layout"
	"github.com/azzautomation2026/shama/internal/ui/theme"
)

// LandingScreen is the signed-out entry point.
type LandingScreen struct {
	menu components.Menu
}

var _ screen.Screen = (*LandingScreen)(nil)
var _ screen.KeyHintProvider = (*LandingScreen)(nil)

// New creates the landing screen.
func New() *LandingScreen {
	items := []components.MenuItem{
		{Label: "Sign in", Action: emit(flow.OpenAuth{Mode: flow.ModeLogin})},
		{Label: "Create an account", Action: emit(flow.OpenAuth{Mode: flow.ModeSignup})},
		{Label: "Try it without an account", Action: emit(flow.OpenCreate{})},
	}
	return &LandingScreen{menu: components.NewMenu(items)}
}

func emit(ev flow.Event) func() tea.Cmd {
	return func() tea.Cmd {
		return func() tea.Msg { return ev }
	}
}

func (s *LandingScreen) Title() string { return "" }

func (s *LandingScreen) Init() tea.Cmd { return nil }

func (s *LandingScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Select"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}

func (s *LandingScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	s.menu, cmd = s.menu.Update(msg)
	return s, cmd
}

func (s *LandingScreen) View(width, height int) string {
	var sections []string

	sections = append(sections, RenderBanner(width))
	sections = append(sections, "")

	tagline := lipgloss.NewStyle().
		Foreground(theme.Secondary).
		Render("Turn any text into a quiz that actually teaches.")
	sections = append(sections, tagline)
	sections = append(sections, "", "")

	sections = append(sections, s.menu.View())

	content := strings.Join(sections, "\n")
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}
