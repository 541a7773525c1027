package create

import (
	"fmt"
	"strings"

	"charm.land/bubbles/v2/spinner"
	"charm.land/bubbles/v2/textarea"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/azzautomation2026/shama/internal/flow"
	"github.com/azzautomation2026/shama/internal/quiz"
	"github.com/azzautomation2026/shama/internal/screen"
	"github.com/azzautomation2026/shama/internal/ui/components"
	"github.com/azzautomation2026/shama/internal/ui/layout"
	"github.com/azzautomation2026/shama/internal/ui/theme"
)

const (
	fieldContent = iota
	fieldDifficulty
	fieldCount
	fieldLanguage
	fieldGenerate
	fieldTotal
)

var difficulties = []quiz.Difficulty{quiz.DifficultyEasy, quiz.DifficultyMedium, quiz.DifficultyHard}

var languages = []string{"ar", "en", "es", "fr"}

// CreateScreen is the quiz draft editor.
type CreateScreen struct {
	state *flow.State

	content textarea.Model
	count   components.TextInput
	spin    spinner.Model

	difficulty quiz.Difficulty
	language   string
	focused    int
}

var _ screen.Screen = (*CreateScreen)(nil)
var _ screen.KeyHintProvider = (*CreateScreen)(nil)

// New creates the draft editor seeded from the current draft.
func New(state *flow.State) *CreateScreen {
	d := state.Draft

	ta := textarea.New()
	ta.Placeholder = "Paste the study material here..."
	ta.SetValue(d.Content)
	ta.Focus()

	count := components.NewTextInput("5", true, 2)
	count.Model.SetValue(fmt.Sprintf("%d", d.QuestionCount))
	count.Model.Blur()

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(theme.Primary)

	return &CreateScreen{
		state:      state,
		content:    ta,
		count:      count,
		spin:       sp,
		difficulty: d.Difficulty,
		language:   d.Language,
	}
}

func (s *CreateScreen) Title() string { return "New quiz" }

func (s *CreateScreen) Init() tea.Cmd {
	return tea.Batch(textarea.Blink, s.spin.Tick)
}

func (s *CreateScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Tab", Description: "Next field"},
		{Key: "←→", Description: "Change value"},
		{Key: "Ctrl+G", Description: "Generate"},
		{Key: "Esc", Description: "Back"},
	}
}

// draft assembles the current editor values into a Draft.
func (s *CreateScreen) draft() quiz.Draft {
	d := quiz.NewDraft()
	d.Content = s.content.Value()
	d.Difficulty = s.difficulty
	d.Language = s.language
	if n, err := s.count.NumericValue(); err == nil {
		d.QuestionCount = n
	} else {
		d.QuestionCount = 0 // invalid, rejected downstream
	}
	return d
}

func (s *CreateScreen) generate() tea.Cmd {
	d := s.draft()
	return tea.Sequence(
		func() tea.Msg { return flow.DraftEdited{Draft: d} },
		func() tea.Msg { return flow.GenerationRequested{} },
	)
}

func (s *CreateScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if sp, ok := msg.(spinner.TickMsg); ok {
		var cmd tea.Cmd
		s.spin, cmd = s.spin.Update(sp)
		return s, cmd
	}

	if s.state.Generating {
		// Input is frozen while a generation is in flight.
		return s, nil
	}

	if kmsg, ok := msg.(tea.KeyMsg); ok {
		switch kmsg.String() {
		case "esc":
			return s, func() tea.Msg { return flow.GoHome{} }
		case "ctrl+g":
			return s, s.generate()
		case "tab":
			s.setFocus((s.focused + 1) % fieldTotal)
			return s, nil
		case "shift+tab":
			s.setFocus((s.focused - 1 + fieldTotal) % fieldTotal)
			return s, nil
		}

		switch s.focused {
		case fieldDifficulty:
			switch kmsg.String() {
			case "left", "h":
				s.difficulty = cycle(difficulties, s.difficulty, -1)
				return s, nil
			case "right", "l":
				s.difficulty = cycle(difficulties, s.difficulty, 1)
				return s, nil
			}
		case fieldLanguage:
			switch kmsg.String() {
			case "left", "h":
				s.language = cycle(languages, s.language, -1)
				return s, nil
			case "right", "l":
				s.language = cycle(languages, s.language, 1)
				return s, nil
			}
		case fieldGenerate:
			if kmsg.String() == "enter" {
				return s, s.generate()
			}
		}
	}

	var cmd tea.Cmd
	switch s.focused {
	case fieldContent:
		s.content, cmd = s.content.Update(msg)
	case fieldCount:
		s.count, cmd = s.count.Update(msg)
	}
	return s, cmd
}

func (s *CreateScreen) setFocus(f int) {
	s.focused = f
	s.content.Blur()
	s.count.Model.Blur()
	switch f {
	case fieldContent:
		s.content.Focus()
	case fieldCount:
		s.count.Model.Focus()
	}
}

func cycle[T comparable](vals []T, cur T, delta int) T {
	for i, v := range vals {
		if v == cur {
			return vals[(i+delta+len(vals))%len(vals)]
		}
	}
	return vals[0]
}

func languageLabel(code string) string {
	switch code {
	case "ar":
		return "العربية (Arabic)"
	case "en":
		return "English"
	case "es":
		return "Español"
	case "fr":
		return "Français"
	}
	return code
}

func (s *CreateScreen) View(width, height int) string {
	var b strings.Builder

	innerWidth := min(width-8, 76)
	s.content.SetWidth(innerWidth - 4)
	s.content.SetHeight(min(height/2, 10))

	b.WriteString(s.label("Source material", fieldContent))
	b.WriteString("\n")
	b.WriteString(s.content.View())
	b.WriteString("\n\n")

	b.WriteString(s.label("Difficulty", fieldDifficulty))
	b.WriteString("  ")
	b.WriteString(s.chooser(string(s.difficulty), s.focused == fieldDifficulty))
	b.WriteString("      ")
	b.WriteString(s.label("Questions", fieldCount))
	b.WriteString("  ")
	b.WriteString(s.count.View())
	b.WriteString("\n\n")

	b.WriteString(s.label("Language", fieldLanguage))
	b.WriteString("  ")
	b.WriteString(s.chooser(languageLabel(s.language), s.focused == fieldLanguage))
	b.WriteString("\n\n")

	if s.state.Generating {
		b.WriteString(s.spin.View())
		b.WriteString(lipgloss.NewStyle().Foreground(theme.Secondary).
			Render(" Crafting your quiz... this can take a moment"))
		b.WriteString("\n")
	} else {
		btn := components.NewButton("Generate quiz", s.focused == fieldGenerate, nil)
		b.WriteString(btn.View())
		b.WriteString("\n")
	}

	if s.state.Err != "" {
		b.WriteString("\n")
		b.WriteString(theme.Incorrect.Render(s.state.Err))
		b.WriteString("\n")
	}

	card := theme.Card.Width(innerWidth).Render(b.String())
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, card)
}

func (s *CreateScreen) label(text string, field int) string {
	style := lipgloss.NewStyle().Foreground(theme.TextDim)
	if s.focused == field {
		style = lipgloss.NewStyle().Foreground(theme.Primary).Bold(true)
	}
	return style.Render(text)
}

func (s *CreateScreen) chooser(value string, focused bool) string {
	if focused {
		return theme.Selected.Render("◂ " + value + " ▸")
	}
	return lipgloss.NewStyle().Foreground(theme.Text).Render(value)
}
