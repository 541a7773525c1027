package components

import (
	"fmt"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/azzautomation2026/shama/internal/ui/theme"
)

var optionLabels = []string{"A", "B", "C", "D"}

// OptionList renders one question's answer choices. Before results are
// revealed the user can move the cursor and re-pick freely; after reveal
// the list is locked and shows correct/incorrect coloring.
type OptionList struct {
	Question     string
	Options      []string
	CorrectIndex int

	Cursor   int
	Chosen   int // -1 until the user picks
	Revealed bool
}

// NewOptionList creates an option list for one question.
func NewOptionList(question string, options []string, correctIndex int) OptionList {
	return OptionList{
		Question:     question,
		Options:      options,
		CorrectIndex: correctIndex,
		Chosen:       -1,
	}
}

// Update handles cursor movement and selection. A no-op once revealed.
func (o OptionList) Update(msg tea.Msg) (OptionList, tea.Cmd) {
	if o.Revealed {
		return o, nil
	}

	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return o, nil
	}

	switch kmsg.String() {
	case "up", "k":
		if o.Cursor > 0 {
			o.Cursor--
		}
	case "down", "j":
		if o.Cursor < len(o.Options)-1 {
			o.Cursor++
		}
	case "enter", " ":
		o.Chosen = o.Cursor
	case "a", "b", "c", "d":
		idx := int(kmsg.String()[0] - 'a')
		if idx < len(o.Options) {
			o.Cursor = idx
			o.Chosen = idx
		}
	}

	return o, nil
}

// View renders the option list.
func (o OptionList) View() string {
	questionStyle := lipgloss.NewStyle().Foreground(theme.Text).Bold(true)
	s := questionStyle.Render(o.Question) + "\n\n"

	for i, opt := range o.Options {
		prefix := "  "
		if i == o.Cursor && !o.Revealed {
			prefix = "▸ "
		}

		marker := " "
		if i == o.Chosen {
			marker = "●"
		}

		line := fmt.Sprintf("%s%s %s)  %s", prefix, marker, optionLabels[i], opt)

		switch {
		case o.Revealed && i == o.CorrectIndex:
			s += theme.Correct.Render(line) + "\n"
		case o.Revealed && i == o.Chosen:
			s += theme.Incorrect.Render(line) + "\n"
		case o.Revealed:
			s += lipgloss.NewStyle().Foreground(theme.TextDim).Render(line) + "\n"
		case i == o.Cursor:
			s += theme.Selected.Render(line) + "\n"
		default:
			s += lipgloss.NewStyle().Foreground(theme.Text).Render(line) + "\n"
		}
	}

	return s
}

// IsCorrect reports whether the revealed choice was right.
func (o OptionList) IsCorrect() bool {
	return o.Revealed && o.Chosen == o.CorrectIndex
}
