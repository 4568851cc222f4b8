package components

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/edututor/internal/ui/theme"
)

// MultiChoice is a single-answer option picker. Options are labelled
// A, B, C... in display order.
type MultiChoice struct {
	Question  string
	Options   []string
	Selected  int
	Submitted bool
	Chosen    int
}

// NewMultiChoice creates a picker with the cursor on the first option.
func NewMultiChoice(question string, options []string) MultiChoice {
	return MultiChoice{
		Question: question,
		Options:  options,
		Chosen:   -1,
	}
}

// Update moves the cursor with arrows or j/k and submits on enter or
// space. Pressing an option's letter submits that option directly.
func (m MultiChoice) Update(msg tea.Msg) (MultiChoice, tea.Cmd) {
	if m.Submitted {
		return m, nil
	}
	kmsg, ok := msg.(tea.KeyPressMsg)
	if !ok {
		return m, nil
	}

	key := kmsg.String()
	switch key {
	case "up", "k":
		if m.Selected > 0 {
			m.Selected--
		}
		return m, nil
	case "down", "j":
		if m.Selected < len(m.Options)-1 {
			m.Selected++
		}
		return m, nil
	case "enter", "space", " ":
		if len(m.Options) > 0 {
			m.submit(m.Selected)
		}
		return m, nil
	}

	if idx, ok := Label(key); ok && idx < len(m.Options) {
		m.Selected = idx
		m.submit(idx)
	}
	return m, nil
}

func (m *MultiChoice) submit(idx int) {
	m.Submitted = true
	m.Chosen = idx
}

// Answer returns the chosen option text, or "" before submission.
func (m MultiChoice) Answer() string {
	if !m.Submitted || m.Chosen < 0 || m.Chosen >= len(m.Options) {
		return ""
	}
	return m.Options[m.Chosen]
}

// View renders the question and its labelled options.
func (m MultiChoice) View() string {
	var b strings.Builder
	b.WriteString(theme.Question.Render(m.Question))
	b.WriteString("\n\n")

	for i, opt := range m.Options {
		prefix := "  "
		if i == m.Selected && !m.Submitted {
			prefix = "▸ "
		}
		line := fmt.Sprintf("%s%c)  %s", prefix, 'A'+i, opt)

		style := lipgloss.NewStyle().Foreground(theme.Text)
		switch {
		case m.Submitted && i == m.Chosen:
			style = lipgloss.NewStyle().Foreground(theme.Secondary).Bold(true)
		case m.Submitted:
			style = lipgloss.NewStyle().Foreground(theme.TextDim)
		case i == m.Selected:
			style = lipgloss.NewStyle().Foreground(theme.Primary).Bold(true)
		}
		b.WriteString(style.Render(line))
		b.WriteString("\n")
	}
	return b.String()
}

// Label maps a single option letter, either case, to its position.
func Label(key string) (int, bool) {
	if len(key) != 1 {
		return 0, false
	}
	c := key[0] | 0x20
	if c < 'a' || c > 'h' {
		return 0, false
	}
	return int(c - 'a'), true
}
