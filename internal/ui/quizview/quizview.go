// Package quizview runs a generated quiz as an interactive terminal
// session.
package quizview

import (
	"context"
	"fmt"
	"io"
	"strings"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/edututor/internal/quizgen"
	"github.com/abhisek/edututor/internal/ui/components"
	"github.com/abhisek/edututor/internal/ui/theme"
)

// Model walks the learner through the quiz one question at a time.
type Model struct {
	quiz    *quizgen.Quiz
	current int
	choice  components.MultiChoice
	answers []string
	aborted bool
}

// New creates a session positioned on the first question.
func New(quiz *quizgen.Quiz) Model {
	m := Model{quiz: quiz, answers: make([]string, 0, quiz.Len())}
	if !quiz.Empty() {
		m.choice = m.choiceFor(0)
	}
	return m
}

func (m Model) choiceFor(i int) components.MultiChoice {
	q := m.quiz.Questions[i]
	return components.NewMultiChoice(fmt.Sprintf("%d. %s", i+1, q.Text), q.Options)
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.Done() {
		return m, tea.Quit
	}

	if kmsg, ok := msg.(tea.KeyPressMsg); ok {
		switch kmsg.String() {
		case "ctrl+c", "esc", "q":
			m.aborted = true
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m.choice, cmd = m.choice.Update(msg)
	if !m.choice.Submitted {
		return m, cmd
	}

	m.answers = append(m.answers, m.choice.Answer())
	m.current++
	if m.Done() {
		return m, tea.Quit
	}
	m.choice = m.choiceFor(m.current)
	return m, nil
}

func (m Model) View() tea.View {
	return tea.NewView(m.Render())
}

// Render draws the current question, or just the header once done.
func (m Model) Render() string {
	var b strings.Builder
	b.WriteString(theme.Title.Render(fmt.Sprintf("Quiz: %s (%s)", m.quiz.Topic, m.quiz.Level)))
	b.WriteString("\n")
	if m.quiz.Short() {
		b.WriteString(theme.Warning.Render(fmt.Sprintf(
			"Only %d of %d requested questions passed validation.", m.quiz.Len(), m.quiz.Requested)))
		b.WriteString("\n")
	}

	if m.Done() {
		return b.String()
	}

	b.WriteString(theme.Subtitle.Render(fmt.Sprintf("Question %d of %d", m.current+1, m.quiz.Len())))
	b.WriteString("\n\n")
	b.WriteString(m.choice.View())
	b.WriteString("\n")
	b.WriteString(theme.Hint.Render("↑↓ move · Enter select · A-H answer · Esc quit"))
	b.WriteString("\n")
	return b.String()
}

// Done reports whether every question has been answered or the learner quit.
func (m Model) Done() bool {
	return m.aborted || m.current >= m.quiz.Len()
}

// Answers returns the chosen option text per answered question, in order.
// A quit session returns only the answers given so far.
func (m Model) Answers() []string {
	return m.answers
}

// Run drives the session on the given terminal streams and returns the
// answers once the quiz ends.
func Run(ctx context.Context, quiz *quizgen.Quiz, in io.Reader, out io.Writer) ([]string, error) {
	p := tea.NewProgram(New(quiz),
		tea.WithContext(ctx),
		tea.WithInput(in),
		tea.WithOutput(out),
	)
	final, err := p.Run()
	if err != nil {
		return nil, fmt.Errorf("run quiz session: %w", err)
	}
	return final.(Model).Answers(), nil
}
