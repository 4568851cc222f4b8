package components

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/edututor/internal/ui/theme"
)

// ScoreBar renders a quiz score as a horizontal bar.
type ScoreBar struct {
	Label   string
	Correct int
	Total   int
	Width   int
}

// Fraction returns Correct/Total clamped to [0, 1]. An empty quiz is 0.
func (s ScoreBar) Fraction() float64 {
	if s.Total <= 0 {
		return 0
	}
	f := float64(s.Correct) / float64(s.Total)
	return max(0, min(1, f))
}

// View renders the bar followed by "correct/total (pct%)".
func (s ScoreBar) View() string {
	var result string

	if s.Label != "" {
		result += lipgloss.NewStyle().Foreground(theme.Text).Render(s.Label) + "  "
	}

	suffix := fmt.Sprintf("  %d/%d (%d%%)", s.Correct, s.Total, int(s.Fraction()*100+0.5))

	barWidth := s.Width - lipgloss.Width(result) - len(suffix)
	if barWidth < 4 {
		barWidth = 4
	}

	filled := int(float64(barWidth) * s.Fraction())
	empty := barWidth - filled

	color := theme.Secondary
	if s.Fraction() < 0.5 {
		color = theme.Accent
	}

	result += lipgloss.NewStyle().Foreground(color).Render(strings.Repeat("█", filled))
	result += lipgloss.NewStyle().Foreground(theme.Border).Render(strings.Repeat("░", empty))
	result += lipgloss.NewStyle().Foreground(theme.TextDim).Render(suffix)

	return result
}
