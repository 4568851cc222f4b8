package components

import (
	"strings"
	"testing"

	"charm.land/lipgloss/v2"
)

func TestScoreBarFraction(t *testing.T) {
	tests := []struct {
		correct, total int
		want           float64
	}{
		{3, 4, 0.75},
		{0, 0, 0},
		{5, 4, 1},
		{-1, 4, 0},
	}
	for _, tt := range tests {
		got := ScoreBar{Correct: tt.correct, Total: tt.total}.Fraction()
		if got != tt.want {
			t.Errorf("Fraction(%d/%d) = %v, want %v", tt.correct, tt.total, got, tt.want)
		}
	}
}

func TestScoreBarView(t *testing.T) {
	bar := ScoreBar{Label: "Photosynthesis", Correct: 2, Total: 4, Width: 50}
	view := bar.View()

	if !strings.Contains(view, "2/4 (50%)") {
		t.Errorf("view missing score suffix: %q", view)
	}
	if w := lipgloss.Width(view); w != 50 {
		t.Errorf("width = %d, want 50", w)
	}
	if strings.Count(view, "█") == 0 || strings.Count(view, "░") == 0 {
		t.Errorf("expected filled and empty segments: %q", view)
	}
}

func TestScoreBarMinimumWidth(t *testing.T) {
	view := ScoreBar{Correct: 1, Total: 1, Width: 0}.View()
	if strings.Count(view, "█") != 4 {
		t.Errorf("expected a 4-cell bar, got %q", view)
	}
}
