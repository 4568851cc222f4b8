package quizgen

import (
	"fmt"
	"strings"
)

const systemPrompt = `You are an educational quiz writer. You follow the requested output format exactly and never add commentary, headings or explanations.`

// levelGuidance maps a level to the vocabulary and depth the model
// should aim for.
var levelGuidance = map[Level]string{
	LevelEasy:   "Use simple vocabulary and test basic facts and definitions a beginner would know.",
	LevelMedium: "Use standard terminology and test understanding of core concepts and how they relate.",
	LevelHard:   "Use precise technical vocabulary and test deeper reasoning, edge cases and application of concepts.",
}

// BuildPrompt renders the generation prompt for count questions about
// topic. The answer-line format it asks for is the grammar Parse reads.
func BuildPrompt(topic string, level Level, count int) string {
	var b strings.Builder

	noun := "questions"
	if count == 1 {
		noun = "question"
	}
	fmt.Fprintf(&b, "Write exactly %d multiple-choice %s about %q.\n", count, noun, topic)

	guidance, ok := levelGuidance[level]
	if !ok {
		guidance = levelGuidance[LevelEasy]
		level = LevelEasy
	}
	fmt.Fprintf(&b, "Difficulty: %s. %s\n\n", level, guidance)

	b.WriteString("Each question must have exactly four options labelled A) to D), ")
	b.WriteString("exactly one correct option, and no two options with the same text.\n\n")

	b.WriteString("Use exactly this format for every question and output nothing else:\n\n")
	b.WriteString("1. <question>\n")
	b.WriteString("A) <option>\n")
	b.WriteString("B) <option>\n")
	b.WriteString("C) <option>\n")
	b.WriteString("D) <option>\n")
	b.WriteString("Answer: <letter>) <text of the correct option>\n\n")

	fmt.Fprintf(&b, "Number the questions 1 to %d and leave one blank line between questions.", count)

	return b.String()
}
