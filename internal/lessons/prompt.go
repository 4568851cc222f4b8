package lessons

import (
	"fmt"
	"strings"
)

const lessonSystemPrompt = `You are a patient, encouraging teacher. You write short, accurate introductions to a topic for students meeting it for the first time.`

func buildLessonUserMessage(topic string) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Topic: %s\n", topic)
	b.WriteString(`
Instructions:
1. Write a short explanation or introduction of 8-9 sentences about the topic, suitable for students.
2. Start from what the topic is and why it matters, then cover its core ideas in plain language.
3. Give a short title of 3-8 words.
4. List 2-5 key terms a student should remember.
5. Use plain text only. No markdown, no LaTeX.`)

	return b.String()
}
