package quizgen

import (
	"regexp"
	"strings"
)

var (
	// "1. text", "1) text", "1.text", "Q1: text", "Question 1: text". Text
	// glued to the separator must start with a letter, so "3.14 ..." is
	// not a marker.
	questionMarker = regexp.MustCompile(`(?i)^(?:q(?:uestion)?\s*)?(\d{1,3})\s*[.):]\**(?:\s+(.*)|(\pL.*))?$`)

	// "A) text", "a. text", "(A) text", "A: text", "[A] text", "Option A) text".
	// The label needs space or end of line after it; "E.g. ..." is prose.
	optionMarker = regexp.MustCompile(`^(?i:option\s+)?[(\[]?([A-Ha-h])\s*[).:\]]\**(?:\s+(.*))?$`)

	// "Answer: ...", "Correct answer - ...", "Correct option: ...",
	// "The correct answer is ...", "Correct: ...".
	answerMarker = regexp.MustCompile(`(?i)^(?:(?:the\s+)?(?:correct\s+)?(?:answer|option|choice)|correct)(?:\s+is\s*:?|\s*[:\-=])\**\s*(.*)$`)

	// Answer text that starts with a label: "B", "(B)", "B) 4", "Option B: 4".
	answerLabel = regexp.MustCompile(`(?i)^(?:option\s+|choice\s+)?\(?([A-H])(?:\s*[).:\]]\s*(.*))?$`)

	correctSuffix = regexp.MustCompile(`(?i)\s*(?:\((?:correct|answer)\)|✓|✔)\s*$`)

	explanationMarker = regexp.MustCompile(`(?i)^(?:explanation|reason|rationale|why)\s*:`)
)

// block accumulates the lines of one question while parsing.
type block struct {
	question []string
	options  []string
	labels   []string
	flagged  []int

	answer         string
	hasAnswer      bool
	awaitingAnswer bool
}

// Parse extracts candidate questions from raw model output. Text before
// the first question marker is ignored. Blocks with fewer than two
// options or no recoverable answer are dropped. Parse never fails; text
// with no recognizable structure yields an empty slice.
func Parse(raw string) []Candidate {
	candidates := []Candidate{}
	var cur *block

	flush := func() {
		if cur == nil {
			return
		}
		if c, ok := cur.candidate(); ok {
			candidates = append(candidates, c)
		}
		cur = nil
	}

	for _, rawLine := range strings.Split(raw, "\n") {
		line, flagged := cleanLine(rawLine)
		if line == "" {
			continue
		}

		if m := questionMarker.FindStringSubmatch(line); m != nil {
			flush()
			cur = &block{}
			if text := cleanText(m[2] + m[3]); text != "" {
				cur.question = append(cur.question, text)
			}
			continue
		}

		if cur == nil || cur.hasAnswer {
			// Preamble, or trailing explanation after the answer.
			continue
		}

		if cur.awaitingAnswer {
			cur.setAnswer(line)
			continue
		}

		if m := answerMarker.FindStringSubmatch(line); m != nil {
			if text := cleanText(m[1]); text != "" {
				cur.setAnswer(text)
			} else {
				cur.awaitingAnswer = true
			}
			continue
		}

		if m := optionMarker.FindStringSubmatch(line); m != nil {
			text := cleanText(m[2])
			if correctSuffix.MatchString(text) {
				text = strings.TrimSpace(correctSuffix.ReplaceAllString(text, ""))
				flagged = true
			}
			if flagged {
				cur.flagged = append(cur.flagged, len(cur.options))
			}
			cur.options = append(cur.options, text)
			cur.labels = append(cur.labels, strings.ToUpper(m[1]))
			continue
		}

		if explanationMarker.MatchString(line) {
			continue
		}

		// Continuation of a question that wraps onto several lines.
		if len(cur.options) == 0 {
			cur.question = append(cur.question, line)
		}
	}
	flush()

	return candidates
}

func (b *block) setAnswer(text string) {
	b.answer = text
	b.hasAnswer = true
	b.awaitingAnswer = false
}

func (b *block) candidate() (Candidate, bool) {
	if len(b.options) < 2 {
		return Candidate{}, false
	}
	answer, ok := b.resolveAnswer()
	if !ok {
		return Candidate{}, false
	}
	return Candidate{
		Question: strings.Join(b.question, " "),
		Options:  append([]string(nil), b.options...),
		Answer:   answer,
	}, true
}

// resolveAnswer turns the answer line into option text where it can. An
// answer that already matches an option is kept verbatim; otherwise a
// leading label is stripped, and a bare label selects its option. With
// no answer line, a single flagged option supplies the answer.
func (b *block) resolveAnswer() (string, bool) {
	if !b.hasAnswer {
		if len(b.flagged) == 1 {
			return b.options[b.flagged[0]], true
		}
		return "", false
	}

	raw := strings.TrimSpace(b.answer)
	key := normalize(raw)
	for _, opt := range b.options {
		if normalize(opt) == key {
			return raw, true
		}
	}

	m := answerLabel.FindStringSubmatch(raw)
	if m == nil {
		return raw, true
	}
	if text := strings.TrimSpace(m[2]); text != "" {
		return text, true
	}
	label := strings.ToUpper(m[1])
	for i, l := range b.labels {
		if l == label {
			return b.options[i], true
		}
	}
	return raw, true
}

// cleanLine strips markdown decoration from a line. flagged reports a
// leading "*" glued to an option label, which marks the correct option.
func cleanLine(s string) (line string, flagged bool) {
	s = strings.TrimSpace(s)
	s = strings.TrimSpace(strings.TrimLeft(s, "#"))
	for _, bullet := range []string{"- ", "• ", "* "} {
		if strings.HasPrefix(s, bullet) {
			s = strings.TrimSpace(s[len(bullet):])
			break
		}
	}
	s = cleanText(s)
	if len(s) > 1 && s[0] == '*' && s[1] != '*' && s[1] != ' ' {
		flagged = true
		s = s[1:]
	}
	return s, flagged
}

// cleanText trims whitespace and surrounding bold markers.
func cleanText(s string) string {
	for {
		prev := s
		s = strings.TrimSpace(s)
		s = strings.TrimPrefix(s, "**")
		s = strings.TrimSuffix(s, "**")
		if s == prev {
			return s
		}
	}
}
