package quizgen

import (
	"strings"
)

// CheckAnswer reports whether submitted is the correct answer to q.
// Comparison is by normalized text, never by option position.
func CheckAnswer(submitted string, q Question) bool {
	key := normalize(submitted)
	return key != "" && key == normalize(q.Answer)
}

// ResolveChoice maps a learner's input to option text. Input that
// already names an option is kept as that option, so options that are
// themselves numbers or single letters score by value. Otherwise a
// letter A..(N) selects the option shown under that label. Anything
// else is returned trimmed and compared as free text. Digits are never
// read as positions.
func ResolveChoice(input string, q Question) string {
	input = strings.TrimSpace(input)
	key := normalize(input)
	if key == "" {
		return input
	}

	for _, opt := range q.Options {
		if normalize(opt) == key {
			return opt
		}
	}

	if idx, ok := letterIndex(input); ok && idx < len(q.Options) {
		return q.Options[idx]
	}
	return input
}

// letterIndex returns the zero-based position of a single option label.
func letterIndex(s string) (int, bool) {
	if len(s) != 1 {
		return 0, false
	}
	c := s[0] | 0x20
	if c < 'a' || c > 'z' {
		return 0, false
	}
	return int(c - 'a'), true
}

// QuestionResult is the outcome for one question.
type QuestionResult struct {
	Question  Question
	Submitted string
	Correct   bool
}

// Result is a scored attempt at a quiz.
type Result struct {
	Correct   int
	Total     int
	Questions []QuestionResult
}

// Percentage returns the share of correct answers (0 for an empty quiz).
func (r Result) Percentage() float64 {
	if r.Total == 0 {
		return 0
	}
	return float64(r.Correct) / float64(r.Total) * 100
}

// Score grades answers against quiz in order. Missing answers count as
// wrong; extra answers are ignored.
func Score(quiz *Quiz, answers []string) Result {
	res := Result{Total: quiz.Len()}
	for i, q := range quiz.Questions {
		var submitted string
		if i < len(answers) {
			submitted = answers[i]
		}
		ok := CheckAnswer(submitted, q)
		if ok {
			res.Correct++
		}
		res.Questions = append(res.Questions, QuestionResult{
			Question:  q,
			Submitted: submitted,
			Correct:   ok,
		})
	}
	return res
}
