package quizgen

import (
	"fmt"
	"strings"
)

// Validator checks one aspect of a parsed question and may repair it in
// place. Implementations are stateless and safe for concurrent use.
type Validator interface {
	// Name returns a short identifier used in errors and logs,
	// e.g. "options".
	Name() string

	// Validate returns nil if q passes, possibly after repairing it.
	Validate(q *Question) *ValidationError
}

// ValidationError describes why a candidate was rejected.
type ValidationError struct {
	Validator string // Name of the validator that failed
	Message   string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validator %q: %s", e.Validator, e.Message)
}

// DefaultValidators returns the standard chain: question text, options,
// then answer.
func DefaultValidators() []Validator {
	return []Validator{
		&QuestionValidator{},
		&OptionsValidator{},
		&AnswerValidator{},
	}
}

// Validate runs the default validator chain on c.
func Validate(c Candidate) (Question, *ValidationError) {
	return validateWith(DefaultValidators(), c)
}

func validateWith(validators []Validator, c Candidate) (Question, *ValidationError) {
	q := Question{
		Text:    c.Question,
		Options: append([]string(nil), c.Options...),
		Answer:  c.Answer,
	}
	for _, v := range validators {
		if verr := v.Validate(&q); verr != nil {
			return Question{}, verr
		}
	}
	return q, nil
}

// QuestionValidator requires non-empty question text.
type QuestionValidator struct{}

func (v *QuestionValidator) Name() string { return "question" }

func (v *QuestionValidator) Validate(q *Question) *ValidationError {
	q.Text = strings.TrimSpace(q.Text)
	if q.Text == "" {
		return &ValidationError{Validator: v.Name(), Message: "question text is empty"}
	}
	return nil
}

// OptionsValidator trims options, drops empty ones and duplicates (first
// occurrence wins) and requires at least two to remain.
type OptionsValidator struct{}

func (v *OptionsValidator) Name() string { return "options" }

func (v *OptionsValidator) Validate(q *Question) *ValidationError {
	if len(q.Options) < 2 {
		return &ValidationError{
			Validator: v.Name(),
			Message:   fmt.Sprintf("need at least 2 options, got %d", len(q.Options)),
		}
	}

	seen := make(map[string]struct{}, len(q.Options))
	kept := make([]string, 0, len(q.Options))
	for _, opt := range q.Options {
		opt = strings.TrimSpace(opt)
		key := normalize(opt)
		if key == "" {
			continue
		}
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		kept = append(kept, opt)
	}

	if len(kept) < 2 {
		return &ValidationError{
			Validator: v.Name(),
			Message:   fmt.Sprintf("only %d distinct option(s) after removing duplicates", len(kept)),
		}
	}
	q.Options = kept
	return nil
}

// AnswerValidator requires the answer to match exactly one option. When
// there is no direct match it retries once with quotes, brackets,
// emphasis and trailing punctuation stripped from both sides. It never
// guesses: an answer that still matches nothing, or matches more than
// one option, is rejected. On success the answer becomes the option text.
type AnswerValidator struct{}

func (v *AnswerValidator) Name() string { return "answer" }

func (v *AnswerValidator) Validate(q *Question) *ValidationError {
	if strings.TrimSpace(q.Answer) == "" {
		return &ValidationError{Validator: v.Name(), Message: "answer is empty"}
	}

	if i, n := matchOption(q.Options, q.Answer, normalize); n == 1 {
		q.Answer = q.Options[i]
		return nil
	} else if n > 1 {
		return &ValidationError{Validator: v.Name(), Message: fmt.Sprintf("answer %q matches %d options", q.Answer, n)}
	}

	repaired := func(s string) string { return normalize(stripArtifacts(s)) }
	if repaired(q.Answer) != "" {
		if i, n := matchOption(q.Options, q.Answer, repaired); n == 1 {
			q.Answer = q.Options[i]
			return nil
		}
	}

	return &ValidationError{
		Validator: v.Name(),
		Message:   fmt.Sprintf("answer %q does not match exactly one option", q.Answer),
	}
}

// matchOption returns the index of the last option whose key equals the
// answer's key, and how many options matched.
func matchOption(options []string, answer string, key func(string) string) (idx, n int) {
	want := key(answer)
	idx = -1
	for i, opt := range options {
		if key(opt) == want {
			idx = i
			n++
		}
	}
	return idx, n
}
