package quizgen

import (
	"errors"
	"fmt"
	"strings"
)

// DefaultCount is the number of questions requested when Count is zero.
const DefaultCount = 5

var (
	ErrEmptyTopic   = errors.New("topic is empty")
	ErrInvalidLevel = errors.New("invalid level")
	ErrInvalidCount = errors.New("invalid question count")
)

// Level is the difficulty a quiz is written for.
type Level string

const (
	LevelEasy   Level = "easy"
	LevelMedium Level = "medium"
	LevelHard   Level = "hard"
)

// Levels lists the supported levels in ascending difficulty.
var Levels = []Level{LevelEasy, LevelMedium, LevelHard}

// ParseLevel parses a level name, ignoring case and surrounding space.
func ParseLevel(s string) (Level, error) {
	switch l := Level(normalize(s)); l {
	case LevelEasy, LevelMedium, LevelHard:
		return l, nil
	}
	return "", fmt.Errorf("%w: %q (want easy, medium or hard)", ErrInvalidLevel, s)
}

// Request describes one quiz to generate.
type Request struct {
	Topic string
	Level Level

	// Count is the number of questions wanted. Zero means DefaultCount.
	Count int
}

// Normalize trims the topic and fills defaults. An empty level means
// easy. It returns an error wrapping ErrEmptyTopic, ErrInvalidLevel or
// ErrInvalidCount when the request cannot be served.
func (r Request) Normalize(cfg Config) (Request, error) {
	r.Topic = strings.TrimSpace(r.Topic)
	if r.Topic == "" {
		return r, ErrEmptyTopic
	}

	if r.Level == "" {
		r.Level = LevelEasy
	} else {
		l, err := ParseLevel(string(r.Level))
		if err != nil {
			return r, err
		}
		r.Level = l
	}

	if r.Count == 0 {
		r.Count = DefaultCount
	}
	if r.Count < 0 {
		return r, fmt.Errorf("%w: %d", ErrInvalidCount, r.Count)
	}
	if cfg.MaxQuestions > 0 && r.Count > cfg.MaxQuestions {
		return r, fmt.Errorf("%w: %d exceeds the maximum of %d", ErrInvalidCount, r.Count, cfg.MaxQuestions)
	}
	return r, nil
}

// Candidate is a question parsed from raw model output. Its answer has
// not been checked against its options yet.
type Candidate struct {
	Question string
	Options  []string
	Answer   string
}

// Question is a validated multiple-choice question. Answer equals exactly
// one entry of Options and no two options normalize to the same text.
type Question struct {
	Text    string   `json:"question"`
	Options []string `json:"options"`
	Answer  string   `json:"answer"`
}

// Quiz is the assembled result handed to callers. It owns its slices.
type Quiz struct {
	Topic     string     `json:"topic"`
	Level     Level      `json:"level"`
	Requested int        `json:"requested"`
	Questions []Question `json:"questions"`
}

// Len returns the number of questions in the quiz.
func (q *Quiz) Len() int {
	return len(q.Questions)
}

// Empty reports whether no question survived the pipeline.
func (q *Quiz) Empty() bool {
	return len(q.Questions) == 0
}

// Short reports whether the quiz holds fewer questions than requested.
func (q *Quiz) Short() bool {
	return len(q.Questions) < q.Requested
}
