package lessons

import "errors"

// ErrEmptyTopic is returned when a lesson is requested without a topic.
var ErrEmptyTopic = errors.New("topic is empty")

// Lesson is a short generated introduction to a topic.
type Lesson struct {
	Topic       string
	Title       string
	Explanation string
	KeyTerms    []string
}

// Content renders the lesson as plain text for display or saving to the
// library.
func (l *Lesson) Content() string {
	s := l.Title + "\n\n" + l.Explanation
	if len(l.KeyTerms) > 0 {
		s += "\n\nKey terms:"
		for _, term := range l.KeyTerms {
			s += "\n- " + term
		}
	}
	return s
}
