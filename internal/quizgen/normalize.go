package quizgen

import (
	"strings"
	"unicode/utf8"

	"golang.org/x/text/cases"
)

// normalize trims s, case-folds it and collapses internal whitespace so
// that "  Carbon  Dioxide" and "carbon dioxide" compare equal.
func normalize(s string) string {
	folded := cases.Fold().String(strings.TrimSpace(s))
	return strings.Join(strings.Fields(folded), " ")
}

// artifactPairs are wrappers models put around answers and options.
var artifactPairs = map[rune]rune{
	'"':  '"',
	'\'': '\'',
	'`':  '`',
	'*':  '*',
	'_':  '_',
	'(':  ')',
	'[':  ']',
	'“':  '”',
	'‘':  '’',
	'«':  '»',
}

const trailingPunct = ".,;:!"

// stripArtifacts removes surrounding quotes, brackets and emphasis marks
// and trailing punctuation until the string stops changing.
func stripArtifacts(s string) string {
	for {
		prev := s
		s = strings.TrimSpace(s)
		s = strings.TrimRight(s, trailingPunct)
		s = strings.TrimSpace(s)

		first, size := utf8.DecodeRuneInString(s)
		last, lastSize := utf8.DecodeLastRuneInString(s)
		if len(s) > size && artifactPairs[first] == last && last != 0 {
			s = s[size : len(s)-lastSize]
		}

		if s == prev {
			return s
		}
	}
}
