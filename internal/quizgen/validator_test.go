package quizgen

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidate_Accepts(t *testing.T) {
	q, verr := Validate(Candidate{
		Question: "  What is 2+2?  ",
		Options:  []string{"3", " 4 ", "5"},
		Answer:   "4",
	})
	require.Nil(t, verr)
	assert.Equal(t, "What is 2+2?", q.Text)
	assert.Equal(t, []string{"3", "4", "5"}, q.Options)
	assert.Equal(t, "4", q.Answer)
}

func TestValidate_RewritesAnswerToOptionText(t *testing.T) {
	q, verr := Validate(Candidate{
		Question: "Gas absorbed by plants?",
		Options:  []string{"Oxygen", "Carbon Dioxide"},
		Answer:   "  carbon   dioxide ",
	})
	require.Nil(t, verr)
	assert.Equal(t, "Carbon Dioxide", q.Answer)
}

func TestValidate_Rejections(t *testing.T) {
	tests := []struct {
		name      string
		candidate Candidate
		validator string
	}{
		{
			name:      "empty question",
			candidate: Candidate{Question: "   ", Options: []string{"a", "b"}, Answer: "a"},
			validator: "question",
		},
		{
			name:      "single option",
			candidate: Candidate{Question: "Q?", Options: []string{"a"}, Answer: "a"},
			validator: "options",
		},
		{
			name:      "duplicates collapse below two",
			candidate: Candidate{Question: "Q?", Options: []string{"Yes", " yes ", "YES"}, Answer: "yes"},
			validator: "options",
		},
		{
			name:      "empty options dropped",
			candidate: Candidate{Question: "Q?", Options: []string{"a", "", "  "}, Answer: "a"},
			validator: "options",
		},
		{
			name:      "answer not among options",
			candidate: Candidate{Question: "Capital of France?", Options: []string{"London", "Berlin", "Rome"}, Answer: "Paris"},
			validator: "answer",
		},
		{
			name:      "empty answer",
			candidate: Candidate{Question: "Q?", Options: []string{"a", "b"}, Answer: " "},
			validator: "answer",
		},
		{
			name:      "only artifacts",
			candidate: Candidate{Question: "Q?", Options: []string{"a", "b"}, Answer: `"..."`},
			validator: "answer",
		},
		{
			name:      "no partial matching",
			candidate: Candidate{Question: "Q?", Options: []string{"Paris, France", "Rome"}, Answer: "Paris"},
			validator: "answer",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, verr := Validate(tt.candidate)
			require.NotNil(t, verr)
			assert.Equal(t, tt.validator, verr.Validator)
			assert.Contains(t, verr.Error(), tt.validator)
		})
	}
}

func TestValidate_DeduplicatesKeepingFirst(t *testing.T) {
	q, verr := Validate(Candidate{
		Question: "Pick a colour",
		Options:  []string{"Red", "Blue", "red", "Green", "BLUE"},
		Answer:   "green",
	})
	require.Nil(t, verr)
	assert.Equal(t, []string{"Red", "Blue", "Green"}, q.Options)
	assert.Equal(t, "Green", q.Answer)
}

func TestValidate_RepairPass(t *testing.T) {
	tests := []struct {
		name    string
		options []string
		answer  string
		want    string
	}{
		{"quoted answer", []string{"Paris", "Rome"}, `"Paris"`, "Paris"},
		{"curly quotes", []string{"Paris", "Rome"}, "“Rome”", "Rome"},
		{"trailing period", []string{"Mitochondria", "Nucleus"}, "Mitochondria.", "Mitochondria"},
		{"bold emphasis", []string{"Mercury", "Venus"}, "**Venus**", "Venus"},
		{"bracketed", []string{"42", "7"}, "[42]", "42"},
		{"artifacts on option side", []string{"'Hamlet'", "Macbeth"}, "Hamlet", "'Hamlet'"},
		{"nested artifacts", []string{"Oxygen", "Helium"}, `("Helium").`, "Helium"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q, verr := Validate(Candidate{Question: "Q?", Options: tt.options, Answer: tt.answer})
			require.Nil(t, verr)
			assert.Equal(t, tt.want, q.Answer)
		})
	}
}

func TestValidate_RepairMustBeUnique(t *testing.T) {
	// Both options reduce to "paris" once artifacts are stripped.
	_, verr := Validate(Candidate{
		Question: "Q?",
		Options:  []string{`"Paris"`, "Paris.", "Rome"},
		Answer:   "(Paris)",
	})
	require.NotNil(t, verr)
	assert.Equal(t, "answer", verr.Validator)
}

func TestValidate_DoesNotMutateCandidate(t *testing.T) {
	c := Candidate{Question: "Q?", Options: []string{" a ", "b", "A"}, Answer: "a"}
	_, verr := Validate(c)
	require.Nil(t, verr)
	assert.Equal(t, []string{" a ", "b", "A"}, c.Options)
}

func TestValidatedAnswerMatchesExactlyOneOption(t *testing.T) {
	candidates := Parse(`1. What is 2+2?
A) 3
B) 4
C) 5
Answer: B) 4

2. Choose the vowel
A) "E"
B) T
C) e
Answer: e.

3. Pick
A) x
B) y
Answer: Z`)

	for _, c := range candidates {
		q, verr := Validate(c)
		if verr != nil {
			continue
		}
		matches := 0
		for _, opt := range q.Options {
			if normalize(opt) == normalize(q.Answer) {
				matches++
			}
		}
		assert.Equal(t, 1, matches, "question %q", q.Text)
	}
}

func TestStripArtifacts(t *testing.T) {
	tests := map[string]string{
		`"Paris"`:       "Paris",
		"'Paris'.":      "Paris",
		"**Paris**":     "Paris",
		"_Paris_":       "Paris",
		"«Paris»":       "Paris",
		"(a+b)":         "a+b",
		"Paris":         "Paris",
		"Paris!":        "Paris",
		`"`:             `"`,
		"":              "",
		"(unbalanced":   "(unbalanced",
		"`code`;":       "code",
		"  ‘quoted’  ":  "quoted",
	}
	for in, want := range tests {
		assert.Equal(t, want, stripArtifacts(in), "stripArtifacts(%q)", in)
	}
}

func TestNormalize(t *testing.T) {
	assert.Equal(t, "carbon dioxide", normalize("  Carbon \t Dioxide\n"))
	assert.Equal(t, normalize("ÉCOLE"), normalize("école"))
	assert.Equal(t, "", normalize("   "))
}
