package quizgen

import (
	"encoding/json"
	"fmt"

	"github.com/abhisek/edututor/internal/llm"
)

// QuizSchema is the JSON Schema for an exported Quiz.
var QuizSchema = &llm.Schema{
	Name:        "quiz-export",
	Description: "A validated multiple-choice quiz",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"topic":     map[string]any{"type": "string", "minLength": 1},
			"level":     map[string]any{"type": "string", "enum": []any{"easy", "medium", "hard"}},
			"requested": map[string]any{"type": "integer", "minimum": 0},
			"questions": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"question": map[string]any{"type": "string", "minLength": 1},
						"options": map[string]any{
							"type":        "array",
							"items":       map[string]any{"type": "string", "minLength": 1},
							"minItems":    2,
							"uniqueItems": true,
						},
						"answer": map[string]any{"type": "string", "minLength": 1},
					},
					"required":             []any{"question", "options", "answer"},
					"additionalProperties": false,
				},
			},
		},
		"required":             []any{"topic", "level", "requested", "questions"},
		"additionalProperties": false,
	},
}

// Export encodes quiz as indented JSON and checks it against QuizSchema
// and the answer-in-options rule the schema cannot express.
func Export(quiz *Quiz) ([]byte, error) {
	for i, q := range quiz.Questions {
		if _, n := matchOption(q.Options, q.Answer, normalize); n != 1 {
			return nil, fmt.Errorf("question %d: answer %q is not exactly one of its options", i+1, q.Answer)
		}
	}

	data, err := json.MarshalIndent(quiz, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encode quiz: %w", err)
	}
	if err := llm.ValidateJSON(QuizSchema, data); err != nil {
		return nil, fmt.Errorf("quiz export: %w", err)
	}
	return data, nil
}
