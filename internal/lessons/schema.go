package lessons

import "github.com/abhisek/edututor/internal/llm"

// LessonSchema defines the JSON schema for learning module generation.
var LessonSchema = &llm.Schema{
	Name:        "learning-module",
	Description: "A short introduction to a topic with title and key terms",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"title": map[string]any{
				"type":        "string",
				"description": "Short title for the lesson (3-8 words)",
				"minLength":   1,
			},
			"explanation": map[string]any{
				"type":        "string",
				"description": "Introduction to the topic for students (8-9 sentences)",
				"minLength":   1,
			},
			"key_terms": map[string]any{
				"type":        "array",
				"items":       map[string]any{"type": "string"},
				"description": "2-5 key terms to remember",
			},
		},
		"required":             []any{"title", "explanation", "key_terms"},
		"additionalProperties": false,
	},
}
