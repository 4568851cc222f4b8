package lessons

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/abhisek/edututor/internal/llm"
)

// Service generates learning modules.
type Service struct {
	provider llm.Provider
	cfg      Config
}

// NewService creates a lesson generation service.
func NewService(provider llm.Provider, cfg Config) *Service {
	return &Service{provider: provider, cfg: cfg}
}

type lessonOutput struct {
	Title       string   `json:"title"`
	Explanation string   `json:"explanation"`
	KeyTerms    []string `json:"key_terms"`
}

// Generate writes a learning module for topic.
func (s *Service) Generate(ctx context.Context, topic string) (*Lesson, error) {
	topic = strings.TrimSpace(topic)
	if topic == "" {
		return nil, ErrEmptyTopic
	}

	ctx = llm.WithPurpose(ctx, llm.PurposeLesson)

	req := llm.Request{
		System:      lessonSystemPrompt,
		Messages:    llm.UserMessage(buildLessonUserMessage(topic)),
		Schema:      LessonSchema,
		MaxTokens:   s.cfg.MaxTokens,
		Temperature: s.cfg.Temperature,
	}

	resp, err := s.provider.Generate(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("lesson generation: %w", err)
	}

	var out lessonOutput
	if err := json.Unmarshal(resp.Content, &out); err != nil {
		return nil, fmt.Errorf("parse lesson response: %w", err)
	}

	terms := make([]string, 0, len(out.KeyTerms))
	for _, t := range out.KeyTerms {
		if t = strings.TrimSpace(t); t != "" {
			terms = append(terms, t)
		}
	}

	return &Lesson{
		Topic:       topic,
		Title:       strings.TrimSpace(out.Title),
		Explanation: strings.TrimSpace(out.Explanation),
		KeyTerms:    terms,
	}, nil
}
