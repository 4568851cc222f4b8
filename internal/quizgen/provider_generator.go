package quizgen

import (
	"context"
	"errors"

	"github.com/abhisek/edututor/internal/llm"
)

// ProviderGenerator implements TextGenerator on top of an llm.Provider.
type ProviderGenerator struct {
	provider llm.Provider
	config   Config
}

// NewProviderGenerator creates a ProviderGenerator that sizes requests
// from cfg.
func NewProviderGenerator(provider llm.Provider, cfg Config) *ProviderGenerator {
	return &ProviderGenerator{provider: provider, config: cfg}
}

// GenerateText sends prompt as a single user message. An empty reply is
// returned as empty text; every other provider error is returned as is.
func (g *ProviderGenerator) GenerateText(ctx context.Context, prompt string) (string, error) {
	ctx = llm.WithPurpose(ctx, llm.PurposeQuizGen)

	resp, err := g.provider.Generate(ctx, llm.Request{
		System:      systemPrompt,
		Messages:    llm.UserMessage(prompt),
		MaxTokens:   g.config.MaxTokens,
		Temperature: g.config.Temperature,
	})
	if err != nil {
		var invalid *llm.ErrInvalidResponse
		if errors.As(err, &invalid) {
			return "", nil
		}
		return "", err
	}
	return resp.Text(), nil
}
