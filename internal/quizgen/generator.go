package quizgen

import "context"

// TextGenerator is the text-completion collaborator the engine calls.
// Output is untrusted: it may be empty, truncated or off-format.
type TextGenerator interface {
	GenerateText(ctx context.Context, prompt string) (string, error)
}

// TextGeneratorFunc adapts a plain function to TextGenerator.
type TextGeneratorFunc func(ctx context.Context, prompt string) (string, error)

func (f TextGeneratorFunc) GenerateText(ctx context.Context, prompt string) (string, error) {
	return f(ctx, prompt)
}
