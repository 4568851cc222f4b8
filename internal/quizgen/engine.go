package quizgen

import (
	"context"

	"go.uber.org/zap"
)

// Engine runs the quiz pipeline: prompt, generate, parse, validate,
// assemble. It holds no per-request state and adds no retries or
// timeouts of its own.
type Engine struct {
	gen    TextGenerator
	config Config
	logger *zap.Logger
}

// Option configures an Engine.
type Option func(*Engine)

// WithLogger sets the logger for drop reasons and pipeline summaries.
func WithLogger(l *zap.Logger) Option {
	return func(e *Engine) {
		if l != nil {
			e.logger = l
		}
	}
}

// NewEngine creates an Engine that generates text with gen.
func NewEngine(gen TextGenerator, cfg Config, opts ...Option) *Engine {
	e := &Engine{gen: gen, config: cfg, logger: zap.NewNop()}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Generate produces one quiz for req. Invalid requests fail before the
// generator is called and generator errors are returned unchanged.
// Output that yields no valid question is not an error: the quiz is
// simply empty, or short, and the caller decides whether to try again.
func (e *Engine) Generate(ctx context.Context, req Request) (*Quiz, error) {
	req, err := req.Normalize(e.config)
	if err != nil {
		return nil, err
	}

	prompt := BuildPrompt(req.Topic, req.Level, req.Count)
	raw, err := e.gen.GenerateText(ctx, prompt)
	if err != nil {
		return nil, err
	}

	candidates := Parse(raw)
	validators := e.config.validators()

	valid := make([]Question, 0, len(candidates))
	for i, c := range candidates {
		q, verr := validateWith(validators, c)
		if verr != nil {
			e.logger.Debug("candidate dropped",
				zap.Int("index", i),
				zap.String("validator", verr.Validator),
				zap.String("reason", verr.Message))
			continue
		}
		valid = append(valid, q)
	}

	quiz := Assemble(valid, req.Count)
	quiz.Topic = req.Topic
	quiz.Level = req.Level

	e.logger.Info("quiz assembled",
		zap.String("topic", req.Topic),
		zap.String("level", string(req.Level)),
		zap.Int("requested", req.Count),
		zap.Int("raw_bytes", len(raw)),
		zap.Int("parsed", len(candidates)),
		zap.Int("validated", len(valid)),
		zap.Int("questions", quiz.Len()))

	return quiz, nil
}
