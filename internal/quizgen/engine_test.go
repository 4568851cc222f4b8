package quizgen

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/abhisek/edututor/internal/llm"
)

// staticGenerator returns the same output for every prompt and records
// what it was asked.
type staticGenerator struct {
	out     string
	err     error
	prompts []string
}

func (g *staticGenerator) GenerateText(_ context.Context, prompt string) (string, error) {
	g.prompts = append(g.prompts, prompt)
	return g.out, g.err
}

func TestEngine_SingleQuestion(t *testing.T) {
	gen := &staticGenerator{out: "1. What is 2+2?\nA) 3\nB) 4\nC) 5\nAnswer: B) 4"}
	e := NewEngine(gen, DefaultConfig())

	quiz, err := e.Generate(context.Background(), Request{Topic: "Arithmetic", Count: 1})
	require.NoError(t, err)
	require.Equal(t, 1, quiz.Len())

	q := quiz.Questions[0]
	assert.Equal(t, "What is 2+2?", q.Text)
	assert.ElementsMatch(t, []string{"3", "4", "5"}, q.Options)
	assert.Equal(t, "4", q.Answer)
	assert.Equal(t, "Arithmetic", quiz.Topic)
	assert.Equal(t, LevelEasy, quiz.Level)
	assert.Equal(t, 1, quiz.Requested)
}

func TestEngine_DropsQuestionWithUnknownAnswer(t *testing.T) {
	gen := &staticGenerator{out: `1. Capital of France?
A) London
B) Berlin
C) Rome
Answer: Paris

2. Capital of Italy?
A) London
B) Berlin
C) Rome
Answer: C`}
	e := NewEngine(gen, DefaultConfig())

	quiz, err := e.Generate(context.Background(), Request{Topic: "Capitals", Count: 2})
	require.NoError(t, err)
	require.Equal(t, 1, quiz.Len())
	assert.Equal(t, "Capital of Italy?", quiz.Questions[0].Text)
	assert.Equal(t, "Rome", quiz.Questions[0].Answer)
	assert.True(t, quiz.Short())
}

func TestEngine_ShortQuiz(t *testing.T) {
	gen := &staticGenerator{out: `1. Red planet?
A) Mars
B) Venus
Answer: A

2. Ringed planet?
A) Saturn
B) Mercury
Answer: A

3. Hottest planet?
A) Venus
B) Neptune
Answer: A`}
	e := NewEngine(gen, DefaultConfig())

	quiz, err := e.Generate(context.Background(), Request{Topic: "Planets", Level: LevelMedium, Count: 5})
	require.NoError(t, err)
	assert.Equal(t, 3, quiz.Len())
	assert.Equal(t, 5, quiz.Requested)
	assert.True(t, quiz.Short())
}

func TestEngine_DeduplicatesQuestions(t *testing.T) {
	gen := &staticGenerator{out: `1. What is H2O?
A) Water
B) Salt
Answer: A

2. what is h2o?
A) Water
B) Salt
Answer: A`}
	e := NewEngine(gen, DefaultConfig())

	quiz, err := e.Generate(context.Background(), Request{Topic: "Chemistry", Count: 2})
	require.NoError(t, err)
	assert.Equal(t, 1, quiz.Len())
}

func TestEngine_NoiseYieldsEmptyQuiz(t *testing.T) {
	for _, out := range []string{"", "I'm sorry, I can't help with that.", "}{ ))) 42"} {
		gen := &staticGenerator{out: out}
		e := NewEngine(gen, DefaultConfig())

		quiz, err := e.Generate(context.Background(), Request{Topic: "Anything"})
		require.NoError(t, err)
		assert.True(t, quiz.Empty(), "output %q", out)
		assert.Equal(t, DefaultCount, quiz.Requested)
	}
}

func TestEngine_RepeatableAssembly(t *testing.T) {
	out := `1. Largest ocean?
A) Atlantic
B) Pacific
C) Indian
D) Arctic
Answer: B

2. Longest river?
A) Nile
B) Danube
C) Thames
D) Volga
Answer: A`
	e := NewEngine(&staticGenerator{out: out}, DefaultConfig())

	first, err := e.Generate(context.Background(), Request{Topic: "Geography", Count: 2})
	require.NoError(t, err)
	second, err := e.Generate(context.Background(), Request{Topic: "Geography", Count: 2})
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestEngine_GeneratorErrorReturnedUnchanged(t *testing.T) {
	sentinel := errors.New("backend down")
	e := NewEngine(&staticGenerator{err: sentinel}, DefaultConfig())

	quiz, err := e.Generate(context.Background(), Request{Topic: "Go"})
	assert.Nil(t, quiz)
	assert.True(t, errors.Is(err, sentinel))
}

func TestEngine_InvalidRequestSkipsGenerator(t *testing.T) {
	tests := []struct {
		name string
		req  Request
		want error
	}{
		{"empty topic", Request{Topic: "   "}, ErrEmptyTopic},
		{"bad level", Request{Topic: "Go", Level: "expert"}, ErrInvalidLevel},
		{"negative count", Request{Topic: "Go", Count: -1}, ErrInvalidCount},
		{"over limit", Request{Topic: "Go", Count: 21}, ErrInvalidCount},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gen := &staticGenerator{}
			e := NewEngine(gen, DefaultConfig())

			_, err := e.Generate(context.Background(), tt.req)
			assert.ErrorIs(t, err, tt.want)
			assert.Empty(t, gen.prompts)
		})
	}
}

func TestEngine_PromptCarriesRequest(t *testing.T) {
	gen := &staticGenerator{}
	e := NewEngine(gen, DefaultConfig())

	_, err := e.Generate(context.Background(), Request{Topic: "  Volcanoes ", Level: "HARD", Count: 3})
	require.NoError(t, err)
	require.Len(t, gen.prompts, 1)
	assert.Equal(t, BuildPrompt("Volcanoes", LevelHard, 3), gen.prompts[0])
}

type rejectAll struct{}

func (rejectAll) Name() string { return "reject-all" }

func (rejectAll) Validate(*Question) *ValidationError {
	return &ValidationError{Validator: "reject-all", Message: "nope"}
}

func TestEngine_CustomValidatorsAndDropLogging(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	gen := &staticGenerator{out: "1. Q?\nA) x\nB) y\nAnswer: A"}

	cfg := DefaultConfig()
	cfg.Validators = []Validator{rejectAll{}}
	e := NewEngine(gen, cfg, WithLogger(zap.New(core)))

	quiz, err := e.Generate(context.Background(), Request{Topic: "Go", Count: 1})
	require.NoError(t, err)
	assert.True(t, quiz.Empty())

	dropped := logs.FilterMessage("candidate dropped").All()
	require.Len(t, dropped, 1)
	assert.Equal(t, "reject-all", dropped[0].ContextMap()["validator"])

	summary := logs.FilterMessage("quiz assembled").All()
	require.Len(t, summary, 1)
	assert.EqualValues(t, 1, summary[0].ContextMap()["parsed"])
	assert.EqualValues(t, 0, summary[0].ContextMap()["questions"])
}

func TestEngine_WithProviderGenerator(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockText("1. What is 2+2?\nA) 3\nB) 4\nC) 5\nAnswer: B) 4"))
	cfg := DefaultConfig()
	e := NewEngine(NewProviderGenerator(mock, cfg), cfg)

	quiz, err := e.Generate(context.Background(), Request{Topic: "Arithmetic", Count: 1})
	require.NoError(t, err)
	require.Equal(t, 1, quiz.Len())
	assert.Equal(t, "4", quiz.Questions[0].Answer)

	call, ok := mock.LastCall()
	require.True(t, ok)
	assert.Equal(t, systemPrompt, call.System)
	assert.Equal(t, cfg.MaxTokens, call.MaxTokens)
	assert.Equal(t, cfg.Temperature, call.Temperature)
	assert.Nil(t, call.Schema)
	require.Len(t, call.Messages, 1)
	assert.Equal(t, BuildPrompt("Arithmetic", LevelEasy, 1), call.Messages[0].Content)
}

func TestProviderGenerator_InvalidResponseIsEmptyText(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Err: &llm.ErrInvalidResponse{Err: errors.New("empty response")},
	})
	e := NewEngine(NewProviderGenerator(mock, DefaultConfig()), DefaultConfig())

	quiz, err := e.Generate(context.Background(), Request{Topic: "Go"})
	require.NoError(t, err)
	assert.True(t, quiz.Empty())
}

func TestProviderGenerator_ProviderErrorPassesThrough(t *testing.T) {
	mock := llm.NewMockProvider()
	gen := NewProviderGenerator(mock, DefaultConfig())

	_, err := gen.GenerateText(context.Background(), "prompt")
	var unavailable *llm.ErrProviderUnavailable
	assert.ErrorAs(t, err, &unavailable)
}

func TestProviderGenerator_ContextCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	mock := llm.NewMockProvider(llm.MockText("unused"))
	e := NewEngine(NewProviderGenerator(mock, DefaultConfig()), DefaultConfig())

	_, err := e.Generate(ctx, Request{Topic: "Go"})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestProviderGenerator_SetsPurpose(t *testing.T) {
	var purpose string
	p := providerFunc(func(ctx context.Context, _ llm.Request) (*llm.Response, error) {
		purpose = llm.PurposeFrom(ctx)
		return &llm.Response{Content: []byte("text")}, nil
	})

	out, err := NewProviderGenerator(p, DefaultConfig()).GenerateText(context.Background(), "x")
	require.NoError(t, err)
	assert.Equal(t, "text", out)
	assert.Equal(t, llm.PurposeQuizGen, purpose)
}

type providerFunc func(ctx context.Context, req llm.Request) (*llm.Response, error)

func (f providerFunc) Generate(ctx context.Context, req llm.Request) (*llm.Response, error) {
	return f(ctx, req)
}

func (f providerFunc) ModelID() string { return "func" }
