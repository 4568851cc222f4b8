package llm

import (
	"context"
	"errors"
	"math"
	"strings"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/abhisek/edututor/internal/store"
)

type recordingRepo struct {
	store.EventRepo
	events []store.LLMRequestEventData
	err    error
}

func (r *recordingRepo) AppendLLMRequest(_ context.Context, data store.LLMRequestEventData) error {
	r.events = append(r.events, data)
	return r.err
}

func TestLogging_RecordsSuccess(t *testing.T) {
	repo := &recordingRepo{}
	mock := NewMockProvider(MockResponse{
		Content: []byte(sampleQuizText),
		Usage:   Usage{InputTokens: 7, OutputTokens: 9},
	})
	p := WithLogging(mock, "openai", repo, nil)

	ctx := WithPurpose(context.Background(), PurposeQuizGen)
	_, err := p.Generate(ctx, Request{System: "sys", Messages: UserMessage("make a quiz")})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(repo.events) != 1 {
		t.Fatalf("expected 1 event, got %d", len(repo.events))
	}
	ev := repo.events[0]
	if ev.Provider != "openai" || ev.Model != "mock" || ev.Purpose != "quiz-gen" {
		t.Errorf("unexpected event identity: %+v", ev)
	}
	if !ev.Success || ev.InputTokens != 7 || ev.OutputTokens != 9 {
		t.Errorf("unexpected event data: %+v", ev)
	}
	if !strings.Contains(ev.RequestBody, "[system]\nsys") || !strings.Contains(ev.RequestBody, "[user]\nmake a quiz") {
		t.Errorf("unexpected request body: %q", ev.RequestBody)
	}
	if ev.ResponseBody != sampleQuizText {
		t.Errorf("unexpected response body: %q", ev.ResponseBody)
	}
}

func TestLogging_RecordsFailureAndWarns(t *testing.T) {
	core, logs := observer.New(zap.WarnLevel)
	repo := &recordingRepo{}
	mock := NewMockProvider(MockResponse{Err: errors.New("boom")})
	p := WithLogging(mock, "gemini", repo, zap.New(core))

	if _, err := p.Generate(context.Background(), Request{}); err == nil {
		t.Fatal("expected error")
	}
	if len(repo.events) != 1 || repo.events[0].Success || repo.events[0].ErrorMessage != "boom" {
		t.Fatalf("unexpected events: %+v", repo.events)
	}
	if logs.FilterMessage("llm request failed").Len() != 1 {
		t.Fatalf("expected a failure warning, got %v", logs.All())
	}
}

func TestLogging_RepoErrorDoesNotFailRequest(t *testing.T) {
	core, logs := observer.New(zap.WarnLevel)
	repo := &recordingRepo{err: errors.New("disk full")}
	p := WithLogging(NewMockProvider(MockText("ok")), "mock", repo, zap.New(core))

	if _, err := p.Generate(context.Background(), Request{}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if logs.FilterMessage("failed to record LLM request event").Len() != 1 {
		t.Fatalf("expected a warning for the failed write, got %v", logs.All())
	}
}

func TestLogging_NilRepo(t *testing.T) {
	p := WithLogging(NewMockProvider(MockText("ok")), "mock", nil, nil)
	if _, err := p.Generate(context.Background(), Request{}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestLookupCost(t *testing.T) {
	c := LookupCost("gpt-4o-mini")
	if c == nil {
		t.Fatal("expected pricing for gpt-4o-mini")
	}
	if got := c.Cost(1_000_000, 1_000_000); math.Abs(got-0.75) > 1e-9 {
		t.Errorf("cost = %v, want 0.75", got)
	}
	if LookupCost("openai/gpt-4o-mini") == nil {
		t.Error("expected OpenRouter slug to resolve")
	}
	if LookupCost("llama3.2") != nil {
		t.Error("expected no pricing for local model")
	}
}
