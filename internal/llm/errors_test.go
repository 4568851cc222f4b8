package llm

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"
)

func TestClassifyStatus(t *testing.T) {
	cause := errors.New("boom")

	tests := []struct {
		status int
		check  func(error) bool
		name   string
	}{
		{http.StatusTooManyRequests, isType[*ErrRateLimit], "rate limit"},
		{http.StatusUnauthorized, isType[*ErrRejected], "rejected"},
		{http.StatusNotFound, isType[*ErrRejected], "rejected"},
		{http.StatusBadRequest, isType[*ErrRejected], "rejected"},
		{http.StatusRequestTimeout, isType[*ErrProviderUnavailable], "unavailable"},
		{http.StatusInternalServerError, isType[*ErrProviderUnavailable], "unavailable"},
		{http.StatusServiceUnavailable, isType[*ErrProviderUnavailable], "unavailable"},
		{0, isType[*ErrProviderUnavailable], "unavailable"},
	}
	for _, tt := range tests {
		err := classifyStatus(tt.status, 0, cause)
		if !tt.check(err) {
			t.Errorf("status %d: got %T, want %s", tt.status, err, tt.name)
		}
		if !errors.Is(err, cause) {
			t.Errorf("status %d: cause not wrapped", tt.status)
		}
	}
}

func isType[T error](err error) bool {
	var target T
	return errors.As(err, &target)
}

func TestClassifyStatusKeepsRetryAfter(t *testing.T) {
	err := classifyStatus(http.StatusTooManyRequests, 3*time.Second, errors.New("slow down"))
	var rl *ErrRateLimit
	if !errors.As(err, &rl) {
		t.Fatalf("expected ErrRateLimit, got %T", err)
	}
	if rl.RetryAfter != 3*time.Second {
		t.Errorf("RetryAfter = %s, want 3s", rl.RetryAfter)
	}
}

func TestParseRetryAfter(t *testing.T) {
	tests := []struct {
		value string
		want  time.Duration
	}{
		{"7", 7 * time.Second},
		{" 2 ", 2 * time.Second},
		{"0", 0},
		{"-4", 0},
		{"Wed, 21 Oct 2015 07:28:00 GMT", 0},
		{"", 0},
	}
	for _, tt := range tests {
		h := http.Header{}
		if tt.value != "" {
			h.Set("Retry-After", tt.value)
		}
		if got := parseRetryAfter(h); got != tt.want {
			t.Errorf("parseRetryAfter(%q) = %s, want %s", tt.value, got, tt.want)
		}
	}
	if got := parseRetryAfter(nil); got != 0 {
		t.Errorf("nil header = %s, want 0", got)
	}
}

func TestErrorMessages(t *testing.T) {
	tests := []struct {
		err  error
		want string
	}{
		{&ErrRateLimit{Err: errors.New("429")}, "llm: rate limited: 429"},
		{&ErrRateLimit{RetryAfter: time.Second, Err: errors.New("429")}, "llm: rate limited, retry in 1s: 429"},
		{&ErrRejected{Status: 401, Err: errors.New("bad key")}, "llm: request rejected (HTTP 401): bad key"},
		{&ErrProviderUnavailable{}, "llm: provider unavailable"},
		{&ErrProviderUnavailable{Err: errors.New("dial")}, "llm: provider unavailable: dial"},
		{&ErrInvalidResponse{Err: errors.New("empty response")}, "llm: invalid response: empty response"},
		{&ErrMaxTokensExceeded{Content: []byte(`{"q":`)}, "llm: response truncated at max tokens (5 bytes received)"},
	}
	for _, tt := range tests {
		if got := tt.err.Error(); got != tt.want {
			t.Errorf("Error() = %q, want %q", got, tt.want)
		}
	}
}

func TestRetry_RejectedIsNotRetried(t *testing.T) {
	mock := NewMockProvider(
		MockResponse{Err: &ErrRejected{Status: http.StatusUnauthorized, Err: errors.New("bad key")}},
		MockText("unreached"),
	)
	p := WithRetry(mock, retryConfig())

	_, err := p.Generate(context.Background(), Request{})
	var rejected *ErrRejected
	if !errors.As(err, &rejected) {
		t.Fatalf("expected ErrRejected, got %T (%v)", err, err)
	}
	if mock.CallCount() != 1 {
		t.Fatalf("expected 1 call, got %d", mock.CallCount())
	}
}
