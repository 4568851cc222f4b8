package store

import (
	"context"
	"errors"
	"time"
)

// ErrNotFound is returned when a lookup by ID matches nothing.
var ErrNotFound = errors.New("not found")

// QueryOpts configures event queries.
type QueryOpts struct {
	Limit   int    // max results (0 = unlimited)
	Purpose string // exact purpose match ("" = any)
}

// LLMRequestEventData captures the data for a single LLM request event.
type LLMRequestEventData struct {
	Provider     string
	Model        string
	Purpose      string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
	RequestBody  string
	ResponseBody string
}

// LLMEvent is a stored LLM request event.
type LLMEvent struct {
	ID        int
	Timestamp time.Time
	LLMRequestEventData
}

// PurposeUsage aggregates token usage for one purpose label.
type PurposeUsage struct {
	Purpose      string `db:"purpose"`
	Calls        int    `db:"calls"`
	InputTokens  int    `db:"input_tokens"`
	OutputTokens int    `db:"output_tokens"`
	AvgLatencyMs int64  `db:"avg_latency_ms"`
}

// ModelUsage aggregates token usage for one model.
type ModelUsage struct {
	Model        string `db:"model"`
	Calls        int    `db:"calls"`
	InputTokens  int    `db:"input_tokens"`
	OutputTokens int    `db:"output_tokens"`
}

// EventRepo records and queries LLM request events.
type EventRepo interface {
	// AppendLLMRequest records an LLM API call event.
	AppendLLMRequest(ctx context.Context, data LLMRequestEventData) error

	// QueryLLMEvents returns events newest first.
	QueryLLMEvents(ctx context.Context, opts QueryOpts) ([]LLMEvent, error)

	// GetLLMEvent returns a single event, or nil if it does not exist.
	GetLLMEvent(ctx context.Context, id int) (*LLMEvent, error)

	LLMUsageByPurpose(ctx context.Context) ([]PurposeUsage, error)
	LLMUsageByModel(ctx context.Context) ([]ModelUsage, error)
}

// QuizResult is one scored quiz attempt.
type QuizResult struct {
	ID        string
	UserID    string
	Topic     string
	Level     string
	Score     int
	Total     int
	CreatedAt time.Time
}

// Percentage returns the score as a percentage of total (0 when total is 0).
func (r QuizResult) Percentage() float64 {
	if r.Total == 0 {
		return 0
	}
	return float64(r.Score) / float64(r.Total) * 100
}

// ResultRepo stores quiz attempts.
type ResultRepo interface {
	// SaveResult stores a result. An empty ID is replaced with a new UUID
	// and a zero CreatedAt with the current time.
	SaveResult(ctx context.Context, r *QuizResult) error

	// ListResults returns results oldest first. An empty userID lists all users.
	ListResults(ctx context.Context, userID string) ([]QuizResult, error)
}

// LibraryEntry is a learning module a user saved.
type LibraryEntry struct {
	ID        int64
	UserID    string
	Topic     string
	Content   string
	CreatedAt time.Time
}

// LibraryRepo stores saved learning modules.
type LibraryRepo interface {
	Add(ctx context.Context, e *LibraryEntry) error
	List(ctx context.Context, userID string) ([]LibraryEntry, error)

	// Remove deletes the entry if it belongs to userID. Returns ErrNotFound otherwise.
	Remove(ctx context.Context, userID string, id int64) error
}
