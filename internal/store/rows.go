package store

import "time"

// Row models mirror the table layouts. Timestamps are stored as unix
// milliseconds and converted at the repository boundary.

type eventRow struct {
	ID           int    `db:"id"`
	Timestamp    int64  `db:"timestamp"`
	Provider     string `db:"provider"`
	Model        string `db:"model"`
	Purpose      string `db:"purpose"`
	InputTokens  int    `db:"input_tokens"`
	OutputTokens int    `db:"output_tokens"`
	LatencyMs    int64  `db:"latency_ms"`
	Success      bool   `db:"success"`
	ErrorMessage string `db:"error_message"`
	RequestBody  string `db:"request_body"`
	ResponseBody string `db:"response_body"`
}

func newEventRow(data LLMRequestEventData, at time.Time) eventRow {
	return eventRow{
		Timestamp:    at.UTC().UnixMilli(),
		Provider:     data.Provider,
		Model:        data.Model,
		Purpose:      data.Purpose,
		InputTokens:  data.InputTokens,
		OutputTokens: data.OutputTokens,
		LatencyMs:    data.LatencyMs,
		Success:      data.Success,
		ErrorMessage: data.ErrorMessage,
		RequestBody:  data.RequestBody,
		ResponseBody: data.ResponseBody,
	}
}

func (r eventRow) toEvent() LLMEvent {
	return LLMEvent{
		ID:        r.ID,
		Timestamp: time.UnixMilli(r.Timestamp).UTC(),
		LLMRequestEventData: LLMRequestEventData{
			Provider:     r.Provider,
			Model:        r.Model,
			Purpose:      r.Purpose,
			InputTokens:  r.InputTokens,
			OutputTokens: r.OutputTokens,
			LatencyMs:    r.LatencyMs,
			Success:      r.Success,
			ErrorMessage: r.ErrorMessage,
			RequestBody:  r.RequestBody,
			ResponseBody: r.ResponseBody,
		},
	}
}

type resultRow struct {
	ID        string `db:"id"`
	UserID    string `db:"user_id"`
	Topic     string `db:"topic"`
	Level     string `db:"level"`
	Score     int    `db:"score"`
	Total     int    `db:"total"`
	CreatedAt int64  `db:"created_at"`
}

func newResultRow(r *QuizResult) resultRow {
	return resultRow{
		ID:        r.ID,
		UserID:    r.UserID,
		Topic:     r.Topic,
		Level:     r.Level,
		Score:     r.Score,
		Total:     r.Total,
		CreatedAt: r.CreatedAt.UnixMilli(),
	}
}

func (r resultRow) toResult() QuizResult {
	return QuizResult{
		ID:        r.ID,
		UserID:    r.UserID,
		Topic:     r.Topic,
		Level:     r.Level,
		Score:     r.Score,
		Total:     r.Total,
		CreatedAt: time.UnixMilli(r.CreatedAt).UTC(),
	}
}

type libraryRow struct {
	ID        int64  `db:"id"`
	UserID    string `db:"user_id"`
	Topic     string `db:"topic"`
	Content   string `db:"content"`
	CreatedAt int64  `db:"created_at"`
}

func (r libraryRow) toEntry() LibraryEntry {
	return LibraryEntry{
		ID:        r.ID,
		UserID:    r.UserID,
		Topic:     r.Topic,
		Content:   r.Content,
		CreatedAt: time.UnixMilli(r.CreatedAt).UTC(),
	}
}
