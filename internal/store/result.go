package store

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

type resultRepo struct {
	db *sqlx.DB
}

func (r *resultRepo) SaveResult(ctx context.Context, res *QuizResult) error {
	if res.ID == "" {
		res.ID = uuid.NewString()
	}
	if res.CreatedAt.IsZero() {
		res.CreatedAt = time.Now().UTC()
	}

	_, err := r.db.NamedExecContext(ctx,
		`INSERT INTO quiz_results (id, user_id, topic, level, score, total, created_at)
		VALUES (:id, :user_id, :topic, :level, :score, :total, :created_at)`,
		newResultRow(res))
	if err != nil {
		return fmt.Errorf("save quiz result: %w", err)
	}
	return nil
}

func (r *resultRepo) ListResults(ctx context.Context, userID string) ([]QuizResult, error) {
	query := `SELECT id, user_id, topic, level, score, total, created_at FROM quiz_results`
	var args []any
	if userID != "" {
		query += ` WHERE user_id = ?`
		args = append(args, userID)
	}
	query += ` ORDER BY created_at, id`

	var rows []resultRow
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("query quiz results: %w", err)
	}
	out := make([]QuizResult, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toResult())
	}
	return out, nil
}
