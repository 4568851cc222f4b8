package store

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
)

type libraryRepo struct {
	db *sqlx.DB
}

func (r *libraryRepo) Add(ctx context.Context, e *LibraryEntry) error {
	if e.CreatedAt.IsZero() {
		e.CreatedAt = time.Now().UTC()
	}
	res, err := r.db.NamedExecContext(ctx,
		`INSERT INTO library_entries (user_id, topic, content, created_at)
		VALUES (:user_id, :topic, :content, :created_at)`,
		libraryRow{
			UserID:    e.UserID,
			Topic:     e.Topic,
			Content:   e.Content,
			CreatedAt: e.CreatedAt.UnixMilli(),
		})
	if err != nil {
		return fmt.Errorf("save library entry: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("library entry id: %w", err)
	}
	e.ID = id
	return nil
}

func (r *libraryRepo) List(ctx context.Context, userID string) ([]LibraryEntry, error) {
	var rows []libraryRow
	err := r.db.SelectContext(ctx, &rows,
		`SELECT id, user_id, topic, content, created_at FROM library_entries
		WHERE user_id = ? ORDER BY id`, userID)
	if err != nil {
		return nil, fmt.Errorf("query library: %w", err)
	}
	out := make([]LibraryEntry, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toEntry())
	}
	return out, nil
}

func (r *libraryRepo) Remove(ctx context.Context, userID string, id int64) error {
	res, err := r.db.ExecContext(ctx,
		`DELETE FROM library_entries WHERE id = ? AND user_id = ?`, id, userID)
	if err != nil {
		return fmt.Errorf("delete library entry: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete library entry: %w", err)
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}
