package repository

import (
	"context"
	"database/sql"
)

// TraceRepo handles recorded interaction events.
type TraceRepo struct {
	db *sql.DB
}

func NewTraceRepo(db *sql.DB) *TraceRepo { return &TraceRepo{db: db} }

func (r *TraceRepo) Insert(ctx context.Context, ev TraceEvent) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO trace_events(id, kind, detail, at) VALUES(?, ?, ?, ?)`,
		ev.ID, ev.Kind, ev.Detail, ev.At)
	return err
}

// Recent returns up to limit events, newest first.
func (r *TraceRepo) Recent(ctx context.Context, limit int) ([]TraceEvent, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, kind, detail, at FROM trace_events ORDER BY at DESC LIMIT ?`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []TraceEvent
	for rows.Next() {
		var ev TraceEvent
		if err := rows.Scan(&ev.ID, &ev.Kind, &ev.Detail, &ev.At); err != nil {
			return nil, err
		}
		out = append(out, ev)
	}
	return out, rows.Err()
}

func (r *TraceRepo) Count(ctx context.Context) (int, error) {
	var n int
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM trace_events`).Scan(&n)
	return n, err
}

// Prune keeps the newest keep events and deletes the rest.
func (r *TraceRepo) Prune(ctx context.Context, keep int) error {
	_, err := r.db.ExecContext(ctx, `
	DELETE FROM trace_events WHERE id NOT IN (
	 SELECT id FROM trace_events ORDER BY at DESC LIMIT ?
	)`, keep)
	return err
}
