package repository

import (
	"context"
	"database/sql"
	"strings"
	"time"
)

// TaskFilters defines list filters.
type TaskFilters struct {
	Status     string
	HabitsOnly bool
	DueOn      time.Time // zero time = no due-date filter
	Search     string
}

// TaskRepo handles tasks.
type TaskRepo struct {
	db *sql.DB
}

func NewTaskRepo(db *sql.DB) *TaskRepo { return &TaskRepo{db: db} }

func (r *TaskRepo) Insert(ctx context.Context, t Task) error {
	_, err := r.db.ExecContext(ctx, `
	INSERT INTO tasks(id, title, notes, status, habit, streak, due_date, created_at, updated_at)
	VALUES(?, ?, ?, ?, ?, ?, ?, CURRENT_TIMESTAMP, CURRENT_TIMESTAMP);
	`,
		t.ID, t.Title, t.Notes, t.Status, t.Habit, t.Streak, t.DueDate)
	return err
}

func (r *TaskRepo) Get(ctx context.Context, id string) (Task, error) {
	row := r.db.QueryRowContext(ctx, `
	SELECT id, title, notes, status, habit, streak, due_date, created_at, updated_at
	FROM tasks WHERE id = ?`, id)
	return scanTask(row)
}

func (r *TaskRepo) UpdateStatus(ctx context.Context, id string, status string) error {
	_, err := r.db.ExecContext(ctx, `UPDATE tasks SET status = ?, updated_at=CURRENT_TIMESTAMP WHERE id = ?`, status, id)
	return err
}

func (r *TaskRepo) UpdateStreak(ctx context.Context, id string, streak int) error {
	_, err := r.db.ExecContext(ctx, `UPDATE tasks SET streak = ?, updated_at=CURRENT_TIMESTAMP WHERE id = ?`, streak, id)
	return err
}

func (r *TaskRepo) UpdateNotes(ctx context.Context, id string, notes *string) error {
	_, err := r.db.ExecContext(ctx, `UPDATE tasks SET notes = ?, updated_at=CURRENT_TIMESTAMP WHERE id = ?`, notes, id)
	return err
}

func (r *TaskRepo) List(ctx context.Context, f TaskFilters) ([]Task, error) {
	var where []string
	var args []interface{}

	if f.Status != "" {
		where = append(where, "status = ?")
		args = append(args, f.Status)
	}
	if f.HabitsOnly {
		where = append(where, "habit = 1")
	}
	if !f.DueOn.IsZero() {
		start := time.Date(f.DueOn.Year(), f.DueOn.Month(), f.DueOn.Day(), 0, 0, 0, 0, time.UTC)
		end := start.AddDate(0, 0, 1)
		where = append(where, "due_date >= ? AND due_date < ?")
		args = append(args, start, end)
	}
	if f.Search != "" {
		where = append(where, "title LIKE ?")
		args = append(args, "%"+f.Search+"%")
	}

	query := "SELECT id, title, notes, status, habit, streak, due_date, created_at, updated_at FROM tasks"
	if len(where) > 0 {
		query += " WHERE " + strings.Join(where, " AND ")
	}
	query += " ORDER BY due_date IS NULL, due_date ASC, created_at ASC"

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Task
	for rows.Next() {
		t, err := scanTask(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// CountByStatus returns the number of tasks per status.
func (r *TaskRepo) CountByStatus(ctx context.Context) (map[string]int, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT status, COUNT(*) FROM tasks GROUP BY status`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make(map[string]int)
	for rows.Next() {
		var status string
		var n int
		if err := rows.Scan(&status, &n); err != nil {
			return nil, err
		}
		out[status] = n
	}
	return out, rows.Err()
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanTask(row rowScanner) (Task, error) {
	var t Task
	err := row.Scan(&t.ID, &t.Title, &t.Notes, &t.Status, &t.Habit, &t.Streak, &t.DueDate, &t.CreatedAt, &t.UpdatedAt)
	return t, err
}
