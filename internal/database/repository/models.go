package repository

import "time"

// Task statuses. Missing marks tasks orphaned by an interrupted import or
// sync; the recovery service flips them back to open.
const (
	StatusOpen     = "open"
	StatusDone     = "done"
	StatusArchived = "archived"
	StatusMissing  = "missing"
)

// Task represents a task row. Habits are tasks that recur daily and carry a
// completion streak.
type Task struct {
	ID        string
	Title     string
	Notes     *string
	Status    string
	Habit     bool
	Streak    int
	DueDate   *time.Time
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TraceEvent represents one recorded interaction decision.
type TraceEvent struct {
	ID     string
	Kind   string // "swipe" or "scroll"
	Detail string
	At     time.Time
}
