package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/tobyns/momentum/internal/database/repository"
)

// TaskService implements task lifecycle operations on top of the repo.
type TaskService struct {
	Tasks *repository.TaskRepo
}

// Create inserts a new open task. Habits start with a zero streak.
func (s *TaskService) Create(ctx context.Context, title string, notes *string, due *time.Time, habit bool) (repository.Task, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return repository.Task{}, fmt.Errorf("task title is empty")
	}
	t := repository.Task{
		ID:      uuid.NewString(),
		Title:   title,
		Notes:   notes,
		Status:  repository.StatusOpen,
		Habit:   habit,
		DueDate: due,
	}
	if err := s.Tasks.Insert(ctx, t); err != nil {
		return repository.Task{}, fmt.Errorf("insert task: %w", err)
	}
	return t, nil
}

// Toggle flips a task between open and done and returns the new status.
// Completing a habit bumps its streak; reopening takes the bump back.
// Archived and missing tasks are left alone.
func (s *TaskService) Toggle(ctx context.Context, id string) (string, error) {
	t, err := s.Tasks.Get(ctx, id)
	if err != nil {
		return "", fmt.Errorf("load task: %w", err)
	}
	var next string
	switch t.Status {
	case repository.StatusOpen:
		next = repository.StatusDone
		if t.Habit {
			if err := s.Tasks.UpdateStreak(ctx, id, t.Streak+1); err != nil {
				return "", fmt.Errorf("bump streak: %w", err)
			}
		}
	case repository.StatusDone:
		next = repository.StatusOpen
		if t.Habit && t.Streak > 0 {
			if err := s.Tasks.UpdateStreak(ctx, id, t.Streak-1); err != nil {
				return "", fmt.Errorf("unwind streak: %w", err)
			}
		}
	default:
		return t.Status, nil
	}
	if err := s.Tasks.UpdateStatus(ctx, id, next); err != nil {
		return "", fmt.Errorf("update status: %w", err)
	}
	return next, nil
}

// SetNotes replaces a task's notes. An empty string clears them.
func (s *TaskService) SetNotes(ctx context.Context, id, notes string) error {
	var p *string
	if trimmed := strings.TrimSpace(notes); trimmed != "" {
		p = &trimmed
	}
	if err := s.Tasks.UpdateNotes(ctx, id, p); err != nil {
		return fmt.Errorf("update notes: %w", err)
	}
	return nil
}

// Archive hides a task from every list without deleting it.
func (s *TaskService) Archive(ctx context.Context, id string) error {
	if err := s.Tasks.UpdateStatus(ctx, id, repository.StatusArchived); err != nil {
		return fmt.Errorf("archive task: %w", err)
	}
	return nil
}
