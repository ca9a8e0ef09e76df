package tui

import (
	"fmt"
	"strings"

	"github.com/tobyns/momentum/internal/database/repository"
)

// detailScreen shows a single task on top of the tab it was opened from.
// Its route sits outside the swipe order, so gestures on it never navigate.
type detailScreen struct {
	task repository.Task
}

func (s *detailScreen) render() string {
	t := s.task
	var b strings.Builder
	b.WriteString(titleStyle.Render(t.Title) + "\n\n")
	b.WriteString(fmt.Sprintf("  status  %s\n", t.Status))
	if t.Habit {
		b.WriteString(fmt.Sprintf("  streak  %d\n", t.Streak))
	}
	if t.DueDate != nil {
		b.WriteString(fmt.Sprintf("  due     %s\n", t.DueDate.Format("Mon 02 Jan 2006")))
	}
	if t.Notes != nil && *t.Notes != "" {
		b.WriteString("\n" + mutedStyle.Render(*t.Notes) + "\n")
	}
	b.WriteString("\n" + mutedStyle.Render(fmt.Sprintf("created %s", t.CreatedAt.Format("02 Jan 2006"))))
	return b.String()
}
