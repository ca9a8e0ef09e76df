package tui

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/tobyns/momentum/internal/database/repository"
)

func (m Model) loadTasksCmd() tea.Cmd {
	ctx, repo, search := m.ctx, m.repos.Tasks, m.search
	return func() tea.Msg {
		return fetchTasks(ctx, repo, search)
	}
}

// fetchTasks loads both tab lists. Filtering happens in SQL: the all list is
// open plus done tasks (narrowed by the search filter when one is set), the
// today list is open habits plus whatever is due today.
func fetchTasks(ctx context.Context, repo *repository.TaskRepo, search string) tasksLoadedMsg {
	open, err := repo.List(ctx, repository.TaskFilters{Status: repository.StatusOpen, Search: search})
	if err != nil {
		return tasksLoadedMsg{err: err}
	}
	done, err := repo.List(ctx, repository.TaskFilters{Status: repository.StatusDone, Search: search})
	if err != nil {
		return tasksLoadedMsg{err: err}
	}
	all := append(open, done...)

	habits, err := repo.List(ctx, repository.TaskFilters{Status: repository.StatusOpen, HabitsOnly: true})
	if err != nil {
		return tasksLoadedMsg{err: err}
	}
	due, err := repo.List(ctx, repository.TaskFilters{Status: repository.StatusOpen, DueOn: time.Now().UTC()})
	if err != nil {
		return tasksLoadedMsg{err: err}
	}
	today := habits
	for _, t := range due {
		if !t.Habit {
			today = append(today, t)
		}
	}
	return tasksLoadedMsg{all: all, today: today}
}

func (m Model) loadCountsCmd() tea.Cmd {
	ctx, tasks, traces := m.ctx, m.repos.Tasks, m.repos.Traces
	return func() tea.Msg {
		counts, err := tasks.CountByStatus(ctx)
		if err != nil {
			return countsLoadedMsg{err: err}
		}
		var traceN int
		if traces != nil {
			if traceN, err = traces.Count(ctx); err != nil {
				return countsLoadedMsg{err: err}
			}
		}
		return countsLoadedMsg{counts: counts, traceN: traceN}
	}
}

func (m Model) toggleCmd(id string) tea.Cmd {
	ctx, svc := m.ctx, m.svc.Tasks
	return func() tea.Msg {
		status, err := svc.Toggle(ctx, id)
		if err != nil {
			return taskMutatedMsg{err: err}
		}
		return taskMutatedMsg{status: "Marked " + status}
	}
}

func (m Model) archiveCmd(id string) tea.Cmd {
	ctx, svc := m.ctx, m.svc.Tasks
	return func() tea.Msg {
		if err := svc.Archive(ctx, id); err != nil {
			return taskMutatedMsg{err: err}
		}
		return taskMutatedMsg{status: "Archived"}
	}
}

func (m Model) createCmd(title string) tea.Cmd {
	ctx, svc := m.ctx, m.svc.Tasks
	return func() tea.Msg {
		t, err := svc.Create(ctx, title, nil, nil, false)
		if err != nil {
			return taskMutatedMsg{err: err}
		}
		return taskMutatedMsg{status: "Added " + t.Title}
	}
}

func (m Model) notesCmd(id, notes string) tea.Cmd {
	ctx, svc := m.ctx, m.svc.Tasks
	return func() tea.Msg {
		if err := svc.SetNotes(ctx, id, notes); err != nil {
			return taskMutatedMsg{err: err}
		}
		return taskMutatedMsg{status: "Notes saved"}
	}
}

func (m Model) recoverCmd() tea.Cmd {
	ctx, svc := m.ctx, m.svc.Recover
	return func() tea.Msg {
		ids, err := svc.Run(ctx)
		return recoveredMsg{ids: ids, err: err}
	}
}
