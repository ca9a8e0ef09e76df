package tui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/tobyns/momentum/internal/database/repository"
)

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.mode != modeNormal {
		return m.handleInputKey(msg)
	}
	scope := m.route.cur
	switch {
	case m.keys.IsAction(msg, ActionQuit, scope):
		m.quitting = true
		m.Close()
		return m, tea.Quit

	case m.keys.IsAction(msg, ActionBack, scope):
		m.closeDetail()

	case m.keys.IsAction(msg, ActionNextTab, scope):
		if r, ok := m.order.Next(m.activeRoute()); ok {
			m.switchRoute(r)
		}

	case m.keys.IsAction(msg, ActionPrevTab, scope):
		if r, ok := m.order.Prev(m.activeRoute()); ok {
			m.switchRoute(r)
		}

	case m.keys.IsAction(msg, ActionJump, scope):
		m.enterInputMode(modeJump, "go to tab: ")

	case m.keys.IsAction(msg, ActionNew, scope):
		m.enterInputMode(modeNewTask, "new task: ")

	case m.keys.IsAction(msg, ActionSearch, scope):
		m.enterInputMode(modeSearch, "search: ")
		m.input.SetValue(m.search)

	case m.keys.IsAction(msg, ActionNotes, scope):
		if m.detail != nil {
			m.enterInputMode(modeNotes, "notes: ")
			if n := m.detail.task.Notes; n != nil {
				m.input.SetValue(*n)
			}
		}

	case m.keys.IsAction(msg, ActionDown, scope):
		m.moveCursor(1)

	case m.keys.IsAction(msg, ActionUp, scope):
		m.moveCursor(-1)

	case m.keys.IsAction(msg, ActionToggle, scope):
		if t, ok := m.taskUnderCursor(); ok {
			return m, m.toggleCmd(t.ID)
		}

	case m.keys.IsAction(msg, ActionArchive, scope):
		if t, ok := m.taskUnderCursor(); ok {
			return m, m.archiveCmd(t.ID)
		}

	case m.keys.IsAction(msg, ActionOpen, scope):
		if t, ok := m.taskUnderCursor(); ok {
			m.openDetail(t)
		}

	case m.keys.IsAction(msg, ActionRecover, scope):
		return m, m.recoverCmd()
	}
	return m, nil
}

func (m *Model) enterInputMode(mode inputMode, prompt string) {
	m.mode = mode
	m.input.Prompt = prompt
	m.input.Reset()
	m.input.Focus()
}

// handleInputKey drives the one-line text input used by jump and new-task
// modes. Esc and enter leave the mode; everything else edits the line.
func (m Model) handleInputKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		m.mode = modeNormal
		m.input.Blur()
		return m, nil

	case tea.KeyEnter:
		input := strings.TrimSpace(m.input.Value())
		mode := m.mode
		m.mode = modeNormal
		m.input.Blur()
		switch mode {
		case modeJump:
			if route, ok := m.order.ResolveApprox(input); ok {
				m.switchRoute(route)
				return m, nil
			}
			return m, statusCmd("No tab matches " + input)
		case modeNewTask:
			if input == "" {
				return m, nil
			}
			return m, m.createCmd(input)
		case modeSearch:
			m.search = input
			if input == "" {
				m.setStatus("Filter cleared")
			} else {
				m.setStatus("Filtering: " + input)
			}
			return m, m.loadTasksCmd()
		case modeNotes:
			if m.detail == nil {
				return m, nil
			}
			return m, m.notesCmd(m.detail.task.ID, input)
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *Model) moveCursor(delta int) {
	route := m.activeRoute()
	n := len(m.visibleTasks())
	if n == 0 {
		return
	}
	c := m.cursor[route] + delta
	if c < 0 {
		c = 0
	}
	if c >= n {
		c = n - 1
	}
	m.cursor[route] = c
}

func (m Model) taskUnderCursor() (repository.Task, bool) {
	tasks := m.visibleTasks()
	c := m.cursor[m.activeRoute()]
	if c < 0 || c >= len(tasks) {
		return repository.Task{}, false
	}
	return tasks[c], true
}
