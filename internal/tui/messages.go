package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/tobyns/momentum/internal/database/repository"
)

// frameMsg drives one coalesced scroll evaluation.
type frameMsg struct{}

// TabSwitchMsg asks the app to activate a tab route.
type TabSwitchMsg struct {
	Route string
}

type tasksLoadedMsg struct {
	all   []repository.Task
	today []repository.Task
	err   error
}

type countsLoadedMsg struct {
	counts map[string]int
	traceN int
	err    error
}

type taskMutatedMsg struct {
	status string
	err    error
}

type recoveredMsg struct {
	ids []string
	err error
}

type statusMsg struct {
	text  string
	isErr bool
}

func statusCmd(text string) tea.Cmd {
	return func() tea.Msg { return statusMsg{text: text} }
}
