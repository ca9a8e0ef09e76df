package tui

import (
	"context"
	"fmt"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/tobyns/momentum/internal/config"
	"github.com/tobyns/momentum/internal/database/repository"
)

func testConfig() config.Config {
	return config.Config{
		Gesture: config.GestureConfig{
			SafeZone:            100,
			ScrollUpThreshold:   150,
			SwipeThreshold:      50,
			VelocityThreshold:   0.3,
			MaxVerticalMovement: 30,
			ChromeAutoHide:      true,
		},
	}
}

func testModel(t *testing.T, taskCount int) Model {
	t.Helper()
	m := New(context.Background(), testConfig(), Repos{}, Services{}, nil, nil, nil)
	tasks := make([]repository.Task, 0, taskCount)
	for i := 0; i < taskCount; i++ {
		tasks = append(tasks, repository.Task{
			ID:     fmt.Sprintf("t%d", i),
			Title:  fmt.Sprintf("task %d", i),
			Status: repository.StatusOpen,
			Habit:  true, // habits show on the today tab
		})
	}
	m = drive(t, m, tasksLoadedMsg{all: tasks, today: tasks})
	return m
}

func drive(t *testing.T, m Model, msgs ...tea.Msg) Model {
	t.Helper()
	for _, msg := range msgs {
		next, _ := m.Update(msg)
		m = next.(Model)
	}
	return m
}

func wheelDown() tea.MouseMsg {
	return tea.MouseMsg{Action: tea.MouseActionPress, Button: tea.MouseButtonWheelDown}
}

func wheelUp() tea.MouseMsg {
	return tea.MouseMsg{Action: tea.MouseActionPress, Button: tea.MouseButtonWheelUp}
}

func TestWheelScrollTogglesChrome(t *testing.T) {
	m := testModel(t, 60)
	if !m.chrome.Visible() {
		t.Fatalf("chrome should start visible")
	}

	// four notches put the surface at 120 units, past the safe zone
	m = drive(t, m, wheelDown(), wheelDown(), wheelDown(), wheelDown(), frameMsg{})
	if m.chrome.Visible() {
		t.Fatalf("downward scroll past the safe zone should hide the chrome")
	}

	// climbing back into the safe zone reveals it again
	m = drive(t, m, wheelUp(), wheelUp(), wheelUp(), wheelUp(), frameMsg{})
	if !m.chrome.Visible() {
		t.Fatalf("the safe zone should force the chrome back on")
	}
}

func TestWheelEventsCoalesceToOneFrame(t *testing.T) {
	m := testModel(t, 60)
	m = drive(t, m, wheelDown(), wheelDown())
	if !m.armed {
		t.Fatalf("a frame tick should be armed after the first wheel event")
	}
	if m.chrome.Visible() != true {
		t.Fatalf("no evaluation may run before the frame fires")
	}
	m = drive(t, m, frameMsg{})
	if m.armed {
		t.Fatalf("the frame should disarm after firing")
	}
}

func TestDragRightSwitchesToPreviousTab(t *testing.T) {
	m := testModel(t, 5)
	m.switchRoute(RouteTasks)

	m = drive(t, m,
		tea.MouseMsg{X: 10, Y: 5, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft},
		tea.MouseMsg{X: 14, Y: 5, Action: tea.MouseActionMotion},
	)
	next, cmd := m.Update(tea.MouseMsg{X: 18, Y: 5, Action: tea.MouseActionRelease, Button: tea.MouseButtonLeft})
	m = next.(Model)
	if cmd == nil {
		t.Fatalf("a qualifying swipe should produce a navigation command")
	}
	m = drive(t, m, cmd())
	if got := m.activeRoute(); got != RouteToday {
		t.Fatalf("expected today after a rightward drag, got %s", got)
	}
}

func TestDragOnDetailScreenDoesNotNavigate(t *testing.T) {
	m := testModel(t, 5)
	m = drive(t, m, tea.KeyMsg{Type: tea.KeyEnter}) // open detail
	if m.detail == nil {
		t.Fatalf("enter should open the detail screen")
	}

	m = drive(t, m, tea.MouseMsg{X: 10, Y: 5, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	_, cmd := m.Update(tea.MouseMsg{X: 30, Y: 5, Action: tea.MouseActionRelease, Button: tea.MouseButtonLeft})
	if cmd != nil {
		t.Fatalf("the detail route is outside the swipe order and must not navigate")
	}
}

func TestWheelCancelsInFlightDrag(t *testing.T) {
	m := testModel(t, 60)
	m.switchRoute(RouteTasks)

	m = drive(t, m,
		tea.MouseMsg{X: 10, Y: 5, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft},
		wheelDown(),
	)
	_, cmd := m.Update(tea.MouseMsg{X: 30, Y: 5, Action: tea.MouseActionRelease, Button: tea.MouseButtonLeft})
	if cmd != nil {
		t.Fatalf("a scroll during the drag must cancel the gesture")
	}
}

func TestTabKeyCyclesRoutes(t *testing.T) {
	m := testModel(t, 2)
	m = drive(t, m, tea.KeyMsg{Type: tea.KeyTab})
	if got := m.activeRoute(); got != RouteTasks {
		t.Fatalf("tab should move to tasks, got %s", got)
	}
	m = drive(t, m, tea.KeyMsg{Type: tea.KeyTab}, tea.KeyMsg{Type: tea.KeyTab})
	if got := m.activeRoute(); got != RouteStats {
		t.Fatalf("tab must stop at the last route, got %s", got)
	}
}

func TestJumpModeResolvesFuzzyInput(t *testing.T) {
	m := testModel(t, 2)
	m = drive(t, m,
		tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("g")},
		tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("stts")},
		tea.KeyMsg{Type: tea.KeyEnter},
	)
	if got := m.activeRoute(); got != RouteStats {
		t.Fatalf("fuzzy jump should land on stats, got %s", got)
	}
}

func TestSwitchRouteResetsScrollAndChrome(t *testing.T) {
	m := testModel(t, 60)
	m = drive(t, m, wheelDown(), wheelDown(), wheelDown(), wheelDown(), frameMsg{})
	if m.chrome.Visible() {
		t.Fatalf("precondition: chrome hidden")
	}
	m = drive(t, m, TabSwitchMsg{Route: RouteTasks})
	if m.scroll != 0 {
		t.Fatalf("switching tabs should reset the scroll offset")
	}
	if !m.chrome.Visible() {
		t.Fatalf("the new tab starts at the top, so the chrome should be back")
	}
}

func TestSearchModeSetsFilterAndReloads(t *testing.T) {
	m := testModel(t, 3)
	m.switchRoute(RouteTasks)

	m = drive(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("/")})
	if m.mode != modeSearch {
		t.Fatalf("slash should enter search mode on the tasks tab")
	}
	m = drive(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("tax")})
	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = next.(Model)
	if m.search != "tax" {
		t.Fatalf("enter should commit the filter, got %q", m.search)
	}
	if cmd == nil {
		t.Fatalf("committing a filter should reload the lists")
	}
	if m.mode != modeNormal {
		t.Fatalf("enter should leave search mode")
	}
}

func TestNotesEditFromDetailScreen(t *testing.T) {
	m := testModel(t, 2)
	m = drive(t, m, tea.KeyMsg{Type: tea.KeyEnter}) // open detail
	if m.detail == nil {
		t.Fatalf("enter should open the detail screen")
	}

	m = drive(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("e")})
	if m.mode != modeNotes {
		t.Fatalf("e should enter notes mode on the detail screen")
	}
	m = drive(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("water the plants")})
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if cmd == nil {
		t.Fatalf("enter should save the notes")
	}
}
