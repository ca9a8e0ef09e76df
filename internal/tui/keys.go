package tui

import (
	"slices"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

// Key actions.
const (
	ActionQuit    = "quit"
	ActionNextTab = "next-tab"
	ActionPrevTab = "prev-tab"
	ActionJump    = "jump"
	ActionDown    = "down"
	ActionUp      = "up"
	ActionToggle  = "toggle"
	ActionArchive = "archive"
	ActionNew     = "new"
	ActionSearch  = "search"
	ActionNotes   = "notes"
	ActionRecover = "recover"
	ActionOpen    = "open"
	ActionBack    = "back"
)

type KeyBinding struct {
	Keys        []string
	Action      string
	Description string
	Scopes      []string
}

type KeyRegistry struct {
	bindings []KeyBinding
}

func NewKeyRegistry(bindings []KeyBinding) *KeyRegistry {
	return &KeyRegistry{bindings: slices.Clone(bindings)}
}

func (r *KeyRegistry) Register(binding KeyBinding) {
	r.bindings = append(r.bindings, binding)
}

func (r *KeyRegistry) BindingsForScope(scope string) []KeyBinding {
	out := make([]KeyBinding, 0, len(r.bindings))
	for _, b := range r.bindings {
		if scopeMatch(scope, b.Scopes) {
			out = append(out, b)
		}
	}
	return out
}

func (r *KeyRegistry) IsAction(msg tea.KeyMsg, action, scope string) bool {
	pressed := normalizeKey(msg.String())
	for _, b := range r.bindings {
		if b.Action != action || !scopeMatch(scope, b.Scopes) {
			continue
		}
		for _, k := range b.Keys {
			if normalizeKey(k) == pressed {
				return true
			}
		}
	}
	return false
}

func normalizeKey(k string) string {
	return strings.ToLower(strings.TrimSpace(k))
}

func scopeMatch(scope string, scopes []string) bool {
	if len(scopes) == 0 {
		return true
	}
	for _, s := range scopes {
		if s == "*" || s == scope {
			return true
		}
	}
	return false
}

// DefaultBindings returns the stock key map. List scopes are the two task
// tabs; tab switching applies everywhere except the detail screen.
func DefaultBindings() []KeyBinding {
	tabScopes := []string{RouteToday, RouteTasks, RouteStats}
	listScopes := []string{RouteToday, RouteTasks}
	return []KeyBinding{
		{Keys: []string{"q", "ctrl+c"}, Action: ActionQuit, Description: "quit"},
		{Keys: []string{"tab", "right"}, Action: ActionNextTab, Description: "next tab", Scopes: tabScopes},
		{Keys: []string{"shift+tab", "left"}, Action: ActionPrevTab, Description: "prev tab", Scopes: tabScopes},
		{Keys: []string{"g"}, Action: ActionJump, Description: "go to tab", Scopes: tabScopes},
		{Keys: []string{"j", "down"}, Action: ActionDown, Description: "down", Scopes: listScopes},
		{Keys: []string{"k", "up"}, Action: ActionUp, Description: "up", Scopes: listScopes},
		{Keys: []string{" "}, Action: ActionToggle, Description: "toggle done", Scopes: listScopes},
		{Keys: []string{"a"}, Action: ActionArchive, Description: "archive", Scopes: []string{RouteTasks}},
		{Keys: []string{"n"}, Action: ActionNew, Description: "new task", Scopes: listScopes},
		{Keys: []string{"/"}, Action: ActionSearch, Description: "search", Scopes: []string{RouteTasks}},
		{Keys: []string{"e"}, Action: ActionNotes, Description: "edit notes", Scopes: []string{RouteTaskDetail}},
		{Keys: []string{"r"}, Action: ActionRecover, Description: "recover missing", Scopes: []string{RouteStats}},
		{Keys: []string{"enter"}, Action: ActionOpen, Description: "details", Scopes: listScopes},
		{Keys: []string{"esc"}, Action: ActionBack, Description: "back", Scopes: []string{RouteTaskDetail}},
	}
}
