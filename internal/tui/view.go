package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/tobyns/momentum/internal/database/repository"
)

var tabTitles = map[string]string{
	RouteToday: "Today",
	RouteTasks: "Tasks",
	RouteStats: "Stats",
}

func (m Model) View() string {
	if m.quitting {
		return ""
	}
	chrome := m.chrome.Visible()

	var b strings.Builder
	if chrome {
		b.WriteString(m.renderTabBar())
		b.WriteString("\n")
	}
	b.WriteString(clipHeight(m.renderContent(), m.contentHeight()))
	if chrome {
		b.WriteString("\n")
		b.WriteString(m.renderFooter())
		b.WriteString("\n")
		b.WriteString(m.renderStatusBar())
	}
	return b.String()
}

// contentHeight is the rows left for the active view once the chrome has
// taken its share.
func (m Model) contentHeight() int {
	h := m.height
	if m.chrome.Visible() {
		h -= 3 // tab bar, footer, status bar
	}
	if h < 1 {
		h = 1
	}
	return h
}

func (m Model) renderTabBar() string {
	parts := make([]string, 0, m.order.Len())
	for i, route := range m.order.Routes() {
		style := tabInactiveStyle
		if i == m.active && m.detail == nil {
			style = tabActiveStyle
		}
		parts = append(parts, style.Render(tabTitles[route]))
	}
	line := strings.Join(parts, " ")
	if m.detail != nil {
		line += "  " + titleStyle.Render("» "+m.detail.task.Title)
	}
	return renderBar(lipgloss.NewStyle().Background(colorBg), max(1, m.width), line)
}

func (m Model) renderContent() string {
	if m.mode != modeNormal {
		return m.renderInput()
	}
	if m.detail != nil {
		return m.detail.render()
	}
	switch m.activeRoute() {
	case RouteStats:
		return m.renderStats()
	default:
		return m.renderTaskList()
	}
}

func (m Model) renderInput() string {
	return inputStyle.Render(m.input.View())
}

func (m Model) renderTaskList() string {
	tasks := m.visibleTasks()
	if len(tasks) == 0 {
		return mutedStyle.Render("Nothing here. Press n to add a task.")
	}
	route := m.activeRoute()
	cursor := m.cursor[route]
	offset := int(m.scroll / rowUnits)
	if offset > len(tasks)-1 {
		offset = len(tasks) - 1
	}

	var lines []string
	for i := offset; i < len(tasks); i++ {
		lines = append(lines, m.renderTaskRow(tasks[i], i == cursor))
	}
	return strings.Join(lines, "\n")
}

func (m Model) renderTaskRow(t repository.Task, selected bool) string {
	prefix := "  "
	if selected {
		prefix = cursorStyle.Render("> ")
	}
	box := "[ ]"
	style := titleStyle
	if t.Status == repository.StatusDone {
		box = "[x]"
		style = doneStyle
	}
	line := prefix + box + " " + style.Render(t.Title)
	if t.Habit {
		line += " " + mutedStyle.Render(fmt.Sprintf("(streak %d)", t.Streak))
	}
	if t.DueDate != nil {
		line += " " + mutedStyle.Render("due "+t.DueDate.Format("02 Jan"))
	}
	return line
}

func (m Model) renderStats() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Tasks") + "\n")
	for _, status := range []string{repository.StatusOpen, repository.StatusDone, repository.StatusArchived, repository.StatusMissing} {
		b.WriteString(fmt.Sprintf("  %-9s %d\n", status, m.counts[status]))
	}

	var best repository.Task
	for _, t := range m.all {
		if t.Habit && t.Streak > best.Streak {
			best = t
		}
	}
	if best.ID != "" {
		b.WriteString("\n" + titleStyle.Render("Best streak") + "\n")
		b.WriteString(fmt.Sprintf("  %s: %d days\n", best.Title, best.Streak))
	}

	if m.cfg.Trace.Enabled {
		b.WriteString("\n" + titleStyle.Render("Interaction trace") + "\n")
		b.WriteString(fmt.Sprintf("  %d events recorded\n", m.traceN))
		if m.stats != nil {
			sum := m.stats.Summary()
			b.WriteString(fmt.Sprintf("  writes: %d, avg %s, max %s\n", sum.Count, sum.Average, sum.Max))
		}
	}
	b.WriteString("\n" + mutedStyle.Render("Press r to recover missing tasks."))
	return b.String()
}

func (m Model) renderFooter() string {
	bindings := m.keys.BindingsForScope(m.route.cur)
	parts := make([]string, 0, len(bindings))
	for _, b := range bindings {
		if len(b.Keys) == 0 {
			continue
		}
		key := b.Keys[0]
		if key == " " {
			key = "space"
		}
		parts = append(parts, footerKeyStyle.Render(key)+" "+footerStyle.Render(b.Description))
	}
	return renderBar(footerStyle, max(1, m.width), strings.Join(parts, "  "))
}

func (m Model) renderStatusBar() string {
	msg := strings.TrimSpace(m.status)
	if msg == "" {
		msg = "Ready"
	}
	style := statusBarStyle
	if m.statusErr {
		style = statusErrStyle
	}
	return renderBar(style, max(1, m.width), msg)
}

func renderBar(style lipgloss.Style, width int, text string) string {
	line := strings.ReplaceAll(text, "\n", " ")
	if w := lipgloss.Width(line); w < width {
		line += strings.Repeat(" ", width-w)
	}
	return style.Width(width).MaxWidth(width).Render(line)
}

func clipHeight(s string, height int) string {
	if height <= 0 {
		return ""
	}
	lines := strings.Split(s, "\n")
	if len(lines) > height {
		lines = lines[:height]
	}
	return strings.Join(lines, "\n")
}

func pluralf(format string, n int) string {
	s := fmt.Sprintf(format, n)
	if n != 1 {
		s += "s"
	}
	return s
}
