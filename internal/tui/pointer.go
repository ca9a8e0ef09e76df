package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/tobyns/momentum/internal/gesture"
)

// handleMouse is the production adapter between terminal mouse reporting and
// the gesture state machines. Wheel events scroll the active surface and
// feed the visibility tracker; a left-button drag feeds the swipe navigator.
func (m Model) handleMouse(ev tea.MouseMsg) (tea.Model, tea.Cmd) {
	now := time.Now()

	switch {
	case ev.Button == tea.MouseButtonWheelDown || ev.Button == tea.MouseButtonWheelUp:
		// a scrolling surface cancels any in-flight swipe
		m.dragging = false
		m.swipe.ScrollInterrupt(now)

		if ev.Button == tea.MouseButtonWheelDown {
			m.scroll += wheelNotch
		} else {
			m.scroll -= wheelNotch
		}
		if m.scroll < 0 {
			m.scroll = 0
		}
		if max := m.scrollExtent(); m.scroll > max {
			m.scroll = max
		}
		m.chrome.Observe(gesture.ScrollSample{Pos: m.scroll, At: now}, gesture.Surface{Root: true})
		if m.frames.Pending() && !m.armed {
			m.armed = true
			return m, frameTick()
		}

	case ev.Action == tea.MouseActionPress && ev.Button == tea.MouseButtonLeft:
		m.dragging = true
		m.swipe.Begin(float64(ev.X)*cellUnits, float64(ev.Y)*rowUnits, now)

	case ev.Action == tea.MouseActionMotion:
		if m.dragging {
			m.swipe.Move(float64(ev.X)*cellUnits, float64(ev.Y)*rowUnits)
		}

	case ev.Action == tea.MouseActionRelease:
		if !m.dragging {
			break
		}
		m.dragging = false
		if dest, ok := m.swipe.End(float64(ev.X)*cellUnits, float64(ev.Y)*rowUnits, now); ok {
			if m.rec != nil {
				m.rec.Swipe(dest, true)
			}
			return m, func() tea.Msg { return TabSwitchMsg{Route: dest} }
		}
	}
	return m, nil
}

// scrollExtent is how far the active surface can scroll, in units. A little
// slack beyond the last row leaves room to scroll back up far enough to
// reveal the chrome again.
func (m Model) scrollExtent() float64 {
	extent := float64(len(m.visibleTasks()))*rowUnits - float64(m.contentHeight())*rowUnits
	if extent < 0 {
		return 0
	}
	return extent + m.cfg.Gesture.ScrollUpThreshold
}

func frameTick() tea.Cmd {
	return tea.Tick(frameInterval, func(time.Time) tea.Msg { return frameMsg{} })
}
