package gesture

import (
	"time"

	"github.com/tobyns/momentum/internal/nav"
)

// NavigateFunc receives the resolved destination route. The router behind it
// is the host application's concern.
type NavigateFunc func(route string)

// Navigator binds a SwipeDetector to a fixed tab order. It emits at most one
// navigation per qualifying gesture. Gestures starting on a route outside
// the order (a detail screen) resolve to nothing, as do swipes past either
// edge.
type Navigator struct {
	Detector *SwipeDetector
	Order    nav.Order
	Current  func() string // route the gesture started on
	Navigate NavigateFunc  // optional; End also returns the destination
}

func (n *Navigator) Begin(x, y float64, at time.Time) {
	n.Detector.Begin(x, y, at)
}

func (n *Navigator) Move(x, y float64) bool {
	return n.Detector.Move(x, y)
}

func (n *Navigator) ScrollInterrupt(at time.Time) {
	n.Detector.ScrollInterrupt(at)
}

// End completes the gesture. When it qualifies, the destination route is
// resolved against the order, Navigate is called once, and the destination
// is returned. ok is false when nothing happened.
func (n *Navigator) End(x, y float64, at time.Time) (dest string, ok bool) {
	intent := n.Detector.End(x, y, at)
	if intent == IntentNone || n.Current == nil {
		return "", false
	}
	switch intent {
	case IntentPrev:
		dest, ok = n.Order.Prev(n.Current())
	case IntentNext:
		dest, ok = n.Order.Next(n.Current())
	}
	if !ok {
		return "", false
	}
	if n.Navigate != nil {
		n.Navigate(dest)
	}
	return dest, true
}
