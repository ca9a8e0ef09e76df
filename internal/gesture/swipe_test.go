package gesture

import (
	"testing"
	"time"

	"github.com/tobyns/momentum/internal/nav"
)

var t0 = time.Date(2026, 3, 14, 9, 0, 0, 0, time.UTC)

func testNavigator(current string) (*Navigator, *[]string) {
	var calls []string
	n := &Navigator{
		Detector: NewSwipeDetector(SwipeConfig{}),
		Order:    nav.NewOrder("today", "tasks", "stats"),
		Current:  func() string { return current },
		Navigate: func(route string) { calls = append(calls, route) },
	}
	return n, &calls
}

func TestRightSwipeNavigatesToPrevious(t *testing.T) {
	n, calls := testNavigator("tasks")
	n.Begin(0, 0, t0)
	n.Move(40, 2)
	dest, ok := n.End(80, 5, t0.Add(100*time.Millisecond))
	if !ok || dest != "today" {
		t.Fatalf("expected navigation to today, got %q ok=%v", dest, ok)
	}
	if len(*calls) != 1 || (*calls)[0] != "today" {
		t.Fatalf("exactly one navigation call expected, got %v", *calls)
	}
}

func TestFastShortSwipeQualifiesByVelocity(t *testing.T) {
	// 20 units in 40ms is under the travel threshold but 0.5 units/ms.
	n, _ := testNavigator("today")
	n.Begin(100, 10, t0)
	dest, ok := n.End(80, 15, t0.Add(40*time.Millisecond))
	if !ok || dest != "tasks" {
		t.Fatalf("velocity alone should qualify, got %q ok=%v", dest, ok)
	}
}

func TestSlowShortSwipeRejected(t *testing.T) {
	n, _ := testNavigator("today")
	n.Begin(100, 10, t0)
	if _, ok := n.End(80, 15, t0.Add(400*time.Millisecond)); ok {
		t.Fatalf("20 units at 0.05 units/ms must not navigate")
	}
}

func TestVerticalDriftRejectsGesture(t *testing.T) {
	n, _ := testNavigator("tasks")
	n.Begin(0, 0, t0)
	if _, ok := n.End(60, 40, t0.Add(100*time.Millisecond)); ok {
		t.Fatalf("vertical drift over the limit must not navigate")
	}
}

func TestDetailRouteIsNotSwipeable(t *testing.T) {
	n, calls := testNavigator("task-detail")
	n.Begin(0, 0, t0)
	if _, ok := n.End(200, 0, t0.Add(100*time.Millisecond)); ok {
		t.Fatalf("routes outside the order must not navigate")
	}
	if len(*calls) != 0 {
		t.Fatalf("no navigation call expected, got %v", *calls)
	}
}

func TestSwipePastEdgeIsNoop(t *testing.T) {
	n, calls := testNavigator("stats")
	n.Begin(200, 0, t0)
	if _, ok := n.End(100, 0, t0.Add(100*time.Millisecond)); ok {
		t.Fatalf("left swipe at the last route must be a no-op")
	}
	n2, _ := testNavigator("today")
	n2.Begin(0, 0, t0)
	if _, ok := n2.End(100, 0, t0.Add(100*time.Millisecond)); ok {
		t.Fatalf("right swipe at the first route must be a no-op")
	}
	if len(*calls) != 0 {
		t.Fatalf("no navigation call expected, got %v", *calls)
	}
}

func TestVerticalMoveCancelsGesture(t *testing.T) {
	d := NewSwipeDetector(SwipeConfig{})
	d.Begin(0, 0, t0)
	d.Move(2, 30)
	if got := d.End(80, 5, t0.Add(100*time.Millisecond)); got != IntentNone {
		t.Fatalf("a vertical move must cancel the gesture, got %v", got)
	}
}

func TestMoveSuppressionOnlyInQualifyingWindow(t *testing.T) {
	d := NewSwipeDetector(SwipeConfig{})
	d.Begin(0, 0, t0)
	if d.Move(20, 2) {
		t.Fatalf("20 units of travel should not suppress default handling yet")
	}
	if !d.Move(40, 5) {
		t.Fatalf("a clearly horizontal move past the drift limit should suppress")
	}
	if d.Move(40, 35) {
		t.Fatalf("vertical drift at the limit must never suppress")
	}
}

func TestScrollInterruptCancelsAndSettles(t *testing.T) {
	d := NewSwipeDetector(SwipeConfig{})
	d.Begin(0, 0, t0)
	d.Move(40, 2)
	d.ScrollInterrupt(t0.Add(10 * time.Millisecond))
	if got := d.End(80, 2, t0.Add(100*time.Millisecond)); got != IntentNone {
		t.Fatalf("scroll during a gesture must cancel it, got %v", got)
	}

	d.Begin(0, 0, t0.Add(50*time.Millisecond)) // inside the settle window
	if got := d.End(80, 2, t0.Add(150*time.Millisecond)); got != IntentNone {
		t.Fatalf("detector must stay disarmed during the settle delay, got %v", got)
	}

	d.Begin(0, 0, t0.Add(300*time.Millisecond))
	if got := d.End(80, 2, t0.Add(400*time.Millisecond)); got != IntentPrev {
		t.Fatalf("detector should re-arm after the settle delay, got %v", got)
	}
}

func TestEndWithoutBeginIsNoGesture(t *testing.T) {
	d := NewSwipeDetector(SwipeConfig{})
	if got := d.End(200, 0, t0); got != IntentNone {
		t.Fatalf("end without begin must resolve to nothing, got %v", got)
	}
}

func TestNewBeginDiscardsInFlightGesture(t *testing.T) {
	d := NewSwipeDetector(SwipeConfig{})
	d.Begin(0, 0, t0)
	d.Move(40, 2)
	d.Begin(500, 0, t0.Add(time.Second))
	if got := d.End(520, 0, t0.Add(1100*time.Millisecond)); got != IntentNone {
		t.Fatalf("the restarted gesture only travelled 20 units slowly, got %v", got)
	}
}
