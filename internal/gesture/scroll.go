package gesture

import (
	"math"
	"sync"
	"time"
)

// Direction of travel along the scroll axis.
type Direction int

const (
	DirUp Direction = iota
	DirDown
)

// Defaults for ScrollConfig, in scroll units.
const (
	DefaultSafeZone          = 100
	DefaultScrollUpThreshold = 150
)

// minSurfaceFraction filters scroll sources too small to be the main surface
// (dropdowns, inline text areas): anything under half the viewport height.
const minSurfaceFraction = 0.5

// ScrollSample is a single observation of a scroll surface: the offset from
// the top and the instant it was taken.
type ScrollSample struct {
	Pos float64
	At  time.Time
}

// Surface describes the container a scroll observation came from.
type Surface struct {
	Height   float64 // visible height of the container
	Viewport float64 // height of the hosting viewport
	Root     bool    // the container is the viewport itself
}

// ScrollConfig tunes the visibility tracker. Zero numeric fields adopt the
// defaults; the zero value of Disabled keeps the tracker on.
type ScrollConfig struct {
	SafeZone          float64 // chrome is always visible above this offset
	ScrollUpThreshold float64 // upward travel past the pivot required to reveal
	Disabled          bool
}

func (c ScrollConfig) withDefaults() ScrollConfig {
	if c.SafeZone == 0 {
		c.SafeZone = DefaultSafeZone
	}
	if c.ScrollUpThreshold == 0 {
		c.ScrollUpThreshold = DefaultScrollUpThreshold
	}
	return c
}

// FrameScheduler coalesces evaluations onto display frames. Schedule arranges
// for fn to run at the next frame and returns a cancel func. The tracker
// keeps at most one callback scheduled; observations arriving in between
// replace the captured input, they never queue a second evaluation.
type FrameScheduler interface {
	Schedule(fn func()) (cancel func())
}

// Immediate runs scheduled work synchronously. Useful in tests and anywhere
// the event source already delivers at frame rate.
type Immediate struct{}

func (Immediate) Schedule(fn func()) func() {
	fn()
	return func() {}
}

// Manual holds scheduled work until Fire is called. The TUI adapter uses it
// to map tracker frames onto bubbletea ticks; tests use it to drive frames
// by hand.
type Manual struct {
	fn func()
}

func (m *Manual) Schedule(fn func()) func() {
	m.fn = fn
	return func() { m.fn = nil }
}

// Pending reports whether a frame callback is waiting.
func (m *Manual) Pending() bool { return m.fn != nil }

// Fire runs the pending callback, if any.
func (m *Manual) Fire() {
	if m.fn == nil {
		return
	}
	fn := m.fn
	m.fn = nil
	fn()
}

// VisibilityTracker derives a single "navigation chrome visible" signal from
// a stream of scroll observations. Only the latest sample and the pivot (the
// position at the last direction reversal) are retained; there is no history
// buffer. The chrome hides on any downward movement, reveals inside the safe
// zone near the top, and otherwise reveals only after ScrollUpThreshold units
// of upward travel past the pivot.
//
// The tracker is safe for use from one goroutine plus whatever goroutine the
// scheduler fires its callback on.
type VisibilityTracker struct {
	mu       sync.Mutex
	cfg      ScrollConfig
	sched    FrameScheduler
	onChange func(bool)

	visible bool
	dir     Direction
	last    float64
	pivot   float64

	pending bool
	latest  float64
	cancel  func()
	closed  bool
}

// NewVisibilityTracker returns a tracker in the visible state. onChange is
// invoked only when the signal changes value; it may be nil. A nil scheduler
// evaluates every observation immediately.
func NewVisibilityTracker(cfg ScrollConfig, sched FrameScheduler, onChange func(bool)) *VisibilityTracker {
	if sched == nil {
		sched = Immediate{}
	}
	return &VisibilityTracker{
		cfg:      cfg.withDefaults(),
		sched:    sched,
		onChange: onChange,
		visible:  true,
		dir:      DirUp,
	}
}

// Observe feeds one scroll observation. Observations from sub-containers
// shorter than half the viewport are ignored. The evaluation itself runs on
// the next frame; a newer observation before then replaces this one.
func (t *VisibilityTracker) Observe(s ScrollSample, src Surface) {
	t.mu.Lock()
	if t.closed || t.cfg.Disabled {
		t.mu.Unlock()
		return
	}
	if !src.Root && src.Viewport > 0 && src.Height < minSurfaceFraction*src.Viewport {
		t.mu.Unlock()
		return
	}
	t.latest = s.Pos
	if t.pending {
		t.mu.Unlock()
		return
	}
	t.pending = true
	t.mu.Unlock()

	cancel := t.sched.Schedule(t.flush)

	t.mu.Lock()
	if t.pending {
		t.cancel = cancel
	}
	t.mu.Unlock()
}

// Visible reports the current chrome signal.
func (t *VisibilityTracker) Visible() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.visible
}

// Close cancels any pending frame callback. Further observations are ignored.
func (t *VisibilityTracker) Close() {
	t.mu.Lock()
	t.closed = true
	cancel := t.cancel
	t.cancel = nil
	t.pending = false
	t.mu.Unlock()
	if cancel != nil {
		cancel()
	}
}

func (t *VisibilityTracker) flush() {
	t.mu.Lock()
	if t.closed {
		t.mu.Unlock()
		return
	}
	t.pending = false
	t.cancel = nil
	changed := t.evaluate(t.latest)
	v := t.visible
	cb := t.onChange
	t.mu.Unlock()
	if changed && cb != nil {
		cb(v)
	}
}

// evaluate applies one sample to the state machine. Caller holds the lock.
func (t *VisibilityTracker) evaluate(pos float64) bool {
	if pos < 0 {
		pos = 0
	}
	defer func() { t.last = pos }()

	if pos < t.cfg.SafeZone {
		t.pivot = pos
		return t.setVisible(true)
	}

	dir := DirUp
	if pos > t.last {
		dir = DirDown
	}
	if dir != t.dir {
		t.dir = dir
		t.pivot = pos
	}
	if dir == DirDown {
		return t.setVisible(false)
	}
	if math.Abs(pos-t.pivot) > t.cfg.ScrollUpThreshold {
		return t.setVisible(true)
	}
	return false
}

func (t *VisibilityTracker) setVisible(v bool) bool {
	if t.visible == v {
		return false
	}
	t.visible = v
	return true
}
