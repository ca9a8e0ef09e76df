package gesture

import (
	"math"
	"time"
)

// Defaults for SwipeConfig. Travel is measured in the same abstract units as
// the scroll tracker; velocity is units per millisecond.
const (
	DefaultSwipeThreshold      = 50
	DefaultVelocityThreshold   = 0.3
	DefaultMaxVerticalMovement = 30
	DefaultSettleDelay         = 150 * time.Millisecond
)

const (
	// horizontalDominance is how far |dx| must outrun |dy| before a move
	// classifies as a swipe rather than an ambiguous drag.
	horizontalDominance = 1.5
	// minSwipeStart is the horizontal travel required before a move
	// classifies as swiping at all.
	minSwipeStart = 15
)

// Intent is the outcome of a completed gesture.
type Intent int

const (
	IntentNone Intent = iota
	IntentPrev // rightward drag: step to the previous route
	IntentNext // leftward drag: step to the next route
)

type swipePhase int

const (
	phaseIdle swipePhase = iota
	phaseTracking
	phaseSwiping
)

// SwipeConfig tunes the detector. Zero fields adopt the defaults.
type SwipeConfig struct {
	SwipeThreshold      float64 // minimum horizontal travel
	VelocityThreshold   float64 // minimum average speed, units/ms
	MaxVerticalMovement float64 // vertical drift allowed for a horizontal swipe
	SettleDelay         time.Duration
}

func (c SwipeConfig) withDefaults() SwipeConfig {
	if c.SwipeThreshold == 0 {
		c.SwipeThreshold = DefaultSwipeThreshold
	}
	if c.VelocityThreshold == 0 {
		c.VelocityThreshold = DefaultVelocityThreshold
	}
	if c.MaxVerticalMovement == 0 {
		c.MaxVerticalMovement = DefaultMaxVerticalMovement
	}
	if c.SettleDelay == 0 {
		c.SettleDelay = DefaultSettleDelay
	}
	return c
}

// SwipeDetector classifies one pointer gesture at a time: Begin on press,
// Move on drag, End on release. It holds a single in-flight gesture record;
// a new Begin always discards the previous one, and an End without a Begin
// is no gesture. Ambiguous or out-of-threshold gestures resolve to
// IntentNone, never an error.
//
// Callers supply timestamps on every call, so the detector needs no clock
// of its own and is trivially testable.
type SwipeDetector struct {
	cfg     SwipeConfig
	phase   swipePhase
	startX  float64
	startY  float64
	startAt time.Time
	rearmAt time.Time
}

func NewSwipeDetector(cfg SwipeConfig) *SwipeDetector {
	return &SwipeDetector{cfg: cfg.withDefaults()}
}

// Begin starts tracking a gesture at (x, y). During the settle window after
// a scroll interruption the detector stays idle.
func (d *SwipeDetector) Begin(x, y float64, at time.Time) {
	d.phase = phaseIdle
	if at.Before(d.rearmAt) {
		return
	}
	d.phase = phaseTracking
	d.startX, d.startY = x, y
	d.startAt = at
}

// Move updates the in-flight gesture and reports whether the host should
// suppress its default handling of this move. A move that is clearly
// vertical cancels the gesture; suppression is never requested for it.
func (d *SwipeDetector) Move(x, y float64) bool {
	if d.phase == phaseIdle {
		return false
	}
	dx := x - d.startX
	dy := y - d.startY
	ax, ay := math.Abs(dx), math.Abs(dy)
	switch {
	case ax > horizontalDominance*ay && ax > minSwipeStart:
		d.phase = phaseSwiping
		return ax > d.cfg.MaxVerticalMovement && ay < d.cfg.MaxVerticalMovement
	case ay > ax:
		d.phase = phaseIdle // vertical scroll, not ours
	}
	return false
}

// End completes the gesture and returns the directional intent, if any.
// A gesture qualifies when it is horizontal-dominant, stays within the
// vertical drift limit, and clears either the travel or the velocity
// threshold.
func (d *SwipeDetector) End(x, y float64, at time.Time) Intent {
	if d.phase == phaseIdle {
		return IntentNone
	}
	d.phase = phaseIdle

	dx := x - d.startX
	dy := y - d.startY
	ax, ay := math.Abs(dx), math.Abs(dy)
	if ax <= ay || ay > d.cfg.MaxVerticalMovement {
		return IntentNone
	}
	ms := float64(at.Sub(d.startAt)) / float64(time.Millisecond)
	if ms <= 0 {
		ms = 1
	}
	if ax < d.cfg.SwipeThreshold && ax/ms < d.cfg.VelocityThreshold {
		return IntentNone
	}
	if dx > 0 {
		return IntentPrev
	}
	return IntentNext
}

// ScrollInterrupt cancels any in-flight gesture because the surface is
// actively scrolling, and keeps the detector disarmed for the settle delay.
func (d *SwipeDetector) ScrollInterrupt(at time.Time) {
	d.phase = phaseIdle
	d.rearmAt = at.Add(d.cfg.SettleDelay)
}
