// Package gesture contains the interaction heuristics behind Momentum's
// auto-hiding chrome and swipe tab navigation.
//
// Allowed here:
// - pure state machines over scroll and pointer observations
// - frame scheduling contracts used to coalesce high-frequency input
// - the navigator glue that turns a qualifying gesture into one route step
//
// Not allowed here:
// - terminal or bubbletea specifics (the TUI layer is the production adapter)
// - persistence, logging sinks, or anything that can fail
package gesture
