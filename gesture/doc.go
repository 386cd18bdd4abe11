// Package gesture implements the touchscreen trackpad gesture engine: a
// pure, framework-independent state machine that turns a stream of raw
// single-point touch samples into high-level pointing actions (move,
// click, drag, scroll).
//
// The engine performs no I/O, owns no goroutines, and never queries a
// clock — every operation takes the current monotonic millisecond
// timestamp as an argument. This makes it deterministic and fully
// testable on a host with no display, touch controller, or USB stack
// present.
package gesture
