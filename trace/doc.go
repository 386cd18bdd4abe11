// Package trace replays a recorded sequence of touch samples through
// the gesture engine, hidseq sequencer, and a sink, deterministically.
// It is the mechanism behind the CLI's -replay mode and gives tests a
// way to exercise the full pipeline against a fixture file instead of
// a live device.
package trace
