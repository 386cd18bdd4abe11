// Package hidseq turns a logical click count into a timed sequence of
// button-down/button-up pulses a HID report consumer can send. It is a
// second pure, allocation-free scheduler alongside the gesture engine:
// it owns no clock and performs no I/O, advancing only when the caller
// calls Tick with its own timestamp.
package hidseq
