// Package sink delivers gesture.Action and hidseq.Pulse values to a
// real pointer device. The gesture and hidseq packages never perform
// I/O themselves; a host wires their output into a Sink.
package sink
