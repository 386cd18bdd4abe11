// Package sampler turns a raw touch input source into the
// gesture.Event stream the engine consumes. It is the I/O boundary:
// implementations poll a device and translate its native protocol,
// but never run any gesture logic themselves.
package sampler
