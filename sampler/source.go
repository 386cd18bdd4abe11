package sampler

import (
	"errors"

	"github.com/nobmurakita/trackgest/gesture"
)

// ErrDeviceGone indicates the underlying touch device disappeared
// (unplugged, permission revoked) and the source cannot be polled
// again. It is a sentinel a host checks with errors.Is to decide
// whether to reopen the source or give up.
var ErrDeviceGone = errors.New("sampler: device is gone")

// Source delivers the next raw touch sample, if one is ready. Events
// carry no timestamp: the caller pairs each one with its own monotonic
// clock reading — sources never read the clock.
//
// A Source polls without blocking the caller indefinitely: Poll
// returns (zero, false, nil) when no new sample is ready rather than
// waiting.
type Source interface {
	// Poll returns the next available sample. ok is false when no new
	// sample is ready; err is non-nil (typically ErrDeviceGone) only
	// when the source can no longer be polled.
	Poll() (ev gesture.Event, ok bool, err error)
	// Close releases the underlying device.
	Close() error
}
