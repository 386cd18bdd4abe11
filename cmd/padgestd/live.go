package main

import "github.com/nobmurakita/trackgest/gesture"

// liveSource mirrors sampler.Source; declared locally so this file has
// no platform-specific imports and both live_linux.go and
// live_other.go can satisfy it.
type liveSource interface {
	Poll() (gesture.Event, bool, error)
	Close() error
}
