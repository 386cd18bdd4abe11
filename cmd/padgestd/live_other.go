//go:build !linux

package main

import (
	"fmt"

	"github.com/nobmurakita/trackgest/sink"
)

func newLiveSource(devicePath string) (liveSource, error) {
	return nil, fmt.Errorf("padgestd: live evdev sampling is only supported on linux; use -replay")
}

func newLiveSink(backend string, logger sink.Logger) (sink.Sink, error) {
	return nil, fmt.Errorf("padgestd: live sinks are only supported on linux; use -replay")
}
