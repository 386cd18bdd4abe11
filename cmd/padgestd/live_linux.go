//go:build linux

package main

import (
	"fmt"

	"github.com/nobmurakita/trackgest/sampler"
	"github.com/nobmurakita/trackgest/sink"
)

func newLiveSource(devicePath string) (liveSource, error) {
	return sampler.NewEvdevSource(devicePath)
}

func newLiveSink(backend string, logger sink.Logger) (sink.Sink, error) {
	switch backend {
	case "evdev":
		s, err := sink.NewEvdevSink("padgestd-pointer")
		if err != nil {
			return nil, err
		}
		return sink.NewRetrying(s, logger), nil
	case "x11":
		s, err := sink.NewX11Sink()
		if err != nil {
			return nil, err
		}
		return sink.NewRetrying(s, logger), nil
	default:
		return nil, fmt.Errorf("unknown backend %q", backend)
	}
}
