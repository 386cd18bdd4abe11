//go:build linux

package sampler

import (
	"errors"
	"fmt"
	"syscall"

	evdev "github.com/holoplot/go-evdev"

	"github.com/nobmurakita/trackgest/gesture"
)

// EvdevSource reads a touchscreen's ABS_X/ABS_Y/BTN_TOUCH protocol
// from an evdev device and turns each SYN_REPORT frame into a single
// gesture.Event. It also accepts ABS_MT_POSITION_X/Y as coordinates,
// but does not track ABS_MT_SLOT: with several contacts down, the
// reported point is whichever slot's position arrived last.
type EvdevSource struct {
	dev *evdev.InputDevice

	touched    bool
	wasTouched bool
	x, y       int32
	haveX      bool
	haveY      bool
}

// NewEvdevSource opens the touchscreen device at path in non-blocking
// mode.
func NewEvdevSource(path string) (*EvdevSource, error) {
	dev, err := evdev.Open(path)
	if err != nil {
		return nil, fmt.Errorf("sampler: open device %s: %w", path, err)
	}
	if err := dev.NonBlock(); err != nil {
		dev.Close()
		return nil, fmt.Errorf("sampler: set nonblocking %s: %w", path, err)
	}
	return &EvdevSource{dev: dev}, nil
}

// Poll drains pending evdev events up to and including the next
// SYN_REPORT and returns the touch frame it assembled. It returns
// ok=false if no full frame was ready yet.
func (s *EvdevSource) Poll() (gesture.Event, bool, error) {
	for {
		ev, err := s.dev.ReadOne()
		if err != nil {
			if errors.Is(err, syscall.EAGAIN) || errors.Is(err, syscall.EWOULDBLOCK) {
				return gesture.Event{}, false, nil
			}
			if errors.Is(err, syscall.EBADF) || errors.Is(err, syscall.ENODEV) {
				return gesture.Event{}, false, ErrDeviceGone
			}
			return gesture.Event{}, false, fmt.Errorf("sampler: read device: %w", err)
		}
		if ev == nil {
			return gesture.Event{}, false, nil
		}

		switch ev.Type {
		case evdev.EV_KEY:
			if ev.Code == evdev.BTN_TOUCH {
				s.touched = ev.Value != 0
			}
		case evdev.EV_ABS:
			switch ev.Code {
			case evdev.ABS_X, evdev.ABS_MT_POSITION_X:
				s.x = ev.Value
				s.haveX = true
			case evdev.ABS_Y, evdev.ABS_MT_POSITION_Y:
				s.y = ev.Value
				s.haveY = true
			}
		case evdev.EV_SYN:
			if ev.Code != evdev.SYN_REPORT {
				continue
			}
			out, ok := s.assembleFrame()
			if ok {
				return out, true, nil
			}
		}
	}
}

func (s *EvdevSource) assembleFrame() (gesture.Event, bool) {
	if !s.haveX || !s.haveY {
		return gesture.Event{}, false
	}

	var out gesture.Event
	switch {
	case s.touched && !s.wasTouched:
		out = gesture.Event{Type: gesture.EventPressed, X: s.x, Y: s.y}
	case s.touched && s.wasTouched:
		out = gesture.Event{Type: gesture.EventPressing, X: s.x, Y: s.y}
	case !s.touched && s.wasTouched:
		out = gesture.Event{Type: gesture.EventReleased, X: s.x, Y: s.y}
	default:
		return gesture.Event{}, false
	}
	s.wasTouched = s.touched
	return out, true
}

func (s *EvdevSource) Close() error {
	return s.dev.Close()
}
