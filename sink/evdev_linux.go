//go:build linux

package sink

import (
	"fmt"

	evdev "github.com/holoplot/go-evdev"
)

// EvdevSink drives a synthetic uinput mouse device: relative motion,
// the left button, and the vertical/horizontal wheel axes. It
// implements Sink.
type EvdevSink struct {
	dev *evdev.InputDevice
}

// NewEvdevSink creates a virtual uinput pointer device advertising
// EV_REL (X, Y, wheel, horizontal wheel) and EV_KEY (left button).
func NewEvdevSink(name string) (*EvdevSink, error) {
	capabilities := map[evdev.EvType][]evdev.EvCode{
		evdev.EV_KEY: {evdev.BTN_LEFT},
		evdev.EV_REL: {evdev.REL_X, evdev.REL_Y, evdev.REL_WHEEL, evdev.REL_HWHEEL},
	}
	id := evdev.InputID{
		BusType: uint16(evdev.BUS_VIRTUAL),
		Vendor:  0x1,
		Product: 0x1,
		Version: 1,
	}
	dev, err := evdev.CreateDevice(name, id, capabilities)
	if err != nil {
		return nil, fmt.Errorf("sink: create uinput device: %w", err)
	}
	return &EvdevSink{dev: dev}, nil
}

func (s *EvdevSink) writeRelAndSync(code evdev.EvCode, value int32) error {
	if err := s.dev.WriteOne(&evdev.InputEvent{Type: evdev.EV_REL, Code: code, Value: value}); err != nil {
		return fmt.Errorf("sink: write rel event: %w", err)
	}
	if err := s.dev.WriteOne(&evdev.InputEvent{Type: evdev.EV_SYN, Code: evdev.SYN_REPORT, Value: 0}); err != nil {
		return fmt.Errorf("sink: write syn event: %w", err)
	}
	return nil
}

func (s *EvdevSink) Move(dx, dy int8) error {
	if dx != 0 {
		if err := s.dev.WriteOne(&evdev.InputEvent{Type: evdev.EV_REL, Code: evdev.REL_X, Value: int32(dx)}); err != nil {
			return fmt.Errorf("sink: write rel x: %w", err)
		}
	}
	if dy != 0 {
		if err := s.dev.WriteOne(&evdev.InputEvent{Type: evdev.EV_REL, Code: evdev.REL_Y, Value: int32(dy)}); err != nil {
			return fmt.Errorf("sink: write rel y: %w", err)
		}
	}
	if dx == 0 && dy == 0 {
		return nil
	}
	return s.flushSync()
}

func (s *EvdevSink) flushSync() error {
	if err := s.dev.WriteOne(&evdev.InputEvent{Type: evdev.EV_SYN, Code: evdev.SYN_REPORT, Value: 0}); err != nil {
		return fmt.Errorf("sink: write syn event: %w", err)
	}
	return nil
}

func (s *EvdevSink) Button(button int, down bool) error {
	if button != 0 {
		return fmt.Errorf("sink: unsupported button %d", button)
	}
	value := int32(0)
	if down {
		value = 1
	}
	if err := s.dev.WriteOne(&evdev.InputEvent{Type: evdev.EV_KEY, Code: evdev.BTN_LEFT, Value: value}); err != nil {
		return fmt.Errorf("sink: write button event: %w", err)
	}
	return s.flushSync()
}

func (s *EvdevSink) Scroll(units int8, horizontal bool) error {
	code := evdev.EvCode(evdev.REL_WHEEL)
	if horizontal {
		code = evdev.REL_HWHEEL
	}
	return s.writeRelAndSync(code, int32(units))
}

func (s *EvdevSink) Close() error {
	return s.dev.Close()
}
