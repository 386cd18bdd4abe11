//go:build linux

package sink

import (
	"fmt"
	"sync"

	"github.com/BurntSushi/xgb"
	"github.com/BurntSushi/xgb/xproto"
	"github.com/BurntSushi/xgb/xtest"
	"github.com/BurntSushi/xgbutil"
)

// X11Sink drives the pointer via XWarpPointer relative warps and
// XTest synthetic button/wheel events. It implements Sink.
type X11Sink struct {
	xu      *xgbutil.XUtil
	conn    *xgb.Conn
	rootWin xproto.Window

	mu sync.Mutex
}

// NewX11Sink connects to the X server named by the DISPLAY environment
// variable and initializes the XTest extension.
func NewX11Sink() (*X11Sink, error) {
	xu, err := xgbutil.NewConn()
	if err != nil {
		return nil, fmt.Errorf("sink: connect to X server: %w", err)
	}
	conn := xu.Conn()
	if conn == nil {
		return nil, fmt.Errorf("sink: X server connection is nil")
	}
	if err := xtest.Init(conn); err != nil {
		conn.Close()
		return nil, fmt.Errorf("sink: init xtest extension: %w", err)
	}
	return &X11Sink{xu: xu, conn: conn, rootWin: xu.RootWin()}, nil
}

func (s *X11Sink) Move(dx, dy int8) error {
	if dx == 0 && dy == 0 {
		return nil
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	query, err := xproto.QueryPointer(s.conn, s.rootWin).Reply()
	if err != nil {
		return fmt.Errorf("sink: query pointer: %w", err)
	}
	nextX := query.RootX + int16(dx)
	nextY := query.RootY + int16(dy)
	if err := xproto.WarpPointerChecked(
		s.conn, xproto.WindowNone, s.rootWin, 0, 0, 0, 0, nextX, nextY,
	).Check(); err != nil {
		return fmt.Errorf("sink: warp pointer: %w", err)
	}
	return nil
}

func (s *X11Sink) Button(button int, down bool) error {
	if button != 0 {
		return fmt.Errorf("sink: unsupported button %d", button)
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	var eventType byte
	if down {
		eventType = xproto.ButtonPress
	} else {
		eventType = xproto.ButtonRelease
	}
	if err := xtest.FakeInputChecked(
		s.conn, eventType, byte(xproto.ButtonIndex1), xproto.TimeCurrentTime, s.rootWin, 0, 0, 0,
	).Check(); err != nil {
		return fmt.Errorf("sink: fake button input: %w", err)
	}
	return nil
}

// wheelUpButton/wheelDownButton/wheelLeftButton/wheelRightButton are
// the conventional X11 button indices for scroll-wheel ticks.
const (
	wheelUpButton    = 4
	wheelDownButton  = 5
	wheelLeftButton  = 6
	wheelRightButton = 7
)

func (s *X11Sink) Scroll(units int8, horizontal bool) error {
	if units == 0 {
		return nil
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	button := wheelUpButton
	switch {
	case horizontal && units > 0:
		button = wheelRightButton
	case horizontal && units < 0:
		button = wheelLeftButton
	case !horizontal && units > 0:
		button = wheelDownButton
	case !horizontal && units < 0:
		button = wheelUpButton
	}

	n := int(units)
	if n < 0 {
		n = -n
	}
	for i := 0; i < n; i++ {
		if err := xtest.FakeInputChecked(
			s.conn, xproto.ButtonPress, byte(button), xproto.TimeCurrentTime, s.rootWin, 0, 0, 0,
		).Check(); err != nil {
			return fmt.Errorf("sink: fake scroll press: %w", err)
		}
		if err := xtest.FakeInputChecked(
			s.conn, xproto.ButtonRelease, byte(button), xproto.TimeCurrentTime, s.rootWin, 0, 0, 0,
		).Check(); err != nil {
			return fmt.Errorf("sink: fake scroll release: %w", err)
		}
	}
	return nil
}

func (s *X11Sink) Close() error {
	s.conn.Close()
	return nil
}
