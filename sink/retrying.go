package sink

import (
	"errors"
	"time"
)

// ErrSinkGone indicates the underlying transport is gone (device
// unplugged, connection closed) and retrying will not help; callers
// should treat it as fatal rather than feeding it back to Retrying.
var ErrSinkGone = errors.New("sink: underlying transport is gone")

// Retrying wraps a Sink with exponential backoff retry, for transports
// (uinput writes, X11 round trips) that see transient EAGAIN/EINTR-style
// failures under load. It gives up after maxAttempts and returns the
// last error, or immediately on ErrSinkGone.
type Retrying struct {
	inner       Sink
	log         Logger
	maxAttempts int
	baseDelay   time.Duration
}

// NewRetrying wraps inner with a 5-attempt exponential backoff policy
// starting at 2ms.
func NewRetrying(inner Sink, log Logger) *Retrying {
	return &Retrying{inner: inner, log: log, maxAttempts: 5, baseDelay: 2 * time.Millisecond}
}

func (r *Retrying) retry(op string, fn func() error) error {
	var lastErr error
	delay := r.baseDelay
	for attempt := 0; attempt < r.maxAttempts; attempt++ {
		if attempt > 0 {
			time.Sleep(delay)
			delay *= 2
		}
		err := fn()
		if err == nil {
			return nil
		}
		if errors.Is(err, ErrSinkGone) {
			return err
		}
		lastErr = err
		r.log.Debug("sink call failed, retrying", "op", op, "attempt", attempt+1, "error", err)
	}
	return lastErr
}

func (r *Retrying) Move(dx, dy int8) error {
	return r.retry("move", func() error { return r.inner.Move(dx, dy) })
}

func (r *Retrying) Button(button int, down bool) error {
	return r.retry("button", func() error { return r.inner.Button(button, down) })
}

func (r *Retrying) Scroll(units int8, horizontal bool) error {
	return r.retry("scroll", func() error { return r.inner.Scroll(units, horizontal) })
}

func (r *Retrying) Close() error { return r.inner.Close() }
