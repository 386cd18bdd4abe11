package gesture

import "fmt"

// ConfigError reports an invalid engine configuration caught at
// construction. It is never returned from the hot path.
type ConfigError struct {
	Field string
	err   error
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("gesture: invalid config field %q: %v", e.Field, e.err)
}

func (e *ConfigError) Unwrap() error { return e.err }

func configErrorf(field, format string, args ...any) *ConfigError {
	return &ConfigError{Field: field, err: fmt.Errorf(format, args...)}
}

// Tuning holds the engine's tunable constants. See the Option
// constructors below for the named parameters from the tuning table.
type Tuning struct {
	JitterPixels int32
	Alpha        float64

	AccelMin                    float64
	AccelMax                    float64
	AccelPrecisionThresholdPPS  float64
	AccelLinearThresholdPPS     float64
	AccelMaxThresholdPPS        float64
	FixedSensitivity            float64 // 0 disables; overrides the acceleration curve entirely

	TapMinMS      int64
	TapMaxMS      int64
	TapMovePixels int32

	MultiTapWindowMS int64

	DragHoldMS     int64
	DragMovePixels int32

	ScrollSensitivityPixels float64

	EmitDragPending bool
}

// DefaultTuning returns the engine's built-in tuning constants, matching
// the worked scenarios in the design's end-to-end examples.
func DefaultTuning() Tuning {
	return Tuning{
		JitterPixels:                3,
		Alpha:                       0.3,
		AccelMin:                    0.5,
		AccelMax:                    5.0,
		AccelPrecisionThresholdPPS:  100,
		AccelLinearThresholdPPS:     400,
		AccelMaxThresholdPPS:        1500,
		FixedSensitivity:            0,
		TapMinMS:                    50,
		TapMaxMS:                    150,
		TapMovePixels:               5,
		MultiTapWindowMS:            300,
		DragHoldMS:                  150,
		DragMovePixels:              20,
		ScrollSensitivityPixels:     20,
		EmitDragPending:             false,
	}
}

// Config is the engine's immutable configuration. It is never mutated
// after NewConfig returns.
type Config struct {
	HRes        int32
	VRes        int32
	ScrollZoneW int32
	ScrollZoneH int32
	Tuning      Tuning
}

// Option customizes a Tuning value passed to NewConfig.
type Option func(*Tuning) error

// WithJitterPixels sets the per-axis dead-zone width.
func WithJitterPixels(px int32) Option {
	return func(t *Tuning) error {
		if px < 0 {
			return fmt.Errorf("jitter_px must be >= 0, got %d", px)
		}
		t.JitterPixels = px
		return nil
	}
}

// WithAlpha sets the EWMA responsiveness factor, in (0, 1].
func WithAlpha(alpha float64) Option {
	return func(t *Tuning) error {
		if alpha <= 0 || alpha > 1 {
			return fmt.Errorf("alpha must be in (0,1], got %v", alpha)
		}
		t.Alpha = alpha
		return nil
	}
}

// WithAcceleration sets the piecewise acceleration curve's multiplier
// bounds and speed thresholds (pixels per second).
func WithAcceleration(min, max, precisionPPS, linearPPS, maxPPS float64) Option {
	return func(t *Tuning) error {
		if min <= 0 || max <= 0 || max < min {
			return fmt.Errorf("accel_min/accel_max invalid: min=%v max=%v", min, max)
		}
		if !(precisionPPS < linearPPS && linearPPS < maxPPS) {
			return fmt.Errorf("acceleration thresholds must be strictly increasing: %v < %v < %v", precisionPPS, linearPPS, maxPPS)
		}
		t.AccelMin = min
		t.AccelMax = max
		t.AccelPrecisionThresholdPPS = precisionPPS
		t.AccelLinearThresholdPPS = linearPPS
		t.AccelMaxThresholdPPS = maxPPS
		return nil
	}
}

// WithFixedSensitivity replaces the acceleration curve with a constant
// multiplier applied to every filtered delta. Pass 0 to disable (the
// default) and restore curve-based acceleration.
func WithFixedSensitivity(mult float64) Option {
	return func(t *Tuning) error {
		if mult < 0 {
			return fmt.Errorf("fixed sensitivity must be >= 0, got %v", mult)
		}
		t.FixedSensitivity = mult
		return nil
	}
}

// WithTapTiming sets the touch-duration bounds and maximum net
// displacement that still qualify a release as a tap.
func WithTapTiming(minMS, maxMS int64, movePx int32) Option {
	return func(t *Tuning) error {
		if minMS < 0 || maxMS <= minMS {
			return fmt.Errorf("tap_min_ms/tap_max_ms invalid: min=%d max=%d", minMS, maxMS)
		}
		if movePx < 0 {
			return fmt.Errorf("tap_move_px must be >= 0, got %d", movePx)
		}
		t.TapMinMS = minMS
		t.TapMaxMS = maxMS
		t.TapMovePixels = movePx
		return nil
	}
}

// WithMultiTapWindow sets the window within which successive taps chain.
func WithMultiTapWindow(ms int64) Option {
	return func(t *Tuning) error {
		if ms < 0 {
			return fmt.Errorf("multi_tap_window_ms must be >= 0, got %d", ms)
		}
		t.MultiTapWindowMS = ms
		return nil
	}
}

// WithDragPromotion sets the hold time and movement threshold that
// promote a held second contact to a drag.
func WithDragPromotion(holdMS int64, movePx int32) Option {
	return func(t *Tuning) error {
		if holdMS < 0 {
			return fmt.Errorf("drag_hold_ms must be >= 0, got %d", holdMS)
		}
		if movePx < 0 {
			return fmt.Errorf("drag_move_px must be >= 0, got %d", movePx)
		}
		t.DragHoldMS = holdMS
		t.DragMovePixels = movePx
		return nil
	}
}

// WithScrollSensitivity sets the pixels of finger travel equal to one
// scroll unit.
func WithScrollSensitivity(px float64) Option {
	return func(t *Tuning) error {
		if px <= 0 {
			return fmt.Errorf("scroll_sensitivity_px must be > 0, got %v", px)
		}
		t.ScrollSensitivityPixels = px
		return nil
	}
}

// WithDragPending enables emission of the supplemental DragPending
// action while a drag-candidate second contact is held in
// WaitingForChain, for hosts that want to surface UI feedback.
func WithDragPending(enabled bool) Option {
	return func(t *Tuning) error {
		t.EmitDragPending = enabled
		return nil
	}
}

// NewConfig constructs a validated, immutable Config. Invalid
// configuration (non-positive resolution, negative scroll-zone sizes,
// or an out-of-range tuning option) is reported here, never from the
// hot path.
func NewConfig(hres, vres, scrollZoneW, scrollZoneH int32, opts ...Option) (Config, error) {
	if hres <= 0 {
		return Config{}, configErrorf("hres", "must be positive, got %d", hres)
	}
	if vres <= 0 {
		return Config{}, configErrorf("vres", "must be positive, got %d", vres)
	}
	if scrollZoneW < 0 {
		return Config{}, configErrorf("scroll_zone_w", "must be >= 0, got %d", scrollZoneW)
	}
	if scrollZoneH < 0 {
		return Config{}, configErrorf("scroll_zone_h", "must be >= 0, got %d", scrollZoneH)
	}

	tuning := DefaultTuning()
	for _, opt := range opts {
		if err := opt(&tuning); err != nil {
			return Config{}, &ConfigError{Field: "tuning", err: err}
		}
	}

	return Config{
		HRes:        hres,
		VRes:        vres,
		ScrollZoneW: scrollZoneW,
		ScrollZoneH: scrollZoneH,
		Tuning:      tuning,
	}, nil
}
