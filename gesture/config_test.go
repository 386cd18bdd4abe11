package gesture

import (
	"errors"
	"testing"
)

func TestNewConfigRejectsNonPositiveResolution(t *testing.T) {
	if _, err := NewConfig(0, 600, 0, 0); err == nil {
		t.Fatal("hres=0 should be rejected")
	}
	if _, err := NewConfig(800, -1, 0, 0); err == nil {
		t.Fatal("negative vres should be rejected")
	}
}

func TestNewConfigRejectsNegativeScrollZones(t *testing.T) {
	if _, err := NewConfig(800, 600, -1, 0); err == nil {
		t.Fatal("negative scroll_zone_w should be rejected")
	}
}

func TestNewConfigAppliesDefaults(t *testing.T) {
	cfg, err := NewConfig(800, 600, 0, 0)
	if err != nil {
		t.Fatalf("NewConfig: %v", err)
	}
	if cfg.Tuning != DefaultTuning() {
		t.Fatalf("tuning without options should equal DefaultTuning, got %+v", cfg.Tuning)
	}
}

func TestWithAlphaRejectsOutOfRange(t *testing.T) {
	_, err := NewConfig(800, 600, 0, 0, WithAlpha(0))
	var cfgErr *ConfigError
	if !errors.As(err, &cfgErr) {
		t.Fatalf("expected a *ConfigError, got %v (%T)", err, err)
	}
	if cfgErr.Field != "tuning" {
		t.Fatalf("ConfigError.Field = %q, want %q", cfgErr.Field, "tuning")
	}
}

func TestWithAccelerationRejectsNonIncreasingThresholds(t *testing.T) {
	_, err := NewConfig(800, 600, 0, 0, WithAcceleration(0.5, 5, 400, 100, 1500))
	if err == nil {
		t.Fatal("non-increasing acceleration thresholds should be rejected")
	}
}

func TestWithTapTimingRejectsMaxBelowMin(t *testing.T) {
	_, err := NewConfig(800, 600, 0, 0, WithTapTiming(200, 100, 5))
	if err == nil {
		t.Fatal("tap_max_ms <= tap_min_ms should be rejected")
	}
}

func TestWithFixedSensitivityZeroDisablesCurve(t *testing.T) {
	cfg, err := NewConfig(800, 600, 0, 0, WithFixedSensitivity(0))
	if err != nil {
		t.Fatalf("NewConfig: %v", err)
	}
	if cfg.Tuning.FixedSensitivity != 0 {
		t.Fatalf("FixedSensitivity = %v, want 0", cfg.Tuning.FixedSensitivity)
	}
}

func TestOptionsCompose(t *testing.T) {
	cfg, err := NewConfig(800, 600, 40, 30,
		WithJitterPixels(5),
		WithMultiTapWindow(250),
		WithDragPending(true),
	)
	if err != nil {
		t.Fatalf("NewConfig: %v", err)
	}
	if cfg.Tuning.JitterPixels != 5 || cfg.Tuning.MultiTapWindowMS != 250 || !cfg.Tuning.EmitDragPending {
		t.Fatalf("composed options not applied: %+v", cfg.Tuning)
	}
	// Unset fields should retain their defaults alongside the composed ones.
	if cfg.Tuning.Alpha != DefaultTuning().Alpha {
		t.Fatalf("unset Alpha = %v, want default", cfg.Tuning.Alpha)
	}
}
